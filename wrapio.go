package wrapio

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMargin   = errors.New("invalid margin")
	ErrTooLarge = errors.New("buffer size overflow")
	ErrClosed   = errors.New("stream is closed")
	ErrProfile  = errors.New("invalid profile")
)

// NoWrap selects truncate mode: bytes beyond the right margin are dropped
// until the next line terminator instead of being wrapped.
const NoWrap = -1

const initBufSize = 200

// Stream buffers text and, on demand, rewrites the buffered content to apply
// a left margin, a right margin, and optional word wrapping before flushing
// completed lines to the underlying writer.
//
// The buffer is split at the point: bytes before it have already been line
// broken, bytes between the point and the write cursor are still unprocessed.
// A Stream must not be used from two goroutines simultaneously.
type Stream struct {
	sink io.Writer

	buf       []byte
	p         int // write cursor: end of buffered content
	pointOffs int // boundary between line-broken and unprocessed content
	pointCol  int // output column at the point, meaningful only when colValid
	colValid  bool

	lmargin int
	rmargin int
	wmargin int // NoWrap selects truncate mode

	tailPad int  // trailing margin padding with no content after it
	emitted bool // anything has reached the sink
	endedNL bool // last byte sent to the sink was a newline
	closed  bool
}

// New returns a Stream that writes to w. Lines are prefixed with lmargin
// spaces and limited to rmargin columns total. If wmargin >= 0, words that
// would extend past rmargin are wrapped onto a continuation line; wmargin is
// the indent budget used when computing the wrap width. Pass [NoWrap] to
// drop characters beyond rmargin up to the next newline instead.
//
// New does not take ownership of w; closing the Stream never closes w.
func New(w io.Writer, lmargin, rmargin, wmargin int) (*Stream, error) {
	if lmargin < 0 || rmargin <= 0 || lmargin > rmargin {
		return nil, fmt.Errorf("%w: lmargin=%d rmargin=%d", ErrMargin, lmargin, rmargin)
	}
	if wmargin != NoWrap && (wmargin < 0 || wmargin >= rmargin) {
		return nil, fmt.Errorf("%w: wmargin=%d rmargin=%d", ErrMargin, wmargin, rmargin)
	}
	return &Stream{
		sink:     w,
		buf:      make([]byte, initBufSize),
		lmargin:  lmargin,
		rmargin:  rmargin,
		wmargin:  wmargin,
		colValid: true,
	}, nil
}

// LMargin returns the current left margin.
func (s *Stream) LMargin() int { return s.lmargin }

// RMargin returns the current right margin.
func (s *Stream) RMargin() int { return s.rmargin }

// WrapMargin returns the current wrap margin, or [NoWrap] in truncate mode.
func (s *Stream) WrapMargin() int { return s.wmargin }

// SetLMargin reflows pending text under the old margins, then sets the left
// margin. It returns the previous value.
func (s *Stream) SetLMargin(n int) (int, error) {
	if n < 0 || n > s.rmargin {
		return s.lmargin, fmt.Errorf("%w: lmargin=%d rmargin=%d", ErrMargin, n, s.rmargin)
	}
	if err := s.Reflow(); err != nil {
		return s.lmargin, err
	}
	prev := s.lmargin
	s.lmargin = n
	return prev, nil
}

// SetRMargin reflows pending text under the old margins, then sets the right
// margin. It returns the previous value.
func (s *Stream) SetRMargin(n int) (int, error) {
	if n <= 0 || n < s.lmargin || (s.wmargin != NoWrap && s.wmargin >= n) {
		return s.rmargin, fmt.Errorf("%w: rmargin=%d", ErrMargin, n)
	}
	if err := s.Reflow(); err != nil {
		return s.rmargin, err
	}
	prev := s.rmargin
	s.rmargin = n
	return prev, nil
}

// SetWrapMargin reflows pending text under the old margins, then sets the
// wrap margin. Pass [NoWrap] to switch to truncate mode. It returns the
// previous value.
func (s *Stream) SetWrapMargin(n int) (int, error) {
	if n != NoWrap && (n < 0 || n >= s.rmargin) {
		return s.wmargin, fmt.Errorf("%w: wmargin=%d rmargin=%d", ErrMargin, n, s.rmargin)
	}
	if err := s.Reflow(); err != nil {
		return s.wmargin, err
	}
	prev := s.wmargin
	s.wmargin = n
	return prev, nil
}

// Point reflows pending text and reports the output column the stream would
// be at if flushed now. ok is false while the column is unknown, for example
// after [Stream.InvalidateColumn]. Reflow failures are deliberately not
// surfaced here; the column is best effort when the sink is failing.
func (s *Stream) Point() (col int, ok bool) {
	_ = s.Reflow()
	return s.pointCol, s.colValid
}

// InvalidateColumn marks the output column as unknown. Callers that push raw
// escape or control bytes through the stream can use this to suppress left
// margin padding at the next line break; the column becomes known again once
// a wrap reflow completes.
func (s *Stream) InvalidateColumn() {
	s.colValid = false
}

// Flush reflows all pending text and writes everything buffered to the sink.
// It establishes a flush boundary: after a successful Flush the sink has
// received every byte the stream will ever emit for the content so far.
func (s *Stream) Flush() error {
	if err := s.Reflow(); err != nil {
		return err
	}
	return s.flushPrefix(s.p)
}

// Close reflows and flushes all remaining content, then releases the buffer.
// Trailing margin padding with nothing after it is discarded, and the output
// is terminated with a newline when anything was emitted. Write failures at
// this point are terminal: unflushed bytes are lost. Close does not close
// the underlying writer.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	err := s.Reflow()
	if err == nil {
		if s.tailPad > 0 && s.pointOffs == s.p {
			s.p -= s.tailPad
			s.pointOffs -= s.tailPad
		}
		err = s.flushPrefix(s.p)
	}
	if err == nil && s.emitted && !s.endedNL {
		_, err = io.WriteString(s.sink, "\n")
	}
	s.buf = nil
	s.closed = true
	return err
}

// flushPrefix writes the first n buffered bytes to the sink and shifts the
// remainder to the buffer head. On a short write the unwritten bytes are
// preserved at the head and the cursors retract by the written count, so the
// caller may retry later.
//
// A flush may reach past the point when truncate mode leaves a fitting
// partial line buffered; the point column advances by the width of those
// bytes so the per-line bound holds across the flush boundary.
func (s *Stream) flushPrefix(n int) error {
	if n == 0 {
		return nil
	}
	wrote, err := s.sink.Write(s.buf[:n])
	if wrote > 0 {
		s.emitted = true
		s.endedNL = s.buf[wrote-1] == '\n'
		if wrote > s.pointOffs && s.colValid {
			s.pointCol = advanceColumn(s.pointCol, s.buf[s.pointOffs:wrote])
		}
		copy(s.buf, s.buf[wrote:s.p])
		s.p -= wrote
		s.pointOffs -= wrote
		if s.pointOffs < 0 {
			s.pointOffs = 0
		}
	}
	if err != nil {
		return err
	}
	if wrote < n {
		return io.ErrShortWrite
	}
	return nil
}
