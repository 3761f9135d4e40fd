package wrapio

import "fmt"

// printfSizeGuess is the free space reserved before formatting; when the
// formatted result turns out larger, the exact size is reserved and the
// format is rerun.
const printfSizeGuess = 150

// Write appends p to the stream. It implements io.Writer. The returned count
// is always len(p) on success; line breaking happens lazily, so the bytes may
// stay buffered until a reflow or flush.
func (s *Stream) Write(p []byte) (int, error) {
	if err := s.Reserve(len(p)); err != nil {
		return 0, err
	}
	copy(s.buf[s.p:], p)
	s.p += len(p)
	if len(p) > 0 {
		s.tailPad = 0
	}
	return len(p), nil
}

// WriteString appends str to the stream. It implements io.StringWriter.
func (s *Stream) WriteString(str string) (int, error) {
	if err := s.Reserve(len(str)); err != nil {
		return 0, err
	}
	copy(s.buf[s.p:], str)
	s.p += len(str)
	if len(str) > 0 {
		s.tailPad = 0
	}
	return len(str), nil
}

// WriteByte appends a single byte to the stream.
func (s *Stream) WriteByte(c byte) error {
	if err := s.Reserve(1); err != nil {
		return err
	}
	s.buf[s.p] = c
	s.p++
	s.tailPad = 0
	return nil
}

// Printf formats according to format and appends the result to the stream,
// returning the number of bytes appended. The result is never truncated:
// formatting runs into the free region of the buffer, and when the reserved
// guess turns out too small the exact size is reserved and the format rerun.
func (s *Stream) Printf(format string, args ...any) (int, error) {
	guess := printfSizeGuess
	for {
		if err := s.Reserve(guess); err != nil {
			return 0, err
		}
		out := fmt.Appendf(s.buf[s.p:s.p:len(s.buf)], format, args...)
		if n := len(out); n <= len(s.buf)-s.p {
			// Appendf never reallocated, so the bytes already sit in
			// the buffer's free region.
			s.p += n
			if n > 0 {
				s.tailPad = 0
			}
			return n, nil
		}
		guess = len(out)
	}
}

// Reserve guarantees at least amount free bytes between the write cursor and
// the end of the buffer, reflowing and flushing buffered content and growing
// the buffer as needed. On a short write the pending bytes stay at the buffer
// head and Reserve fails; the caller may retry with the same content pending.
// The buffer grows only after a successful full flush.
func (s *Stream) Reserve(amount int) error {
	if s.closed {
		return ErrClosed
	}
	if amount <= len(s.buf)-s.p {
		return nil
	}
	if err := s.Reflow(); err != nil {
		return err
	}
	if err := s.flushPrefix(s.p); err != nil {
		return err
	}
	if len(s.buf) < amount {
		size := len(s.buf) + amount
		if size < len(s.buf) {
			return ErrTooLarge
		}
		s.buf = make([]byte, size)
	}
	return nil
}
