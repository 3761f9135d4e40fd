package wrapio

import "bytes"

// Reflow runs the rewrite pass over the unprocessed tail of the buffer,
// materializing line breaks and margins up to the write cursor. It is
// invoked lazily by [Stream.Reserve], [Stream.Flush], and [Stream.Close];
// call it directly to force the pending text into its final shape, for
// example before handing the sink to another writer. Reflowing with no new
// input is a no-op.
//
// A reflow boundary is not wrap-transparent: text processed by an earlier
// pass is final, so a word continued after a forced reflow cannot move to
// the break opportunity that preceded it.
func (s *Stream) Reflow() error {
	if s.pointOffs >= s.p {
		return nil
	}
	if s.wmargin == NoWrap {
		return s.reflowTruncate()
	}
	return s.reflowWrap()
}

// reflowWrap classifies the unprocessed span into break opportunities, then
// walks the breaks left to right splicing margins into the buffer. The
// classification is taken up front into a separate break list so the walk's
// buffer mutations can never alias the classifier's view of the span.
func (s *Stream) reflowWrap() error {
	startCol := 0
	if s.colValid {
		startCol = s.pointCol
	}
	spanLen := s.p - s.pointOffs
	breaks, endCol := classifyBreaks(s.buf[s.pointOffs:s.p], s.rmargin-s.wmargin, startCol, s.lmargin)

	prev := 0
	for _, b := range breaks {
		s.pointOffs += b.off - prev
		switch b.kind {
		case breakMandatory:
			s.pointOffs += b.size
			if err := s.lineAtPoint(""); err != nil {
				return err
			}
		case breakPossible:
			// The whitespace becomes the terminator.
			s.buf[s.pointOffs] = '\n'
			s.pointOffs++
			if err := s.lineAtPoint(""); err != nil {
				return err
			}
		case breakHyphen:
			// A soft hyphen is two bytes in UTF-8, exactly the room
			// needed for the visible hyphen plus terminator.
			s.buf[s.pointOffs] = '-'
			s.buf[s.pointOffs+1] = '\n'
			s.pointOffs += 2
			if err := s.lineAtPoint(""); err != nil {
				return err
			}
		}
		prev = b.off + b.size
	}
	s.pointOffs += spanLen - prev
	s.pointCol = endCol
	s.colValid = true
	return nil
}

// reflowTruncate processes the unprocessed span in truncate mode: lines that
// fit within the right margin pass through, and anything past the margin on
// an overlong line is dropped up to the next real terminator. A trailing
// partial line that still fits within the margin is left buffered, since
// later appends may complete it.
func (s *Stream) reflowTruncate() error {
	for s.pointOffs < s.p {
		col := 0
		if s.colValid {
			col = s.pointCol
		}
		room := s.rmargin - col
		if room < 0 {
			room = 0
		}
		rest := s.p - s.pointOffs
		window := min(room, rest)
		if i := bytes.IndexByte(s.buf[s.pointOffs:s.pointOffs+window], '\n'); i >= 0 {
			s.pointOffs += i + 1
			if err := s.lineAtPoint(""); err != nil {
				return err
			}
			s.healColumn()
			continue
		}
		if rest <= room {
			return nil
		}
		trunc := s.pointOffs + room
		drop := bytes.IndexByte(s.buf[trunc:s.p], '\n')
		s.buf[trunc] = '\n'
		if drop < 0 {
			// Final line: everything past the margin is gone.
			s.p = trunc + 1
		} else {
			tail := s.buf[trunc+drop+1 : s.p]
			copy(s.buf[trunc+1:], tail)
			s.p = trunc + 1 + len(tail)
		}
		s.pointOffs = trunc + 1
		if err := s.lineAtPoint(""); err != nil {
			return err
		}
		s.healColumn()
	}
	return nil
}

// healColumn restores column tracking after a terminator has been
// materialized: the point now sits at the start of a fresh line, so its
// column is known even when the previous one was not. The splice skipped
// margin padding while the column was invalid, hence column zero.
func (s *Stream) healColumn() {
	if !s.colValid {
		s.pointCol = 0
		s.colValid = true
	}
}
