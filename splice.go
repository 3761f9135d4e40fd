package wrapio

import "bytes"

// lineAtPoint materializes a line break at the point: it splices suffix plus
// lmargin spaces of padding into the buffer at the point, then advances the
// point past the insertion. Padding is skipped while the output column is
// invalid. On return the point column is the left margin.
//
// When the insertion does not fit before the end of the buffer, complete
// lines ahead of the point are flushed to the sink and the remainder shifted
// down to make room. If the first logical line exceeds the whole buffer, the
// byte just before the point is converted into a terminator so the flush can
// proceed; that single byte is lost. With nothing ahead of the point to
// flush, the buffer grows instead.
func (s *Stream) lineAtPoint(suffix string) error {
	need := len(suffix)
	if s.colValid {
		need += s.lmargin
	}
	for s.p+need > len(s.buf) {
		if s.pointOffs == 0 {
			size := len(s.buf) + need
			if size < len(s.buf) {
				return ErrTooLarge
			}
			grown := make([]byte, size)
			copy(grown, s.buf[:s.p])
			s.buf = grown
			break
		}
		nl := bytes.LastIndexByte(s.buf[:s.pointOffs], '\n')
		if nl < 0 {
			// First logical line exceeds the whole buffer; force a
			// terminator so something becomes flushable.
			nl = s.pointOffs - 1
			s.buf[nl] = '\n'
		}
		if err := s.flushPrefix(nl + 1); err != nil {
			return err
		}
	}

	copy(s.buf[s.pointOffs+need:s.p+need], s.buf[s.pointOffs:s.p])
	s.p += need
	copy(s.buf[s.pointOffs:], suffix)
	s.pointOffs += len(suffix)
	pad := 0
	if s.colValid {
		pad = s.lmargin
		for i := range pad {
			s.buf[s.pointOffs+i] = ' '
		}
		s.pointOffs += pad
		s.pointCol = s.lmargin
	}
	if s.pointOffs == s.p {
		s.tailPad = pad
	} else {
		s.tailPad = 0
	}
	return nil
}
