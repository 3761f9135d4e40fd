package wrapio

import "iter"

// WriteSeq appends each chunk from an iterator to the stream, stopping at
// the first error. Chunks are independent appends; line breaking still runs
// over the stream as a whole, so a word split across two chunks wraps the
// same way it would in a single WriteString.
func (s *Stream) WriteSeq(seq iter.Seq[string]) error {
	var werr error
	seq(func(chunk string) bool {
		if _, err := s.WriteString(chunk); err != nil {
			werr = err
			return false
		}
		return true
	})
	return werr
}

// WriteChan appends each chunk received from a channel to the stream.
// It is a thin wrapper around [Stream.WriteSeq].
func (s *Stream) WriteChan(ch <-chan string) error {
	return s.WriteSeq(chanToSeq(ch))
}

func chanToSeq(ch <-chan string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for chunk := range ch {
			if !yield(chunk) {
				return
			}
		}
	}
}
