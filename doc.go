// Package wrapio implements word-wrapping and line-truncating output
// streams, the engine behind margin-justified help and usage text.
//
// A [Stream] accumulates text in an internal buffer and, on demand, rewrites
// that buffer in place to apply a left margin, a right margin, and optional
// word wrapping before flushing completed lines to an underlying io.Writer.
// Rewriting is lazy: appends land in an unprocessed tail, and the reflow
// pass runs when the buffer needs room, on [Stream.Flush], and on
// [Stream.Close].
//
// # Wrap and truncate modes
//
// The wrap margin chooses between two policies:
//
//   - wmargin >= 0: word-wrap mode. Words that would extend past the right
//     margin are wrapped by replacing the whitespace before them with a
//     newline; continuation lines begin with the left margin's padding.
//     Soft hyphens (U+00AD) offer sub-word break opportunities and render
//     as "-" at a break.
//   - [NoWrap]: truncate mode. Characters beyond the right margin are
//     dropped up to the next line terminator.
//
// Columns are display columns: wide characters count two, and the scan
// advances one grapheme cluster at a time, so combining sequences and CRLF
// never split. Malformed UTF-8 degrades column tracking gracefully instead
// of failing.
//
// # Usage
//
//	s, err := wrapio.New(os.Stdout, 2, 79, 0)
//	if err != nil {
//		return err
//	}
//	s.Printf("Usage: %s [OPTION...]\n", name)
//	s.WriteString(longHelpText)
//	return s.Close()
//
// Close flushes everything and releases the buffer but never closes the
// underlying writer.
//
// # Errors
//
// Sink errors propagate from the operation that triggered the flush; pending
// bytes stay at the buffer head so the operation can be retried. The package
// exports sentinel errors for programmatic handling:
//
//   - [ErrMargin] — invalid margin configuration
//   - [ErrTooLarge] — buffer growth would overflow
//   - [ErrClosed] — append after Close
//   - [ErrProfile] — malformed profile document
//
// # Concurrency
//
// A Stream is not safe for concurrent use; guard it externally if two
// goroutines must share one.
package wrapio
