package wrapio

import (
	"bytes"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// breakKind labels a position in the unprocessed span where a line may or
// must end.
type breakKind uint8

const (
	breakPossible  breakKind = iota + 1 // inter-word whitespace
	breakHyphen                         // soft hyphen
	breakMandatory                      // literal line terminator
)

// breakPoint records one break opportunity chosen by the classifier. off is
// the byte offset within the classified span; size is the number of span
// bytes consumed by the break itself (the whitespace, soft hyphen, or
// terminator sequence).
type breakPoint struct {
	off  int
	kind breakKind
	size int
}

const softHyphen = "\u00ad"

// classifyBreaks scans span left to right and picks the line breaks a wrap
// pass should materialize. width is the column budget per line, startCol the
// display column at the start of the span, and indent the column a
// continuation line starts at after a break.
//
// The scan advances one grapheme cluster at a time so that combining
// sequences and CRLF count as a single unit, measuring display columns with
// runewidth (wide characters occupy two). A cluster that is not valid UTF-8
// advances one column per byte without aborting the pass. A break becomes
// possible at the last inter-word blank (or, failing that, the last soft
// hyphen) once the next cluster would push the running column past width.
// Words with no break opportunity are left intact even when they overflow.
//
// The returned column is where the span's final line ends, which the caller
// carries into the next classification.
func classifyBreaks(span []byte, width, startCol, indent int) ([]breakPoint, int) {
	var (
		breaks []breakPoint
		col    = startCol
		option = -1 // offset of the last usable blank
		hyphen = -1 // offset of the last soft hyphen
		optCol = 0  // columns accumulated since the last blank
		hypCol = 0  // columns accumulated since the last soft hyphen
		off    = 0
	)
	tokens := graphemes.FromBytes(span)
	for tokens.Next() {
		tok := tokens.Value()
		switch {
		case bytes.ContainsRune(tok, '\n'):
			breaks = append(breaks, breakPoint{off: off, kind: breakMandatory, size: len(tok)})
			col = indent
			option, hyphen = -1, -1
		case len(tok) == 1 && (tok[0] == ' ' || tok[0] == '\t'):
			option = off
			optCol = 0
			col++
		case bytes.Equal(tok, []byte(softHyphen)):
			hyphen = off
			hypCol = 0
		default:
			w := clusterWidth(tok)
			if col+w > width {
				switch {
				case option >= 0 && option >= hyphen:
					breaks = append(breaks, breakPoint{off: option, kind: breakPossible, size: 1})
					col = indent + optCol
				case hyphen >= 0:
					breaks = append(breaks, breakPoint{off: hyphen, kind: breakHyphen, size: len(softHyphen)})
					col = indent + hypCol
				}
				if option >= 0 || hyphen >= 0 {
					option, hyphen = -1, -1
				}
			}
			col += w
			optCol += w
			hypCol += w
		}
		off += len(tok)
	}
	return breaks, col
}

// advanceColumn returns the output column after emitting b starting at col.
// A line terminator inside b resets the count; the result is the width of
// whatever follows the last terminator.
func advanceColumn(col int, b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		col = 0
		b = b[i+1:]
	}
	tokens := graphemes.FromBytes(b)
	for tokens.Next() {
		col += clusterWidth(tokens.Value())
	}
	return col
}

// clusterWidth returns the display width of one grapheme cluster. Malformed
// encoding units count one column per byte.
func clusterWidth(tok []byte) int {
	if !utf8.Valid(tok) {
		return len(tok)
	}
	return runewidth.StringWidth(string(tok))
}
