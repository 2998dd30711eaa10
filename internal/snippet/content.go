package snippet

import (
	"errors"
	"strings"
)

// ErrEmptyContent means there is no selection and the document is empty.
var ErrEmptyContent = errors.New("nothing to paste")

// Region is a span of selected text as byte offsets into Document.Text.
type Region struct {
	Start int
	End   int
}

func (r Region) Empty() bool { return r.Start == r.End }

// normalize orders the bounds and clamps them to n.
func (r Region) normalize(n int) Region {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	r.Start = clamp(r.Start, 0, n)
	r.End = clamp(r.End, 0, n)
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Document is the editing surface a paste is taken from. Path is empty for
// unsaved buffers.
type Document struct {
	Text    string
	Path    string
	Regions []Region
}

// Selected returns the text of every non-empty region, in the order the
// regions are listed.
func (d Document) Selected() []string {
	var out []string
	for _, r := range d.Regions {
		r = r.normalize(len(d.Text))
		if r.Empty() {
			continue
		}
		out = append(out, d.Text[r.Start:r.End])
	}
	return out
}

// Extract concatenates the selections, substituting the whole text when
// nothing is selected.
func Extract(selections []string, fullText string) (string, error) {
	content := strings.Join(selections, "")
	if content == "" {
		content = fullText
	}
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}

// LineRegion spans lines from..to (1-based, inclusive) of text, trailing
// newline included. Lines past the end collapse to an empty region.
func LineRegion(text string, from, to int) Region {
	if to < from {
		from, to = to, from
	}
	if from < 1 {
		from = 1
	}
	return Region{Start: lineOffset(text, from), End: lineOffset(text, to+1)}
}

func lineOffset(text string, line int) int {
	off := 0
	for n := 1; n < line; n++ {
		i := strings.IndexByte(text[off:], '\n')
		if i < 0 {
			return len(text)
		}
		off += i + 1
	}
	return off
}
