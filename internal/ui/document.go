package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"pastery/internal/snippet"
)

// LoadDocument reads the file at path, or stdin when path is "" or "-".
// Documents read from stdin have no path. lines selects regions, see
// ParseLines.
func LoadDocument(path string, stdin io.Reader, lines string) (snippet.Document, error) {
	var doc snippet.Document
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return doc, fmt.Errorf("read stdin: %w", err)
		}
		doc.Text = string(b)
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return doc, err
		}
		b, err := os.ReadFile(abs)
		if err != nil {
			return doc, err
		}
		doc.Text, doc.Path = string(b), abs
	}
	if !utf8.ValidString(doc.Text) {
		return doc, fmt.Errorf("%s is not UTF-8 text", displayName(doc.Path))
	}
	regions, err := ParseLines(doc.Text, lines)
	if err != nil {
		return doc, err
	}
	doc.Regions = regions
	return doc, nil
}

func displayName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

// ParseLines turns "3-10,20,25-30" into one region per range, in the order
// written. Line numbers are 1-based and inclusive.
func ParseLines(text, spec string) ([]snippet.Region, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	var regions []snippet.Region
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		from, to, isRange := strings.Cut(part, "-")
		a, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("lines %q: %w", part, err)
		}
		b := a
		if isRange {
			b, err = strconv.Atoi(strings.TrimSpace(to))
			if err != nil {
				return nil, fmt.Errorf("lines %q: %w", part, err)
			}
		}
		if a < 1 || b < 1 {
			return nil, fmt.Errorf("lines %q: line numbers start at 1", part)
		}
		regions = append(regions, snippet.LineRegion(text, a, b))
	}
	return regions, nil
}
