package snippet

import (
	"path/filepath"
	"strings"
)

// UntitledTitle names snippets whose document has no file on disk.
const UntitledTitle = "Untitled"

// DefaultTitle returns the base name of path (extension included), or
// UntitledTitle for an unsaved buffer.
func DefaultTitle(path string) string {
	if strings.TrimSpace(path) == "" {
		return UntitledTitle
	}
	return filepath.Base(path)
}

// ResolveTitle picks the user's input when it has anything besides whitespace,
// otherwise the fallback.
func ResolveTitle(input, fallback string) string {
	if t := strings.TrimSpace(input); t != "" {
		return t
	}
	return fallback
}
