package utils

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename makes a user-supplied filename safe to store and
// display: path components go away, anything outside a conservative
// character set collapses to an underscore, and leading dots are
// stripped so the result can never be a hidden or relative path.
func SanitizeFilename(name string) string {
	// Browsers may send Windows-style paths; take the last component of
	// either separator style.
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")

	if name == "" {
		return "file"
	}
	return name
}
