package naming

import (
	"regexp"
	"strings"
)

// reUnsafe matches every character that may not appear in a stem: anything
// other than a letter, digit, underscore, hyphen, or whitespace.
var reUnsafe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// reSpaceRun matches runs of whitespace.
var reSpaceRun = regexp.MustCompile(`\s+`)

// Sanitize converts a title like "Exterior House Painting!" into the stem
// "Exterior-House-Painting". Unsafe characters are stripped, surrounding
// whitespace is trimmed, and interior whitespace runs collapse to a single
// hyphen. A title with no safe characters sanitizes to the empty string;
// callers must reject that rather than build a bare-extension name from it.
func Sanitize(title string) string {
	stem := reUnsafe.ReplaceAllString(title, "")
	stem = strings.TrimSpace(stem)
	return reSpaceRun.ReplaceAllString(stem, "-")
}
