package util

import (
	"regexp"
	"strings"
)

// trailingCommaPattern matches a comma followed, modulo whitespace, by a closing bracket.
var trailingCommaPattern = regexp.MustCompile(`,(\s*[\]}])`)

// RepairJSON makes language model output more likely to parse as a single JSON
// object. It drops trailing commas before "}" or "]" anywhere in the text and
// appends one "}" when the text does not end with one. Nested braces are not
// balanced and the result may still be invalid.
func RepairJSON(raw string) string {
	repaired := trailingCommaPattern.ReplaceAllString(strings.TrimSpace(raw), "$1")
	if !strings.HasSuffix(repaired, "}") {
		repaired += "}"
	}
	return repaired
}
