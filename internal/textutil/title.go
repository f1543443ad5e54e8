package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	yearPattern          = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	parentheticalPattern = regexp.MustCompile(`\(([^)]*)\)`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// NormalizeTitle applies Unicode NFC normalization and trims surrounding
// whitespace. Provider payloads mix composed and decomposed forms; comparing
// without normalizing produces spurious mismatches.
func NormalizeTitle(value string) string {
	return strings.TrimSpace(norm.NFC.String(value))
}

// ExtractYear returns the first four-digit year token (1900-2099) found in
// the value, or false when none is present.
func ExtractYear(value string) (int, bool) {
	match := yearPattern.FindString(value)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

// Parentheticals returns the inner text of every parenthetical segment in
// order of appearance. Empty segments are skipped.
func Parentheticals(value string) []string {
	matches := parentheticalPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		if inner := strings.TrimSpace(match[1]); inner != "" {
			out = append(out, inner)
		}
	}
	return out
}

// StripQualifiers removes parenthetical segments and bare year tokens from a
// product title and collapses the remaining whitespace. Retailer titles embed
// edition and format noise ("Example Movie (Blu-ray + Digital) (2018)") that
// derails metadata searches.
func StripQualifiers(value string) string {
	cleaned := parentheticalPattern.ReplaceAllString(NormalizeTitle(value), " ")
	cleaned = yearPattern.ReplaceAllString(cleaned, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
