package lookup

import (
	"strings"

	"mediashelf/internal/textutil"
)

// discFormats lists recognized movie disc formats in precedence order: a
// combo pack title like "(4K Ultra HD + Blu-ray + Digital)" resolves to the
// richest format present.
var discFormats = []struct {
	name   string
	tokens []string
}{
	{"4K", []string{"4k", "uhd", "ultra hd"}},
	{"Blu-ray", []string{"blu-ray", "bluray", "blu ray"}},
	{"DVD", []string{"dvd"}},
	{"Digital", []string{"digital"}},
}

// inferDiscFormat scans the parenthetical segments of the original product
// title for known disc format tokens. First matching format in precedence
// order wins; no token yields an empty format.
func inferDiscFormat(originalTitle string) string {
	segments := textutil.Parentheticals(originalTitle)
	if len(segments) == 0 {
		return ""
	}
	for _, format := range discFormats {
		for _, segment := range segments {
			if containsAnyFold(segment, format.tokens) {
				return format.name
			}
		}
	}
	return ""
}

// audioFormats lists recognized music formats in precedence order.
var audioFormats = []struct {
	name   string
	tokens []string
}{
	{"Vinyl", []string{"vinyl", "lp"}},
	{"Cassette", []string{"cassette"}},
	{"CD", []string{"cd"}},
	{"Digital", []string{"digital"}},
}

// inferAudioFormat scans the whole title and category since music listings
// rarely parenthesize the medium.
func inferAudioFormat(title, category string) string {
	haystack := title + " " + category
	for _, format := range audioFormats {
		if containsAnyFold(haystack, format.tokens) {
			return format.name
		}
	}
	return ""
}

// bookFormats maps Open Library physical_format values to catalog formats.
var bookFormats = []struct {
	name   string
	tokens []string
}{
	{"Hardcover", []string{"hardcover", "hardback"}},
	{"Paperback", []string{"paperback", "softcover", "mass market"}},
	{"eBook", []string{"ebook", "electronic"}},
	{"Audiobook", []string{"audio"}},
}

func inferBookFormat(physicalFormat string) string {
	physicalFormat = strings.TrimSpace(physicalFormat)
	if physicalFormat == "" {
		return ""
	}
	for _, format := range bookFormats {
		if containsAnyFold(physicalFormat, format.tokens) {
			return format.name
		}
	}
	return physicalFormat
}

// gamePlatforms maps title/category tokens to canonical platform names.
// More specific tokens come first so "Xbox Series X" is not misread as
// "Xbox One".
var gamePlatforms = []struct {
	name   string
	tokens []string
}{
	{"PlayStation 5", []string{"playstation 5", "ps5"}},
	{"PlayStation 4", []string{"playstation 4", "ps4"}},
	{"Xbox Series X", []string{"xbox series x", "xbox series"}},
	{"Xbox One", []string{"xbox one"}},
	{"Nintendo Switch", []string{"nintendo switch", "switch"}},
	{"PC", []string{"pc", "windows"}},
}

func inferGamePlatform(title, category string) string {
	haystack := title + " " + category
	for _, platform := range gamePlatforms {
		if containsAnyFold(haystack, platform.tokens) {
			return platform.name
		}
	}
	return ""
}

// gameFormat derives the physical medium from the platform.
func gameFormat(platform string) string {
	switch platform {
	case "Nintendo Switch":
		return "Cartridge"
	case "PC":
		return "Digital"
	case "":
		return ""
	default:
		return "Disc"
	}
}

// containsAnyFold matches case-insensitively. Short tokens ("cd", "lp",
// "pc") only match as whole words so "help" never reads as vinyl.
func containsAnyFold(haystack string, tokens []string) bool {
	lowered := strings.ToLower(haystack)
	var words map[string]struct{}
	for _, token := range tokens {
		if len(token) > 3 {
			if strings.Contains(lowered, token) {
				return true
			}
			continue
		}
		if words == nil {
			words = splitWords(lowered)
		}
		if _, ok := words[token]; ok {
			return true
		}
	}
	return false
}

func splitWords(lowered string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		words[word] = struct{}{}
	}
	return words
}
