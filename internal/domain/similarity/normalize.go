package similarity

import (
	"strings"
	"unicode"
)

var streetSuffixes = map[string]struct{}{
	"street": {}, "st": {}, "avenue": {}, "ave": {},
	"road": {}, "rd": {}, "drive": {}, "dr": {},
}

// NormalizeLocation lowercases, collapses whitespace, strips commas and
// periods, and drops street-suffix tokens. Empty input yields "".
func NormalizeLocation(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, ".", " ")

	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := streetSuffixes[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

// CompanyKey derives the blocking-partition key for an employer name.
// It shares NormalizeLocation's rules: employer strings carry the same
// noise (commas, abbreviations) as location strings, so the one
// normalizer serves both.
func CompanyKey(company string) string {
	return NormalizeLocation(company)
}

// Tokenize lowercases, strips non-alphanumeric characters, splits on
// whitespace and returns the deduplicated token set.
func Tokenize(s string) map[string]struct{} {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	tokens := make(map[string]struct{})
	for _, f := range strings.Fields(b.String()) {
		tokens[f] = struct{}{}
	}
	return tokens
}
