package parser

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// corrections fixes known misspellings in the source guide. Applied in order
// as plain substring replacements; later entries see earlier results.
var corrections = [][2]string{
	{"SOLVENIA", "SLOVENIA"},
	{"PAPAU NEW GUINEA", "PAPUA NEW GUINEA"},
	{"TAJIKSTAN", "TAJIKISTAN"},
}

// CleanLocation canonicalizes whitespace and corrects known misspellings.
func CleanLocation(location string) string {
	location = whitespaceRe.ReplaceAllString(strings.TrimSpace(location), " ")
	for _, c := range corrections {
		location = strings.ReplaceAll(location, c[0], c[1])
	}
	return location
}
