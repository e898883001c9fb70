package scrape

import (
	"regexp"
	"strconv"
)

var (
	fourDigitRe = regexp.MustCompile(`\d{4}`)
	centuryRe   = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:st|nd|rd|th)\s+century`)
)

// ParseYear derives a representative year from a free-text date label.
// A 4-digit run wins ("ca. 1503" -> 1503); otherwise an ordinal century
// resolves to its midpoint ("17th century" -> 1650). 0 means unknown.
func ParseYear(label string) int {
	if m := fourDigitRe.FindString(label); m != "" {
		year, _ := strconv.Atoi(m)
		return year
	}
	if m := centuryRe.FindStringSubmatch(label); m != nil {
		n, _ := strconv.Atoi(m[1])
		return (n-1)*100 + 50
	}
	return 0
}
