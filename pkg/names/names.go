// Package names turns show titles and release names into forms that can be
// compared with plain string equality.
package names

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	sceneBadChars = ",:()'!?"
	// ezrss leaves : and ! in their show names
	ezrssBadChars = ",()'?"
)

var (
	separatorRegex = regexp.MustCompile(`[. -]+`)
	dotRunRegex    = regexp.MustCompile(`\.\.+`)
	// trailing year either wrapped in parens or bare, e.g. "Show (2005)" or "Show 2005"
	yearRegex = regexp.MustCompile(`^([^()]+?)\s*(?:\((\d{4})\)|(\d{4}))$`)

	fileNameDashes  = strings.NewReplacer(`\`, "-", "/", "-", "*", "-")
	fileNameRemoved = strings.NewReplacer(":", "", `"`, "", "<", "", ">", "", "|", "", "?", "")
)

// Normalize lower cases a name and collapses runs of '.', '-' and ' ' into a
// single space with any leading whitespace removed.
func Normalize(name string) string {
	name = separatorRegex.ReplaceAllString(lower(name), " ")
	return strings.TrimLeft(name, " \t\r\n")
}

// SceneSanitize returns the "scenified" version of a show name.
// With ezrss set the result follows the EZRSS conventions which keep ':' and '!'.
func SceneSanitize(name string, ezrss bool) string {
	bad := sceneBadChars
	if ezrss {
		bad = ezrssBadChars
	}

	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(bad, r) {
			return -1
		}
		return r
	}, name)

	name = strings.ReplaceAll(name, "- ", ".")
	name = strings.ReplaceAll(name, " ", ".")
	name = strings.ReplaceAll(name, "&", "and")
	name = strings.ReplaceAll(name, "/", ".")
	name = dotRunRegex.ReplaceAllString(name, ".")

	return strings.TrimSuffix(name, ".")
}

// FullSanitize is the comparison form used when matching release names
// against show names and scene exceptions.
func FullSanitize(name string) string {
	return Normalize(SceneSanitize(name, false))
}

// SeparatorsToSpaces swaps every '.', '-' and ' ' for a single space without
// changing case.
func SeparatorsToSpaces(name string) string {
	return separatorRegex.ReplaceAllString(name, " ")
}

// StripYear splits a trailing 4 digit year qualifier off a name.
// ok is false when the name does not end in a year.
func StripYear(name string) (string, int, bool) {
	m := yearRegex.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil || m[1] == "" {
		return name, 0, false
	}

	y := m[2]
	if y == "" {
		y = m[3]
	}

	year, err := strconv.Atoi(y)
	if err != nil {
		return name, 0, false
	}

	return m[1], year, true
}

// SanitizeFileName makes a name safe to use as a path segment.
func SanitizeFileName(name string) string {
	return fileNameRemoved.Replace(fileNameDashes.Replace(name))
}

func lower(s string) string {
	// casers are not safe for concurrent use
	return cases.Lower(language.Und).String(s)
}
