// Package nameparser extracts the series name and numbering from release names.
package nameparser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidName is returned when no rule for the requested mode matches.
var ErrInvalidName = errors.New("unable to parse name")

// maxAbsoluteRange caps how many episodes a "012-014" style range may expand to.
const maxAbsoluteRange = 100

type Mode int

const (
	ModeStandard Mode = iota
	ModeAnime
)

func (m Mode) String() string {
	switch m {
	case ModeAnime:
		return "anime"
	default:
		return "standard"
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseResult is what a rule extracted from a name. Standard results carry a
// season and episodes, anime results carry absolute numbers.
type ParseResult struct {
	Original        string            `json:"original"`
	SeriesName      string            `json:"seriesName"`
	Mode            Mode              `json:"mode"`
	Season          *int32            `json:"season,omitempty"`
	Episodes        []int32           `json:"episodes,omitempty"`
	AbsoluteNumbers []int32           `json:"absoluteNumbers,omitempty"`
	ReleaseGroup    string            `json:"releaseGroup,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
}

// Parser holds the rule tables for every mode.
type Parser struct {
	rules map[Mode][]rule
}

func New() *Parser {
	return &Parser{
		rules: map[Mode][]rule{
			ModeStandard: standardRules,
			ModeAnime:    animeRules,
		},
	}
}

// Parse runs the rules of a single mode against name.
func (p *Parser) Parse(name string, mode Mode) (*ParseResult, error) {
	trimmed := strings.TrimSpace(extensionRegex.ReplaceAllString(name, ""))
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	for _, r := range p.rules[mode] {
		groups := match(r.regex, trimmed)
		if groups == nil {
			continue
		}

		result, ok := build(name, mode, r.name, groups)
		if !ok {
			continue
		}

		return result, nil
	}

	return nil, fmt.Errorf("%w: %q as %s", ErrInvalidName, name, mode)
}

func match(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	groups := make(map[string]string)
	for i, n := range re.SubexpNames() {
		if n != "" && m[i] != "" {
			groups[n] = m[i]
		}
	}

	return groups
}

func build(original string, mode Mode, ruleName string, groups map[string]string) (*ParseResult, bool) {
	series := cleanSeriesName(groups["series_name"])
	if series == "" {
		return nil, false
	}

	result := &ParseResult{
		Original:     original,
		SeriesName:   series,
		Mode:         mode,
		ReleaseGroup: groups["release_group"],
		Extra:        map[string]string{"rule": ruleName},
	}

	info := groups["extra_info"]
	if result.ReleaseGroup == "" {
		info, result.ReleaseGroup = splitReleaseGroup(info)
	}

	if info != "" {
		result.Extra["info"] = info
		if res := resolutionRegex.FindStringSubmatch(info); res != nil {
			result.Extra["resolution"] = strings.ToLower(res[1])
		}
	}

	if v := groups["version"]; v != "" {
		result.Extra["version"] = v
	}

	if s, ok := groups["season_num"]; ok {
		season, err := toInt32(s)
		if err != nil {
			return nil, false
		}
		result.Season = &season
	}

	if e, ok := groups["ep_num"]; ok {
		first, err := toInt32(e)
		if err != nil {
			return nil, false
		}
		result.Episodes = append(result.Episodes, first)

		for _, m := range extraEpisodeRegex.FindAllStringSubmatch(groups["extra_eps"], -1) {
			ep, err := toInt32(m[1])
			if err != nil {
				return nil, false
			}
			result.Episodes = append(result.Episodes, ep)
		}
	}

	if a, ok := groups["ep_ab_num"]; ok {
		numbers, ok := absoluteRange(a, groups["extra_ab_num"])
		if !ok {
			return nil, false
		}
		result.AbsoluteNumbers = numbers
	}

	return result, true
}

func absoluteRange(first, last string) ([]int32, bool) {
	start, err := toInt32(first)
	if err != nil || start <= 0 {
		return nil, false
	}

	if last == "" {
		return []int32{start}, true
	}

	end, err := toInt32(last)
	if err != nil || end < start || end-start >= maxAbsoluteRange {
		return nil, false
	}

	numbers := make([]int32, 0, end-start+1)
	for n := start; n <= end; n++ {
		numbers = append(numbers, n)
	}

	return numbers, true
}

// splitReleaseGroup pulls a trailing "-Group" off extra info. "WEB-DL" is a source, not a group.
func splitReleaseGroup(info string) (string, string) {
	m := releaseGroupRegex.FindStringSubmatch(info)
	if m == nil || webSourceRegex.MatchString(m[1]) {
		return info, ""
	}

	return m[1], m[2]
}

// cleanSeriesName turns separators into spaces, keeping dots between digits
// so names like "9.1.1" survive.
func cleanSeriesName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case r == '.' && !(i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	return strings.Trim(strings.Join(strings.Fields(b.String()), " "), " -")
}

func toInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(n), nil
}
