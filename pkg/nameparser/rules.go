package nameparser

import "regexp"

type rule struct {
	name  string
	regex *regexp.Regexp
}

// Rules are tried in order, the first one that matches wins.
// Named groups understood by the parser:
//
//	series_name    show title, separators intact
//	season_num     season number
//	ep_num         first episode number
//	extra_eps      further episodes like ".E03E04" or ".1x03"
//	ep_ab_num      absolute episode number
//	extra_ab_num   end of an absolute range
//	version        release revision like the 2 in "013v2"
//	release_group  group tag
//	extra_info     everything after the numbering
var standardRules = []rule{
	{
		// Show.Name.S01E02.Source.Quality.Etc-Group
		// Show.Name.S01E02E03.Source.Quality.Etc-Group
		// Show Name - S01E02 - S01E03 - My Ep Name
		name: "standard",
		regex: regexp.MustCompile(`(?i)^(?P<series_name>.+?)[. _-]+` +
			`s(?P<season_num>\d{1,3})[. _-]*` +
			`e(?P<ep_num>\d{1,4})` +
			`(?P<extra_eps>(?:(?:[. _-]*s\d{1,3})?[. _-]*e\d{1,4})*)` +
			`(?:[. _-]+(?P<extra_info>.*?))?$`),
	},
	{
		// Show.Name.1x02.Source.Quality.Etc-Group
		// Show Name - 1x02 - 1x03 - Ep Name
		name: "fov",
		regex: regexp.MustCompile(`(?i)^(?P<series_name>.+?)[. _\[(-]+` +
			`(?P<season_num>\d{1,2})x(?P<ep_num>\d{1,3})` +
			`(?P<extra_eps>(?:[. _-]+\d{1,2}x\d{1,3})*)` +
			`[\])]?(?:[. _-]+(?P<extra_info>.*?))?$`),
	},
	{
		// Show.Name.S01.Source.Quality.Etc-Group
		// Show Name Season 2
		name: "season_only",
		regex: regexp.MustCompile(`(?i)^(?P<series_name>.+?)[. _-]+` +
			`s(?:eason[. _-]*)?(?P<season_num>\d{1,2})` +
			`(?:[. _-]+(?P<extra_info>.*?))?$`),
	},
}

var animeRules = []rule{
	{
		// [Group] Show Name - 013 [720p]
		// [Group] Show Name - 012-014v2 [Extra]
		name: "anime_group_dash",
		regex: regexp.MustCompile(`(?i)^\[(?P<release_group>[^\]]+)\][ ._]*` +
			`(?P<series_name>.+?)[ ._]+-[ ._]+` +
			`(?P<ep_ab_num>\d{1,4})(?:-(?P<extra_ab_num>\d{1,4}))?(?:v(?P<version>\d))?` +
			`(?:[ ._]+(?P<extra_info>.*?))?$`),
	},
	{
		// Show Name - 013
		// Show.Name.-.013.720p-Group
		name: "anime_dash",
		regex: regexp.MustCompile(`(?i)^(?P<series_name>.+?)[ ._]+-[ ._]+` +
			`(?P<ep_ab_num>\d{1,4})(?:-(?P<extra_ab_num>\d{1,4}))?(?:v(?P<version>\d))?` +
			`(?:[ ._-]+(?P<extra_info>.*?))?$`),
	},
	{
		// [Group] Show Name 013 [720p]
		name: "anime_group_bare",
		regex: regexp.MustCompile(`(?i)^\[(?P<release_group>[^\]]+)\][ ._]*` +
			`(?P<series_name>.+?)[ ._]+` +
			`(?P<ep_ab_num>\d{2,4})(?:v(?P<version>\d))?` +
			`(?:[ ._]+(?P<extra_info>.*?))?$`),
	},
}

var (
	extensionRegex    = regexp.MustCompile(`(?i)\.(?:mkv|mp4|avi|m4v|wmv|ts)$`)
	extraEpisodeRegex = regexp.MustCompile(`(?i)[ex](\d+)`)
	releaseGroupRegex = regexp.MustCompile(`^(?P<info>.*?)-(?P<group>[^- .\[\]]+)$`)
	webSourceRegex    = regexp.MustCompile(`(?i)web$`)
	resolutionRegex   = regexp.MustCompile(`(?i)\b(\d{3,4}[pi])\b`)
)
