package clipparse

import (
	"regexp"
	"strconv"
)

var (
	colonTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	kanjiTimeRe = regexp.MustCompile(`(\d{1,2})[\s　]*時(?:[\s　]*(\d{1,2})[\s　]*分?)?`)
)

// extractTimes returns every colon-notation match in document order
// followed by every kanji-notation match in document order. The two scans
// are concatenated, not merged by position; with mixed notations this
// ordering decides which two candidates become the start/end pair.
func extractTimes(text string) []TimeCandidate {
	var out []TimeCandidate
	for _, idx := range colonTimeRe.FindAllStringSubmatchIndex(text, -1) {
		hour, _ := strconv.Atoi(text[idx[2]:idx[3]])
		minute, _ := strconv.Atoi(text[idx[4]:idx[5]])
		out = append(out, TimeCandidate{Hour: hour, Minute: minute, Range: runeRange(text, idx[0], idx[1])})
	}
	for _, idx := range kanjiTimeRe.FindAllStringSubmatchIndex(text, -1) {
		hour, _ := strconv.Atoi(text[idx[2]:idx[3]])
		minute := 0
		if idx[4] >= 0 {
			minute, _ = strconv.Atoi(text[idx[4]:idx[5]])
		}
		out = append(out, TimeCandidate{Hour: hour, Minute: minute, Range: runeRange(text, idx[0], idx[1])})
	}
	return out
}
