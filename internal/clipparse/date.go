package clipparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type matchState int

const (
	matchNone matchState = iota
	matchFound
	matchAbort
)

type dateMatcher func(text string, now time.Time) (DateCandidate, matchState)

// dateMatchers is tried in order; the first match wins and at most one
// date is ever selected.
var dateMatchers = []dateMatcher{
	matchKanjiMonthDay,
	matchFullDate,
	matchMonthDay,
	matchShortDate,
	matchRelativeWord(regexp.MustCompile(`今日|本日`), 0),
	matchRelativeWord(regexp.MustCompile(`明日|あした|あす`), 1),
	matchRelativeWord(regexp.MustCompile(`明後日|あさって`), 2),
}

var (
	kanjiDateRe = regexp.MustCompile(`([〇零一二三四五六七八九十]{1,3})[\s　]*月[\s　]*([〇零一二三四五六七八九十]{1,3})[\s　]*日?`)
	fullDateRe  = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	monthDayRe  = regexp.MustCompile(`(\d{1,2})[\s　]*月[\s　]*(\d{1,2})[\s　]*日?`)
	shortDateRe = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})`)
)

func detectDate(text string, now time.Time) (DateCandidate, bool) {
	for _, match := range dateMatchers {
		cand, state := match(text, now)
		switch state {
		case matchFound:
			return cand, true
		case matchAbort:
			return DateCandidate{}, false
		}
	}
	return DateCandidate{}, false
}

func matchKanjiMonthDay(text string, now time.Time) (DateCandidate, matchState) {
	idx := kanjiDateRe.FindStringSubmatchIndex(text)
	if idx == nil {
		return DateCandidate{}, matchNone
	}
	month, okM := kanjiNumber(text[idx[2]:idx[3]])
	day, okD := kanjiNumber(text[idx[4]:idx[5]])
	if !okM || !okD || month == 0 || day == 0 {
		// An invalid kanji numeral aborts date detection entirely; it
		// does not fall through to the numeric patterns below.
		return DateCandidate{}, matchAbort
	}
	return DateCandidate{
		Year:  now.Year(),
		Month: time.Month(month),
		Day:   day,
		Range: runeRange(text, idx[0], idx[1]),
	}, matchFound
}

func matchFullDate(text string, now time.Time) (DateCandidate, matchState) {
	idx := fullDateRe.FindStringSubmatchIndex(text)
	if idx == nil {
		return DateCandidate{}, matchNone
	}
	year, _ := strconv.Atoi(text[idx[2]:idx[3]])
	month, _ := strconv.Atoi(text[idx[4]:idx[5]])
	day, _ := strconv.Atoi(text[idx[6]:idx[7]])
	return DateCandidate{
		Year:  year,
		Month: time.Month(month),
		Day:   day,
		Range: runeRange(text, idx[0], idx[1]),
	}, matchFound
}

func matchMonthDay(text string, now time.Time) (DateCandidate, matchState) {
	return monthDayCandidate(monthDayRe, text, now)
}

func matchShortDate(text string, now time.Time) (DateCandidate, matchState) {
	return monthDayCandidate(shortDateRe, text, now)
}

// monthDayCandidate handles the two yearless numeric notations; the
// current year is assumed.
func monthDayCandidate(re *regexp.Regexp, text string, now time.Time) (DateCandidate, matchState) {
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return DateCandidate{}, matchNone
	}
	month, _ := strconv.Atoi(text[idx[2]:idx[3]])
	day, _ := strconv.Atoi(text[idx[4]:idx[5]])
	return DateCandidate{
		Year:  now.Year(),
		Month: time.Month(month),
		Day:   day,
		Range: runeRange(text, idx[0], idx[1]),
	}, matchFound
}

// matchRelativeWord builds a matcher for literal words like 今日 that
// resolve to today plus a fixed day offset.
func matchRelativeWord(re *regexp.Regexp, offsetDays int) dateMatcher {
	return func(text string, now time.Time) (DateCandidate, matchState) {
		loc := re.FindStringIndex(text)
		if loc == nil {
			return DateCandidate{}, matchNone
		}
		d := now.AddDate(0, 0, offsetDays)
		return DateCandidate{
			Year:  d.Year(),
			Month: d.Month(),
			Day:   d.Day(),
			Range: runeRange(text, loc[0], loc[1]),
		}, matchFound
	}
}

var kanjiDigits = map[rune]int{
	'〇': 0, '零': 0,
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

// kanjiNumber converts a kanji numeral to an int. 十 alone is 10; a value
// containing 十 splits into a tens digit (empty means 1) and a ones digit
// (empty means 0, more than one rune is invalid); a value without 十 reads
// as positional digits. Any rune outside the digit set is invalid.
func kanjiNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if s == "十" {
		return 10, true
	}
	if strings.ContainsRune(s, '十') {
		parts := strings.SplitN(s, "十", 3)
		tens := 1
		if parts[0] != "" {
			d, ok := singleKanjiDigit(parts[0])
			if !ok {
				return 0, false
			}
			tens = d
		}
		ones := 0
		if len(parts) > 1 && parts[1] != "" {
			d, ok := singleKanjiDigit(parts[1])
			if !ok {
				return 0, false
			}
			ones = d
		}
		return tens*10 + ones, true
	}
	n := 0
	for _, r := range s {
		d, ok := kanjiDigits[r]
		if !ok {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

func singleKanjiDigit(s string) (int, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	d, ok := kanjiDigits[runes[0]]
	return d, ok
}
