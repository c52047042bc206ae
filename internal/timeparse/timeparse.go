package timeparse

import (
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// Literal formats shared by the clipboard parser, the event builder and
// the capture form. Start/end fields hold exactly these shapes.
const (
	DateOnlyLayout = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
)

func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func FormatDate(t time.Time) string {
	return t.Format(DateOnlyLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func ParseDateOnly(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateOnlyLayout, strings.TrimSpace(value), loc)
}

func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, strings.TrimSpace(value), loc)
}

// ParseDate resolves a manual date override such as "tomorrow" or
// "2024-12-01". Natural language first, literal format as fallback.
func ParseDate(dateStr string, now time.Time, loc *time.Location) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	parsed, err := naturaldate.Parse(dateStr, now.In(loc))
	if err != nil {
		if t, parseErr := ParseDateOnly(dateStr, loc); parseErr == nil {
			return t, nil
		}
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc), nil
}
