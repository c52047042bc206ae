// Package eventbody turns the user-confirmed form fields into a Google
// Calendar event body. It runs at submission time on free-form strings, so
// it validates independently of whatever the clipboard parser suggested.
package eventbody

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"koyomi/internal/timeparse"
)

// ValidationError is a recoverable input problem the user can fix in the
// form; it never indicates a bug or an API failure.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

type Input struct {
	Title     string
	AllDay    bool
	StartText string
	EndText   string
}

// Build validates the form fields and produces the event body. A blank or
// unparsable end is not an error: the defaulting policy (start plus one
// day for all-day, one hour otherwise) applies again here, so a user who
// cleared the end field still gets a safe range. End is always strictly
// after start.
func Build(in Input, timeZone string, loc *time.Location) (*calendar.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Msg: "title is required"}
	}

	if in.AllDay {
		start, err := timeparse.ParseDateOnly(in.StartText, loc)
		if err != nil {
			return nil, &ValidationError{
				Field: "start",
				Msg:   fmt.Sprintf("invalid start date %q (expected %s, e.g. 2024-12-01)", in.StartText, timeparse.DateOnlyLayout),
			}
		}
		end, err := timeparse.ParseDateOnly(in.EndText, loc)
		if err != nil || !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}
		return &calendar.Event{
			Summary: title,
			Start:   &calendar.EventDateTime{Date: timeparse.FormatDate(start)},
			End:     &calendar.EventDateTime{Date: timeparse.FormatDate(end)},
		}, nil
	}

	start, err := timeparse.ParseDateTime(in.StartText, loc)
	if err != nil {
		return nil, &ValidationError{
			Field: "start",
			Msg:   fmt.Sprintf("invalid start time %q (expected %s, e.g. 2024-12-01T10:00)", in.StartText, timeparse.DateTimeLayout),
		}
	}
	end, err := timeparse.ParseDateTime(in.EndText, loc)
	if err != nil || !end.After(start) {
		end = start.Add(time.Hour)
	}
	return &calendar.Event{
		Summary: title,
		Start:   &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: timeZone},
		End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: timeZone},
	}, nil
}
