package calendar

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type Client struct {
	svc *calendar.Service
}

func New(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// InsertEvent registers an event and returns the created resource.
func (c *Client) InsertEvent(calendarID string, event *calendar.Event) (*calendar.Event, error) {
	if calendarID == "" {
		return nil, fmt.Errorf("calendarID is required")
	}
	if event == nil {
		return nil, fmt.Errorf("event is required")
	}
	return c.svc.Events.Insert(calendarID, event).Do()
}

func (c *Client) DeleteEvent(calendarID, eventID string) error {
	if calendarID == "" || eventID == "" {
		return fmt.Errorf("calendarID and eventID are required")
	}
	return c.svc.Events.Delete(calendarID, eventID).Do()
}

func (c *Client) ListCalendars() ([]*calendar.CalendarListEntry, error) {
	resp, err := c.svc.CalendarList.List().Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
