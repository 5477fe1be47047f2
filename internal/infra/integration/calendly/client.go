package calendly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.calendly.com"

type Client struct {
	HTTPClient *http.Client
	apiToken   string
	baseURL    string

	// schedulingURL identifies which event type the site books against,
	// e.g. "https://calendly.com/ailo/30min".
	schedulingURL string
}

func NewClient(apiToken, schedulingURL string) *Client {
	return &Client{
		HTTPClient:    &http.Client{Timeout: 15 * time.Second},
		apiToken:      apiToken,
		baseURL:       defaultBaseURL,
		schedulingURL: schedulingURL,
	}
}

func (c *Client) Configured() bool {
	return c.apiToken != ""
}

// WeeklySlotCount returns how many discovery-call slots are still open
// between one minute from now and the end of the current calendar week
// (Sunday 23:59:59). Calendly rejects start times in the past, hence the
// minute of slack.
func (c *Client) WeeklySlotCount(ctx context.Context) (int, error) {
	if c.apiToken == "" {
		return 0, fmt.Errorf("calendly not configured")
	}

	var user currentUserResponse
	if err := c.get(ctx, "/users/me", &user); err != nil {
		return 0, err
	}

	var eventTypes eventTypesResponse
	endpoint := fmt.Sprintf("/event_types?user=%s&active=true", url.QueryEscape(user.Resource.URI))
	if err := c.get(ctx, endpoint, &eventTypes); err != nil {
		return 0, err
	}

	eventType, err := c.matchEventType(eventTypes.Collection)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	start := now.Add(time.Minute)
	end := endOfWeek(now)

	var times availableTimesResponse
	endpoint = fmt.Sprintf(
		"/event_type_available_times?event_type=%s&start_time=%s&end_time=%s",
		url.QueryEscape(eventType.URI),
		url.QueryEscape(start.Format(time.RFC3339)),
		url.QueryEscape(end.Format(time.RFC3339)),
	)
	if err := c.get(ctx, endpoint, &times); err != nil {
		return 0, err
	}

	return len(times.Collection), nil
}

func (c *Client) matchEventType(eventTypes []EventType) (*EventType, error) {
	slug := ""
	if parts := strings.Split(strings.TrimRight(c.schedulingURL, "/"), "/"); len(parts) > 0 {
		slug = parts[len(parts)-1]
	}

	for i := range eventTypes {
		et := &eventTypes[i]
		if et.SchedulingURL == c.schedulingURL || strings.HasSuffix(et.SchedulingURL, "/"+slug) {
			return et, nil
		}
	}
	return nil, fmt.Errorf("event type not found for %s", c.schedulingURL)
}

// endOfWeek returns Sunday 23:59:59 of the week containing t.
func endOfWeek(t time.Time) time.Time {
	daysUntilSunday := (7 - int(t.Weekday())) % 7
	sunday := t.AddDate(0, 0, daysUntilSunday)
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, t.Location())
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("calendly API error: %d - %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
