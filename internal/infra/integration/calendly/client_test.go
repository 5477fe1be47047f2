package calendly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndOfWeek(t *testing.T) {
	// Wednesday → following Sunday.
	wed := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	end := endOfWeek(wed)
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC), end)

	// Sunday stays the same day: the window closes that night.
	sun := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	end = endOfWeek(sun)
	assert.Equal(t, time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC), end)
}

func TestMatchEventType(t *testing.T) {
	c := NewClient("token", "https://calendly.com/ailo/30min")

	eventTypes := []EventType{
		{URI: "uri-1", SchedulingURL: "https://calendly.com/ailo/intro"},
		{URI: "uri-2", SchedulingURL: "https://calendly.com/ailo/30min"},
	}

	et, err := c.matchEventType(eventTypes)
	assert.NoError(t, err)
	assert.Equal(t, "uri-2", et.URI)

	// Slug suffix is enough when the account URL prefix differs.
	et, err = c.matchEventType([]EventType{
		{URI: "uri-3", SchedulingURL: "https://calendly.com/ailo-team/30min"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "uri-3", et.URI)

	_, err = c.matchEventType([]EventType{
		{URI: "uri-4", SchedulingURL: "https://calendly.com/ailo/60min"},
	})
	assert.Error(t, err)
}
