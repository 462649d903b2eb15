package calendar

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h-ess/concierge-toolkit/pkg/providers/gcal"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

func newTestService() *Service {
	return NewService(gcal.NewClient("", ""))
}

func TestCreateEvent_LocalWithoutToken(t *testing.T) {
	s := newTestService()
	resp, err := s.CreateEvent(context.Background(), CreateEventArgs{
		Title:     "Dinner at Trattoria Roma",
		Date:      "2025-07-04",
		StartTime: "19:30",
		EndTime:   "21:30",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Event)
	assert.True(t, strings.HasPrefix(resp.Event.ID, "local-"))
	assert.Contains(t, resp.Display, "Dinner at Trattoria Roma")
}

func TestCreateEvent_DefaultsEndToOneHour(t *testing.T) {
	s := newTestService()
	resp, err := s.CreateEvent(context.Background(), CreateEventArgs{
		Title:     "Coffee",
		Date:      "2025-07-04",
		StartTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04T09:00:00Z", resp.Event.Start)
	assert.Equal(t, "2025-07-04T10:00:00Z", resp.Event.End)
}

func TestCreateEvent_RejectsMalformedInput(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name string
		args CreateEventArgs
	}{
		{
			name: "bad date",
			args: CreateEventArgs{Title: "x", Date: "tomorrow", StartTime: "19:00"},
		},
		{
			name: "bad start time",
			args: CreateEventArgs{Title: "x", Date: "2025-07-04", StartTime: "7pm"},
		},
		{
			name: "bad end time",
			args: CreateEventArgs{Title: "x", Date: "2025-07-04", StartTime: "19:00", EndTime: "9pm"},
		},
		{
			name: "end before start",
			args: CreateEventArgs{Title: "x", Date: "2025-07-04", StartTime: "21:00", EndTime: "19:00"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateEvent(context.Background(), tc.args)
			require.Error(t, err)
			var tkErr toolkit.ToolKitError
			require.ErrorAs(t, err, &tkErr)
			assert.Equal(t, "invalid_arguments", tkErr.Code)
		})
	}
}

func TestListEvents_SampleData(t *testing.T) {
	s := newTestService()
	resp, err := s.ListEvents(context.Background(), ListEventsArgs{Date: "2025-08-01"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Events)
	// Sample timestamps follow the requested day.
	assert.Contains(t, resp.Events[0].Start, "2025-08-01")
	assert.Contains(t, resp.Display, "event(s)")
}

func TestListEvents_InvalidDate(t *testing.T) {
	s := newTestService()
	_, err := s.ListEvents(context.Background(), ListEventsArgs{Date: "01/08/2025"})
	require.Error(t, err)
	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "invalid_arguments", tkErr.Code)
}

func TestListEvents_HonorsMaxResults(t *testing.T) {
	s := newTestService()
	resp, err := s.ListEvents(context.Background(), ListEventsArgs{MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Events, 1)
}

func TestFormatEvents_PureAndTotal(t *testing.T) {
	assert.Equal(t, "No events found.", FormatEvents(nil))

	out := FormatEvents([]gcal.Event{{}})
	assert.Contains(t, out, "(untitled event)")
	assert.Equal(t, out, FormatEvents([]gcal.Event{{}}))
}
