package gcal

// SampleEvents is the static listing served when no calendar token is
// configured. date, when set, replaces the day in the sample timestamps.
func SampleEvents(date string) []Event {
	day := date
	if day == "" {
		day = "2025-07-04"
	}
	return []Event{
		{
			ID:       "sample-standup",
			Title:    "Team standup",
			Start:    day + "T09:30:00Z",
			End:      day + "T09:45:00Z",
			Location: "Video call",
		},
		{
			ID:          "sample-lunch",
			Title:       "Lunch with Alex",
			Start:       day + "T12:30:00Z",
			End:         day + "T13:30:00Z",
			Location:    "Trattoria Roma",
			Description: "Catch up over pasta.",
		},
		{
			ID:    "sample-flight",
			Title: "Flight AA100 to London",
			Start: day + "T20:15:00Z",
			End:   day + "T23:45:00Z",
		},
	}
}
