package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/h-ess/concierge-toolkit/pkg/providers/gcal"
)

// FormatEvent renders one event as a confirmation block.
func FormatEvent(ev gcal.Event) string {
	var sb strings.Builder
	title := ev.Title
	if title == "" {
		title = "(untitled event)"
	}
	fmt.Fprintf(&sb, "Event created: %s\n", title)
	fmt.Fprintf(&sb, "When: %s to %s", prettyTime(ev.Start), prettyTime(ev.End))
	if ev.Location != "" {
		fmt.Fprintf(&sb, "\nWhere: %s", ev.Location)
	}
	if ev.Link != "" {
		fmt.Fprintf(&sb, "\nLink: %s", ev.Link)
	}
	return sb.String()
}

// FormatEvents renders a compact agenda listing.
func FormatEvents(events []gcal.Event) string {
	if len(events) == 0 {
		return "No events found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d event(s):\n", len(events))
	for i, ev := range events {
		title := ev.Title
		if title == "" {
			title = "(untitled event)"
		}
		fmt.Fprintf(&sb, "%d. %s — %s to %s", i+1, title, prettyTime(ev.Start), prettyTime(ev.End))
		if ev.Location != "" {
			fmt.Fprintf(&sb, " @ %s", ev.Location)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// prettyTime reformats an RFC3339 timestamp for display, passing through
// values it cannot parse.
func prettyTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Mon Jan 2 15:04")
}
