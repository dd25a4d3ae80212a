package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

// FormatContext renders prior meeting records into the text block embedded
// in a generation request. Records are expected most recent first, as
// returned by List. An empty history yields an empty block, which the
// orchestrator treats as "no continuity instructions". Pure formatting: no
// I/O, no mutation.
func FormatContext(teamID string, meetings []*meeting.Record) string {
	if len(meetings) == 0 {
		return ""
	}

	parts := []string{
		fmt.Sprintf("\n=== PREVIOUS MEETING CONTEXT FOR TEAM: %s ===\n", strings.ToUpper(teamID)),
		"The following are summaries from recent team meetings. Use this context to:",
		"- Track progress on previously assigned tasks",
		"- Identify recurring issues or themes",
		"- Note completed vs. pending action items",
		"- Provide continuity in task tracking\n",
	}

	for i, m := range meetings {
		parts = append(parts, fmt.Sprintf("\n--- Meeting %d (%s) ---", i+1, formatMeetingDate(m.Date)))

		if m.Summary != "" {
			parts = append(parts, "Summary: "+m.Summary)
		}

		if len(m.Tasks) > 0 {
			parts = append(parts, "\nPrevious Action Items:")
			for _, t := range m.Tasks {
				parts = append(parts, fmt.Sprintf("  • %s (Assigned: %s, Due: %s, Status: %s)",
					t.Task, t.Assignee, t.DueDate, t.Status))
			}
		}

		if len(m.KeyDecisions) > 0 {
			parts = append(parts, "\nKey Decisions: "+strings.Join(m.KeyDecisions, "; "))
		}

		parts = append(parts, "")
	}

	parts = append(parts, "=== END PREVIOUS MEETING CONTEXT ===\n")

	return strings.Join(parts, "\n")
}

// formatMeetingDate renders an ISO-8601 date as "YYYY-MM-DD HH:MM".
// Unparseable values degrade to a truncated raw form rather than failing.
func formatMeetingDate(date string) string {
	if date == "" {
		return "Unknown date"
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	if len(date) > 16 {
		return date[:16]
	}
	return date
}
