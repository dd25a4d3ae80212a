package toolserver

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/priyank-82/Meet-Minding/internal/extract"
	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

// Tool is a named capability with a short description for /capabilities.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type toolFunc func(args map[string]interface{}) (interface{}, error)

type registeredTool struct {
	Tool
	fn toolFunc
}

// The tool set mirrors the extraction package so a consumer on the other
// side of the process boundary gets the same results as a linked caller.
var registry = []registeredTool{
	{Tool{"analyze_meeting_transcript", "Full pattern-based analysis of a meeting transcript"}, toolAnalyze},
	{Tool{"extract_action_items", "Extract tasks, optionally filtered by assignee"}, toolActionItems},
	{Tool{"get_meeting_summary", "Concise extractive summary bounded by max_length"}, toolSummary},
	{Tool{"get_participant_list", "Extract participant names from a transcript"}, toolParticipants},
	{Tool{"format_meeting_output", "Render an analysis result as json, markdown, or text"}, toolFormat},
	{Tool{"get_current_time", "Current date and time"}, toolCurrentTime},
	{Tool{"calculate_meeting_duration", "Duration between start_time and end_time"}, toolDuration},
}

// Tools lists the available tool descriptors.
func Tools() []Tool {
	out := make([]Tool, len(registry))
	for i, t := range registry {
		out[i] = t.Tool
	}
	return out
}

// Call invokes a tool by name.
func Call(name string, args map[string]interface{}) (interface{}, error) {
	for _, t := range registry {
		if t.Name == name {
			return t.fn(args)
		}
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}

func requireTranscript(args map[string]interface{}) (string, error) {
	transcript, _ := args["transcript"].(string)
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("transcript is required")
	}
	return transcript, nil
}

func toolAnalyze(args map[string]interface{}) (interface{}, error) {
	transcript, err := requireTranscript(args)
	if err != nil {
		return nil, err
	}
	return extract.Analyze(transcript), nil
}

func toolActionItems(args map[string]interface{}) (interface{}, error) {
	transcript, err := requireTranscript(args)
	if err != nil {
		return nil, err
	}

	tasks := extract.Tasks(transcript)

	if filter, _ := args["assignee_filter"].(string); filter != "" {
		var filtered []meeting.TaskItem
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Assignee), strings.ToLower(filter)) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if tasks == nil {
		tasks = []meeting.TaskItem{}
	}
	return tasks, nil
}

func toolSummary(args map[string]interface{}) (interface{}, error) {
	transcript, err := requireTranscript(args)
	if err != nil {
		return nil, err
	}

	maxLength := 200
	if v, ok := args["max_length"].(float64); ok && v > 0 {
		maxLength = int(v)
	}
	return extract.Summarize(transcript, maxLength), nil
}

func toolParticipants(args map[string]interface{}) (interface{}, error) {
	transcript, err := requireTranscript(args)
	if err != nil {
		return nil, err
	}
	participants := extract.Participants(transcript)
	if participants == nil {
		participants = []string{}
	}
	return participants, nil
}

func toolFormat(args map[string]interface{}) (interface{}, error) {
	raw, ok := args["analysis_result"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("analysis_result is required")
	}

	rec := meeting.Normalize(raw)
	format, _ := args["format_type"].(string)

	switch strings.ToLower(format) {
	case "markdown":
		return formatMarkdown(rec), nil
	case "text":
		return formatText(rec), nil
	default:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal result: %w", err)
		}
		return string(data), nil
	}
}

func formatMarkdown(rec *meeting.Record) string {
	var sb strings.Builder

	sb.WriteString("# Meeting Analysis Report\n\n")
	sb.WriteString("## Summary\n")
	sb.WriteString(rec.Summary + "\n\n")
	sb.WriteString("## Participants\n")
	sb.WriteString(strings.Join(rec.Participants, ", ") + "\n\n")

	sb.WriteString("## Key Decisions\n")
	for _, d := range rec.KeyDecisions {
		sb.WriteString("- " + d + "\n")
	}

	sb.WriteString("\n## Action Items\n")
	for _, t := range rec.Tasks {
		sb.WriteString(fmt.Sprintf("- **Task**: %s\n", t.Task))
		sb.WriteString(fmt.Sprintf("  - **Assignee**: %s\n", t.Assignee))
		sb.WriteString(fmt.Sprintf("  - **Due Date**: %s\n", t.DueDate))
		sb.WriteString(fmt.Sprintf("  - **Priority**: %s\n\n", t.Priority))
	}

	sb.WriteString("\n## Topics Discussed\n")
	for _, topic := range rec.TopicsDiscussed {
		sb.WriteString("- " + topic + "\n")
	}

	return sb.String()
}

func formatText(rec *meeting.Record) string {
	var sb strings.Builder

	sb.WriteString("MEETING ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 25) + "\n\n")
	sb.WriteString("Summary: " + rec.Summary + "\n\n")
	sb.WriteString("Participants: " + strings.Join(rec.Participants, ", ") + "\n\n")

	if len(rec.KeyDecisions) > 0 {
		sb.WriteString("Key Decisions:\n")
		for i, d := range rec.KeyDecisions {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, d))
		}
		sb.WriteString("\n")
	}

	if len(rec.Tasks) > 0 {
		sb.WriteString("Action Items:\n")
		for i, t := range rec.Tasks {
			sb.WriteString(fmt.Sprintf("%d. %s (Assigned to: %s)\n", i+1, t.Task, t.Assignee))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func toolCurrentTime(map[string]interface{}) (interface{}, error) {
	return time.Now().Format("2006-01-02 15:04:05"), nil
}

func toolDuration(args map[string]interface{}) (interface{}, error) {
	start, _ := args["start_time"].(string)
	end, _ := args["end_time"].(string)
	if start == "" || end == "" {
		return nil, fmt.Errorf("start_time and end_time are required")
	}

	layout := "2006-01-02 15:04"
	if len(start) == 5 {
		layout = "15:04"
	}

	startT, err := time.Parse(layout, start)
	if err != nil {
		return nil, fmt.Errorf("parse start_time: %w", err)
	}
	endT, err := time.Parse(layout, end)
	if err != nil {
		return nil, fmt.Errorf("parse end_time: %w", err)
	}

	d := endT.Sub(startT)
	if d < 0 {
		// Clock-only times that wrap past midnight.
		d += 24 * time.Hour
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%d hours and %d minutes", hours, minutes), nil
	}
	return fmt.Sprintf("%d minutes", minutes), nil
}
