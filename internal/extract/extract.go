// Package extract is the deterministic, pattern-based transcript analyzer.
// It produces the same record shape as the generation-backed path and is
// used whenever the generation capability is unreachable, as well as by the
// tool server's single-purpose extraction tools.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

const (
	maxTasks     = 10
	maxDecisions = 5
	maxTopics    = 5

	// Decision captures shorter than this are treated as noise.
	minDecisionLen = 10
)

var speakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^([A-Z][a-zA-Z ]+):\s`),
	regexp.MustCompile(`\[([A-Z][a-zA-Z ]+)\]`),
	regexp.MustCompile(`Speaker\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*)`),
}

var (
	taskIndicatorPattern = regexp.MustCompile(`(?i)(?:action item|task|todo|assignment|responsible for|will do|needs to|should)[:.\s]+([^.!?\n]+)`)
	taskAssigneePattern  = regexp.MustCompile(`([A-Z][a-zA-Z ]+?)\s+(?i:will|should|needs to|is responsible for|assigned to)\s+([^.!?\n]+)`)
	taskByPattern        = regexp.MustCompile(`(?i:by)\s+([A-Z][a-zA-Z ]+)[:.\s]+([^.!?\n]+)`)
)

var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:decided|decision|agreed|resolved|concluded)[:.\s]+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)we\s+(?:will|shall|agreed to|decided to)\s+([^.!?\n]+)`),
	regexp.MustCompile(`(?i)final decision[:.\s]+([^.!?\n]+)`),
}

var topicPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z]{3,}\b`)

var topicStopwords = map[string]bool{
	"Speaker": true,
	"The":     true,
	"This":    true,
	"That":    true,
	"With":    true,
	"From":    true,
}

// Analyze runs every extractor over the transcript and assembles a full
// record. Identical input always yields an identical record.
func Analyze(transcript string) *meeting.Record {
	tasks := Tasks(transcript)

	actionItems := make([]string, 0, len(tasks))
	for _, t := range tasks {
		actionItems = append(actionItems, t.Task)
	}

	// Explicit assignees count as participants even when they never speak.
	participants := Participants(transcript)
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		seen[p] = true
	}
	for _, t := range tasks {
		if t.Assignee != meeting.NotSpecified && !seen[t.Assignee] {
			seen[t.Assignee] = true
			participants = append(participants, t.Assignee)
		}
	}

	r := &meeting.Record{
		Summary:         Summary(transcript),
		Participants:    participants,
		KeyDecisions:    Decisions(transcript),
		Tasks:           tasks,
		ActionItems:     actionItems,
		NextMeeting:     meeting.NotSpecified,
		TopicsDiscussed: Topics(transcript),
	}
	r.Sanitize()
	return r
}

// Participants extracts speaker names from "Name:", "[Name]", and
// "Speaker Name" forms, de-duplicated in first-seen order. Placeholder
// tokens are excluded.
func Participants(transcript string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, pattern := range speakerPatterns {
		for _, match := range pattern.FindAllStringSubmatch(transcript, -1) {
			name := strings.TrimSpace(match[1])
			if len(name) <= 1 || name == "Speaker" || name == "Unknown" {
				continue
			}
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	return names
}

// Tasks extracts up to ten task items. Clauses following a task-indicator
// phrase become unassigned tasks; "Name will/should/... <clause>" forms bind
// an explicit assignee and are marked assigned.
func Tasks(transcript string) []meeting.TaskItem {
	var tasks []meeting.TaskItem

	for _, match := range taskIndicatorPattern.FindAllStringSubmatch(transcript, -1) {
		desc := strings.TrimSpace(match[1])
		if desc == "" {
			continue
		}
		tasks = append(tasks, meeting.NewTask(desc))
	}

	for _, pattern := range []*regexp.Regexp{taskAssigneePattern, taskByPattern} {
		for _, match := range pattern.FindAllStringSubmatch(transcript, -1) {
			assignee := strings.TrimSpace(match[1])
			desc := strings.TrimSpace(match[2])
			if assignee == "" || desc == "" {
				continue
			}
			tasks = append(tasks, meeting.TaskItem{
				Task:     desc,
				Assignee: assignee,
				DueDate:  meeting.NotSpecified,
				Priority: meeting.PriorityMedium,
				Status:   meeting.StatusAssigned,
			})
		}
	}

	if len(tasks) > maxTasks {
		tasks = tasks[:maxTasks]
	}
	return tasks
}

// Decisions extracts up to five decision statements, dropping captures too
// short to carry meaning.
func Decisions(transcript string) []string {
	var decisions []string

	for _, pattern := range decisionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(transcript, -1) {
			decision := strings.TrimSpace(match[1])
			if len(decision) > minDecisionLen {
				decisions = append(decisions, decision)
			}
		}
	}

	if len(decisions) > maxDecisions {
		decisions = decisions[:maxDecisions]
	}
	return decisions
}

// Summary joins the first three sentence-delimited segments. A transcript
// with no sentence breaks is used verbatim.
func Summary(transcript string) string {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return ""
	}
	if !strings.Contains(transcript, ".") {
		return transcript
	}

	segments := strings.Split(transcript, ".")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	summary := strings.TrimSpace(strings.Join(segments, ". "))
	if summary == "" {
		return ""
	}
	return strings.TrimSuffix(summary, ".") + "."
}

// Topics returns the five most frequent capitalized words longer than three
// characters, excluding a small stopword set. Ties keep first-seen order.
func Topics(transcript string) []string {
	counts := make(map[string]int)
	var order []string

	for _, word := range topicPattern.FindAllString(transcript, -1) {
		if topicStopwords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTopics {
		order = order[:maxTopics]
	}
	return order
}
