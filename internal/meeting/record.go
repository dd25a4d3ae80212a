// Package meeting defines the canonical structured output of transcript
// analysis and the normalization rules that every analysis path funnels
// through, so downstream formatting never has to special-case where a
// record came from.
package meeting

import "strings"

// NotSpecified is the sentinel for fields the transcript never mentioned.
const NotSpecified = "Not specified"

// Task priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task statuses.
const (
	StatusAssigned   = "assigned"
	StatusPending    = "pending"
	StatusDiscussed  = "discussed"
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
)

// TaskItem is a single task extracted from a meeting. All five fields are
// always populated; missing upstream data is defaulted.
type TaskItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// Record is one persisted analysis outcome. TeamID, Date, and Filename are
// stamped by the history store on save; units on disk are self-describing.
type Record struct {
	TeamID          string     `json:"team_id,omitempty"`
	Date            string     `json:"date,omitempty"`
	Filename        string     `json:"filename,omitempty"`
	Summary         string     `json:"summary"`
	Participants    []string   `json:"participants"`
	KeyDecisions    []string   `json:"key_decisions"`
	Tasks           []TaskItem `json:"tasks"`
	ActionItems     []string   `json:"action_items"`
	NextMeeting     string     `json:"next_meeting"`
	TopicsDiscussed []string   `json:"topics_discussed"`
}

var validPriorities = map[string]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

var validStatuses = map[string]bool{
	StatusAssigned:   true,
	StatusPending:    true,
	StatusDiscussed:  true,
	StatusCompleted:  true,
	StatusInProgress: true,
}

// Normalize builds a Record from loosely structured data, as returned by the
// generation capability after JSON extraction. Missing fields get their
// defaults, task entries may be objects or bare strings, and priority/status
// values outside the allowed sets are clamped to their defaults.
func Normalize(raw map[string]interface{}) *Record {
	r := &Record{
		Summary:         asString(raw["summary"]),
		Participants:    asStringSlice(raw["participants"]),
		KeyDecisions:    asStringSlice(raw["key_decisions"]),
		ActionItems:     asStringSlice(raw["action_items"]),
		NextMeeting:     asString(raw["next_meeting"]),
		TopicsDiscussed: asStringSlice(raw["topics_discussed"]),
	}
	if r.NextMeeting == "" {
		r.NextMeeting = NotSpecified
	}

	if tasks, ok := raw["tasks"].([]interface{}); ok {
		for _, t := range tasks {
			switch v := t.(type) {
			case map[string]interface{}:
				r.Tasks = append(r.Tasks, normalizeTask(v))
			case string:
				r.Tasks = append(r.Tasks, NewTask(v))
			}
		}
	}

	r.ensureSlices()
	return r
}

// NewTask returns a TaskItem with every field defaulted except the description.
func NewTask(description string) TaskItem {
	return TaskItem{
		Task:     description,
		Assignee: NotSpecified,
		DueDate:  NotSpecified,
		Priority: PriorityMedium,
		Status:   StatusDiscussed,
	}
}

// Sanitize enforces the record shape in place: tasks carry all five fields,
// nil slices become empty, and the next-meeting sentinel is applied.
func (r *Record) Sanitize() {
	if r.NextMeeting == "" {
		r.NextMeeting = NotSpecified
	}
	for i := range r.Tasks {
		sanitizeTask(&r.Tasks[i])
	}
	r.ensureSlices()
}

func (r *Record) ensureSlices() {
	if r.Participants == nil {
		r.Participants = []string{}
	}
	if r.KeyDecisions == nil {
		r.KeyDecisions = []string{}
	}
	if r.Tasks == nil {
		r.Tasks = []TaskItem{}
	}
	if r.ActionItems == nil {
		r.ActionItems = []string{}
	}
	if r.TopicsDiscussed == nil {
		r.TopicsDiscussed = []string{}
	}
}

func normalizeTask(m map[string]interface{}) TaskItem {
	t := TaskItem{
		Task:     asString(m["task"]),
		Assignee: asString(m["assignee"]),
		DueDate:  asString(m["due_date"]),
		Priority: asString(m["priority"]),
		Status:   asString(m["status"]),
	}
	sanitizeTask(&t)
	return t
}

func sanitizeTask(t *TaskItem) {
	if t.Assignee == "" {
		t.Assignee = NotSpecified
	}
	if t.DueDate == "" {
		t.DueDate = NotSpecified
	}
	if !validPriorities[strings.ToLower(t.Priority)] {
		t.Priority = PriorityMedium
	} else {
		t.Priority = strings.ToLower(t.Priority)
	}
	if !validStatuses[strings.ToLower(t.Status)] {
		t.Status = StatusDiscussed
	} else {
		t.Status = strings.ToLower(t.Status)
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
