package meeting

import (
	"reflect"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	r := Normalize(map[string]interface{}{})

	if r.Summary != "" {
		t.Errorf("expected empty summary, got %q", r.Summary)
	}
	if r.NextMeeting != NotSpecified {
		t.Errorf("expected %q, got %q", NotSpecified, r.NextMeeting)
	}
	if r.Participants == nil || r.KeyDecisions == nil || r.Tasks == nil || r.ActionItems == nil || r.TopicsDiscussed == nil {
		t.Error("expected all slices to be non-nil")
	}
	if len(r.Tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(r.Tasks))
	}
}

func TestNormalizeFullRecord(t *testing.T) {
	t.Parallel()

	r := Normalize(map[string]interface{}{
		"summary":      "The team aligned on the release plan.",
		"participants": []interface{}{"John", "Sarah"},
		"key_decisions": []interface{}{
			"Ship on Friday",
		},
		"tasks": []interface{}{
			map[string]interface{}{
				"task":     "Write release notes",
				"assignee": "Sarah",
				"priority": "HIGH",
				"status":   "Assigned",
			},
		},
		"action_items":     []interface{}{"Write release notes"},
		"next_meeting":     "Monday 10:00",
		"topics_discussed": []interface{}{"Release"},
	})

	if !reflect.DeepEqual(r.Participants, []string{"John", "Sarah"}) {
		t.Errorf("participants = %v", r.Participants)
	}
	if len(r.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(r.Tasks))
	}

	task := r.Tasks[0]
	if task.Priority != PriorityHigh {
		t.Errorf("expected priority normalized to %q, got %q", PriorityHigh, task.Priority)
	}
	if task.Status != StatusAssigned {
		t.Errorf("expected status normalized to %q, got %q", StatusAssigned, task.Status)
	}
	if task.DueDate != NotSpecified {
		t.Errorf("expected due date defaulted, got %q", task.DueDate)
	}
	if r.NextMeeting != "Monday 10:00" {
		t.Errorf("next_meeting = %q", r.NextMeeting)
	}
}

func TestNormalizeStringTasks(t *testing.T) {
	t.Parallel()

	r := Normalize(map[string]interface{}{
		"tasks": []interface{}{"Update the roadmap", 42, map[string]interface{}{"task": "Review budget"}},
	})

	if len(r.Tasks) != 2 {
		t.Fatalf("expected 2 tasks (non-string, non-object dropped), got %d", len(r.Tasks))
	}

	first := r.Tasks[0]
	if first.Task != "Update the roadmap" {
		t.Errorf("task = %q", first.Task)
	}
	if first.Assignee != NotSpecified || first.DueDate != NotSpecified {
		t.Errorf("expected defaults, got assignee=%q due=%q", first.Assignee, first.DueDate)
	}
	if first.Priority != PriorityMedium || first.Status != StatusDiscussed {
		t.Errorf("expected medium/discussed, got %q/%q", first.Priority, first.Status)
	}
}

func TestNormalizeInvalidEnums(t *testing.T) {
	t.Parallel()

	r := Normalize(map[string]interface{}{
		"tasks": []interface{}{
			map[string]interface{}{
				"task":     "Do something",
				"priority": "urgent",
				"status":   "maybe",
			},
		},
	})

	if r.Tasks[0].Priority != PriorityMedium {
		t.Errorf("unknown priority should clamp to medium, got %q", r.Tasks[0].Priority)
	}
	if r.Tasks[0].Status != StatusDiscussed {
		t.Errorf("unknown status should clamp to discussed, got %q", r.Tasks[0].Status)
	}
}

func TestSanitizeNilSlices(t *testing.T) {
	t.Parallel()

	r := &Record{Summary: "x"}
	r.Sanitize()

	if r.Participants == nil || r.Tasks == nil || r.ActionItems == nil {
		t.Error("Sanitize should replace nil slices with empty ones")
	}
	if r.NextMeeting != NotSpecified {
		t.Errorf("NextMeeting = %q", r.NextMeeting)
	}
}
