package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

func TestTeamKey(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Demo Team":     "demo_team",
		"  Demo Team  ": "demo_team",
		"platform":      "platform",
		"A B C":         "a_b_c",
	}
	for in, want := range cases {
		if got := TeamKey(in); got != want {
			t.Errorf("TeamKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	saved := &meeting.Record{
		Summary:      "Planned the release.",
		Participants: []string{"John", "Sarah"},
		KeyDecisions: []string{"Ship Friday"},
		Tasks:        []meeting.TaskItem{meeting.NewTask("Write release notes")},
		ActionItems:  []string{"Write release notes"},
		NextMeeting:  meeting.NotSpecified,
	}

	path, err := store.Save("Demo Team", saved)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.Contains(path, "demo_team") {
		t.Errorf("path should use the normalized key, got %s", path)
	}

	// The stored unit is self-describing.
	if saved.TeamID != "Demo Team" {
		t.Errorf("TeamID = %q", saved.TeamID)
	}
	if saved.Filename == "" || !strings.HasSuffix(saved.Filename, ".json") {
		t.Errorf("Filename = %q", saved.Filename)
	}
	if _, err := time.Parse(time.RFC3339, saved.Date); err != nil {
		t.Errorf("Date %q is not RFC3339: %v", saved.Date, err)
	}

	// Old records only: skip the guard window for a record saved just now.
	got, err := store.List("Demo Team", 1, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	rec := got[0]
	if rec.Summary != saved.Summary {
		t.Errorf("Summary = %q", rec.Summary)
	}
	if rec.Filename != saved.Filename {
		t.Errorf("Filename = %q, want %q", rec.Filename, saved.Filename)
	}
	if len(rec.Tasks) != 1 || rec.Tasks[0].Task != "Write release notes" {
		t.Errorf("Tasks = %v", rec.Tasks)
	}
}

func TestListOrderingNewestFirst(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	times := []time.Time{
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	}
	for i, ts := range times {
		store.now = func() time.Time { return ts }
		if _, err := store.Save("demo", &meeting.Record{Summary: []string{"first", "second", "third"}[i]}); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	store.now = time.Now
	got, err := store.List("demo", 3, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"third", "second", "first"} {
		if got[i].Summary != want {
			t.Errorf("record %d summary = %q, want %q", i, got[i].Summary, want)
		}
	}
}

func TestSaveSameSecondDistinctUnits(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	first, err := store.Save("Demo Team", &meeting.Record{Summary: "one"})
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	second, err := store.Save("Demo Team", &meeting.Record{Summary: "two"})
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if first == second {
		t.Fatalf("same-second saves must not collide: %s", first)
	}

	store.now = time.Now
	got, err := store.List("Demo Team", 5, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct units, got %d", len(got))
	}
	// Suffix sorts after the bare stamp, so the second save is newest.
	if got[0].Summary != "two" || got[1].Summary != "one" {
		t.Errorf("order = [%q, %q]", got[0].Summary, got[1].Summary)
	}
}

func TestSaveConcurrentSameSecond(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	const savers = 8

	var wg sync.WaitGroup
	paths := make([]string, savers)
	errs := make([]error, savers)
	for i := 0; i < savers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], errs[i] = store.Save("demo", &meeting.Record{Summary: "concurrent"})
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, savers)
	for i := 0; i < savers; i++ {
		if errs[i] != nil {
			t.Fatalf("Save %d failed: %v", i, errs[i])
		}
		if seen[paths[i]] {
			t.Fatalf("two saves reserved the same unit: %s", paths[i])
		}
		seen[paths[i]] = true
	}

	store.now = time.Now
	got, err := store.List("demo", savers+1, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != savers {
		t.Errorf("expected %d distinct units, got %d", savers, len(got))
	}
}

func TestListGuardWindowExcludesInFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	old := time.Now().Add(-time.Hour)
	store.now = func() time.Time { return old }
	if _, err := store.Save("demo", &meeting.Record{Summary: "old meeting"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	store.now = time.Now
	if _, err := store.Save("demo", &meeting.Record{Summary: "in-flight"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.List("demo", 5, true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Summary != "old meeting" {
		t.Errorf("guard window should hide the fresh record, got %v", summaries(got))
	}

	all, err := store.List("demo", 5, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("without the guard both records are visible, got %d", len(all))
	}
}

func TestListSkipsMalformedUnits(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(dir)

	if _, err := store.Save("demo", &meeting.Record{Summary: "good"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	bad := filepath.Join(dir, "demo", "demo_20200101_000000.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write bad unit: %v", err)
	}

	got, err := store.List("demo", 5, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Summary != "good" {
		t.Errorf("malformed unit should be skipped, got %v", summaries(got))
	}
}

func TestListUnknownTeam(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	got, err := store.List("nobody", 5, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestListTeams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(dir)

	for _, team := range []string{"Platform Team", "apollo"} {
		if _, err := store.Save(team, &meeting.Record{Summary: "x"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	// An empty team directory has no units and is not a team.
	if err := os.MkdirAll(filepath.Join(dir, "ghost_team"), 0755); err != nil {
		t.Fatal(err)
	}

	teams, err := store.ListTeams()
	if err != nil {
		t.Fatalf("ListTeams failed: %v", err)
	}

	want := []string{"apollo", "platform team"}
	if len(teams) != len(want) {
		t.Fatalf("teams = %v, want %v", teams, want)
	}
	for i := range want {
		if teams[i] != want[i] {
			t.Errorf("teams[%d] = %q, want %q", i, teams[i], want[i])
		}
	}
}

func TestSavedUnitIsIndentedJSON(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	path, err := store.Save("demo", &meeting.Record{Summary: "readable"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read unit: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"summary\"") {
		t.Error("expected human-readable indentation")
	}

	var rec meeting.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("stored unit is not valid JSON: %v", err)
	}
	if rec.Filename != filepath.Base(path) {
		t.Errorf("embedded filename %q != actual %q", rec.Filename, filepath.Base(path))
	}
}

func summaries(records []*meeting.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Summary
	}
	return out
}
