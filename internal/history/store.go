// Package history is the durable per-team record of past analyses. Records
// are immutable JSON units grouped under a per-team directory; filenames
// embed the creation timestamp so lexicographic order equals chronological
// order.
package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

// DefaultLimit is how many prior meetings List returns when the caller does
// not care.
const DefaultLimit = 5

// currentMeetingGuard is the trailing window within which a record is
// considered part of the in-flight analysis rather than prior context.
const currentMeetingGuard = time.Minute

// filenameTimeLayout makes lexicographic filename order chronological.
const filenameTimeLayout = "20060102_150405"

// Store persists meeting records under baseDir, one directory per team key.
type Store struct {
	baseDir string
	now     func() time.Time
}

// NewStore creates a store rooted at baseDir. The directory is created on
// first save, not here, so a read-only consumer never mutates the disk.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

// TeamKey normalizes a team identifier to its storage key: lowercased with
// spaces replaced by underscores.
func TeamKey(teamID string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(teamID)), " ", "_")
}

// Save writes the record as a new immutable unit for the team and returns
// the path written. The record is stamped with the display team id, an
// ISO-8601 creation date, and its own filename. Saving never overwrites: a
// second save within the same second gets a numbered uniqueness suffix.
func (s *Store) Save(teamID string, rec *meeting.Record) (string, error) {
	key := TeamKey(teamID)
	if key == "" {
		return "", fmt.Errorf("empty team id")
	}

	teamDir := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(teamDir, 0755); err != nil {
		return "", fmt.Errorf("create team directory: %w", err)
	}

	now := s.now()
	f, filename, err := s.reserveUnit(teamDir, key, now)
	if err != nil {
		return "", err
	}
	path := filepath.Join(teamDir, filename)

	rec.TeamID = teamID
	rec.Date = now.Format(time.RFC3339)
	rec.Filename = filename
	rec.Sanitize()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		f.Close()
		return "", fmt.Errorf("marshal record: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("write record: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}

	return path, nil
}

// reserveUnit creates the first unused file for the timestamp. Creation is
// exclusive, so two concurrent saves in the same second each reserve their
// own unit; suffixes keep those units distinct and correctly ordered.
func (s *Store) reserveUnit(teamDir, key string, t time.Time) (*os.File, string, error) {
	stamp := t.Format(filenameTimeLayout)
	base := fmt.Sprintf("%s_%s", key, stamp)

	for i := 0; i < 100; i++ {
		filename := base + ".json"
		if i > 0 {
			filename = fmt.Sprintf("%s_%02d.json", base, i)
		}

		f, err := os.OpenFile(filepath.Join(teamDir, filename), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			return f, filename, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("create record: %w", err)
		}
	}

	return nil, "", fmt.Errorf("too many records for %s within one second", stamp)
}

// List returns up to limit records for the team, most recent first. With
// excludeRecent set, records dated within the last minute are skipped so an
// in-flight save is never mistaken for prior context. Unreadable or
// malformed units are skipped, not fatal.
func (s *Store) List(teamID string, limit int, excludeRecent bool) ([]*meeting.Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	key := TeamKey(teamID)
	teamDir := filepath.Join(s.baseDir, key)

	entries, err := os.ReadDir(teamDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read team directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, key+"_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}

	// Filenames embed the timestamp, so descending name order is
	// reverse-chronological.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	threshold := s.now().Add(-currentMeetingGuard)

	var records []*meeting.Record
	for _, name := range names {
		if len(records) >= limit {
			break
		}

		data, err := os.ReadFile(filepath.Join(teamDir, name))
		if err != nil {
			log.Printf("warning: skipping unreadable record %s: %v", name, err)
			continue
		}

		var rec meeting.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			log.Printf("warning: skipping malformed record %s: %v", name, err)
			continue
		}

		if excludeRecent && rec.Date != "" {
			// Unparseable dates are included rather than dropped.
			if t, err := time.Parse(time.RFC3339, rec.Date); err == nil && t.After(threshold) {
				continue
			}
		}

		records = append(records, &rec)
	}

	return records, nil
}

// ListTeams returns the sorted display names of every team with at least one
// stored record.
func (s *Store) ListTeams() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read storage directory: %w", err)
	}

	var teams []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		units, err := os.ReadDir(filepath.Join(s.baseDir, entry.Name()))
		if err != nil || len(units) == 0 {
			continue
		}
		teams = append(teams, strings.ReplaceAll(entry.Name(), "_", " "))
	}

	sort.Strings(teams)
	return teams, nil
}
