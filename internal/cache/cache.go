// Package cache is an optional SQLite-backed store of analysis results
// keyed by exact transcript content. It is purely an optimization: a miss
// or a cache error never affects the pipeline.
package cache

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

//go:embed schema.sql
var schemaSQL string

// Cache stores normalized records keyed by a transcript digest.
type Cache struct {
	db *sql.DB
}

// New opens (creating if needed) the cache database at path.
func New(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached record for key, if any. Corrupt entries are
// treated as misses.
func (c *Cache) Get(key string) (*meeting.Record, bool) {
	var payload string
	err := c.db.QueryRow(`SELECT record FROM analyses WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("warning: cache read for %s: %v", key, err)
		}
		return nil, false
	}

	var rec meeting.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		log.Printf("warning: discarding corrupt cache entry %s: %v", key, err)
		return nil, false
	}

	rec.Sanitize()
	return &rec, true
}

// Put stores the record under key, replacing any previous entry.
func (c *Cache) Put(key string, rec *meeting.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	_, err = c.db.Exec(`
		INSERT OR REPLACE INTO analyses (key, record, created_at)
		VALUES (?, ?, ?)
	`, key, string(payload), time.Now().Format(time.RFC3339))

	return err
}
