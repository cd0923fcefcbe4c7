// Package journal persists resolution outcomes to SQLite for audit: which
// keys were resolved, from which source, how many records, and how long the
// resolution took. Degraded (fallback) resolutions become queryable instead
// of only loggable.
package journal

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yzho285/public-holidays-display/internal/model"
	"github.com/yzho285/public-holidays-display/internal/resolver"
)

// Journal is a mutex-guarded single-writer SQLite store.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// DB returns the underlying sql.DB for health checks.
func (j *Journal) DB() *sql.DB { return j.db }

// New opens (or creates) the journal database.
func New(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS resolutions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		province     TEXT NOT NULL,
		range_start  TEXT NOT NULL,
		range_end    TEXT NOT NULL,
		source       TEXT NOT NULL,
		holiday_count INTEGER NOT NULL,
		duration_ms  INTEGER NOT NULL,
		created_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_resolutions_province ON resolutions(province);
	CREATE INDEX IF NOT EXISTS idx_resolutions_source ON resolutions(source);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	log.Printf("[journal] opened resolution journal at %s", dbPath)
	return &Journal{db: db}, nil
}

// Record persists one resolution event. Errors are returned for the caller
// to log; a failed audit write never blocks serving.
func (j *Journal) Record(e resolver.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(
		`INSERT INTO resolutions (province, range_start, range_end, source, holiday_count, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Key.Province,
		model.FormatDate(e.Key.Start),
		model.FormatDate(e.Key.End),
		string(e.Source),
		e.Count,
		e.Duration.Milliseconds(),
	)
	return err
}

// Row is one journal entry.
type Row struct {
	ID         int64  `json:"id"`
	Province   string `json:"province"`
	RangeStart string `json:"rangeStart"`
	RangeEnd   string `json:"rangeEnd"`
	Source     string `json:"source"`
	Count      int    `json:"holidayCount"`
	DurationMs int64  `json:"durationMs"`
	CreatedAt  string `json:"createdAt"`
}

// Recent returns the last N resolutions, newest first.
func (j *Journal) Recent(limit int) ([]Row, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		`SELECT id, province, range_start, range_end, source, holiday_count, duration_ms, created_at
		 FROM resolutions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Province, &r.RangeStart, &r.RangeEnd,
			&r.Source, &r.Count, &r.DurationMs, &r.CreatedAt); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
