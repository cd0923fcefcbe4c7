// Package cache provides the resolution cache: an injected Get/Put store
// keyed by (province, start, end) holding immutable resolved snapshots.
// Entries are superseded on re-resolution, never mutated in place.
package cache

import (
	"fmt"
	"time"

	"github.com/yzho285/public-holidays-display/internal/model"
)

// Key identifies one resolution at day granularity.
type Key struct {
	Province string
	Start    time.Time
	End      time.Time
}

// String renders the key as "CODE|YYYY-MM-DD|YYYY-MM-DD".
func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s", k.Province, model.FormatDate(k.Start), model.FormatDate(k.End))
}

// Entry is a stored resolution snapshot.
type Entry struct {
	Holidays []model.Holiday
	StoredAt time.Time
}

// Age returns how long ago the entry was stored, as seen by the given clock.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.StoredAt)
}

// Cache is the injected store contract. Implementations must treat entries
// as opaque immutable values; concurrent Put for the same key is
// last-write-wins.
type Cache interface {
	Get(key Key) (Entry, bool)
	Put(key Key, entry Entry)
}

// Clock supplies the current time, injectable for deterministic expiry tests.
type Clock func() time.Time
