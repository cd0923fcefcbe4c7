package cache

import (
	"testing"
	"time"

	"github.com/yzho285/public-holidays-display/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestMemory_PutGet(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory(func() time.Time { return now })

	key := Key{Province: "ON", Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-12-31")}
	if _, ok := m.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	m.Put(key, Entry{Holidays: []model.Holiday{{ID: "x", Name: "X"}}})
	e, ok := m.Get(key)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if !e.StoredAt.Equal(now) {
		t.Errorf("StoredAt = %v, want clock time %v", e.StoredAt, now)
	}
	if len(e.Holidays) != 1 || e.Holidays[0].ID != "x" {
		t.Errorf("stored holidays = %+v", e.Holidays)
	}
}

func TestMemory_KeyGranularity(t *testing.T) {
	m := NewMemory(time.Now)
	a := Key{Province: "ON", Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-12-31")}
	b := Key{Province: "QC", Start: a.Start, End: a.End}
	c := Key{Province: "ON", Start: a.Start, End: mustDate(t, "2024-06-30")}

	m.Put(a, Entry{})
	if _, ok := m.Get(b); ok {
		t.Error("province must be part of the key")
	}
	if _, ok := m.Get(c); ok {
		t.Error("end date must be part of the key")
	}
}

func TestMemory_SupersedeLastWriteWins(t *testing.T) {
	clock := time.Now
	m := NewMemory(clock)
	key := Key{Province: "BC", Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-12-31")}

	m.Put(key, Entry{Holidays: []model.Holiday{{ID: "old"}}})
	m.Put(key, Entry{Holidays: []model.Holiday{{ID: "new"}}})

	e, _ := m.Get(key)
	if len(e.Holidays) != 1 || e.Holidays[0].ID != "new" {
		t.Errorf("expected superseding write to win, got %+v", e.Holidays)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestEntry_Age(t *testing.T) {
	stored := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	e := Entry{StoredAt: stored}
	if got := e.Age(stored.Add(25 * time.Hour)); got != 25*time.Hour {
		t.Errorf("Age = %v, want 25h", got)
	}
}
