// Package resolver reconciles the remote holiday source with the local
// catalog: cache lookup, whole-range remote fetch, catalog fallback,
// range/province filtering, de-duplication, and deterministic ordering.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/yzho285/public-holidays-display/internal/cache"
	"github.com/yzho285/public-holidays-display/internal/catalog"
	"github.com/yzho285/public-holidays-display/internal/model"
	"github.com/yzho285/public-holidays-display/internal/remote"
)

// DefaultTTL is the cache freshness window.
const DefaultTTL = 24 * time.Hour

// Only precondition violations are caller-visible; remote failures degrade
// to the catalog and never propagate.
var (
	ErrUnknownProvince = errors.New("unknown province code")
	ErrInvalidRange    = errors.New("start date after end date")
)

// Source tags where a resolution's data came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Resolution is a resolved, ordered holiday set plus its provenance. Source
// lets consumers surface an informational offline-data note without the
// engine ever returning a hard failure.
type Resolution struct {
	Holidays []model.Holiday
	Source   Source
}

// Event describes one completed resolution, for observers (metrics, audit
// journal, refresh feed).
type Event struct {
	Key      cache.Key
	Source   Source
	Count    int
	Duration time.Duration
}

// Config assembles a Service.
type Config struct {
	Fetcher remote.Fetcher
	Cache   cache.Cache
	Clock   cache.Clock
	TTL     time.Duration                  // default DefaultTTL
	Catalog func(year int) []model.Holiday // default catalog.Holidays
	Notify  func(Event)                    // optional observer hook
}

// Service resolves (province, date range) queries to holiday lists.
type Service struct {
	fetcher remote.Fetcher
	cache   cache.Cache
	clock   cache.Clock
	ttl     time.Duration
	catalog func(year int) []model.Holiday
	notify  func(Event)
}

// New builds a Service, applying defaults for TTL, clock, and catalog.
func New(cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Holidays
	}
	return &Service{
		fetcher: cfg.Fetcher,
		cache:   cfg.Cache,
		clock:   cfg.Clock,
		ttl:     cfg.TTL,
		catalog: cfg.Catalog,
		notify:  cfg.Notify,
	}
}

// Resolve returns the ordered holidays for the province within [start, end]
// inclusive. Fresh cache entries are returned verbatim; otherwise the remote
// source is attempted for every year in the range, falling back to the local
// catalog when any year fails. Only remote successes are cached, so a later
// call during the same window retries the remote source instead of being
// locked into stale fallback data.
func (s *Service) Resolve(ctx context.Context, provinceCode string, start, end time.Time) (Resolution, error) {
	if !model.ValidProvince(provinceCode) {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownProvince, provinceCode)
	}
	if start.After(end) {
		return Resolution{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			model.FormatDate(start), model.FormatDate(end))
	}

	key := cache.Key{Province: provinceCode, Start: day(start), End: day(end)}

	if entry, ok := s.cache.Get(key); ok && entry.Age(s.clock()) < s.ttl {
		return Resolution{Holidays: entry.Holidays, Source: SourceCache}, nil
	}

	began := s.clock()
	res := s.fetch(ctx, key)
	if s.notify != nil {
		s.notify(Event{
			Key:      key,
			Source:   res.Source,
			Count:    len(res.Holidays),
			Duration: s.clock().Sub(began),
		})
	}
	return res, nil
}

func (s *Service) fetch(ctx context.Context, key cache.Key) Resolution {
	years := yearsIn(key.Start, key.End)

	result := s.fetcher.FetchYears(ctx, key.Province, years)
	if !result.Failed {
		holidays := finalize(filterRange(result.Holidays, key.Start, key.End))
		s.cache.Put(key, cache.Entry{Holidays: holidays})
		return Resolution{Holidays: holidays, Source: SourceRemote}
	}

	// Recoverable: serve the deterministic local catalog instead.
	log.Printf("[resolver] remote fetch failed for %s, serving catalog fallback: %v",
		key, result.Reason)

	var all []model.Holiday
	for _, year := range years {
		all = append(all, s.catalog(year)...)
	}
	var matched []model.Holiday
	for _, h := range filterRange(all, key.Start, key.End) {
		if !h.Provinces.Contains(key.Province) {
			continue
		}
		// Per-call projection: the catalog's own definition stays untouched.
		h.Provinces = h.Provinces.Projected(key.Province)
		matched = append(matched, h)
	}
	return Resolution{Holidays: finalize(matched), Source: SourceFallback}
}

// day truncates a time to its UTC calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func yearsIn(start, end time.Time) []int {
	var years []int
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}
	return years
}

func filterRange(holidays []model.Holiday, start, end time.Time) []model.Holiday {
	var out []model.Holiday
	for _, h := range holidays {
		if h.Date.Before(start) || h.Date.After(end) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// finalize de-duplicates by id (first occurrence wins) and orders ascending
// by date, ties broken by id for determinism.
func finalize(holidays []model.Holiday) []model.Holiday {
	seen := make(map[string]bool, len(holidays))
	out := make([]model.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
