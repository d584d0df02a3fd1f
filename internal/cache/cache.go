// Package cache is the in-process TTL cache in front of the dashboard reads.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"golang.org/x/sync/singleflight"
)

const TopPerformersKey = "topPerformersData"

// Key prefixes; each one can carry its own TTL in the policy.
const (
	PlatformDataPrefix = "platformData_"
	SalesDataPrefix    = "salesData_"
)

func PlatformDataKey(platform domain.Platform, window domain.TimeWindow) string {
	return fmt.Sprintf("%s%s_%s", PlatformDataPrefix, platform, window)
}

func SalesDataKey(window domain.TimeWindow) string {
	return SalesDataPrefix + string(window)
}

// Entry is a cached value and the time it was stored.
type Entry struct {
	Data     any
	StoredAt time.Time
}

// Stale reports whether more than ttl has elapsed since the entry was stored.
func (e Entry) Stale(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.StoredAt) > ttl
}

// Observer is told about every lookup, used for hit/miss metrics.
type Observer func(key string, hit bool)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observe = o
	}
}

type Store struct {
	entries *ttlcache.Cache[string, Entry]
	loads   singleflight.Group
	policy  Policy
	now     func() time.Time
	observe Observer
}

func New(policy Policy, opts ...Option) *Store {
	s := &Store{
		entries: ttlcache.New[string, Entry](
			ttlcache.WithTTL[string, Entry](policy.TTLFor("")),
			ttlcache.WithDisableTouchOnHit[string, Entry](),
		),
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lookup reads key without reporting to the observer. Stale entries are
// dropped on read.
func (s *Store) lookup(key string) (Entry, bool) {
	item := s.entries.Get(key)
	if item == nil {
		return Entry{}, false
	}

	e := item.Value()
	if e.Stale(s.now(), s.policy.TTLFor(key)) {
		if current := s.entries.Get(key); current != nil && current.Value().StoredAt.Equal(e.StoredAt) {
			s.entries.Delete(key)
		}
		return Entry{}, false
	}
	return e, true
}

// Get returns the value under key unless it is missing or stale.
func (s *Store) Get(key string) (any, bool) {
	e, ok := s.lookup(key)

	if s.observe != nil {
		s.observe(key, ok)
	}
	if !ok {
		return nil, false
	}
	return e.Data, true
}

// Set stores data under key. The item also expires from the underlying
// cache after the key's TTL, so unread entries do not pile up.
func (s *Store) Set(key string, data any) {
	s.entries.Set(key, Entry{Data: data, StoredAt: s.now()}, s.policy.TTLFor(key))
}

// GetOrLoad returns the cached value or calls load and caches its result.
// Concurrent misses on the same key share one load. Errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.loads.Do(key, func() (any, error) {
		if e, ok := s.lookup(key); ok {
			return e.Data, nil
		}

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		s.Set(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) Delete(key string) {
	s.entries.Delete(key)
}

// Invalidate removes every key starting with one of prefixes, or everything
// when none are given. It returns the number of removed entries.
func (s *Store) Invalidate(prefixes ...string) int {
	if len(prefixes) == 0 {
		n := s.entries.Len()
		s.entries.DeleteAll()
		return n
	}

	removed := 0
	for _, key := range s.entries.Keys() {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				s.entries.Delete(key)
				removed++
				break
			}
		}
	}
	return removed
}

func (s *Store) Len() int {
	return s.entries.Len()
}
