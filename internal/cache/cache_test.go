package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vfg2006/social-insights-api/internal/cache"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time           { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStore(t *testing.T) {
	Convey("Given a store with the default policy", t, func() {
		clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
		var hits, misses int
		store := cache.New(cache.DefaultPolicy(),
			cache.WithClock(clock.Now),
			cache.WithObserver(func(_ string, hit bool) {
				if hit {
					hits++
				} else {
					misses++
				}
			}),
		)

		Convey("When a key was never stored", func() {
			v, ok := store.Get("missing")

			Convey("Then it is a miss", func() {
				So(ok, ShouldBeFalse)
				So(v, ShouldBeNil)
				So(misses, ShouldEqual, 1)
			})
		})

		Convey("When a value is stored", func() {
			store.Set(cache.TopPerformersKey, []string{"a"})

			Convey("And read back within the TTL", func() {
				clock.Advance(5 * time.Minute)
				v, ok := store.Get(cache.TopPerformersKey)

				Convey("Then it is a hit", func() {
					So(ok, ShouldBeTrue)
					So(v, ShouldResemble, []string{"a"})
					So(hits, ShouldEqual, 1)
				})
			})

			Convey("And read back after the TTL", func() {
				clock.Advance(5*time.Minute + time.Second)
				_, ok := store.Get(cache.TopPerformersKey)

				Convey("Then it is a miss and the entry is dropped", func() {
					So(ok, ShouldBeFalse)
					So(store.Len(), ShouldEqual, 0)
				})
			})
		})

		Convey("When invalidating by prefix", func() {
			store.Set(cache.PlatformDataKey(domain.PlatformTikTok, domain.WindowAllTime), 1)
			store.Set(cache.PlatformDataKey(domain.PlatformAll, domain.WindowLastYear), 2)
			store.Set(cache.SalesDataKey(domain.WindowLast3Months), 3)

			removed := store.Invalidate(cache.PlatformDataPrefix)

			Convey("Then only matching keys are removed", func() {
				So(removed, ShouldEqual, 2)
				So(store.Len(), ShouldEqual, 1)
				_, ok := store.Get("salesData_last3months")
				So(ok, ShouldBeTrue)
			})

			Convey("And invalidating without prefixes clears the rest", func() {
				So(store.Invalidate(), ShouldEqual, 1)
				So(store.Len(), ShouldEqual, 0)
			})
		})

		Convey("When loading through GetOrLoad", func() {
			calls := 0
			load := func(context.Context) (any, error) {
				calls++
				return "fresh", nil
			}

			first, err1 := store.GetOrLoad(context.Background(), "k", load)
			second, err2 := store.GetOrLoad(context.Background(), "k", load)

			Convey("Then the loader runs once", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first, ShouldEqual, "fresh")
				So(second, ShouldEqual, "fresh")
				So(calls, ShouldEqual, 1)
			})
		})

		Convey("When many callers miss the same key at once", func() {
			var calls atomic.Int32
			release := make(chan struct{})
			load := func(context.Context) (any, error) {
				calls.Add(1)
				<-release
				return "shared", nil
			}

			busy := cache.New(cache.DefaultPolicy())

			var wg sync.WaitGroup
			results := make([]any, 8)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i], _ = busy.GetOrLoad(context.Background(), "busy", load)
				}(i)
			}
			time.Sleep(20 * time.Millisecond)
			close(release)
			wg.Wait()

			Convey("Then the loader runs once and everyone gets its result", func() {
				So(calls.Load(), ShouldEqual, int32(1))
				for _, r := range results {
					So(r, ShouldEqual, "shared")
				}
			})
		})

		Convey("When the loader fails", func() {
			_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
				return nil, errors.New("boom")
			})

			Convey("Then nothing is cached", func() {
				So(err, ShouldNotBeNil)
				So(store.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestKeys(t *testing.T) {
	Convey("Cache keys follow the dashboard naming", t, func() {
		So(cache.PlatformDataKey(domain.PlatformFacebook, domain.WindowLast6Months), ShouldEqual, "platformData_facebook_last6months")
		So(cache.SalesDataKey(domain.WindowLastYear), ShouldEqual, "salesData_lastYear")
		So(cache.TopPerformersKey, ShouldEqual, "topPerformersData")
	})
}
