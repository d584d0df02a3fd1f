package chart

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Instance is the chart currently bound to an id.
type Instance struct {
	Config     Config    `json:"config"`
	Revision   int       `json:"revision"`
	RenderedAt time.Time `json:"rendered_at"`
}

// Registry holds one live instance per chart id. Rendering an id that is
// already bound destroys the previous instance first, so an id never carries
// two configurations.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]Instance
	revisions map[string]int
	now       func() time.Time
	onDestroy func(id string, old Instance)
}

type RegistryOption func(*Registry)

func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// WithDestroyHook is called with the replaced instance every time one is destroyed.
func WithDestroyHook(fn func(id string, old Instance)) RegistryOption {
	return func(r *Registry) {
		r.onDestroy = fn
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		instances: make(map[string]Instance),
		revisions: make(map[string]int),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render binds cfg to id, replacing any existing instance.
func (r *Registry) Render(id string, cfg Config) Instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.destroyLocked(id)

	cfg.ID = id
	r.revisions[id]++
	inst := Instance{
		Config:     cfg,
		Revision:   r.revisions[id],
		RenderedAt: r.now(),
	}
	r.instances[id] = inst

	logrus.WithFields(logrus.Fields{
		"chart":    id,
		"revision": inst.Revision,
		"no_data":  cfg.NoData,
	}).Debug("chart rendered")

	return inst
}

func (r *Registry) Get(id string) (Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.instances[id]
	return inst, ok
}

// Destroy unbinds id. The revision counter is kept so a later Render still
// moves forward.
func (r *Registry) Destroy(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.destroyLocked(id)
}

func (r *Registry) destroyLocked(id string) bool {
	old, ok := r.instances[id]
	if !ok {
		return false
	}

	delete(r.instances, id)
	if r.onDestroy != nil {
		r.onDestroy(id, old)
	}
	return true
}

func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
