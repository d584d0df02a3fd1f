package scheduler

//go:generate mockgen -source=job.go -destination=mocks/job.go -package=mocks

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// JobRecorder receives the outcome of every run.
type JobRecorder interface {
	JobRun(job string, elapsed time.Duration, err error)
}

// jobGuard keeps a job from overlapping with itself and remembers the last run.
type jobGuard struct {
	name     string
	recorder JobRecorder

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

// run executes fn unless a previous run is still going. It reports whether
// fn ran.
func (g *jobGuard) run(fn func() error) bool {
	g.mu.Lock()
	if g.running {
		g.mu.Unlock()
		logrus.WithField("job", g.name).Info("Job already running, skipping")
		return false
	}
	g.running = true
	startedAt := time.Now()
	g.lastStartedAt = startedAt
	g.mu.Unlock()

	err := fn()
	elapsed := time.Since(startedAt)

	g.mu.Lock()
	g.running = false
	g.lastCompletedAt = time.Now()
	g.lastError = ""
	if err != nil {
		g.lastError = err.Error()
	}
	g.mu.Unlock()

	if g.recorder != nil {
		g.recorder.JobRun(g.name, elapsed, err)
	}
	return true
}

func (g *jobGuard) isRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *jobGuard) status() map[string]any {
	g.mu.Lock()
	defer g.mu.Unlock()

	return map[string]any{
		"running":                g.running,
		"last_sync_started_at":   g.lastStartedAt,
		"last_sync_completed_at": g.lastCompletedAt,
		"last_error":             g.lastError,
	}
}
