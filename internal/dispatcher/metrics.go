package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/lineclip/lineclip/internal/dispatcher/handler"
)

// actionStats accumulates dispatch statistics for one action.
type actionStats struct {
	count         int64
	errors        int64
	noops         int64
	panics        int64
	totalDuration time.Duration
	maxDuration   time.Duration
}

// Metrics collects per-action dispatch statistics.
type Metrics struct {
	mu      sync.Mutex
	actions map[string]*actionStats
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actions: make(map[string]*actionStats),
	}
}

// RecordDispatch records one dispatch of an action.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats(actionName)
	stats.count++
	stats.totalDuration += duration
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
	switch status {
	case handler.StatusError:
		stats.errors++
	case handler.StatusNoOp:
		stats.noops++
	}
}

// RecordPanic records a recovered handler panic.
func (m *Metrics) RecordPanic(actionName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats(actionName).panics++
}

// stats returns the stats entry for an action, creating it if needed.
// Caller must hold the lock.
func (m *Metrics) stats(actionName string) *actionStats {
	stats, ok := m.actions[actionName]
	if !ok {
		stats = &actionStats{}
		m.actions[actionName] = stats
	}
	return stats
}

// ActionMetrics is a point-in-time summary for one action.
type ActionMetrics struct {
	Name          string
	Count         int64
	Errors        int64
	NoOps         int64
	Panics        int64
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// AvgDuration returns the mean dispatch duration.
func (a ActionMetrics) AvgDuration() time.Duration {
	if a.Count == 0 {
		return 0
	}
	return a.TotalDuration / time.Duration(a.Count)
}

// Snapshot returns a summary for every recorded action, most dispatched
// first.
func (m *Metrics) Snapshot() []ActionMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]ActionMetrics, 0, len(m.actions))
	for name, stats := range m.actions {
		result = append(result, ActionMetrics{
			Name:          name,
			Count:         stats.count,
			Errors:        stats.errors,
			NoOps:         stats.noops,
			Panics:        stats.panics,
			TotalDuration: stats.totalDuration,
			MaxDuration:   stats.maxDuration,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// TotalDispatches returns the number of dispatches across all actions.
func (m *Metrics) TotalDispatches() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total int64
	for _, stats := range m.actions {
		total += stats.count
	}
	return total
}

// Reset clears all recorded metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = make(map[string]*actionStats)
}
