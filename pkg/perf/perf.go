package perf

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/cloudposse/gridtable/pkg/schema"
)

const (
	// Histogram bounds in microseconds: 1µs to 1 minute, 3 significant figures.
	minTrackable = 1
	maxTrackable = int64(time.Minute / time.Microsecond)
	sigFigures   = 3
)

var (
	enabled    atomic.Bool
	registryMu sync.Mutex
	registry   = map[string]*hdrhistogram.Histogram{}
)

// Stat is a summary of the recorded durations for one tracked function.
type Stat struct {
	Name  string
	Count int64
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

// Enable turns duration tracking on or off for every Track call.
func Enable(on bool) {
	enabled.Store(on)
}

// Enabled reports whether tracking is active.
func Enabled() bool {
	return enabled.Load()
}

// Track starts timing the named function and returns the func that stops it.
// Use as `defer perf.Track(cfg, "table.Render")()`.
// Tracking is active when enabled globally or through `settings.perf` in cfg.
func Track(cfg *schema.Configuration, name string) func() {
	if !enabled.Load() && (cfg == nil || !cfg.Settings.Perf) {
		return func() {}
	}

	start := time.Now()
	return func() {
		record(name, time.Since(start))
	}
}

func record(name string, elapsed time.Duration) {
	registryMu.Lock()
	defer registryMu.Unlock()

	h, ok := registry[name]
	if !ok {
		h = hdrhistogram.New(minTrackable, maxTrackable, sigFigures)
		registry[name] = h
	}

	us := elapsed.Microseconds()
	if us < minTrackable {
		us = minTrackable
	}
	if us > maxTrackable {
		us = maxTrackable
	}
	// Values are clamped into range above, so RecordValue cannot fail.
	_ = h.RecordValue(us)
}

// Snapshot returns the recorded stats sorted by name.
func Snapshot() []Stat {
	registryMu.Lock()
	defer registryMu.Unlock()

	stats := make([]Stat, 0, len(registry))
	for name, h := range registry {
		stats = append(stats, Stat{
			Name:  name,
			Count: h.TotalCount(),
			P50:   time.Duration(h.ValueAtQuantile(50)) * time.Microsecond,
			P95:   time.Duration(h.ValueAtQuantile(95)) * time.Microsecond,
			Max:   time.Duration(h.Max()) * time.Microsecond,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Name < stats[j].Name
	})

	return stats
}

// Reset drops every recorded histogram.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = map[string]*hdrhistogram.Histogram{}
}
