// Package profiling accumulates named CPU durations within one frame so a
// slow frame can be attributed to the steps that made it slow.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track starts timing name; calling the returned func stops it.
//
//	defer profiling.Track("demo.render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add charges d to name in the current frame.
func Add(name string, d time.Duration) {
	mu.Lock()
	totals[name] += d
	mu.Unlock()
}

// ResetFrame starts a new frame with no recorded time.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot copies the totals recorded since the last ResetFrame.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

type entry struct {
	name string
	dur  time.Duration
}

// TopN lists at most n entries as "name:1.5ms", slowest first, joined by
// ", ". Equal durations are ordered by name. n <= 0 yields "".
func TopN(n int) string {
	snap := Snapshot()
	entries := make([]entry, 0, len(snap))
	for k, v := range snap {
		entries = append(entries, entry{name: k, dur: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dur != entries[j].dur {
			return entries[i].dur > entries[j].dur
		}
		return entries[i].name < entries[j].name
	})
	n = max(0, min(n, len(entries)))

	parts := make([]string, n)
	for i, e := range entries[:n] {
		parts[i] = e.name + ":" + formatMs(e.dur)
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
