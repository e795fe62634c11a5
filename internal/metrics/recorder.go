package metrics

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Recorder receives one event per grammar expansion.
type Recorder interface {
	RecordGeneration(ctx context.Context, grammar, start string, tokens int, duration time.Duration)
}

// Multi fans an event out to several recorders.
type Multi []Recorder

// RecordGeneration implements Recorder.
func (m Multi) RecordGeneration(ctx context.Context, grammar, start string, tokens int, duration time.Duration) {
	for _, r := range m {
		r.RecordGeneration(ctx, grammar, start, tokens, duration)
	}
}

// GrammarStats is a per-grammar snapshot.
type GrammarStats struct {
	Generations int64         `json:"generations"`
	Tokens      int64         `json:"tokens"`
	TotalTime   time.Duration `json:"-"`
	AvgMicros   int64         `json:"avg_us"`
}

// Stats keeps in-process generation counters for the metrics endpoint.
type Stats struct {
	mu       sync.Mutex
	grammars map[string]*GrammarStats
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{grammars: make(map[string]*GrammarStats)}
}

// RecordGeneration implements Recorder.
func (s *Stats) RecordGeneration(_ context.Context, grammar, _ string, tokens int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.grammars[grammar]
	if !ok {
		g = &GrammarStats{}
		s.grammars[grammar] = g
	}
	g.Generations++
	g.Tokens += int64(tokens)
	g.TotalTime += duration
}

// Snapshot copies the counters, keyed by grammar name.
func (s *Stats) Snapshot() map[string]GrammarStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]GrammarStats, len(s.grammars))
	for name, g := range s.grammars {
		snap := *g
		if snap.Generations > 0 {
			snap.AvgMicros = snap.TotalTime.Microseconds() / snap.Generations
		}
		out[name] = snap
	}
	return out
}

// Total returns the number of generations across all grammars.
func (s *Stats) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, g := range s.grammars {
		total += g.Generations
	}
	return total
}

// Names returns the grammars that have recorded at least one generation.
func (s *Stats) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.grammars))
	for name := range s.grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
