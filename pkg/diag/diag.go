// Package diag defines the diagnostic record produced by lint rules and the
// sinks that collect them.
package diag

import (
	"sort"
	"sync"
)

// Diagnostic is one reported problem, positioned in a source unit. Line is
// 1-based and Column 0-based, matching the positions of the descriptor
// documents.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Sink receives diagnostics as they are produced. Implementations must be
// safe for concurrent use: units may be linted in parallel and share one sink.
type Sink interface {
	Add(d Diagnostic)
}

// Collector is an in-memory Sink.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends one diagnostic. Safe for concurrent use.
func (c *Collector) Add(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Len reports how many diagnostics have been collected so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Diagnostics returns a copy of the collected diagnostics ordered by file and
// source position, so output stays deterministic when units were linted in
// parallel. Ties keep insertion order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}
