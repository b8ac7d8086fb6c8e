package tui

import (
	"github.com/sligocki/bbc/internal/engine"
	"github.com/sligocki/bbc/internal/tape"
)

// snapshot is one rewindable point: the configuration after a step batch,
// the stop reason that produced it, and the speed it was taken at.
type snapshot struct {
	speed  uint8
	reason engine.StopReason
	conf   tape.Configuration
}

// History is a bounded stack of snapshots. Pushing past the limit discards
// the oldest entry, so rewind depth stays bounded no matter how long a
// session runs.
type History struct {
	entries []snapshot
	limit   int
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Push(s snapshot) {
	if len(h.entries) >= h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

// Speeds returns the speeds of the most recent max snapshots, oldest first.
func (h *History) Speeds(max int) []uint8 {
	start := len(h.entries) - max
	if start < 0 {
		start = 0
	}
	speeds := make([]uint8, 0, len(h.entries)-start)
	for _, s := range h.entries[start:] {
		speeds = append(speeds, s.speed)
	}
	return speeds
}
