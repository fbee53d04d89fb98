// Package timers provides single-slot cancelable timers on top of tea.Tick.
//
// A Slot holds at most one live timer. Scheduling a new timer or calling
// Cancel bumps the slot's sequence number, so ticks that were already in
// flight arrive with a stale sequence and Fired reports false for them.
package timers

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

var nextID atomic.Uint64

// FiredMsg is delivered when a scheduled timer elapses.
type FiredMsg struct {
	Slot uint64
	Seq  uint64
	At   time.Time
}

// Slot is a cancel-and-replace timer owned by a single component.
type Slot struct {
	id     uint64
	seq    uint64
	armed  bool
	closed bool
}

// NewSlot creates an empty slot with a process-unique id.
func NewSlot() *Slot {
	return &Slot{id: nextID.Add(1)}
}

// Schedule cancels any pending timer and arms a new one that fires after d.
// It returns nil once the slot is closed.
func (s *Slot) Schedule(d time.Duration) tea.Cmd {
	if s.closed {
		return nil
	}
	s.seq++
	s.armed = true
	id, seq := s.id, s.seq
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FiredMsg{Slot: id, Seq: seq, At: t}
	})
}

// Cancel disarms the pending timer, if any.
func (s *Slot) Cancel() {
	s.seq++
	s.armed = false
}

// Close cancels the pending timer and refuses further scheduling.
func (s *Slot) Close() {
	s.Cancel()
	s.closed = true
}

// Armed reports whether a timer is pending.
func (s *Slot) Armed() bool {
	return s.armed
}

// Current returns the message the pending timer will deliver.
func (s *Slot) Current() FiredMsg {
	return FiredMsg{Slot: s.id, Seq: s.seq}
}

// Owns reports whether msg was produced by this slot, current or stale.
func (s *Slot) Owns(msg FiredMsg) bool {
	return msg.Slot == s.id
}

// Fired consumes msg and reports whether it is the slot's live timer.
// Stale, foreign or post-Close messages return false.
func (s *Slot) Fired(msg FiredMsg) bool {
	if s.closed || !s.armed || msg.Slot != s.id || msg.Seq != s.seq {
		return false
	}
	s.armed = false
	return true
}
