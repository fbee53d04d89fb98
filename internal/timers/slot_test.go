package timers

import (
	"testing"
	"time"
)

func TestSlot_FiresOnce(t *testing.T) {
	s := NewSlot()
	if cmd := s.Schedule(time.Second); cmd == nil {
		t.Fatal("Schedule returned nil cmd")
	}
	msg := s.Current()

	if !s.Armed() {
		t.Error("slot should be armed after Schedule")
	}
	if !s.Fired(msg) {
		t.Fatal("live timer should fire")
	}
	if s.Fired(msg) {
		t.Error("timer should fire only once")
	}
	if s.Armed() {
		t.Error("slot should be disarmed after firing")
	}
}

func TestSlot_RescheduleCancelsPrevious(t *testing.T) {
	s := NewSlot()
	s.Schedule(time.Second)
	first := s.Current()
	s.Schedule(time.Second)
	second := s.Current()

	if s.Fired(first) {
		t.Error("replaced timer should not fire")
	}
	if !s.Fired(second) {
		t.Error("replacement timer should fire")
	}
}

func TestSlot_Cancel(t *testing.T) {
	s := NewSlot()
	s.Schedule(time.Second)
	msg := s.Current()
	s.Cancel()

	if s.Fired(msg) {
		t.Error("cancelled timer should not fire")
	}
}

func TestSlot_Close(t *testing.T) {
	s := NewSlot()
	s.Schedule(time.Second)
	msg := s.Current()
	s.Close()

	if s.Fired(msg) {
		t.Error("timer should not fire after Close")
	}
	if cmd := s.Schedule(time.Second); cmd != nil {
		t.Error("closed slot should refuse to schedule")
	}
}

func TestSlot_IgnoresForeignMessages(t *testing.T) {
	a, b := NewSlot(), NewSlot()
	a.Schedule(time.Second)
	b.Schedule(time.Second)

	if a.Fired(b.Current()) {
		t.Error("slot fired on another slot's message")
	}
	if a.Owns(b.Current()) {
		t.Error("Owns should be false for another slot")
	}
	if !a.Owns(a.Current()) {
		t.Error("Owns should be true for own message")
	}
}

func TestSlot_TickDelivers(t *testing.T) {
	s := NewSlot()
	cmd := s.Schedule(time.Millisecond)
	msg, ok := cmd().(FiredMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want FiredMsg", msg)
	}
	if !s.Fired(msg) {
		t.Error("delivered tick should fire")
	}
}
