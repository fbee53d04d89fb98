package scroll

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFollow_InitiallyPinned(t *testing.T) {
	f := NewFollow()
	if !f.Pinned() || f.ShowJump() {
		t.Error("new controller should be pinned with the affordance hidden")
	}
}

func TestFollow_PinnedGrowthScrolls(t *testing.T) {
	f := NewFollow()
	// 100 lines of content, 20-line viewport, at the bottom.
	f.OnScroll(80, 100, 20)

	if got := f.OnGrowth(); got != ActionScrollToBottom {
		t.Errorf("OnGrowth = %v, want %v", got, ActionScrollToBottom)
	}
	if f.ShowJump() {
		t.Error("affordance should stay hidden")
	}
}

func TestFollow_ScrolledUpGrowthShowsJump(t *testing.T) {
	f := NewFollow()
	f.OnScroll(20, 100, 20)

	if got := f.OnGrowth(); got != ActionShowJump {
		t.Errorf("OnGrowth = %v, want %v", got, ActionShowJump)
	}
	if !f.ShowJump() {
		t.Error("affordance should be visible")
	}
}

func TestFollow_Threshold(t *testing.T) {
	tests := []struct {
		name       string
		top        int
		wantPinned bool
	}{
		{"at bottom", 80, true},
		{"4 lines up", 76, true},
		{"exactly threshold", 75, false},
		{"far up", 0, false},
		{"overscrolled", 90, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFollow()
			f.OnScroll(tt.top, 100, 20)
			if f.Pinned() != tt.wantPinned {
				t.Errorf("Pinned = %v, want %v", f.Pinned(), tt.wantPinned)
			}
			if f.ShowJump() == f.Pinned() {
				t.Error("ShowJump must be the negation of Pinned")
			}
		})
	}
}

func TestFollow_ThresholdFraction(t *testing.T) {
	f := NewFollow()
	f.ThresholdFraction = 0.5

	f.OnScroll(71, 100, 20) // 9 lines from bottom, tolerance 10
	if !f.Pinned() {
		t.Error("within half a viewport should be pinned")
	}
	f.OnScroll(70, 100, 20) // 10 lines from bottom
	if f.Pinned() {
		t.Error("a full half viewport away should not be pinned")
	}
}

func TestFollow_ShortContentIsPinned(t *testing.T) {
	f := NewFollow()
	f.OnScroll(0, 5, 20)
	if !f.Pinned() {
		t.Error("content shorter than the viewport should be pinned")
	}
}

func TestFollow_JumpPinsOptimistically(t *testing.T) {
	f := NewFollow()
	f.OnScroll(0, 100, 20)

	if got := f.Jump(); got != ActionScrollToBottom {
		t.Errorf("Jump = %v, want %v", got, ActionScrollToBottom)
	}
	if !f.Pinned() || f.ShowJump() {
		t.Error("Jump should pin immediately")
	}
}

func TestFollow_OnPinChange(t *testing.T) {
	var changes []bool
	f := NewFollow()
	f.OnPinChange = func(p bool) { changes = append(changes, p) }

	f.OnScroll(80, 100, 20) // still pinned, no change
	f.OnScroll(0, 100, 20)
	f.OnScroll(10, 100, 20) // still unpinned
	f.Jump()

	if diff := cmp.Diff([]bool{false, true}, changes); diff != "" {
		t.Errorf("pin changes mismatch (-want +got):\n%s", diff)
	}
}

func TestAction_String(t *testing.T) {
	for a, want := range map[Action]string{ActionNone: "none", ActionScrollToBottom: "scroll-to-bottom", ActionShowJump: "show-jump"} {
		if a.String() != want {
			t.Errorf("%d.String() = %q, want %q", a, a.String(), want)
		}
	}
}
