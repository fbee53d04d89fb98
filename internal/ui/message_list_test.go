package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func chatter(n int) []Message {
	msgs := make([]Message, n)
	for i := range msgs {
		msgs[i] = Message{Author: "bot", Text: fmt.Sprintf("message %d", i)}
	}
	return msgs
}

func newList(t *testing.T, n int) *MessageList {
	t.Helper()
	l := NewMessageList(0)
	t.Cleanup(l.Close)
	l.SetSize(40, 5)
	if cmd := l.SetMessages(chatter(n)); cmd != nil {
		t.Fatal("initial load should not animate")
	}
	return l
}

// settle delivers animation frames until the animator stops.
func settle(t *testing.T, l *MessageList) {
	t.Helper()
	for i := 0; l.Animating(); i++ {
		if i > 1000 {
			t.Fatal("animation did not settle")
		}
		l.Update(l.anim.Current())
	}
}

func press(l *MessageList, code rune) {
	l.Update(tea.KeyPressMsg{Code: code})
}

func TestMessageList_InitialLoadStartsAtBottom(t *testing.T) {
	l := newList(t, 10)

	if l.YOffset() != l.maxOffset() || l.maxOffset() == 0 {
		t.Errorf("YOffset = %d, want bottom %d", l.YOffset(), l.maxOffset())
	}
	if !l.Pinned() || l.ShowJump() {
		t.Error("list should start pinned")
	}
}

func TestMessageList_PinnedGrowthScrollsToBottom(t *testing.T) {
	l := newList(t, 10)

	cmd := l.Append(Message{Author: "bot", Text: "new"})
	if cmd == nil {
		t.Fatal("growth while pinned should start an animation")
	}
	settle(t, l)

	if l.YOffset() != l.maxOffset() {
		t.Errorf("YOffset = %d, want %d", l.YOffset(), l.maxOffset())
	}
	if !l.Pinned() {
		t.Error("animated offsets must not unpin the list")
	}
}

func TestMessageList_ScrolledAwayShowsJump(t *testing.T) {
	l := newList(t, 10)

	press(l, tea.KeyHome)
	if l.YOffset() != 0 {
		t.Fatalf("home should scroll to top, got %d", l.YOffset())
	}
	if l.Pinned() || !l.ShowJump() {
		t.Fatal("scrolling to the top should unpin")
	}

	if cmd := l.Append(Message{Author: "bot", Text: "new"}); cmd != nil {
		t.Error("growth while unpinned should not scroll")
	}
	if l.YOffset() != 0 {
		t.Errorf("position should be kept, got %d", l.YOffset())
	}
	if !strings.Contains(plain(l.View()), JumpLabel) {
		t.Errorf("view should show the jump affordance:\n%s", plain(l.View()))
	}

	if cmd := l.JumpToBottom(); cmd == nil {
		t.Fatal("jump should animate")
	}
	if !l.Pinned() || l.ShowJump() {
		t.Error("jump should pin immediately")
	}
	settle(t, l)
	if l.YOffset() != l.maxOffset() {
		t.Errorf("YOffset = %d after jump, want %d", l.YOffset(), l.maxOffset())
	}
	if strings.Contains(plain(l.View()), JumpLabel) {
		t.Error("affordance should be hidden once pinned")
	}
}

func TestMessageList_ScrollingBackRePins(t *testing.T) {
	l := newList(t, 10)

	press(l, tea.KeyHome)
	press(l, tea.KeyEnd)

	if !l.Pinned() {
		t.Error("scrolling back to the bottom should re-pin")
	}
}

func TestMessageList_SetSizeKeepsPositionNearBottom(t *testing.T) {
	l := newList(t, 20)

	l.Update(tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl})
	l.Update(tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl})
	before := l.YOffset()
	if before == l.maxOffset() || !l.Pinned() {
		t.Fatalf("setup: YOffset = %d, max = %d, pinned = %v", before, l.maxOffset(), l.Pinned())
	}

	l.SetSize(40, 5)
	if l.YOffset() != before {
		t.Errorf("same-size SetSize moved the list: %d -> %d", before, l.YOffset())
	}

	l.SetSize(40, 6)
	if l.YOffset() != before {
		t.Errorf("resize moved a list that was not at the bottom: %d -> %d", before, l.YOffset())
	}
	if l.Animating() {
		t.Error("resize should not animate")
	}
}

func TestMessageList_SetSizeFollowsFromBottom(t *testing.T) {
	l := newList(t, 20)

	l.SetSize(40, 3)
	if l.YOffset() != l.maxOffset() {
		t.Errorf("YOffset = %d after shrinking, want bottom %d", l.YOffset(), l.maxOffset())
	}
}

func TestMessageList_JumpRowDoesNotHideContent(t *testing.T) {
	l := newList(t, 10)

	press(l, tea.KeyHome)
	lines := strings.Split(plain(l.View()), "\n")
	if len(lines) != 5 {
		t.Fatalf("view has %d lines, want 5:\n%s", len(lines), plain(l.View()))
	}
	if !strings.Contains(lines[4], JumpLabel) {
		t.Errorf("last row should hold the affordance, got %q", lines[4])
	}
	for _, line := range lines[:4] {
		if strings.Contains(line, JumpLabel) {
			t.Errorf("affordance drawn over content: %q", line)
		}
	}

	if n := len(strings.Split(plain(l.viewport.View()), "\n")); n != 4 {
		t.Errorf("viewport should shrink to 4 rows, got %d", n)
	}
}

func TestMessageList_UserScrollStopsAnimation(t *testing.T) {
	l := newList(t, 10)

	l.Append(Message{Author: "bot", Text: "new"})
	if !l.Animating() {
		t.Fatal("expected a running animation")
	}
	stale := l.anim.Current()

	press(l, tea.KeyPgUp)

	if l.Animating() {
		t.Error("user scroll should stop the animation")
	}
	before := l.YOffset()
	l.Update(stale)
	if l.YOffset() != before {
		t.Error("frames from a stopped animation should be ignored")
	}
}

func TestMessageList_MouseWheel(t *testing.T) {
	l := newList(t, 10)
	before := l.YOffset()

	l.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})

	if l.YOffset() >= before {
		t.Errorf("wheel up should scroll up, offset %d -> %d", before, l.YOffset())
	}
}

func TestMessageList_ShortContentStaysPinned(t *testing.T) {
	l := newList(t, 1)

	press(l, tea.KeyHome)

	if !l.Pinned() {
		t.Error("content shorter than the viewport is always at the bottom")
	}
}

func TestMessageList_IgnoresOtherKeys(t *testing.T) {
	l := newList(t, 10)
	before := l.YOffset()

	press(l, 'k')

	if l.YOffset() != before {
		t.Error("plain keys belong to the composer")
	}
}

func TestMessageList_Empty(t *testing.T) {
	l := NewMessageList(0)
	t.Cleanup(l.Close)
	l.SetSize(40, 5)

	if !strings.Contains(plain(l.View()), EmptyListText) {
		t.Errorf("empty view = %q", plain(l.View()))
	}
	if l.Append() != nil {
		t.Error("appending nothing should be a no-op")
	}
}

func TestIsScrollKey(t *testing.T) {
	for _, k := range []string{"pgup", "pgdown", "ctrl+u", "ctrl+d", "ctrl+up", "ctrl+down", "home", "end"} {
		if !IsScrollKey(k) {
			t.Errorf("%q should scroll", k)
		}
	}
	for _, k := range []string{"up", "down", "enter", "a", "ctrl+g"} {
		if IsScrollKey(k) {
			t.Errorf("%q should not scroll", k)
		}
	}
}
