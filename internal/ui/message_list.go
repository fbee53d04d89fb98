package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatkit/internal/keys"
	"github.com/zhubert/chatkit/internal/logger"
	"github.com/zhubert/chatkit/internal/scroll"
	"github.com/zhubert/chatkit/internal/timers"
)

// EmptyListText is shown when there are no messages.
const EmptyListText = "No messages yet"

// MessageList is a scrollable conversation that follows new messages while
// the user is at the bottom, and offers a jump affordance when they are not.
type MessageList struct {
	viewport viewport.Model
	messages []Message
	follow   *scroll.Follow
	anim     *scroll.Animator
	width    int
	height   int
}

// NewMessageList creates an empty list. thresholdLines sets how close to the
// bottom counts as pinned; zero uses the default.
func NewMessageList(thresholdLines int) *MessageList {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	f := scroll.NewFollow()
	if thresholdLines > 0 {
		f.ThresholdLines = thresholdLines
	}

	l := &MessageList{
		viewport: vp,
		follow:   f,
		anim:     scroll.NewAnimator(),
	}
	f.OnPinChange = func(pinned bool) {
		logger.ComponentLogger("MessageList").Debug("pin changed", "pinned", pinned)
	}
	return l
}

// IsScrollKey reports whether key scrolls the list rather than editing the
// draft.
func IsScrollKey(key string) bool {
	switch key {
	case keys.PgUp, keys.PgDown, keys.CtrlU, keys.CtrlD, keys.CtrlUp, keys.CtrlDown, keys.Home, keys.End:
		return true
	}
	return false
}

// Messages returns the messages in display order.
func (l *MessageList) Messages() []Message {
	return l.messages
}

// Len returns the number of messages.
func (l *MessageList) Len() int {
	return len(l.messages)
}

// Pinned reports whether the list is following new messages.
func (l *MessageList) Pinned() bool {
	return l.follow.Pinned()
}

// ShowJump reports whether the jump-to-latest affordance is visible.
func (l *MessageList) ShowJump() bool {
	return l.follow.ShowJump()
}

// Animating reports whether a smooth scroll is in progress.
func (l *MessageList) Animating() bool {
	return l.anim.Running()
}

// AnimationFrame returns the tick the running animation is waiting for.
func (l *MessageList) AnimationFrame() timers.FiredMsg {
	return l.anim.Current()
}

// YOffset returns the current scroll offset in lines.
func (l *MessageList) YOffset() int {
	return l.viewport.YOffset()
}

// SetSize sets the list dimensions. A list resting at the bottom stays there;
// any other position is kept and re-evaluated against the new height.
func (l *MessageList) SetSize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	atBottom := l.height == 0 || l.viewport.YOffset() >= l.maxOffset()
	l.width = width
	l.height = height
	l.viewport.SetWidth(width)
	l.syncHeight()
	l.refresh()
	if atBottom && l.follow.Pinned() && !l.anim.Running() {
		l.viewport.GotoBottom()
		return
	}
	if !l.anim.Running() {
		l.follow.OnScroll(l.viewport.YOffset(), l.viewport.TotalLineCount(), l.height)
		l.syncHeight()
	}
}

// syncHeight gives the jump affordance its own row below the viewport while
// it is showing.
func (l *MessageList) syncHeight() {
	h := l.height
	if l.follow.ShowJump() && h > 1 {
		h--
	}
	if l.viewport.Height() != h {
		l.viewport.SetHeight(h)
	}
}

// Append adds messages to the end of the conversation.
func (l *MessageList) Append(msgs ...Message) tea.Cmd {
	if len(msgs) == 0 {
		return nil
	}
	next := make([]Message, 0, len(l.messages)+len(msgs))
	next = append(next, l.messages...)
	next = append(next, msgs...)
	return l.SetMessages(next)
}

// SetMessages replaces the conversation. Growth is handled according to the
// pinned state from before the change: a pinned list smooth-scrolls to the
// newest message, an unpinned one keeps its position.
func (l *MessageList) SetMessages(msgs []Message) tea.Cmd {
	grew := len(msgs) > len(l.messages)
	first := len(l.messages) == 0
	l.messages = msgs
	l.refresh()

	if !grew {
		return nil
	}
	if l.follow.OnGrowth() != scroll.ActionScrollToBottom {
		return nil
	}
	if first {
		l.viewport.GotoBottom()
		return nil
	}
	return l.anim.Start(l.viewport.YOffset(), l.maxOffset())
}

// JumpToBottom pins the list and smooth-scrolls to the newest message.
func (l *MessageList) JumpToBottom() tea.Cmd {
	l.follow.Jump()
	l.syncHeight()
	return l.anim.Start(l.viewport.YOffset(), l.maxOffset())
}

// Update handles scroll keys, the mouse wheel and animation frames.
func (l *MessageList) Update(msg tea.Msg) (*MessageList, tea.Cmd) {
	switch msg := msg.(type) {
	case timers.FiredMsg:
		if !l.anim.Owns(msg) {
			return l, nil
		}
		offset, ok, next := l.anim.Step(msg)
		if ok {
			l.viewport.SetYOffset(offset)
		}
		return l, next

	case tea.KeyPressMsg:
		key := msg.String()
		if !IsScrollKey(key) {
			return l, nil
		}
		before := l.viewport.YOffset()
		switch key {
		case keys.PgUp:
			l.viewport.PageUp()
		case keys.PgDown:
			l.viewport.PageDown()
		case keys.CtrlU:
			l.viewport.HalfPageUp()
		case keys.CtrlD:
			l.viewport.HalfPageDown()
		case keys.CtrlUp:
			l.viewport.ScrollUp(1)
		case keys.CtrlDown:
			l.viewport.ScrollDown(1)
		case keys.Home:
			l.viewport.GotoTop()
		case keys.End:
			l.viewport.GotoBottom()
		}
		l.userScrolled(before)
		return l, nil

	case tea.MouseWheelMsg:
		before := l.viewport.YOffset()
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		l.userScrolled(before)
		return l, cmd
	}
	return l, nil
}

// userScrolled feeds a user-initiated position into the follow controller.
// Offsets applied by the animator never come through here.
func (l *MessageList) userScrolled(before int) {
	if l.viewport.YOffset() != before {
		l.anim.Stop()
	}
	l.follow.OnScroll(l.viewport.YOffset(), l.viewport.TotalLineCount(), l.height)
	l.syncHeight()
}

// Close stops any running animation.
func (l *MessageList) Close() {
	l.anim.Close()
}

func (l *MessageList) maxOffset() int {
	return max(0, l.viewport.TotalLineCount()-l.viewport.Height())
}

// refresh re-renders every item at the current width.
func (l *MessageList) refresh() {
	width := l.width
	if width <= 0 {
		width = DefaultWrapWidth
	}
	items := WithDateDividers(l.messages)
	rendered := make([]string, len(items))
	for i, it := range items {
		rendered[i] = it.Render(width)
	}
	l.viewport.SetContent(strings.Join(rendered, "\n"))
}

// View renders the visible part of the conversation.
func (l *MessageList) View() string {
	if len(l.messages) == 0 {
		return lipgloss.Place(max(1, l.width), max(1, l.height), lipgloss.Center, lipgloss.Center,
			EmptyListStyle.Render(EmptyListText))
	}

	view := l.viewport.View()
	if !l.follow.ShowJump() {
		return view
	}

	jump := JumpAffordanceStyle.Render(JumpLabel + " " + keys.CtrlG)
	row := lipgloss.PlaceHorizontal(l.width, lipgloss.Right, jump)
	if l.height <= 1 {
		return row
	}
	return view + "\n" + row
}
