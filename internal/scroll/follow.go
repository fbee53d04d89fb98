// Package scroll decides when a message list follows new content.
//
// Follow is a pure controller: it is fed scroll positions and growth events
// and answers with an Action. Animator turns a scroll-to-bottom action into
// a spring-animated sequence of viewport offsets.
package scroll

// DefaultThresholdLines is how close to the bottom, in lines, the viewport
// must be to count as pinned.
const DefaultThresholdLines = 5

// Action tells the list what to do after content grows.
type Action int

const (
	ActionNone Action = iota
	ActionScrollToBottom
	ActionShowJump
)

func (a Action) String() string {
	switch a {
	case ActionScrollToBottom:
		return "scroll-to-bottom"
	case ActionShowJump:
		return "show-jump"
	default:
		return "none"
	}
}

// Follow tracks whether a viewport is pinned to its newest content.
type Follow struct {
	pinned bool

	// ThresholdLines is the pinned tolerance in lines. Used when
	// ThresholdFraction is zero.
	ThresholdLines int

	// ThresholdFraction, when set, sizes the tolerance as a fraction of the
	// viewport height.
	ThresholdFraction float64

	// OnPinChange, if set, is called whenever the pinned state flips.
	OnPinChange func(pinned bool)
}

// NewFollow returns a pinned controller with the default threshold.
func NewFollow() *Follow {
	return &Follow{pinned: true, ThresholdLines: DefaultThresholdLines}
}

// Pinned reports whether the viewport is following new content.
func (f *Follow) Pinned() bool {
	return f.pinned
}

// ShowJump reports whether the jump-to-bottom affordance is visible. It is
// always the negation of Pinned.
func (f *Follow) ShowJump() bool {
	return !f.pinned
}

// Threshold returns the tolerance in lines for a viewport of the given height.
func (f *Follow) Threshold(viewportHeight int) float64 {
	if f.ThresholdFraction > 0 {
		return f.ThresholdFraction * float64(viewportHeight)
	}
	if f.ThresholdLines > 0 {
		return float64(f.ThresholdLines)
	}
	return DefaultThresholdLines
}

// OnScroll recomputes the pinned state from a raw scroll position.
func (f *Follow) OnScroll(top, contentHeight, viewportHeight int) {
	distance := contentHeight - top - viewportHeight
	f.setPinned(float64(distance) < f.Threshold(viewportHeight))
}

// OnGrowth reacts to an item being appended, using the pinned state from
// before the growth.
func (f *Follow) OnGrowth() Action {
	if f.pinned {
		return ActionScrollToBottom
	}
	return ActionShowJump
}

// Jump handles the jump-to-bottom affordance. The viewport counts as pinned
// immediately rather than once the animation settles.
func (f *Follow) Jump() Action {
	f.setPinned(true)
	return ActionScrollToBottom
}

func (f *Follow) setPinned(pinned bool) {
	if pinned == f.pinned {
		return
	}
	f.pinned = pinned
	if f.OnPinChange != nil {
		f.OnPinChange(pinned)
	}
}
