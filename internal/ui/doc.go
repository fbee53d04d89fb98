// Package ui renders the chat widgets.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   MessageList                                       │
//	│                              [↓ new messages]       │
//	├─────────────────────────────────────────────────────┤
//	│ notice / file pills                                 │
//	│ Composer input (1-8 lines)                          │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// MessageList holds the rendered conversation in a viewport and decides,
// through a scroll.Follow controller, whether new items scroll into view or
// raise the jump affordance. Scrolling to the bottom is animated.
//
// RenderComposer draws a composer.Composer: rejection notice, attachment
// pills, the input box (highlighted while a drag hovers) and the send hint.
//
// Header and Footer are single-line bars. The footer shows the bindings that
// apply in the current context.
//
// # Styles
//
// All styles are built from the active Theme in styles.go. SetTheme switches
// the palette at runtime.
package ui
