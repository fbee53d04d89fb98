package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// DateLayout formats date dividers, e.g. "Jan 02, 2006".
const DateLayout = "Jan 02, 2006"

// TimeLayout formats message timestamps.
const TimeLayout = "15:04"

// Item is one renderable entry in a MessageList.
type Item interface {
	Render(width int) string
}

// Attachment is a file shown under a message.
type Attachment struct {
	Name    string
	Size    string // Human-readable size
	IsImage bool
}

// Message is a chat message bubble.
type Message struct {
	Author    string // Shown above bubbles from other senders
	Text      string
	IsMe      bool // Own messages align right
	Timestamp time.Time
	Files     []Attachment
}

// Render draws the message as a bubble aligned to its sender's side.
func (m Message) Render(width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	maxBubble := max(10, int(float64(width)*BubbleWidthRatio))
	contentWidth := maxBubble - BorderSize - InputPaddingWidth

	var body []string
	if m.Text != "" {
		body = append(body, renderMarkdown(m.Text, contentWidth))
	}
	for _, f := range m.Files {
		glyph := FileGlyph
		if f.IsImage {
			glyph = ImageGlyph
		}
		line := glyph + " " + f.Name
		if f.Size != "" {
			line += " (" + f.Size + ")"
		}
		body = append(body, MessageFileStyle.Render(ansi.Truncate(line, contentWidth, "…")))
	}

	style := MessageOtherStyle
	align := lipgloss.Left
	if m.IsMe {
		style = MessageMeStyle
		align = lipgloss.Right
	}

	content := strings.Join(body, "\n")
	if lipgloss.Width(content) > contentWidth {
		content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	}
	bubble := style.Render(content)

	var meta []string
	if !m.IsMe && m.Author != "" {
		meta = append(meta, MessageAuthorStyle.Render(m.Author))
	}
	if !m.Timestamp.IsZero() {
		meta = append(meta, MessageTimeStyle.Render(m.Timestamp.Format(TimeLayout)))
	}

	lines := []string{bubble}
	if len(meta) > 0 {
		lines = append([]string{strings.Join(meta, " ")}, lines...)
	}
	block := lipgloss.JoinVertical(align, lines...)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// DateDivider separates messages from different calendar days.
type DateDivider struct {
	Date time.Time
}

// Label returns the divider text.
func (d DateDivider) Label() string {
	return d.Date.Format(DateLayout)
}

// Render draws the divider centered across the width.
func (d DateDivider) Render(width int) string {
	label := " " + d.Label() + " "
	rule := max(0, (width-ansi.StringWidth(label))/2)
	line := strings.Repeat("─", rule) + label + strings.Repeat("─", rule)
	return DateDividerStyle.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
}

// WithDateDividers returns msgs as items with a DateDivider before the first
// message and wherever the local calendar day changes between consecutive
// messages. Messages without a timestamp never trigger a divider.
func WithDateDividers(msgs []Message) []Item {
	items := make([]Item, 0, len(msgs))
	var lastDay time.Time
	for _, m := range msgs {
		if !m.Timestamp.IsZero() {
			day := startOfDay(m.Timestamp)
			if !day.Equal(lastDay) {
				items = append(items, DateDivider{Date: day})
				lastDay = day
			}
		}
		items = append(items, m)
	}
	return items
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
