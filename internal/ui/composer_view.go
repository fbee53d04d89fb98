package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/composer"
	"github.com/zhubert/chatkit/internal/keys"
)

// PillNameWidth caps the file name shown in a preview pill.
const PillNameWidth = 20

// SendHint is shown in the composer when the draft can be sent.
const SendHint = "⏎ send"

// RenderComposer draws the composer: the rejection notice, one pill per
// pending file, and the bordered input. width is the full outer width.
func RenderComposer(c *composer.Composer, width int) string {
	inner := max(1, width-BorderSize-InputPaddingWidth)
	var sections []string

	if n := c.Notice(); n != nil {
		sections = append(sections, NoticeStyle.Width(inner).Render(n.Message))
	}

	if files := c.Files(); len(files) > 0 {
		sections = append(sections, renderPills(files, inner))
	}

	input := c.InputView()
	if c.CanSend() {
		hint := SendHintStyle.Render(SendHint)
		lines := strings.Split(input, "\n")
		last := len(lines) - 1
		gap := inner - lipgloss.Width(lines[last]) - lipgloss.Width(hint)
		if gap > 0 {
			lines[last] += strings.Repeat(" ", gap) + hint
		}
		input = strings.Join(lines, "\n")
	}
	sections = append(sections, input)

	style := ComposerStyle
	switch {
	case c.DragHover():
		style = ComposerDragStyle
	case c.Focused():
		style = ComposerFocusedStyle
	}
	return style.Width(width).Render(strings.Join(sections, "\n"))
}

// renderPills lays pills out left to right, wrapping to a new row when the
// next one would not fit.
func renderPills(files []attach.PendingFile, width int) string {
	var rows []string
	var row string
	for i, f := range files {
		pill := renderPill(f, i == len(files)-1)
		switch {
		case row == "":
			row = pill
		case lipgloss.Width(row)+1+lipgloss.Width(pill) > width:
			rows = append(rows, row)
			row = pill
		default:
			row += " " + pill
		}
	}
	rows = append(rows, row)
	return strings.Join(rows, "\n")
}

func renderPill(f attach.PendingFile, last bool) string {
	glyph := FileGlyph
	style := PillStyle
	if f.IsImage() {
		glyph = ImageGlyph
		style = PillImageStyle
	}
	label := glyph + " " + truncateGraphemes(f.Name, PillNameWidth) + " " + f.HumanSize()
	if last {
		label += " " + keys.CtrlX
	}
	return style.Render(label)
}

// truncateGraphemes shortens s to at most width cells without splitting a
// grapheme cluster, ending in an ellipsis when anything was cut.
func truncateGraphemes(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + "…"
}
