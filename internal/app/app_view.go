package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/chatkit/internal/ui"
)

// The picker panel floats over the list, inset by pickerInsetX columns and
// one row. pickerChrome is its border and title.
const (
	pickerInsetX = 2
	pickerChrome = 4
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()

	inner := max(1, m.width-ui.BorderSize-ui.InputPaddingWidth)
	for _, s := range m.seats {
		s.composer.SetWidth(inner)
	}
	composerHeight := lipgloss.Height(ui.RenderComposer(m.current(), m.width))
	ctx.UpdateTerminalSize(m.width, m.height, composerHeight)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.list.SetSize(ctx.TerminalWidth, ctx.ListHeight)
	m.picker.SetHeight(m.pickerHeight())
}

func (m *Model) pickerHeight() int {
	return ui.GetViewContext().ListHeight - pickerChrome
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	c := m.current()
	m.footer.SetContext(m.picker.open, c.AllowFiles(), c.AtLimit(), len(c.Files()) > 0, m.list.ShowJump(), len(m.seats) > 1)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()
	ctx := ui.GetViewContext()

	body := m.list.View()
	if m.picker.open {
		title := ui.PickerTitleStyle.Render("Attach a file")
		panel := ui.PickerStyle.
			Width(ctx.TerminalWidth - 2*pickerInsetX).
			Render(lipgloss.JoinVertical(lipgloss.Left, title, m.picker.View()))
		body = ui.Overlay(body, panel, ctx.TerminalWidth, ctx.ListHeight, pickerInsetX, 1)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		ui.RenderComposer(m.current(), m.width),
		m.footer.View(),
	)
}
