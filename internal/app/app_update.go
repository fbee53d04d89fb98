package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/composer"
	"github.com/zhubert/chatkit/internal/keys"
	"github.com/zhubert/chatkit/internal/timers"
	"github.com/zhubert/chatkit/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to the component that owns them.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("window blurred")
		return m, nil

	case timers.FiredMsg:
		// Each slot only answers to its own ticks.
		for _, s := range m.seats {
			_, cmd := s.composer.Update(msg)
			cmds = append(cmds, cmd)
		}
		_, cmd := m.list.Update(msg)
		cmds = append(cmds, cmd)
		m.updateSizes()
		return m, tea.Batch(cmds...)

	case composer.RejectedMsg:
		return m, m.handleRejected(msg)

	case composer.SendMsg:
		// Already recorded through OnSend.
		return m, nil

	case tea.MouseWheelMsg:
		if m.picker.open {
			return m, m.updatePicker(msg)
		}
		_, cmd := m.list.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m, m.handleKeyPress(msg)

	case tea.PasteStartMsg, tea.PasteMsg, tea.PasteEndMsg, composer.DragMsg:
		if m.picker.open {
			return m, nil
		}
		return m, m.updateComposer(msg)
	}

	// Anything else (directory listings, cursor blinks) goes to whichever
	// component is showing.
	if m.picker.open {
		return m, m.updatePicker(msg)
	}
	return m, m.updateComposer(msg)
}

// handleKeyPress handles global shortcuts and forwards the rest.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if key == keys.CtrlC {
		return tea.Quit
	}

	if m.picker.open {
		if key == keys.Escape {
			m.picker.Close()
			return nil
		}
		return m.updatePicker(msg)
	}

	c := m.current()
	switch {
	case key == keys.CtrlO:
		return m.openPicker()

	case key == keys.CtrlX:
		if n := len(c.Files()); n > 0 {
			c.RemoveFile(n - 1)
			m.updateSizes()
		}
		return nil

	case key == keys.CtrlG:
		return m.list.JumpToBottom()

	case key == keys.Tab:
		return m.switchSeat()

	case ui.IsScrollKey(key):
		_, cmd := m.list.Update(msg)
		return cmd
	}

	return m.updateComposer(msg)
}

// updateComposer forwards msg to the active composer and applies whatever it
// submitted.
func (m *Model) updateComposer(msg tea.Msg) tea.Cmd {
	_, cmd := m.current().Update(msg)
	listCmd := m.flushOutbox()
	m.updateSizes()
	return tea.Batch(cmd, listCmd)
}

func (m *Model) openPicker() tea.Cmd {
	c := m.current()
	if !c.AllowFiles() || c.AtLimit() {
		return nil
	}
	m.log.Debug("picker opened", "allowed", c.Rules().PickerTypes())
	return m.picker.Open(c.Rules().PickerTypes(), m.pickerHeight())
}

// updatePicker forwards msg to the open picker. A selected file goes to the
// active composer and closes the picker.
func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	path, cmd := m.picker.Update(msg)
	if path == "" {
		return cmd
	}
	m.picker.Close()

	raw, err := attach.FromPath(path)
	if err != nil {
		m.log.Warn("picked file unreadable", "path", path, "error", err)
		return cmd
	}
	addCmd := m.current().AddFiles([]attach.RawFile{raw}, attach.SourcePicker)
	m.updateSizes()
	return tea.Batch(cmd, addCmd)
}

// handleRejected raises a desktop notification for rejections the user could
// not have seen.
func (m *Model) handleRejected(msg composer.RejectedMsg) tea.Cmd {
	m.log.Debug("rejection", "reason", msg.Reason.String(), "source", msg.Source.String())
	if m.windowFocused || !m.notifications {
		return nil
	}
	message := msg.Notification.Message
	notify, log := m.notify, m.log
	return func() tea.Msg {
		if err := notify(message); err != nil {
			log.Warn("desktop notification failed", "error", err)
		}
		return nil
	}
}
