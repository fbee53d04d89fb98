package composer

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/keys"
	"github.com/zhubert/chatkit/internal/timers"
)

// DragMsg lets a host forward drag events it detects outside the terminal's
// paste channel.
type DragMsg struct {
	Kind  DragKind
	Files []attach.RawFile // Set for DragKindDrop
}

// DragKind distinguishes the phases of a drag.
type DragKind int

const (
	DragKindEnter DragKind = iota
	DragKindOver
	DragKindLeave
	DragKindDrop
)

// Update routes terminal and timer messages into the composer.
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	switch msg := msg.(type) {
	case timers.FiredMsg:
		return c, c.handleTimer(msg)

	case DragMsg:
		return c, c.handleDrag(msg)

	case tea.PasteStartMsg:
		return c, c.handlePasteStart()

	case tea.PasteMsg:
		return c, c.handlePaste(msg)

	case tea.PasteEndMsg:
		c.suppressPaste = false
		return c, nil

	case tea.KeyPressMsg:
		if !c.focused {
			return c, nil
		}
		if cmd, handled := c.handleKey(msg); handled {
			return c, cmd
		}
	}

	if !c.focused {
		return c, nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.fitHeight()
	return c, cmd
}

func (c *Composer) handleTimer(msg timers.FiredMsg) tea.Cmd {
	switch {
	case c.hoverSlot.Fired(msg):
		c.dragHover = false
	case c.noticeSlot.Fired(msg):
		c.notice = nil
	}
	return nil
}

func (c *Composer) handleDrag(msg DragMsg) tea.Cmd {
	switch msg.Kind {
	case DragKindEnter:
		c.DragEnter()
	case DragKindOver:
		c.DragOver()
	case DragKindLeave:
		return c.DragLeave()
	case DragKindDrop:
		return c.Drop(msg.Files)
	}
	return nil
}

// handleKey returns handled=false for keys the textarea should process.
func (c *Composer) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case keys.Enter:
		p, ok := c.Submit()
		if !ok {
			return nil, true
		}
		return func() tea.Msg { return SendMsg{Payload: p} }, true

	case keys.ShiftEnter, keys.AltEnter, keys.CtrlJ:
		c.AppendText("\n")
		return nil, true

	case keys.CtrlV:
		// Fallback for terminals that send ctrl+v as a raw key press
		// instead of a bracketed paste.
		cmd, _ := c.pasteClipboardImage()
		return cmd, true

	case keys.Backspace:
		if c.input.Value() == "" && len(c.files) > 0 {
			c.RemoveFile(len(c.files) - 1)
			return nil, true
		}
	}
	return nil, false
}

// handlePasteStart checks the clipboard for an image when a paste begins.
func (c *Composer) handlePasteStart() tea.Cmd {
	cmd, accepted := c.pasteClipboardImage()
	c.suppressPaste = accepted
	return cmd
}

// handlePaste routes pasted content. Terminals deliver drag-and-drop as a
// bracketed paste of file paths, so a paste made only of existing file
// paths becomes a drop. Anything else is inserted as text.
func (c *Composer) handlePaste(msg tea.PasteMsg) tea.Cmd {
	if c.suppressPaste {
		c.suppressPaste = false
		c.log.Debug("text paste suppressed after image paste")
		return nil
	}
	if c.allowFiles {
		if paths, ok := attach.ParseDroppedPaths(msg.Content); ok {
			c.log.Debug("paste recognized as drop", "paths", len(paths))
			return c.DropPaths(paths)
		}
	}
	if !c.focused {
		return nil
	}
	c.AppendText(msg.Content)
	return nil
}

// pasteClipboardImage adds a clipboard image, reporting whether any file was
// accepted into the draft.
func (c *Composer) pasteClipboardImage() (tea.Cmd, bool) {
	if !c.allowFiles || c.clipboard == nil {
		return nil, false
	}
	img, ok, err := c.clipboard.ReadImage()
	if err != nil {
		c.log.Warn("clipboard read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	before := len(c.files)
	cmd := c.AddFiles([]attach.RawFile{img}, attach.SourcePaste)
	return cmd, len(c.files) > before
}
