package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom bar with keybindings
type Footer struct {
	width      int
	pickerOpen bool // File picker overlay is showing
	allowFiles bool // Attachments are enabled
	atLimit    bool // Draft holds the maximum number of files
	hasFiles   bool // Draft holds at least one file
	showJump   bool // Message list is scrolled away from the bottom
	canSwitch  bool // More than one sender can type
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{allowFiles: true}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(pickerOpen, allowFiles, atLimit, hasFiles, showJump, canSwitch bool) {
	f.pickerOpen = pickerOpen
	f.allowFiles = allowFiles
	f.atLimit = atLimit
	f.hasFiles = hasFiles
	f.showJump = showJump
	f.canSwitch = canSwitch
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// Bindings returns the bindings shown for the current context
func (f *Footer) Bindings() []KeyBinding {
	if f.pickerOpen {
		return []KeyBinding{
			{Key: "enter", Desc: "attach"},
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "esc", Desc: "close"},
		}
	}

	bindings := []KeyBinding{
		{Key: "enter", Desc: "send"},
		{Key: "shift+enter", Desc: "newline"},
	}
	if f.allowFiles && !f.atLimit {
		bindings = append(bindings,
			KeyBinding{Key: "ctrl+o", Desc: "attach"},
			KeyBinding{Key: "ctrl+v", Desc: "paste image"},
		)
	}
	if f.hasFiles {
		bindings = append(bindings, KeyBinding{Key: "ctrl+x", Desc: "remove file"})
	}
	if f.showJump {
		bindings = append(bindings, KeyBinding{Key: "ctrl+g", Desc: "jump to latest"})
	}
	if f.canSwitch {
		bindings = append(bindings, KeyBinding{Key: "tab", Desc: "switch sender"})
	}
	bindings = append(bindings,
		KeyBinding{Key: "pgup/dn", Desc: "scroll"},
		KeyBinding{Key: "ctrl+c", Desc: "quit"},
	)
	return bindings
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
