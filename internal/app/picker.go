package app

import (
	"os"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
)

// picker is the file picker overlay opened with ctrl+o.
type picker struct {
	model    filepicker.Model
	startDir string
	open     bool
}

func newPicker(startDir string) *picker {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		}
	}
	return &picker{model: filepicker.New(), startDir: startDir}
}

// Open shows the picker restricted to allowed extensions. A nil list allows
// every file.
func (p *picker) Open(allowed []string, height int) tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = p.startDir
	fp.AllowedTypes = allowed
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.SetHeight(max(3, height))
	p.model = fp
	p.open = true
	return p.model.Init()
}

// Close hides the picker. The directory it was showing becomes the start
// directory for the next Open.
func (p *picker) Close() {
	p.open = false
	p.startDir = p.model.CurrentDirectory
}

// SetHeight resizes the listing.
func (p *picker) SetHeight(height int) {
	p.model.SetHeight(max(3, height))
}

// Update forwards msg to the picker and reports a selected file path.
func (p *picker) Update(msg tea.Msg) (path string, cmd tea.Cmd) {
	p.model, cmd = p.model.Update(msg)
	if ok, selected := p.model.DidSelectFile(msg); ok {
		return selected, cmd
	}
	return "", cmd
}

// View renders the listing.
func (p *picker) View() string {
	return p.model.View()
}
