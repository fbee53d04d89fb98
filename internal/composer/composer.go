// Package composer implements the message composer: a draft of text plus
// validated attachments, drag hover state, a transient rejection notice and
// submission of the draft as a single outbound payload.
//
// The composer is a Bubble Tea component. Its timers (the drag hover-off
// debounce and the notice expiry) are returned as tea.Cmd values from the
// operations that start them and are delivered back through Update.
package composer

import (
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/logger"
	"github.com/zhubert/chatkit/internal/timers"
)

const (
	// NoticeDuration is how long a rejection notice stays visible.
	NoticeDuration = 3 * time.Second

	// HoverOffDelay debounces drag-leave so that moving between child
	// regions does not flicker the hover highlight.
	HoverOffDelay = 100 * time.Millisecond

	// MaxInputLines caps how tall the input grows before it scrolls.
	MaxInputLines = 8

	// DefaultPlaceholder is shown in an empty input.
	DefaultPlaceholder = "Message"
)

// ImageReader supplies an image from the system clipboard when a paste starts.
// ok is false when the clipboard holds no image.
type ImageReader interface {
	ReadImage() (file attach.RawFile, ok bool, err error)
}

// Options configures a Composer. Start from DefaultOptions.
type Options struct {
	AllowFiles    bool
	AllowedTypes  string // Comma-separated patterns, e.g. "image/*, .pdf"
	MaxFiles      int
	MaxFileSizeMB float64
	Messages      attach.Messages
	Placeholder   string

	// OnSend is called synchronously with every submitted payload.
	OnSend func(Payload)

	// Clipboard is consulted for images on paste. Nil disables image paste.
	Clipboard ImageReader

	// Now is the clock used for notice expiry. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns options with attachments enabled and no limits.
func DefaultOptions() Options {
	return Options{
		AllowFiles:  true,
		Placeholder: DefaultPlaceholder,
	}
}

// Payload is the outbound send event. Text is empty and Files is nil when
// absent.
type Payload struct {
	Text  string
	Files []attach.PendingFile
}

// SendMsg carries a submitted payload to the host.
type SendMsg struct {
	Payload Payload
}

// Notification is the single transient rejection notice.
type Notification struct {
	Message   string
	ExpiresAt time.Time
}

// RejectedMsg reports that a batch produced a rejection notice.
type RejectedMsg struct {
	Notification Notification
	Reason       attach.Reason
	Source       attach.Source
}

// Composer holds one draft. It is not safe for concurrent use; all calls
// happen on the Bubble Tea event loop.
type Composer struct {
	input textarea.Model
	files []attach.PendingFile
	rules attach.RuleSet

	allowFiles bool
	dragHover  bool
	notice     *Notification

	// suppressPaste drops the text half of a paste whose clipboard image
	// was accepted.
	suppressPaste bool

	hoverSlot  *timers.Slot
	noticeSlot *timers.Slot

	onSend    func(Payload)
	clipboard ImageReader
	now       func() time.Time

	focused bool
	width   int
	log     *slog.Logger
}

// New creates a composer bound to opts. The rule set is fixed for the
// composer's lifetime.
func New(opts Options) *Composer {
	ti := textarea.New()
	ti.Placeholder = opts.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = DefaultPlaceholder
	}
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.SetHeight(1)
	// Newlines are inserted by the composer so that enter can submit.
	ti.KeyMap.InsertNewline.SetEnabled(false)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Composer{
		input: ti,
		rules: attach.RuleSet{
			MaxFiles:      opts.MaxFiles,
			MaxFileSizeMB: opts.MaxFileSizeMB,
			Patterns:      attach.ParsePatterns(opts.AllowedTypes),
			Messages:      opts.Messages,
		},
		allowFiles: opts.AllowFiles,
		hoverSlot:  timers.NewSlot(),
		noticeSlot: timers.NewSlot(),
		onSend:     opts.OnSend,
		clipboard:  opts.Clipboard,
		now:        now,
		log:        logger.ComponentLogger("Composer"),
	}
}

// Rules returns the composer's validation rules.
func (c *Composer) Rules() attach.RuleSet {
	return c.rules
}

// AllowFiles reports whether attachments are enabled.
func (c *Composer) AllowFiles() bool {
	return c.allowFiles
}

// Text returns the raw draft text.
func (c *Composer) Text() string {
	return c.input.Value()
}

// SetText replaces the draft text.
func (c *Composer) SetText(s string) {
	c.input.SetValue(s)
	c.fitHeight()
}

// AppendText inserts s at the cursor.
func (c *Composer) AppendText(s string) {
	c.input.InsertString(s)
	c.fitHeight()
}

// Files returns the accepted attachments in order.
func (c *Composer) Files() []attach.PendingFile {
	return c.files
}

// DragHover reports whether a drag is hovering over the composer.
func (c *Composer) DragHover() bool {
	return c.dragHover
}

// Notice returns the live rejection notice, or nil.
func (c *Composer) Notice() *Notification {
	return c.notice
}

// CanSend reports whether Submit would emit a payload.
func (c *Composer) CanSend() bool {
	attachments := c.allowFiles && len(c.files) > 0
	return strings.TrimSpace(c.input.Value()) != "" || attachments
}

// AtLimit reports whether the draft cannot take any more files.
func (c *Composer) AtLimit() bool {
	return c.rules.AtLimit(len(c.files))
}

// AddFiles validates a batch against the rules and the files already in the
// draft, appends the accepted ones and raises a notice for the rejection, if
// any. It is a no-op when attachments are disabled.
func (c *Composer) AddFiles(raw []attach.RawFile, source attach.Source) tea.Cmd {
	if !c.allowFiles || len(raw) == 0 {
		return nil
	}

	res := attach.Validate(raw, len(c.files), c.rules)
	c.files = append(c.files, res.Accepted...)
	c.log.Debug("files added", "source", source.String(), "candidates", len(raw),
		"accepted", len(res.Accepted), "reason", res.Reason.String(), "total", len(c.files))

	if res.Rejection == "" {
		return nil
	}
	return c.notify(res.Rejection, res.Reason, source)
}

// RemoveFile removes the file at index i. Out-of-range indices are ignored.
func (c *Composer) RemoveFile(i int) {
	if i < 0 || i >= len(c.files) {
		return
	}
	c.files = append(c.files[:i:i], c.files[i+1:]...)
}

// RemoveFileByID removes the file with the given ID, if present.
func (c *Composer) RemoveFileByID(id string) {
	for i, f := range c.files {
		if f.ID == id {
			c.RemoveFile(i)
			return
		}
	}
}

// notify replaces the live notice and restarts its expiry window.
func (c *Composer) notify(message string, reason attach.Reason, source attach.Source) tea.Cmd {
	n := Notification{Message: message, ExpiresAt: c.now().Add(NoticeDuration)}
	c.notice = &n
	c.log.Debug("notice raised", "reason", reason.String(), "message", message)

	return tea.Batch(
		c.noticeSlot.Schedule(NoticeDuration),
		func() tea.Msg { return RejectedMsg{Notification: n, Reason: reason, Source: source} },
	)
}

// Submit emits the draft and resets it. It returns false and leaves state
// untouched when there is neither text nor an attachment. The payload takes
// ownership of the draft's file slice.
func (c *Composer) Submit() (Payload, bool) {
	if !c.CanSend() {
		return Payload{}, false
	}

	p := Payload{Text: strings.TrimSpace(c.input.Value())}
	if c.allowFiles && len(c.files) > 0 {
		p.Files = c.files
	}

	c.files = nil
	c.input.Reset()
	c.fitHeight()
	c.dragHover = false
	c.hoverSlot.Cancel()
	c.suppressPaste = false

	c.log.Debug("submitted", "text_len", len(p.Text), "files", len(p.Files))
	if c.onSend != nil {
		c.onSend(p)
	}
	return p, true
}

// DragEnter sets the hover highlight and cancels a pending hover-off.
func (c *Composer) DragEnter() {
	if !c.allowFiles {
		return
	}
	c.hoverSlot.Cancel()
	c.dragHover = true
}

// DragOver behaves like DragEnter; it fires repeatedly while hovering.
func (c *Composer) DragOver() {
	c.DragEnter()
}

// DragLeave schedules the hover highlight to turn off after HoverOffDelay.
// A DragEnter or DragOver before then cancels it.
func (c *Composer) DragLeave() tea.Cmd {
	if !c.allowFiles {
		return nil
	}
	return c.hoverSlot.Schedule(HoverOffDelay)
}

// Drop ends the drag and adds the dropped files.
func (c *Composer) Drop(raw []attach.RawFile) tea.Cmd {
	if !c.allowFiles {
		return nil
	}
	c.hoverSlot.Cancel()
	c.dragHover = false
	return c.AddFiles(raw, attach.SourceDrop)
}

// DropPaths resolves dropped paths and adds the files. Paths that cannot be
// read are skipped.
func (c *Composer) DropPaths(paths []string) tea.Cmd {
	if !c.allowFiles {
		return nil
	}
	return c.Drop(attach.FromPaths(paths))
}

// Close cancels both timers. Timer messages that arrive afterwards are ignored.
func (c *Composer) Close() {
	c.hoverSlot.Close()
	c.noticeSlot.Close()
}

// Focus gives the input keyboard focus.
func (c *Composer) Focus() tea.Cmd {
	c.focused = true
	return c.input.Focus()
}

// Blur removes keyboard focus.
func (c *Composer) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused reports whether the input has focus.
func (c *Composer) Focused() bool {
	return c.focused
}

// SetWidth sets the inner width of the input.
func (c *Composer) SetWidth(w int) {
	c.width = w
	c.input.SetWidth(w)
	c.fitHeight()
}

// Height returns the number of lines the input currently occupies.
func (c *Composer) Height() int {
	return c.input.Height()
}

// InputView renders the text input.
func (c *Composer) InputView() string {
	return c.input.View()
}

// fitHeight grows the input with its content up to MaxInputLines.
func (c *Composer) fitHeight() {
	lines := c.input.LineCount()
	c.input.SetHeight(max(1, min(lines, MaxInputLines)))
}
