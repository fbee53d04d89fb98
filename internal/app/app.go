// Package app is the chatkit demo host: a message list, one composer per
// sender and a file picker overlay, wired to terminal events.
package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/composer"
	"github.com/zhubert/chatkit/internal/logger"
	"github.com/zhubert/chatkit/internal/notification"
	"github.com/zhubert/chatkit/internal/ui"
)

// DefaultTitle heads the window when Options.Title is empty.
const DefaultTitle = "chatkit"

// Seat is one sender taking part in the conversation.
type Seat struct {
	Name     string
	Composer composer.Options
}

// Options configures the demo host.
type Options struct {
	Title string

	// Seats lists the senders. Tab cycles between them. Empty means a single
	// "You" seat with default composer options.
	Seats []Seat

	// ScrollThresholdLines is how close to the bottom the list counts as
	// pinned. Zero uses the list default.
	ScrollThresholdLines int

	// DesktopNotifications raises a notification for rejections that happen
	// while the terminal is in the background.
	DesktopNotifications bool

	// Clipboard supplies pasted images to every composer.
	Clipboard composer.ImageReader

	// OnSend observes every submitted payload with its sender.
	OnSend func(sender string, p composer.Payload)

	// StartDir is where the file picker opens. Defaults to the working
	// directory.
	StartDir string

	// Notify delivers desktop notifications. Defaults to notification.Rejected.
	Notify func(message string) error

	// Now stamps messages. Defaults to time.Now.
	Now func() time.Time
}

// seat is a sender and their draft.
type seat struct {
	name     string
	composer *composer.Composer
}

// sent is a message in the shared conversation.
type sent struct {
	sender string
	text   string
	files  []attach.PendingFile
	at     time.Time
}

// Model is the main Bubble Tea model
type Model struct {
	header *ui.Header
	footer *ui.Footer
	list   *ui.MessageList
	picker *picker

	seats  []*seat
	active int

	conversation []sent
	// outbox collects payloads submitted during the current Update.
	outbox []sent

	width         int
	height        int
	windowFocused bool

	title         string
	notifications bool
	notify        func(string) error
	onSend        func(string, composer.Payload)
	now           func() time.Time

	log *slog.Logger
}

// New creates a new app model
func New(opts Options) *Model {
	m := &Model{
		header:        ui.NewHeader(""),
		footer:        ui.NewFooter(),
		list:          ui.NewMessageList(opts.ScrollThresholdLines),
		picker:        newPicker(opts.StartDir),
		windowFocused: true,
		title:         opts.Title,
		notifications: opts.DesktopNotifications,
		notify:        opts.Notify,
		onSend:        opts.OnSend,
		now:           opts.Now,
		log:           logger.ComponentLogger("App"),
	}
	if m.title == "" {
		m.title = DefaultTitle
	}
	if m.notify == nil {
		m.notify = notification.Rejected
	}
	if m.now == nil {
		m.now = time.Now
	}

	seats := opts.Seats
	if len(seats) == 0 {
		seats = []Seat{{Name: "You", Composer: composer.DefaultOptions()}}
	}
	for _, s := range seats {
		m.seats = append(m.seats, m.newSeat(s, opts.Clipboard))
	}
	m.refreshChrome()
	return m
}

func (m *Model) newSeat(s Seat, clipboard composer.ImageReader) *seat {
	name := s.Name
	copts := s.Composer
	if copts.Clipboard == nil {
		copts.Clipboard = clipboard
	}
	hostSend := copts.OnSend
	copts.OnSend = func(p composer.Payload) {
		m.outbox = append(m.outbox, sent{sender: name, text: p.Text, files: p.Files, at: m.now()})
		if hostSend != nil {
			hostSend(p)
		}
		if m.onSend != nil {
			m.onSend(name, p)
		}
	}
	return &seat{name: name, composer: composer.New(copts)}
}

// Init focuses the first sender's composer.
func (m *Model) Init() tea.Cmd {
	return m.current().Focus()
}

// Close stops every timer the model owns.
func (m *Model) Close() {
	for _, s := range m.seats {
		s.composer.Close()
	}
	m.list.Close()
}

// current returns the active seat's composer.
func (m *Model) current() *composer.Composer {
	return m.seats[m.active].composer
}

// ActiveSender returns the name of the sender currently typing.
func (m *Model) ActiveSender() string {
	return m.seats[m.active].name
}

// Composer returns the active sender's composer.
func (m *Model) Composer() *composer.Composer {
	return m.current()
}

// List returns the message list.
func (m *Model) List() *ui.MessageList {
	return m.list
}

// PickerOpen reports whether the file picker overlay is showing.
func (m *Model) PickerOpen() bool {
	return m.picker.open
}

// WindowFocused reports whether the terminal has focus.
func (m *Model) WindowFocused() bool {
	return m.windowFocused
}

// switchSeat moves typing to the next sender and re-renders the conversation
// from their side.
func (m *Model) switchSeat() tea.Cmd {
	if len(m.seats) < 2 {
		return nil
	}
	m.current().Blur()
	m.active = (m.active + 1) % len(m.seats)
	m.log.Debug("sender switched", "sender", m.ActiveSender())
	m.list.SetMessages(m.uiMessages())
	m.refreshChrome()
	m.updateSizes()
	return m.current().Focus()
}

// flushOutbox appends everything submitted since the last flush to the
// conversation.
func (m *Model) flushOutbox() tea.Cmd {
	if len(m.outbox) == 0 {
		return nil
	}
	m.conversation = append(m.conversation, m.outbox...)
	m.outbox = nil
	return m.list.SetMessages(m.uiMessages())
}

// uiMessages renders the conversation from the active sender's side.
func (m *Model) uiMessages() []ui.Message {
	me := m.ActiveSender()
	out := make([]ui.Message, len(m.conversation))
	for i, s := range m.conversation {
		msg := ui.Message{
			Author:    s.sender,
			Text:      s.text,
			IsMe:      s.sender == me,
			Timestamp: s.at,
		}
		for _, f := range s.files {
			msg.Files = append(msg.Files, ui.Attachment{Name: f.Name, Size: f.HumanSize(), IsImage: f.IsImage()})
		}
		out[i] = msg
	}
	return out
}

// refreshChrome updates the header for the active sender.
func (m *Model) refreshChrome() {
	title := m.title
	if len(m.seats) > 1 {
		title += " · " + m.ActiveSender()
	}
	m.header.SetTitle(title)
	c := m.current()
	m.header.SetRules(c.AllowFiles(), c.Rules())
}
