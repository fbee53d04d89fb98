package app

import (
	"os"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/goleak"

	"github.com/zhubert/chatkit/internal/composer"
	"github.com/zhubert/chatkit/internal/keys"
	"github.com/zhubert/chatkit/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testOptions returns options with a fixed clock and a stubbed notifier.
func testOptions(t *testing.T, seats ...Seat) Options {
	t.Helper()
	return Options{
		Seats:    seats,
		StartDir: t.TempDir(),
		Notify:   func(string) error { return nil },
		Now:      func() time.Time { return fixedNow },
	}
}

// twoSeats is the two-sender demo layout.
func twoSeats() []Seat {
	return []Seat{
		{Name: "User A", Composer: composer.DefaultOptions()},
		{Name: "User B", Composer: composer.DefaultOptions()},
	}
}

// testModelWithSize creates a focused test Model and sets its size.
func testModelWithSize(t *testing.T, opts Options, width, height int) *Model {
	t.Helper()
	m := New(opts)
	t.Cleanup(m.Close)
	m.Init()
	setSize(m, width, height)
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlX:
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	case keys.CtrlG:
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the command it produced.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string one key press at a time.
func typeText(m *Model, text string) {
	for _, ch := range text {
		sendKey(m, string(ch))
	}
}

// send types text and submits it.
func send(m *Model, text string) {
	typeText(m, text)
	sendKey(m, keys.Enter)
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
