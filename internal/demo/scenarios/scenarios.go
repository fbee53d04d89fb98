// Package scenarios contains built-in demo scenarios for chatkit.
package scenarios

import (
	"fmt"
	"time"

	"github.com/zhubert/chatkit/internal/app"
	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/composer"
	"github.com/zhubert/chatkit/internal/demo"
)

// TwoSeats is the two-sender layout: User A may attach up to two images or
// PDFs, User B sends text only.
func TwoSeats() []app.Seat {
	a := composer.DefaultOptions()
	a.AllowedTypes = "image/*,.pdf"
	a.MaxFiles = 2
	a.Messages = attach.Messages{
		InvalidType: "This file type is not allowed",
		MaxFiles:    "Max files reached",
	}

	b := composer.DefaultOptions()
	b.AllowFiles = false

	return []app.Seat{
		{Name: "User A", Composer: a},
		{Name: "User B", Composer: b},
	}
}

// Conversation shows two senders taking turns, one of them attaching files.
var Conversation = &demo.Scenario{
	Name:        "conversation",
	Description: "Two senders take turns; tab switches who is typing",
	Width:       100,
	Height:      30,
	Seats:       TwoSeats(),
	Steps: demo.Steps(
		demo.Wait(1*time.Second),

		demo.Annotate("User A writes first"),
		demo.Say("Hey, are we still meeting later?"),
		demo.Capture(),

		demo.Annotate("Tab hands the keyboard to User B"),
		demo.KeyWithDesc("tab", "Switch to User B"),
		demo.Say("Sure, see you at 5!"),
		demo.Capture(),

		demo.KeyWithDesc("tab", "Back to User A"),
		demo.Annotate("Dropped files show as pills until sent"),
		demo.Drop(
			demo.File("whiteboard.png", "image/png", 412_000),
			demo.File("agenda.pdf", "application/pdf", 86_000),
		),
		demo.Type("Here are the notes"),
		demo.Capture(),
		demo.Key("enter"),
		demo.Wait(500*time.Millisecond),
	),
}

// Rejections walks through each rule that can turn a file away.
var Rejections = &demo.Scenario{
	Name:        "rejections",
	Description: "Type, count and size limits on attachments",
	Width:       100,
	Height:      30,
	Seats: []app.Seat{{
		Name: "You",
		Composer: composer.Options{
			AllowFiles:    true,
			AllowedTypes:  "image/*, .pdf",
			MaxFiles:      2,
			MaxFileSizeMB: 1,
			Placeholder:   composer.DefaultPlaceholder,
		},
	}},
	Steps: demo.Steps(
		demo.Annotate("Only images and PDFs are accepted"),
		demo.Drop(demo.File("setup.exe", "application/octet-stream", 2_000)),

		demo.Annotate("Files over 1 MB are refused"),
		demo.Drop(demo.File("raw.tiff", "image/tiff", 3_500_000)),

		demo.Annotate("Two files at most; the extra one is dropped"),
		demo.Drop(
			demo.File("one.png", "image/png", 10_000),
			demo.File("two.png", "image/png", 10_000),
			demo.File("three.png", "image/png", 10_000),
		),

		demo.Annotate("ctrl+x removes the newest pill"),
		demo.Key("ctrl+x"),
		demo.Capture(),
	),
}

// Scrollback fills the list, scrolls away from the bottom and jumps back.
var Scrollback = &demo.Scenario{
	Name:        "scrollback",
	Description: "The list follows new messages until you scroll up",
	Width:       80,
	Height:      24,
	Seats:       TwoSeats(),
	Steps:       scrollbackSteps(),
}

func scrollbackSteps() []demo.Step {
	var groups []any
	for i := 1; i <= 12; i++ {
		groups = append(groups, demo.Say(fmt.Sprintf("Message number %d", i)), demo.Key("tab"))
	}
	groups = append(groups,
		demo.Capture(),
		demo.Annotate("Scrolling up unpins the list"),
		demo.Key("pgup"),
		demo.Key("pgup"),
		demo.Capture(),
		demo.Annotate("New messages no longer move the view"),
		demo.Say("Anyone there?"),
		demo.Capture(),
		demo.Annotate("ctrl+g jumps to the latest message"),
		demo.Key("ctrl+g"),
		demo.Capture(),
	)
	return demo.Steps(groups...)
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Conversation,
		Rejections,
		Scrollback,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
