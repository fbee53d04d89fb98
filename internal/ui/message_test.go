package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestMessage_RenderAlignment(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local)

	mine := plain(Message{Text: "hi", IsMe: true, Timestamp: ts}.Render(60))
	theirs := plain(Message{Author: "ada", Text: "hello", Timestamp: ts}.Render(60))

	for _, line := range strings.Split(mine, "\n") {
		if w := ansi.StringWidth(line); w != 60 {
			t.Errorf("line %q has width %d, want 60", line, w)
		}
	}
	if !strings.HasSuffix(strings.TrimRight(strings.Split(mine, "\n")[1], " "), "╮") {
		t.Errorf("own bubble should be right-aligned:\n%s", mine)
	}
	if !strings.HasPrefix(strings.Split(theirs, "\n")[1], "╭") {
		t.Errorf("other bubble should be left-aligned:\n%s", theirs)
	}

	if !strings.Contains(mine, "09:30") || !strings.Contains(theirs, "09:30") {
		t.Error("timestamp should be shown above both bubbles")
	}
	if !strings.Contains(theirs, "ada") {
		t.Error("author should be shown for other senders")
	}
}

func TestMessage_RenderWrapsToBubbleWidth(t *testing.T) {
	text := strings.Repeat("word ", 40)
	out := plain(Message{Text: text}.Render(40))

	limit := int(40 * BubbleWidthRatio)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(strings.TrimRight(line, " ")); w > limit {
			t.Errorf("line %q is %d wide, want <= %d", line, w, limit)
		}
	}
}

func TestMessage_RenderFiles(t *testing.T) {
	m := Message{Files: []Attachment{
		{Name: "a.pdf", Size: "10 kB"},
		{Name: "b.png", IsImage: true},
	}}

	out := plain(m.Render(60))

	if !strings.Contains(out, FileGlyph+" a.pdf (10 kB)") {
		t.Errorf("missing file line:\n%s", out)
	}
	if !strings.Contains(out, ImageGlyph+" b.png") {
		t.Errorf("missing image line:\n%s", out)
	}
}

func TestDateDivider(t *testing.T) {
	d := DateDivider{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)}
	if got := d.Label(); got != "Mar 01, 2025" {
		t.Errorf("Label = %q", got)
	}

	out := plain(d.Render(40))
	if !strings.Contains(out, " Mar 01, 2025 ") || !strings.Contains(out, "──") {
		t.Errorf("Render = %q", out)
	}
}

func TestWithDateDividers(t *testing.T) {
	day1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)
	msgs := []Message{
		{Text: "a", Timestamp: day1},
		{Text: "b", Timestamp: day1.Add(13*time.Hour + 59*time.Minute)},
		{Text: "c", Timestamp: day1.Add(14*time.Hour + 1*time.Minute)},
		{Text: "d"},
	}

	items := WithDateDividers(msgs)

	var got []string
	for _, it := range items {
		switch it := it.(type) {
		case DateDivider:
			got = append(got, "|"+it.Label())
		case Message:
			got = append(got, it.Text)
		}
	}
	want := []string{"|Mar 01, 2025", "a", "b", "|Mar 02, 2025", "c", "d"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("items = %v, want %v", got, want)
	}
}

func TestWithDateDividers_NoTimestamps(t *testing.T) {
	items := WithDateDividers([]Message{{Text: "a"}, {Text: "b"}})
	if len(items) != 2 {
		t.Errorf("messages without timestamps should not get dividers, got %d items", len(items))
	}
}
