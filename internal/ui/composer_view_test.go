package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/composer"
)

func newComposer(t *testing.T, mutate func(*composer.Options)) *composer.Composer {
	t.Helper()
	opts := composer.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	c := composer.New(opts)
	t.Cleanup(c.Close)
	c.SetWidth(60 - BorderSize - InputPaddingWidth)
	return c
}

func TestRenderComposer_Pills(t *testing.T) {
	c := newComposer(t, nil)
	c.AddFiles([]attach.RawFile{
		attach.FromBytes("report.pdf", "application/pdf", make([]byte, 2000)),
		attach.FromBytes("cat.png", "image/png", make([]byte, 10)),
	}, attach.SourcePicker)

	out := plain(RenderComposer(c, 60))

	if !strings.Contains(out, FileGlyph+" report.pdf 2.0 kB") {
		t.Errorf("missing file pill:\n%s", out)
	}
	if !strings.Contains(out, ImageGlyph+" cat.png 10 B ctrl+x") {
		t.Errorf("last pill should carry the remove hint:\n%s", out)
	}
}

func TestRenderComposer_Notice(t *testing.T) {
	c := newComposer(t, func(o *composer.Options) { o.MaxFiles = 1 })
	c.AddFiles([]attach.RawFile{
		attach.FromBytes("a.txt", "text/plain", []byte("a")),
		attach.FromBytes("b.txt", "text/plain", []byte("b")),
	}, attach.SourceDrop)

	out := plain(RenderComposer(c, 60))

	if !strings.Contains(out, "File limit exceeded.") {
		t.Errorf("notice should be shown:\n%s", out)
	}
}

func TestRenderComposer_SendHint(t *testing.T) {
	c := newComposer(t, nil)
	if strings.Contains(plain(RenderComposer(c, 60)), SendHint) {
		t.Error("empty draft should not offer send")
	}

	c.SetText("hello")
	if !strings.Contains(plain(RenderComposer(c, 60)), SendHint) {
		t.Error("draft with text should offer send")
	}
}

func TestRenderComposer_BorderReflectsState(t *testing.T) {
	c := newComposer(t, nil)

	if !strings.Contains(plain(RenderComposer(c, 60)), "╭") {
		t.Error("idle composer should use a rounded border")
	}

	c.DragEnter()
	if !strings.Contains(plain(RenderComposer(c, 60)), "╔") {
		t.Error("drag hover should switch to the double border")
	}
}

func TestRenderComposer_Width(t *testing.T) {
	c := newComposer(t, nil)
	for _, line := range strings.Split(plain(RenderComposer(c, 60)), "\n") {
		if w := ansi.StringWidth(line); w != 60 {
			t.Errorf("line %q has width %d, want 60", line, w)
		}
	}
}

func TestTruncateGraphemes(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.txt", 20, "short.txt"},
		{"abcdefghijklmnopqrstuvwxyz", 10, "abcdefghi…"},
		{strings.Repeat("👨‍👩‍👧", 5), 5, "👨‍👩‍👧👨‍👩‍👧…"},
	}

	for _, tt := range tests {
		if got := truncateGraphemes(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateGraphemes(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
