package attach

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ,  ", nil},
		{"image/*", []string{"image/*"}},
		{"image/*, .PDF ,application/JSON", []string{"image/*", ".pdf", "application/json"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParsePatterns(tt.in)); diff != "" {
				t.Errorf("ParsePatterns(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		file     string
		mime     string
		want     bool
	}{
		{"no patterns allows all", nil, "x.bin", "application/octet-stream", true},
		{"extension case-insensitive", []string{".pdf"}, "REPORT.PDF", "", true},
		{"extension mismatch", []string{".pdf"}, "report.txt", "application/pdf", false},
		{"multi-dot extension suffix", []string{".tar.gz"}, "src.tar.gz", "application/gzip", true},
		{"extension needs the dot", []string{".pdf"}, "notapdf", "", false},
		{"glob matches class", []string{"image/*"}, "a.png", "IMAGE/PNG", true},
		{"glob does not match other class", []string{"image/*"}, "a.mp4", "video/mp4", false},
		{"glob requires slash boundary", []string{"image/*"}, "a", "imagex/foo", false},
		{"exact match case-insensitive", []string{"application/pdf"}, "a", "Application/PDF", true},
		{"exact does not prefix-match", []string{"application/pdf"}, "a", "application/pdfx", false},
		{"wildcard", []string{"*/*"}, "a", "anything/else", true},
		{"any of many", []string{".doc", "image/*", "text/plain"}, "a.txt", "text/plain", true},
		{"empty mime fails glob", []string{"image/*"}, "a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RuleSet{Patterns: tt.patterns}
			if got := r.Matches(tt.file, tt.mime); got != tt.want {
				t.Errorf("Matches(%q, %q) with %v = %v, want %v", tt.file, tt.mime, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestMaxFileSizeBytes(t *testing.T) {
	if got := (RuleSet{}).MaxFileSizeBytes(); got != 0 {
		t.Errorf("unset limit = %d, want 0", got)
	}
	if got := (RuleSet{MaxFileSizeMB: 2}).MaxFileSizeBytes(); got != 2*1024*1024 {
		t.Errorf("2 MB = %d bytes", got)
	}
}

func TestAtLimit(t *testing.T) {
	r := RuleSet{MaxFiles: 2}
	if r.AtLimit(1) {
		t.Error("1 of 2 should not be at limit")
	}
	if !r.AtLimit(2) {
		t.Error("2 of 2 should be at limit")
	}
	if (RuleSet{}).AtLimit(100) {
		t.Error("unset MaxFiles is never at limit")
	}
}

func TestPickerTypes(t *testing.T) {
	if got := (RuleSet{}).PickerTypes(); got != nil {
		t.Errorf("no patterns should give nil, got %v", got)
	}
	if got := (RuleSet{Patterns: []string{"*/*"}}).PickerTypes(); got != nil {
		t.Errorf("wildcard should give nil, got %v", got)
	}

	got := RuleSet{Patterns: []string{".pdf", ".txt", ".pdf"}}.PickerTypes()
	if diff := cmp.Diff([]string{".pdf", ".txt"}, got); diff != "" {
		t.Errorf("extension patterns mismatch (-want +got):\n%s", diff)
	}

	images := RuleSet{Patterns: []string{"image/*"}}.PickerTypes()
	found := false
	for _, e := range images {
		if e == ".png" {
			found = true
		}
	}
	if !found {
		t.Errorf("image/* should offer .png, got %v", images)
	}

	if got := (RuleSet{Patterns: []string{"application/x-unknown-thing"}}).PickerTypes(); got != nil {
		t.Errorf("unmappable MIME type should disable filtering, got %v", got)
	}
}

func TestInvalidTypeMessageListsPatterns(t *testing.T) {
	r := RuleSet{Patterns: []string{"image/*", ".pdf"}}
	want := "One or more files have invalid types. Allowed types: image/*, .pdf."
	if got := r.invalidTypeMessage(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := (RuleSet{}).invalidTypeMessage(); got != "One or more files have invalid types. Allowed types: all." {
		t.Errorf("got %q", got)
	}
}

func TestSourceString(t *testing.T) {
	for src, want := range map[Source]string{SourcePicker: "picker", SourcePaste: "paste", SourceDrop: "drop", Source(9): "unknown"} {
		if got := src.String(); got != want {
			t.Errorf("Source(%d).String() = %q, want %q", src, got, want)
		}
	}
}
