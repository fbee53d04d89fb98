package cmd

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zhubert/chatkit/internal/config"
)

func TestSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.New(path)
	cfg.SetLimits("image/*, .pdf", 4, 2.5)
	cfg.SetTheme("gruvbox")

	s := settingsFrom(cfg)
	want := settings{
		allowFiles:    true,
		allowedTypes:  "image/*, .pdf",
		maxFiles:      "4",
		maxFileSizeMB: "2.5",
		theme:         "gruvbox",
	}
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(settings{})); diff != "" {
		t.Fatalf("settingsFrom mismatch (-want +got):\n%s", diff)
	}

	s.maxFiles = " "
	s.placeholder = "Say something"
	s.notifications = true
	if err := s.apply(cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	opts := loaded.ComposerOptions()
	if opts.MaxFiles != 0 || opts.MaxFileSizeMB != 2.5 || opts.Placeholder != "Say something" {
		t.Errorf("loaded options = %+v", opts)
	}
	if !loaded.GetDesktopNotifications() {
		t.Error("notifications not saved")
	}
}

func TestSettings_DefaultTheme(t *testing.T) {
	cfg := config.New(filepath.Join(t.TempDir(), "config.json"))
	if got := settingsFrom(cfg).theme; got != "dark-purple" {
		t.Errorf("theme = %q, want dark-purple", got)
	}
}

func TestSettings_ApplyRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name     string
		maxFiles string
		maxMB    string
	}{
		{"letters", "three", "1"},
		{"negative count", "-2", "1"},
		{"fractional count", "1.5", "1"},
		{"negative size", "1", "-0.5"},
		{"bad size", "1", "big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(filepath.Join(t.TempDir(), "config.json"))
			s := settingsFrom(cfg)
			s.maxFiles, s.maxFileSizeMB = tt.maxFiles, tt.maxMB
			if err := s.apply(cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{" 7 ", 7},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseCount(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}
