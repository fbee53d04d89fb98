package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NewConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.GetAllowFiles() {
		t.Error("attachments should default to enabled")
	}
	if filepath.Base(filepath.Dir(cfg.Path())) != ".chatkit" {
		t.Errorf("Path = %q, want under ~/.chatkit", cfg.Path())
	}
}

func TestLoadFrom_ExistingConfig(t *testing.T) {
	path := writeConfig(t, `{
		"allow_files": false,
		"allowed_types": "image/*, .pdf",
		"max_files": 3,
		"max_file_size_mb": 2.5,
		"rejection_messages": {"max_files": "Too many!"},
		"placeholder": "Say something",
		"scroll_threshold_lines": 8,
		"desktop_notifications": true,
		"theme": "nord"
	}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.GetAllowFiles() {
		t.Error("allow_files false should disable attachments")
	}
	if cfg.GetScrollThresholdLines() != 8 || !cfg.GetDesktopNotifications() || cfg.GetTheme() != "nord" {
		t.Errorf("unexpected config %+v", cfg)
	}

	opts := cfg.ComposerOptions()
	if opts.AllowFiles || opts.AllowedTypes != "image/*, .pdf" || opts.MaxFiles != 3 || opts.MaxFileSizeMB != 2.5 {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Placeholder != "Say something" {
		t.Errorf("Placeholder = %q", opts.Placeholder)
	}
	if diff := cmp.Diff(attach.Messages{MaxFiles: "Too many!"}, opts.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, `{not json`))
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("got %v, want a config error", err)
	}
}

func TestLoadFrom_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative max files", `{"max_files": -1}`},
		{"negative size", `{"max_file_size_mb": -0.5}`},
		{"negative threshold", `{"scroll_threshold_lines": -2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(writeConfig(t, tt.body)); !errors.Is(err, errors.KindInvalid) {
				t.Errorf("got %v, want an invalid-config error", err)
			}
		})
	}
}

func TestComposerOptions_Defaults(t *testing.T) {
	opts := New("unused").ComposerOptions()
	if !opts.AllowFiles || opts.Placeholder == "" || opts.MaxFiles != 0 {
		t.Errorf("unexpected defaults %+v", opts)
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := New(path)
	cfg.SetAllowFiles(false)
	cfg.SetLimits(".png", 2, 1)
	cfg.SetPlaceholder("Type here")
	cfg.SetTheme("dracula")
	cfg.SetDesktopNotifications(true)

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.GetAllowFiles() || loaded.AllowedTypes != ".png" || loaded.MaxFiles != 2 || loaded.MaxFileSizeMB != 1 {
		t.Errorf("limits not persisted: %+v", loaded)
	}
	if loaded.GetPlaceholder() != "Type here" || loaded.GetTheme() != "dracula" || !loaded.GetDesktopNotifications() {
		t.Errorf("settings not persisted: %+v", loaded)
	}
}

func TestConfig_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := New(path)
	cfg.SetLimits("", -1, 0)

	if err := cfg.Save(); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("got %v, want an invalid-config error", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestConfig_ConcurrentSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	cfg := New(path)
	cfg.SetLimits("image/*", 4, 0)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- cfg.Save()
		}()
	}
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg.SetPlaceholder("racing")
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Save() failed in goroutine: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("config file is corrupted: %v", err)
	}
	if loaded.MaxFiles != 4 {
		t.Errorf("MaxFiles = %d, want 4", loaded.MaxFiles)
	}
}
