// Package config loads and saves chatkit's settings file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/composer"
	"github.com/zhubert/chatkit/internal/errors"
)

// FileName is the settings file inside the config directory.
const FileName = "config.json"

// RejectionMessages overrides the built-in rejection notices. Empty fields
// keep the defaults.
type RejectionMessages struct {
	InvalidType string `json:"invalid_type,omitempty"`
	MaxFiles    string `json:"max_files,omitempty"`
	MaxSize     string `json:"max_size,omitempty"`
}

// Config holds the application configuration
type Config struct {
	AllowFiles        *bool             `json:"allow_files,omitempty"`        // Nil means enabled
	AllowedTypes      string            `json:"allowed_types,omitempty"`      // Comma-separated, e.g. "image/*, .pdf"
	MaxFiles          int               `json:"max_files,omitempty"`          // Zero means unlimited
	MaxFileSizeMB     float64           `json:"max_file_size_mb,omitempty"`   // Zero means unlimited
	RejectionMessages RejectionMessages `json:"rejection_messages,omitempty"` // Custom notice text

	Placeholder          string `json:"placeholder,omitempty"`
	ScrollThresholdLines int    `json:"scroll_threshold_lines,omitempty"` // Zero uses the list default
	DesktopNotifications bool   `json:"desktop_notifications,omitempty"`  // Notify rejections while unfocused
	Theme                string `json:"theme,omitempty"`                  // UI theme name (e.g., "dark-purple", "nord")

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatkit"), nil
}

// DefaultPath returns the path of the settings file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// New returns an empty config that saves to path.
func New(path string) *Config {
	cfg := &Config{filePath: path}
	cfg.ensureInitialized()
	return cfg
}

// Load reads the config from the default path, or returns defaults if the
// file does not exist.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.chatkit", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills in defaults that the zero value cannot express.
// It must run before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.AllowFiles == nil {
		enabled := true
		c.AllowFiles = &enabled
	}
}

// Validate checks that every limit is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MaxFiles < 0 {
		return errors.ConfigInvalid("max_files must not be negative")
	}
	if c.MaxFileSizeMB < 0 {
		return errors.ConfigInvalid("max_file_size_mb must not be negative")
	}
	if c.ScrollThresholdLines < 0 {
		return errors.ConfigInvalid("scroll_threshold_lines must not be negative")
	}
	return nil
}

// Path returns the file the config saves to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk, replacing the file atomically.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	tmp := c.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmp, c.filePath); err != nil {
		os.Remove(tmp)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetAllowFiles returns whether attachments are enabled
func (c *Config) GetAllowFiles() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AllowFiles == nil || *c.AllowFiles
}

// SetAllowFiles enables or disables attachments
func (c *Config) SetAllowFiles(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AllowFiles = &enabled
}

// SetLimits sets the attachment rules
func (c *Config) SetLimits(allowedTypes string, maxFiles int, maxFileSizeMB float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AllowedTypes = allowedTypes
	c.MaxFiles = maxFiles
	c.MaxFileSizeMB = maxFileSizeMB
}

// GetPlaceholder returns the composer placeholder
func (c *Config) GetPlaceholder() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Placeholder
}

// SetPlaceholder sets the composer placeholder
func (c *Config) SetPlaceholder(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Placeholder = s
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDesktopNotifications returns whether rejections raise desktop notifications
func (c *Config) GetDesktopNotifications() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DesktopNotifications
}

// SetDesktopNotifications sets whether rejections raise desktop notifications
func (c *Config) SetDesktopNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DesktopNotifications = enabled
}

// GetScrollThresholdLines returns the pinned tolerance for the message list
func (c *Config) GetScrollThresholdLines() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ScrollThresholdLines
}

// ComposerOptions converts the config into composer options. Callbacks and
// the clipboard are left for the caller to fill in.
func (c *Config) ComposerOptions() composer.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()

	opts := composer.DefaultOptions()
	opts.AllowFiles = c.AllowFiles == nil || *c.AllowFiles
	opts.AllowedTypes = c.AllowedTypes
	opts.MaxFiles = c.MaxFiles
	opts.MaxFileSizeMB = c.MaxFileSizeMB
	opts.Messages = attach.Messages{
		InvalidType: c.RejectionMessages.InvalidType,
		MaxFiles:    c.RejectionMessages.MaxFiles,
		MaxSize:     c.RejectionMessages.MaxSize,
	}
	if c.Placeholder != "" {
		opts.Placeholder = c.Placeholder
	}
	return opts
}
