package attach

import (
	"fmt"
	"mime"
	"sort"
	"strconv"
	"strings"
)

const bytesPerMB = 1024 * 1024

// Messages overrides the default English rejection text. Empty fields fall
// back to the defaults.
type Messages struct {
	InvalidType string
	MaxFiles    string
	MaxSize     string
}

// RuleSet is the validation configuration bound at composer construction.
// Zero values mean the rule is not set.
type RuleSet struct {
	MaxFiles      int      // Count gate, 0 = unlimited
	MaxFileSizeMB float64  // Per-file size gate in megabytes, 0 = unlimited
	Patterns      []string // Allowed MIME types, MIME classes or extensions, nil = all
	Messages      Messages
}

// ParsePatterns splits a comma-separated allow-list such as
// "image/*, application/pdf, .TXT" into normalized patterns.
// It returns nil when the list is empty so that all types pass.
func ParsePatterns(list string) []string {
	var patterns []string
	for _, p := range strings.Split(list, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// MaxFileSizeBytes returns the size limit in bytes, or 0 when unset.
func (r RuleSet) MaxFileSizeBytes() int64 {
	if r.MaxFileSizeMB <= 0 {
		return 0
	}
	return int64(r.MaxFileSizeMB * bytesPerMB)
}

// AtLimit reports whether a draft holding count files cannot take more.
func (r RuleSet) AtLimit(count int) bool {
	return r.MaxFiles > 0 && count >= r.MaxFiles
}

// Matches reports whether a file passes the type rule.
func (r RuleSet) Matches(name, mimeType string) bool {
	if len(r.Patterns) == 0 {
		return true
	}
	name = strings.ToLower(name)
	mimeType = strings.ToLower(mimeType)
	for _, p := range r.Patterns {
		if matchPattern(strings.ToLower(p), name, mimeType) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, name, mimeType string) bool {
	switch {
	case pattern == "*" || pattern == "*/*":
		return true
	case strings.HasPrefix(pattern, "."):
		return strings.HasSuffix(name, pattern)
	case strings.HasSuffix(pattern, "/*"):
		return strings.HasPrefix(mimeType, strings.TrimSuffix(pattern, "*"))
	default:
		return mimeType == pattern
	}
}

func (r RuleSet) maxFilesMessage() string {
	if r.Messages.MaxFiles != "" {
		return r.Messages.MaxFiles
	}
	return fmt.Sprintf("File limit exceeded. You can only attach a maximum of %d files.", r.MaxFiles)
}

func (r RuleSet) maxSizeMessage() string {
	if r.Messages.MaxSize != "" {
		return r.Messages.MaxSize
	}
	return fmt.Sprintf("One or more files exceed the maximum size of %s MB.",
		strconv.FormatFloat(r.MaxFileSizeMB, 'f', -1, 64))
}

func (r RuleSet) invalidTypeMessage() string {
	if r.Messages.InvalidType != "" {
		return r.Messages.InvalidType
	}
	allowed := "all"
	if len(r.Patterns) > 0 {
		allowed = strings.Join(r.Patterns, ", ")
	}
	return fmt.Sprintf("One or more files have invalid types. Allowed types: %s.", allowed)
}

// classExtensions maps MIME classes to the extensions offered by the picker.
var classExtensions = map[string][]string{
	"image/": {".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg", ".tiff"},
	"video/": {".mp4", ".mov", ".webm", ".mkv", ".avi"},
	"audio/": {".mp3", ".wav", ".ogg", ".flac", ".m4a"},
	"text/":  {".txt", ".md", ".csv", ".html", ".css"},
}

// PickerTypes converts the allow-list into file extensions for a file
// picker filter. It returns nil when every type is allowed or when a pattern
// cannot be expressed as extensions.
func (r RuleSet) PickerTypes() []string {
	if len(r.Patterns) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	for _, p := range r.Patterns {
		switch {
		case p == "*" || p == "*/*":
			return nil
		case strings.HasPrefix(p, "."):
			seen[p] = true
		case strings.HasSuffix(p, "/*"):
			exts, ok := classExtensions[strings.TrimSuffix(p, "*")]
			if !ok {
				return nil
			}
			for _, e := range exts {
				seen[e] = true
			}
		default:
			exts, _ := mime.ExtensionsByType(p)
			if len(exts) == 0 {
				return nil
			}
			for _, e := range exts {
				seen[e] = true
			}
		}
	}
	types := make([]string, 0, len(seen))
	for e := range seen {
		types = append(types, e)
	}
	sort.Strings(types)
	return types
}
