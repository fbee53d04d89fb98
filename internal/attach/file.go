// Package attach implements attachment intake and validation for the composer.
//
// Candidate files arrive from three sources (file picker, paste, drag-and-drop)
// as RawFile values. Validate classifies a batch against a RuleSet and returns
// the accepted subset together with at most one user-facing rejection message.
package attach

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Source identifies where a batch of candidate files came from.
type Source int

const (
	SourcePicker Source = iota
	SourcePaste
	SourceDrop
)

func (s Source) String() string {
	switch s {
	case SourcePicker:
		return "picker"
	case SourcePaste:
		return "paste"
	case SourceDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Blob is an opaque handle to the bytes behind a file.
type Blob interface {
	Open() (io.ReadCloser, error)
}

// pathBlob reads a file from disk when opened.
type pathBlob string

func (p pathBlob) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}

// bytesBlob serves an in-memory buffer, used for clipboard images.
type bytesBlob []byte

func (b bytesBlob) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// RawFile is a candidate attachment before validation.
type RawFile struct {
	Name      string // Display name, usually the base file name
	MimeType  string // Media type without parameters (e.g., "image/png")
	SizeBytes int64
	Blob      Blob
}

// PendingFile is a file accepted into a draft.
type PendingFile struct {
	ID string // Stable key for previews and removal
	RawFile
}

// newPending assigns an ID to an accepted file.
func newPending(f RawFile) PendingFile {
	return PendingFile{ID: uuid.NewString(), RawFile: f}
}

// IsImage reports whether the file has an image/* media type.
func (f RawFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.MimeType), "image/")
}

// HumanSize formats the file size for previews (e.g., "12 kB").
func (f RawFile) HumanSize() string {
	if f.SizeBytes < 0 {
		return "?"
	}
	return humanize.Bytes(uint64(f.SizeBytes))
}
