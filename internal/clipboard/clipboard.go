// Package clipboard reads images from the system clipboard for pasting into
// the composer.
package clipboard

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.design/x/clipboard"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/zhubert/chatkit/internal/attach"
	"github.com/zhubert/chatkit/internal/errors"
	"github.com/zhubert/chatkit/internal/logger"
)

// MediaType is the type of every image the Reader returns; clipboard images
// are re-encoded as PNG.
const MediaType = "image/png"

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the system clipboard. It is safe to call more than once.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			initErr = errors.ClipboardUnavailable(err)
		}
	})
	return initErr
}

// Source returns raw image bytes from a clipboard, or nil when it holds none.
type Source func() ([]byte, error)

// System reads the image slot of the system clipboard.
func System() ([]byte, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtImage), nil
}

// Reader turns clipboard images into attachment candidates.
type Reader struct {
	source Source
	log    *slog.Logger
}

// NewReader creates a Reader over source. A nil source reads the system
// clipboard.
func NewReader(source Source) *Reader {
	if source == nil {
		source = System
	}
	return &Reader{source: source, log: logger.ComponentLogger("Clipboard")}
}

// ReadImage returns the clipboard image as a PNG file named
// "pasted-<id>.png". ok is false when the clipboard holds no image.
func (r *Reader) ReadImage() (attach.RawFile, bool, error) {
	data, err := r.source()
	if err != nil {
		r.log.Warn("clipboard read failed", "error", err)
		return attach.RawFile{}, false, err
	}
	if len(data) == 0 {
		r.log.Debug("no image on clipboard")
		return attach.RawFile{}, false, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		r.log.Warn("clipboard image decode failed", "bytes", len(data), "error", err)
		return attach.RawFile{}, false, errors.ClipboardDecodeFailed(err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return attach.RawFile{}, false, errors.ClipboardDecodeFailed(err)
	}

	bounds := img.Bounds()
	r.log.Debug("clipboard image read", "format", format,
		"width", bounds.Dx(), "height", bounds.Dy(), "bytes", buf.Len())

	name := "pasted-" + uuid.NewString()[:8] + ".png"
	return attach.FromBytes(name, MediaType, buf.Bytes()), true, nil
}
