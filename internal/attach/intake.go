package attach

import (
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kballard/go-shellquote"

	"github.com/zhubert/chatkit/internal/errors"
	"github.com/zhubert/chatkit/internal/logger"
)

const defaultMediaType = "application/octet-stream"

// FromPath builds a RawFile for a file on disk.
func FromPath(path string) (RawFile, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return RawFile{}, errors.FileNotFound(path)
	}
	if err != nil {
		return RawFile{}, errors.FileUnreadable(path, err)
	}
	if !info.Mode().IsRegular() {
		return RawFile{}, errors.FileNotRegular(path)
	}

	mediaType, err := DetectMediaType(path)
	if err != nil {
		return RawFile{}, err
	}

	return RawFile{
		Name:      filepath.Base(path),
		MimeType:  mediaType,
		SizeBytes: info.Size(),
		Blob:      pathBlob(path),
	}, nil
}

// FromPaths builds RawFiles for every readable path. Paths that cannot be
// read are logged and skipped; the platform input source owns those failures.
func FromPaths(paths []string) []RawFile {
	files := make([]RawFile, 0, len(paths))
	for _, p := range paths {
		f, err := FromPath(p)
		if err != nil {
			logger.Warn("Attach: skipping %s: %v", p, err)
			continue
		}
		files = append(files, f)
	}
	return files
}

// FromBytes wraps an in-memory blob such as a pasted image.
func FromBytes(name, mediaType string, data []byte) RawFile {
	if mediaType == "" {
		mediaType = mimetype.Detect(data).String()
	}
	return RawFile{
		Name:      name,
		MimeType:  baseMediaType(mediaType),
		SizeBytes: int64(len(data)),
		Blob:      bytesBlob(data),
	}
}

// DetectMediaType resolves a file's MIME type from its extension, falling
// back to content sniffing when the extension is unknown.
func DetectMediaType(path string) (string, error) {
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return baseMediaType(byExt), nil
	}
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.FileUnreadable(path, err)
	}
	return baseMediaType(m.String()), nil
}

// baseMediaType strips parameters such as "; charset=utf-8".
func baseMediaType(v string) string {
	if t, _, err := mime.ParseMediaType(v); err == nil {
		return t
	}
	if v == "" {
		return defaultMediaType
	}
	return strings.ToLower(strings.TrimSpace(strings.SplitN(v, ";", 2)[0]))
}

// ParseDroppedPaths recognizes the text a terminal pastes when files are
// dragged onto it: paths separated by whitespace or newlines, optionally
// quoted, backslash-escaped, or given as file:// URIs. It returns ok=false
// unless every token names an existing regular file.
func ParseDroppedPaths(text string) ([]string, bool) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r", "\n")
	tokens, err := shellquote.Split(text)
	if err != nil || len(tokens) == 0 {
		return nil, false
	}

	paths := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		p, ok := resolveDroppedPath(tok)
		if !ok {
			return nil, false
		}
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			return nil, false
		}
		paths = append(paths, p)
	}
	return paths, true
}

func resolveDroppedPath(tok string) (string, bool) {
	if strings.HasPrefix(tok, "file://") {
		u, err := url.Parse(tok)
		if err != nil || u.Path == "" {
			return "", false
		}
		return u.Path, true
	}
	if strings.HasPrefix(tok, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		tok = filepath.Join(home, tok[2:])
	}
	if !filepath.IsAbs(tok) {
		return "", false
	}
	return filepath.Clean(tok), true
}
