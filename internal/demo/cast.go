package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the terminal before each frame.
const clearScreen = "\x1b[2J\x1b[H"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is shown after its Delay has elapsed.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   title,
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var at time.Duration
	for i, f := range frames {
		at += f.Delay
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		event := []any{at.Seconds(), "o", data}
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}
