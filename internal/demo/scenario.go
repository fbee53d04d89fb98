// Package demo plays scripted scenarios against the chat host and captures the
// rendered frames. Scenarios drive the same Update path as a real terminal, so
// a recording is deterministic and needs no clipboard or desktop.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/chatkit/internal/app"
	"github.com/zhubert/chatkit/internal/attach"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepPaste delivers a bracketed paste.
	StepPaste
	// StepDrop drops files onto the composer.
	StepDrop
	// StepBlur moves terminal focus away.
	StepBlur
	// StepFocus gives terminal focus back.
	StepFocus
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepPaste
	Text string

	// For StepWait
	Duration time.Duration

	// For StepDrop
	Files []attach.RawFile

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 30)
	Seats       []app.Seat
	Steps       []Step
}

// Validate checks that the scenario is valid and fills in default dimensions.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	for i, seat := range s.Seats {
		if seat.Name == "" {
			return &ValidationError{Field: "Seats", Message: fmt.Sprintf("seat %d has no name", i)}
		}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{Type: StepTypeText, Text: text}
}

// Say types text and presses enter.
func Say(text string) []Step {
	return []Step{Type(text), Key("enter")}
}

// Paste creates a bracketed paste step.
func Paste(text string) Step {
	return Step{Type: StepPaste, Text: text}
}

// Drop creates a step that drops files on the composer.
func Drop(files ...attach.RawFile) Step {
	return Step{Type: StepDrop, Files: files}
}

// File is an in-memory attachment for Drop steps holding size zero bytes.
func File(name, mediaType string, size int) attach.RawFile {
	return attach.FromBytes(name, mediaType, make([]byte, size))
}

// Blur creates a step that takes focus away from the terminal.
func Blur() Step {
	return Step{Type: StepBlur}
}

// Focus creates a step that returns focus to the terminal.
func Focus() Step {
	return Step{Type: StepFocus}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}

// Steps flattens single steps and step groups built with helpers such as Say.
func Steps(groups ...any) []Step {
	var out []Step
	for _, g := range groups {
		switch v := g.(type) {
		case Step:
			out = append(out, v)
		case []Step:
			out = append(out, v...)
		}
	}
	return out
}
