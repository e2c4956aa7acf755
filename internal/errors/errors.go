package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNoTrack           = errors.New("no track selected")
	ErrNotLoaded         = errors.New("no audio loaded")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoAudioDevice     = errors.New("audio device unavailable")
	ErrEmptyLibrary      = errors.New("no playable tracks found")
	ErrNotTerminal       = errors.New("not a terminal")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// PlaybarError wraps an error with a user-friendly suggestion.
type PlaybarError struct {
	Err        error
	Suggestion string
}

func (e *PlaybarError) Error() string {
	return e.Err.Error()
}

func (e *PlaybarError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &PlaybarError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var pbErr *PlaybarError
	if errors.As(err, &pbErr) && pbErr.Suggestion != "" {
		return pbErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrUnsupportedFormat) || strings.Contains(errStr, "unsupported") {
		return "Supported formats are mp3, wav, flac and ogg"
	}

	if errors.Is(err, ErrNoAudioDevice) || strings.Contains(errStr, "speaker") {
		return "Check your sound output, or run with --no-audio to use the silent player"
	}

	if errors.Is(err, ErrEmptyLibrary) {
		return "Pass a file or directory, or set library.dir in ~/.playbarrc"
	}

	if errors.Is(err, ErrNotTerminal) {
		return "Run playbar from an interactive terminal"
	}

	if errors.Is(err, ErrNoTrack) || errors.Is(err, ErrNotLoaded) {
		return "Select a track first"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'playbar config init' to create a default configuration"
	}

	if strings.Contains(errStr, "no such file") {
		return "Check that the path exists"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
