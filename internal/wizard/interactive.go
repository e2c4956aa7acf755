package wizard

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/tessro/playbar/internal/core"
	perrors "github.com/tessro/playbar/internal/errors"
	"golang.org/x/term"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled bool
	pick    func(tracks []core.Track) (int, error)
}

// NewInteractive creates a new interactive handler.
func NewInteractive() *Interactive {
	return &Interactive{
		enabled: true,
		pick:    RunTrackPicker,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// IsTerminal returns true if stdin and stdout are terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && IsTerminal()
}

// PromptTrack asks which of tracks to start with. A single track is chosen
// without asking. It fails with ErrNotTerminal when a choice is needed but
// interactive mode is unavailable.
func (i *Interactive) PromptTrack(tracks []core.Track) (int, error) {
	switch {
	case len(tracks) == 0:
		return -1, perrors.ErrEmptyLibrary
	case len(tracks) == 1:
		return 0, nil
	case !i.CanInteract():
		return -1, perrors.ErrNotTerminal
	}
	return i.pick(tracks)
}

// NeedsTrack returns true if a track argument is required but missing.
func NeedsTrack(args []string) bool {
	return len(args) == 0
}

// TrackLabel is how a track is listed in the picker.
func TrackLabel(t core.Track) string {
	if t.Artist == "" {
		return t.Name
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Artist)
}

// RunTrackPicker shows a select over tracks and returns the chosen index.
func RunTrackPicker(tracks []core.Track) (int, error) {
	options := make([]huh.Option[int], len(tracks))
	for i, t := range tracks {
		options[i] = huh.NewOption(TrackLabel(t), i)
	}

	selected := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a track").
				Description("Playback starts paused on the chosen track").
				Options(options...).
				Height(min(len(options)+2, 15)).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return -1, fmt.Errorf("selection cancelled: %w", err)
	}
	return selected, nil
}
