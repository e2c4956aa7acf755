package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/core"
	perrors "github.com/tessro/playbar/internal/errors"
	"github.com/tessro/playbar/internal/library"
	"github.com/tessro/playbar/internal/logging"
	"github.com/tessro/playbar/internal/playback"
	"github.com/tessro/playbar/internal/tui"
	"github.com/tessro/playbar/internal/wizard"
)

var (
	noAudio   bool
	seekGuard int
)

var tuiCmd = &cobra.Command{
	Use:     "ui [path...]",
	Aliases: []string{"tui", "play"},
	Short:   "Launch the control bar",
	Long: `Launch the control bar for the given files or directories.

The screen shows the track list above a bottom bar with:
  • Now Playing - track name and artist
  • Transport - skip buttons, play/pause and the progress bar
  • Volume - mute icon, with a slider shown above it

Click the progress bar to seek and the volume icon to mute and open the
slider. Mouse support can be turned off with tui.disable_mouse.

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  Space        Play/Pause
  ←/→          Seek by controls.seek_step seconds
  +/-          Volume by controls.volume_step percent
  m            Mute and show slider
  v            Show or hide slider
  ↑/↓, Enter   Choose a track`,
	Args: cobra.ArbitraryArgs,
	RunE: runUI,
}

func init() {
	addUIFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func addUIFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "use a silent clock instead of the sound device")
	cmd.Flags().IntVar(&seekGuard, "seek-guard", 0, "ignore stale position updates for this many ms after a seek (default from config)")
}

func runUI(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return perrors.ErrNotTerminal
	}

	tracks, start, err := resolveTracks(args, wizard.NewInteractive())
	if err != nil {
		return err
	}

	element, err := newElement()
	if err != nil {
		return err
	}
	player := playback.New(element, logging.Component(logger, "playback"))
	defer func() { _ = player.Close() }()

	guard := cfg.Controls.SeekGuardDuration()
	if cmd.Flags().Changed("seek-guard") {
		guard = time.Duration(seekGuard) * time.Millisecond
	}

	app := tui.NewApp(player, tracks, tui.Settings{
		Theme:        cfg.TUI.Theme,
		DisableMouse: cfg.TUI.DisableMouse,
		SeekStep:     cfg.Controls.SeekStep,
		VolumeStep:   cfg.Controls.VolumeStep,
		SeekGuard:    guard,
		SyncInterval: cfg.Audio.TimeUpdateIntervalDuration(),
	}, logger)
	return tui.Run(app, start)
}

// resolveTracks expands args into tracks, or scans the library directory
// and asks which track to start with when there are none.
func resolveTracks(args []string, prompt *wizard.Interactive) ([]core.Track, int, error) {
	scanner := library.NewScanner(cfg.Library.Extensions)

	if wizard.NeedsTrack(args) {
		tracks, err := scanner.Resolve(cfg.Library.LibraryDir())
		if err != nil {
			return nil, -1, err
		}
		start, err := prompt.PromptTrack(tracks)
		if err != nil {
			return nil, -1, err
		}
		return tracks, start, nil
	}

	var tracks []core.Track
	for _, arg := range args {
		found, err := scanner.Resolve(arg)
		if err != nil {
			return nil, -1, err
		}
		tracks = append(tracks, found...)
	}
	return tracks, 0, nil
}

// newElement opens the sound device, or a silent element with --no-audio.
func newElement() (audio.Element, error) {
	opts := []audio.Option{
		audio.WithInterval(cfg.Audio.TimeUpdateIntervalDuration()),
		audio.WithBuffer(cfg.Audio.BufferDuration()),
		audio.WithLogger(logging.Component(logger, "audio")),
	}
	if noAudio {
		return audio.NewMemory(opts...), nil
	}

	speaker, err := audio.NewSpeaker(opts...)
	if err != nil {
		return nil, err
	}
	return speaker, nil
}
