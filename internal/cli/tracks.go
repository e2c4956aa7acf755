package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/controls"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/library"
)

var tracksProbe bool

var tracksCmd = &cobra.Command{
	Use:   "tracks [dir]",
	Short: "List playable tracks",
	Long: `List the playable tracks under a directory, or under library.dir when
no directory is given.

Examples:
  playbar tracks
  playbar tracks ~/Music/Albums --probe
  playbar tracks --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTracks,
}

func init() {
	tracksCmd.Flags().BoolVar(&tracksProbe, "probe", false, "decode each file to show its duration")
	rootCmd.AddCommand(tracksCmd)
}

// trackInfo is a track as listed by the tracks command.
type trackInfo struct {
	core.Track
	Duration *float64 `json:"duration,omitempty"`
}

func runTracks(cmd *cobra.Command, args []string) error {
	dir := cfg.Library.LibraryDir()
	if len(args) > 0 {
		dir = args[0]
	}

	tracks, err := library.NewScanner(cfg.Library.Extensions).Resolve(dir)
	if err != nil {
		return err
	}

	infos := make([]trackInfo, len(tracks))
	for i, t := range tracks {
		infos[i].Track = t
		if !tracksProbe {
			continue
		}
		if d, err := audio.Probe(t.Path); err == nil {
			infos[i].Duration = &d
		} else if Verbose() {
			fmt.Fprintf(os.Stderr, "probe %s: %v\n", t.Path, err)
		}
	}

	return printTracks(infos)
}

func printTracks(infos []trackInfo) error {
	if GetOutputMode() == OutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	headers := []string{"#", "NAME", "ARTIST"}
	if tracksProbe {
		headers = append(headers, "LENGTH")
	}
	if Verbose() {
		headers = append(headers, "PATH")
	}

	table := NewTable(headers...)
	for i, info := range infos {
		row := []string{
			fmt.Sprintf("%d", i+1),
			TruncateString(info.Name, 40),
			TruncateString(info.Artist, 30),
		}
		if tracksProbe {
			length := "?"
			if info.Duration != nil {
				length = controls.FormatTime(*info.Duration)
			}
			row = append(row, length)
		}
		if Verbose() {
			row = append(row, info.Path)
		}
		table.Row(row...)
	}
	table.Flush()
	return nil
}
