// Package library finds playable tracks on disk.
package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/tessro/playbar/internal/core"
	perrors "github.com/tessro/playbar/internal/errors"
)

// CoverNames are the artwork file names looked up next to a track.
var CoverNames = []string{"cover.jpg", "folder.jpg"}

// Scanner walks directories for files with the configured extensions.
type Scanner struct {
	exts map[string]bool
}

// NewScanner creates a scanner for extensions, given with or without the
// leading dot.
func NewScanner(extensions []string) *Scanner {
	s := &Scanner{exts: make(map[string]bool, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			s.exts["."+ext] = true
		}
	}
	return s
}

// Matches reports whether path has one of the scanner's extensions.
func (s *Scanner) Matches(path string) bool {
	return s.exts[strings.ToLower(filepath.Ext(path))]
}

// Scan returns every matching track under dir, sorted by path. Hidden
// directories are skipped.
func (s *Scanner) Scan(dir string) ([]core.Track, error) {
	var tracks []core.Track
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Matches(path) {
			tracks = append(tracks, TrackFor(path))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", dir)
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Path < tracks[j].Path
	})
	return tracks, nil
}

// Resolve turns path into tracks. A file yields itself; a directory yields
// its scan. An empty result is ErrEmptyLibrary.
func (s *Scanner) Resolve(path string) ([]core.Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve track")
	}

	if !info.IsDir() {
		if !s.Matches(path) {
			return nil, errors.Wrapf(perrors.ErrUnsupportedFormat, "%s", filepath.Base(path))
		}
		return []core.Track{TrackFor(path)}, nil
	}

	tracks, err := s.Scan(path)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, errors.Wrapf(perrors.ErrEmptyLibrary, "%s", path)
	}
	return tracks, nil
}

// TrackFor describes the file at path. The name is the file name without
// its extension and the artist is the containing directory.
func TrackFor(path string) core.Track {
	base := filepath.Base(path)
	dir := filepath.Dir(path)

	t := core.Track{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
	}
	if artist := filepath.Base(dir); artist != "." && artist != string(filepath.Separator) {
		t.Artist = artist
	}
	for _, name := range CoverNames {
		cover := filepath.Join(dir, name)
		if info, err := os.Stat(cover); err == nil && !info.IsDir() {
			t.ImageURL = cover
			break
		}
	}
	return t
}
