package core

// Track represents a playable audio track.
type Track struct {
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	ImageURL string `json:"image_url,omitempty"`
	Path     string `json:"path"`
}
