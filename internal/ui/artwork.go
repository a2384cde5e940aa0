package ui

import (
	"os"
	"strings"
)

const artworkPlaceholder = "[ no condenser artwork ]"

// LoadArtwork reads the decorative ASCII artwork file. A missing or
// unreadable file is non-fatal and degrades to a placeholder line.
func LoadArtwork(path string) string {
	if path == "" {
		return StyleHelp.Render(artworkPlaceholder)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return StyleHelp.Render(artworkPlaceholder)
	}
	art := strings.TrimRight(string(data), "\n")
	if art == "" {
		return StyleHelp.Render(artworkPlaceholder)
	}
	return StyleArtwork.Render(art)
}
