package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownIcon is returned when a service icon tag is not one of the known
// [Icon] values.
var ErrUnknownIcon = errors.New("unknown icon")

// Icon is the closed set of service icon identifiers understood by the
// renderers. Values outside the set are rejected when decoded.
type Icon string

const (
	IconVideo    Icon = "Video"
	IconImage    Icon = "Image"
	IconZap      Icon = "Zap"
	IconPlay     Icon = "Play"
	IconSparkles Icon = "Sparkles"
	IconFilm     Icon = "Film"
	IconWand2    Icon = "Wand2"
)

// icons maps every known icon to the glyph used by the terminal renderer.
var icons = map[Icon]string{
	IconVideo:    "🎥",
	IconImage:    "🖼",
	IconZap:      "⚡",
	IconPlay:     "▶",
	IconSparkles: "✨",
	IconFilm:     "🎞",
	IconWand2:    "🪄",
}

// Icons returns all known icons in a stable order.
func Icons() []Icon {
	return []Icon{IconVideo, IconImage, IconZap, IconPlay, IconSparkles, IconFilm, IconWand2}
}

// ParseIcon converts s into an [Icon] or returns [ErrUnknownIcon].
func ParseIcon(s string) (Icon, error) {
	icon := Icon(s)
	if !icon.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, s)
	}
	return icon, nil
}

// Valid reports whether i is one of the known icons.
func (i Icon) Valid() bool {
	_, ok := icons[i]
	return ok
}

// Glyph returns the rendering primitive for i. The mapping is total over the
// known set; unknown values cannot be constructed through ParseIcon or JSON.
func (i Icon) Glyph() string {
	return icons[i]
}

func (i Icon) String() string {
	return string(i)
}

// UnmarshalJSON rejects unknown icon tags.
func (i *Icon) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	icon, err := ParseIcon(s)
	if err != nil {
		return err
	}
	*i = icon
	return nil
}
