package cursor

import (
	"strings"

	"github.com/folio-dev/folio/internal/motion"
)

// Variant is a named visual state of the pointer-following cursor.
type Variant string

const (
	Default Variant = "default"
	Hover   Variant = "hover"
	Text    Variant = "text"
)

// ParseVariant maps a token to a Variant. Anything unrecognised is Default.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case Hover:
		return Hover
	case Text:
		return Text
	default:
		return Default
	}
}

// Style is the endpoint visual for a variant.
type Style struct {
	Size       int                 `json:"size"`
	Fill       string              `json:"fill"`
	Border     string              `json:"border"`
	BlendMode  string              `json:"blend_mode"`
	Transition motion.SpringConfig `json:"transition"`
}

var styles = map[Variant]Style{
	Default: {
		Size:       20,
		Fill:       "transparent",
		Border:     "2px solid var(--primary)",
		BlendMode:  "difference",
		Transition: motion.CursorMorph,
	},
	Hover: {
		Size:       60,
		Fill:       "var(--primary)",
		Border:     "none",
		BlendMode:  "difference",
		Transition: motion.CursorMorph,
	},
	Text: {
		Size:       100,
		Fill:       "var(--foreground)",
		Border:     "none",
		BlendMode:  "difference",
		Transition: motion.CursorMorph,
	},
}

// StyleFor returns the visual for v, falling back to the Default style.
func StyleFor(v Variant) Style {
	if s, ok := styles[v]; ok {
		return s
	}
	return styles[Default]
}
