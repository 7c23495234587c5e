package padtui

import (
	"fmt"

	"github.com/muurk/numpad/pad"
)

// GlyphMap is a pad.GlyphSource backed by a fixed table.
type GlyphMap map[string]string

// Glyph implements pad.GlyphSource.
func (g GlyphMap) Glyph(name string) (string, error) {
	s, ok := g[name]
	if !ok {
		return "", fmt.Errorf("glyph %q not in table", name)
	}
	return s, nil
}

// UnicodeGlyphs renders keypad icons with plain Unicode symbols.
var UnicodeGlyphs = GlyphMap{
	pad.GlyphBackspace: "⌫",
	pad.GlyphDismiss:   "▾",
}
