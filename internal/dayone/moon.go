package dayone

import (
	"fmt"

	"github.com/chee/do2org/internal/output"
)

// moonGlyphs maps the eight Day One lunar phase codes to display glyphs.
// The set is closed: a code outside it means the export records something
// this tool does not understand.
var moonGlyphs = map[string]string{
	"new":             "🌑",
	"waxing-crescent": "🌒",
	"first-quarter":   "🌓",
	"waxing-gibbous":  "🌔",
	"full":            "🌕",
	"waning-gibbous":  "🌖",
	"last-quarter":    "🌗",
	"waning-crescent": "🌘",
}

// MoonGlyph resolves a lunar phase code to its glyph.
// Unknown codes are decode errors, not silently dropped properties.
func MoonGlyph(code string) (string, error) {
	glyph, ok := moonGlyphs[code]
	if !ok {
		return "", output.NewDecodeError(fmt.Sprintf("unknown moon phase code %q", code))
	}
	return glyph, nil
}
