package games

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Palette colors.
var (
	LightWhite = Color{255, 255, 255}
	White      = Color{200, 200, 200}
	LightGray  = Color{150, 150, 150}
	Gray       = Color{100, 100, 100}
	DarkGray   = Color{50, 50, 50}
	Black      = Color{0, 0, 0}
	Red        = Color{255, 0, 0}
	Green      = Color{0, 255, 0}
	Blue       = Color{0, 0, 255}
	Yellow     = Color{255, 255, 0}
	Cyan       = Color{0, 255, 255}
	Magenta    = Color{255, 0, 255}
	Orange     = Color{255, 165, 0}
	Purple     = Color{128, 0, 128}
	Pink       = Color{255, 192, 203}
	Brown      = Color{165, 42, 42}
	Gold       = Color{255, 215, 0}
	Silver     = Color{192, 192, 192}
	Beige      = Color{245, 245, 220}
	Maroon     = Color{128, 0, 0}
	Mint       = Color{189, 252, 201}
	Teal       = Color{0, 128, 128}
	Lavender   = Color{230, 230, 250}
	Olive      = Color{128, 128, 0}
	Coral      = Color{255, 127, 80}
	Salmon     = Color{250, 128, 114}
	Khaki      = Color{240, 230, 140}
	Indigo     = Color{75, 0, 130}
	Turquoise  = Color{64, 224, 208}
	Violet     = Color{238, 130, 238}
	SkyBlue    = Color{135, 206, 235}
	Azure      = Color{240, 255, 255}
)

type paletteEntry struct {
	name  string
	color Color
}

// palette is ordered as listed above. It is never modified.
var palette = []paletteEntry{
	{"light_white", LightWhite},
	{"white", White},
	{"light_gray", LightGray},
	{"gray", Gray},
	{"dark_gray", DarkGray},
	{"black", Black},
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
	{"yellow", Yellow},
	{"cyan", Cyan},
	{"magenta", Magenta},
	{"orange", Orange},
	{"purple", Purple},
	{"pink", Pink},
	{"brown", Brown},
	{"gold", Gold},
	{"silver", Silver},
	{"beige", Beige},
	{"maroon", Maroon},
	{"mint", Mint},
	{"teal", Teal},
	{"lavender", Lavender},
	{"olive", Olive},
	{"coral", Coral},
	{"salmon", Salmon},
	{"khaki", Khaki},
	{"indigo", Indigo},
	{"turquoise", Turquoise},
	{"violet", Violet},
	{"sky_blue", SkyBlue},
	{"azure", Azure},
}

var paletteIndex = func() map[string]Color {
	m := make(map[string]Color, len(palette))
	for _, e := range palette {
		m[e.name] = e.color
	}
	return m
}()

var separators = strings.NewReplacer("-", "_", " ", "_")

// foldName maps "Sky Blue", "SKY-BLUE" and "sky_blue" to one key.
func foldName(name string) string {
	return separators.Replace(cases.Fold().String(strings.TrimSpace(name)))
}

// Named returns the palette color called name. Matching ignores case,
// and '-' or ' ' match '_'.
func Named(name string) (Color, bool) {
	c, ok := paletteIndex[foldName(name)]
	return c, ok
}

// PaletteNames returns the palette's names in table order.
func PaletteNames() []string {
	names := make([]string, len(palette))
	for i, e := range palette {
		names[i] = e.name
	}
	return names
}

// nameOf returns the first palette name of c.
func nameOf(c Color) (string, bool) {
	i := slices.IndexFunc(palette, func(e paletteEntry) bool { return e.color == c })
	if i < 0 {
		return "", false
	}
	return palette[i].name, true
}
