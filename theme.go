package spritemaker

import (
	"fmt"
	"sort"
)

// Theme holds the dimensions of a legacy single-sheet theme, in pixels.
// Themes are values: presets are returned by copy and never shared.
type Theme struct {
	Name       string
	SpriteName string // sheet file name, e.g. "sprite-agent.png"

	ButtonHeight     int
	ButtonMarginLeft int // width of the button left cap
	CheckboxWidth    int
	CheckboxHeight   int
	RadioWidth       int
	RadioHeight      int
	SelectHeight     int
	SelectMarginLeft int // width of the select left cap
	UploadHeight     int

	// Retina is the required scale of the high-resolution companion sheet.
	// Zero means the companion is optional and its scale is measured.
	Retina int
}

var themes = map[string]Theme{
	"default": {
		Name:             "default",
		SpriteName:       "sprite.png",
		ButtonHeight:     30,
		ButtonMarginLeft: 13,
		CheckboxWidth:    19,
		CheckboxHeight:   19,
		RadioWidth:       18,
		RadioHeight:      18,
		SelectHeight:     26,
		SelectMarginLeft: 10,
		UploadHeight:     28,
	},
	"agent": {
		Name:             "agent",
		SpriteName:       "sprite-agent.png",
		ButtonHeight:     32,
		ButtonMarginLeft: 13,
		CheckboxWidth:    23,
		CheckboxHeight:   23,
		RadioWidth:       23,
		RadioHeight:      23,
		SelectHeight:     32,
		SelectMarginLeft: 12,
		UploadHeight:     32,
	},
	"aristo": {
		Name:             "aristo",
		SpriteName:       "sprite-aristo.png",
		ButtonHeight:     32,
		ButtonMarginLeft: 13,
		CheckboxWidth:    23,
		CheckboxHeight:   23,
		RadioWidth:       23,
		RadioHeight:      23,
		SelectHeight:     32,
		SelectMarginLeft: 10,
		UploadHeight:     32,
	},
	"jeans": {
		Name:             "jeans",
		SpriteName:       "sprite-jeans.png",
		ButtonHeight:     30,
		ButtonMarginLeft: 13,
		CheckboxWidth:    19,
		CheckboxHeight:   19,
		RadioWidth:       18,
		RadioHeight:      18,
		SelectHeight:     26,
		SelectMarginLeft: 10,
		UploadHeight:     28,
		Retina:           2,
	},
}

// LookupTheme returns the named preset.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("spritemaker: unknown theme %q (have %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames lists the presets in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
