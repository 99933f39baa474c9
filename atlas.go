package spritemaker

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Region describes where one named image lives inside a sheet.
type Region struct {
	X, Y          int // top-left corner of the image within the sheet
	Width, Height int // destination size, possibly normalized by validation
	SourceWidth   int // size of the source file as authored
	SourceHeight  int
}

// Atlas is the named-region index of one packed sheet.
type Atlas struct {
	Image         string
	Width, Height int
	regions       map[string]Region
}

// Region returns the region for name.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Names returns every region name in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- JSON structure types (TexturePacker hash/array formats) ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonMeta struct {
	App   string   `json:"app,omitempty"`
	Image string   `json:"image"`
	Size  jsonSize `json:"size"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Size   jsonSize             `json:"size"`
	Frames map[string]jsonFrame `json:"frames"`
}

type jsonHashAtlas struct {
	Frames map[string]jsonFrame `json:"frames"`
	Meta   jsonMeta             `json:"meta"`
}

// encodeAtlas renders a layout as TexturePacker hash-format JSON, which game
// engines and atlas viewers load directly.
func encodeAtlas(l *Layout, imagePath string) ([]byte, error) {
	doc := jsonHashAtlas{
		Frames: make(map[string]jsonFrame, len(l.Images)),
		Meta: jsonMeta{
			App:   "spritemaker",
			Image: imagePath,
			Size:  jsonSize{W: l.Width, H: l.Height},
		},
	}
	for _, img := range l.Images {
		f := jsonFrame{
			Frame:            jsonRect{X: img.Left, Y: img.Top, W: img.Width, H: img.Height},
			SpriteSourceSize: jsonRect{W: img.Width, H: img.Height},
			SourceSize:       jsonSize{W: img.Width, H: img.Height},
		}
		if r := img.Raster(); r != nil {
			f.SourceSize = jsonSize{W: r.Width(), H: r.Height()}
		}
		doc.Frames[img.Name()] = f
	}
	return json.MarshalIndent(doc, "", "  ")
}

// LoadAtlas parses TexturePacker JSON. Supports both the hash format (single
// "frames" object) and the array format ("textures" list); only the first
// page of the array format is used.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     jsonMeta        `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("spritemaker: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{regions: make(map[string]Region)}

	switch {
	case probe.Textures != nil:
		var pages []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &pages); err != nil {
			return nil, fmt.Errorf("spritemaker: failed to parse atlas textures array: %w", err)
		}
		if len(pages) == 0 {
			return nil, fmt.Errorf("spritemaker: atlas textures array is empty")
		}
		atlas.Image = pages[0].Image
		atlas.Width, atlas.Height = pages[0].Size.W, pages[0].Size.H
		for name, f := range pages[0].Frames {
			atlas.regions[name] = frameToRegion(f)
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("spritemaker: failed to parse atlas frames: %w", err)
		}
		atlas.Image = probe.Meta.Image
		atlas.Width, atlas.Height = probe.Meta.Size.W, probe.Meta.Size.H
		for name, f := range frames {
			atlas.regions[name] = frameToRegion(f)
		}
	default:
		return nil, fmt.Errorf("spritemaker: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

func frameToRegion(f jsonFrame) Region {
	return Region{
		X:            f.Frame.X,
		Y:            f.Frame.Y,
		Width:        f.Frame.W,
		Height:       f.Frame.H,
		SourceWidth:  f.SourceSize.W,
		SourceHeight: f.SourceSize.H,
	}
}
