package spritemaker

// Dimension names a measured side of an image.
type Dimension string

const (
	DimensionWidth  Dimension = "width"
	DimensionHeight Dimension = "height"
)

// Correction records one normalization applied by validation: every image
// in Group had Dimension forced to Size.
type Correction struct {
	Group     string
	Dimension Dimension
	Size      int
}

// normalizeGroups makes sizes consistent where the renderer relies on it and
// returns what it changed. Groups always grow to their maximum, never shrink.
//
//   - every kind group: all states of one kind share width and height
//   - every shared-height family: caps, tiles and states share one height
//   - the middle group: all repeating tiles share one width
func normalizeGroups(groups map[string]*ImageGroup, kinds Kinds, logger Logger) []Correction {
	var out []Correction

	for _, k := range kinds {
		g := groups[k.Name]
		if g == nil {
			continue
		}
		d := g.Dimensions()
		if d.DimensionChanges == 0 {
			continue
		}
		logger.Warnf("%s has inconsistent image dimensions; using %dx%d", g.Name, d.Width, d.Height)
		g.SetHeight(d.Height)
		g.SetWidth(d.Width)
		out = append(out,
			Correction{Group: g.Name, Dimension: DimensionHeight, Size: d.Height},
			Correction{Group: g.Name, Dimension: DimensionWidth, Size: d.Width})
	}

	for _, family := range kinds.SharedHeightFamilies() {
		if c, ok := sameForFamily(groups[family], DimensionHeight, logger); ok {
			out = append(out, c)
		}
	}
	if c, ok := sameForFamily(groups[GroupMiddle], DimensionWidth, logger); ok {
		out = append(out, c)
	}
	return out
}

func sameForFamily(g *ImageGroup, dim Dimension, logger Logger) (Correction, bool) {
	if g == nil {
		return Correction{}, false
	}
	d := g.Dimensions()
	switch dim {
	case DimensionHeight:
		if d.HeightChanges == 0 {
			return Correction{}, false
		}
		g.SetHeight(d.Height)
		logger.Warnf("all images in %s should have the same height; using %d", g.Name, d.Height)
		return Correction{Group: g.Name, Dimension: dim, Size: d.Height}, true
	default:
		if d.WidthChanges == 0 {
			return Correction{}, false
		}
		g.SetWidth(d.Width)
		logger.Warnf("all images in %s should have the same width; using %d", g.Name, d.Width)
		return Correction{Group: g.Name, Dimension: dim, Size: d.Width}, true
	}
}
