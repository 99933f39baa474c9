package spritemaker

// ImageGroup is a named, ordered set of images sharing a role such as
// "checkbox", "button" or "middle". Groups reference images; they do not own
// them, and one image belongs to several groups.
type ImageGroup struct {
	Name   string
	images []*SpriteImage
}

// NewImageGroup returns an empty group.
func NewImageGroup(name string) *ImageGroup {
	return &ImageGroup{Name: name}
}

// Add appends img. Insertion order is layout order.
func (g *ImageGroup) Add(img *SpriteImage) {
	g.images = append(g.images, img)
}

// Images returns the members in insertion order.
func (g *ImageGroup) Images() []*SpriteImage { return g.images }

// Len returns the number of members.
func (g *ImageGroup) Len() int { return len(g.images) }

// Dimensions summarizes a group's destination sizes.
//
// Width and Height are the maxima. The *Changes counters count how often,
// scanning in insertion order after the first image, a member's value differed
// from the running maximum. A non-zero counter means the group holds more than
// one size; it is not a histogram.
type Dimensions struct {
	Width, Height    int
	WidthChanges     int
	HeightChanges    int
	DimensionChanges int // members where width or height differed
}

// Dimensions scans the group in insertion order.
func (g *ImageGroup) Dimensions() Dimensions {
	var d Dimensions
	for i, img := range g.images {
		if i == 0 {
			d.Width, d.Height = img.Width, img.Height
			continue
		}
		changed := false
		if img.Height != d.Height {
			d.Height = max(d.Height, img.Height)
			d.HeightChanges++
			changed = true
		}
		if img.Width != d.Width {
			d.Width = max(d.Width, img.Width)
			d.WidthChanges++
			changed = true
		}
		if changed {
			d.DimensionChanges++
		}
	}
	return d
}

// SetWidth forces every member's destination width to w.
func (g *ImageGroup) SetWidth(w int) {
	for _, img := range g.images {
		img.Width = w
	}
}

// SetHeight forces every member's destination height to h.
func (g *ImageGroup) SetHeight(h int) {
	for _, img := range g.images {
		img.Height = h
	}
}
