package spritemaker

// rowGap is the empty line left under every row and the empty column left
// after every packed image, so browser filtering never samples a neighbor.
const rowGap = 1

// Rect is an axis-aligned pixel rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height int
}

// Overlaps reports whether r and other share at least one pixel. Rectangles
// that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// Rect returns the image's destination rectangle.
func (img *SpriteImage) Rect() Rect {
	return Rect{X: img.Left, Y: img.Top, Width: img.Width, Height: img.Height}
}

// Layout is a computed sheet: its size and every image with Left and Top set.
type Layout struct {
	Width  int
	Height int
	Images []*SpriteImage
}

// Find returns the placed image with the given metadata name.
func (l *Layout) Find(name string) (*SpriteImage, bool) {
	for _, img := range l.Images {
		if img.Name() == name {
			return img, true
		}
	}
	return nil, false
}

// Overlapping returns every pair of images whose destination rectangles
// share pixels. A correct layout returns nothing.
func (l *Layout) Overlapping() [][2]*SpriteImage {
	var out [][2]*SpriteImage
	for i, a := range l.Images {
		for _, b := range l.Images[i+1:] {
			if a.Rect().Overlaps(b.Rect()) {
				out = append(out, [2]*SpriteImage{a, b})
			}
		}
	}
	return out
}

// canvasWidth is the widest image, rounded up to a whole number of middle
// tiles so a repeated tile never ends partway through a row.
func canvasWidth(all, middle *ImageGroup) int {
	width := all.Dimensions().Width
	if middle == nil || middle.Len() == 0 {
		return width
	}
	if tile := middle.Dimensions().Width; tile > 0 {
		width = (width + tile - 1) / tile * tile
	}
	return width
}

// computeLayout places every image of all in insertion order. It is a greedy
// single pass, not a bin packer: an image shares the previous image's row
// only when both belong to the same group, the image has no alignment or
// repeat constraint, and it still fits. Everything else opens a new row.
func computeLayout(all, middle *ImageGroup) *Layout {
	l := &Layout{Width: canvasWidth(all, middle)}

	var (
		lastGroup string
		lastRight int
		lastTop   int
	)
	for i, img := range all.Images() {
		free := !img.Flags.LeftAligned && !img.Flags.RightAligned && !img.Flags.Repeating
		if i > 0 && free && img.GroupName == lastGroup && lastRight+img.Width <= l.Width {
			img.Left = lastRight
			img.Top = lastTop
		} else {
			img.Top = l.Height
			l.Height += img.Height + rowGap
			if img.Flags.RightAligned {
				img.Left = l.Width - img.Width
			} else {
				img.Left = 0
			}
		}
		img.placed = true

		lastRight = img.Left + img.Width + rowGap
		lastTop = img.Top
		lastGroup = img.GroupName
		l.Images = append(l.Images, img)
	}
	return l
}
