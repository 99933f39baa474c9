package spritemaker

import (
	"image"

	"golang.org/x/image/draw"
)

// Raster is a decoded bitmap: row-major, 4 bytes per pixel (non-premultiplied
// RGBA), top to bottom. Width and height are fixed at creation; pixels change
// only through Blit.
type Raster struct {
	img *image.NRGBA
}

// NewRaster allocates a fully transparent w×h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// NewRasterFromImage copies src into a new raster whose origin is (0, 0),
// converting whatever color model the decoder produced.
func NewRasterFromImage(src image.Image) *Raster {
	b := src.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	draw.Draw(r.img, r.img.Bounds(), src, b.Min, draw.Src)
	return r
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// Pix returns the underlying pixel buffer. Callers must not write to it.
func (r *Raster) Pix() []byte { return r.img.Pix }

// Image exposes the raster as an *image.NRGBA for encoders and tests.
func (r *Raster) Image() *image.NRGBA { return r.img }

// Blit copies the w×h region of src at (sx, sy) into r at (dx, dy). Parts of
// the region outside src are not copied (they would be transparent anyway),
// and neither are parts landing outside r. A fully clipped blit is a no-op.
func (r *Raster) Blit(src *Raster, sx, sy, w, h, dx, dy int) {
	if sx < 0 {
		dx -= sx
		w += sx
		sx = 0
	}
	if sy < 0 {
		dy -= sy
		h += sy
		sy = 0
	}
	if dx < 0 {
		sx -= dx
		w += dx
		dx = 0
	}
	if dy < 0 {
		sy -= dy
		h += dy
		dy = 0
	}
	w = min(w, src.Width()-sx, r.Width()-dx)
	h = min(h, src.Height()-sy, r.Height()-dy)
	if w <= 0 || h <= 0 {
		return
	}
	draw.Draw(r.img, image.Rect(dx, dy, dx+w, dy+h), src.img, image.Pt(sx, sy), draw.Src)
}
