package spritemaker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Cut is one rectangle to slice out of a legacy sheet. Name follows the
// source naming convention without extension, e.g. "button-left_hover".
type Cut struct {
	Name                string
	X, Y, Width, Height int
}

var (
	capStates    = []string{"", "active", "hover", "active_hover", "disabled"}
	buttonStates = []string{"", "active", "hover", "disabled"}
	toggleStates = []string{
		"", "active", "hover", "active_hover",
		"checked", "active_checked", "checked_hover", "active_checked_hover",
		"disabled", "checked_disabled",
	}
	filenameStates = []string{"", "hover", "disabled"}
)

// CutPlan lists the rectangles of a legacy theme sheet in sheet order. Caps
// with state variants are stacked one per row; checkbox and radio states sit
// side by side in a single row. Full-width rows span sheetWidth.
func CutPlan(t Theme, sheetWidth int) []Cut {
	var (
		cuts   []Cut
		offset int
	)
	column := func(prefix string, states []string, w, h int) {
		for _, s := range states {
			cuts = append(cuts, Cut{Name: stateName(prefix, s), X: 0, Y: offset, Width: w, Height: h})
			offset += h
		}
	}
	row := func(prefix string, states []string, w, h int) {
		for i, s := range states {
			cuts = append(cuts, Cut{Name: stateName(prefix, s), X: i * w, Y: offset, Width: w, Height: h})
		}
		offset += h
	}

	column("select-right", capStates, sheetWidth, t.SelectHeight)
	column("select-left", capStates, t.SelectMarginLeft, t.SelectHeight)
	row("checkbox", toggleStates, t.CheckboxWidth, t.CheckboxHeight)
	row("radio", toggleStates, t.RadioWidth, t.RadioHeight)
	column("file-filename-left", filenameStates, sheetWidth, t.UploadHeight)
	column("file-button-right", capStates, sheetWidth, t.UploadHeight)
	column("button-right", buttonStates, sheetWidth, t.ButtonHeight)
	column("button-left", buttonStates, t.ButtonMarginLeft, t.ButtonHeight)
	return cuts
}

func stateName(prefix, state string) string {
	if state == "" {
		return prefix
	}
	return prefix + "_" + state
}

// RetinaPath returns the conventional location of a sheet's high-resolution
// companion ("sprite" becomes "sprite-retina" in the file name), or "" when
// the name does not contain "sprite".
func RetinaPath(sheetPath string) string {
	dir, base := filepath.Split(sheetPath)
	if !strings.Contains(base, "sprite") {
		return ""
	}
	return dir + strings.Replace(base, "sprite", "sprite-retina", 1)
}

// Cutter slices a legacy theme sheet into per-state source images.
type Cutter struct {
	theme Theme
	cfg   Config
}

// NewCutter returns a cutter for theme using cfg's storage, codec and logger.
func NewCutter(theme Theme, cfg Config) *Cutter {
	return &Cutter{theme: theme, cfg: cfg.withDefaults()}
}

// Cut slices sheetPath into outDir and returns the written paths in plan
// order. When a retina companion exists, each image is also written as
// <name>_retina.png cut at scaled coordinates.
func (c *Cutter) Cut(ctx context.Context, sheetPath, outDir string) ([]string, error) {
	normal, err := c.load(sheetPath)
	if err != nil {
		return nil, err
	}
	c.cfg.Logger.Infof("Normal image size: %d x %d", normal.Width(), normal.Height())

	retina, scale, err := c.loadRetina(sheetPath, normal)
	if err != nil {
		return nil, err
	}

	plan := CutPlan(c.theme, normal.Width())
	var outputs []string
	for _, cut := range plan {
		outputs = append(outputs, filepath.Join(outDir, cut.Name+c.cfg.Extension))
		if retina != nil {
			outputs = append(outputs, filepath.Join(outDir, cut.Name+"_retina"+c.cfg.Extension))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if c.cfg.LoadConcurrency > 0 {
		g.SetLimit(c.cfg.LoadConcurrency)
	}
	i := 0
	for _, cut := range plan {
		normalDest := outputs[i]
		i++
		g.Go(func() error {
			return c.writeOne(gctx, normal, normalDest, cut.X, cut.Y, cut.Width, cut.Height)
		})
		if retina == nil {
			continue
		}
		retinaDest := outputs[i]
		i++
		g.Go(func() error {
			return c.writeOne(gctx, retina, retinaDest, cut.X*scale, cut.Y*scale, cut.Width*scale, cut.Height*scale)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (c *Cutter) load(path string) (*Raster, error) {
	data, err := c.cfg.FS.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Op: "read", Err: err}
	}
	return decodeRaster(c.cfg.Codec, data, path)
}

func (c *Cutter) loadRetina(sheetPath string, normal *Raster) (*Raster, int, error) {
	path := RetinaPath(sheetPath)
	if path == "" {
		return c.noRetina(sheetPath)
	}
	data, err := c.cfg.FS.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.cfg.Logger.Infof("No retina image found: %s", path)
		return c.noRetina(path)
	}
	if err != nil {
		return nil, 0, &DecodeError{Path: path, Op: "read", Err: err}
	}
	retina, err := decodeRaster(c.cfg.Codec, data, path)
	if err != nil {
		return nil, 0, err
	}
	if retina.Width()%normal.Width() != 0 {
		return nil, 0, fmt.Errorf("spritemaker: retina sheet %s is %d wide, not a multiple of %d", path, retina.Width(), normal.Width())
	}
	scale := retina.Width() / normal.Width()
	if c.theme.Retina > 0 && scale != c.theme.Retina {
		return nil, 0, fmt.Errorf("spritemaker: retina sheet %s has scale %d, theme %s expects %d", path, scale, c.theme.Name, c.theme.Retina)
	}
	c.cfg.Logger.Infof("Retina scale factor: %d", scale)
	return retina, scale, nil
}

func (c *Cutter) noRetina(path string) (*Raster, int, error) {
	if c.theme.Retina > 0 {
		return nil, 0, fmt.Errorf("spritemaker: theme %s needs a retina sheet at %s: %w", c.theme.Name, path, fs.ErrNotExist)
	}
	return nil, 0, nil
}

// writeOne copies one rectangle into a new image of the requested size. The
// parts of the rectangle beyond the sheet stay transparent.
func (c *Cutter) writeOne(ctx context.Context, src *Raster, dest string, x, y, w, h int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := NewRaster(w, h)
	out.Blit(src, x, y, w, h, 0, 0)
	data, err := encodeRaster(c.cfg.Codec, out, dest)
	if err != nil {
		return err
	}
	if err := c.cfg.FS.WriteFile(dest, data); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	c.cfg.Logger.Infof("Wrote %s", dest)
	return nil
}
