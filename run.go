package spritemaker

import (
	"context"
	"path/filepath"
)

// RunOptions names the inputs and outputs of a complete run.
type RunOptions struct {
	SourceDir  string
	SpritePath string
	LessPath   string
	// AtlasPath, when set, also writes TexturePacker JSON.
	AtlasPath string
	// ImageURL is how the stylesheet references the sheet. Defaults to the
	// base name of SpritePath.
	ImageURL string
}

// Run performs LoadImages, Validate, CalculateLayout and the writes in their
// fixed order, stopping at the first failure. When a write fails, outputs
// already written by this run are removed again, so a failed run leaves no
// output files.
func Run(ctx context.Context, cfg Config, opts RunOptions) (*Layout, error) {
	m := NewMaker(cfg)
	if err := m.LoadImages(ctx, opts.SourceDir); err != nil {
		return nil, err
	}
	if _, err := m.Validate(); err != nil {
		return nil, err
	}
	layout, err := m.CalculateLayout()
	if err != nil {
		return nil, err
	}

	url := opts.ImageURL
	if url == "" {
		url = filepath.Base(opts.SpritePath)
	}
	var written []string
	undo := func(err error) error {
		for _, p := range written {
			if rerr := m.cfg.FS.Remove(p); rerr != nil {
				m.cfg.Logger.Warnf("could not remove %s: %v", p, rerr)
			}
		}
		return err
	}

	if err := m.WriteSprite(opts.SpritePath); err != nil {
		return nil, err
	}
	written = append(written, opts.SpritePath)
	if err := m.WriteLess(opts.LessPath, url); err != nil {
		return nil, undo(err)
	}
	written = append(written, opts.LessPath)
	if opts.AtlasPath != "" {
		if err := m.WriteAtlas(opts.AtlasPath, url); err != nil {
			return nil, undo(err)
		}
	}
	return layout, nil
}
