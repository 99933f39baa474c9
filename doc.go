// Package spritemaker packs individually authored UI-state images (button,
// checkbox, radio, select and file-input variants in their normal, hover,
// active, checked and disabled states) into a single sprite sheet, and writes
// the coordinate metadata a stylesheet build consumes.
//
// # Quick start
//
// [Run] performs a whole build:
//
//	layout, err := spritemaker.Run(ctx, spritemaker.DefaultConfig(), spritemaker.RunOptions{
//		SourceDir:  "images",
//		SpritePath: "dist/sprite.png",
//		LessPath:   "dist/sprite.less",
//	})
//
// For control over each step, drive a [Maker] directly. Its methods must be
// called in order; calling one early returns a [*SequencingError]:
//
//	m := spritemaker.NewMaker(cfg)
//	err := m.LoadImages(ctx, "images")
//	consistent, err := m.Validate()
//	layout, err := m.CalculateLayout()
//	err = m.WriteSprite("dist/sprite.png")
//	err = m.WriteLess("dist/sprite.less", "sprite.png")
//
// # Source images
//
// Files are named <kind>_<state>.png, where kind is kebab-case
// ("button-left", "file-filename-middle") and state is optional
// ("active_hover"). Files whose kind is not in [Config.Kinds] are ignored.
// A kind ending in Left, Middle or Right is a cap or tile of a compound
// control: right caps are aligned to the right edge of the sheet and middle
// tiles are repeated across their whole row.
//
// # Validation
//
// Images of one kind must share a size, the row controls (button, select,
// file inputs) must share a height across their caps and tiles, and all
// middle tiles must share a width. [Maker.Validate] grows offending images to
// the group maximum and reports what it changed; it never fails the run.
//
// # Layout
//
// Images are placed in kind order, one row each, with a one pixel gap below
// every row. Consecutive images of the same kind without an alignment
// constraint share a row. The sheet width is the widest image rounded up to
// a multiple of the middle tile width.
//
// # Legacy sheets
//
// [Cutter] performs the inverse operation for themes that were authored as a
// single sheet: it slices the sheet into per-state files using a [Theme].
package spritemaker
