package spritemaker

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// State is the progress of a Maker through one run.
type State uint8

const (
	StateIdle           State = iota // nothing loaded yet
	StateLoading                     // directory scanned, images loading
	StateValidating                  // images loaded, awaiting or after Validate
	StateLayoutComputed              // Left/Top assigned
	StateRendered                    // at least one output written
	StateDone                        // sprite and metadata both written
	StateFailed                      // a step failed; the Maker is unusable
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateValidating:
		return "validating"
	case StateLayoutComputed:
		return "layout-computed"
	case StateRendered:
		return "rendered"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Maker turns a directory of per-state images into a sprite sheet and its
// metadata. Calls must follow the order LoadImages, Validate,
// CalculateLayout, then any of WriteSprite, WriteLess and WriteAtlas.
// A Maker is used for one run and is not safe for concurrent use.
type Maker struct {
	cfg   Config
	state State
	err   error

	groups      map[string]*ImageGroup
	validated   bool
	corrections []Correction
	layout      *Layout

	spriteWritten bool
	lessWritten   bool
}

// NewMaker returns an idle Maker using a private copy of cfg.
func NewMaker(cfg Config) *Maker {
	return &Maker{
		cfg:    cfg.withDefaults(),
		groups: make(map[string]*ImageGroup),
	}
}

// State returns the current step.
func (m *Maker) State() State { return m.state }

// Err returns the error that moved the Maker to StateFailed.
func (m *Maker) Err() error { return m.err }

// Group returns the named group, or nil if no image joined it.
func (m *Maker) Group(name string) *ImageGroup { return m.groups[name] }

// Corrections returns the normalizations applied by the last Validate.
func (m *Maker) Corrections() []Correction { return m.corrections }

// Layout returns the computed layout, or nil before CalculateLayout.
func (m *Maker) Layout() *Layout { return m.layout }

func (m *Maker) fail(err error) error {
	m.state = StateFailed
	m.err = err
	return err
}

func (m *Maker) sequencing(op, need string) error {
	return &SequencingError{Op: op, Need: need, State: m.state}
}

// LoadImages scans dir, keeps the files whose names match a known kind and
// decodes them in parallel. Any failed load aborts the run.
func (m *Maker) LoadImages(ctx context.Context, dir string) error {
	if m.state != StateIdle {
		return m.sequencing("LoadImages", "NewMaker")
	}
	m.state = StateLoading

	names, err := m.cfg.FS.ReadDir(dir)
	if err != nil {
		return m.fail(&ScanError{Dir: dir, Err: err})
	}
	sort.Strings(names)

	var images []*SpriteImage
	for _, name := range names {
		if img, ok := ParseSpriteImage(filepath.Join(dir, name), m.cfg.Kinds, m.cfg.Extension); ok {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		return m.fail(fmt.Errorf("%w in %s", ErrNoImages, dir))
	}
	// Sheet order is kind order; files of one kind stay in name order.
	sort.SliceStable(images, func(i, j int) bool { return images[i].rank < images[j].rank })
	for _, img := range images {
		m.addToGroups(img)
	}

	g, gctx := errgroup.WithContext(ctx)
	if m.cfg.LoadConcurrency > 0 {
		g.SetLimit(m.cfg.LoadConcurrency)
	}
	for _, img := range images {
		g.Go(func() error {
			if err := img.Load(gctx, m.cfg.FS, m.cfg.Codec); err != nil {
				return err
			}
			m.cfg.Logger.Infof("Loaded %s (%dx%d)", img.Path, img.Width, img.Height)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return m.fail(err)
	}

	m.state = StateValidating
	return nil
}

func (m *Maker) addToGroups(img *SpriteImage) {
	for _, name := range img.Groups {
		g := m.groups[name]
		if g == nil {
			g = NewImageGroup(name)
			m.groups[name] = g
		}
		g.Add(img)
	}
}

// Validate normalizes inconsistent sizes (see Correction) and reports
// whether the images were already consistent. Both outcomes allow the run to
// continue. Validating again after a layout that changes nothing keeps the
// layout; a validation that corrects something discards it.
func (m *Maker) Validate() (bool, error) {
	if m.state < StateValidating || m.state == StateFailed {
		return false, m.sequencing("Validate", "LoadImages")
	}
	if m.groups[GroupAll] == nil {
		return false, m.fail(ErrNoImages)
	}

	m.corrections = normalizeGroups(m.groups, m.cfg.Kinds, m.cfg.Logger)
	m.validated = true
	if len(m.corrections) > 0 && m.layout != nil {
		m.layout = nil
		m.spriteWritten, m.lessWritten = false, false
		m.state = StateValidating
	}
	return len(m.corrections) == 0, nil
}

// CalculateLayout assigns every image its position on the sheet.
func (m *Maker) CalculateLayout() (*Layout, error) {
	if m.state == StateFailed || !m.validated {
		return nil, m.sequencing("CalculateLayout", "Validate")
	}
	m.layout = computeLayout(m.groups[GroupAll], m.groups[GroupMiddle])
	for _, pair := range m.layout.Overlapping() {
		m.cfg.Logger.Warnf("%s overlaps %s", pair[0].Name(), pair[1].Name())
	}
	m.spriteWritten, m.lessWritten = false, false
	m.state = StateLayoutComputed
	return m.layout, nil
}

func (m *Maker) mustHaveLayout(op string) error {
	if m.state == StateFailed || !m.validated {
		return m.sequencing(op, "Validate")
	}
	if m.layout == nil {
		return m.sequencing(op, "CalculateLayout")
	}
	return nil
}

// WriteSprite renders the sheet and writes it to dest.
func (m *Maker) WriteSprite(dest string) error {
	if err := m.mustHaveLayout("WriteSprite"); err != nil {
		return err
	}
	sheet, err := RenderSheet(m.layout)
	if err != nil {
		return m.fail(&EncodeError{Path: dest, Err: err})
	}
	data, err := encodeRaster(m.cfg.Codec, sheet, dest)
	if err != nil {
		return m.fail(err)
	}
	if err := m.write(dest, data); err != nil {
		return err
	}
	m.spriteWritten = true
	m.advance()
	return nil
}

// WriteLess writes the coordinate metadata to dest. imagePath is the sheet
// location as the stylesheet should reference it.
func (m *Maker) WriteLess(dest, imagePath string) error {
	if err := m.mustHaveLayout("WriteLess"); err != nil {
		return err
	}
	text := RenderMetadata(m.layout, imagePath, m.cfg.metadataTemplate(), m.cfg.Now())
	if err := m.write(dest, []byte(text)); err != nil {
		return err
	}
	m.lessWritten = true
	m.advance()
	return nil
}

// WriteAtlas writes the layout as TexturePacker hash-format JSON.
func (m *Maker) WriteAtlas(dest, imagePath string) error {
	if err := m.mustHaveLayout("WriteAtlas"); err != nil {
		return err
	}
	data, err := encodeAtlas(m.layout, imagePath)
	if err != nil {
		return m.fail(&EncodeError{Path: dest, Err: err})
	}
	if err := m.write(dest, data); err != nil {
		return err
	}
	m.advance()
	return nil
}

func (m *Maker) write(dest string, data []byte) error {
	if err := m.cfg.FS.WriteFile(dest, data); err != nil {
		return m.fail(&WriteError{Path: dest, Err: err})
	}
	m.cfg.Logger.Infof("Wrote %s", dest)
	return nil
}

func (m *Maker) advance() {
	if m.spriteWritten && m.lessWritten {
		m.state = StateDone
	} else {
		m.state = StateRendered
	}
}
