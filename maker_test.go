package spritemaker

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"io"
	"io/fs"
	"strings"
	"testing"
	"time"
)

var fixedNow = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

func testConfig(fsys *memFS, log *recordLogger) Config {
	cfg := DefaultConfig()
	cfg.FS = fsys
	cfg.Logger = log
	cfg.Now = fixedNow
	return cfg
}

// buttonScenario is five black-ish button images of distinct shades.
func buttonScenario(t *testing.T) *memFS {
	fsys := newMemFS()
	fsys.files["src/button-right.png"] = pngBytes(t, 190, 30, gray(0))
	fsys.files["src/button-right_active.png"] = pngBytes(t, 190, 30, gray(1))
	fsys.files["src/button-right_hover.png"] = pngBytes(t, 190, 30, gray(2))
	fsys.files["src/button-right_disabled.png"] = pngBytes(t, 190, 30, gray(3))
	fsys.files["src/button-left.png"] = pngBytes(t, 13, 30, gray(4))
	fsys.files["src/notes.txt"] = []byte("not an image")
	fsys.files["src/widget-foo_bar.png"] = pngBytes(t, 5, 5, gray(5))
	return fsys
}

func TestMaker_EndToEnd(t *testing.T) {
	fsys := buttonScenario(t)
	log := &recordLogger{}
	m := NewMaker(testConfig(fsys, log))
	ctx := context.Background()

	if m.State() != StateIdle {
		t.Fatalf("State() = %s, want idle", m.State())
	}
	if err := m.LoadImages(ctx, "src"); err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	if m.State() != StateValidating {
		t.Errorf("State() = %s, want validating", m.State())
	}
	if got := m.Group(GroupAll).Len(); got != 5 {
		t.Errorf("all group has %d images, want 5", got)
	}
	if m.Group("widgetFoo") != nil {
		t.Error("unrecognized prefix must not create a group")
	}

	ok, err := m.Validate()
	if err != nil || !ok {
		t.Fatalf("Validate() = %v, %v, want true, nil", ok, err)
	}
	layout, err := m.CalculateLayout()
	if err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}
	if layout.Width != 190 {
		t.Errorf("layout width = %d, want 190", layout.Width)
	}
	wantTops := map[string]int{
		"buttonRight":          0,
		"buttonRight_active":   31,
		"buttonRight_disabled": 62,
		"buttonRight_hover":    93,
		"buttonLeft":           124,
	}
	for name, top := range wantTops {
		img, ok := layout.Find(name)
		if !ok {
			t.Errorf("%s missing from layout", name)
			continue
		}
		if img.Top != top || img.Left != 0 {
			t.Errorf("%s at (%d, %d), want (0, %d)", name, img.Left, img.Top, top)
		}
	}

	if err := m.WriteSprite("out/sprite.png"); err != nil {
		t.Fatalf("WriteSprite: %v", err)
	}
	if m.State() != StateRendered {
		t.Errorf("State() = %s, want rendered", m.State())
	}
	if err := m.WriteLess("out/sprite.less", "sprite.png"); err != nil {
		t.Fatalf("WriteLess: %v", err)
	}
	if m.State() != StateDone {
		t.Errorf("State() = %s, want done", m.State())
	}

	less := string(fsys.files["out/sprite.less"])
	for _, line := range []string{
		"generated 2026-10-17T12:00:00Z",
		"@background-image: url(sprite.png);",
		"@buttonRight_top: 0;",
		"@buttonRight_active_top: 31;",
		"@buttonRight_hover_top: 93;",
		"@buttonLeft_width: 13;",
		"@buttonLeft_top: 124;",
	} {
		if !strings.Contains(less, line) {
			t.Errorf("less output missing %q:\n%s", line, less)
		}
	}
	if strings.Contains(less, "widget") {
		t.Error("unrecognized image leaked into metadata")
	}

	sheet, err := (PNGCodec{}).Decode(bytes.NewReader(fsys.files["out/sprite.png"]))
	if err != nil {
		t.Fatalf("decode sprite: %v", err)
	}
	if sheet.Width() != 190 || sheet.Height() != 155 {
		t.Errorf("sprite = %dx%d, want 190x155", sheet.Width(), sheet.Height())
	}
	pixels := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, gray(0)},
		{189, 31, gray(1)},
		{5, 62, gray(3)}, // disabled sorts before hover
		{5, 93, gray(2)},
		{12, 124, gray(4)},
		{13, 124, transparent},
		{0, 30, transparent},
	}
	for _, p := range pixels {
		if got := sheet.Image().NRGBAAt(p.x, p.y); got != p.want {
			t.Errorf("sprite pixel (%d, %d) = %v, want %v", p.x, p.y, got, p.want)
		}
	}

	if len(log.infos) == 0 || !strings.Contains(strings.Join(log.infos, "\n"), "Loaded src/button-left.png (13x30)") {
		t.Errorf("info log = %v, want load messages", log.infos)
	}
}

func TestMaker_KindOrderBeatsFileOrder(t *testing.T) {
	fsys := newMemFS()
	fsys.files["src/button-left.png"] = pngBytes(t, 13, 30, gray(0))
	fsys.files["src/checkbox.png"] = pngBytes(t, 19, 19, gray(1))
	fsys.files["src/select-right.png"] = pngBytes(t, 190, 26, gray(2))
	m := NewMaker(testConfig(fsys, &recordLogger{}))
	if err := m.LoadImages(context.Background(), "src"); err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	var got []string
	for _, img := range m.Group(GroupAll).Images() {
		got = append(got, img.GroupName)
	}
	want := "selectRight checkbox buttonLeft"
	if strings.Join(got, " ") != want {
		t.Errorf("order = %v, want %s", got, want)
	}
}

func TestMaker_ValidateCorrects(t *testing.T) {
	fsys := newMemFS()
	fsys.files["src/checkbox.png"] = pngBytes(t, 19, 19, gray(0))
	fsys.files["src/checkbox_hover.png"] = pngBytes(t, 21, 19, gray(1))
	log := &recordLogger{}
	m := NewMaker(testConfig(fsys, log))
	if err := m.LoadImages(context.Background(), "src"); err != nil {
		t.Fatalf("LoadImages: %v", err)
	}

	ok, err := m.Validate()
	if err != nil || ok {
		t.Fatalf("Validate() = %v, %v, want false, nil", ok, err)
	}
	if len(m.Corrections()) == 0 || !log.warned("checkbox") {
		t.Errorf("corrections = %v, warnings = %v", m.Corrections(), log.warns)
	}
	ok, err = m.Validate()
	if err != nil || !ok {
		t.Errorf("second Validate() = %v, %v, want true, nil", ok, err)
	}
	layout, err := m.CalculateLayout()
	if err != nil {
		t.Fatalf("CalculateLayout after corrections: %v", err)
	}
	for _, img := range layout.Images {
		if img.Width != 21 {
			t.Errorf("%s width = %d, want 21", img.Name(), img.Width)
		}
	}
}

func TestMaker_Sequencing(t *testing.T) {
	fsys := buttonScenario(t)
	m := NewMaker(testConfig(fsys, &recordLogger{}))

	var seq *SequencingError
	if _, err := m.Validate(); !errors.As(err, &seq) || seq.Op != "Validate" {
		t.Errorf("Validate before load = %v, want SequencingError", err)
	}
	if _, err := m.CalculateLayout(); !errors.As(err, &seq) || seq.Need != "Validate" {
		t.Errorf("CalculateLayout before load = %v, want SequencingError", err)
	}

	if err := m.LoadImages(context.Background(), "src"); err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	if err := m.LoadImages(context.Background(), "src"); !errors.As(err, &seq) {
		t.Errorf("second LoadImages = %v, want SequencingError", err)
	}
	if _, err := m.CalculateLayout(); !errors.As(err, &seq) || seq.Need != "Validate" {
		t.Errorf("CalculateLayout before Validate = %v, want SequencingError", err)
	}
	if _, err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	err := m.WriteSprite("out/sprite.png")
	if !errors.As(err, &seq) || seq.Op != "WriteSprite" || seq.Need != "CalculateLayout" {
		t.Errorf("WriteSprite before layout = %v, want SequencingError", err)
	}
	if fsys.has("out/sprite.png") {
		t.Error("WriteSprite before layout produced a file")
	}
	if err := m.WriteLess("out/sprite.less", "sprite.png"); !errors.As(err, &seq) {
		t.Errorf("WriteLess before layout = %v, want SequencingError", err)
	}
	if err := m.WriteAtlas("out/sprite.json", "sprite.png"); !errors.As(err, &seq) {
		t.Errorf("WriteAtlas before layout = %v, want SequencingError", err)
	}
	if m.State() == StateFailed {
		t.Error("sequencing errors must not fail the Maker")
	}
	if !strings.Contains(err.Error(), "CalculateLayout must succeed first") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestMaker_ScanError(t *testing.T) {
	fsys := newMemFS()
	fsys.failDir = errBoom
	m := NewMaker(testConfig(fsys, &recordLogger{}))

	err := m.LoadImages(context.Background(), "src")
	var se *ScanError
	if !errors.As(err, &se) || se.Dir != "src" || !errors.Is(err, errBoom) {
		t.Fatalf("LoadImages = %v, want ScanError wrapping boom", err)
	}
	if m.State() != StateFailed || m.Err() != err {
		t.Errorf("State() = %s, Err() = %v", m.State(), m.Err())
	}
	var seq *SequencingError
	if _, err := m.Validate(); !errors.As(err, &seq) {
		t.Errorf("Validate after failure = %v, want SequencingError", err)
	}
}

func TestMaker_NoImages(t *testing.T) {
	fsys := newMemFS()
	fsys.files["src/readme.md"] = []byte("#")
	fsys.files["src/widget.png"] = pngBytes(t, 1, 1, gray(0))
	m := NewMaker(testConfig(fsys, &recordLogger{}))

	err := m.LoadImages(context.Background(), "src")
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("LoadImages = %v, want ErrNoImages", err)
	}
	var de *DecodeError
	if errors.As(err, &de) {
		t.Error("empty input must be distinct from a decode failure")
	}
}

func TestMaker_DecodeErrorAbortsRun(t *testing.T) {
	fsys := buttonScenario(t)
	fsys.files["src/button-right_hover.png"] = []byte("corrupt")

	_, err := Run(context.Background(), testConfig(fsys, &recordLogger{}), RunOptions{
		SourceDir:  "src",
		SpritePath: "out/sprite.png",
		LessPath:   "out/sprite.less",
	})
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != "src/button-right_hover.png" {
		t.Fatalf("Run = %v, want DecodeError for the corrupt file", err)
	}
	if fsys.has("out/sprite.png") || fsys.has("out/sprite.less") {
		t.Error("a failed load must not produce output files")
	}
}

func TestMaker_ReadError(t *testing.T) {
	fsys := buttonScenario(t)
	fsys.failRead["src/button-left.png"] = errBoom
	m := NewMaker(testConfig(fsys, &recordLogger{}))

	err := m.LoadImages(context.Background(), "src")
	var de *DecodeError
	if !errors.As(err, &de) || de.Op != "read" || !errors.Is(err, errBoom) {
		t.Fatalf("LoadImages = %v, want read DecodeError", err)
	}
}

func TestMaker_WriteError(t *testing.T) {
	fsys := buttonScenario(t)
	fsys.failPut["out/sprite.png"] = errBoom
	m := NewMaker(testConfig(fsys, &recordLogger{}))
	ctx := context.Background()
	if err := m.LoadImages(ctx, "src"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CalculateLayout(); err != nil {
		t.Fatal(err)
	}

	err := m.WriteSprite("out/sprite.png")
	var we *WriteError
	if !errors.As(err, &we) || we.Path != "out/sprite.png" || !errors.Is(err, errBoom) {
		t.Fatalf("WriteSprite = %v, want WriteError", err)
	}
	if !strings.Contains(err.Error(), "out/sprite.png") {
		t.Errorf("message %q should name the destination", err.Error())
	}
	if m.State() != StateFailed {
		t.Errorf("State() = %s, want failed", m.State())
	}
}

func TestMaker_EncodeError(t *testing.T) {
	fsys := buttonScenario(t)
	cfg := testConfig(fsys, &recordLogger{})
	cfg.Codec = failingEncoder{PNGCodec{}}
	m := NewMaker(cfg)
	ctx := context.Background()
	if err := m.LoadImages(ctx, "src"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CalculateLayout(); err != nil {
		t.Fatal(err)
	}
	err := m.WriteSprite("out/sprite.png")
	var ee *EncodeError
	if !errors.As(err, &ee) || ee.Path != "out/sprite.png" {
		t.Fatalf("WriteSprite = %v, want EncodeError", err)
	}
	if fsys.has("out/sprite.png") {
		t.Error("failed encode wrote a file")
	}
}

type failingEncoder struct{ PNGCodec }

func (failingEncoder) Encode(io.Writer, *Raster) error { return errBoom }

func TestMaker_ConcurrencyLimit(t *testing.T) {
	fsys := buttonScenario(t)
	cfg := testConfig(fsys, &recordLogger{})
	cfg.LoadConcurrency = 1
	m := NewMaker(cfg)
	if err := m.LoadImages(context.Background(), "src"); err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	for _, img := range m.Group(GroupAll).Images() {
		if img.Raster() == nil {
			t.Errorf("%s not loaded", img.Path)
		}
	}
}

func TestMaker_ConfigIsCopied(t *testing.T) {
	fsys := buttonScenario(t)
	cfg := testConfig(fsys, &recordLogger{})
	m := NewMaker(cfg)
	cfg.Kinds[len(cfg.Kinds)-1] = NewKind("nothing", PositionNone, false) // was buttonLeft

	if err := m.LoadImages(context.Background(), "src"); err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	if m.Group("buttonLeft") == nil {
		t.Error("changing the caller's kinds after NewMaker affected the Maker")
	}
}

func TestRun(t *testing.T) {
	fsys := buttonScenario(t)
	layout, err := Run(context.Background(), testConfig(fsys, &recordLogger{}), RunOptions{
		SourceDir:  "src",
		SpritePath: "out/theme-sprite.png",
		LessPath:   "out/theme.less",
		AtlasPath:  "out/theme.json",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(layout.Images) != 5 {
		t.Errorf("layout has %d images, want 5", len(layout.Images))
	}
	for _, p := range []string{"out/theme-sprite.png", "out/theme.less", "out/theme.json"} {
		if !fsys.has(p) {
			t.Errorf("%s not written", p)
		}
	}
	if less := string(fsys.files["out/theme.less"]); !strings.Contains(less, "url(theme-sprite.png)") {
		t.Errorf("default image URL not used:\n%s", less)
	}
	atlas, err := LoadAtlas(fsys.files["out/theme.json"])
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if r, ok := atlas.Region("buttonLeft"); !ok || r.Y != 124 {
		t.Errorf("atlas buttonLeft = %+v, %v", r, ok)
	}
}

func TestRun_FailedWriteRemovesEarlierOutputs(t *testing.T) {
	fsys := buttonScenario(t)
	fsys.failPut["out/sprite.json"] = errBoom
	_, err := Run(context.Background(), testConfig(fsys, &recordLogger{}), RunOptions{
		SourceDir:  "src",
		SpritePath: "out/sprite.png",
		LessPath:   "out/sprite.less",
		AtlasPath:  "out/sprite.json",
	})
	var we *WriteError
	if !errors.As(err, &we) || we.Path != "out/sprite.json" {
		t.Fatalf("Run = %v, want WriteError for the atlas", err)
	}
	for _, p := range []string{"out/sprite.png", "out/sprite.less"} {
		if fsys.has(p) {
			t.Errorf("%s left behind by a failed run", p)
		}
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	_, err := Run(context.Background(), testConfig(newMemFS(), &recordLogger{}), RunOptions{SourceDir: "nowhere"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Run = %v, want ErrNotExist", err)
	}
}

func TestStateString(t *testing.T) {
	if StateLayoutComputed.String() != "layout-computed" || State(99).String() != "State(99)" {
		t.Error("unexpected State strings")
	}
}
