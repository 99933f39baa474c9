package spritemaker

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
)

// memFS is an in-memory FileSystem. Directory listing returns the base names
// of every file whose parent is dir.
type memFS struct {
	mu       sync.Mutex
	files    map[string][]byte
	failDir  error
	failRead map[string]error
	failPut  map[string]error
}

func newMemFS() *memFS {
	return &memFS{
		files:    make(map[string][]byte),
		failRead: make(map[string]error),
		failPut:  make(map[string]error),
	}
}

func (m *memFS) ReadDir(dir string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDir != nil {
		return nil, m.failDir
	}
	var names []string
	for p := range m.files {
		if path.Dir(p) == path.Clean(dir) {
			names = append(names, path.Base(p))
		}
	}
	if names == nil {
		return nil, fmt.Errorf("open %s: %w", dir, fs.ErrNotExist)
	}
	// Deliberately unsorted: the maker must sort.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (m *memFS) ReadFile(p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failRead[p]; err != nil {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", p, fs.ErrNotExist)
	}
	return data, nil
}

func (m *memFS) WriteFile(p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failPut[p]; err != nil {
		return err
	}
	m.files[p] = bytes.Clone(data)
	return nil
}

func (m *memFS) Remove(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[p]; !ok {
		return fmt.Errorf("remove %s: %w", p, fs.ErrNotExist)
	}
	delete(m.files, p)
	return nil
}

func (m *memFS) has(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[p]
	return ok
}

// solidRaster returns a w×h raster filled with c.
func solidRaster(w, h int, c color.NRGBA) *Raster {
	r := NewRaster(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.img.SetNRGBA(x, y, c)
		}
	}
	return r
}

// pngBytes encodes a solid w×h image.
func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := (PNGCodec{}).Encode(&buf, solidRaster(w, h, c)); err != nil {
		t.Fatalf("encode %dx%d: %v", w, h, err)
	}
	return buf.Bytes()
}

// gray returns a distinct opaque color per index so images can be told apart
// on the rendered sheet.
func gray(i int) color.NRGBA {
	v := uint8(16 + i*12)
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// recordLogger keeps every message.
type recordLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *recordLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordLogger) warned(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.warns {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// testImage builds a parsed, sized image without any I/O.
func testImage(t *testing.T, file string, w, h int) *SpriteImage {
	t.Helper()
	img, ok := ParseSpriteImage(file, append(DefaultKinds(), InputTextKind), ".png")
	if !ok {
		t.Fatalf("ParseSpriteImage(%q) rejected", file)
	}
	img.Width, img.Height = w, h
	img.raster = solidRaster(w, h, color.NRGBA{A: 255})
	return img
}

// groupsOf indexes images the way the maker does.
func groupsOf(images ...*SpriteImage) map[string]*ImageGroup {
	groups := make(map[string]*ImageGroup)
	for _, img := range images {
		for _, name := range img.Groups {
			if groups[name] == nil {
				groups[name] = NewImageGroup(name)
			}
			groups[name].Add(img)
		}
	}
	return groups
}

var errBoom = errors.New("boom")
