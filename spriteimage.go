package spritemaker

import (
	"context"
	"path/filepath"
	"strings"
)

// Group names every image may belong to besides its own kind and family.
const (
	GroupAll    = "all"
	GroupMiddle = "middle"
)

// Flags are the layout hints derived from a group name's suffix.
type Flags struct {
	LeftAligned  bool // name ends in Left
	RightAligned bool // name ends in Right; placed flush with the sheet's right edge
	Repeating    bool // name ends in Middle; tiled across its whole row
}

// SpriteImage is one source file. Width and Height are the destination size:
// they start as the decoded size and may be raised by validation. Left and
// Top are assigned by the layout engine.
type SpriteImage struct {
	Path       string // where the file is read from
	GroupName  string // camel-cased prefix, e.g. "buttonLeft"
	ImageExtra string // state suffix after the first "_", e.g. "active_hover"
	Family     string // GroupName without its position suffix
	Flags      Flags
	Groups     []string

	Width, Height int
	Left, Top     int

	rank   int
	placed bool
	raster *Raster
}

// ParseSpriteImage derives an image's naming and flags from its file name.
// It reports false for files that do not end in ext or whose prefix is not
// one of kinds; such files take no further part in a run.
func ParseSpriteImage(path string, kinds Kinds, ext string) (*SpriteImage, bool) {
	name := strings.ToLower(filepath.Base(path))
	ext = strings.ToLower(ext)
	if !strings.HasSuffix(name, ext) {
		return nil, false
	}
	parts := strings.Split(camelCase(strings.TrimSuffix(name, ext)), "_")

	groupName := parts[0]
	_, rank, ok := kinds.Lookup(groupName)
	if !ok {
		return nil, false
	}

	img := &SpriteImage{
		Path:       path,
		GroupName:  groupName,
		ImageExtra: strings.Join(parts[1:], "_"),
		Family:     familyOf(groupName),
		rank:       rank,
	}
	switch positionOf(groupName) {
	case PositionLeft:
		img.Flags.LeftAligned = true
	case PositionRight:
		img.Flags.RightAligned = true
	case PositionMiddle:
		img.Flags.Repeating = true
	}
	img.Groups = []string{GroupAll, groupName}
	if img.Family != groupName {
		img.Groups = append(img.Groups, img.Family)
	}
	if img.Flags.Repeating {
		img.Groups = append(img.Groups, GroupMiddle)
	}
	return img, true
}

// Name is the identifier used in metadata: the group name plus the state
// suffix, e.g. "buttonLeft_active".
func (img *SpriteImage) Name() string {
	if img.ImageExtra == "" {
		return img.GroupName
	}
	return img.GroupName + "_" + img.ImageExtra
}

// Raster returns the decoded bitmap, or nil before Load succeeds.
func (img *SpriteImage) Raster() *Raster { return img.raster }

// Placed reports whether the layout engine has assigned Left and Top.
func (img *SpriteImage) Placed() bool { return img.placed }

// Load reads and decodes the source file and resets the destination size to
// the decoded size.
func (img *SpriteImage) Load(ctx context.Context, fsys FileSystem, codec Codec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := fsys.ReadFile(img.Path)
	if err != nil {
		return &DecodeError{Path: img.Path, Op: "read", Err: err}
	}
	r, err := decodeRaster(codec, data, img.Path)
	if err != nil {
		return err
	}
	img.raster = r
	img.Width = r.Width()
	img.Height = r.Height()
	return nil
}

// camelCase turns "file-button-left" into "fileButtonLeft". Only a dash
// followed by a lower-case letter is folded.
func camelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
