package spritemaker

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default metadata templates. Tokens are written as {name} and replaced
// verbatim; unknown tokens are left untouched.
//
// Header tokens: {timestamp}, {image}, {width}, {height}.
// Entry tokens: {name}, {property}, {value}.
const (
	DefaultLessHeader = "/*\n" +
		" * Sprite coordinates generated {timestamp}.\n" +
		" * Rebuild the sprite instead of editing this file.\n" +
		" */\n" +
		"\n" +
		"@background-image: url({image});\n" +
		"\n"
	DefaultLessEntry = "@{name}_{property}: {value};\n"
)

// RenderSheet composes every placed image into one raster of the layout's
// size. Repeating images are tiled from their Left to the right edge of the
// sheet. Images are drawn in layout order.
func RenderSheet(l *Layout) (*Raster, error) {
	sheet := NewRaster(l.Width, l.Height)
	for _, img := range l.Images {
		src := img.Raster()
		if src == nil {
			return nil, fmt.Errorf("spritemaker: render %s: image not loaded", img.Path)
		}
		if !img.placed {
			return nil, fmt.Errorf("spritemaker: render %s: image not placed", img.Path)
		}
		if !img.Flags.Repeating {
			sheet.Blit(src, 0, 0, img.Width, img.Height, img.Left, img.Top)
			continue
		}
		if img.Width <= 0 {
			continue
		}
		for x := img.Left; x+img.Width <= l.Width; x += img.Width {
			sheet.Blit(src, 0, 0, img.Width, img.Height, x, img.Top)
		}
	}
	return sheet, nil
}

// MetadataTemplate controls the text written by RenderMetadata.
type MetadataTemplate struct {
	Header string
	Entry  string
}

// RenderMetadata writes the header followed by four entries per image
// (height, width, left, top) using destination sizes, in layout order.
func RenderMetadata(l *Layout, imagePath string, tmpl MetadataTemplate, now time.Time) string {
	var b strings.Builder
	b.WriteString(expandTokens(tmpl.Header, map[string]string{
		"timestamp": now.UTC().Format(time.RFC3339),
		"image":     imagePath,
		"width":     strconv.Itoa(l.Width),
		"height":    strconv.Itoa(l.Height),
	}))
	for _, img := range l.Images {
		props := [4]struct {
			name  string
			value int
		}{
			{"height", img.Height},
			{"width", img.Width},
			{"left", img.Left},
			{"top", img.Top},
		}
		for _, p := range props {
			b.WriteString(expandTokens(tmpl.Entry, map[string]string{
				"name":     img.Name(),
				"property": p.name,
				"value":    strconv.Itoa(p.value),
			}))
		}
	}
	return b.String()
}

// expandTokens replaces each {key} in tmpl with tokens[key]. Replacement text
// is not rescanned.
func expandTokens(tmpl string, tokens map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			break
		}
		end += open
		if v, ok := tokens[tmpl[open+1:end]]; ok {
			b.WriteString(tmpl[:open])
			b.WriteString(v)
		} else {
			b.WriteString(tmpl[:end+1])
		}
		tmpl = tmpl[end+1:]
	}
	b.WriteString(tmpl)
	return b.String()
}
