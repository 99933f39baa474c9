package spritemaker

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
)

// Codec converts between a compressed image container and a Raster.
type Codec interface {
	Decode(r io.Reader) (*Raster, error)
	Encode(w io.Writer, r *Raster) error
}

// PNGCodec reads and writes PNG files.
type PNGCodec struct {
	// CompressionLevel is the encoder effort knob. The zero value is
	// png.DefaultCompression.
	CompressionLevel png.CompressionLevel
}

// Decode parses a PNG stream into a raster.
func (c PNGCodec) Decode(r io.Reader) (*Raster, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return NewRasterFromImage(img), nil
}

// Encode writes r as a PNG stream.
func (c PNGCodec) Encode(w io.Writer, r *Raster) error {
	enc := png.Encoder{CompressionLevel: c.CompressionLevel}
	return enc.Encode(w, r.img)
}

// encodeRaster renders r to memory so that nothing reaches the destination
// when encoding fails.
func encodeRaster(codec Codec, r *Raster, dest string) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, r); err != nil {
		return nil, &EncodeError{Path: dest, Err: err}
	}
	return buf.Bytes(), nil
}

func decodeRaster(codec Codec, data []byte, path string) (*Raster, error) {
	r, err := codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Op: "decode", Err: err}
	}
	if r.Width() == 0 || r.Height() == 0 {
		return nil, &DecodeError{Path: path, Op: "decode", Err: fmt.Errorf("empty %dx%d image", r.Width(), r.Height())}
	}
	return r, nil
}
