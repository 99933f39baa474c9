package spritemaker

import (
	"image/png"
	"slices"
	"time"
)

// Config holds everything a Maker or Cutter needs. Build it once, typically
// from DefaultConfig with a few fields overridden; NewMaker and NewCutter
// take a copy and never change it.
type Config struct {
	// Kinds is the ordered table of recognized group names.
	Kinds Kinds
	// Extension is the source file extension, matched case-insensitively.
	Extension string
	Codec     Codec
	FS        FileSystem
	Logger    Logger
	// LoadConcurrency bounds parallel image loads. Zero means unbounded.
	LoadConcurrency int
	// Now stamps generated metadata.
	Now func() time.Time
	// LessHeader and LessEntry are the metadata templates.
	LessHeader string
	LessEntry  string
}

// DefaultConfig reads PNG files from the local disk using the stock kinds.
func DefaultConfig() Config {
	return Config{
		Kinds:      DefaultKinds(),
		Extension:  ".png",
		Codec:      PNGCodec{CompressionLevel: png.BestCompression},
		FS:         OSFileSystem{},
		Logger:     nopLogger{},
		Now:        time.Now,
		LessHeader: DefaultLessHeader,
		LessEntry:  DefaultLessEntry,
	}
}

// withDefaults fills unset fields from DefaultConfig and detaches the kind
// table from the caller's slice.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Kinds == nil {
		c.Kinds = def.Kinds
	} else {
		c.Kinds = slices.Clone(c.Kinds)
	}
	if c.Extension == "" {
		c.Extension = def.Extension
	}
	if c.Codec == nil {
		c.Codec = def.Codec
	}
	if c.FS == nil {
		c.FS = def.FS
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	if c.Now == nil {
		c.Now = def.Now
	}
	if c.LessHeader == "" {
		c.LessHeader = def.LessHeader
	}
	if c.LessEntry == "" {
		c.LessEntry = def.LessEntry
	}
	return c
}

func (c Config) metadataTemplate() MetadataTemplate {
	return MetadataTemplate{Header: c.LessHeader, Entry: c.LessEntry}
}
