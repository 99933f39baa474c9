// Command spritemaker packs a directory of per-state theme images into one
// sprite sheet plus a LESS file of coordinates.
//
//	spritemaker -src images -sprite dist/sprite.png -less dist/sprite.less
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/uniformjs/spritemaker"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spritemaker"})

	opts, err := loadFromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	flag.StringVar(&opts.SourceDir, "src", opts.SourceDir, "directory of source images")
	flag.StringVar(&opts.SpritePath, "sprite", opts.SpritePath, "sprite sheet to write")
	flag.StringVar(&opts.LessPath, "less", opts.LessPath, "LESS coordinates file to write")
	flag.StringVar(&opts.AtlasPath, "atlas", opts.AtlasPath, "optional TexturePacker JSON file to write")
	flag.StringVar(&opts.ImageURL, "url", opts.ImageURL, "sheet URL used in the LESS file (default: sprite file name)")
	flag.StringVar(&opts.Compression, "compression", opts.Compression, "PNG compression: default, none, speed or best")
	flag.IntVar(&opts.Concurrency, "j", opts.Concurrency, "parallel image loads (0 = unbounded)")
	flag.BoolVar(&opts.InputText, "input-text", false, "also pack input-text-middle images")
	flag.BoolVar(&opts.Verbose, "v", false, "log every file read and written")
	flag.Parse()

	logger.SetLevel(log.WarnLevel)
	if opts.Verbose {
		logger.SetLevel(log.InfoLevel)
	}

	level, err := compressionLevel(opts.Compression)
	if err != nil {
		logger.Fatalf("-compression: %v", err)
	}

	cfg := spritemaker.DefaultConfig()
	cfg.Codec = spritemaker.PNGCodec{CompressionLevel: level}
	cfg.Logger = logger
	cfg.LoadConcurrency = opts.Concurrency
	if opts.InputText {
		cfg.Kinds = append(cfg.Kinds, spritemaker.InputTextKind)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	layout, err := spritemaker.Run(ctx, cfg, spritemaker.RunOptions{
		SourceDir:  opts.SourceDir,
		SpritePath: opts.SpritePath,
		LessPath:   opts.LessPath,
		AtlasPath:  opts.AtlasPath,
		ImageURL:   opts.ImageURL,
	})
	if err != nil {
		var seq *spritemaker.SequencingError
		if errors.As(err, &seq) {
			logger.Fatalf("internal error: %v", err)
		}
		logger.Fatalf("%v", err)
	}
	logger.Info("sprite written", "images", len(layout.Images), "width", layout.Width, "height", layout.Height)
}
