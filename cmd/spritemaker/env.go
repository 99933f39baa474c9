package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"
)

const (
	defaultSourceDir   = "images"
	defaultSpritePath  = "sprite.png"
	defaultLessPath    = "sprite.less"
	defaultCompression = "best"
	maxConcurrency     = 1024
)

// options are the settings of one build. Environment variables provide the
// defaults and flags override them.
type options struct {
	SourceDir   string
	SpritePath  string
	LessPath    string
	AtlasPath   string
	ImageURL    string
	Compression string
	Concurrency int
	InputText   bool
	Verbose     bool
}

// loadFromEnv reads SPRITEMAKER_* variables.
func loadFromEnv() (options, error) {
	var (
		opts options
		err  error
	)
	if opts.SourceDir, err = readRequiredOrDefault("SPRITEMAKER_SRC", defaultSourceDir); err != nil {
		return options{}, err
	}
	if opts.SpritePath, err = readRequiredOrDefault("SPRITEMAKER_SPRITE", defaultSpritePath); err != nil {
		return options{}, err
	}
	if opts.LessPath, err = readRequiredOrDefault("SPRITEMAKER_LESS", defaultLessPath); err != nil {
		return options{}, err
	}
	opts.AtlasPath = os.Getenv("SPRITEMAKER_ATLAS")
	opts.ImageURL = os.Getenv("SPRITEMAKER_URL")

	if opts.Compression, err = readRequiredOrDefault("SPRITEMAKER_COMPRESSION", defaultCompression); err != nil {
		return options{}, err
	}
	if _, err := compressionLevel(opts.Compression); err != nil {
		return options{}, fmt.Errorf("SPRITEMAKER_COMPRESSION: %w", err)
	}
	if opts.Concurrency, err = readInt("SPRITEMAKER_CONCURRENCY", 0, 0, maxConcurrency); err != nil {
		return options{}, err
	}
	return opts, nil
}

func readRequiredOrDefault(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}
	return raw, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return parsed, nil
}

func compressionLevel(name string) (png.CompressionLevel, error) {
	switch name {
	case "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want default, none, speed or best)", name)
	}
}
