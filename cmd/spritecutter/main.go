// Command spritecutter slices a legacy single-sheet theme into the per-state
// images spritemaker consumes.
//
//	spritecutter -theme agent -sheet sprite-agent.png -out images
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/uniformjs/spritemaker"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spritecutter"})

	themeName := flag.String("theme", "default", "theme preset: "+strings.Join(spritemaker.ThemeNames(), ", "))
	sheet := flag.String("sheet", "", "sheet to cut (default: the theme's sprite file name)")
	outDir := flag.String("out", ".", "directory for the cut images")
	verbose := flag.Bool("v", false, "log every file written")
	flag.Parse()

	logger.SetLevel(log.WarnLevel)
	if *verbose {
		logger.SetLevel(log.InfoLevel)
	}

	theme, err := spritemaker.LookupTheme(*themeName)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if *sheet == "" {
		*sheet = theme.SpriteName
	}

	cfg := spritemaker.DefaultConfig()
	cfg.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	written, err := spritemaker.NewCutter(theme, cfg).Cut(ctx, *sheet, *outDir)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Info("sheet cut", "theme", theme.Name, "files", len(written))
}
