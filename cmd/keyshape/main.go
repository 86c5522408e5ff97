// Command keyshape renders a row of key backgrounds described by a YAML
// layout file into a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/keyforge/keyshape"
)

func main() {
	var (
		config  = flag.String("config", "layout.yaml", "layout file")
		output  = flag.String("output", "keys.png", "output file")
		backend = flag.String("backend", "raster", "renderer: raster or gg")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		keyshape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	l, err := LoadLayout(*config)
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}
	keys, err := Build(l)
	if err != nil {
		log.Fatalf("Failed to build keys: %v", err)
	}

	img, err := render(*backend, l, keys)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%d keys saved to %s (%dx%d)\n", len(keys), *output, l.Width, l.Height)
}

func render(backend string, l *Layout, keys []*placedKey) (image.Image, error) {
	switch backend {
	case "raster":
		return renderRaster(l, keys)
	case "gg":
		return renderGG(l, keys)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
