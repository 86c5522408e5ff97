package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/keyforge/keyshape"
	"github.com/keyforge/keyshape/integration/ggcanvas"
	"github.com/keyforge/keyshape/raster"
)

// softenFactor is the downscale factor of the soft backing.
const softenFactor = 4

// renderRaster draws keys with the raster package. A soft backing is
// sampled from the cleared background and shown through each key's fill.
func renderRaster(l *Layout, keys []*placedKey) (image.Image, error) {
	bg, err := parseColor(l.Background, gg.White)
	if err != nil {
		return nil, err
	}
	c := raster.NewCanvas(l.Width, l.Height)
	c.Clear(bg)

	var backing image.Image
	if l.Backing == "soft" {
		backing = raster.Soften(c.Image(), softenFactor)
	}

	for _, k := range keys {
		c.Push()
		c.Translate(k.x, k.y)
		if backing != nil {
			if err := c.DrawBacking(k.bg.FillPath(), backing); err != nil {
				c.Pop()
				return nil, fmt.Errorf("key %q: %w", k.name, err)
			}
		}
		err := k.bg.Draw(c)
		c.Pop()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k.name, err)
		}
	}
	return c.Image(), nil
}

// renderGG draws keys onto a gg.Context.
func renderGG(l *Layout, keys []*placedKey) (image.Image, error) {
	bg, err := parseColor(l.Background, gg.White)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(l.Width, l.Height)
	dc.ClearWithColor(bg)

	if l.Backing == "soft" {
		keyshape.Logger().Warn("backing is only supported by the raster backend", slog.String("backing", l.Backing))
	}
	if err := drawKeys(ggcanvas.New(dc), keys); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func drawKeys(c keyshape.Canvas, keys []*placedKey) error {
	for _, k := range keys {
		c.Push()
		c.Translate(k.x, k.y)
		err := k.bg.Draw(c)
		c.Pop()
		if err != nil {
			return fmt.Errorf("key %q: %w", k.name, err)
		}
	}
	return nil
}
