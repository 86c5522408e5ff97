package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/keyforge/keyshape"
)

// Layout is the YAML description of a set of keys drawn onto one image.
type Layout struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background string    `yaml:"background"`
	Backing    string    `yaml:"backing,omitempty"` // "" or "none", or "soft"
	Keys       []KeySpec `yaml:"keys"`
}

// KeySpec describes one key. Optional fields left out keep the keyshape
// defaults. A key with AttachTo is positioned next to the named key, which
// must come earlier in the list, and X/Y are ignored.
type KeySpec struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Radius      *float64 `yaml:"radius,omitempty"`
	Offset      *float64 `yaml:"offset,omitempty"`
	BorderWidth *float64 `yaml:"border_width,omitempty"`

	Color       string `yaml:"color,omitempty"`
	UnderColor  string `yaml:"under_color,omitempty"`
	BorderColor string `yaml:"border_color,omitempty"`

	Under  *bool `yaml:"under,omitempty"`
	Over   *bool `yaml:"over,omitempty"`
	Border *bool `yaml:"border,omitempty"`

	AttachTo string `yaml:"attach_to,omitempty"`
	Attach   string `yaml:"attach,omitempty"` // side of this key facing AttachTo
}

var (
	errNoKeys       = errors.New("layout has no keys")
	errCanvasSize   = errors.New("layout width and height must be positive")
	errUnknownKey   = errors.New("unknown key")
	errDoubleAttach = errors.New("key is already attached")
	errBadColor     = errors.New("invalid hex color")
	errBadBacking   = errors.New("invalid backing")
	errEmptyBounds  = errors.New("key has empty bounds")
)

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errCanvasSize, l.Width, l.Height)
	}
	if len(l.Keys) == 0 {
		return nil, errNoKeys
	}
	switch l.Backing {
	case "", "none", "soft":
	default:
		return nil, fmt.Errorf("%w: %q", errBadBacking, l.Backing)
	}
	return &l, nil
}

// placedKey is a configured background and its origin on the canvas.
type placedKey struct {
	name string
	x, y float64
	bg   *keyshape.Background
}

// Build creates the backgrounds of l and resolves attachments. Attached
// pairs are aligned on the midpoints of their attachment points, so the
// two faces meet along the suppressed sides.
func Build(l *Layout) ([]*placedKey, error) {
	keys := make([]*placedKey, 0, len(l.Keys))
	byName := make(map[string]*placedKey, len(l.Keys))

	for i, spec := range l.Keys {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("key%d", i)
		}
		opts, err := spec.options()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}

		k := &placedKey{name: name, x: spec.X, y: spec.Y, bg: keyshape.New(opts...)}
		k.bg.SetBounds(spec.Width, spec.Height)

		if spec.AttachTo != "" {
			if err := attach(k, spec, byName); err != nil {
				return nil, fmt.Errorf("key %q: %w", name, err)
			}
		}

		keys = append(keys, k)
		byName[name] = k
	}
	return keys, nil
}

// attach suppresses the facing sides of k and its target and moves k so
// that the midpoints of both sides coincide.
func attach(k *placedKey, spec KeySpec, byName map[string]*placedKey) error {
	target, ok := byName[spec.AttachTo]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownKey, spec.AttachTo)
	}
	side, err := keyshape.ParseDirection(spec.Attach)
	if err != nil {
		return err
	}
	facing := side.Opposite()
	if target.bg.AttachmentDirection().IsAttached() {
		return fmt.Errorf("%w: %q", errDoubleAttach, target.name)
	}

	// Attachment points do not depend on the attachment state, so both
	// keys are checked before either is attached.
	t0, t1, ok := target.bg.AttachmentPoints(facing)
	if !ok {
		return fmt.Errorf("%w: %q", errEmptyBounds, target.name)
	}
	k0, k1, ok := k.bg.AttachmentPoints(side)
	if !ok {
		return fmt.Errorf("%w: %q", errEmptyBounds, k.name)
	}

	k.bg.Attach(keyshape.AttachedTo(side))
	target.bg.Attach(keyshape.AttachedTo(facing))
	k.x = target.x + (t0.X+t1.X)/2 - (k0.X+k1.X)/2
	k.y = target.y + (t0.Y+t1.Y)/2 - (k0.Y+k1.Y)/2
	return nil
}

// options converts the optional fields of s to keyshape options.
func (s KeySpec) options() ([]keyshape.Option, error) {
	var opts []keyshape.Option
	if s.Radius != nil {
		opts = append(opts, keyshape.WithCornerRadius(*s.Radius))
	}
	if s.Offset != nil {
		opts = append(opts, keyshape.WithUnderOffset(*s.Offset))
	}
	if s.BorderWidth != nil {
		opts = append(opts, keyshape.WithBorderWidth(*s.BorderWidth))
	}

	style := keyshape.DefaultStyle()
	var err error
	if style.Color, err = parseColor(s.Color, style.Color); err != nil {
		return nil, err
	}
	if style.UnderColor, err = parseColor(s.UnderColor, style.UnderColor); err != nil {
		return nil, err
	}
	if style.BorderColor, err = parseColor(s.BorderColor, style.BorderColor); err != nil {
		return nil, err
	}
	opts = append(opts, keyshape.WithColors(style.Color, style.UnderColor, style.BorderColor))

	opts = append(opts, keyshape.WithLayers(
		boolOr(s.Under, style.DrawUnder),
		boolOr(s.Over, style.DrawOver),
		boolOr(s.Border, style.DrawBorder),
	))
	return opts, nil
}

// parseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" with gg.Hex.
func parseColor(s string, def gg.RGBA) (gg.RGBA, error) {
	if s == "" {
		return def, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
