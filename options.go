package keyshape

import "github.com/gogpu/gg"

// Option configures a Background during creation.
//
// Example:
//
//	// Default key: radius 3, offset 1, white face, gray lip
//	bg := keyshape.New()
//
//	// Dark key with a visible border
//	bg := keyshape.New(
//	    keyshape.WithColors(gg.Hex("#505050"), gg.Hex("#202020"), gg.Black),
//	    keyshape.WithLayers(true, true, true),
//	)
type Option func(*options)

// options holds the configuration applied by New.
type options struct {
	cornerRadius float64
	underOffset  float64
	style        Style
	attachment   Attachment
}

// defaultOptions returns the defaults of a freshly created key.
func defaultOptions() options {
	return options{
		cornerRadius: 3,
		underOffset:  1,
		style:        DefaultStyle(),
		attachment:   Detached,
	}
}

// WithCornerRadius sets the corner radius. Negative values are treated as 0.
func WithCornerRadius(r float64) Option {
	return func(o *options) {
		o.cornerRadius = nonNegative(r)
	}
}

// WithUnderOffset sets the height of the under lip. Negative values are
// treated as 0.
func WithUnderOffset(offset float64) Option {
	return func(o *options) {
		o.underOffset = nonNegative(offset)
	}
}

// WithColors sets the face, lip and border colors.
func WithColors(main, under, border gg.RGBA) Option {
	return func(o *options) {
		o.style.Color = main
		o.style.UnderColor = under
		o.style.BorderColor = border
	}
}

// WithLayers selects which of the three layers are painted.
func WithLayers(under, over, border bool) Option {
	return func(o *options) {
		o.style.DrawUnder = under
		o.style.DrawOver = over
		o.style.DrawBorder = border
	}
}

// WithBorderWidth sets the stroke width of the border layer (default 1).
// Widths of 0 or less draw the default width.
func WithBorderWidth(width float64) Option {
	return func(o *options) {
		o.style.BorderWidth = nonNegative(width)
	}
}

// WithAttachment sets the initial attachment state.
func WithAttachment(a Attachment) Option {
	return func(o *options) {
		o.attachment = a
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
