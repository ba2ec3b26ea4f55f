package options

// Style holds the SVG presentation attributes the svg package attaches to an
// emitted path. The zero value renders with the svg package's own built-in
// defaults.
type Style struct {
	// Fill is the SVG fill color, e.g. "black" or "#3366cc". Empty means the
	// svg package's default fill.
	Fill string

	// Stroke is the SVG stroke color. Empty means no stroke.
	Stroke string

	// StrokeWidth is the SVG stroke-width in user units. Zero means the
	// svg package's default width.
	StrokeWidth float64
}

// WithStyle returns a [GeometryOptionsFunc] that sets the presentation style
// applied to paths emitted by the svg package.
func WithStyle(style Style) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.Style = style
	}
}
