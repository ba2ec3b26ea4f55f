package options

// WithSeparation returns a [GeometryOptionsFunc] that sets the gap, in user
// units, left between adjacent Parts when svg.Write lays out more than one
// Part side by side. Negative values are rejected in favor of 0.
func WithSeparation(sep float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if sep < 0 {
			sep = 0
		}
		opts.Separation = sep
	}
}
