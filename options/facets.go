package options

// WithFacets returns a [GeometryOptionsFunc] that sets the number of sides
// used to approximate a circle. Negative values are rejected in favor of the
// zero value, which callers treat as "use the default facet count".
func WithFacets(n int) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if n < 0 {
			n = 0
		}
		opts.Facets = n
	}
}
