package hypergraph

// Option configures construction via functional arguments.
type Option func(*config)

// config holds the resolved construction parameters.
type config struct {
	// sparse selects the sorted-slice vertex-set backend instead of the
	// default 128-bit dense backend.
	sparse bool
}

// resolveOptions applies opts left-to-right over the defaults.
func resolveOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSparse selects the sparse vertex-set backend, lifting the
// 128-vertex bound of the dense default at the cost of linear-merge
// set operations. One backend applies per construction; positions
// built with different backends never mix inside one operation.
func WithSparse() Option {
	return func(c *config) { c.sparse = true }
}
