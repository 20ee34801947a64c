package hypergraph

import "errors"

// Sentinel errors for canonical-form construction.
var (
	// ErrTooLarge indicates the position needs more vertex bits than the
	// dense backend supports. Switch to WithSparse for larger inputs.
	ErrTooLarge = errors.New("hypergraph: position exceeds dense vertex capacity")

	// ErrIllConfigured indicates caller-supplied node labels are
	// inconsistent with the vertices used by the edges (too short), or
	// an edge holds a negative vertex index.
	ErrIllConfigured = errors.New("hypergraph: node labels inconsistent with edges")
)
