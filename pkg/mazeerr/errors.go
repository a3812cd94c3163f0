// Package mazeerr defines the sentinel error taxonomy shared by every layer
// of the maze pipeline. It has no dependencies on the rest of the module so
// that mazeforest, mazemeta, mazesvg, and maze can all import it without
// creating a cycle back through the driver package.
package mazeerr

import "errors"

var (
	// ErrInvalidGeometry reports nonsensical dimensions or an impossible root
	// count, detected at construction. The one error in this taxonomy shaped
	// by caller input rather than a programming error.
	ErrInvalidGeometry = errors.New("mazeforge: invalid geometry")

	// ErrIndexOutOfBounds reports a cell or edge index outside its backing
	// array. Indicates a programming error; must be unreachable in a correct
	// implementation.
	ErrIndexOutOfBounds = errors.New("mazeforge: index out of bounds")

	// ErrBuilderStall reports that the spanning-forest frontier emptied
	// before every cell was visited. Occurs only if the geometry is
	// disconnected, which the square grid never is.
	ErrBuilderStall = errors.New("mazeforge: builder stalled before visiting all cells")

	// ErrGatewayMissing reports that the solver requested the gateway of a
	// border whose meta-edge was never opened. Indicates a solver/gateway-
	// opener desynchronization.
	ErrGatewayMissing = errors.New("mazeforge: gateway missing for open border")
)
