package builder

import "errors"

// ErrNonPositiveSize is returned by Path and Cycle when asked to build a
// graph of zero or fewer vertices.
var ErrNonPositiveSize = errors.New("builder: size must be positive")
