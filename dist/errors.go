// Package dist - sentinel errors.
package dist

import "errors"

// ErrNilDistribution is returned by Points for a nil Distribution.
var ErrNilDistribution = errors.New("dist: nil distribution")
