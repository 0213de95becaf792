// Package calculus - sentinel errors.
package calculus

import "errors"

// ErrNilFunc is returned when a nil core.Func reaches a sampling helper.
var ErrNilFunc = errors.New("calculus: nil function")
