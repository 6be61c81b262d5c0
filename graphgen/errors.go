// errors.go — sentinel errors for the graphgen package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is(err, ErrX); call sites attach context via fmt.Errorf's %w.

package graphgen

import "errors"

// ErrTooFewVertices indicates n is smaller than the requested topology's minimum.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates p lies outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")
