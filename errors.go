package grad

import "errors"

// Sentinel errors for the grad package.
// Use errors.Is to check: errors.Is(err, grad.ErrDivisionByZero)
var (
	ErrInvalidValue   = errors.New("grad: non-finite value")
	ErrDivisionByZero = errors.New("grad: division by zero")
	ErrDomain         = errors.New("grad: power outside real domain")
	ErrCyclicGraph    = errors.New("grad: cycle in computation graph")
	ErrWrongGraph     = errors.New("grad: value does not belong to this graph")
)
