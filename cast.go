package lerp

import (
	"fmt"
	"math"
)

// Cast converts an interpolation parameter to the scalar type To.
//
// Generated code uses it for fields whose interpolation parameter type differs
// from the parameter of the enclosing struct. A finite value that does not fit
// in To panics; NaN and infinities convert unchanged.
func Cast[To, From Float](v From) To {
	r := To(v)
	if !math.IsInf(float64(v), 0) && math.IsInf(float64(r), 0) {
		panic(fmt.Sprintf("lerp: cannot cast %v to %T", v, r))
	}
	return r
}
