// Package saxpy implements the z = a*x + y workload used to compare executor operations.
package saxpy

import (
	"fmt"
	"math"

	"github.com/aryankumar/execbench/internal/util"
)

// floatSize is sizeof(float32) in bytes
const floatSize = 4

// Problem holds the inputs and the output vector of one SAXPY computation
type Problem struct {
	A float32
	X []float32
	Y []float32
	Z []float32
}

// NewProblem creates a problem of n elements with x and y filled with constant values
func NewProblem(n int, a, xFill, yFill float32) (*Problem, error) {
	if n < 0 {
		return nil, util.NewValidationError("size", n, "must be >= 0")
	}

	p := &Problem{
		A: a,
		X: make([]float32, n),
		Y: make([]float32, n),
		Z: make([]float32, n),
	}
	for i := 0; i < n; i++ {
		p.X[i] = xFill
		p.Y[i] = yFill
	}
	return p, nil
}

// Len returns the number of elements in the problem
func (p *Problem) Len() int {
	return len(p.X)
}

// Reset zeroes the output vector so a following run cannot pass on stale data
func (p *Problem) Reset() {
	for i := range p.Z {
		p.Z[i] = 0
	}
}

// Reference computes a*x + y with a plain loop into a new slice
func Reference(p *Problem) []float32 {
	ref := make([]float32, p.Len())
	for i := range ref {
		ref[i] = p.A*p.X[i] + p.Y[i]
	}
	return ref
}

// Verify compares z with the reference bit for bit
// The returned error wraps util.ErrVerificationFailed and names the first mismatch
func Verify(z, reference []float32) error {
	if len(z) != len(reference) {
		return fmt.Errorf("%w: length %d, want %d", util.ErrVerificationFailed, len(z), len(reference))
	}
	for i := range z {
		if math.Float32bits(z[i]) != math.Float32bits(reference[i]) {
			return fmt.Errorf("%w: z[%d] = %v, want %v", util.ErrVerificationFailed, i, z[i], reference[i])
		}
	}
	return nil
}

// BytesMoved returns the bytes read and written by one pass over n elements
func BytesMoved(n int) int64 {
	return 3 * int64(n) * floatSize
}
