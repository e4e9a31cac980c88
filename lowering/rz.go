// Package lowering implements the Decompose, RemoveTrivialRz,
// GateFusion and RemovePauli passes of spec.md section 4.3.
package lowering

import (
	"math"

	"github.com/nwqec-go/transpiler/ir"
)

// rzTolerance is the suggested tolerance for snapping a reduced RZ
// angle to a multiple of 2*pi, pi, pi/2 or pi/4.
const rzTolerance = 1e-12

// reduceAngle reduces theta mod 2*pi into (-pi, pi].
func reduceAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	r := math.Mod(theta, twoPi)
	if r > math.Pi {
		r -= twoPi
	} else if r <= -math.Pi {
		r += twoPi
	}
	return r
}

// snapRZ reduces theta mod 2*pi and, within rzTolerance, replaces it
// with the equivalent Clifford+T gate (0 drops entirely; +-pi/4,
// +-pi/2, +-pi snap to T/TDG, S/SDG, Z). snapped reports whether the
// angle matched one of those special cases (as opposed to falling
// through to a generic RZ with the reduced angle).
func snapRZ(q int, theta float64) (op ir.Operation, drop bool, snapped bool) {
	r := reduceAngle(theta)
	near := func(target float64) bool { return math.Abs(r-target) < rzTolerance }

	switch {
	case near(0):
		return ir.Operation{}, true, true
	case near(math.Pi), near(-math.Pi):
		return ir.Gate(ir.OpZ, q), false, true
	case near(math.Pi / 2):
		return ir.Gate(ir.OpS, q), false, true
	case near(-math.Pi / 2):
		return ir.Gate(ir.OpSDG, q), false, true
	case near(math.Pi / 4):
		return ir.Gate(ir.OpT, q), false, true
	case near(-math.Pi / 4):
		return ir.Gate(ir.OpTDG, q), false, true
	default:
		return ir.Rotation(ir.OpRZ, q, r), false, false
	}
}

// diagonalAngle returns the RZ angle equivalent to a single-qubit
// Z-diagonal Clifford+T gate (used by GateFusion to fuse adjacent
// diagonal gates by summing their equivalent angles and re-snapping).
func diagonalAngle(k ir.Kind) (float64, bool) {
	switch k {
	case ir.OpZ:
		return math.Pi, true
	case ir.OpS:
		return math.Pi / 2, true
	case ir.OpSDG:
		return -math.Pi / 2, true
	case ir.OpT:
		return math.Pi / 4, true
	case ir.OpTDG:
		return -math.Pi / 4, true
	case ir.OpRZ:
		return 0, true // caller supplies the actual angle from Params
	default:
		return 0, false
	}
}
