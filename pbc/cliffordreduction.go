package pbc

import (
	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
	"github.com/nwqec-go/transpiler/pauli"
)

// CliffordReductionPass applies the "TACO"-style pipeline (spec.md
// section 4.5): greedily sinks S_PAULI/Z_PAULI ops to the end of the
// circuit by commuting them past T_PAULI/M_PAULI (updating the
// commuted-through op's Pauli word per the standard anticommutation
// rule where it fails to commute), then drops every S_PAULI/Z_PAULI.
// When a dropped op rests directly before an M_PAULI observing the
// same support and carries a -1 sign, that measurement's recorded sign
// is flipped. The pass is idempotent.
type CliffordReductionPass struct{}

func NewCliffordReductionPass() *CliffordReductionPass { return &CliffordReductionPass{} }

func (p *CliffordReductionPass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	modified := sinkToFixpoint(ops)

	out := make([]ir.Operation, 0, len(ops))
	for i, op := range ops {
		if !isSinkable(op.Kind) {
			out = append(out, op)
			continue
		}
		modified = true
		if mi := adjacentObservingMeasure(ops, i); mi >= 0 && signFlips(op) {
			c.FlipMeasureSign(ops[mi].Clbits[0])
		}
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}

func isSinkable(k ir.Kind) bool {
	return k == ir.OpSPauli || k == ir.OpZPauli
}

// sinkToFixpoint repeatedly swaps each sinkable op rightward past its
// immediate neighbor, commuting the neighbor's Pauli word through it
// when they anticommute, until no sinkable op has anything left to
// advance past (it is either last, immediately followed by an M_PAULI
// observing the same support, which fixes it in place as its terminal
// position, or blocked by a BARRIER or another S_PAULI/Z_PAULI).
func sinkToFixpoint(ops []ir.Operation) bool {
	modified := false
	progress := true
	for progress {
		progress = false
		for i := 0; i < len(ops)-1; i++ {
			if !isSinkable(ops[i].Kind) {
				continue
			}
			if isTerminalPosition(ops, i) {
				continue
			}
			if swapForward(ops, i) {
				progress = true
				modified = true
			}
		}
	}
	return modified
}

// isTerminalPosition reports whether the sinkable op at i is
// immediately followed by the M_PAULI that observes it, its resting
// place in the TACO pipeline.
func isTerminalPosition(ops []ir.Operation, i int) bool {
	next := ops[i+1]
	return next.Kind == ir.OpMPauli && next.Pauli.SameSupport(ops[i].Pauli)
}

// swapForward exchanges ops[i] and ops[i+1], updating ops[i+1]'s Pauli
// word (now at index i) per the standard anticommutation rule if the
// two did not commute. Reports whether the swap happened.
func swapForward(ops []ir.Operation, i int) bool {
	a, b := ops[i], ops[i+1]
	if b.Kind == ir.OpBARRIER || isSinkable(b.Kind) {
		return false
	}

	newB := b
	if b.Pauli != nil && !a.Pauli.Commutes(b.Pauli) {
		newWord := pauli.Compose(a.Pauli, b.Pauli)
		switch b.Kind {
		case ir.OpTPauli, ir.OpSPauli, ir.OpZPauli:
			newB = ir.PauliRotation(b.Kind, newWord)
		case ir.OpMPauli:
			newB = ir.PauliMeasure(newWord, b.Clbits[0])
		default:
			return false
		}
	}
	ops[i], ops[i+1] = newB, a
	return true
}

// adjacentObservingMeasure returns the index of the M_PAULI
// immediately following the sinkable op at i with matching support, or
// -1 if the op reached the end of the circuit without one.
func adjacentObservingMeasure(ops []ir.Operation, i int) int {
	if i+1 >= len(ops) {
		return -1
	}
	next := ops[i+1]
	if next.Kind == ir.OpMPauli && next.Pauli.SameSupport(ops[i].Pauli) {
		return i + 1
	}
	return -1
}

// signFlips reports whether the sinkable op's sign would flip the sign
// of the measurement outcome it precedes: exactly when it carries a -1
// phase (a +1 Clifford rotation about the same axis as the
// measurement it precedes commutes through trivially).
func signFlips(op ir.Operation) bool {
	return op.Pauli.Sign() < 0
}

func init() {
	pass.Register(pass.CliffordReduction, func(cfg pass.Config) (pass.Pass, bool) {
		return NewCliffordReductionPass(), true
	})
}
