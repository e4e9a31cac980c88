package pbc

import (
	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
	"github.com/nwqec-go/transpiler/pauli"
)

// TfusePass reduces T-count on a PBC by sweeping left to right and, for
// each new T_PAULI, attempting to propagate its Pauli word backward
// through a window of earlier un-fused T_PAULI ops (commuting through
// via the standard anticommutation rule P' <-> iPQ where it fails to
// commute) until it meets a matching partner to fuse or cancel with, or
// exits the window and is appended as-is (spec.md section 4.5). It
// never increases the T-count.
type TfusePass struct{}

func NewTfusePass() *TfusePass { return &TfusePass{} }

func (p *TfusePass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	out := make([]ir.Operation, 0, len(ops))
	modified := false

	// window holds the indices (into out) of T_PAULI ops not yet
	// fused away, in program order; an intervening non-T_PAULI op
	// that fails to commute with any word in the window closes it.
	var window []int

	flushWindow := func() { window = nil }

	for _, op := range ops {
		if op.Kind != ir.OpTPauli {
			// S_PAULI/Z_PAULI/M_PAULI/BARRIER: if they don't commute
			// with every word still in the window, the window
			// (everything "before" this op) is no longer reachable
			// by further backward propagation, so close it.
			out = append(out, op)
			if !commutesWithWindow(op, out, window) {
				flushWindow()
			}
			continue
		}

		word := op.Pauli.Clone()
		fusedIdx := -1
		cancel := false

		// Walk the window from most-recent to oldest, commuting word
		// leftward across any partner it does not share support with.
		for i := len(window) - 1; i >= 0; i-- {
			idx := window[i]
			partner := out[idx].Pauli
			if partner.SameSupport(word) {
				fusedIdx = idx
				cancel = partner.Sign() != word.Sign()
				break
			}
			if word.Commutes(partner) {
				continue
			}
			word = pauli.Compose(partner, word)
		}

		switch {
		case fusedIdx >= 0 && cancel:
			// Two T_PAULI(+-P) with opposite signs: exp(i pi/8 P) and
			// exp(-i pi/8 P) compose to identity.
			removeFromOut(&out, fusedIdx)
			window = shiftWindow(window, fusedIdx)
			modified = true
		case fusedIdx >= 0:
			// Two T_PAULI(+-P) with the same sign compose to a single
			// pi/2 (S_PAULI) rotation about P.
			out[fusedIdx] = ir.PauliRotation(ir.OpSPauli, out[fusedIdx].Pauli)
			window = removeIdx(window, fusedIdx)
			modified = true
		default:
			out = append(out, ir.PauliRotation(ir.OpTPauli, word))
			window = append(window, len(out)-1)
		}
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}

func commutesWithWindow(op ir.Operation, out []ir.Operation, window []int) bool {
	if op.Pauli == nil {
		return true
	}
	for _, idx := range window {
		if !op.Pauli.Commutes(out[idx].Pauli) {
			return false
		}
	}
	return true
}

func removeFromOut(out *[]ir.Operation, idx int) {
	*out = append((*out)[:idx], (*out)[idx+1:]...)
}

func removeIdx(window []int, idx int) []int {
	out := make([]int, 0, len(window))
	for _, w := range window {
		if w != idx {
			out = append(out, w)
		}
	}
	return out
}

// shiftWindow drops idx from window and, since removeFromOut shifted
// every later index in out down by one, decrements every window entry
// past idx to match.
func shiftWindow(window []int, idx int) []int {
	out := make([]int, 0, len(window))
	for _, w := range window {
		if w == idx {
			continue
		}
		if w > idx {
			w--
		}
		out = append(out, w)
	}
	return out
}

func init() {
	pass.Register(pass.Tfuse, func(cfg pass.Config) (pass.Pass, bool) {
		return NewTfusePass(), true
	})
}
