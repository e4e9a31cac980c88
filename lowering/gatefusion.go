package lowering

import "github.com/nwqec-go/transpiler/ir"

// GateFusionPass fuses adjacent gates on identical qubit sets in a
// single linear scan, using a per-qubit "last op" cursor: two ops are
// adjacent when they are separated only by ops on disjoint qubit sets
// (spec.md section 4.3).
type GateFusionPass struct{}

func NewGateFusionPass() *GateFusionPass { return &GateFusionPass{} }

func (p *GateFusionPass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	out := make([]ir.Operation, 0, len(ops))
	// last[q] is the index in out of the most recent op touching
	// qubit q, or -1 if none (or if the chain was broken/consumed).
	last := make([]int, c.NumQubits)
	for i := range last {
		last[i] = -1
	}
	modified := false

	touchAll := func(qs []int, idx int) {
		for _, q := range qs {
			last[q] = idx
		}
	}
	invalidate := func(qs []int) {
		for _, q := range qs {
			last[q] = -1
		}
	}

	for _, op := range ops {
		qs := op.Qubits
		if len(qs) == 0 {
			out = append(out, op)
			continue
		}

		// All touched qubits must share the same prior op to be
		// "adjacent" in the per-qubit-cursor sense.
		allSameLast := true
		first := last[qs[0]]
		for _, q := range qs[1:] {
			if last[q] != first {
				allSameLast = false
				break
			}
		}

		if allSameLast && first >= 0 {
			prev := out[first]
			if fused, ok := tryFuse(prev, op); ok {
				modified = true
				if fused == nil {
					// annihilation: drop both ops.
					out = append(out[:first], out[first+1:]...)
					invalidate(qs)
					// shift indices recorded in `last` for everything
					// after the removed slot.
					for q := range last {
						if last[q] > first {
							last[q]--
						}
					}
					continue
				}
				out[first] = *fused
				touchAll(qs, first)
				continue
			}
		}

		out = append(out, op)
		touchAll(qs, len(out)-1)
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}

// tryFuse attempts to fuse prev followed by next (both already known
// to touch exactly the same qubit set in the same order). ok is false
// when the pair does not fuse; fused is nil when the pair annihilates.
func tryFuse(prev, next ir.Operation) (fused *ir.Operation, ok bool) {
	if !sameQubits(prev.Qubits, next.Qubits) {
		return nil, false
	}

	// Self-inverse single-qubit gates and repeated two-qubit
	// CX/SWAP annihilate.
	if prev.Kind == next.Kind {
		switch prev.Kind {
		case ir.OpH, ir.OpX, ir.OpY, ir.OpCX, ir.OpSWAP:
			return nil, true
		}
	}

	// RZ + RZ on the same qubit sums the angles, then re-snaps.
	if prev.Kind == ir.OpRZ && next.Kind == ir.OpRZ {
		q := prev.Qubits[0]
		sum := prev.Params[0] + next.Params[0]
		return fuseAsAngle(q, sum)
	}

	// Z-diagonal combinations (S/SDG/T/TDG/Z/RZ): sum the equivalent
	// angles and re-snap, covering "S*S -> Z", "T*T -> S",
	// "S*T -> RZ(3pi/4)" and similar canonical combinations.
	pa, pok := angleOf(prev)
	na, nok := angleOf(next)
	if pok && nok {
		q := prev.Qubits[0]
		return fuseAsAngle(q, pa+na)
	}

	return nil, false
}

func angleOf(op ir.Operation) (float64, bool) {
	if op.Kind == ir.OpRZ {
		return op.Params[0], true
	}
	a, ok := diagonalAngle(op.Kind)
	return a, ok
}

func fuseAsAngle(q int, sum float64) (*ir.Operation, bool) {
	newOp, drop, _ := snapRZ(q, sum)
	if drop {
		return nil, true
	}
	return &newOp, true
}

func sameQubits(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
