package lowering

import (
	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
)

// DecomposePass rewrites every gate outside the target Clifford+T gate
// set (H, S, SDG, X, Y, Z, T, TDG, CX, RZ, MEASURE, RESET, BARRIER,
// plus CCX when KeepCCX is set) into an equivalent sequence drawn from
// it (spec.md section 4.3). It is
// idempotent: running it again on already-decomposed output leaves the
// circuit unchanged.
type DecomposePass struct {
	keepCCX bool
}

// NewDecomposePass reads only cfg.KeepCCX: cfg.KeepCX governs ToPBC's
// CX-retention behavior (package pbc), not this pass — Decompose's
// target gate set always includes CX, so CZ/SWAP are unconditionally
// rewritten in terms of it.
func NewDecomposePass(cfg pass.Config) *DecomposePass {
	return &DecomposePass{keepCCX: cfg.KeepCCX}
}

func (p *DecomposePass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	out := make([]ir.Operation, 0, len(ops))
	modified := false

	for _, op := range ops {
		expanded, did := decomposeOne(op, p.keepCCX)
		if did {
			modified = true
			out = append(out, expanded...)
			continue
		}
		out = append(out, op)
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}

func decomposeOne(op ir.Operation, keepCCX bool) ([]ir.Operation, bool) {
	switch op.Kind {
	case ir.OpSX:
		q := op.Qubits[0]
		return []ir.Operation{ir.Gate(ir.OpH, q), ir.Gate(ir.OpS, q), ir.Gate(ir.OpH, q)}, true
	case ir.OpSXDG:
		q := op.Qubits[0]
		return []ir.Operation{ir.Gate(ir.OpH, q), ir.Gate(ir.OpSDG, q), ir.Gate(ir.OpH, q)}, true
	case ir.OpRX:
		q := op.Qubits[0]
		theta := op.Params[0]
		return []ir.Operation{
			ir.Gate(ir.OpH, q),
			ir.Rotation(ir.OpRZ, q, theta),
			ir.Gate(ir.OpH, q),
		}, true
	case ir.OpRY:
		q := op.Qubits[0]
		theta := op.Params[0]
		return []ir.Operation{
			ir.Gate(ir.OpSDG, q),
			ir.Gate(ir.OpH, q),
			ir.Rotation(ir.OpRZ, q, theta),
			ir.Gate(ir.OpH, q),
			ir.Gate(ir.OpS, q),
		}, true
	case ir.OpCZ:
		c0, t0 := op.Qubits[0], op.Qubits[1]
		return []ir.Operation{
			ir.Gate(ir.OpH, t0),
			ir.Gate(ir.OpCX, c0, t0),
			ir.Gate(ir.OpH, t0),
		}, true
	case ir.OpSWAP:
		a, b := op.Qubits[0], op.Qubits[1]
		return []ir.Operation{
			ir.Gate(ir.OpCX, a, b),
			ir.Gate(ir.OpCX, b, a),
			ir.Gate(ir.OpCX, a, b),
		}, true
	case ir.OpCCX:
		if keepCCX {
			return nil, false
		}
		return decomposeCCX(op.Qubits[0], op.Qubits[1], op.Qubits[2]), true
	default:
		return nil, false
	}
}

// decomposeCCX expands a Toffoli (controls a, b; target tgt) into the
// canonical 6-CX/7-T Nielsen & Chuang decomposition (T-depth 3,
// T-count 7).
func decomposeCCX(a, b, tgt int) []ir.Operation {
	return []ir.Operation{
		ir.Gate(ir.OpH, tgt),
		ir.Gate(ir.OpCX, b, tgt),
		ir.Gate(ir.OpTDG, tgt),
		ir.Gate(ir.OpCX, a, tgt),
		ir.Gate(ir.OpT, tgt),
		ir.Gate(ir.OpCX, b, tgt),
		ir.Gate(ir.OpTDG, tgt),
		ir.Gate(ir.OpCX, a, tgt),
		ir.Gate(ir.OpT, b),
		ir.Gate(ir.OpT, tgt),
		ir.Gate(ir.OpH, tgt),
		ir.Gate(ir.OpCX, a, b),
		ir.Gate(ir.OpT, a),
		ir.Gate(ir.OpTDG, b),
		ir.Gate(ir.OpCX, a, b),
	}
}
