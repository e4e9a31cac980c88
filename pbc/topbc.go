// Package pbc implements the Pauli-based-circuit back-end: ToPBC,
// Tfuse and CliffordReduction (spec.md section 4.5), all operating on
// the shared ir/pauli types. This is the part of the pipeline that
// actually produces the optimized fault-tolerant target representation
// the rest of the passes prepare a circuit for.
package pbc

import (
	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
	"github.com/nwqec-go/transpiler/pauli"
)

// ToPBCPass walks a Clifford+T circuit maintaining a running Clifford
// tableau, converting every T/TDG into a T_PAULI rotation about the
// tableau's current image of Z_q, every MEASURE into an M_PAULI
// observing the same, and every RESET into an M_PAULI onto an internal
// scratch clbit with the qubit's tableau row reinitialized to
// represent the freshly-known |0> state (spec.md section 4.5's
// "implementation choice" for RESET). RZ gates, including RZ(k*pi/4),
// are not converted: they pass through unchanged like any other
// unrecognized gate. Clifford gates are absorbed into the tableau and
// not emitted, except that with keepCX a circuit that produces no
// Pauli-form op keeps its original gates.
type ToPBCPass struct {
	keepCX bool
}

func NewToPBCPass(keepCX bool) *ToPBCPass { return &ToPBCPass{keepCX: keepCX} }

func (p *ToPBCPass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	tab := pauli.NewTableau(c.NumQubits)
	out := make([]ir.Operation, 0, len(ops))
	sawPauliEmission := false
	modified := false

	for _, op := range ops {
		switch op.Kind {
		case ir.OpH:
			tab.ApplyH(op.Qubits[0])
			modified = true
		case ir.OpS:
			tab.ApplyS(op.Qubits[0])
			modified = true
		case ir.OpSDG:
			tab.ApplySdg(op.Qubits[0])
			modified = true
		case ir.OpX:
			tab.ApplyX(op.Qubits[0])
			modified = true
		case ir.OpY:
			tab.ApplyY(op.Qubits[0])
			modified = true
		case ir.OpZ:
			tab.ApplyZ(op.Qubits[0])
			modified = true
		case ir.OpCX:
			tab.ApplyCX(op.Qubits[0], op.Qubits[1])
			modified = true
		case ir.OpCZ:
			tab.ApplyCZ(op.Qubits[0], op.Qubits[1])
			modified = true
		case ir.OpSWAP:
			tab.ApplySwap(op.Qubits[0], op.Qubits[1])
			modified = true

		case ir.OpT:
			word := tab.RowForZ(op.Qubits[0])
			out = append(out, ir.PauliRotation(ir.OpTPauli, word))
			sawPauliEmission = true
			modified = true
		case ir.OpTDG:
			word := tab.RowForZ(op.Qubits[0])
			word.SetSign(-word.Sign())
			out = append(out, ir.PauliRotation(ir.OpTPauli, word))
			sawPauliEmission = true
			modified = true

		case ir.OpMEASURE:
			word := tab.RowForZ(op.Qubits[0])
			out = append(out, ir.PauliMeasure(word, op.Clbits[0]))
			sawPauliEmission = true
			modified = true

		case ir.OpRESET:
			q := op.Qubits[0]
			word := tab.RowForZ(q)
			aux := c.GrowClbits(1)
			out = append(out, ir.PauliMeasure(word, aux))
			tab.ResetQubit(q)
			sawPauliEmission = true
			modified = true

		case ir.OpBARRIER:
			out = append(out, op)

		default:
			// Non-Clifford, non-T/TDG gate reaching ToPBC is a
			// pipeline ordering error (Decompose/RemoveTrivialRz/
			// SynthesizeRz should have already run); pass it through
			// unchanged rather than silently discarding it.
			out = append(out, op)
		}
	}

	if p.keepCX && !sawPauliEmission {
		// Whole circuit was Clifford-only: nothing was ever observed
		// by a T-rotation or measurement, so the Pauli lowering above
		// would otherwise silently discard every gate. Re-emit the
		// original sequence unchanged instead.
		out = ops
		modified = false
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}

func init() {
	pass.Register(pass.ToPBC, func(cfg pass.Config) (pass.Pass, bool) {
		return NewToPBCPass(cfg.KeepCX), true
	})
}
