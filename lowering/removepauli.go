package lowering

import (
	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pauli"
)

// RemovePauliPass pushes bare X/Y/Z gates forward through the rest of
// the circuit instead of leaving them as explicit gates, folding them
// into later measurement signs wherever possible (spec.md section
// 4.3). It is implemented as a single forward pass carrying a pending
// Pauli "frame": the frame absorbs X/Y/Z gates via pauli.Compose, is
// conjugated through Clifford gates using the same rowsum rules
// package pauli uses for Tableau, is flushed back out as plain gates
// immediately before any non-Clifford op it cannot commute through,
// and is consumed into Circuit.MeasureSign at a MEASURE. A frame still
// pending at the end of the circuit is flushed as plain gates there.
// This is mathematically equivalent to repeatedly commuting each Pauli
// gate rightward one gate at a time, without the O(n^2) rewrite churn
// that literal repeated commutation would cause.
type RemovePauliPass struct{}

func NewRemovePauliPass() *RemovePauliPass { return &RemovePauliPass{} }

func (p *RemovePauliPass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	out := make([]ir.Operation, 0, len(ops))
	n := c.NumQubits
	frame := pauli.New(n)
	frameActive := false
	modified := false
	signFlips := map[int]int8{}

	flush := func() {
		if !frameActive || frame.IsIdentity() {
			frameActive = false
			frame = pauli.New(n)
			return
		}
		// The frame's accumulated sign is an unobservable global
		// phase once re-emitted as bare gates: two circuits differing
		// only by an overall phase are the same physical operation.
		for q := 0; q < n; q++ {
			switch frame.At(q) {
			case pauli.X:
				out = append(out, ir.Gate(ir.OpX, q))
			case pauli.Y:
				out = append(out, ir.Gate(ir.OpY, q))
			case pauli.Z:
				out = append(out, ir.Gate(ir.OpZ, q))
			}
		}
		frameActive = false
		frame = pauli.New(n)
	}

	for _, op := range ops {
		switch op.Kind {
		case ir.OpX, ir.OpY, ir.OpZ:
			q := op.Qubits[0]
			var l pauli.Letter
			switch op.Kind {
			case ir.OpX:
				l = pauli.X
			case ir.OpY:
				l = pauli.Y
			case ir.OpZ:
				l = pauli.Z
			}
			frame = pauli.Compose(frame, pauli.NewSingle(n, q, l))
			frameActive = true
			modified = true

		case ir.OpH:
			if frameActive {
				frame.ConjugateH(op.Qubits[0])
			}
			out = append(out, op)
		case ir.OpS:
			if frameActive {
				frame.ConjugateS(op.Qubits[0])
			}
			out = append(out, op)
		case ir.OpSDG:
			if frameActive {
				frame.ConjugateSdg(op.Qubits[0])
			}
			out = append(out, op)
		case ir.OpCX:
			if frameActive {
				frame.ConjugateCX(op.Qubits[0], op.Qubits[1])
			}
			out = append(out, op)
		case ir.OpCZ:
			if frameActive {
				frame.ConjugateCZ(op.Qubits[0], op.Qubits[1])
			}
			out = append(out, op)
		case ir.OpSWAP:
			if frameActive {
				frame.ConjugateSwap(op.Qubits[0], op.Qubits[1])
			}
			out = append(out, op)

		case ir.OpBARRIER:
			out = append(out, op)

		case ir.OpMEASURE:
			if frameActive {
				q := op.Qubits[0]
				// The X component of the pending frame at the
				// measured qubit is exactly the part that flips a
				// Z-basis measurement outcome (Y = iXZ carries an X
				// component too). Once consumed, that qubit's slot is
				// cleared; any pending letters on other qubits remain.
				if l := frame.At(q); l == pauli.X || l == pauli.Y {
					modified = true
					signFlips[op.Clbits[0]] ^= 1
				}
				frame.Set(q, pauli.I)
				frameActive = !frame.IsIdentity()
			}
			out = append(out, op)

		default:
			// Non-Clifford or otherwise opaque op: flush first so the
			// frame's effect is resolved before whatever comes next.
			flush()
			out = append(out, op)
		}
	}
	flush()

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	for cb, flip := range signFlips {
		if flip == 1 {
			c.FlipMeasureSign(cb)
		}
	}
	return modified, nil
}
