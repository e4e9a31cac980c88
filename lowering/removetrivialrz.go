package lowering

import "github.com/nwqec-go/transpiler/ir"

// RemoveTrivialRzPass drops every RZ(theta) whose angle reduces to a
// multiple of 2*pi within tolerance, and replaces RZ(+-pi),
// RZ(+-pi/2), RZ(+-pi/4) with Z, S/SDG, T/TDG respectively (spec.md
// section 4.3).
type RemoveTrivialRzPass struct{}

// NewRemoveTrivialRzPass always succeeds; this pass has no external
// backend dependency.
func NewRemoveTrivialRzPass() *RemoveTrivialRzPass { return &RemoveTrivialRzPass{} }

func (p *RemoveTrivialRzPass) Run(c *ir.Circuit) (bool, error) {
	ops := c.Ops()
	out := make([]ir.Operation, 0, len(ops))
	modified := false

	for _, op := range ops {
		if op.Kind != ir.OpRZ {
			out = append(out, op)
			continue
		}
		newOp, drop, snapped := snapRZ(op.Qubits[0], op.Params[0])
		if drop {
			modified = true
			continue
		}
		if snapped {
			modified = true
			out = append(out, newOp)
			continue
		}
		out = append(out, op)
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}
