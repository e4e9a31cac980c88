package ir

import (
	"errors"
	"fmt"

	"github.com/nwqec-go/transpiler/pauli"
)

// Sentinel fatal errors for the invariant-violation taxonomy of
// spec.md section 7. Callers should test with errors.Is.
var (
	ErrQubitOutOfRange  = errors.New("ir: qubit index out of range")
	ErrClbitOutOfRange  = errors.New("ir: clbit index out of range")
	ErrMixedOpForms     = errors.New("ir: gate-form and Pauli-form ops cannot coexist")
	ErrPauliLengthWrong = errors.New("ir: pauli word length does not match qubit count")
	ErrMissingPauli     = errors.New("ir: pauli-form op missing its Pauli word")
)

// Circuit is the shared intermediate representation every pass
// consumes and produces: a qubit/clbit register pair plus an ordered
// operation sequence in program order (earliest first).
type Circuit struct {
	NumQubits int
	NumClbits int

	ops []Operation

	// MeasureSign records, per classical bit, the sign flip
	// RemovePauli and CliffordReduction fold into a measurement
	// outcome when they commute a Pauli gate past it instead of
	// emitting it. +1 means unchanged, -1 means the recorded
	// classical bit is the logical complement of the raw
	// measurement outcome.
	MeasureSign map[int]int8
}

// New returns an empty circuit with the given register sizes.
func New(numQubits, numClbits int) *Circuit {
	return &Circuit{NumQubits: numQubits, NumClbits: numClbits}
}

// AddOp appends op to the end of the circuit and validates it.
func (c *Circuit) AddOp(op Operation) error {
	c.ops = append(c.ops, op)
	if err := c.Validate(); err != nil {
		c.ops = c.ops[:len(c.ops)-1]
		return err
	}
	return nil
}

// Ops returns the ordered operation sequence. The returned slice is a
// copy; callers must go through ReplaceOps to commit a rewrite.
func (c *Circuit) Ops() []Operation {
	out := make([]Operation, len(c.ops))
	copy(out, c.ops)
	return out
}

// NumOps returns the number of operations in the circuit.
func (c *Circuit) NumOps() int { return len(c.ops) }

// ReplaceOps atomically replaces the operation sequence.
// NumQubits/NumClbits are unchanged.
func (c *Circuit) ReplaceOps(ops []Operation) error {
	prev := c.ops
	c.ops = ops
	if err := c.Validate(); err != nil {
		c.ops = prev
		return err
	}
	return nil
}

// CountOps returns the number of operations of each kind present.
func (c *Circuit) CountOps() map[Kind]int {
	counts := make(map[Kind]int)
	for _, op := range c.ops {
		counts[op.Kind]++
	}
	return counts
}

// Depth computes the longest chain of shared-qubit dependencies, per
// spec.md section 4.1: each op advances max(frontier[q]) + 1 (or +0
// for BARRIER, which only synchronizes) and writes the result back to
// every qubit it touches.
func (c *Circuit) Depth() int {
	frontier := make([]int, c.NumQubits)
	best := 0
	for _, op := range c.ops {
		touched := touchedQubits(op)
		if len(touched) == 0 {
			continue
		}
		m := 0
		for _, q := range touched {
			if frontier[q] > m {
				m = frontier[q]
			}
		}
		advance := 1
		if op.Kind == OpBARRIER {
			advance = 0
		}
		next := m + advance
		for _, q := range touched {
			frontier[q] = next
		}
		if next > best {
			best = next
		}
	}
	return best
}

func touchedQubits(op Operation) []int {
	if op.Kind.IsPauliForm() {
		if op.Pauli == nil {
			return nil
		}
		qs := make([]int, 0, op.Pauli.Len())
		for i := 0; i < op.Pauli.Len(); i++ {
			if op.Pauli.At(i) != pauli.I {
				qs = append(qs, i)
			}
		}
		return qs
	}
	return op.Qubits
}

// IsCliffordT reports whether every op belongs to the Clifford+T+
// measurement/reset/barrier gate set.
func (c *Circuit) IsCliffordT() bool {
	for _, op := range c.ops {
		if !cliffordTSet[op.Kind] {
			return false
		}
	}
	return true
}

// Validate checks the invariants of spec.md section 3: qubit/clbit
// indices in range, no mixing of gate-form (other than BARRIER) and
// Pauli-form ops, and every Pauli word's length matches NumQubits.
func (c *Circuit) Validate() error {
	sawGate, sawPauli := false, false
	for i, op := range c.ops {
		for _, q := range op.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("op %d (%s): %w: %d", i, op.Kind, ErrQubitOutOfRange, q)
			}
		}
		for _, cb := range op.Clbits {
			if cb < 0 || cb >= c.NumClbits {
				return fmt.Errorf("op %d (%s): %w: %d", i, op.Kind, ErrClbitOutOfRange, cb)
			}
		}
		if op.Kind.IsPauliForm() {
			if op.Pauli == nil {
				return fmt.Errorf("op %d (%s): %w", i, op.Kind, ErrMissingPauli)
			}
			if op.Pauli.Len() != c.NumQubits {
				return fmt.Errorf("op %d (%s): %w: got %d want %d", i, op.Kind, ErrPauliLengthWrong, op.Pauli.Len(), c.NumQubits)
			}
			sawPauli = true
		} else if op.Kind != OpBARRIER {
			sawGate = true
		}
	}
	if sawGate && sawPauli {
		return ErrMixedOpForms
	}
	return nil
}

// IsPBC reports whether the circuit is already a Pauli-based circuit:
// it contains at least one Pauli-form op and no non-BARRIER gate-form op.
func (c *Circuit) IsPBC() bool {
	sawPauli := false
	for _, op := range c.ops {
		if op.Kind.IsPauliForm() {
			sawPauli = true
		} else if op.Kind != OpBARRIER {
			return false
		}
	}
	return sawPauli
}

// Clone returns a deep copy of the circuit, independent of c.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{NumQubits: c.NumQubits, NumClbits: c.NumClbits}
	out.ops = make([]Operation, len(c.ops))
	for i, op := range c.ops {
		out.ops[i] = op.Clone()
	}
	if c.MeasureSign != nil {
		out.MeasureSign = make(map[int]int8, len(c.MeasureSign))
		for k, v := range c.MeasureSign {
			out.MeasureSign[k] = v
		}
	}
	return out
}

// GrowClbits extends the classical register by n bits and returns the
// index of the first newly added bit. Used by passes that need an
// internal scratch clbit not visible in the original program (ToPBC's
// RESET lowering).
func (c *Circuit) GrowClbits(n int) int {
	start := c.NumClbits
	c.NumClbits += n
	return start
}

// FlipMeasureSign toggles the recorded sign for clbit cb (see
// MeasureSign); an absent entry defaults to +1 before the flip.
func (c *Circuit) FlipMeasureSign(cb int) {
	if c.MeasureSign == nil {
		c.MeasureSign = make(map[int]int8)
	}
	cur, ok := c.MeasureSign[cb]
	if !ok {
		cur = 1
	}
	c.MeasureSign[cb] = -cur
}
