package ir

import "github.com/nwqec-go/transpiler/pauli"

// Operation is a single circuit instruction. Gate-form kinds use
// Qubits/Params/Clbits; Pauli-form kinds use Pauli (qubits/params are
// unused and left empty). Operations are value objects: passes build
// a new slice rather than mutating one in place (see
// Circuit.ReplaceOps).
type Operation struct {
	Kind   Kind
	Qubits []int
	Params []float64
	Clbits []int
	Pauli  *pauli.Word
}

// Gate constructs a gate-form operation with no parameters.
func Gate(k Kind, qubits ...int) Operation {
	return Operation{Kind: k, Qubits: append([]int(nil), qubits...)}
}

// Rotation constructs a single-qubit rotation (RX/RY/RZ).
func Rotation(k Kind, q int, theta float64) Operation {
	return Operation{Kind: k, Qubits: []int{q}, Params: []float64{theta}}
}

// Measure constructs a MEASURE operation.
func Measure(q, c int) Operation {
	return Operation{Kind: OpMEASURE, Qubits: []int{q}, Clbits: []int{c}}
}

// Barrier constructs a BARRIER operation over the given qubits.
func Barrier(qubits ...int) Operation {
	return Operation{Kind: OpBARRIER, Qubits: append([]int(nil), qubits...)}
}

// PauliRotation constructs a Pauli-form rotation (T_PAULI/S_PAULI/Z_PAULI).
func PauliRotation(k Kind, p *pauli.Word) Operation {
	return Operation{Kind: k, Pauli: p}
}

// PauliMeasure constructs an M_PAULI operation observing p onto clbit c.
func PauliMeasure(p *pauli.Word, c int) Operation {
	return Operation{Kind: OpMPauli, Pauli: p, Clbits: []int{c}}
}

// Clone returns a deep copy of op; the Qubits/Params/Clbits slices
// and the Pauli word (if any) are independent of the original.
func (op Operation) Clone() Operation {
	out := Operation{Kind: op.Kind}
	if op.Qubits != nil {
		out.Qubits = append([]int(nil), op.Qubits...)
	}
	if op.Params != nil {
		out.Params = append([]float64(nil), op.Params...)
	}
	if op.Clbits != nil {
		out.Clbits = append([]int(nil), op.Clbits...)
	}
	if op.Pauli != nil {
		out.Pauli = op.Pauli.Clone()
	}
	return out
}
