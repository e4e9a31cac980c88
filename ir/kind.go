package ir

// Kind tags an Operation's variant: either a gate-form op (named
// qubits, explicit parameters) or a Pauli-form op (a Pauli word over
// all qubits). BARRIER is the one kind allowed to coexist with
// either family.
type Kind uint8

const (
	// Gate-form kinds.
	OpX Kind = iota
	OpY
	OpZ
	OpH
	OpS
	OpSDG
	OpT
	OpTDG
	OpSX
	OpSXDG
	OpCX
	OpCCX
	OpCZ
	OpSWAP
	OpRX
	OpRY
	OpRZ
	OpMEASURE
	OpRESET
	OpBARRIER

	// Pauli-form kinds.
	OpTPauli
	OpSPauli
	OpZPauli
	OpMPauli
)

var kindNames = map[Kind]string{
	OpX: "X", OpY: "Y", OpZ: "Z", OpH: "H", OpS: "S", OpSDG: "SDG",
	OpT: "T", OpTDG: "TDG", OpSX: "SX", OpSXDG: "SXDG",
	OpCX: "CX", OpCCX: "CCX", OpCZ: "CZ", OpSWAP: "SWAP",
	OpRX: "RX", OpRY: "RY", OpRZ: "RZ",
	OpMEASURE: "MEASURE", OpRESET: "RESET", OpBARRIER: "BARRIER",
	OpTPauli: "T_PAULI", OpSPauli: "S_PAULI", OpZPauli: "Z_PAULI", OpMPauli: "M_PAULI",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsPauliForm reports whether k is one of the four Pauli-rotation/
// measurement kinds.
func (k Kind) IsPauliForm() bool {
	switch k {
	case OpTPauli, OpSPauli, OpZPauli, OpMPauli:
		return true
	default:
		return false
	}
}

// IsGateForm reports whether k is a named-qubit gate kind, including
// BARRIER (which is allowed to coexist with either family).
func (k Kind) IsGateForm() bool {
	return !k.IsPauliForm()
}

// cliffordTSet is the gate set IsCliffordT checks membership against.
var cliffordTSet = map[Kind]bool{
	OpH: true, OpS: true, OpSDG: true, OpT: true, OpTDG: true,
	OpX: true, OpY: true, OpZ: true,
	OpCX: true, OpCZ: true, OpSWAP: true,
	OpMEASURE: true, OpRESET: true, OpBARRIER: true,
}
