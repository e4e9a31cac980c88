// Package pass defines the pass interface and the pass manager that
// drives a circuit through an ordered pipeline of passes, in the
// spirit of the teacher's layering.Compile / ir.Optimize pipeline
// stages, generalized to the spec's declarative Pass/Config contract.
package pass

import "github.com/nwqec-go/transpiler/ir"

// Pass is a pure transformation over a circuit: it mutates c in
// place (via AddOp/ReplaceOps, which both re-validate) and reports
// whether it changed anything.
type Pass interface {
	Run(c *ir.Circuit) (modified bool, err error)
}

// Config holds the recognized PassConfig knobs from spec.md section 4.2.
type Config struct {
	// KeepCCX, if true, leaves CCX intact in Decompose instead of
	// expanding it to the canonical 6-CX T-depth-3 form.
	KeepCCX bool
	// KeepCX, if true, retains CX gates where legal in ToPBC instead
	// of rewriting them to Pauli rotations/measurements.
	KeepCX bool
	// EpsilonOverride is the absolute precision target for
	// SynthesizeRz. A negative value (the default) means "use the
	// pass's own default".
	EpsilonOverride float64
	// Silent suppresses the per-pass statistics table.
	Silent bool
}

// DefaultConfig returns the zero-value Config with EpsilonOverride
// set to its "use pass default" sentinel.
func DefaultConfig() Config {
	return Config{EpsilonOverride: -1}
}

// Type enumerates the available pass kinds. Names are part of the
// public API surface (spec.md section 4.2).
type Type uint8

const (
	Decompose Type = iota
	RemoveTrivialRz
	GateFusion
	RemovePauli
	ToPBC
	CliffordReduction
	SynthesizeRz
	Tfuse
)

var typeNames = map[Type]string{
	Decompose:         "DECOMPOSE",
	RemoveTrivialRz:   "REMOVE_TRIVIAL_RZ",
	GateFusion:        "GATE_FUSION",
	RemovePauli:       "REMOVE_PAULI",
	ToPBC:             "TO_PBC",
	CliffordReduction: "CLIFFORD_REDUCTION",
	SynthesizeRz:      "SYNTHESIZE_RZ",
	Tfuse:             "TFUSE",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Predefined pass sequences (spec.md section 4.2), plus two restored
// from the original implementation's PassSequences namespace (see
// SPEC_FULL.md section I): ToCliffordTRZ and PostSynthesisCleanup.
var (
	ToCliffordT = []Type{Decompose, RemoveTrivialRz, SynthesizeRz, GateFusion}

	ToCliffordTRZ = []Type{Decompose, RemoveTrivialRz}

	ToPBCSequence = []Type{Decompose, RemoveTrivialRz, SynthesizeRz, ToPBC}

	ToPBCOptimized = append(append([]Type{}, ToPBCSequence...), Tfuse)

	ToCliffordReduction = []Type{Decompose, RemoveTrivialRz, SynthesizeRz, CliffordReduction}

	Cleanup = []Type{GateFusion, RemoveTrivialRz}

	PostSynthesisCleanup = []Type{GateFusion, RemoveTrivialRz}
)
