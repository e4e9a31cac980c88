// Package synth provides the pluggable RZ-to-Clifford+T synthesis
// backend (spec.md section 4.4). The synthesis arithmetic itself
// (gridsynth or equivalent) is out of scope for this module; synth
// only defines the plug point and the pass that calls through it,
// mirroring the teacher's optional native-backend pattern
// (a global function value behind a mutex, gated by an availability
// flag) in pure Go rather than cgo.
package synth

import (
	"fmt"
	"math"
	"sync"

	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
)

// Letter is a single-qubit Clifford+T gate, the alphabet a Backend
// synthesizes an RZ rotation into.
type Letter uint8

const (
	LH Letter = iota
	LS
	LSDG
	LT
	LTDG
	LX
	LY
	LZ
)

// Backend synthesizes an RZ(angle) rotation into a sequence of
// Clifford+T letters accurate to within epsilon. It is supplied by an
// external gridsynth-binding package via Register; this module never
// implements one itself.
type Backend func(angle, epsilon float64) ([]Letter, error)

var (
	mu      sync.RWMutex
	backend Backend
)

// Register installs b as the active synthesis backend. Intended to be
// called from an external binding package's init(), not from this
// module.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
}

// Available reports whether a backend has been registered.
func Available() bool {
	mu.RLock()
	defer mu.RUnlock()
	return backend != nil
}

func current() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// defaultEpsilon is used when pass.Config.EpsilonOverride is negative
// (the "use the pass's own default" sentinel from pass.DefaultConfig).
const defaultEpsilon = 1e-10

// memoKey is the (rounded angle, epsilon) memoization key: repeated
// angles in one circuit, or across concurrent transpiles sharing a
// process, synthesize once.
type memoKey struct {
	angle   float64
	epsilon float64
}

var memo sync.Map // memoKey -> []Letter

func roundAngle(theta float64) float64 {
	const scale = 1 << 20
	return math.Round(theta*scale) / scale
}

// SynthesizeRzPass replaces each remaining RZ(theta) with the letter
// sequence the registered Backend returns for it, expanded to
// single-qubit Clifford+T gates on the same qubit.
type SynthesizeRzPass struct {
	epsilon float64
}

// NewSynthesizeRzPass is registered as the SynthesizeRz pass
// constructor. It reports unavailable (ok=false) when no backend has
// been registered, which is the signal pass.Manager.Run uses to warn
// and skip this pass type rather than fail the pipeline.
func NewSynthesizeRzPass(epsilon float64) (pass.Pass, bool) {
	if !Available() {
		return nil, false
	}
	if epsilon < 0 {
		epsilon = defaultEpsilon
	}
	return &SynthesizeRzPass{epsilon: epsilon}, true
}

func (p *SynthesizeRzPass) Run(c *ir.Circuit) (bool, error) {
	b := current()
	if b == nil {
		return false, nil
	}

	ops := c.Ops()
	out := make([]ir.Operation, 0, len(ops))
	modified := false

	for _, op := range ops {
		if op.Kind != ir.OpRZ {
			out = append(out, op)
			continue
		}

		q := op.Qubits[0]
		letters, err := p.synthesize(b, op.Params[0])
		if err != nil {
			return false, fmt.Errorf("synth: RZ(%g) on qubit %d: %w", op.Params[0], q, err)
		}
		for _, l := range letters {
			out = append(out, letterGate(l, q))
		}
		modified = true
	}

	if err := c.ReplaceOps(out); err != nil {
		return false, err
	}
	return modified, nil
}

func (p *SynthesizeRzPass) synthesize(b Backend, theta float64) ([]Letter, error) {
	key := memoKey{angle: roundAngle(theta), epsilon: p.epsilon}
	if cached, ok := memo.Load(key); ok {
		return cached.([]Letter), nil
	}
	letters, err := b(theta, p.epsilon)
	if err != nil {
		return nil, err
	}
	memo.Store(key, letters)
	return letters, nil
}

// letterGate maps a single synthesized Clifford+T letter to the
// corresponding single-qubit gate operation.
func letterGate(l Letter, q int) ir.Operation {
	switch l {
	case LH:
		return ir.Gate(ir.OpH, q)
	case LS:
		return ir.Gate(ir.OpS, q)
	case LSDG:
		return ir.Gate(ir.OpSDG, q)
	case LT:
		return ir.Gate(ir.OpT, q)
	case LTDG:
		return ir.Gate(ir.OpTDG, q)
	case LX:
		return ir.Gate(ir.OpX, q)
	case LY:
		return ir.Gate(ir.OpY, q)
	default:
		return ir.Gate(ir.OpZ, q)
	}
}

func init() {
	pass.Register(pass.SynthesizeRz, func(cfg pass.Config) (pass.Pass, bool) {
		return NewSynthesizeRzPass(cfg.EpsilonOverride)
	})
}
