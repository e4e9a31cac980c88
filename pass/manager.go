package pass

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/rlog"
)

// Constructor builds a Pass from a Config. The second return value
// is false when the pass's backend is unavailable (SynthesizeRz with
// no synthesis backend linked, per spec.md section 4.4); the manager
// warns and skips the pass type in that case.
type Constructor func(Config) (Pass, bool)

// defaultRegistry is populated by each pass-implementing package's
// init() (lowering, synth, pbc), so pass itself never imports them —
// that would create an import cycle, since those packages depend on
// the Pass/Config/Type declared here.
var defaultRegistry = map[Type]Constructor{}

// Register adds (or overrides) the constructor for a pass type in the
// default registry that every new Manager is seeded from.
func Register(t Type, ctor Constructor) {
	defaultRegistry[t] = ctor
}

// Manager runs an ordered list of passes over a circuit and, unless
// configured silent, emits a per-pass statistics table followed by a
// final statistics block (spec.md section 4.2).
type Manager struct {
	registry map[Type]Constructor
	// Out is the statistics table sink; defaults to os.Stdout. It is
	// a separate, write-only destination from the structured trace
	// log (package rlog) — the table is a user-facing report, not a
	// log line.
	Out io.Writer
}

// NewManager returns a Manager seeded with the default registry.
func NewManager() *Manager {
	reg := make(map[Type]Constructor, len(defaultRegistry))
	for k, v := range defaultRegistry {
		reg[k] = v
	}
	return &Manager{registry: reg, Out: os.Stdout}
}

// Register overrides the constructor used for pass type t on this
// manager only.
func (m *Manager) Register(t Type, ctor Constructor) {
	m.registry[t] = ctor
}

// Run executes passes over c in order, never reordering or
// deduplicating them and never retrying a fixpoint. It returns an
// error when a pass's Run fails (a fatal invariant violation surfaced
// by a circuit mutation, or a synthesis backend error) and stops at
// that pass; an unavailable pass is a warning, not an error.
func (m *Manager) Run(c *ir.Circuit, passes []Type, cfg Config) error {
	log := rlog.Logger()

	if !cfg.Silent {
		fmt.Fprintln(m.Out, "\n=== Pass Execution Summary ===")
		m.printHeader()
	}

	for _, t := range passes {
		ctor, ok := m.registry[t]
		if !ok {
			log.Warn().Str("pass", t.String()).Msg("unknown pass type, skipping")
			continue
		}
		p, available := ctor(cfg)
		if !available {
			log.Warn().Str("pass", t.String()).Msg("pass backend unavailable, skipping")
			continue
		}

		beforeTotal := c.NumOps()
		modified, err := p.Run(c)
		if err != nil {
			return fmt.Errorf("pass %s: %w", t, err)
		}

		if !cfg.Silent {
			m.printRow(t.String(), modified, beforeTotal, c.NumOps(), c.Depth())
		}
	}

	if !cfg.Silent {
		fmt.Fprintln(m.Out, "\n=== Final Statistics ===")
		m.printStats(c)
	}
	return nil
}

// Execute runs passes over c using a fresh Manager and returns c.
// Callers must not retain c after calling Execute: the circuit is
// consumed and mutated in place, mirroring the teacher's
// builder-is-consumed-by-Compile convention.
func Execute(c *ir.Circuit, passes []Type, cfg Config) (*ir.Circuit, error) {
	m := NewManager()
	if err := m.Run(c, passes, cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *Manager) printHeader() {
	fmt.Fprintf(m.Out, "%-25s%-10s%-15s%-15s%-10s\n", "Pass", "Modified", "Gates Before", "Gates After", "Depth")
	fmt.Fprintln(m.Out, strings.Repeat("-", 75))
}

func (m *Manager) printRow(name string, modified bool, before, after, depth int) {
	modStr := "No"
	if modified {
		modStr = "Yes"
	}
	fmt.Fprintf(m.Out, "%-25s%-10s%-15d%-15d%-10d\n", name, modStr, before, after, depth)
}

func (m *Manager) printStats(c *ir.Circuit) {
	counts := c.CountOps()
	kinds := make([]ir.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].String() < kinds[j].String() })

	total := 0
	for _, k := range kinds {
		fmt.Fprintf(m.Out, "%-12s%d\n", k.String(), counts[k])
		total += counts[k]
	}
	fmt.Fprintf(m.Out, "Total ops: %d\n", total)
	fmt.Fprintf(m.Out, "Depth: %d\n", c.Depth())
	fmt.Fprintf(m.Out, "Qubits: %d, Clbits: %d\n", c.NumQubits, c.NumClbits)
}
