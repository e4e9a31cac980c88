package pbc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwqec-go/transpiler/ir"
)

func TestCliffordReductionDropsUnobservedTrailingSPauli(t *testing.T) {
	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.PauliRotation(ir.OpSPauli, mustWord(t, "+Z"))))

	p := NewCliffordReductionPass()
	modified, err := p.Run(c)
	require.NoError(t, err)
	require.True(t, modified)
	require.Empty(t, c.Ops())
}

func TestCliffordReductionFoldsSignIntoObservingMeasure(t *testing.T) {
	c := ir.New(1, 1)
	require.NoError(t, c.AddOp(ir.PauliRotation(ir.OpZPauli, mustWord(t, "-Z"))))
	require.NoError(t, c.AddOp(ir.PauliMeasure(mustWord(t, "+Z"), 0)))

	p := NewCliffordReductionPass()
	modified, err := p.Run(c)
	require.NoError(t, err)
	require.True(t, modified)

	ops := c.Ops()
	require.Len(t, ops, 1)
	require.Equal(t, ir.OpMPauli, ops[0].Kind)
	require.Equal(t, int8(-1), c.MeasureSign[0])
}

func TestCliffordReductionIsIdempotent(t *testing.T) {
	c := ir.New(1, 1)
	require.NoError(t, c.AddOp(ir.PauliRotation(ir.OpTPauli, mustWord(t, "+Z"))))
	require.NoError(t, c.AddOp(ir.PauliMeasure(mustWord(t, "+Z"), 0)))

	p := NewCliffordReductionPass()
	_, err := p.Run(c)
	require.NoError(t, err)
	before := c.Ops()

	modified, err := p.Run(c)
	require.NoError(t, err)
	require.False(t, modified)
	require.Equal(t, before, c.Ops())
}

func TestCliffordReductionSinksPastCommutingTPauli(t *testing.T) {
	// S_PAULI(+Z) commutes with T_PAULI(+Z) on the same qubit (same
	// support), so it sinks past to directly precede its observing
	// measurement without altering the T_PAULI in between.
	c := ir.New(1, 1)
	require.NoError(t, c.AddOp(ir.PauliRotation(ir.OpSPauli, mustWord(t, "+Z"))))
	require.NoError(t, c.AddOp(ir.PauliRotation(ir.OpTPauli, mustWord(t, "+Z"))))
	require.NoError(t, c.AddOp(ir.PauliMeasure(mustWord(t, "+Z"), 0)))

	p := NewCliffordReductionPass()
	_, err := p.Run(c)
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 2)
	require.Equal(t, ir.OpTPauli, ops[0].Kind)
	require.Equal(t, ir.OpMPauli, ops[1].Kind)
}
