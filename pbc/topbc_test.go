package pbc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pauli"
)

func TestToPBCTGateEmitsPauliRotation(t *testing.T) {
	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpT, 0)))

	p := NewToPBCPass(false)
	modified, err := p.Run(c)
	require.NoError(t, err)
	require.True(t, modified)

	ops := c.Ops()
	require.Len(t, ops, 1)
	require.Equal(t, ir.OpTPauli, ops[0].Kind)
	require.True(t, ops[0].Pauli.Equal(pauli.NewSingle(1, 0, pauli.Z)))
}

func TestToPBCHCXTHProducesZZRotation(t *testing.T) {
	// H(0); CX(0,1); T(1); H(0) -> [T_PAULI(+ZZ)]
	c := ir.New(2, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpH, 0)))
	require.NoError(t, c.AddOp(ir.Gate(ir.OpCX, 0, 1)))
	require.NoError(t, c.AddOp(ir.Gate(ir.OpT, 1)))
	require.NoError(t, c.AddOp(ir.Gate(ir.OpH, 0)))

	p := NewToPBCPass(false)
	_, err := p.Run(c)
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 1)
	require.Equal(t, ir.OpTPauli, ops[0].Kind)
	want, err := pauli.Parse("+ZZ")
	require.NoError(t, err)
	require.True(t, ops[0].Pauli.Equal(want))
	require.Equal(t, 1, c.Depth())
}

func TestToPBCMeasureEmitsMPauli(t *testing.T) {
	c := ir.New(1, 1)
	require.NoError(t, c.AddOp(ir.Measure(0, 0)))

	p := NewToPBCPass(false)
	_, err := p.Run(c)
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 1)
	require.Equal(t, ir.OpMPauli, ops[0].Kind)
	require.Equal(t, []int{0}, ops[0].Clbits)
}

func TestToPBCKeepCXPreservesPureCliffordCircuit(t *testing.T) {
	c := ir.New(2, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpH, 0)))
	require.NoError(t, c.AddOp(ir.Gate(ir.OpCX, 0, 1)))

	p := NewToPBCPass(true)
	_, err := p.Run(c)
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 2)
	require.Equal(t, ir.OpH, ops[0].Kind)
	require.Equal(t, ir.OpCX, ops[1].Kind)
}

func TestToPBCResetAllocatesScratchClbit(t *testing.T) {
	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpRESET, 0)))

	p := NewToPBCPass(false)
	_, err := p.Run(c)
	require.NoError(t, err)
	require.Equal(t, 1, c.NumClbits)
	ops := c.Ops()
	require.Equal(t, ir.OpMPauli, ops[0].Kind)
	require.Equal(t, []int{0}, ops[0].Clbits)
}
