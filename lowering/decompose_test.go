package lowering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
)

func TestDecomposeSwap(t *testing.T) {
	c := ir.New(2, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpSWAP, 0, 1)))

	p := NewDecomposePass(pass.DefaultConfig())
	modified, err := p.Run(c)
	require.NoError(t, err)
	require.True(t, modified)

	ops := c.Ops()
	require.Len(t, ops, 3)
	for _, op := range ops {
		require.Equal(t, ir.OpCX, op.Kind)
	}
}

func TestDecomposeCZ(t *testing.T) {
	c := ir.New(2, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpCZ, 0, 1)))

	p := NewDecomposePass(pass.DefaultConfig())
	_, err := p.Run(c)
	require.NoError(t, err)

	ops := c.Ops()
	require.Equal(t, []ir.Kind{ir.OpH, ir.OpCX, ir.OpH}, []ir.Kind{ops[0].Kind, ops[1].Kind, ops[2].Kind})
}

func TestDecomposeCCXHasSevenTGates(t *testing.T) {
	c := ir.New(3, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpCCX, 0, 1, 2)))

	p := NewDecomposePass(pass.DefaultConfig())
	_, err := p.Run(c)
	require.NoError(t, err)

	tCount := 0
	cxCount := 0
	for _, op := range c.Ops() {
		switch op.Kind {
		case ir.OpT, ir.OpTDG:
			tCount++
		case ir.OpCX:
			cxCount++
		}
	}
	require.Equal(t, 7, tCount)
	require.Equal(t, 6, cxCount)
}

func TestDecomposeKeepCCXLeavesItIntact(t *testing.T) {
	c := ir.New(3, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpCCX, 0, 1, 2)))

	cfg := pass.DefaultConfig()
	cfg.KeepCCX = true
	p := NewDecomposePass(cfg)
	modified, err := p.Run(c)
	require.NoError(t, err)
	require.False(t, modified)
	require.Len(t, c.Ops(), 1)
	require.Equal(t, ir.OpCCX, c.Ops()[0].Kind)
}

func TestDecomposeIsIdempotent(t *testing.T) {
	c := ir.New(2, 0)
	require.NoError(t, c.AddOp(ir.Gate(ir.OpSWAP, 0, 1)))

	p := NewDecomposePass(pass.DefaultConfig())
	_, err := p.Run(c)
	require.NoError(t, err)

	modified, err := p.Run(c)
	require.NoError(t, err)
	require.False(t, modified)
}
