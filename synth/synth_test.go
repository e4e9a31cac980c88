package synth

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nwqec-go/transpiler/ir"
	"github.com/nwqec-go/transpiler/pass"
)

func resetBackend() {
	mu.Lock()
	backend = nil
	mu.Unlock()
	memo = sync.Map{}
}

func TestUnavailableWithNoBackend(t *testing.T) {
	resetBackend()
	require.False(t, Available())
	_, ok := NewSynthesizeRzPass(-1)
	require.False(t, ok)
}

func TestSynthesizeRzExpandsLetters(t *testing.T) {
	resetBackend()
	calls := 0
	Register(func(angle, epsilon float64) ([]Letter, error) {
		calls++
		return []Letter{LH, LT, LH}, nil
	})
	require.True(t, Available())

	p, ok := NewSynthesizeRzPass(1e-6)
	require.True(t, ok)

	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.Rotation(ir.OpRZ, 0, 0.123)))

	modified, err := p.Run(c)
	require.NoError(t, err)
	require.True(t, modified)

	ops := c.Ops()
	require.Len(t, ops, 3)
	require.Equal(t, ir.OpH, ops[0].Kind)
	require.Equal(t, ir.OpT, ops[1].Kind)
	require.Equal(t, ir.OpH, ops[2].Kind)
	require.Equal(t, 1, calls)
}

func TestSynthesizeRzMemoizesRepeatedAngles(t *testing.T) {
	resetBackend()
	calls := 0
	Register(func(angle, epsilon float64) ([]Letter, error) {
		calls++
		return []Letter{LT}, nil
	})

	p, ok := NewSynthesizeRzPass(1e-6)
	require.True(t, ok)

	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.Rotation(ir.OpRZ, 0, 0.5)))
	require.NoError(t, c.AddOp(ir.Rotation(ir.OpRZ, 0, 0.5)))

	_, err := p.Run(c)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestSynthesizeRzPropagatesBackendError(t *testing.T) {
	resetBackend()
	wantErr := errors.New("synthesis failed")
	Register(func(angle, epsilon float64) ([]Letter, error) {
		return nil, wantErr
	})

	p, ok := NewSynthesizeRzPass(1e-6)
	require.True(t, ok)

	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.Rotation(ir.OpRZ, 0, 0.5)))

	_, err := p.Run(c)
	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
}

func TestRegisteredAsPassConstructor(t *testing.T) {
	resetBackend()
	Register(func(angle, epsilon float64) ([]Letter, error) {
		return []Letter{LZ}, nil
	})

	c := ir.New(1, 0)
	require.NoError(t, c.AddOp(ir.Rotation(ir.OpRZ, 0, 0.1)))

	_, err := pass.Execute(c, []pass.Type{pass.SynthesizeRz}, pass.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, ir.OpZ, c.Ops()[0].Kind)
}
