package ir

import (
	"math"
	"testing"

	"github.com/nwqec-go/transpiler/pauli"
	"github.com/stretchr/testify/require"
)

func TestAddOpValidatesBounds(t *testing.T) {
	c := New(2, 1)
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	err := c.AddOp(Gate(OpX, 5))
	require.ErrorIs(t, err, ErrQubitOutOfRange)
	require.Equal(t, 1, c.NumOps())
}

func TestMixedFormsRejected(t *testing.T) {
	c := New(1, 0)
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	op := PauliRotation(OpTPauli, pauli.NewSingle(1, 0, pauli.Z))
	err := c.AddOp(op)
	require.ErrorIs(t, err, ErrMixedOpForms)
}

func TestBarrierCoexistsWithBothForms(t *testing.T) {
	c := New(1, 0)
	require.NoError(t, c.AddOp(Barrier(0)))
	require.NoError(t, c.AddOp(PauliRotation(OpTPauli, pauli.NewSingle(1, 0, pauli.Z))))
}

func TestDepthEmptyCircuit(t *testing.T) {
	c := New(3, 0)
	require.Equal(t, 0, c.Depth())
}

func TestDepthLinearChain(t *testing.T) {
	c := New(2, 2)
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	require.NoError(t, c.AddOp(Gate(OpCX, 0, 1)))
	require.NoError(t, c.AddOp(Rotation(OpRZ, 1, math.Pi/4)))
	require.NoError(t, c.AddOp(Gate(OpCX, 0, 1)))
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	require.NoError(t, c.AddOp(Measure(1, 0)))
	require.GreaterOrEqual(t, c.Depth(), 5)
}

func TestBarrierDoesNotAdvanceDepth(t *testing.T) {
	c := New(1, 0)
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	require.NoError(t, c.AddOp(Barrier(0)))
	require.Equal(t, 1, c.Depth())
}

func TestIsCliffordT(t *testing.T) {
	c := New(1, 0)
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	require.NoError(t, c.AddOp(Gate(OpT, 0)))
	require.True(t, c.IsCliffordT())
	require.NoError(t, c.AddOp(Rotation(OpRZ, 0, 0.1234)))
	require.False(t, c.IsCliffordT())
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New(2, 1)
	require.NoError(t, c.AddOp(Gate(OpH, 0)))
	require.NoError(t, c.AddOp(Gate(OpCX, 0, 1)))
	require.NoError(t, c.AddOp(Measure(1, 0)))
	c.FlipMeasureSign(0)

	snap, err := Snapshot(c)
	require.NoError(t, err)
	require.Equal(t, c.NumQubits, snap.NumQubits)
	require.Equal(t, c.NumClbits, snap.NumClbits)
	require.Equal(t, c.Ops(), snap.Ops())
	require.Equal(t, c.MeasureSign, snap.MeasureSign)
}

func TestSnapshotRoundTripWithPauli(t *testing.T) {
	c := New(2, 1)
	require.NoError(t, c.AddOp(PauliRotation(OpTPauli, pauli.NewSingle(2, 0, pauli.Z))))
	require.NoError(t, c.AddOp(PauliMeasure(pauli.NewSingle(2, 1, pauli.X), 0)))

	snap, err := Snapshot(c)
	require.NoError(t, err)
	got := snap.Ops()
	require.Len(t, got, 2)
	require.True(t, got[0].Pauli.Equal(pauli.NewSingle(2, 0, pauli.Z)))
	require.True(t, got[1].Pauli.Equal(pauli.NewSingle(2, 1, pauli.X)))
}
