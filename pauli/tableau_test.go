package pauli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableauHSwapsXZ(t *testing.T) {
	tab := NewTableau(1)
	tab.ApplyH(0)
	require.True(t, tab.RowForX(0).SameSupport(NewSingle(1, 0, Z)))
	require.True(t, tab.RowForZ(0).SameSupport(NewSingle(1, 0, X)))
}

func TestTableauCXEntanglesGenerators(t *testing.T) {
	tab := NewTableau(2)
	tab.ApplyCX(0, 1)
	// CX: X_0 -> X_0 X_1 ; Z_1 -> Z_0 Z_1 ; X_1 -> X_1 ; Z_0 -> Z_0
	want := New(2)
	want.Set(0, X)
	want.Set(1, X)
	require.True(t, tab.RowForX(0).Equal(want))
	require.True(t, tab.RowForX(1).Equal(NewSingle(2, 1, X)))
	require.True(t, tab.RowForZ(0).Equal(NewSingle(2, 0, Z)))
	wantZ1 := New(2)
	wantZ1.Set(0, Z)
	wantZ1.Set(1, Z)
	require.True(t, tab.RowForZ(1).Equal(wantZ1))
}

func TestTableauHSquaredIsIdentity(t *testing.T) {
	tab := NewTableau(1)
	tab.ApplyH(0)
	tab.ApplyH(0)
	require.True(t, tab.RowForX(0).Equal(NewSingle(1, 0, X)))
	require.True(t, tab.RowForZ(0).Equal(NewSingle(1, 0, Z)))
}

func TestTableauSFourTimesIsIdentity(t *testing.T) {
	tab := NewTableau(1)
	for i := 0; i < 4; i++ {
		tab.ApplyS(0)
	}
	require.True(t, tab.RowForX(0).Equal(NewSingle(1, 0, X)))
	require.True(t, tab.RowForZ(0).Equal(NewSingle(1, 0, Z)))
}

func TestTableauSMapsXToY(t *testing.T) {
	tab := NewTableau(1)
	tab.ApplyS(0)
	require.True(t, tab.RowForX(0).Equal(NewSingle(1, 0, Y)))
	require.True(t, tab.RowForZ(0).Equal(NewSingle(1, 0, Z)))
}
