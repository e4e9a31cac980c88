// Package pauli implements Pauli words and Clifford tableaux: the
// bit-packed representation the PBC back-end uses to track Pauli
// operators through a Clifford prefix (see ToPBC, Tfuse and
// CliffordReduction in package pbc).
package pauli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/fxamacker/cbor/v2"
)

// Letter is a single-qubit Pauli operator.
type Letter uint8

const (
	I Letter = iota
	X
	Y
	Z
)

func (l Letter) String() string {
	switch l {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// ErrMalformedWord is returned by Parse for strings outside the
// canonical "±p0p1...p_{n-1}" form.
var ErrMalformedWord = errors.New("pauli: malformed word")

// Word is a signed Pauli word over n qubits, stored as two bit
// vectors (X-part, Z-part) in the standard symplectic encoding:
// slot i is I iff neither bit is set, X iff only the X bit, Z iff
// only the Z bit, Y iff both. Qubit 0 is the leftmost letter in the
// canonical text form.
type Word struct {
	n    int
	xs   *bitset.BitSet
	zs   *bitset.BitSet
	sign int8 // +1 or -1
}

// New returns the identity word (all I, sign +1) over n qubits.
func New(n int) *Word {
	return &Word{n: n, xs: bitset.New(uint(n)), zs: bitset.New(uint(n)), sign: 1}
}

// NewSingle returns a word that is l at qubit q and I elsewhere.
func NewSingle(n, q int, l Letter) *Word {
	w := New(n)
	w.Set(q, l)
	return w
}

// Len returns the number of qubits the word is defined over.
func (w *Word) Len() int { return w.n }

// Sign returns the word's global sign, +1 or -1.
func (w *Word) Sign() int8 { return w.sign }

// SetSign overwrites the word's global sign; s must be +1 or -1.
func (w *Word) SetSign(s int8) { w.sign = s }

// At returns the letter at qubit i.
func (w *Word) At(i int) Letter {
	x, z := w.xs.Test(uint(i)), w.zs.Test(uint(i))
	switch {
	case x && z:
		return Y
	case x:
		return X
	case z:
		return Z
	default:
		return I
	}
}

// Set overwrites the letter at qubit i.
func (w *Word) Set(i int, l Letter) {
	switch l {
	case I:
		w.xs.Clear(uint(i))
		w.zs.Clear(uint(i))
	case X:
		w.xs.Set(uint(i))
		w.zs.Clear(uint(i))
	case Z:
		w.xs.Clear(uint(i))
		w.zs.Set(uint(i))
	case Y:
		w.xs.Set(uint(i))
		w.zs.Set(uint(i))
	}
}

// IsIdentity reports whether every slot is I (the sign may still be -1).
func (w *Word) IsIdentity() bool {
	return w.xs.None() && w.zs.None()
}

// Clone returns an independent copy of w.
func (w *Word) Clone() *Word {
	return &Word{n: w.n, xs: w.xs.Clone(), zs: w.zs.Clone(), sign: w.sign}
}

// SameSupport reports whether a and b are equal up to global sign.
func (a *Word) SameSupport(b *Word) bool {
	return a.n == b.n && a.xs.Equal(b.xs) && a.zs.Equal(b.zs)
}

// Equal reports whether a and b are identical, including sign.
func (a *Word) Equal(b *Word) bool {
	return a.sign == b.sign && a.SameSupport(b)
}

// String renders the canonical "±p0p1...p_{n-1}" text form.
func (w *Word) String() string {
	var sb strings.Builder
	if w.sign < 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for i := 0; i < w.n; i++ {
		sb.WriteString(w.At(i).String())
	}
	return sb.String()
}

// Parse parses the canonical "±p0p1...p_{n-1}" text form.
func Parse(s string) (*Word, error) {
	if len(s) < 1 {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedWord)
	}
	var sign int8
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return nil, fmt.Errorf("%w: %q missing leading sign", ErrMalformedWord, s)
	}
	body := s[1:]
	w := New(len(body))
	for i, c := range body {
		var l Letter
		switch c {
		case 'I':
			l = I
		case 'X':
			l = X
		case 'Y':
			l = Y
		case 'Z':
			l = Z
		default:
			return nil, fmt.Errorf("%w: %q has invalid letter %q", ErrMalformedWord, s, c)
		}
		w.Set(i, l)
	}
	w.sign = sign
	return w, nil
}

// MarshalCBOR encodes w as its canonical text form, so circuit
// snapshots (see ir.Circuit's CBOR codec) serialize Pauli-form ops
// without reaching into the bitset internals.
func (w *Word) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(w.String())
}

// UnmarshalCBOR decodes w from its canonical text form.
func (w *Word) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*w = *parsed
	return nil
}

// Commutes reports whether a and b commute as operators, via the
// symplectic inner product: Σ (x_a,i·z_b,i XOR z_a,i·x_b,i) mod 2.
func (a *Word) Commutes(b *Word) bool {
	return symplecticInner(a, b) == 0
}

func symplecticInner(a, b *Word) int {
	parity := 0
	n := a.n
	if b.n < n {
		n = b.n
	}
	for i := 0; i < n; i++ {
		ax, az := a.xs.Test(uint(i)), a.zs.Test(uint(i))
		bx, bz := b.xs.Test(uint(i)), b.zs.Test(uint(i))
		if ax && bz {
			parity ^= 1
		}
		if az && bx {
			parity ^= 1
		}
	}
	return parity
}

// g implements the single-qubit phase contribution of the
// Aaronson-Gottesman rowsum procedure for multiplying Pauli letters
// (x1,z1)*(x2,z2).
func g(x1, z1, x2, z2 bool) int {
	xi := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	switch {
	case !x1 && !z1:
		return 0
	case x1 && z1:
		return xi(z2) - xi(x2)
	case x1 && !z1:
		return xi(z2) * (2*xi(x2) - 1)
	default: // !x1 && z1
		return xi(x2) * (1 - 2*xi(z2))
	}
}

func mod4(e int) int {
	e %= 4
	if e < 0 {
		e += 4
	}
	return e
}

// Compose returns the Hermitian Pauli word obtained by commuting b
// through a: the ordinary product a*b when a and b commute, or
// i·a·b (the standard anticommutation rule P' <-> iPQ) when they do
// not. Either way the result is Hermitian with a real +-1 sign.
func Compose(a, b *Word) *Word {
	n := a.n
	e := 0
	for i := 0; i < n; i++ {
		ax, az := a.xs.Test(uint(i)), a.zs.Test(uint(i))
		bx, bz := b.xs.Test(uint(i)), b.zs.Test(uint(i))
		e += g(ax, az, bx, bz)
	}
	if a.sign < 0 {
		e += 2
	}
	if b.sign < 0 {
		e += 2
	}
	e = mod4(e)
	if !a.Commutes(b) {
		e = mod4(e + 1)
	}
	res := &Word{n: n, xs: a.xs.Clone(), zs: a.zs.Clone(), sign: 1}
	res.xs.InPlaceSymmetricDifference(b.xs)
	res.zs.InPlaceSymmetricDifference(b.zs)
	switch e {
	case 0:
		res.sign = 1
	case 2:
		res.sign = -1
	default:
		// Only reachable if a and b are not in the relationship the
		// caller promised (Hermitian result); keep the even part of
		// the phase rather than panicking on caller-supplied data.
		res.sign = 1
	}
	return res
}
