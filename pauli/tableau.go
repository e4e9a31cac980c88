package pauli

import "github.com/bits-and-blooms/bitset"

// Tableau tracks a running Clifford prefix as its action on the 2n
// Pauli generators X_0..X_{n-1}, Z_0..Z_{n-1}, using the standard
// CHP (Aaronson-Gottesman) stabilizer update rules. It is the
// representation ToPBC builds and consumes (see package pbc); Tfuse
// and CliffordReduction work on Words directly. The same per-word
// conjugation rules
// (ConjugateH, ConjugateCX, ...) double as the Clifford-commutation
// engine RemovePauli uses to push a trailing Pauli gate forward
// through the rest of the circuit.
type Tableau struct {
	n     int
	xRows []*Word // xRows[q] is the current image of X_q
	zRows []*Word // zRows[q] is the current image of Z_q
}

// NewTableau returns the identity tableau over n qubits.
func NewTableau(n int) *Tableau {
	t := &Tableau{n: n, xRows: make([]*Word, n), zRows: make([]*Word, n)}
	for q := 0; q < n; q++ {
		t.xRows[q] = NewSingle(n, q, X)
		t.zRows[q] = NewSingle(n, q, Z)
	}
	return t
}

// RowForX returns a copy of the current image of X_q.
func (t *Tableau) RowForX(q int) *Word { return t.xRows[q].Clone() }

// RowForZ returns a copy of the current image of Z_q.
func (t *Tableau) RowForZ(q int) *Word { return t.zRows[q].Clone() }

func (t *Tableau) rows() []*Word {
	all := make([]*Word, 0, 2*t.n)
	all = append(all, t.xRows...)
	all = append(all, t.zRows...)
	return all
}

func setBit(b *bitset.BitSet, i int, v bool) {
	if v {
		b.Set(uint(i))
	} else {
		b.Clear(uint(i))
	}
}

// ConjugateH updates w in place for conjugation by an H gate on qubit q.
func (w *Word) ConjugateH(q int) {
	x, z := w.xs.Test(uint(q)), w.zs.Test(uint(q))
	if x && z {
		w.sign = -w.sign
	}
	setBit(w.zs, q, x)
	setBit(w.xs, q, z)
}

// ConjugateS updates w in place for conjugation by an S gate on qubit q.
func (w *Word) ConjugateS(q int) {
	x, z := w.xs.Test(uint(q)), w.zs.Test(uint(q))
	if x && z {
		w.sign = -w.sign
	}
	if x {
		setBit(w.zs, q, !z)
	}
}

// ConjugateSdg updates w in place for conjugation by an SDG gate (S^3).
func (w *Word) ConjugateSdg(q int) {
	w.ConjugateS(q)
	w.ConjugateS(q)
	w.ConjugateS(q)
}

// ConjugateCX is the CHP CNOT update rule: r ^= x_c & z_t & (x_t XOR
// z_c XOR 1); x_t ^= x_c; z_c ^= z_t.
func (w *Word) ConjugateCX(c, tq int) {
	xc, zc := w.xs.Test(uint(c)), w.zs.Test(uint(c))
	xt, zt := w.xs.Test(uint(tq)), w.zs.Test(uint(tq))
	if xc && zt && !(xt != zc) {
		w.sign = -w.sign
	}
	setBit(w.xs, tq, xt != xc)
	setBit(w.zs, c, zc != zt)
}

// ConjugateCZ updates w for conjugation by a CZ gate via H(target)-CX-H(target).
func (w *Word) ConjugateCZ(c, tq int) {
	w.ConjugateH(tq)
	w.ConjugateCX(c, tq)
	w.ConjugateH(tq)
}

// ConjugateSwap updates w for conjugation by a SWAP gate via the
// standard three-CX expansion.
func (w *Word) ConjugateSwap(a, b int) {
	w.ConjugateCX(a, b)
	w.ConjugateCX(b, a)
	w.ConjugateCX(a, b)
}

func (w *Word) flipIfAnticommutes(q int, anticommutesWith func(Letter) bool) {
	if anticommutesWith(w.At(q)) {
		w.sign = -w.sign
	}
}

// ConjugateX updates w for conjugation by an X gate on qubit q.
func (w *Word) ConjugateX(q int) {
	w.flipIfAnticommutes(q, func(l Letter) bool { return l == Y || l == Z })
}

// ConjugateY updates w for conjugation by a Y gate on qubit q.
func (w *Word) ConjugateY(q int) {
	w.flipIfAnticommutes(q, func(l Letter) bool { return l == X || l == Z })
}

// ConjugateZ updates w for conjugation by a Z gate on qubit q.
func (w *Word) ConjugateZ(q int) {
	w.flipIfAnticommutes(q, func(l Letter) bool { return l == X || l == Y })
}

// ApplyH updates the tableau for an H gate on qubit q.
func (t *Tableau) ApplyH(q int) {
	for _, w := range t.rows() {
		w.ConjugateH(q)
	}
}

// ApplyS updates the tableau for an S gate on qubit q.
func (t *Tableau) ApplyS(q int) {
	for _, w := range t.rows() {
		w.ConjugateS(q)
	}
}

// ApplySdg updates the tableau for an SDG gate on qubit q (S^3).
func (t *Tableau) ApplySdg(q int) {
	for _, w := range t.rows() {
		w.ConjugateSdg(q)
	}
}

// ApplyCX updates the tableau for a CX gate, control c, target tq.
func (t *Tableau) ApplyCX(c, tq int) {
	for _, w := range t.rows() {
		w.ConjugateCX(c, tq)
	}
}

// ApplyCZ updates the tableau for a CZ gate via H(target)-CX-H(target).
func (t *Tableau) ApplyCZ(c, tq int) {
	for _, w := range t.rows() {
		w.ConjugateCZ(c, tq)
	}
}

// ApplySwap updates the tableau for a SWAP gate via the standard
// three-CX expansion.
func (t *Tableau) ApplySwap(a, b int) {
	for _, w := range t.rows() {
		w.ConjugateSwap(a, b)
	}
}

// ApplyX updates the tableau for an X gate on qubit q.
func (t *Tableau) ApplyX(q int) {
	for _, w := range t.rows() {
		w.ConjugateX(q)
	}
}

// ApplyY updates the tableau for a Y gate on qubit q.
func (t *Tableau) ApplyY(q int) {
	for _, w := range t.rows() {
		w.ConjugateY(q)
	}
}

// ResetQubit reinitializes qubit q's rows to the canonical |0> state
// generators X_q, Z_q, discarding whatever entanglement the rest of
// the tableau carried for it. Used by ToPBC's RESET lowering: once a
// qubit has been measured and reset, it is tracked as a fresh qubit
// going forward.
func (t *Tableau) ResetQubit(q int) {
	t.xRows[q] = NewSingle(t.n, q, X)
	t.zRows[q] = NewSingle(t.n, q, Z)
}

// ApplyZ updates the tableau for a Z gate on qubit q.
func (t *Tableau) ApplyZ(q int) {
	for _, w := range t.rows() {
		w.ConjugateZ(q)
	}
}
