package ir

import "github.com/fxamacker/cbor/v2"

// snapshot is the wire form of a Circuit, used by MarshalBinary and
// UnmarshalBinary.
type snapshot struct {
	NumQubits   int
	NumClbits   int
	Ops         []Operation
	MeasureSign map[int]int8
}

// MarshalBinary encodes the circuit as CBOR.
func (c *Circuit) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(snapshot{
		NumQubits:   c.NumQubits,
		NumClbits:   c.NumClbits,
		Ops:         c.ops,
		MeasureSign: c.MeasureSign,
	})
}

// UnmarshalBinary decodes a circuit previously produced by
// MarshalBinary, replacing c's contents.
func (c *Circuit) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	c.NumQubits = s.NumQubits
	c.NumClbits = s.NumClbits
	c.ops = s.Ops
	c.MeasureSign = s.MeasureSign
	return nil
}

// Snapshot returns a deep copy of c obtained via the CBOR codec,
// sharing no live alias with c. The pass manager does not use it: its
// "before" statistic is read from NumOps before each pass runs.
func Snapshot(c *Circuit) (*Circuit, error) {
	data, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := &Circuit{}
	if err := out.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return out, nil
}
