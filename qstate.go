// qstate.go
package qmeasure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
StateTensor is a batch of dense multi-qubit amplitude vectors with the
logical shape [batch, 2, 2, ..., 2]. Amplitudes are stored row-major, so
wire 0 is the most significant qubit axis and wire n-1 the least.
*/
// MaxWires bounds the qubit count of a dense state tensor.
const MaxWires = 30

type StateTensor struct {
	batch  int
	nWires int
	data   []complex128
}

/*
NewStateTensor allocates a batch of nWires-qubit states, each initialised
to |0...0⟩. It panics on negative dimensions, on more than MaxWires wires,
or when the batch does not fit in a single buffer.
*/
func NewStateTensor(batch, nWires int) *StateTensor {
	if err := checkDims(batch, nWires); err != nil {
		panic(fmt.Sprintf("qmeasure: %v", err))
	}

	st := &StateTensor{
		batch:  batch,
		nWires: nWires,
		data:   make([]complex128, batch<<nWires),
	}

	for b := 0; b < batch; b++ {
		st.data[b<<nWires] = 1
	}

	return st
}

/*
NewStateTensorFromData wraps an existing amplitude buffer. The shape must
be a batch dimension followed by one axis of size 2 per qubit, and data
must hold exactly as many amplitudes as the shape describes. The buffer is
used in place, not copied.
*/
func NewStateTensorFromData(shape []int, data []complex128) (*StateTensor, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: missing batch axis", ErrInvalidShape)
	}

	if err := checkDims(shape[0], len(shape)-1); err != nil {
		return nil, err
	}

	for axis, dim := range shape[1:] {
		if dim != 2 {
			return nil, fmt.Errorf("%w: axis %d has size %d, want 2", ErrInvalidShape, axis+1, dim)
		}
	}

	nWires := len(shape) - 1
	if want := shape[0] << nWires; len(data) != want {
		return nil, fmt.Errorf("%w: shape %v needs %d amplitudes, got %d", ErrInvalidShape, shape, want, len(data))
	}

	return &StateTensor{batch: shape[0], nWires: nWires, data: data}, nil
}

func checkDims(batch, nWires int) error {
	if batch < 0 || nWires < 0 {
		return fmt.Errorf("%w: negative dimension batch=%d nWires=%d", ErrInvalidShape, batch, nWires)
	}

	if nWires > MaxWires {
		return fmt.Errorf("%w: %d wires exceeds %d", ErrInvalidShape, nWires, MaxWires)
	}

	if batch > math.MaxInt>>nWires {
		return fmt.Errorf("%w: batch %d of %d wires overflows", ErrInvalidShape, batch, nWires)
	}

	return nil
}

// Shape returns [batch, 2, ..., 2].
func (st *StateTensor) Shape() []int {
	shape := make([]int, st.nWires+1)
	shape[0] = st.batch
	for i := 1; i < len(shape); i++ {
		shape[i] = 2
	}
	return shape
}

func (st *StateTensor) Batch() int  { return st.batch }
func (st *StateTensor) NWires() int { return st.nWires }

// Data exposes the underlying row-major amplitude buffer.
func (st *StateTensor) Data() []complex128 { return st.data }

func (st *StateTensor) stride() int { return 1 << st.nWires }

func (st *StateTensor) offset(b int, bits []int) (int, error) {
	if b < 0 || b >= st.batch {
		return 0, fmt.Errorf("%w: batch index %d not in [0, %d)", ErrInvalidShape, b, st.batch)
	}

	if len(bits) != st.nWires {
		return 0, fmt.Errorf("%w: got %d qubit indices, want %d", ErrInvalidShape, len(bits), st.nWires)
	}

	idx := 0
	for wire, bit := range bits {
		if bit != 0 && bit != 1 {
			return 0, fmt.Errorf("%w: wire %d index %d", ErrWireOutOfRange, wire, bit)
		}
		idx = idx<<1 | bit
	}

	return b*st.stride() + idx, nil
}

// At returns the amplitude of basis state bits in batch element b.
func (st *StateTensor) At(b int, bits ...int) (complex128, error) {
	off, err := st.offset(b, bits)
	if err != nil {
		return 0, err
	}
	return st.data[off], nil
}

// Set overwrites the amplitude of basis state bits in batch element b.
func (st *StateTensor) Set(b int, amp complex128, bits ...int) error {
	off, err := st.offset(b, bits)
	if err != nil {
		return err
	}
	st.data[off] = amp
	return nil
}

func (st *StateTensor) Clone() *StateTensor {
	data := make([]complex128, len(st.data))
	copy(data, st.data)
	return &StateTensor{batch: st.batch, nWires: st.nWires, data: data}
}

/*
Probabilities returns the elementwise squared magnitude of every amplitude,
laid out exactly like the amplitude buffer. This is the joint probability
tensor over [batch, qubit_0, ..., qubit_{n-1}].
*/
func (st *StateTensor) Probabilities() []float64 {
	probs := make([]float64, len(st.data))
	for i, amplitude := range st.data {
		re, im := real(amplitude), imag(amplitude)
		probs[i] = re*re + im*im // Square of the modulus
	}
	return probs
}

/*
Normalized reports whether every batch element carries unit probability
mass within tol. The state is never renormalised.
*/
func (st *StateTensor) Normalized(tol float64) bool {
	probs := st.Probabilities()
	stride := st.stride()

	for b := 0; b < st.batch; b++ {
		if math.Abs(floats.Sum(probs[b*stride:(b+1)*stride])-1) > tol {
			return false
		}
	}

	return true
}

/*
ApplyGate applies a single-qubit unitary to one wire of every batch
element, in place.
*/
func (st *StateTensor) ApplyGate(gate Gate, wire int) error {
	if wire < 0 || wire >= st.nWires {
		return fmt.Errorf("%w: wire %d not in [0, %d)", ErrWireOutOfRange, wire, st.nWires)
	}

	if err := gate.Validate(); err != nil {
		return err
	}

	m00, m01 := gate.Matrix.At(0, 0), gate.Matrix.At(0, 1)
	m10, m11 := gate.Matrix.At(1, 0), gate.Matrix.At(1, 1)

	// Pairs differing only in this wire's bit sit step apart.
	step := 1 << (st.nWires - 1 - wire)
	for base := 0; base < len(st.data); base += 2 * step {
		for i := base; i < base+step; i++ {
			a0, a1 := st.data[i], st.data[i+step]
			st.data[i] = m00*a0 + m01*a1
			st.data[i+step] = m10*a0 + m11*a1
		}
	}

	return nil
}
