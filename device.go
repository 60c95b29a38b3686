package qmeasure

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
Device owns a batched state tensor and mutates it in place through
single-qubit gate application. A Device must not be shared between
goroutines during a measurement; the expectation engine rotates its state.
*/
type Device interface {
	States() *StateTensor
	NWires() int
	ApplyGate(gate Gate, wire int) error
}

/*
QuantumDevice is the in-memory Device backing a simulated circuit.
*/
type QuantumDevice struct {
	nWires int
	batch  int
	states *StateTensor
}

func NewQuantumDevice(nWires, batch int) *QuantumDevice {
	errnie.Info("NewQuantumDevice - nWires %v, batch %v", nWires, batch)

	return &QuantumDevice{
		nWires: nWires,
		batch:  batch,
		states: NewStateTensor(batch, nWires),
	}
}

func (qd *QuantumDevice) States() *StateTensor { return qd.states }
func (qd *QuantumDevice) NWires() int          { return qd.nWires }

// SetStates replaces the state tensor; the batch size may change.
func (qd *QuantumDevice) SetStates(states *StateTensor) error {
	if states == nil {
		return fmt.Errorf("%w: nil state tensor", ErrInvalidShape)
	}

	if states.NWires() != qd.nWires {
		return fmt.Errorf(
			"%w: state has %d wires, device has %d",
			ErrInvalidShape, states.NWires(), qd.nWires,
		)
	}

	qd.states = states
	qd.batch = states.Batch()
	return nil
}

func (qd *QuantumDevice) ApplyGate(gate Gate, wire int) error {
	return qd.states.ApplyGate(gate, wire)
}

// Reset returns every batch element to |0...0⟩.
func (qd *QuantumDevice) Reset() {
	qd.states = NewStateTensor(qd.batch, qd.nWires)
}
