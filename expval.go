package qmeasure

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Target pairs a wire with the observable measured on it.
type Target struct {
	Wire       int
	Observable Observable
}

/*
Expval computes the expectation value of each target's observable on its
wire, for every batch element of the device state.

Before any reduction, every diagonalizing gate of every target is applied
to the device, in request order. This rotates the shared state in place;
the device must be exclusively held by the caller for the whole call. A
wire that appears twice accumulates both rotation sequences.

The result is a [batch, len(targets)] matrix whose columns follow request
order. When either dimension is zero the result is an empty matrix.
*/
func Expval(dev Device, targets ...Target) (*mat.Dense, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	states := dev.States()
	if states == nil {
		return nil, fmt.Errorf("%w: device has no state tensor", ErrInvalidShape)
	}

	// Validate everything up front so a rejected call leaves the state untouched.
	for i, target := range targets {
		if err := validateTarget(target, states.NWires()); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
	}

	for _, target := range targets {
		for _, rotation := range target.Observable.DiagonalizingGates() {
			if err := dev.ApplyGate(rotation, target.Wire); err != nil {
				return nil, err
			}
		}
	}

	// The device may have swapped its tensor while rotating.
	states = dev.States()
	batch := states.Batch()

	if batch == 0 || len(targets) == 0 {
		return &mat.Dense{}, nil
	}

	probs := states.Probabilities()
	out := mat.NewDense(batch, len(targets), nil)
	col := make([]float64, batch)

	for j, target := range targets {
		eigvals := target.Observable.Eigvals()
		for b, row := range marginal(probs, batch, states.NWires(), target.Wire) {
			col[b] = floats.Dot(row, eigvals)
		}
		out.SetCol(j, col)
	}

	return out, nil
}

// ExpvalWire measures a single observable on a single wire.
func ExpvalWire(dev Device, wire int, obs Observable) (*mat.Dense, error) {
	return Expval(dev, Target{Wire: wire, Observable: obs})
}

func validateTarget(target Target, nWires int) error {
	if target.Wire < 0 || target.Wire >= nWires {
		return fmt.Errorf("%w: wire %d not in [0, %d)", ErrWireOutOfRange, target.Wire, nWires)
	}

	if target.Observable == nil {
		return fmt.Errorf("%w: nil observable on wire %d", ErrInvalidEigvals, target.Wire)
	}

	if n := len(target.Observable.Eigvals()); n != 2 {
		return fmt.Errorf("%w: %s has %d", ErrInvalidEigvals, target.Observable.Name(), n)
	}

	for _, rotation := range target.Observable.DiagonalizingGates() {
		if err := rotation.Validate(); err != nil {
			return err
		}
	}

	return nil
}

/*
Marginal sums the joint probability of every batch element over all wires
except wire, returning P(wire=0) and P(wire=1) per batch element.
*/
func (st *StateTensor) Marginal(wire int) ([][]float64, error) {
	if wire < 0 || wire >= st.nWires {
		return nil, fmt.Errorf("%w: wire %d not in [0, %d)", ErrWireOutOfRange, wire, st.nWires)
	}
	return marginal(st.Probabilities(), st.batch, st.nWires, wire), nil
}

func marginal(probs []float64, batch, nWires, wire int) [][]float64 {
	stride := 1 << nWires
	shift := nWires - 1 - wire

	out := make([][]float64, batch)
	for b := range out {
		row := make([]float64, 2)
		for idx, p := range probs[b*stride : (b+1)*stride] {
			row[(idx>>shift)&1] += p
		}
		out[b] = row
	}

	return out
}
