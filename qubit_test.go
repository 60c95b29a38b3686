package qmeasure

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"
)

func TestGateValidate(t *testing.T) {
	Convey("Given the built-in gates", t, func() {
		gates := []Gate{
			Hadamard(), PauliXGate(), PauliYGate(), PauliZGate(), SGate(), TGate(),
			RX(0.3), RY(-math.Pi / 4), RZ(1.7), PhaseShift(2.1), GlobalPhase(0.9),
		}

		Convey("Then every gate should be unitary", func() {
			for _, gate := range gates {
				So(gate.Validate(), ShouldBeNil)
			}
		})
	})

	Convey("Given malformed gates", t, func() {
		Convey("Then a gate without a matrix should fail", func() {
			So(errors.Is(Gate{Name: "empty"}.Validate(), ErrInvalidGate), ShouldBeTrue)
		})

		Convey("Then a non-unitary matrix should fail", func() {
			gate := Gate{Name: "ones", Matrix: mat.NewCDense(2, 2, []complex128{1, 1, 1, 1})}
			So(errors.Is(gate.Validate(), ErrInvalidGate), ShouldBeTrue)
		})

		Convey("Then a matrix of the wrong size should fail", func() {
			gate := Gate{Name: "big", Matrix: mat.NewCDense(3, 3, make([]complex128, 9))}
			So(errors.Is(gate.Validate(), ErrInvalidGate), ShouldBeTrue)
		})

		Convey("Then applying it should leave the state untouched", func() {
			st := NewStateTensor(1, 1)
			gate := Gate{Name: "ones", Matrix: mat.NewCDense(2, 2, []complex128{1, 1, 1, 1})}
			So(errors.Is(st.ApplyGate(gate, 0), ErrInvalidGate), ShouldBeTrue)
			So(st.Probabilities(), ShouldResemble, []float64{1, 0})
		})
	})
}

func TestRotations(t *testing.T) {
	Convey("Given a single qubit in |0⟩", t, func() {
		st := NewStateTensor(1, 1)

		Convey("When applying RX(π)", func() {
			So(st.ApplyGate(RX(math.Pi), 0), ShouldBeNil)

			Convey("Then the qubit should be flipped", func() {
				probs := st.Probabilities()
				So(probs[0], ShouldAlmostEqual, 0, 1e-12)
				So(probs[1], ShouldAlmostEqual, 1, 1e-12)
			})
		})

		Convey("When applying RY(π/2)", func() {
			So(st.ApplyGate(RY(math.Pi/2), 0), ShouldBeNil)

			Convey("Then the qubit should be in equal superposition", func() {
				probs := st.Probabilities()
				So(probs[0], ShouldAlmostEqual, 0.5, 1e-12)
				So(probs[1], ShouldAlmostEqual, 0.5, 1e-12)
			})
		})

		Convey("When applying RZ", func() {
			So(st.ApplyGate(RZ(1.2), 0), ShouldBeNil)

			Convey("Then only the phase should change", func() {
				So(st.Probabilities()[0], ShouldAlmostEqual, 1, 1e-12)
			})
		})
	})
}
