package qmeasure

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const unitaryTolerance = 1e-9

// Gate is a named single-qubit unitary.
type Gate struct {
	Name   string
	Matrix *mat.CDense
}

func newGate(name string, m00, m01, m10, m11 complex128) Gate {
	return Gate{
		Name:   name,
		Matrix: mat.NewCDense(2, 2, []complex128{m00, m01, m10, m11}),
	}
}

/*
Validate checks that the gate is a 2x2 matrix M with M†M = I.
*/
func (g Gate) Validate() error {
	if g.Matrix == nil {
		return fmt.Errorf("%w: %s has no matrix", ErrInvalidGate, g.Name)
	}

	if r, c := g.Matrix.Dims(); r != 2 || c != 2 {
		return fmt.Errorf("%w: %s is %dx%d", ErrInvalidGate, g.Name, r, c)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				sum += cmplx.Conj(g.Matrix.At(k, i)) * g.Matrix.At(k, j)
			}

			want := complex(0, 0)
			if i == j {
				want = 1
			}

			if cmplx.Abs(sum-want) > unitaryTolerance {
				return fmt.Errorf("%w: %s", ErrInvalidGate, g.Name)
			}
		}
	}

	return nil
}

func Hadamard() Gate {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	h := complex(1/math.Sqrt2, 0)
	return newGate("Hadamard", h, h, h, -h)
}

func PauliXGate() Gate { return newGate("PauliX", 0, 1, 1, 0) }
func PauliYGate() Gate { return newGate("PauliY", 0, -1i, 1i, 0) }
func PauliZGate() Gate { return newGate("PauliZ", 1, 0, 0, -1) }
func SGate() Gate      { return newGate("S", 1, 0, 0, 1i) }

func TGate() Gate {
	return newGate("T", 1, 0, 0, cmplx.Exp(complex(0, math.Pi/4)))
}

func RX(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return newGate("RX", c, s, s, c)
}

func RY(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return newGate("RY", c, -s, s, c)
}

func RZ(theta float64) Gate {
	return newGate(
		"RZ",
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)),
	)
}

func PhaseShift(theta float64) Gate {
	return newGate("PhaseShift", 1, 0, 0, cmplx.Exp(complex(0, theta)))
}

// GlobalPhase multiplies both basis amplitudes by e^{iφ}.
func GlobalPhase(phi float64) Gate {
	p := cmplx.Exp(complex(0, phi))
	return newGate("GlobalPhase", p, 0, 0, p)
}
