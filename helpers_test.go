package qmeasure

import (
	"math"
	"math/rand/v2"
)

// randomState returns a normalised batch of random amplitudes.
func randomState(seed uint64, batch, nWires int) *StateTensor {
	r := rand.New(rand.NewPCG(seed, seed+1))
	st := NewStateTensor(batch, nWires)
	data := st.Data()
	stride := 1 << nWires

	for b := 0; b < batch; b++ {
		var norm float64
		for i := b * stride; i < (b+1)*stride; i++ {
			data[i] = complex(r.NormFloat64(), r.NormFloat64())
			norm += real(data[i])*real(data[i]) + imag(data[i])*imag(data[i])
		}

		scale := complex(1/math.Sqrt(norm), 0)
		for i := b * stride; i < (b+1)*stride; i++ {
			data[i] *= scale
		}
	}

	return st
}

func deviceWith(st *StateTensor) *QuantumDevice {
	dev := NewQuantumDevice(st.NWires(), st.Batch())
	if err := dev.SetStates(st); err != nil {
		panic(err)
	}
	return dev
}
