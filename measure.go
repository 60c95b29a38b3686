package qmeasure

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/mat"
)

/*
RegisterMapping relates classical-register columns to quantum-register
wires. Only C2Q is consulted when reordering measurement output.
*/
type RegisterMapping struct {
	C2Q map[int]int
	Q2C map[int]int
}

// NewRegisterMapping builds a mapping from c2q and derives its inverse.
func NewRegisterMapping(c2q map[int]int) *RegisterMapping {
	q2c := make(map[int]int, len(c2q))
	for c, q := range c2q {
		q2c[q] = c
	}
	return &RegisterMapping{C2Q: c2q, Q2C: q2c}
}

// MeasureOption configures a MeasureAll.
type MeasureOption func(*MeasureAll)

func WithRegisterMapping(mapping *RegisterMapping) MeasureOption {
	return func(m *MeasureAll) {
		m.mapping = mapping
	}
}

func WithConfig(config *Config) MeasureOption {
	return func(m *MeasureAll) {
		m.config = config
	}
}

/*
MeasureAll measures one observable kind on every wire of a device and
returns the expectation values in classical-register order.
*/
type MeasureAll struct {
	obs     ObservableFactory
	mapping *RegisterMapping
	config  *Config
	metrics *Metrics

	// Last device passed to Apply, kept for introspection only.
	device Device
}

func NewMeasureAll(obs ObservableFactory, opts ...MeasureOption) *MeasureAll {
	m := &MeasureAll{
		obs:     obs,
		config:  NewConfig(),
		metrics: NewMetrics(),
	}

	for _, opt := range opts {
		opt(m)
	}

	errnie.Info(
		"NewMeasureAll - mapping %v, strict %v",
		m.mapping != nil,
		m.config.StrictRegisterMapping,
	)

	return m
}

/*
Apply measures every wire of dev with a fresh observable instance and,
when a register mapping is set, reorders the columns so that column j of
the output holds the wire mapped from the j-th mapped classical index.
Unmapped classical indices are dropped unless the config is strict, in
which case Apply fails with ErrMissingMapping.
*/
func (m *MeasureAll) Apply(dev Device) (*mat.Dense, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	start := time.Now()
	m.device = dev

	if states := dev.States(); states != nil && !states.Normalized(m.config.Tolerance) {
		errnie.Info("Apply - state batch not normalized within %v", m.config.Tolerance)
	}

	nWires := dev.NWires()
	targets := make([]Target, nWires)
	for wire := range targets {
		targets[wire] = Target{Wire: wire, Observable: m.obs()}
	}

	res, err := Expval(dev, targets...)
	if err != nil {
		return nil, err
	}

	dropped := 0
	if m.mapping != nil {
		perm, err := m.permutation(nWires)
		if err != nil {
			return nil, err
		}

		dropped = nWires - len(perm)
		res = reindexColumns(res, perm)
	}

	batch := 0
	if states := dev.States(); states != nil {
		batch = states.Batch()
	}
	m.metrics.recordApply(start, batch, nWires, dropped)

	return res, nil
}

func (m *MeasureAll) permutation(nWires int) ([]int, error) {
	perm := make([]int, 0, nWires)

	for c := 0; c < nWires; c++ {
		q, ok := m.mapping.C2Q[c]
		if !ok {
			if m.config.StrictRegisterMapping {
				return nil, fmt.Errorf("%w: classical index %d", ErrMissingMapping, c)
			}
			continue
		}

		if q < 0 || q >= nWires {
			return nil, fmt.Errorf(
				"%w: classical index %d maps to wire %d, device has %d",
				ErrWireOutOfRange, c, q, nWires,
			)
		}

		perm = append(perm, q)
	}

	return perm, nil
}

func reindexColumns(res *mat.Dense, perm []int) *mat.Dense {
	if res.IsEmpty() || len(perm) == 0 {
		return &mat.Dense{}
	}

	rows, _ := res.Dims()
	out := mat.NewDense(rows, len(perm), nil)
	for j, q := range perm {
		out.SetCol(j, mat.Col(nil, q, res))
	}

	return out
}

// SetRegisterMapping takes effect on the next Apply. A nil mapping disables reordering.
func (m *MeasureAll) SetRegisterMapping(mapping *RegisterMapping) {
	errnie.Info("SetRegisterMapping - %v", mapping)
	m.mapping = mapping
}

func (m *MeasureAll) RegisterMapping() *RegisterMapping { return m.mapping }
func (m *MeasureAll) Device() Device                   { return m.device }
func (m *MeasureAll) Metrics() *Metrics                { return m.metrics }

// Inspect renders the last measured device for debugging.
func (m *MeasureAll) Inspect() string {
	return spew.Sdump(m.device)
}
