package qmeasure

import "math"

/*
Observable is a single-qubit measurable quantity. DiagonalizingGates, in
order, rotate the computational basis of a qubit into the observable's
eigenbasis; Eigvals holds the eigenvalue of each computational-basis
outcome after that rotation.
*/
type Observable interface {
	Name() string
	DiagonalizingGates() []Gate
	Eigvals() []float64
}

// ObservableFactory produces a fresh Observable per wire.
type ObservableFactory func() Observable

type Identity struct{}

func (Identity) Name() string               { return "Identity" }
func (Identity) DiagonalizingGates() []Gate { return nil }
func (Identity) Eigvals() []float64         { return []float64{1, 1} }

type PauliX struct{}

func (PauliX) Name() string               { return "PauliX" }
func (PauliX) DiagonalizingGates() []Gate { return []Gate{Hadamard()} }
func (PauliX) Eigvals() []float64         { return []float64{1, -1} }

type PauliY struct{}

func (PauliY) Name() string { return "PauliY" }

func (PauliY) DiagonalizingGates() []Gate {
	return []Gate{PauliZGate(), SGate(), Hadamard()}
}

func (PauliY) Eigvals() []float64 { return []float64{1, -1} }

type PauliZ struct{}

func (PauliZ) Name() string               { return "PauliZ" }
func (PauliZ) DiagonalizingGates() []Gate { return nil }
func (PauliZ) Eigvals() []float64         { return []float64{1, -1} }

// HadamardObservable measures along the axis halfway between X and Z.
type HadamardObservable struct{}

func (HadamardObservable) Name() string               { return "Hadamard" }
func (HadamardObservable) DiagonalizingGates() []Gate { return []Gate{RY(-math.Pi / 4)} }
func (HadamardObservable) Eigvals() []float64         { return []float64{1, -1} }

func NewIdentity() Observable           { return Identity{} }
func NewPauliX() Observable             { return PauliX{} }
func NewPauliY() Observable             { return PauliY{} }
func NewPauliZ() Observable             { return PauliZ{} }
func NewHadamardObservable() Observable { return HadamardObservable{} }
