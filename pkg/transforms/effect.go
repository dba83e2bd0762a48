package transforms

import (
	"errors"
	"fmt"
	"sort"
)

// A Transform iterates a passed point.
type Transform interface {
	Next(z complex128) complex128
}

// Kind enumerates the supported effects.
type Kind int

const (
	Quadratic Kind = iota
	PhaseKickback
	QuantumTunneling
	Superposition
	PauliXGate
	PauliYGate
	HadamardGate
	PhaseShiftGate
)

const (
	// PhaseShiftName is the only effect that takes an extra parameter.
	PhaseShiftName = "phase_shift"

	PhaseParameter = "phase"
)

var kindNames = map[string]Kind{
	"phase_kickback":    PhaseKickback,
	"quantum_tunneling": QuantumTunneling,
	"superposition":     Superposition,
	"pauli_x":           PauliXGate,
	"pauli_y":           PauliYGate,
	"hadamard":          HadamardGate,
	PhaseShiftName:      PhaseShiftGate,
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	if k == Quadratic {
		return "quadratic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Names returns the recognized effect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(kindNames))
	for name := range kindNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrUnknownEffect    = errors.New("unknown effect")
)

// MissingParameterError is returned when an effect which needs an extra
// parameter is selected without it.
type MissingParameterError struct {
	Effect    string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("effect %q requires parameter %q", e.Effect, e.Parameter)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// UnknownEffectError is only produced by ResolveStrict.
type UnknownEffectError struct {
	Name string
}

func (e *UnknownEffectError) Error() string {
	return fmt.Sprintf("unknown effect %q", e.Name)
}

func (e *UnknownEffectError) Unwrap() error {
	return ErrUnknownEffect
}

// Effect is a resolved, validated effect selection.
type Effect struct {
	Kind Kind

	// Phase is only meaningful for PhaseShiftGate.
	Phase float64
}

// Resolve parses name into an Effect. Names outside the catalog fall back to
// the Quadratic map.
func Resolve(name string, phase *float64) (Effect, error) {
	kind, ok := kindNames[name]
	if !ok {
		return Effect{Kind: Quadratic}, nil
	}
	return resolveKind(kind, phase)
}

// ResolveStrict is Resolve, except names outside the catalog are an error.
func ResolveStrict(name string, phase *float64) (Effect, error) {
	kind, ok := kindNames[name]
	if !ok {
		return Effect{}, &UnknownEffectError{Name: name}
	}
	return resolveKind(kind, phase)
}

func resolveKind(kind Kind, phase *float64) (Effect, error) {
	if kind != PhaseShiftGate {
		return Effect{Kind: kind}, nil
	}

	if phase == nil {
		return Effect{}, &MissingParameterError{Effect: PhaseShiftName, Parameter: PhaseParameter}
	}
	return Effect{Kind: kind, Phase: *phase}, nil
}

// Bind fixes the per-call constants and returns the update applied on every
// iteration.
func (e Effect) Bind(c complex128, hbar float64) Transform {
	switch e.Kind {
	case PhaseKickback:
		return Linear{Multiply: c}
	case QuantumTunneling:
		return Tunnel{C: c}
	case Superposition:
		return Julia2{C: c / complex(hbar, hbar)}
	case PauliXGate:
		return PauliX{}
	case PauliYGate:
		return PauliY{}
	case HadamardGate:
		return Hadamard{}
	case PhaseShiftGate:
		return PhaseShift{Phase: e.Phase}
	default:
		return Julia2{C: c}
	}
}
