package transforms

import "math"

// The gate maps act on z as if its real and imaginary parts were the two
// amplitudes of a single qubit. None of them depend on c or hbar.

// PauliX swaps the real and imaginary parts.
type PauliX struct{}

func (PauliX) Next(z complex128) complex128 {
	return complex(imag(z), real(z))
}

// PauliY swaps the parts and negates the new real part.
type PauliY struct{}

func (PauliY) Next(z complex128) complex128 {
	return complex(-imag(z), real(z))
}

// Hadamard maps (a, b) to the normalized sum and difference of its parts.
type Hadamard struct{}

func (Hadamard) Next(z complex128) complex128 {
	return complex(
		(real(z)+imag(z))/math.Sqrt2,
		(real(z)-imag(z))/math.Sqrt2,
	)
}

// PhaseShift scales the imaginary part by Phase.
type PhaseShift struct {
	Phase float64
}

func (p PhaseShift) Next(z complex128) complex128 {
	return complex(real(z), imag(z)*p.Phase)
}

var (
	_ Transform = PauliX{}
	_ Transform = PauliY{}
	_ Transform = Hadamard{}
	_ Transform = PhaseShift{}
)
