package transforms

type Linear struct {
	Multiply complex128
	Add      complex128
}

func (l Linear) Next(z complex128) complex128 {
	return z*l.Multiply + l.Add
}

// Tunnel is z*c + z. It is kept in that form rather than as Linear with
// Multiply c+1, which rounds differently.
type Tunnel struct {
	C complex128
}

func (t Tunnel) Next(z complex128) complex128 {
	return z*t.C + z
}

var (
	_ Transform = Linear{}
	_ Transform = Tunnel{}
)
