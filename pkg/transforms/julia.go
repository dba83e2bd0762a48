package transforms

// Julia2 is the classic quadratic map.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return z*z + j.C
}

var _ Transform = Julia2{}
