package strategy

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/arion/internal/params"
)

// Scalar evaluates the permutation with plain field arithmetic.
type Scalar struct {
	params *params.Parameters
}

// NewScalar returns the native strategy for p.
func NewScalar(p *params.Parameters) *Scalar {
	return &Scalar{params: p}
}

func (s *Scalar) Params() *params.Parameters { return s.params }

func (s *Scalar) QuinticSBox(x fr.Element) fr.Element {
	var x4 fr.Element
	x4.Square(&x)
	x4.Square(&x4)
	x4.Mul(&x4, &x)
	return x4
}

func (s *Scalar) NonlinearLayer(state []fr.Element, g [][2]fr.Element, h []fr.Element) {
	w := len(state)
	var output [params.MaxWidth]fr.Element
	copy(output[:w], state)

	// Inverse of x^257 on the last branch seeds the accumulator.
	InverseSBox(&output[w-1], &state[w-1])

	var sum, sq, gv, hv fr.Element
	sum.Add(&state[w-1], &output[w-1])
	for i := w - 2; i >= 0; i-- {
		output[i] = s.QuinticSBox(output[i])

		sq.Square(&sum)
		gv.Mul(&sum, &g[i][0])
		gv.Add(&gv, &sq)
		gv.Add(&gv, &g[i][1])
		hv.Mul(&sum, &h[i])
		hv.Add(&hv, &sq)

		output[i].Mul(&output[i], &gv)
		output[i].Add(&output[i], &hv)

		sum.Add(&sum, &output[i])
		sum.Add(&sum, &state[i])
	}
	copy(state, output[:w])
}

func (s *Scalar) Diffuse(state []fr.Element) {
	w := len(state)
	var output [params.MaxWidth]fr.Element
	var prod fr.Element
	for row := 0; row < w; row++ {
		for col := 0; col < w; col++ {
			prod.Mul(&s.params.Matrix[row][col], &state[col])
			output[row].Add(&output[row], &prod)
		}
	}
	copy(state, output[:w])
}

func (s *Scalar) AffineLayer(state []fr.Element, constants []fr.Element) {
	s.Diffuse(state)
	for i := range state {
		state[i].Add(&state[i], &constants[i])
	}
}

// Permute runs the permutation on state in place.
func (s *Scalar) Permute(state []fr.Element) {
	Permute[fr.Element](s, state)
}

// InverseSBox sets z = x^(1/257).
func InverseSBox(z, x *fr.Element) *fr.Element {
	return z.Exp(*x, inverseExponent)
}

var inverseExponent = params.InverseExponent()
