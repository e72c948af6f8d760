// Package arion expresses the Arion permutation, sponge and Merkle openings
// as gnark constraints over the native BLS12-381 scalar field.
package arion

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

// ErrUnsupportedField is returned when the circuit is not defined over the
// BLS12-381 scalar field.
var ErrUnsupportedField = errors.New("arion: circuit field is not bls12-381 fr")

func init() {
	solver.RegisterHint(InverseSBoxHint)
}

// InverseSBoxHint computes x^(1/257) out of circuit. Its output is
// constrained by the gadget through the forward relation y^257 = x.
func InverseSBoxHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 1 {
		return fmt.Errorf("arion: inverse s-box hint expects 1 input and 1 output, got %d and %d", len(inputs), len(outputs))
	}
	outputs[0].Exp(inputs[0], params.InverseExponent(), field)
	return nil
}

// Gadget emits the permutation as constraints through a frontend.API.
type Gadget struct {
	api    frontend.API
	params *params.Parameters
}

var _ strategy.Strategy[frontend.Variable] = (*Gadget)(nil)

// NewGadget returns the circuit strategy for p.
func NewGadget(api frontend.API, p *params.Parameters) (*Gadget, error) {
	if api.Compiler().Field().Cmp(fr.Modulus()) != 0 {
		return nil, ErrUnsupportedField
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	return &Gadget{api: api, params: p}, nil
}

func (g *Gadget) Params() *params.Parameters { return g.params }

func (g *Gadget) QuinticSBox(x frontend.Variable) frontend.Variable {
	x2 := g.api.Mul(x, x)
	x4 := g.api.Mul(x2, x2)
	return g.api.Mul(x4, x)
}

// inverseSBox introduces y = x^(1/257) as a hinted witness and constrains
// y^257 == x by eight squarings and one multiplication.
func (g *Gadget) inverseSBox(x frontend.Variable) frontend.Variable {
	res, err := g.api.Compiler().NewHint(InverseSBoxHint, 1, x)
	if err != nil {
		panic(fmt.Sprintf("arion: inverse s-box hint: %v", err))
	}
	y := res[0]
	pow := y
	for i := 0; i < 8; i++ {
		pow = g.api.Mul(pow, pow)
	}
	pow = g.api.Mul(pow, y)
	g.api.AssertIsEqual(pow, x)
	return y
}

func (g *Gadget) NonlinearLayer(state []frontend.Variable, gc [][2]fr.Element, hc []fr.Element) {
	w := len(state)
	output := make([]frontend.Variable, w)
	copy(output, state)

	output[w-1] = g.inverseSBox(state[w-1])
	sum := g.api.Add(state[w-1], output[w-1])
	for i := w - 2; i >= 0; i-- {
		output[i] = g.QuinticSBox(output[i])

		sq := g.api.Mul(sum, sum)
		gv := g.api.Add(sq, g.api.Mul(sum, constant(gc[i][0])), constant(gc[i][1]))
		hv := g.api.Add(sq, g.api.Mul(sum, constant(hc[i])))
		output[i] = g.api.Add(g.api.Mul(output[i], gv), hv)

		if i > 0 {
			sum = g.api.Add(sum, output[i], state[i])
		}
	}
	copy(state, output)
}

func (g *Gadget) Diffuse(state []frontend.Variable) {
	w := len(state)
	m := g.params.Matrix
	output := make([]frontend.Variable, w)
	for row := 0; row < w; row++ {
		sum := g.api.Mul(state[0], constant(m[row][0]))
		for col := 1; col < w; col++ {
			sum = g.api.Add(sum, g.api.Mul(state[col], constant(m[row][col])))
		}
		output[row] = sum
	}
	copy(state, output)
}

func (g *Gadget) AffineLayer(state []frontend.Variable, constants []fr.Element) {
	g.Diffuse(state)
	for i := range state {
		state[i] = g.api.Add(state[i], constant(constants[i]))
	}
}

// Permute runs the permutation on state in place.
func (g *Gadget) Permute(state []frontend.Variable) {
	strategy.Permute[frontend.Variable](g, state)
}

// Permute constrains the default instance of the permutation on state.
func Permute(api frontend.API, state []frontend.Variable) error {
	return PermuteWith(api, params.Default(), state)
}

// PermuteWith constrains the permutation described by p on state, in place.
func PermuteWith(api frontend.API, p *params.Parameters, state []frontend.Variable) error {
	g, err := NewGadget(api, p)
	if err != nil {
		return err
	}
	if len(state) != p.Width {
		return fmt.Errorf("arion: expected %d limbs, got %d", p.Width, len(state))
	}
	g.Permute(state)
	return nil
}

func constant(e fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}
