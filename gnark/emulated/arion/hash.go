// Package arion expresses the Arion permutation over emulated BLS12-381
// scalar field elements, for circuits defined over any other curve.
package arion

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

type element = *emulated.Element[FrParams]

// Emulated runs the permutation with non-native field arithmetic.
type Emulated struct {
	field  *emulated.Field[FrParams]
	params *params.Parameters
}

var _ strategy.Strategy[element] = (*Emulated)(nil)

// New returns the emulated strategy for p.
func New(api frontend.API, p *params.Parameters) (*Emulated, error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	field, err := emulated.NewField[FrParams](api)
	if err != nil {
		return nil, err
	}
	return &Emulated{field: field, params: p}, nil
}

func (e *Emulated) Params() *params.Parameters { return e.params }

func (e *Emulated) QuinticSBox(x element) element {
	x2 := e.field.Mul(x, x)
	x4 := e.field.Mul(x2, x2)
	return e.field.Mul(x4, x)
}

func (e *Emulated) inverseSBox(x element) element {
	res, err := e.field.NewHint(inverseSBoxHint, 1, x)
	if err != nil {
		panic(fmt.Sprintf("arion: inverse s-box hint: %v", err))
	}
	y := res[0]
	pow := y
	for i := 0; i < 8; i++ {
		pow = e.field.Mul(pow, pow)
	}
	e.field.AssertIsEqual(e.field.Mul(pow, y), x)
	return y
}

func (e *Emulated) NonlinearLayer(state []element, g [][2]fr.Element, h []fr.Element) {
	f := e.field
	w := len(state)
	output := make([]element, w)
	copy(output, state)

	output[w-1] = e.inverseSBox(state[w-1])
	sum := f.Add(state[w-1], output[w-1])
	for i := w - 2; i >= 0; i-- {
		output[i] = e.QuinticSBox(output[i])

		sq := f.Mul(sum, sum)
		gv := f.Add(f.Add(sq, f.Mul(sum, constElement(f, g[i][0]))), constElement(f, g[i][1]))
		hv := f.Add(sq, f.Mul(sum, constElement(f, h[i])))
		output[i] = f.Add(f.Mul(output[i], gv), hv)

		if i > 0 {
			sum = f.Add(f.Add(sum, output[i]), state[i])
		}
	}
	copy(state, output)
}

func (e *Emulated) Diffuse(state []element) {
	f := e.field
	w := len(state)
	output := make([]element, w)
	for row := 0; row < w; row++ {
		sum := f.NewElement(emulated.ValueOf[FrParams](0))
		for col := 0; col < w; col++ {
			sum = f.Add(sum, f.Mul(constElement(f, e.params.Matrix[row][col]), state[col]))
		}
		output[row] = sum
	}
	copy(state, output)
}

func (e *Emulated) AffineLayer(state []element, constants []fr.Element) {
	e.Diffuse(state)
	for i := range state {
		state[i] = e.field.Add(state[i], constElement(e.field, constants[i]))
	}
}

// Permute constrains the permutation described by p on state, in place.
func Permute(api frontend.API, p *params.Parameters, state []emulated.Element[FrParams]) error {
	if len(state) != p.Width {
		return fmt.Errorf("arion: expected %d limbs, got %d", p.Width, len(state))
	}
	e, err := New(api, p)
	if err != nil {
		return err
	}
	ptrState := make([]element, len(state))
	for i := range state {
		ptrState[i] = e.field.NewElement(state[i])
	}
	strategy.Permute[element](e, ptrState)
	for i := range state {
		state[i] = *e.field.Reduce(ptrState[i])
	}
	return nil
}

// Hash computes the default instance sponge over emulated elements. It
// matches arion.Hash.
func Hash(api frontend.API, domain emulated.Element[FrParams], inputs ...emulated.Element[FrParams]) (emulated.Element[FrParams], error) {
	var zero emulated.Element[FrParams]
	if len(inputs) == 0 {
		return zero, fmt.Errorf("arion: need at least 1 limb")
	}
	p := params.Default()
	e, err := New(api, p)
	if err != nil {
		return zero, err
	}

	rate := p.Rate()
	state := make([]element, p.Width)
	state[0] = e.field.NewElement(domain)
	for i := 1; i < len(state); i++ {
		state[i] = e.field.NewElement(emulated.ValueOf[FrParams](0))
	}
	for i := 0; i < len(inputs); i += rate {
		end := min(i+rate, len(inputs))
		for j := range inputs[i:end] {
			state[j+1] = e.field.Add(state[j+1], &inputs[i+j])
		}
		strategy.Permute[element](e, state)
	}
	// Ensure canonical output.
	out := e.field.Reduce(state[1])
	return *out, nil
}
