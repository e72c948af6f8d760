package arion

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash"

	"github.com/vocdoni/arion/internal/params"
)

// Hash computes H(domain, inputs...) inside a gnark circuit with the default
// instance. It matches arion.Hash.
func Hash(api frontend.API, domain frontend.Variable, inputs ...frontend.Variable) (frontend.Variable, error) {
	return HashWith(api, params.Default(), domain, inputs...)
}

// HashWith is Hash over an explicit instance.
func HashWith(api frontend.API, p *params.Parameters, domain frontend.Variable, inputs ...frontend.Variable) (frontend.Variable, error) {
	if len(inputs) == 0 {
		var zero frontend.Variable
		return zero, fmt.Errorf("arion: need at least 1 limb")
	}
	g, err := NewGadget(api, p)
	if err != nil {
		var zero frontend.Variable
		return zero, err
	}
	return g.sponge(domain, inputs), nil
}

func (g *Gadget) sponge(domain frontend.Variable, inputs []frontend.Variable) frontend.Variable {
	rate := g.params.Rate()
	state := make([]frontend.Variable, g.params.Width)
	state[0] = domain
	for i := 1; i < len(state); i++ {
		state[i] = 0
	}
	for i := 0; i < len(inputs); i += rate {
		end := min(i+rate, len(inputs))
		for j, in := range inputs[i:end] {
			state[j+1] = g.api.Add(state[j+1], in)
		}
		g.Permute(state)
	}
	return state[1]
}

// Hasher exposes the default sponge, with a zero domain, as a gnark
// hash.FieldHasher.
type Hasher struct {
	gadget *Gadget
	data   []frontend.Variable
}

var _ hash.FieldHasher = (*Hasher)(nil)

// NewHasher returns a Hasher bound to api.
func NewHasher(api frontend.API) (*Hasher, error) {
	g, err := NewGadget(api, params.Default())
	if err != nil {
		return nil, err
	}
	return &Hasher{gadget: g}, nil
}

func (h *Hasher) Write(data ...frontend.Variable) {
	h.data = append(h.data, data...)
}

func (h *Hasher) Reset() {
	h.data = nil
}

// Sum returns the digest of the written data. An empty hasher digests a
// single zero limb.
func (h *Hasher) Sum() frontend.Variable {
	data := h.data
	if len(data) == 0 {
		data = []frontend.Variable{0}
	}
	return h.gadget.sponge(0, data)
}
