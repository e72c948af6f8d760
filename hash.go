package arion

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

// Hash absorbs inputs into a default width sponge whose capacity limb holds
// domain and returns state[1].
func Hash(domain fr.Element, inputs ...fr.Element) (fr.Element, error) {
	return HashWith(params.Default(), domain, inputs...)
}

// HashWith is Hash over an explicit instance. Inputs are added into
// state[1:] in chunks of p.Rate() limbs, permuting after every chunk.
func HashWith(p *Params, domain fr.Element, inputs ...fr.Element) (fr.Element, error) {
	if len(inputs) == 0 {
		return fr.Element{}, ErrNoInputs
	}
	perm := strategy.NewScalar(p)
	rate := p.Rate()

	var buf [params.MaxWidth]fr.Element
	state := buf[:p.Width]
	state[0] = domain
	for i := 0; i < len(inputs); i += rate {
		end := min(i+rate, len(inputs))
		for j, in := range inputs[i:end] {
			state[j+1].Add(&state[j+1], &in)
		}
		perm.Permute(state)
	}
	return state[1], nil
}

// DomainFromLEBytes reduces a little-endian byte string modulo r, for
// deriving domain separators from labels.
func DomainFromLEBytes(data []byte) fr.Element {
	reversed := make([]byte, len(data))
	for i := range data {
		reversed[len(data)-1-i] = data[i]
	}
	var out fr.Element
	out.SetBigInt(new(big.Int).SetBytes(reversed))
	return out
}
