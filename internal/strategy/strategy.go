// Package strategy defines the Arion round function once, over any value
// domain able to express its field operations.
package strategy

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/arion/internal/params"
)

// Strategy is the capability a value domain T provides to the permutation.
// Implementations mutate the state slices in place.
type Strategy[T any] interface {
	// Params returns the instance the strategy was built for.
	Params() *params.Parameters
	// QuinticSBox returns x^5.
	QuinticSBox(x T) T
	// NonlinearLayer applies the generalized triangular dynamical system
	// keyed by one round of g and h constants.
	NonlinearLayer(state []T, g [][2]fr.Element, h []fr.Element)
	// Diffuse multiplies the state by the circulant matrix.
	Diffuse(state []T)
	// AffineLayer diffuses the state and adds the round constants.
	AffineLayer(state []T, constants []fr.Element)
}

// Permute runs the full Arion permutation on state. The state must hold
// exactly Params().Width values.
func Permute[T any](s Strategy[T], state []T) {
	p := s.Params()
	if len(state) != p.Width {
		panic("arion: state width mismatch")
	}

	s.Diffuse(state)
	s.AffineLayer(state, zeros(p.Width))
	for r := 0; r < p.Rounds; r++ {
		s.NonlinearLayer(state, p.ConstantsG[r], p.ConstantsH[r])
		s.AffineLayer(state, p.ConstantsAff[r])
	}
}

var zeroRow [params.MaxWidth]fr.Element

func zeros(n int) []fr.Element {
	return zeroRow[:n]
}
