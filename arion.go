// Package arion implements the Arion permutation over the BLS12-381 scalar
// field and the sponge hash built on it.
package arion

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

const (
	MaxWidth  = params.MaxWidth
	MaxRounds = params.MaxRounds
	Width     = params.DefaultWidth
	Rounds    = params.DefaultRounds
)

var (
	ErrNoInputs   = errors.New("arion: need at least 1 limb")
	ErrStateWidth = errors.New("arion: state width mismatch")

	ErrUnsupportedWidth  = params.ErrUnsupportedWidth
	ErrUnsupportedRounds = params.ErrUnsupportedRounds
)

// Params holds the constants of one (width, rounds) instance.
type Params = params.Parameters

// NewParams derives the constants and diffusion matrix for the given width
// and number of rounds from the domain table.
func NewParams(width, rounds int) (*Params, error) {
	return params.New(width, rounds)
}

// DefaultParams returns the shared (Width, Rounds) instance.
func DefaultParams() *Params {
	return params.Default()
}

// Permute applies the default instance of the permutation to state in place.
func Permute(state []fr.Element) error {
	return PermuteWith(params.Default(), state)
}

// PermuteWith applies the permutation described by p to state in place.
func PermuteWith(p *Params, state []fr.Element) error {
	if len(state) != p.Width {
		return fmt.Errorf("%w: got %d, want %d", ErrStateWidth, len(state), p.Width)
	}
	strategy.NewScalar(p).Permute(state)
	return nil
}
