package params

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	// MaxWidth and MaxRounds bound the published domain table.
	MaxWidth  = 8
	MaxRounds = 6

	// DefaultWidth and DefaultRounds select the instance used by the tree and
	// the top level hashing helpers.
	DefaultWidth  = 5
	DefaultRounds = 5
)

// Parameters bundles all constants needed by the permutation for one
// (width, rounds) instance.
type Parameters struct {
	Width  int
	Rounds int

	// ConstantsG holds the (linear, constant) coefficients of g for every
	// round and every branch but the last one.
	ConstantsG [][][2]fr.Element
	// ConstantsH holds the linear coefficient of h.
	ConstantsH [][]fr.Element
	// ConstantsAff holds the round constants added after each diffusion.
	ConstantsAff [][]fr.Element
	// Matrix is the circulant diffusion matrix, row major.
	Matrix [][]fr.Element
}

// Rate returns the number of state limbs available to absorb data, and the
// arity of the trees built on this instance.
func (p *Parameters) Rate() int {
	return p.Width - 1
}

// FromLimbs builds an fr.Element from regular little-endian limbs, reducing
// modulo r.
func FromLimbs(limbs [4]uint64) fr.Element {
	var out fr.Element
	out.SetBigInt(limbsToBig(limbs))
	return out
}

// limbsToBig interprets little-endian limbs as an unsigned integer.
func limbsToBig(limbs [4]uint64) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}
