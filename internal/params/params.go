package params

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	ErrUnsupportedWidth  = errors.New("arion: unsupported width")
	ErrUnsupportedRounds = errors.New("arion: unsupported rounds")
)

// inverseExponentLimbs is 257^-1 mod (r-1), the exponent of the inverse
// high degree S-box.
var inverseExponentLimbs = [4]uint64{
	0x758a7589ff00ff01, 0x10dc4af2728cb013, 0xdbf3ef7c403a0169, 0x35adcafcabac88b3,
}

// legendreExponentLimbs is (r-1)/2.
var legendreExponentLimbs = [4]uint64{
	0x7fffffff80000000, 0xa9ded2017fff2dff, 0x199cec0404d0ec02, 0x39f6d3a994cebea4,
}

// domainTable is the fully converted form of the raw domain table.
type domainTable struct {
	affine [MaxRounds][MaxWidth]fr.Element
	g      [MaxRounds][MaxWidth - 1][2]fr.Element
	h      [MaxRounds][MaxWidth - 1]fr.Element
}

var table = sync.OnceValue(func() *domainTable {
	t := new(domainTable)
	for r := 0; r < MaxRounds; r++ {
		for i := 0; i < MaxWidth; i++ {
			t.affine[r][i] = FromLimbs(rawAffine[r][i])
		}
		for i := 0; i < MaxWidth-1; i++ {
			t.g[r][i][0] = FromLimbs(rawG[r][i][0])
			t.g[r][i][1] = FromLimbs(rawG[r][i][1])
			t.h[r][i] = FromLimbs(rawH[r][i])
		}
	}
	return t
})

var defaultParams = sync.OnceValue(func() *Parameters {
	return MustNew(DefaultWidth, DefaultRounds)
})

// Default returns the shared parameter set for DefaultWidth and
// DefaultRounds. The returned value must not be modified.
func Default() *Parameters {
	return defaultParams()
}

// New slices the domain table for the given width and number of rounds and
// builds the circulant diffusion matrix.
func New(width, rounds int) (*Parameters, error) {
	if width < 2 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d (want 2..%d)", ErrUnsupportedWidth, width, MaxWidth)
	}
	if rounds < 1 || rounds > MaxRounds {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrUnsupportedRounds, rounds, MaxRounds)
	}
	t := table()

	p := &Parameters{
		Width:        width,
		Rounds:       rounds,
		ConstantsG:   make([][][2]fr.Element, rounds),
		ConstantsH:   make([][]fr.Element, rounds),
		ConstantsAff: make([][]fr.Element, rounds),
		Matrix:       circulant(width),
	}
	for r := 0; r < rounds; r++ {
		p.ConstantsG[r] = append([][2]fr.Element(nil), t.g[r][:width-1]...)
		p.ConstantsH[r] = append([]fr.Element(nil), t.h[r][:width-1]...)
		p.ConstantsAff[r] = append([]fr.Element(nil), t.affine[r][:width]...)
	}
	return p, nil
}

// MustNew is like New but panics on unsupported configurations.
func MustNew(width, rounds int) *Parameters {
	p, err := New(width, rounds)
	if err != nil {
		panic(err)
	}
	return p
}

// circulant returns the matrix whose first row is [0, 1, ..., n-1] and whose
// row i is row i-1 rotated right by one position.
func circulant(n int) [][]fr.Element {
	row := make([]fr.Element, n)
	for i := range row {
		row[i].SetUint64(uint64(i))
	}
	m := make([][]fr.Element, n)
	for i := range m {
		m[i] = make([]fr.Element, n)
		for j := range m[i] {
			m[i][j] = row[(j-i+n)%n]
		}
	}
	return m
}

// InverseExponent returns 257^-1 mod (r-1).
func InverseExponent() *big.Int {
	return limbsToBig(inverseExponentLimbs)
}

// LegendreExponent returns (r-1)/2.
func LegendreExponent() *big.Int {
	return limbsToBig(legendreExponentLimbs)
}
