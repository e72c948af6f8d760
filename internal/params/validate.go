package params

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Validate checks basic shape and sizes of the parameter set.
func Validate(p *Parameters) error {
	if p.Width < 2 || p.Width > MaxWidth {
		return fmt.Errorf("%w: %d", ErrUnsupportedWidth, p.Width)
	}
	if p.Rounds < 1 || p.Rounds > MaxRounds {
		return fmt.Errorf("%w: %d", ErrUnsupportedRounds, p.Rounds)
	}
	if len(p.ConstantsG) != p.Rounds || len(p.ConstantsH) != p.Rounds || len(p.ConstantsAff) != p.Rounds {
		return fmt.Errorf("arion: round constants length mismatch")
	}
	for r := 0; r < p.Rounds; r++ {
		if len(p.ConstantsG[r]) != p.Width-1 || len(p.ConstantsH[r]) != p.Width-1 {
			return fmt.Errorf("arion: nonlinear constants length mismatch in round %d", r)
		}
		if len(p.ConstantsAff[r]) != p.Width {
			return fmt.Errorf("arion: affine constants length mismatch in round %d", r)
		}
	}
	if len(p.Matrix) != p.Width {
		return fmt.Errorf("arion: matrix length mismatch")
	}
	for i := range p.Matrix {
		if len(p.Matrix[i]) != p.Width {
			return fmt.Errorf("arion: matrix row %d length mismatch", i)
		}
	}
	return nil
}

// Legendre returns the Legendre symbol of x computed with Euler's criterion:
// 0 for zero, 1 for a non-zero square and -1 otherwise.
func Legendre(x *fr.Element) int {
	var symb fr.Element
	symb.Exp(*x, LegendreExponent())
	switch {
	case symb.IsZero():
		return 0
	case symb.IsOne():
		return 1
	default:
		return -1
	}
}

// CheckNonResidues verifies that g0^2 - 4*g1 is a quadratic non-residue for
// every nonlinear constant pair, so that g has no root in the field.
func CheckNonResidues(p *Parameters) error {
	for r, round := range p.ConstantsG {
		for i := range round {
			d := discriminant(&round[i])
			if Legendre(&d) != -1 {
				return fmt.Errorf("arion: g constants of round %d, branch %d have a root", r, i)
			}
		}
	}
	return nil
}

func discriminant(g *[2]fr.Element) fr.Element {
	var sq, four fr.Element
	sq.Square(&g[0])
	four.Double(&g[1])
	four.Double(&four)
	sq.Sub(&sq, &four)
	return sq
}
