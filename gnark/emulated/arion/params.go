package arion

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"

	"github.com/vocdoni/arion/internal/params"
)

// FrParams defines the emulated parameters for the BLS12-381 scalar field.
type FrParams = emparams.BLS12381Fr

func init() {
	solver.RegisterHint(inverseSBoxHint)
}

func constElement(f *emulated.Field[FrParams], fe fr.Element) *emulated.Element[FrParams] {
	return f.NewElement(fe.BigInt(new(big.Int)))
}

// ValueOf converts a native element into an emulated witness value.
func ValueOf(e fr.Element) emulated.Element[FrParams] {
	return emulated.ValueOf[FrParams](e.BigInt(new(big.Int)))
}

// inverseSBoxHint computes x^(1/257) modulo the emulated field.
func inverseSBoxHint(nativeMod *big.Int, nativeInputs, nativeOutputs []*big.Int) error {
	return emulated.UnwrapHint(nativeInputs, nativeOutputs, func(mod *big.Int, inputs, outputs []*big.Int) error {
		outputs[0].Exp(inputs[0], params.InverseExponent(), mod)
		return nil
	})
}
