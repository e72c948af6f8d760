package arion

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/test"

	emarion "github.com/vocdoni/arion/gnark/emulated/arion"
)

type emuPermCircuit struct {
	Input  [Width]emulated.Element[emarion.FrParams]
	Output [Width]emulated.Element[emarion.FrParams] `gnark:",public"`
}

func (c *emuPermCircuit) Define(api frontend.API) error {
	field, err := emulated.NewField[emarion.FrParams](api)
	if err != nil {
		return err
	}
	state := c.Input
	if err := emarion.Permute(api, DefaultParams(), state[:]); err != nil {
		return err
	}
	for i := range state {
		field.AssertIsEqual(&state[i], &c.Output[i])
	}
	return nil
}

type emuHashCircuit struct {
	Domain   emulated.Element[emarion.FrParams]
	Inputs   [6]emulated.Element[emarion.FrParams]
	Expected emulated.Element[emarion.FrParams] `gnark:",public"`
}

func (c *emuHashCircuit) Define(api frontend.API) error {
	field, err := emulated.NewField[emarion.FrParams](api)
	if err != nil {
		return err
	}
	out, err := emarion.Hash(api, c.Domain, c.Inputs[:]...)
	if err != nil {
		return err
	}
	field.AssertIsEqual(&out, &c.Expected)
	return nil
}

func emuPermWitness(t *testing.T, in []fr.Element) *emuPermCircuit {
	t.Helper()
	out := append([]fr.Element(nil), in...)
	if err := Permute(out); err != nil {
		t.Fatal(err)
	}
	var w emuPermCircuit
	for i := range in {
		w.Input[i] = emarion.ValueOf(in[i])
		w.Output[i] = emarion.ValueOf(out[i])
	}
	return &w
}

func TestEmulatedPermutationMatchesNative(t *testing.T) {
	host := ecc.BN254.ScalarField()

	if err := test.IsSolved(&emuPermCircuit{}, emuPermWitness(t, uints(0, 1, 2, 3, 4)), host); err != nil {
		t.Fatalf("emulated permutation: %v", err)
	}

	bad := emuPermWitness(t, uints(0, 31, 0, 0, 0))
	bad.Output = emuPermWitness(t, uints(31, 31, 31, 31, 31)).Output
	if err := test.IsSolved(&emuPermCircuit{}, bad, host); err == nil {
		t.Fatal("emulated permutation accepted a foreign output")
	}
}

func TestEmulatedHashMatchesNative(t *testing.T) {
	domain := DomainFromLEBytes([]byte("arion_test"))
	inputs := uints(1, 2, 3, 4, 5, 6)
	native, err := Hash(domain, inputs...)
	if err != nil {
		t.Fatal(err)
	}

	witness := emuHashCircuit{
		Domain:   emarion.ValueOf(domain),
		Expected: emarion.ValueOf(native),
	}
	for i := range inputs {
		witness.Inputs[i] = emarion.ValueOf(inputs[i])
	}
	if err := test.IsSolved(&emuHashCircuit{}, &witness, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("emulated hash: %v", err)
	}

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &emuHashCircuit{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	t.Logf("emulated hash-6 constraints (bn254 host, r1cs): %d", ccs.GetNbConstraints())
}
