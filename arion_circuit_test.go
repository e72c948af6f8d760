package arion

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test"
	"github.com/rs/zerolog"

	garion "github.com/vocdoni/arion/gnark/arion"
	"github.com/vocdoni/arion/tree"
)

// Circuit that permutes five limbs and checks every output limb.
type permCircuit struct {
	Input  [Width]frontend.Variable
	Output [Width]frontend.Variable `gnark:",public"`
}

func (c *permCircuit) Define(api frontend.API) error {
	state := c.Input[:]
	if err := garion.Permute(api, state); err != nil {
		return err
	}
	for i := range state {
		api.AssertIsEqual(state[i], c.Output[i])
	}
	return nil
}

func permWitness(t *testing.T, in []fr.Element) *permCircuit {
	t.Helper()
	out := append([]fr.Element(nil), in...)
	if err := Permute(out); err != nil {
		t.Fatal(err)
	}
	var w permCircuit
	for i := range in {
		w.Input[i] = in[i]
		w.Output[i] = out[i]
	}
	return &w
}

func TestCircuitPermutationMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	random := make([]fr.Element, Width)
	for i := range random {
		if _, err := random[i].SetRandom(); err != nil {
			t.Fatal(err)
		}
	}

	assert.ProverSucceeded(
		&permCircuit{},
		permWitness(t, random),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
	assert.ProverSucceeded(
		&permCircuit{},
		permWitness(t, uints(5000, 5000, 5000, 5000, 5000)),
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}

func TestCircuitPermutationRejectsWrongOutput(t *testing.T) {
	good := permWitness(t, uints(31, 31, 31, 31, 31))
	bad := permWitness(t, uints(0, 31, 0, 0, 0))
	bad.Output = good.Output

	if err := test.IsSolved(&permCircuit{}, good, ecc.BLS12_381.ScalarField()); err != nil {
		t.Fatalf("valid witness rejected: %v", err)
	}
	if err := test.IsSolved(&permCircuit{}, bad, ecc.BLS12_381.ScalarField()); err == nil {
		t.Fatal("witness with a foreign output was accepted")
	}
}

func TestSolvePermutationWithLogger(t *testing.T) {
	field := ecc.BLS12_381.ScalarField()
	ccs, err := frontend.Compile(field, r1cs.NewBuilder, &permCircuit{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	w, err := frontend.NewWitness(permWitness(t, uints(0, 1, 2, 3, 4)), field)
	if err != nil {
		t.Fatalf("witness: %v", err)
	}
	zlog := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	if _, err := ccs.Solve(w, solver.WithLogger(zlog)); err != nil {
		t.Fatalf("solve: %v", err)
	}
}

func TestCircuitRejectsForeignField(t *testing.T) {
	if _, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &permCircuit{}); err == nil {
		t.Fatal("expected compilation over bn254 to fail")
	}
}

// Circuit that hashes six limbs, spanning two sponge chunks.
type hashCircuit struct {
	Domain   frontend.Variable
	Inputs   [6]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *hashCircuit) Define(api frontend.API) error {
	out, err := garion.Hash(api, c.Domain, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestCircuitHashMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	domain := DomainFromLEBytes([]byte("arion_test"))
	inputs := uints(11, 22, 33, 44, 55, 66)
	native, err := Hash(domain, inputs...)
	if err != nil {
		t.Fatal(err)
	}

	witness := hashCircuit{Domain: domain, Expected: native}
	for i := range inputs {
		witness.Inputs[i] = inputs[i]
	}

	assert.ProverSucceeded(
		&hashCircuit{},
		&witness,
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}

// Circuit that digests its inputs through the FieldHasher interface.
type hasherCircuit struct {
	Inputs   [3]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *hasherCircuit) Define(api frontend.API) error {
	h, err := garion.NewHasher(api)
	if err != nil {
		return err
	}
	h.Write(c.Inputs[0])
	h.Write(c.Inputs[1:]...)
	api.AssertIsEqual(h.Sum(), c.Expected)

	h.Reset()
	h.Write(c.Inputs[0])
	first := h.Sum()
	api.AssertIsDifferent(first, c.Expected)
	return nil
}

func TestCircuitHasherMatchesNative(t *testing.T) {
	var zero fr.Element
	inputs := uints(1, 2, 3)
	native, err := Hash(zero, inputs...)
	if err != nil {
		t.Fatal(err)
	}
	witness := hasherCircuit{Expected: native}
	for i := range inputs {
		witness.Inputs[i] = inputs[i]
	}
	if err := test.IsSolved(&hasherCircuit{}, &witness, ecc.BLS12_381.ScalarField()); err != nil {
		t.Fatal(err)
	}
}

// Circuit that resets a written hasher and digests it empty.
type emptyHasherCircuit struct {
	Input    frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *emptyHasherCircuit) Define(api frontend.API) error {
	h, err := garion.NewHasher(api)
	if err != nil {
		return err
	}
	h.Write(c.Input)
	h.Reset()
	api.AssertIsEqual(h.Sum(), c.Expected)
	return nil
}

func TestCircuitHasherEmptySum(t *testing.T) {
	var zero fr.Element
	native, err := Hash(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	witness := emptyHasherCircuit{Input: 42, Expected: native}
	field := ecc.BLS12_381.ScalarField()
	if err := test.IsSolved(&emptyHasherCircuit{}, &witness, field); err != nil {
		t.Fatal(err)
	}

	var one fr.Element
	one.SetOne()
	other, err := Hash(zero, one)
	if err != nil {
		t.Fatal(err)
	}
	witness.Expected = other
	if err := test.IsSolved(&emptyHasherCircuit{}, &witness, field); err == nil {
		t.Fatal("empty hasher matched the digest of a non-zero limb")
	}
}

type coin struct {
	hash  fr.Element
	value uint64
	pos   uint64
}

func newCoin(v uint64) *coin {
	c := &coin{value: v}
	c.hash.SetUint64(v*v + 3)
	return c
}

func (c *coin) ArionHash() fr.Element { return c.hash }
func (c *coin) Key() uint64           { return c.value }
func (c *coin) Pos() uint64           { return c.pos }
func (c *coin) SetPos(pos uint64)     { c.pos = pos }

// Circuit that checks a depth three opening.
type openingCircuit struct {
	Leaf   frontend.Variable
	Branch garion.Branch `gnark:",public"`
}

func (c *openingCircuit) Define(api frontend.API) error {
	return garion.AssertOpening(api, c.Leaf, c.Branch)
}

func TestCircuitOpening(t *testing.T) {
	const depth = 3
	tr, err := tree.New[*coin, uint64](depth)
	if err != nil {
		t.Fatal(err)
	}
	for i := uint64(0); i < 7; i++ {
		if _, err := tr.Push(newCoin(i)); err != nil {
			t.Fatal(err)
		}
	}
	nb, ok := tr.Branch(5)
	if !ok {
		t.Fatal("missing branch")
	}
	leaf, _ := tr.Get(5)

	placeholder := openingCircuit{Branch: garion.NewBranch(depth, Width)}
	valid := openingCircuit{Leaf: leaf.ArionHash(), Branch: garion.ValueOfBranch(nb)}

	assert := test.NewAssert(t)
	assert.ProverSucceeded(
		&placeholder,
		&valid,
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)

	field := ecc.BLS12_381.ScalarField()

	wrongRoot := openingCircuit{Leaf: leaf.ArionHash(), Branch: garion.ValueOfBranch(nb)}
	wrongRoot.Branch.Root = 12345
	if err := test.IsSolved(&placeholder, &wrongRoot, field); err == nil {
		t.Fatal("opening with a foreign root was accepted")
	}

	wrongIndex := openingCircuit{Leaf: leaf.ArionHash(), Branch: garion.ValueOfBranch(nb)}
	wrongIndex.Branch.Path[0].Index = nb.Path[0].Index + 1
	if err := test.IsSolved(&placeholder, &wrongIndex, field); err == nil {
		t.Fatal("opening at a foreign slot was accepted")
	}

	other, _ := tr.Get(4)
	wrongLeaf := openingCircuit{Leaf: other.ArionHash(), Branch: garion.ValueOfBranch(nb)}
	if err := test.IsSolved(&placeholder, &wrongLeaf, field); err == nil {
		t.Fatal("opening of a foreign leaf was accepted")
	}
}

func TestConstraintCounts(t *testing.T) {
	field := ecc.BLS12_381.ScalarField()

	perm, err := frontend.Compile(field, r1cs.NewBuilder, &permCircuit{})
	if err != nil {
		t.Fatalf("compile permutation: %v", err)
	}
	permPlonk, err := frontend.Compile(field, scs.NewBuilder, &permCircuit{})
	if err != nil {
		t.Fatalf("compile permutation (scs): %v", err)
	}
	hash6, err := frontend.Compile(field, r1cs.NewBuilder, &hashCircuit{})
	if err != nil {
		t.Fatalf("compile hash6: %v", err)
	}
	opening, err := frontend.Compile(field, r1cs.NewBuilder, &openingCircuit{Branch: garion.NewBranch(3, Width)})
	if err != nil {
		t.Fatalf("compile opening: %v", err)
	}

	t.Logf("permutation constraints (r1cs): %d", perm.GetNbConstraints())
	t.Logf("permutation constraints (scs): %d", permPlonk.GetNbConstraints())
	t.Logf("hash-6 constraints: %d", hash6.GetNbConstraints())
	t.Logf("depth-3 opening constraints: %d", opening.GetNbConstraints())

	if hash6.GetNbConstraints() <= perm.GetNbConstraints() {
		t.Fatalf("two chunk sponge not costlier than one permutation: %d <= %d", hash6.GetNbConstraints(), perm.GetNbConstraints())
	}
}
