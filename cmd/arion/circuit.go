package main

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/urfave/cli/v2"

	"github.com/vocdoni/arion"
	garion "github.com/vocdoni/arion/gnark/arion"
)

// permCircuit proves knowledge of a pre-image of a public permutation output.
type permCircuit struct {
	params *arion.Params `gnark:"-"`

	Input  []frontend.Variable
	Output []frontend.Variable `gnark:",public"`
}

func newPermCircuit(p *arion.Params) *permCircuit {
	return &permCircuit{
		params: p,
		Input:  make([]frontend.Variable, p.Width),
		Output: make([]frontend.Variable, p.Width),
	}
}

func (c *permCircuit) Define(api frontend.API) error {
	state := append([]frontend.Variable(nil), c.Input...)
	if err := garion.PermuteWith(api, c.params, state); err != nil {
		return err
	}
	for i := range state {
		api.AssertIsEqual(state[i], c.Output[i])
	}
	return nil
}

func circuitCommand() *cli.Command {
	return &cli.Command{
		Name:  "circuit",
		Usage: "Compile the permutation circuit and optionally prove one evaluation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "backend", Usage: "Proof system: groth16 or plonk", Value: "groth16"},
			&cli.BoolFlag{Name: "prove", Usage: "Run setup, prove and verify on a random input"},
		},
		Action: func(c *cli.Context) error {
			p, err := instance(c)
			if err != nil {
				return err
			}
			backend := c.String("backend")

			start := time.Now()
			var ccs constraint.ConstraintSystem
			switch backend {
			case "groth16":
				ccs, err = frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, newPermCircuit(p))
			case "plonk":
				ccs, err = frontend.Compile(ecc.BLS12_381.ScalarField(), scs.NewBuilder, newPermCircuit(p))
			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}
			log.Info().
				Str("backend", backend).
				Int("constraints", ccs.GetNbConstraints()).
				Dur("took", time.Since(start)).
				Msg("circuit compiled")
			fmt.Fprintln(c.App.Writer, "constraints:", ccs.GetNbConstraints())

			if !c.Bool("prove") {
				return nil
			}
			return prove(p, backend, ccs)
		},
	}
}

func prove(p *arion.Params, backend string, ccs constraint.ConstraintSystem) error {
	input := make([]fr.Element, p.Width)
	for i := range input {
		if _, err := input[i].SetRandom(); err != nil {
			return err
		}
	}
	output := append([]fr.Element(nil), input...)
	if err := arion.PermuteWith(p, output); err != nil {
		return err
	}
	assignment := newPermCircuit(p)
	for i := range input {
		assignment.Input[i] = input[i]
		assignment.Output[i] = output[i]
	}
	witness, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField())
	if err != nil {
		return fmt.Errorf("witness: %w", err)
	}
	public, err := witness.Public()
	if err != nil {
		return fmt.Errorf("public witness: %w", err)
	}

	start := time.Now()
	switch backend {
	case "groth16":
		pk, vk, err := groth16.Setup(ccs)
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
		proof, err := groth16.Prove(ccs, pk, witness)
		if err != nil {
			return fmt.Errorf("prove: %w", err)
		}
		if err := groth16.Verify(proof, vk, public); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	case "plonk":
		srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
		if err != nil {
			return fmt.Errorf("srs: %w", err)
		}
		pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
		proof, err := plonk.Prove(ccs, pk, witness)
		if err != nil {
			return fmt.Errorf("prove: %w", err)
		}
		if err := plonk.Verify(proof, vk, public); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}
	log.Info().Str("backend", backend).Dur("took", time.Since(start)).Msg("proof verified")
	return nil
}
