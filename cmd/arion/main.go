package main

import (
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/vocdoni/arion"
)

var log = zerolog.New(os.Stderr)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("arion failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "arion",
		Usage: "Arion permutation, sponge and Merkle tree over the BLS12-381 scalar field",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Usage:   "Permutation width, 2 to 8",
				EnvVars: []string{"ARION_WIDTH"},
				Value:   arion.Width,
			},
			&cli.IntFlag{
				Name:    "rounds",
				Usage:   "Number of rounds, 1 to 6",
				EnvVars: []string{"ARION_ROUNDS"},
				Value:   arion.Rounds,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"ARION_LOG_LEVEL"},
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			permuteCommand(),
			hashCommand(),
			treeCommand(),
			circuitCommand(),
		},
	}
}

func setupLogger(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
	logger.Set(log)
	return nil
}

// instance returns the parameters selected by the global flags.
func instance(c *cli.Context) (*arion.Params, error) {
	p, err := arion.NewParams(c.Int("width"), c.Int("rounds"))
	if err != nil {
		return nil, err
	}
	log.Debug().Int("width", p.Width).Int("rounds", p.Rounds).Msg("parameters ready")
	return p, nil
}

func parseElements(args []string) ([]fr.Element, error) {
	out := make([]fr.Element, len(args))
	for i, a := range args {
		if _, err := out[i].SetString(a); err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i, a, err)
		}
	}
	return out, nil
}

func permuteCommand() *cli.Command {
	return &cli.Command{
		Name:      "permute",
		Usage:     "Apply the permutation to width field elements",
		ArgsUsage: "<x0> <x1> ...",
		Action: func(c *cli.Context) error {
			p, err := instance(c)
			if err != nil {
				return err
			}
			state, err := parseElements(c.Args().Slice())
			if err != nil {
				return err
			}
			if err := arion.PermuteWith(p, state); err != nil {
				return err
			}
			for _, e := range state {
				fmt.Fprintln(c.App.Writer, e.String())
			}
			return nil
		},
	}
}

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Compute the sponge digest of field elements",
		ArgsUsage: "<x0> <x1> ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "domain",
				Usage: "Domain separator, as a field element",
				Value: "0",
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "Domain separator label, read as little-endian bytes (overrides --domain)",
			},
		},
		Action: func(c *cli.Context) error {
			p, err := instance(c)
			if err != nil {
				return err
			}
			var domain fr.Element
			if label := c.String("label"); label != "" {
				domain = arion.DomainFromLEBytes([]byte(label))
			} else if _, err := domain.SetString(c.String("domain")); err != nil {
				return fmt.Errorf("invalid domain: %w", err)
			}
			inputs, err := parseElements(c.Args().Slice())
			if err != nil {
				return err
			}
			start := time.Now()
			digest, err := arion.HashWith(p, domain, inputs...)
			if err != nil {
				return err
			}
			log.Debug().Int("inputs", len(inputs)).Dur("took", time.Since(start)).Msg("hashed")
			fmt.Fprintln(c.App.Writer, digest.String())
			return nil
		},
	}
}
