package main

import (
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/urfave/cli/v2"

	"github.com/vocdoni/arion"
	"github.com/vocdoni/arion/tree"
)

// demoLeaf is a leaf whose hash is the sponge digest of its key.
type demoLeaf struct {
	hash fr.Element
	key  uint64
	pos  uint64
}

var leafDomain = arion.DomainFromLEBytes([]byte("arion_cli_leaf"))

func newDemoLeaf(p *arion.Params, key uint64) (*demoLeaf, error) {
	var k fr.Element
	k.SetUint64(key)
	h, err := arion.HashWith(p, leafDomain, k)
	if err != nil {
		return nil, err
	}
	return &demoLeaf{hash: h, key: key}, nil
}

func (l *demoLeaf) ArionHash() fr.Element { return l.hash }
func (l *demoLeaf) Key() uint64           { return l.key }
func (l *demoLeaf) Pos() uint64           { return l.pos }
func (l *demoLeaf) SetPos(pos uint64)     { l.pos = pos }

func treeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Build a demo tree, print its root and the opening of one leaf",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "leaves", Usage: "Number of leaves to push", Value: 16},
			&cli.IntFlag{Name: "depth", Usage: "Opening depth", Value: 4},
			&cli.Uint64Flag{Name: "index", Usage: "Leaf to open"},
			&cli.BoolFlag{Name: "hex", Usage: "Print the encoded branch as hex"},
		},
		Action: func(c *cli.Context) error {
			p, err := instance(c)
			if err != nil {
				return err
			}
			t, err := tree.NewWithParams[*demoLeaf, uint64](p, c.Int("depth"))
			if err != nil {
				return err
			}
			for i := uint64(0); i < c.Uint64("leaves"); i++ {
				l, err := newDemoLeaf(p, i)
				if err != nil {
					return err
				}
				if _, err := t.Push(l); err != nil {
					return fmt.Errorf("push leaf %d: %w", i, err)
				}
			}
			root := t.Root()
			anno := t.Annotation()
			maxKey, _ := anno.MaxKey.Get()
			log.Info().
				Uint64("leaves", t.Len()).
				Int("depth", t.Depth()).
				Uint64("maxKey", maxKey).
				Msg("tree built")
			fmt.Fprintln(c.App.Writer, "root:", root.String())

			index := c.Uint64("index")
			b, ok := t.Branch(index)
			if !ok {
				return fmt.Errorf("no leaf at index %d", index)
			}
			leaf, _ := t.Get(index)
			if err := b.VerifyWith(p, leaf.ArionHash()); err != nil {
				return err
			}
			for i, lvl := range b.Path {
				mask := lvl.Elements[0]
				fmt.Fprintf(c.App.Writer, "level %d: index %d mask %s\n", i, lvl.Index, mask.String())
			}
			if c.Bool("hex") {
				buf, err := b.MarshalBinary()
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, hex.EncodeToString(buf))
			}
			log.Info().Uint64("index", index).Msg("branch verified")
			return nil
		},
	}
}
