package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/arion"
	"github.com/vocdoni/arion/tree"
)

// run executes the app over the default instance and returns stdout lines.
func run(t *testing.T, args ...string) ([]string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	argv := append([]string{"arion", "--width", "5", "--rounds", "5", "--log-level", "error"}, args...)
	err := app.Run(argv)
	return strings.Split(strings.TrimSpace(out.String()), "\n"), err
}

func TestTreeCommand(t *testing.T) {
	lines, err := run(t, "tree", "--leaves", "5", "--depth", "2", "--index", "4", "--hex")
	require.NoError(t, err)
	require.Len(t, lines, 4)

	p := arion.DefaultParams()
	want, err := tree.NewWithParams[*demoLeaf, uint64](p, 2)
	require.NoError(t, err)
	for i := uint64(0); i < 5; i++ {
		l, err := newDemoLeaf(p, i)
		require.NoError(t, err)
		_, err = want.Push(l)
		require.NoError(t, err)
	}
	root := want.Root()
	require.Equal(t, "root: "+root.String(), lines[0])
	require.Equal(t, "level 0: index 1 mask 1", lines[1])
	require.Equal(t, "level 1: index 2 mask 3", lines[2])

	buf, err := hex.DecodeString(lines[3])
	require.NoError(t, err)
	b, err := tree.DecodeBranch(buf, 2, arion.Width)
	require.NoError(t, err)
	require.True(t, b.Root.Equal(&root))
	leaf, ok := want.Get(4)
	require.True(t, ok)
	require.NoError(t, b.Verify(leaf.ArionHash()))
}

func TestTreeCommandRejects(t *testing.T) {
	_, err := run(t, "tree", "--leaves", "5", "--depth", "2", "--index", "5")
	require.Error(t, err)

	_, err = run(t, "tree", "--leaves", "17", "--depth", "2")
	require.ErrorIs(t, err, tree.ErrTreeFull)
}

func TestPermuteCommand(t *testing.T) {
	lines, err := run(t, "permute", "0", "1", "2", "3", "4")
	require.NoError(t, err)

	state := make([]fr.Element, arion.Width)
	for i := range state {
		state[i].SetUint64(uint64(i))
	}
	require.NoError(t, arion.Permute(state))
	require.Len(t, lines, arion.Width)
	for i := range state {
		require.Equal(t, state[i].String(), lines[i])
	}

	_, err = run(t, "permute", "1", "2")
	require.ErrorIs(t, err, arion.ErrStateWidth)
}

func TestHashCommand(t *testing.T) {
	lines, err := run(t, "hash", "--label", "arion_test", "1", "2", "3")
	require.NoError(t, err)
	require.Equal(t, []string{"17743132104732785543519238250601724903862166945464471965040493176663744654049"}, lines)

	_, err = run(t, "hash")
	require.ErrorIs(t, err, arion.ErrNoInputs)
}
