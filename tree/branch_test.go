package tree

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/arion"
)

func TestVerifyRejectsTampering(t *testing.T) {
	tr := newTree(t, 3, 0, 1, 2, 3, 4, 5, 6)
	leaf, _ := tr.Get(5)
	h := leaf.ArionHash()

	fresh := func() *Branch {
		b, ok := tr.Branch(5)
		require.True(t, ok)
		require.NoError(t, b.Verify(h))
		return b
	}

	var other fr.Element
	other.SetUint64(12345)
	require.ErrorIs(t, fresh().Verify(other), ErrInvalidBranch)

	b := fresh()
	b.Root.Add(&b.Root, &other)
	require.ErrorIs(t, b.Verify(h), ErrInvalidBranch)

	b = fresh()
	b.Path[1].Elements[3].SetUint64(7)
	require.ErrorIs(t, b.Verify(h), ErrInvalidBranch)

	b = fresh()
	b.Path[0].Elements[0].SetUint64(0b0001)
	require.ErrorIs(t, b.Verify(h), ErrInvalidBranch)

	b = fresh()
	b.Path[0].Index = 0
	require.ErrorIs(t, b.Verify(h), ErrInvalidBranch)

	b = fresh()
	b.Path = b.Path[:2]
	require.ErrorIs(t, b.Verify(h), ErrInvalidBranch)
}

func TestBranchWithSmallerInstance(t *testing.T) {
	p, err := arion.NewParams(3, 4)
	require.NoError(t, err)
	tr, err := NewWithParams[*note, uint64](p, 4)
	require.NoError(t, err)
	for i := uint64(0); i < 11; i++ {
		_, err := tr.Push(newNote(i))
		require.NoError(t, err)
	}
	root := tr.Root()
	for i := uint64(0); i < 11; i++ {
		b, ok := tr.Branch(i)
		require.True(t, ok)
		require.Equal(t, 3, b.Width())
		require.True(t, b.Root.Equal(&root))
		leaf, _ := tr.Get(i)
		require.NoError(t, b.VerifyWith(p, leaf.ArionHash()))
		require.Error(t, b.Verify(leaf.ArionHash()))
	}

	_, err = tr.Push(newNote(99))
	require.NoError(t, err)
	require.Equal(t, uint64(12), tr.Len())
}
