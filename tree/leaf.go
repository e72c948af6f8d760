package tree

import (
	"cmp"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Leaf is implemented by the payloads stored in a Tree.
//
// Push calls SetPos with the index the leaf is stored at before inserting it,
// so implementations are usually pointer types.
type Leaf[K cmp.Ordered] interface {
	// ArionHash is the value the leaf contributes to its parent's pre-image.
	ArionHash() fr.Element
	// Key is aggregated into the MaxKey annotation of every ancestor.
	Key() K
	// Pos is the index of the leaf in the tree.
	Pos() uint64
	SetPos(pos uint64)
}
