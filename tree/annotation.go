package tree

import (
	"cmp"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MaxKey is the maximum key of a subtree, or bottom for an empty one.
type MaxKey[K cmp.Ordered] struct {
	key K
	ok  bool
}

// Maximum returns a MaxKey holding k.
func Maximum[K cmp.Ordered](k K) MaxKey[K] {
	return MaxKey[K]{key: k, ok: true}
}

// Get returns the key and whether the subtree had any leaf.
func (m MaxKey[K]) Get() (K, bool) {
	return m.key, m.ok
}

// Less orders bottom below every key.
func (m MaxKey[K]) Less(o MaxKey[K]) bool {
	if !o.ok {
		return false
	}
	return !m.ok || m.key < o.key
}

func (m MaxKey[K]) max(o MaxKey[K]) MaxKey[K] {
	if m.Less(o) {
		return o
	}
	return m
}

// Annotation is the aggregate cached on every node of a Tree.
type Annotation[K cmp.Ordered] struct {
	// Root is slot 1 of the permuted occupancy pre-image of the node.
	Root        fr.Element
	Cardinality uint64
	MaxKey      MaxKey[K]
}

// annotate recomputes the annotation of s from its children.
func (s *stack[L, K]) annotate(c *config) {
	pre := s.preimage(c)
	c.perm.Permute(pre)

	a := Annotation[K]{Root: pre[1]}
	if s.height == 0 {
		for _, l := range s.leaves {
			a.Cardinality++
			a.MaxKey = a.MaxKey.max(Maximum(l.Key()))
		}
	} else {
		for _, child := range s.children {
			a.Cardinality += child.anno.Cardinality
			a.MaxKey = a.MaxKey.max(child.anno.MaxKey)
		}
	}
	s.anno = a
}

// preimage returns the permutation input of s: slot 0 is the occupancy
// bitmask, slot i+1 the contribution of child i.
func (s *stack[L, K]) preimage(c *config) []fr.Element {
	out := make([]fr.Element, c.params.Width)
	var mask uint64
	if s.height == 0 {
		for i, l := range s.leaves {
			mask |= 1 << i
			out[i+1] = l.ArionHash()
		}
	} else {
		for i, child := range s.children {
			mask |= 1 << i
			out[i+1] = child.anno.Root
		}
	}
	out[0].SetUint64(mask)
	return out
}
