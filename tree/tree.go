// Package tree implements an append-only Merkle tree annotated with Arion
// roots, cardinalities and maximum keys, and its fixed depth openings.
package tree

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

var (
	ErrTreeFull     = errors.New("arion: tree is full")
	ErrInvalidDepth = errors.New("arion: invalid tree depth")
)

// Tree is an append-only n-ary Merkle tree of arity Width-1 whose openings
// have a fixed depth. Mutations copy the rightmost path only, so a Tree
// obtained from Clone is an immutable snapshot that can be read from several
// goroutines. A single Tree must not be mutated concurrently.
type Tree[L Leaf[K], K cmp.Ordered] struct {
	cfg      *config
	depth    int
	capacity uint64
	root     *stack[L, K]
}

// New returns an empty tree over the default instance.
func New[L Leaf[K], K cmp.Ordered](depth int) (*Tree[L, K], error) {
	return NewWithParams[L, K](params.Default(), depth)
}

// NewWithParams returns an empty tree over the instance p.
func NewWithParams[L Leaf[K], K cmp.Ordered](p *params.Parameters, depth int) (*Tree[L, K], error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return &Tree[L, K]{
		cfg:      &config{params: p, perm: strategy.NewScalar(p)},
		depth:    depth,
		capacity: capacity(uint64(p.Rate()), depth),
	}, nil
}

// capacity returns arity^depth, saturated at MaxUint64.
func capacity(arity uint64, depth int) uint64 {
	c := uint64(1)
	for i := 0; i < depth; i++ {
		if c > math.MaxUint64/arity {
			return math.MaxUint64
		}
		c *= arity
	}
	return c
}

// Depth returns the number of levels of every opening.
func (t *Tree[L, K]) Depth() int {
	return t.depth
}

// Len returns the number of leaves.
func (t *Tree[L, K]) Len() uint64 {
	if t.root == nil {
		return 0
	}
	return t.root.anno.Cardinality
}

// Annotation returns the annotation of the top node, the zero annotation for
// an empty tree.
func (t *Tree[L, K]) Annotation() Annotation[K] {
	if t.root == nil {
		return Annotation[K]{}
	}
	return t.root.anno
}

// Clone returns a snapshot of t sharing all nodes with it.
func (t *Tree[L, K]) Clone() *Tree[L, K] {
	c := *t
	return &c
}

// Push appends leaf, after setting its position, and returns that position.
func (t *Tree[L, K]) Push(leaf L) (uint64, error) {
	pos := t.Len()
	if pos >= t.capacity {
		return 0, fmt.Errorf("%w: %d leaves at depth %d", ErrTreeFull, pos, t.depth)
	}
	leaf.SetPos(pos)

	if t.root == nil {
		t.root = newLeaves[L, K](t.cfg, []L{leaf})
		return pos, nil
	}
	if root, ok := t.root.push(t.cfg, leaf); ok {
		t.root = root
		return pos, nil
	}
	grown := singleton[L, K](t.cfg, leaf, t.root.height)
	t.root = newNode(t.cfg, t.root.height+1, []*stack[L, K]{t.root, grown})
	return pos, nil
}

// Pop removes and returns the last leaf.
func (t *Tree[L, K]) Pop() (L, bool) {
	if t.root == nil {
		var zero L
		return zero, false
	}
	root, leaf := t.root.pop(t.cfg)
	for root != nil && root.height > 0 && len(root.children) == 1 {
		root = root.children[0]
	}
	t.root = root
	return leaf, true
}

// Get returns the n-th leaf.
func (t *Tree[L, K]) Get(n uint64) (L, bool) {
	var zero L
	if t.root == nil {
		return zero, false
	}
	steps, ok := t.root.walk(n)
	if !ok {
		return zero, false
	}
	last := steps[len(steps)-1]
	return last.node.leaves[last.slot], true
}

// Root returns the root every opening of the tree commits to, NullRoot for
// an empty tree.
func (t *Tree[L, K]) Root() fr.Element {
	if t.root == nil {
		return NullRoot
	}
	digest := t.root.anno.Root
	for level := t.root.height + 1; level < t.depth; level++ {
		digest = t.cfg.digest(promoted(t.cfg.params.Width, digest))
	}
	return digest
}

// Leaves iterates over the leaves from position start on.
func (t *Tree[L, K]) Leaves(start uint64) iter.Seq2[uint64, L] {
	return func(yield func(uint64, L) bool) {
		if t.root == nil || start >= t.Len() {
			return
		}
		pos := start
		t.root.each(start, func(l L) bool {
			ok := yield(pos, l)
			pos++
			return ok
		})
	}
}

// Walk iterates over the leaves whose enclosing subtrees, and own singleton
// annotation, are all accepted by fn. Rejected subtrees are skipped whole.
func (t *Tree[L, K]) Walk(fn func(Annotation[K]) bool) iter.Seq[L] {
	return func(yield func(L) bool) {
		if t.root == nil {
			return
		}
		t.root.filter(fn, yield)
	}
}

// digest returns slot 1 of the permutation of pre.
func (c *config) digest(pre []fr.Element) fr.Element {
	state := make([]fr.Element, len(pre))
	copy(state, pre)
	c.perm.Permute(state)
	return state[1]
}

// promoted returns the pre-image of a virtual level whose only child, in
// slot 1, has the given digest.
func promoted(width int, digest fr.Element) []fr.Element {
	out := make([]fr.Element, width)
	out[0].SetOne()
	out[1] = digest
	return out
}
