package tree

import (
	"cmp"
	"slices"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

type config struct {
	params *params.Parameters
	perm   *strategy.Scalar
}

func (c *config) arity() int {
	return c.params.Rate()
}

// stack is an immutable node of an append-only n-ary stack. Occupied slots
// always form a prefix, every child but the last one is full, and mutations
// return new nodes along the rightmost path.
type stack[L Leaf[K], K cmp.Ordered] struct {
	height   int
	leaves   []L
	children []*stack[L, K]
	anno     Annotation[K]
}

// step records the child slot taken at one node of a walk.
type step[L Leaf[K], K cmp.Ordered] struct {
	node *stack[L, K]
	slot int
}

func newLeaves[L Leaf[K], K cmp.Ordered](c *config, leaves []L) *stack[L, K] {
	s := &stack[L, K]{leaves: leaves}
	s.annotate(c)
	return s
}

func newNode[L Leaf[K], K cmp.Ordered](c *config, height int, children []*stack[L, K]) *stack[L, K] {
	s := &stack[L, K]{height: height, children: children}
	s.annotate(c)
	return s
}

// singleton returns a subtree of the given height holding only l.
func singleton[L Leaf[K], K cmp.Ordered](c *config, l L, height int) *stack[L, K] {
	s := newLeaves[L, K](c, []L{l})
	for h := 1; h <= height; h++ {
		s = newNode(c, h, []*stack[L, K]{s})
	}
	return s
}

// push returns a copy of s with l appended, or false when s is full.
func (s *stack[L, K]) push(c *config, l L) (*stack[L, K], bool) {
	if s.height == 0 {
		if len(s.leaves) == c.arity() {
			return nil, false
		}
		return newLeaves[L, K](c, append(slices.Clone(s.leaves), l)), true
	}

	last := len(s.children) - 1
	if child, ok := s.children[last].push(c, l); ok {
		children := slices.Clone(s.children)
		children[last] = child
		return newNode(c, s.height, children), true
	}
	if len(s.children) == c.arity() {
		return nil, false
	}
	children := append(slices.Clone(s.children), singleton[L, K](c, l, s.height-1))
	return newNode(c, s.height, children), true
}

// pop returns a copy of s without its last leaf, nil when that leaf was the
// only one, and the removed leaf.
func (s *stack[L, K]) pop(c *config) (*stack[L, K], L) {
	if s.height == 0 {
		n := len(s.leaves) - 1
		l := s.leaves[n]
		if n == 0 {
			return nil, l
		}
		return newLeaves[L, K](c, slices.Clone(s.leaves[:n])), l
	}

	n := len(s.children) - 1
	child, l := s.children[n].pop(c)
	children := slices.Clone(s.children[:n])
	if child != nil {
		children = append(children, child)
	}
	if len(children) == 0 {
		return nil, l
	}
	return newNode(c, s.height, children), l
}

// walk returns the root to leaf steps leading to the n-th leaf.
func (s *stack[L, K]) walk(n uint64) ([]step[L, K], bool) {
	if n >= s.anno.Cardinality {
		return nil, false
	}
	steps := make([]step[L, K], 0, s.height+1)
	node := s
	for node.height > 0 {
		for i, child := range node.children {
			if n < child.anno.Cardinality {
				steps = append(steps, step[L, K]{node: node, slot: i})
				node = child
				break
			}
			n -= child.anno.Cardinality
		}
	}
	return append(steps, step[L, K]{node: node, slot: int(n)}), true
}

// each yields the leaves of s in order, skipping the first skip ones.
func (s *stack[L, K]) each(skip uint64, yield func(L) bool) bool {
	if s.height == 0 {
		for _, l := range s.leaves[skip:] {
			if !yield(l) {
				return false
			}
		}
		return true
	}
	for _, child := range s.children {
		if skip >= child.anno.Cardinality {
			skip -= child.anno.Cardinality
			continue
		}
		if !child.each(skip, yield) {
			return false
		}
		skip = 0
	}
	return true
}

// filter yields the leaves of the subtrees whose annotation is accepted by fn.
func (s *stack[L, K]) filter(fn func(Annotation[K]) bool, yield func(L) bool) bool {
	if !fn(s.anno) {
		return true
	}
	if s.height == 0 {
		for _, l := range s.leaves {
			a := Annotation[K]{Root: l.ArionHash(), Cardinality: 1, MaxKey: Maximum(l.Key())}
			if fn(a) && !yield(l) {
				return false
			}
		}
		return true
	}
	for _, child := range s.children {
		if !child.filter(fn, yield) {
			return false
		}
	}
	return true
}
