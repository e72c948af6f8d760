package tree

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/internal/strategy"
)

// NullRoot is the root of an empty tree.
var NullRoot fr.Element

var ErrInvalidBranch = errors.New("arion: invalid branch")

// Level is one level of a Merkle opening.
type Level struct {
	// Elements is the permutation pre-image of the level: the occupancy
	// bitmask followed by the contribution of every child slot.
	Elements []fr.Element
	// Index is the 1-based slot of the opened child.
	Index uint64
}

// OffsetFlag returns the bit of Elements[0] marking the opened child.
func (l *Level) OffsetFlag() uint64 {
	return 1 << (l.Index - 1)
}

// Value returns the opened child's contribution. It reports false when
// Index does not name a child slot, as in a level decoded from untrusted
// bytes.
func (l *Level) Value() (fr.Element, bool) {
	if l.Index < 1 || l.Index >= uint64(len(l.Elements)) {
		return fr.Element{}, false
	}
	return l.Elements[l.Index], true
}

// Branch is a full opening from a leaf, at Path[0], to Root.
type Branch struct {
	Path []Level
	Root fr.Element
}

func (b *Branch) Depth() int {
	return len(b.Path)
}

func (b *Branch) Width() int {
	if len(b.Path) == 0 {
		return 0
	}
	return len(b.Path[0].Elements)
}

// Value returns the opened leaf hash.
func (b *Branch) Value() (fr.Element, bool) {
	if len(b.Path) == 0 {
		return fr.Element{}, false
	}
	return b.Path[0].Value()
}

// Branch returns the opening of the n-th leaf. Root is the digest of the
// top level with its actual occupancy bitmask, so it always equals Root() of
// the tree. Only levels synthesized above the top node carry the single
// child mask 1.
func (t *Tree[L, K]) Branch(n uint64) (*Branch, bool) {
	if t.root == nil {
		return nil, false
	}
	steps, ok := t.root.walk(n)
	if !ok {
		return nil, false
	}

	b := &Branch{Path: make([]Level, t.depth)}
	for i := range steps {
		st := steps[len(steps)-1-i]
		b.Path[i] = Level{
			Elements: st.node.preimage(t.cfg),
			Index:    uint64(st.slot) + 1,
		}
	}
	// Above the top node every virtual level has a single child.
	for i := len(steps); i < t.depth; i++ {
		b.Path[i] = Level{
			Elements: promoted(t.cfg.params.Width, t.cfg.digest(b.Path[i-1].Elements)),
			Index:    1,
		}
	}
	b.Root = t.cfg.digest(b.Path[t.depth-1].Elements)
	return b, true
}

// Verify checks b as an opening of leaf over the default instance.
func (b *Branch) Verify(leaf fr.Element) error {
	return b.VerifyWith(params.Default(), leaf)
}

// VerifyWith recomputes every level digest with p and checks it against the
// slot it is opened at in the level above, and finally against Root.
func (b *Branch) VerifyWith(p *params.Parameters, leaf fr.Element) error {
	if len(b.Path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidBranch)
	}
	perm := strategy.NewScalar(p)
	state := make([]fr.Element, p.Width)
	current := leaf
	for i := range b.Path {
		lvl := &b.Path[i]
		if len(lvl.Elements) != p.Width {
			return fmt.Errorf("%w: level %d has %d limbs, want %d", ErrInvalidBranch, i, len(lvl.Elements), p.Width)
		}
		if lvl.Index < 1 || lvl.Index > uint64(p.Rate()) {
			return fmt.Errorf("%w: level %d index %d out of range", ErrInvalidBranch, i, lvl.Index)
		}
		mask := &lvl.Elements[0]
		if !mask.IsUint64() || mask.Uint64()&lvl.OffsetFlag() == 0 {
			return fmt.Errorf("%w: level %d bitmask does not mark slot %d", ErrInvalidBranch, i, lvl.Index)
		}
		if v, ok := lvl.Value(); !ok || !v.Equal(&current) {
			return fmt.Errorf("%w: level %d does not open the digest below", ErrInvalidBranch, i)
		}
		copy(state, lvl.Elements)
		perm.Permute(state)
		current = state[1]
	}
	if !current.Equal(&b.Root) {
		return fmt.Errorf("%w: root mismatch", ErrInvalidBranch)
	}
	return nil
}
