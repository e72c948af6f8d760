package arion

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/selector"

	"github.com/vocdoni/arion/internal/params"
	"github.com/vocdoni/arion/tree"
)

// Level is one level of a Merkle opening: the permutation pre-image of the
// level and the 1-based slot of the opened child.
type Level struct {
	Elements []frontend.Variable
	Index    frontend.Variable
}

// Branch is a tree.Branch as circuit inputs.
type Branch struct {
	Path []Level
	Root frontend.Variable
}

// NewBranch allocates an empty Branch shaped for depth levels of width
// limbs, to be used as a circuit definition placeholder.
func NewBranch(depth, width int) Branch {
	b := Branch{Path: make([]Level, depth)}
	for i := range b.Path {
		b.Path[i].Elements = make([]frontend.Variable, width)
	}
	return b
}

// ValueOfBranch converts a native branch into a witness assignment.
func ValueOfBranch(nb *tree.Branch) Branch {
	b := NewBranch(nb.Depth(), nb.Width())
	for i, lvl := range nb.Path {
		for j := range lvl.Elements {
			b.Path[i].Elements[j] = lvl.Elements[j]
		}
		b.Path[i].Index = lvl.Index
	}
	b.Root = nb.Root
	return b
}

// AssertOpening constrains b to be a valid opening of leaf under b.Root,
// using the default instance.
func AssertOpening(api frontend.API, leaf frontend.Variable, b Branch) error {
	return AssertOpeningWith(api, params.Default(), leaf, b)
}

// AssertOpeningWith constrains, for every level, that the selected slot holds
// the digest of the level below (the leaf at the bottom), that the occupancy
// bitmask has the slot's bit set, and that the top digest equals b.Root.
func AssertOpeningWith(api frontend.API, p *params.Parameters, leaf frontend.Variable, b Branch) error {
	g, err := NewGadget(api, p)
	if err != nil {
		return err
	}
	if len(b.Path) == 0 {
		return fmt.Errorf("arion: empty opening")
	}

	current := leaf
	state := make([]frontend.Variable, p.Width)
	for i, lvl := range b.Path {
		if len(lvl.Elements) != p.Width {
			return fmt.Errorf("arion: level %d has %d limbs, want %d", i, len(lvl.Elements), p.Width)
		}
		api.AssertIsDifferent(lvl.Index, 0)
		api.AssertIsEqual(selector.Mux(api, lvl.Index, lvl.Elements...), current)

		bits := api.ToBinary(lvl.Elements[0], p.Rate())
		api.AssertIsEqual(selector.Mux(api, api.Sub(lvl.Index, 1), bits...), 1)

		copy(state, lvl.Elements)
		g.Permute(state)
		current = state[1]
	}
	api.AssertIsEqual(current, b.Root)
	return nil
}
