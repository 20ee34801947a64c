// Package builder: reference fixtures with independently known values.
package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/grundy/game"
)

// KnownGame is a reference position list with independently known
// nimber and/or symmetry facts, used by tests and benchmarks.
type KnownGame struct {
	// Name identifies the fixture in test output.
	Name string

	// Parts are the connected canonical positions of the game.
	Parts []game.Position

	// Nimber is the expected combined nimber when HasNimber is set.
	Nimber    int
	HasNimber bool

	// Symmetric is the expected symmetry verdict when HasSymmetry is
	// set: after cancelling identical component pairs, every remaining
	// component has (or lacks) an involution.
	Symmetric   bool
	HasSymmetry bool
}

// CheckNimber reports whether the computed nimber matches the
// expectation; fixtures without one accept any value.
func (k KnownGame) CheckNimber(n int) bool {
	return !k.HasNimber || k.Nimber == n
}

// CheckSymmetry verifies the symmetry expectation. Identical component
// pairs cancel first — a doubled component mirrors itself regardless
// of its own symmetry.
func (k KnownGame) CheckSymmetry() bool {
	if !k.HasSymmetry {
		return true
	}
	parts := append([]game.Position(nil), k.Parts...)
	sort.Slice(parts, func(i, j int) bool { return parts[i].Key() < parts[j].Key() })
	reduced := parts[:0]
	for i := 0; i < len(parts); {
		if i+1 < len(parts) && parts[i].Equal(parts[i+1]) {
			i += 2
			continue
		}
		reduced = append(reduced, parts[i])
		i++
	}
	for _, p := range reduced {
		if _, ok := p.FindSymmetry(); ok != k.Symmetric {
			return false
		}
	}
	return true
}

// KnownGames returns the reference fixture list.
// Panics if a fixture fails to build; the list is a compile-time
// constant in spirit.
func KnownGames() []KnownGame {
	fix := func(name string, b Builder) KnownGame {
		parts, err := b.Build()
		if err != nil {
			panic(fmt.Sprintf("builder: known game %s failed to build: %v", name, err))
		}
		return KnownGame{Name: name, Parts: parts}
	}
	withNimber := func(k KnownGame, n int) KnownGame {
		k.Nimber, k.HasNimber = n, true
		return k
	}
	symmetric := func(k KnownGame, s bool) KnownGame {
		k.Symmetric, k.HasSymmetry = s, true
		return k
	}

	return []KnownGame{
		symmetric(withNimber(fix("rect(1,3)", Rect(1, 3)), 3), false),
		symmetric(withNimber(fix("rect(4,1)", Rect(4, 1)), 4), false),
		symmetric(withNimber(fix("heap(100)", Heap(100)), 100), false),
		symmetric(withNimber(fix("heap(101)", Heap(101)), 101), false),
		symmetric(withNimber(fix("heap(16)+heap(8)+heap(7)", Heap(16).Sum(Heap(8).Sum(Heap(7)))), 31), false),
		symmetric(withNimber(fix("rect(2,2)", Rect(2, 2)), 0), true),
		symmetric(withNimber(fix("rect(3,3)", Rect(3, 3)), 0), false),
		symmetric(fix("rect(3,4)", Rect(3, 4)), false),
		symmetric(withNimber(fix("rect(4,4)", Rect(4, 4)), 0), true),
		symmetric(fix("rect(5,4)", Rect(5, 4)), false),
		symmetric(withNimber(fix("cube(3,2)", HyperCube(3, 2)), 0), true),
		symmetric(withNimber(fix("rect(5,5)", Rect(5, 5)), 0), false),
		symmetric(fix("tetrahedron(10)", HyperTetrahedron(10)), false),
	}
}
