package hanoi

import (
	"fmt"
)

// Game is one puzzle in progress. A Game is owned by a single caller.
type Game struct {
	pegs    [NumPegs][]int
	discs   int
	moves   int
	solving bool
	epoch   int // bumped by Reset and NewSolver; stale solvers compare it
}

// New returns a game with discs n..1 stacked on peg A.
func New(n int) (*Game, error) {
	if n < 0 || n > MaxDiscs {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiscs, n)
	}
	g := &Game{discs: n}
	g.Reset()

	return g, nil
}

// Reset puts every disc back on peg A, zeroes the move counter and ends any
// running solve. A Solver created before Reset reports done on its next call.
func (g *Game) Reset() {
	tower := make([]int, 0, g.discs)
	for d := g.discs; d >= 1; d-- {
		tower = append(tower, d)
	}
	g.pegs = [NumPegs][]int{tower, make([]int, 0, g.discs), make([]int, 0, g.discs)}
	g.moves = 0
	g.solving = false
	g.epoch++
}

// Discs returns n.
func (g *Game) Discs() int { return g.discs }

// Moves returns the number of moves applied since the last Reset.
func (g *Game) Moves() int { return g.moves }

// Solving reports whether a Solver currently drives the game.
func (g *Game) Solving() bool { return g.solving }

// Solved reports whether peg C holds all discs.
func (g *Game) Solved() bool { return len(g.pegs[C]) == g.discs }

// Pegs returns a copy of the three pegs, each listed bottom to top.
func (g *Game) Pegs() [NumPegs][]int {
	var out [NumPegs][]int
	for i, p := range g.pegs {
		out[i] = append([]int{}, p...)
	}

	return out
}

// Top returns the smallest disc on p, or false when p is empty or unknown.
func (g *Game) Top(p Peg) (int, bool) {
	if !p.Valid() || len(g.pegs[p]) == 0 {
		return 0, false
	}

	return g.pegs[p][len(g.pegs[p])-1], true
}

// IsLegalMove reports whether from has a disc that may rest on to: to is
// empty or its top disc is larger.
func (g *Game) IsLegalMove(from, to Peg) bool {
	disc, ok := g.Top(from)
	if !ok || !to.Valid() {
		return false
	}
	top, ok := g.Top(to)

	return !ok || top > disc
}

// Apply moves the top disc of from onto to and reports whether the game is
// now won. It fails with ErrSolving while a Solver owns the game.
func (g *Game) Apply(from, to Peg) (bool, error) {
	if g.solving {
		return false, ErrSolving
	}
	if _, err := g.apply(from, to); err != nil {
		return false, err
	}

	return g.Solved(), nil
}

func (g *Game) apply(from, to Peg) (Move, error) {
	if !g.IsLegalMove(from, to) {
		return Move{}, fmt.Errorf("%w: %s -> %s", ErrIllegalMove, from, to)
	}
	src := g.pegs[from]
	disc := src[len(src)-1]
	g.pegs[from] = src[:len(src)-1]
	g.pegs[to] = append(g.pegs[to], disc)
	g.moves++

	return Move{Disc: disc, From: from, To: to}, nil
}
