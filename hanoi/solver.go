package hanoi

import (
	"context"
	"fmt"
	"iter"
	"slices"
)

// Solve returns the optimal move sequence that carries n discs from source to
// target: 2^n - 1 moves, none for n <= 0.
func Solve(n int, source, target, auxiliary Peg) []Move {
	return slices.Collect(Steps(n, source, target, auxiliary))
}

// Steps yields the sequence Solve returns, one move at a time. Stopping the
// range loop stops the recursion before the next move is produced.
func Steps(n int, source, target, auxiliary Peg) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		tower(n, source, target, auxiliary, yield)
	}
}

// tower moves discs 1..n from source to target; false means the consumer quit.
func tower(n int, source, target, auxiliary Peg, yield func(Move) bool) bool {
	if n <= 0 {
		return true
	}
	if !tower(n-1, source, auxiliary, target, yield) {
		return false
	}
	if !yield(Move{Disc: n, From: source, To: target}) {
		return false
	}

	return tower(n-1, auxiliary, target, source, yield)
}

// StepsFrom yields the shortest sequence that gathers every disc of pegs onto
// target. pegs lists each peg bottom to top and must hold discs 1..n exactly
// once in strictly decreasing stacks, otherwise ErrInvalidPosition is
// returned. From the starting position it yields the same moves as Steps.
func StepsFrom(pegs [NumPegs][]int, target Peg) (iter.Seq[Move], error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: target %s", ErrInvalidPosition, target)
	}
	where, err := locate(pegs)
	if err != nil {
		return nil, err
	}

	return func(yield func(Move) bool) {
		pos := slices.Clone(where)
		gather(pos, len(pos)-1, target, yield)
	}, nil
}

// locate returns pos where pos[d] is the peg holding disc d (index 0 unused).
func locate(pegs [NumPegs][]int) ([]Peg, error) {
	n := 0
	for _, p := range pegs {
		n += len(p)
	}
	pos := make([]Peg, n+1)
	seen := make([]bool, n+1)
	for i, p := range pegs {
		for j, d := range p {
			if d < 1 || d > n || seen[d] {
				return nil, fmt.Errorf("%w: disc %d on peg %s", ErrInvalidPosition, d, Peg(i))
			}
			if j > 0 && p[j-1] < d {
				return nil, fmt.Errorf("%w: disc %d rests on %d", ErrInvalidPosition, d, p[j-1])
			}
			seen[d] = true
			pos[d] = Peg(i)
		}
	}

	return pos, nil
}

// gather moves discs 1..k onto target. The largest disc either already sits on
// target, or the smaller ones are parked on the spare peg first so it can go
// across in one move.
func gather(pos []Peg, k int, target Peg, yield func(Move) bool) bool {
	if k <= 0 {
		return true
	}
	from := pos[k]
	if from == target {
		return gather(pos, k-1, target, yield)
	}
	if !gather(pos, k-1, other(from, target), yield) {
		return false
	}
	pos[k] = target
	if !yield(Move{Disc: k, From: from, To: target}) {
		return false
	}

	return gather(pos, k-1, target, yield)
}

// Solver drives a Game toward peg C one move per Next call. It starts from the
// game's current position, so manual play can be handed over mid-game.
//
// The game refuses manual moves while the solver is active. Stop, Reset on the
// game, or reaching the goal ends the solve; positions reached so far are kept.
type Solver struct {
	game  *Game
	epoch int
	next  func() (Move, bool)
	stop  func()
	done  bool
}

// NewSolver marks g as solving and returns a solver bound to it. It fails with
// ErrSolving if another solver is already active on g.
func NewSolver(g *Game) (*Solver, error) {
	if g.solving {
		return nil, ErrSolving
	}
	seq, err := StepsFrom(g.pegs, C)
	if err != nil {
		return nil, err
	}
	g.epoch++
	g.solving = true
	next, stop := iter.Pull(seq)

	return &Solver{game: g, epoch: g.epoch, next: next, stop: stop}, nil
}

// Next applies the next optimal move to the game and returns it. ok is false
// once the game is solved or the solver was stopped.
func (s *Solver) Next() (Move, bool, error) {
	if s.done || s.game.epoch != s.epoch {
		s.Stop()
		return Move{}, false, nil
	}
	m, ok := s.next()
	if !ok {
		s.Stop()
		return Move{}, false, nil
	}
	if _, err := s.game.apply(m.From, m.To); err != nil {
		s.Stop()
		return Move{}, false, fmt.Errorf("hanoi: solver step %s: %w", m, err)
	}

	return m, true, nil
}

// Stop abandons the solve without undoing anything. It is safe to call more
// than once.
func (s *Solver) Stop() {
	if s.done {
		return
	}
	s.done = true
	s.stop()
	if s.game.epoch == s.epoch {
		s.game.solving = false
	}
}

// Done reports whether the solver has finished or been stopped.
func (s *Solver) Done() bool { return s.done }

// Run calls Next until the game is solved, invoking onMove (if non-nil) after
// every applied move. The context is checked before each move; cancellation
// stops the solver and returns ctx.Err() with the partial position in place.
func (s *Solver) Run(ctx context.Context, onMove func(Move) error) error {
	defer s.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if onMove != nil {
			if err := onMove(m); err != nil {
				return fmt.Errorf("hanoi: onMove %s: %w", m, err)
			}
		}
	}
}
