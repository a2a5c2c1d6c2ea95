package hanoi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dsakit/errkind"
)

// MaxDiscs bounds the disc count; 2^16-1 moves is already far beyond
// anything worth watching.
const MaxDiscs = 16

// Sentinel errors for hanoi operations.
var (
	// ErrInvalidDiscs indicates a disc count outside [0, MaxDiscs].
	ErrInvalidDiscs = fmt.Errorf("hanoi: disc count must be within [0, %d]", MaxDiscs)

	// ErrIllegalMove indicates a move that breaks the puzzle rules.
	ErrIllegalMove = fmt.Errorf("hanoi: %w", errkind.ErrIllegalMove)

	// ErrSolving indicates the game is being driven by a Solver.
	ErrSolving = errors.New("hanoi: auto-solve in progress")

	// ErrInvalidPosition indicates pegs that do not hold exactly discs 1..n
	// in strictly decreasing stacks.
	ErrInvalidPosition = errors.New("hanoi: invalid position")

	// ErrUnknownPeg indicates a peg name ParsePeg does not understand.
	ErrUnknownPeg = errors.New("hanoi: unknown peg")
)

// Peg identifies one of the three pegs.
type Peg uint8

const (
	A Peg = iota // source
	B            // auxiliary
	C            // target
)

// NumPegs is the number of pegs.
const NumPegs = 3

// Valid reports whether p is A, B or C.
func (p Peg) Valid() bool { return p < NumPegs }

// String returns "A", "B" or "C".
func (p Peg) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Peg(%d)", uint8(p))
	}

	return string(rune('A' + p))
}

// ParsePeg accepts a letter (a/b/c, any case) or a one-based number (1/2/3).
func ParsePeg(s string) (Peg, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "1":
		return A, nil
	case "B", "2":
		return B, nil
	case "C", "3":
		return C, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPeg, s)
}

// other returns the peg that is neither x nor y (x != y).
func other(x, y Peg) Peg { return NumPegs - x - y }

// Move is one step: the top disc of From goes onto To.
type Move struct {
	Disc     int
	From, To Peg
}

// String formats m as "disc 1: A -> C".
func (m Move) String() string {
	return fmt.Sprintf("disc %d: %s -> %s", m.Disc, m.From, m.To)
}
