// Package hanoi implements the Tower of Hanoi puzzle: a three-peg state
// machine with move legality checks, the classic optimal recursive solver,
// and a step-wise solver that the caller drives one move at a time.
//
// Discs are numbered 1..n, 1 being the smallest. A peg is listed bottom to top
// and is always strictly decreasing. Every game starts with all discs on peg A
// and is won when peg C holds all of them.
//
// What:
//
//   - New(n) creates a game; Apply moves the top disc of one peg onto another
//     and reports victory; IsLegalMove checks a move without applying it.
//   - Solve returns the complete optimal sequence (2^n - 1 moves).
//   - Steps yields the same sequence lazily; breaking out of the loop stops the
//     recursion at once.
//   - StepsFrom yields the shortest continuation from any legal position, so a
//     game can be handed to the solver after some manual moves.
//   - Solver binds StepsFrom to a Game. Next applies one move; Stop abandons
//     the solve and leaves the pegs wherever they are; Run drives Next until
//     done, checking the context before every move.
//
// The engine has no notion of time. Pacing belongs to the caller, typically a
// sleep or a tick between Next calls.
//
// Errors:
//
//   - ErrInvalidDiscs     n outside [0, MaxDiscs].
//   - ErrIllegalMove      empty source, larger disc onto smaller, same peg,
//     or an unknown peg                        (errkind.IllegalMove)
//   - ErrSolving          manual move or second solver while a solve runs.
//   - ErrInvalidPosition  StepsFrom received pegs that are not a legal state.
//
// Complexity:
//
//   - Apply, IsLegalMove:  O(1)
//   - Solve:               O(2^n) time and memory
//   - Steps, StepsFrom:    O(2^n) time, O(n) memory
package hanoi
