// Package garage models two parking garages as capacity-bounded sequences of
// licence plates: a FIFO Queue (one-lane drive-through, entrance at the back,
// exit at the front) and a LIFO Stack (dead-end alley, one opening at the
// top).
//
// Both garages allow any parked car to leave, not only the one nearest the
// opening. Departure is expressed with end-only operations plus a buffer, the
// way blocking cars are shuffled in a real lot:
//
//  1. pop cars from the scan end (queue: exit, stack: top) into a buffer
//     until the departing car has been popped;
//  2. push the buffered cars back onto the same end, last popped first.
//
// Step 2 restores the exact original relative order of every remaining car.
// Departure reports the number of element moves (pops + pushes) so callers
// can show how expensive an interior removal was.
//
// Plates are normalized (trimmed, upper-cased) before any comparison, and a
// normalized plate may be parked at most once.
//
// Errors:
//
//   - ErrInvalidCapacity  capacity <= 0 at construction.
//   - ErrEmptyPlate       plate is blank after trimming.
//   - ErrCapacity         garage is full                 (errkind.Capacity)
//   - ErrDuplicate        plate already parked           (errkind.Duplicate)
//   - ErrNotFound         departing plate is not parked  (errkind.NotFound)
//
// Failed operations never change the sequence or the counters.
package garage
