package garage

import (
	"errors"
	"strings"

	"github.com/Pallinder/go-randomdata"
)

// PlateLength is the length of plates produced by RandomPlate.
const PlateLength = 6

// Queue is a FIFO garage: cars enter at the back and normally leave from the
// front. Construct with NewQueue.
type Queue struct {
	lot
}

// Stack is a LIFO garage: cars park on top and normally leave from the top.
// Construct with NewStack.
type Stack struct {
	lot
}

var (
	_ Garage = (*Queue)(nil)
	_ Garage = (*Stack)(nil)
)

// NewQueue returns an empty FIFO garage holding at most capacity cars.
func NewQueue(capacity int) (*Queue, error) {
	l, err := newLot(FIFO, capacity)
	if err != nil {
		return nil, err
	}

	return &Queue{lot: l}, nil
}

// NewStack returns an empty LIFO garage holding at most capacity cars.
func NewStack(capacity int) (*Stack, error) {
	l, err := newLot(LIFO, capacity)
	if err != nil {
		return nil, err
	}

	return &Stack{lot: l}, nil
}

// RandomPlate returns an upper-case alphanumeric plate of PlateLength.
func RandomPlate() string {
	return strings.ToUpper(randomdata.Alphanumeric(PlateLength))
}

// Fill parks up to n random plates in g and returns the plates that arrived.
// It stops early with ErrCapacity when g fills up; random collisions with
// parked plates are retried.
func Fill(g Garage, n int) ([]string, error) {
	parked := make([]string, 0, max(min(n, g.Cap()-g.Len()), 0))
	for len(parked) < n {
		p := RandomPlate()
		err := g.Arrive(p)
		switch {
		case errors.Is(err, ErrDuplicate):
			continue
		case err != nil:
			return parked, err
		}
		parked = append(parked, p)
	}

	return parked, nil
}
