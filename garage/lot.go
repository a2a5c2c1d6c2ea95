package garage

import (
	"container/list"
	"fmt"
	"slices"
)

// lot holds the state shared by Queue and Stack.
//
// cars is ordered from the opening inward: Front is the car that would leave
// next under normal departure (queue exit / stack top). Only the arrival end
// differs between disciplines, departure always scans from Front.
type lot struct {
	discipline Discipline
	cars       *list.List
	capacity   int
	arrivals   int
	departures int
}

func newLot(d Discipline, capacity int) (lot, error) {
	if capacity <= 0 {
		return lot{}, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return lot{discipline: d, cars: list.New(), capacity: capacity}, nil
}

// Arrive parks plate at the entrance (queue) or on top (stack).
func (l *lot) Arrive(plate string) error {
	p := Normalize(plate)
	if p == "" {
		return ErrEmptyPlate
	}
	if l.cars.Len() >= l.capacity {
		return fmt.Errorf("%w: %d of %d spaces taken", ErrCapacity, l.cars.Len(), l.capacity)
	}
	if l.find(p) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicate, p)
	}

	if l.discipline == LIFO {
		l.cars.PushFront(p)
	} else {
		l.cars.PushBack(p)
	}
	l.arrivals++

	return nil
}

// Depart removes plate from wherever it is parked, relocating the cars that
// block it and putting them back in their original order.
func (l *lot) Depart(plate string) (Departure, error) {
	p := Normalize(plate)
	if p == "" {
		return Departure{}, ErrEmptyPlate
	}
	if l.find(p) == nil {
		return Departure{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}

	d := Departure{Plate: p}
	var buffer []string
	for e := l.cars.Front(); e != nil; e = l.cars.Front() {
		car := l.cars.Remove(e).(string)
		d.Moves++
		if car == p {
			break
		}
		buffer = append(buffer, car)
	}
	d.Relocated = slices.Clone(buffer)

	// last popped goes back first, so the front ends up as before
	for i := len(buffer) - 1; i >= 0; i-- {
		l.cars.PushFront(buffer[i])
		d.Moves++
	}
	l.departures++

	return d, nil
}

// Reset empties the lot and zeroes both counters.
func (l *lot) Reset() {
	l.cars.Init()
	l.arrivals, l.departures = 0, 0
}

// Items lists parked plates in normal departure order: queue exit first
// (oldest first), stack top first (newest first).
func (l *lot) Items() []string {
	out := make([]string, 0, l.cars.Len())
	for e := l.cars.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}

	return out
}

// Peek returns the plate that would leave next under normal departure.
func (l *lot) Peek() (string, bool) {
	if e := l.cars.Front(); e != nil {
		return e.Value.(string), true
	}

	return "", false
}

// Contains reports whether plate (normalized) is parked.
func (l *lot) Contains(plate string) bool {
	return l.find(Normalize(plate)) != nil
}

func (l *lot) Len() int { return l.cars.Len() }
func (l *lot) Cap() int { return l.capacity }
func (l *lot) Full() bool { return l.cars.Len() >= l.capacity }
func (l *lot) Arrivals() int { return l.arrivals }
func (l *lot) Departures() int { return l.departures }
func (l *lot) Discipline() Discipline { return l.discipline }

func (l *lot) find(p string) *list.Element {
	for e := l.cars.Front(); e != nil; e = e.Next() {
		if e.Value.(string) == p {
			return e
		}
	}

	return nil
}
