package garage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dsakit/errkind"
)

// DefaultCapacity is the lot size used when none is configured.
const DefaultCapacity = 10

// Sentinel errors for garage operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity.
	ErrInvalidCapacity = errors.New("garage: capacity must be positive")

	// ErrEmptyPlate indicates a blank plate.
	ErrEmptyPlate = errors.New("garage: plate is empty")

	// ErrCapacity indicates the garage is full.
	ErrCapacity = fmt.Errorf("garage: %w", errkind.ErrCapacity)

	// ErrDuplicate indicates the plate is already parked.
	ErrDuplicate = fmt.Errorf("garage: plate %w", errkind.ErrDuplicate)

	// ErrNotFound indicates the departing plate is not parked.
	ErrNotFound = fmt.Errorf("garage: plate %w", errkind.ErrNotFound)
)

// Discipline tells which end new arrivals use.
type Discipline uint8

const (
	// FIFO arrivals enter at the back; the oldest car is nearest the exit.
	FIFO Discipline = iota
	// LIFO arrivals park on top; the newest car is nearest the exit.
	LIFO
)

// String returns "queue" or "stack".
func (d Discipline) String() string {
	if d == LIFO {
		return "stack"
	}

	return "queue"
}

// Departure describes a successful departure.
type Departure struct {
	// Plate is the normalized plate that left.
	Plate string
	// Relocated lists the blocking cars in the order they were moved out.
	Relocated []string
	// Moves counts every pop and every push performed, the departing car
	// included.
	Moves int
}

// Garage is the behavior shared by Queue and Stack.
type Garage interface {
	Arrive(plate string) error
	Depart(plate string) (Departure, error)
	Reset()

	Items() []string
	Peek() (string, bool)
	Contains(plate string) bool
	Len() int
	Cap() int
	Full() bool
	Arrivals() int
	Departures() int
	Discipline() Discipline
}

// Normalize trims surrounding whitespace and upper-cases a plate.
func Normalize(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
