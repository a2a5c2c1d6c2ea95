// Package errkind defines the error taxonomy shared by every dsakit engine.
//
// Engines never invent ad-hoc failure strings: each package declares its own
// prefixed sentinels ("bst: duplicate value") that wrap one of the kinds below,
// so callers can match either the package sentinel or the kind:
//
//	errors.Is(err, bst.ErrDuplicate)      // package-level
//	errors.Is(err, errkind.ErrDuplicate)  // taxonomy-level
//	errkind.KindOf(err) == errkind.Duplicate
//
// Every error of these kinds is expected and recoverable. The operation that
// returned it left its engine unchanged.
package errkind

import "errors"

// Kind discriminates the recoverable failures an engine can report.
type Kind uint8

const (
	// Unknown is reported for nil errors and errors outside the taxonomy.
	Unknown Kind = iota
	// Range: value outside the configured bounds.
	Range
	// Duplicate: value already present where uniqueness is required.
	Duplicate
	// Capacity: bounded sequence is full.
	Capacity
	// NotFound: target token or value absent for a removal or search.
	NotFound
	// NoSpace: fixed-shape tree has no free slot on the required path.
	NoSpace
	// IllegalMove: Hanoi move violates the size ordering.
	IllegalMove
)

// Sentinel errors, one per Kind.
var (
	ErrRange       = errors.New("value out of range")
	ErrDuplicate   = errors.New("duplicate value")
	ErrCapacity    = errors.New("capacity exceeded")
	ErrNotFound    = errors.New("not found")
	ErrNoSpace     = errors.New("no space")
	ErrIllegalMove = errors.New("illegal move")
)

var kinds = [...]struct {
	kind Kind
	err  error
	name string
}{
	{Range, ErrRange, "range"},
	{Duplicate, ErrDuplicate, "duplicate"},
	{Capacity, ErrCapacity, "capacity"},
	{NotFound, ErrNotFound, "not-found"},
	{NoSpace, ErrNoSpace, "no-space"},
	{IllegalMove, ErrIllegalMove, "illegal-move"},
}

// KindOf classifies err by walking its wrap chain.
// Returns Unknown for nil or unclassified errors.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return Unknown
}

// Err returns the sentinel for k, or nil for Unknown.
func (k Kind) Err() error {
	for _, e := range kinds {
		if e.kind == k {
			return e.err
		}
	}

	return nil
}

// String returns a short kebab-case name, e.g. "not-found".
func (k Kind) String() string {
	for _, e := range kinds {
		if e.kind == k {
			return e.name
		}
	}

	return "unknown"
}
