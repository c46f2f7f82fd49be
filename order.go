package binheap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrder is returned by ParseOrder for unrecognized names.
var ErrUnknownOrder = errors.New("binheap: unknown order")

// Order selects which of two elements a heap prefers, and with it whether
// the heap behaves as a min-heap or a max-heap.
type Order int

const (
	// Regular prefers the smaller element (min-heap).
	Regular Order = iota
	// Reverse prefers the larger element (max-heap).
	Reverse
)

// Prefers reports whether a value is preferred over a target, given c, the
// three-way comparison of value against target (negative, zero, positive).
// Equal values are never preferred over each other.
func (o Order) Prefers(c int) bool {
	switch o {
	case Regular:
		return c < 0
	case Reverse:
		return c > 0
	default:
		panic(fmt.Sprintf("binheap: invalid order %d", int(o)))
	}
}

func (o Order) String() string {
	switch o {
	case Regular:
		return "regular"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses "regular" or "reverse", case-insensitively.
// "min" and "max" are accepted as aliases.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "min":
		return Regular, nil
	case "reverse", "max":
		return Reverse, nil
	}
	return Regular, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}
