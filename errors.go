package countmap

import "fmt"

// BadAmount is returned when a mutating operation is given a negative
// amount it cannot accept: any negative amount for Add or Sub, and a
// negative amount for Set on a map that does not allow negative counts.
// The operation rejects the amount before touching the table, so a
// BadAmount error implies the map is unchanged.
type BadAmount struct {
	// Op is the rejecting operation: "add", "sub" or "set".
	Op string
	// Amount is the rejected amount.
	Amount int
}

func (e BadAmount) Error() string {
	return fmt.Sprintf(
		"bad amount: %s amount must be non-negative, but is %d", e.Op, e.Amount)
}
