package error

import (
	"errors"
	"fmt"
)

// Kinds of failures. Every error built in this package wraps exactly
// one of them, so callers can branch with errors.Is.
var (
	ErrKindType             = errors.New("coordinate type error")
	ErrKindRange            = errors.New("coordinate range error")
	ErrKindFleetComposition = errors.New("fleet composition error")
	ErrKindAdjacency        = errors.New("ship adjacency error")
	ErrKindMalformedShip    = errors.New("malformed ship error")
)

const (
	KindType             = "type"
	KindRange            = "range"
	KindFleetComposition = "fleet_composition"
	KindAdjacency        = "adjacency"
	KindMalformedShip    = "malformed_ship"
)

// Returns the stable name of the kind wrapped by err,
// or an empty string if err is nil or of no known kind.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrKindType):
		return KindType
	case errors.Is(err, ErrKindRange):
		return KindRange
	case errors.Is(err, ErrKindFleetComposition):
		return KindFleetComposition
	case errors.Is(err, ErrKindAdjacency):
		return KindAdjacency
	case errors.Is(err, ErrKindMalformedShip):
		return KindMalformedShip
	default:
		return ""
	}
}

func ErrCoordinateNotInt(value interface{}) error {
	return fmt.Errorf("%w: coordinate should be integer, got %T (%v)", ErrKindType, value, value)
}

func ErrCoordinateOutOfRange(value int64, min, max int) error {
	return fmt.Errorf("%w: coordinate should not be less than %d and not greater than %d, got %d", ErrKindRange, min, max, value)
}

func ErrFleetCellCount(got, want int) error {
	return fmt.Errorf("%w: fleet must occupy exactly %d cells, got %d", ErrKindFleetComposition, want, got)
}

func ErrFleetShipCounts(got, want map[int]int) error {
	return fmt.Errorf("%w: ships per length must be %v, got %v", ErrKindFleetComposition, want, got)
}

func ErrShipsAdjacent(row1, col1, row2, col2 int) error {
	return fmt.Errorf("%w: decks of different ships touch\tfirst: (%d, %d)\tsecond: (%d, %d)", ErrKindAdjacency, row1, col1, row2, col2)
}

func ErrShipNotAxisAligned(row1, col1, row2, col2 int) error {
	return fmt.Errorf("%w: ship endpoints share neither row nor column\tstart: (%d, %d)\tend: (%d, %d)", ErrKindMalformedShip, row1, col1, row2, col2)
}

func ErrEndpointArity(got int) error {
	return fmt.Errorf("%w: ship endpoint must have 2 components, got %d", ErrKindMalformedShip, got)
}

func ErrEmptyLayout() error {
	return fmt.Errorf("%w: layout contains no ships", ErrKindFleetComposition)
}
