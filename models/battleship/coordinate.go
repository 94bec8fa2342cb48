package battleship

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	cerr "github.com/saeidalz13/seabattle-engine/internal/error"
)

const (
	GridSize            = 10
	GridValidLowerBound = 0
	GridValidUpperBound = GridSize - 1
)

// Inclusive range check for a single coordinate component.
type CoordinateValidator struct {
	min int
	max int
}

var DefaultCoordinateValidator = NewCoordinateValidator(GridValidLowerBound, GridValidUpperBound)

func NewCoordinateValidator(min, max int) CoordinateValidator {
	return CoordinateValidator{min: min, max: max}
}

func (cv CoordinateValidator) Min() int {
	return cv.min
}

func (cv CoordinateValidator) Max() int {
	return cv.max
}

// Validate accepts any Go integer kind or a json.Number holding an
// integer literal. Anything else is a type error; an integer outside
// [min, max] is a range error.
func (cv CoordinateValidator) Validate(value interface{}) error {
	_, err := cv.toInt(value)
	return err
}

func (cv CoordinateValidator) ValidateInt(value int) error {
	return cv.checkRange(int64(value))
}

func (cv CoordinateValidator) checkRange(value int64) error {
	if value < int64(cv.min) || value > int64(cv.max) {
		return cerr.ErrCoordinateOutOfRange(value, cv.min, cv.max)
	}
	return nil
}

func (cv CoordinateValidator) toInt(value interface{}) (int, error) {
	var n int64

	switch v := value.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, cerr.ErrCoordinateOutOfRange(math.MaxInt64, cv.min, cv.max)
		}
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, cerr.ErrCoordinateOutOfRange(math.MaxInt64, cv.min, cv.max)
		}
		n = int64(v)
	case json.Number:
		parsed, err := strconv.ParseInt(string(v), 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, cerr.ErrCoordinateOutOfRange(parsed, cv.min, cv.max)
		}
		if err != nil {
			// "1e3" or "2.0" are numbers but not integer literals
			return 0, cerr.ErrCoordinateNotInt(value)
		}
		n = parsed
	default:
		return 0, cerr.ErrCoordinateNotInt(value)
	}

	if err := cv.checkRange(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

type Coordinates struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewCoordinates(row, column int) Coordinates {
	return Coordinates{Row: row, Column: column}
}

// Validates both components with the default validator and
// converts them into Coordinates.
func ParseCoordinates(row, column interface{}) (Coordinates, error) {
	r, err := DefaultCoordinateValidator.toInt(row)
	if err != nil {
		return Coordinates{}, err
	}
	c, err := DefaultCoordinateValidator.toInt(column)
	if err != nil {
		return Coordinates{}, err
	}
	return NewCoordinates(r, c), nil
}

func (c Coordinates) InBounds() bool {
	return DefaultCoordinateValidator.ValidateInt(c.Row) == nil &&
		DefaultCoordinateValidator.ValidateInt(c.Column) == nil
}
