package battleship

import (
	"encoding/json"
	"errors"
	"testing"

	cerr "github.com/saeidalz13/seabattle-engine/internal/error"
)

func TestCoordinateValidator(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr error
	}{
		{name: "lower bound", value: 0},
		{name: "upper bound", value: 9},
		{name: "int8", value: int8(4)},
		{name: "uint64", value: uint64(7)},
		{name: "json integer", value: json.Number("3")},
		{name: "negative", value: -1, wantErr: cerr.ErrKindRange},
		{name: "above upper bound", value: 10, wantErr: cerr.ErrKindRange},
		{name: "large int64", value: int64(1 << 40), wantErr: cerr.ErrKindRange},
		{name: "large uint8", value: uint8(200), wantErr: cerr.ErrKindRange},
		{name: "huge json integer", value: json.Number("99999999999999999999"), wantErr: cerr.ErrKindRange},
		{name: "float", value: 2.5, wantErr: cerr.ErrKindType},
		{name: "whole float", value: 2.0, wantErr: cerr.ErrKindType},
		{name: "json float", value: json.Number("2.0"), wantErr: cerr.ErrKindType},
		{name: "string", value: "3", wantErr: cerr.ErrKindType},
		{name: "bool", value: true, wantErr: cerr.ErrKindType},
		{name: "nil", value: nil, wantErr: cerr.ErrKindType},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := DefaultCoordinateValidator.Validate(test.value)
			if test.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error for %v, got: %v", test.value, err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v for %v, got: %v", test.wantErr, test.value, err)
			}
		})
	}
}

func TestCustomRangeValidator(t *testing.T) {
	cv := NewCoordinateValidator(1, 3)
	if cv.Min() != 1 || cv.Max() != 3 {
		t.Fatalf("expected range [1, 3], got [%d, %d]", cv.Min(), cv.Max())
	}
	if err := cv.ValidateInt(0); !errors.Is(err, cerr.ErrKindRange) {
		t.Fatalf("expected range error for 0, got: %v", err)
	}
	if err := cv.ValidateInt(3); err != nil {
		t.Fatalf("expected 3 to be valid, got: %v", err)
	}
}

func TestParseCoordinates(t *testing.T) {
	coords, err := ParseCoordinates(json.Number("4"), 7)
	if err != nil {
		t.Fatal(err)
	}
	if coords != NewCoordinates(4, 7) {
		t.Fatalf("expected (4, 7), got: %+v", coords)
	}

	if _, err := ParseCoordinates(4, "7"); !errors.Is(err, cerr.ErrKindType) {
		t.Fatalf("expected type error, got: %v", err)
	}
	if _, err := ParseCoordinates(-4, 7); !errors.Is(err, cerr.ErrKindRange) {
		t.Fatalf("expected range error, got: %v", err)
	}
}

func TestCoordinatesInBounds(t *testing.T) {
	if !NewCoordinates(0, 9).InBounds() {
		t.Fatal("(0, 9) must be in bounds")
	}
	if NewCoordinates(10, 0).InBounds() {
		t.Fatal("(10, 0) must be out of bounds")
	}
}
