package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	cerr "github.com/saeidalz13/seabattle-engine/internal/error"
	mb "github.com/saeidalz13/seabattle-engine/models/battleship"
)

var errTrailingData = errors.New("failed to decode layout: unexpected data after the layout object")

// File is the on-disk fleet layout:
//
//	{"ships": [{"start": [0, 0], "end": [0, 3]}, ...]}
//
// Components are kept raw until they pass the coordinate validator.
type File struct {
	Ships []ShipEntry `json:"ships"`
}

type ShipEntry struct {
	Start     []interface{} `json:"start"`
	End       []interface{} `json:"end"`
	IsDrowned bool          `json:"is_drowned,omitempty"`
}

func (se ShipEntry) toSpec() (mb.ShipSpec, error) {
	start, err := parseEndpoint(se.Start)
	if err != nil {
		return mb.ShipSpec{}, err
	}
	end, err := parseEndpoint(se.End)
	if err != nil {
		return mb.ShipSpec{}, err
	}
	return mb.ShipSpec{Start: start, End: end, IsDrowned: se.IsDrowned}, nil
}

func parseEndpoint(raw []interface{}) (mb.Coordinates, error) {
	if len(raw) != 2 {
		return mb.Coordinates{}, cerr.ErrEndpointArity(len(raw))
	}
	return mb.ParseCoordinates(raw[0], raw[1])
}

// Decode reads a layout and converts it into ship specs. It does not
// build the board; pass the result to battleship.NewBattleship.
func Decode(r io.Reader) ([]mb.ShipSpec, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errTrailingData
	}
	if len(file.Ships) == 0 {
		return nil, cerr.ErrEmptyLayout()
	}

	specs := make([]mb.ShipSpec, len(file.Ships))
	for i, entry := range file.Ships {
		spec, err := entry.toSpec()
		if err != nil {
			return nil, fmt.Errorf("ship %d: %w", i, err)
		}
		specs[i] = spec
	}
	return specs, nil
}

func Load(path string) ([]mb.ShipSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func Encode(w io.Writer, specs []mb.ShipSpec) error {
	file := File{Ships: make([]ShipEntry, len(specs))}
	for i, spec := range specs {
		file.Ships[i] = ShipEntry{
			Start:     []interface{}{spec.Start.Row, spec.Start.Column},
			End:       []interface{}{spec.End.Row, spec.End.Column},
			IsDrowned: spec.IsDrowned,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// LoadBoard loads a layout and builds the validated board from it.
func LoadBoard(path string) (*mb.Battleship, error) {
	specs, err := Load(path)
	if err != nil {
		return nil, err
	}
	return mb.NewBattleship(specs)
}
