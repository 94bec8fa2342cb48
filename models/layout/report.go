package layout

import (
	cerr "github.com/saeidalz13/seabattle-engine/internal/error"
)

// Outcome of validating one layout file.
type Report struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error,omitempty"`
}

func NewReport(path string, err error) Report {
	if err == nil {
		return Report{Path: path, Valid: true}
	}
	return Report{
		Path:  path,
		Valid: false,
		Kind:  cerr.KindOf(err),
		Error: err.Error(),
	}
}
