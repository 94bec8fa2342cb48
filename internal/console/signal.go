package console

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CodeFire uint8 = iota
	CodeShow
	CodeStatus
	CodeHistory
	CodeHelp
	CodeQuit

	// line could not be understood
	CodeInvalidSignal

	// blank line
	CodeSignalAbsent
)

type Signal struct {
	Code   uint8
	Row    int
	Column int
	Err    error
}

const helpText = `commands:
  R C | fire R C   fire at row R, column C (0-9)
  show             print the board
  status           print shots fired and ships sunk
  history          print every shot so far as JSON
  help             print this help
  quit             leave the game
`

// Parses one input line. Numbers outside the grid are accepted here;
// the board resolves them as misses.
func parseSignal(line string) Signal {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Signal{Code: CodeSignalAbsent}
	}

	switch fields[0] {
	case "show":
		return Signal{Code: CodeShow}
	case "status":
		return Signal{Code: CodeStatus}
	case "history":
		return Signal{Code: CodeHistory}
	case "help", "?":
		return Signal{Code: CodeHelp}
	case "quit", "exit":
		return Signal{Code: CodeQuit}
	case "fire":
		fields = fields[1:]
	}

	if len(fields) != 2 {
		return Signal{Code: CodeInvalidSignal, Err: fmt.Errorf("expected a row and a column, got: %q", line)}
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Signal{Code: CodeInvalidSignal, Err: fmt.Errorf("row is not a number: %q", fields[0])}
	}
	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return Signal{Code: CodeInvalidSignal, Err: fmt.Errorf("column is not a number: %q", fields[1])}
	}

	return Signal{Code: CodeFire, Row: row, Column: column}
}
