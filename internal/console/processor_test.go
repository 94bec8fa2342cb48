package console

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	mb "github.com/saeidalz13/seabattle-engine/models/battleship"
)

func newTestGame(t *testing.T) *mb.Game {
	t.Helper()

	game, err := mb.NewGame([]mb.ShipSpec{
		mb.NewShipSpec(0, 0, 0, 3),
		mb.NewShipSpec(2, 0, 2, 2),
		mb.NewShipSpec(2, 4, 2, 6),
		mb.NewShipSpec(4, 0, 4, 1),
		mb.NewShipSpec(4, 3, 4, 4),
		mb.NewShipSpec(4, 6, 4, 7),
		mb.NewShipSpec(6, 0, 6, 0),
		mb.NewShipSpec(6, 2, 6, 2),
		mb.NewShipSpec(6, 4, 6, 4),
		mb.NewShipSpec(6, 6, 6, 6),
	})
	if err != nil {
		t.Fatal(err)
	}
	return game
}

func runProcessor(t *testing.T, game *mb.Game, input string, opts ...Option) string {
	t.Helper()

	var out strings.Builder
	if err := NewProcessor(game, strings.NewReader(input), &out, zerolog.Nop(), opts...).Run(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestProcessorCommands(t *testing.T) {
	game := newTestGame(t)
	input := strings.Join([]string{
		"5 5",
		"fire 4 0",
		"  4 1  ",
		"",
		"a b",
		"fire 1",
		"15 3",
		"status",
		"quit",
		"0 0",
	}, "\n")

	out := runProcessor(t, game, input)

	for _, expected := range []string{
		"> Miss!\n",
		"> Hit!\n",
		"> Sunk!\n",
		"invalid input: row is not a number: \"a\"",
		"invalid input: expected a row and a column",
		"shots: 4\tsunk: 1/10\n",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected output to contain %q, got:\n%s", expected, out)
		}
	}

	// the shot after quit is never read
	if game.ShotCount() != 4 {
		t.Fatalf("expected 4 shots, got: %d", game.ShotCount())
	}
	if strings.Count(out, "Miss!") != 2 {
		t.Fatalf("out of grid shot must miss, got:\n%s", out)
	}
}

func TestProcessorPlaysWholeGame(t *testing.T) {
	game := newTestGame(t)

	var lines []string
	for _, ship := range game.Board().Ships() {
		for _, deck := range ship.Decks() {
			lines = append(lines, fmt.Sprintf("%d %d", deck.Row(), deck.Column()))
		}
	}
	lines = append(lines, "9 9")

	out := runProcessor(t, game, strings.Join(lines, "\n"))

	if !strings.HasSuffix(out, "All ships sunk in 20 shots.\n") {
		t.Fatalf("expected the game to end after the last deck, got:\n%s", out)
	}
	if strings.Count(out, "Sunk!") != 10 {
		t.Fatalf("expected 10 Sunk! results, got:\n%s", out)
	}
	if !game.IsFinished() {
		t.Fatal("game must be finished")
	}
}

func TestProcessorBoardView(t *testing.T) {
	fogged := runProcessor(t, newTestGame(t), "help\nshow\n")
	if strings.Contains(fogged, "□") {
		t.Fatalf("alive decks must be hidden without reveal:\n%s", fogged)
	}
	if !strings.Contains(fogged, "commands:") {
		t.Fatalf("expected help text, got:\n%s", fogged)
	}

	revealed := runProcessor(t, newTestGame(t), "show\n", WithReveal(true), WithGlyphs(mb.Glyphs{Water: '.', DeckAlive: '#', DeckHit: '*', ShipSunk: 'x'}))
	if !strings.Contains(revealed, "#  #  #  #  .") {
		t.Fatalf("expected revealed board with custom glyphs, got:\n%s", revealed)
	}
}

func TestParseSignal(t *testing.T) {
	tests := []struct {
		line     string
		expected Signal
	}{
		{"3 4", Signal{Code: CodeFire, Row: 3, Column: 4}},
		{"FIRE 0 9", Signal{Code: CodeFire, Row: 0, Column: 9}},
		{"-1 20", Signal{Code: CodeFire, Row: -1, Column: 20}},
		{"show", Signal{Code: CodeShow}},
		{"Status", Signal{Code: CodeStatus}},
		{"history", Signal{Code: CodeHistory}},
		{"?", Signal{Code: CodeHelp}},
		{"exit", Signal{Code: CodeQuit}},
		{"   ", Signal{Code: CodeSignalAbsent}},
	}

	for _, test := range tests {
		if got := parseSignal(test.line); got != test.expected {
			t.Fatalf("%q: expected %+v, got: %+v", test.line, test.expected, got)
		}
	}

	if got := parseSignal("3 x"); got.Code != CodeInvalidSignal || got.Err == nil {
		t.Fatalf("expected invalid signal, got: %+v", got)
	}
}

func TestProcessorHistory(t *testing.T) {
	out := runProcessor(t, newTestGame(t), "9 9\n6 6\nhistory\nquit\n")

	var historyLine string
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, "[{"); i >= 0 {
			historyLine = line[i:]
		}
	}
	if historyLine == "" {
		t.Fatalf("expected a JSON shot log, got:\n%s", out)
	}

	var shots []mb.Shot
	if err := json.Unmarshal([]byte(historyLine), &shots); err != nil {
		t.Fatal(err)
	}
	expected := []mb.Shot{
		{Location: mb.NewCoordinates(9, 9), Result: mb.FireResultMiss},
		{Location: mb.NewCoordinates(6, 6), Result: mb.FireResultSunk},
	}
	if !reflect.DeepEqual(expected, shots) {
		t.Fatalf("expected shots: %+v\tgot: %+v", expected, shots)
	}
	if !strings.Contains(historyLine, `{"location":{"row":9,"column":9},"result":"Miss!"}`) {
		t.Fatalf("unexpected shot log format: %s", historyLine)
	}
}
