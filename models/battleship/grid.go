package battleship

import (
	"bufio"
	"io"
	"strings"
)

const (
	PositionStateWater uint8 = iota
	PositionStateDeckAlive
	PositionStateDeckHit
	PositionStateShipSunk
)

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateWater
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

// Glyph choice is presentation only.
type Glyphs struct {
	Water     rune
	DeckAlive rune
	DeckHit   rune
	ShipSunk  rune
}

var DefaultGlyphs = Glyphs{
	Water:     '~',
	DeckAlive: '□',
	DeckHit:   '*',
	ShipSunk:  'x',
}

func (g Glyphs) glyph(positionState uint8) rune {
	switch positionState {
	case PositionStateDeckAlive:
		return g.DeckAlive
	case PositionStateDeckHit:
		return g.DeckHit
	case PositionStateShipSunk:
		return g.ShipSunk
	default:
		return g.Water
	}
}

func (bs *Battleship) positionState(location Coordinates) uint8 {
	ship, prs := bs.field.Get(location)
	if !prs {
		return PositionStateWater
	}

	deck, _ := ship.GetDeck(location.Row, location.Column)
	switch {
	case deck.IsAlive():
		return PositionStateDeckAlive
	case !ship.IsDrowned():
		return PositionStateDeckHit
	default:
		return PositionStateShipSunk
	}
}

func (bs *Battleship) Grid() Grid {
	grid := NewGrid(GridSize)
	for row := 0; row < GridSize; row++ {
		for column := 0; column < GridSize; column++ {
			grid[row][column] = bs.positionState(NewCoordinates(row, column))
		}
	}
	return grid
}

// Writes one line per row, cells separated by two spaces.
func (bs *Battleship) Render(w io.Writer, glyphs Glyphs) error {
	return renderGrid(w, bs.Grid(), glyphs)
}

// Same as Render but alive decks are drawn as water, which is what
// the player firing at the board is allowed to see.
func (bs *Battleship) RenderFogged(w io.Writer, glyphs Glyphs) error {
	grid := bs.Grid()
	for _, row := range grid {
		for column, state := range row {
			if state == PositionStateDeckAlive {
				row[column] = PositionStateWater
			}
		}
	}
	return renderGrid(w, grid, glyphs)
}

func (bs *Battleship) String() string {
	var sb strings.Builder
	// writes to a strings.Builder never fail
	_ = bs.Render(&sb, DefaultGlyphs)
	return sb.String()
}

func renderGrid(w io.Writer, grid Grid, glyphs Glyphs) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for column, state := range row {
			if column > 0 {
				bw.WriteString("  ")
			}
			bw.WriteRune(glyphs.glyph(state))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
