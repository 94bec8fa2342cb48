package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/seabattle-engine/internal/error"
)

// Raw placement of one ship as the board receives it.
type ShipSpec struct {
	Start     Coordinates
	End       Coordinates
	IsDrowned bool
}

func NewShipSpec(startRow, startColumn, endRow, endColumn int) ShipSpec {
	return ShipSpec{
		Start: NewCoordinates(startRow, startColumn),
		End:   NewCoordinates(endRow, endColumn),
	}
}

// Ship is a straight run of decks ordered by increasing row or column.
// aliveDecks always equals the number of alive decks and isDrowned is
// true exactly when it reaches zero.
type Ship struct {
	decks      []*Deck
	isDrowned  bool
	aliveDecks int
}

func NewShip(start, end Coordinates) (*Ship, error) {
	return newShipFromSpec(ShipSpec{Start: start, End: end})
}

func newShipFromSpec(spec ShipSpec) (*Ship, error) {
	decks, err := buildDecks(spec.Start, spec.End)
	if err != nil {
		return nil, err
	}

	ship := &Ship{
		decks:      decks,
		isDrowned:  false,
		aliveDecks: len(decks),
	}

	if spec.IsDrowned {
		for _, deck := range ship.decks {
			deck.kill()
		}
		ship.aliveDecks = 0
		ship.isDrowned = true
	}
	return ship, nil
}

func buildDecks(start, end Coordinates) ([]*Deck, error) {
	if start.Row > end.Row || start.Column > end.Column {
		start, end = end, start
	}

	var decks []*Deck

	switch {
	case start.Row == end.Row:
		decks = make([]*Deck, 0, end.Column-start.Column+1)
		for column := start.Column; column <= end.Column; column++ {
			deck, err := NewDeck(start.Row, column)
			if err != nil {
				return nil, err
			}
			decks = append(decks, deck)
		}

	case start.Column == end.Column:
		decks = make([]*Deck, 0, end.Row-start.Row+1)
		for row := start.Row; row <= end.Row; row++ {
			deck, err := NewDeck(row, start.Column)
			if err != nil {
				return nil, err
			}
			decks = append(decks, deck)
		}

	default:
		return nil, cerr.ErrShipNotAxisAligned(start.Row, start.Column, end.Row, end.Column)
	}

	return decks, nil
}

func (sh *Ship) GetDeck(row, column int) (*Deck, bool) {
	for _, deck := range sh.decks {
		if deck.row == row && deck.column == column {
			return deck, true
		}
	}
	return nil, false
}

// Fire kills the deck at (row, column) if it belongs to this ship and
// is still alive. It reports whether the ship state changed.
func (sh *Ship) Fire(row, column int) bool {
	deck, found := sh.GetDeck(row, column)
	if !found || !deck.isAlive {
		return false
	}

	deck.kill()
	sh.aliveDecks--
	if sh.aliveDecks == 0 {
		sh.isDrowned = true
	}
	return true
}

func (sh *Ship) Len() int {
	return len(sh.decks)
}

// Returns a copy of the deck slice; the decks themselves are shared.
func (sh *Ship) Decks() []*Deck {
	decks := make([]*Deck, len(sh.decks))
	copy(decks, sh.decks)
	return decks
}

func (sh *Ship) AliveDecks() int {
	return sh.aliveDecks
}

func (sh *Ship) IsDrowned() bool {
	return sh.isDrowned
}

func (sh *Ship) String() string {
	return fmt.Sprintf("Ship(%d deck's ship)", sh.Len())
}
