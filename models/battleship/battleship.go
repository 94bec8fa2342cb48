package battleship

import (
	"maps"

	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/seabattle-engine/internal/error"
)

const FleetCellCount = 20

type FireResult string

const (
	FireResultMiss FireResult = "Miss!"
	FireResultHit  FireResult = "Hit!"
	FireResultSunk FireResult = "Sunk!"
)

func (fr FireResult) String() string {
	return string(fr)
}

// Number of ships required per deck length.
func FleetRequirements() map[int]int {
	return map[int]int{1: 4, 2: 3, 3: 2, 4: 1}
}

// Battleship owns the fleet and the index from every occupied cell to
// the ship on it. Cells missing from the index are water.
type Battleship struct {
	ships []*Ship
	field *swiss.Map[Coordinates, *Ship]
}

// Builds every ship, indexes their decks and validates the layout.
// No board is returned unless the whole fleet is valid.
func NewBattleship(specs []ShipSpec) (*Battleship, error) {
	bs := &Battleship{
		ships: make([]*Ship, 0, len(specs)),
		field: swiss.NewMap[Coordinates, *Ship](FleetCellCount),
	}

	for _, spec := range specs {
		ship, err := newShipFromSpec(spec)
		if err != nil {
			return nil, err
		}
		bs.ships = append(bs.ships, ship)
	}

	// A later ship silently takes over a cell claimed by an earlier one;
	// the cell count check below catches the overlap.
	for _, ship := range bs.ships {
		for _, deck := range ship.decks {
			bs.field.Put(deck.Coordinates(), ship)
		}
	}

	if err := bs.validateField(); err != nil {
		return nil, err
	}
	return bs, nil
}

func (bs *Battleship) Fire(location Coordinates) FireResult {
	ship, prs := bs.field.Get(location)
	if !prs {
		return FireResultMiss
	}

	ship.Fire(location.Row, location.Column)
	if ship.IsDrowned() {
		return FireResultSunk
	}
	return FireResultHit
}

// Reports 8-connected adjacency. A cell is its own neighbour.
func IsNeighbourLocation(a, b Coordinates) bool {
	return abs(a.Row-b.Row) <= 1 && abs(a.Column-b.Column) <= 1
}

func (bs *Battleship) validateField() error {
	if occupied := bs.field.Count(); occupied != FleetCellCount {
		return cerr.ErrFleetCellCount(occupied, FleetCellCount)
	}

	shipsCount := make(map[int]int, len(bs.ships))
	for _, ship := range bs.ships {
		shipsCount[ship.Len()]++
	}
	if requirements := FleetRequirements(); !maps.Equal(requirements, shipsCount) {
		return cerr.ErrFleetShipCounts(shipsCount, requirements)
	}

	for i, ship := range bs.ships {
		for _, other := range bs.ships[i+1:] {
			for _, deck := range ship.decks {
				for _, otherDeck := range other.decks {
					if IsNeighbourLocation(deck.Coordinates(), otherDeck.Coordinates()) {
						return cerr.ErrShipsAdjacent(deck.row, deck.column, otherDeck.row, otherDeck.column)
					}
				}
			}
		}
	}
	return nil
}

// Ships in construction order.
func (bs *Battleship) Ships() []*Ship {
	ships := make([]*Ship, len(bs.ships))
	copy(ships, bs.ships)
	return ships
}

func (bs *Battleship) ShipAt(location Coordinates) (*Ship, bool) {
	return bs.field.Get(location)
}

func (bs *Battleship) OccupiedCells() int {
	return bs.field.Count()
}

func (bs *Battleship) SunkShips() int {
	var sunk int
	for _, ship := range bs.ships {
		if ship.IsDrowned() {
			sunk++
		}
	}
	return sunk
}

// True once every ship of the fleet is drowned.
func (bs *Battleship) IsDefeated() bool {
	return bs.SunkShips() == len(bs.ships)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
