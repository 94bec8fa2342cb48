package battleship

import (
	"errors"
	"math/rand"
)

const (
	maxPlacementRestarts = 100
	maxPlacementTries    = 200
)

// Deck lengths in placement order, largest first.
var fleetPlacementOrder = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

var errPlacementFailed = errors.New("failed to place the fleet without touching ships")

// RandomFleet returns a layout that NewBattleship accepts. Ships are
// placed largest first; a ship that finds no free spot restarts the
// whole fleet.
func RandomFleet(rng *rand.Rand) ([]ShipSpec, error) {
	for restart := 0; restart < maxPlacementRestarts; restart++ {
		if specs, ok := tryPlaceFleet(rng); ok {
			return specs, nil
		}
	}
	return nil, errPlacementFailed
}

func tryPlaceFleet(rng *rand.Rand) ([]ShipSpec, bool) {
	var occupied [GridSize][GridSize]bool
	specs := make([]ShipSpec, 0, len(fleetPlacementOrder))

	for _, length := range fleetPlacementOrder {
		placed := false

		for try := 0; try < maxPlacementTries; try++ {
			vertical := rng.Intn(2) == 0
			row, column := rng.Intn(GridSize), rng.Intn(GridSize)

			endRow, endColumn := row, column+length-1
			if vertical {
				endRow, endColumn = row+length-1, column
			}
			if endRow >= GridSize || endColumn >= GridSize {
				continue
			}
			if touchesOccupied(&occupied, row, column, endRow, endColumn) {
				continue
			}

			for r := row; r <= endRow; r++ {
				for c := column; c <= endColumn; c++ {
					occupied[r][c] = true
				}
			}
			specs = append(specs, NewShipSpec(row, column, endRow, endColumn))
			placed = true
			break
		}

		if !placed {
			return nil, false
		}
	}
	return specs, true
}

// Checks the rectangle of the ship grown by one cell in every direction.
func touchesOccupied(occupied *[GridSize][GridSize]bool, row, column, endRow, endColumn int) bool {
	for r := max(0, row-1); r <= min(GridSize-1, endRow+1); r++ {
		for c := max(0, column-1); c <= min(GridSize-1, endColumn+1); c++ {
			if occupied[r][c] {
				return true
			}
		}
	}
	return false
}
