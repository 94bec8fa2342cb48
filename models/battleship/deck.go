package battleship

import "fmt"

// Deck is one grid cell occupied by a ship segment.
type Deck struct {
	row     int
	column  int
	isAlive bool
}

func NewDeck(row, column int) (*Deck, error) {
	deck := &Deck{isAlive: true}

	if err := deck.SetRow(row); err != nil {
		return nil, err
	}
	if err := deck.SetColumn(column); err != nil {
		return nil, err
	}
	return deck, nil
}

func (d *Deck) SetRow(row int) error {
	if err := DefaultCoordinateValidator.ValidateInt(row); err != nil {
		return err
	}
	d.row = row
	return nil
}

func (d *Deck) SetColumn(column int) error {
	if err := DefaultCoordinateValidator.ValidateInt(column); err != nil {
		return err
	}
	d.column = column
	return nil
}

func (d *Deck) Row() int {
	return d.row
}

func (d *Deck) Column() int {
	return d.column
}

func (d *Deck) Coordinates() Coordinates {
	return NewCoordinates(d.row, d.column)
}

func (d *Deck) IsAlive() bool {
	return d.isAlive
}

// Alive state does not take part in equality.
func (d *Deck) Equals(other *Deck) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.row == other.row && d.column == other.column
}

func (d *Deck) kill() {
	d.isAlive = false
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck: (%d, %d, is_alive=%t)", d.row, d.column, d.isAlive)
}
