package battleship

import (
	"io"
	"sync"

	"github.com/google/uuid"
)

type Shot struct {
	Location Coordinates `json:"location"`
	Result   FireResult  `json:"result"`
}

// Game is one play-through against a single board. The mutex guards
// Fire since it looks a cell up and then mutates it.
type Game struct {
	uuid       string
	board      *Battleship
	shots      []Shot
	isFinished bool
	mu         sync.Mutex
}

func NewGame(specs []ShipSpec) (*Game, error) {
	board, err := NewBattleship(specs)
	if err != nil {
		return nil, err
	}

	return &Game{
		uuid:       uuid.NewString()[:6],
		board:      board,
		shots:      make([]Shot, 0, GridSize*GridSize),
		isFinished: false,
	}, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

// Board returns the board without taking the lock. It is not safe to
// read deck state through it while another goroutine calls Fire; use
// the Game methods below for that.
func (g *Game) Board() *Battleship {
	return g.board
}

func (g *Game) Render(w io.Writer, glyphs Glyphs) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Render(w, glyphs)
}

func (g *Game) RenderFogged(w io.Writer, glyphs Glyphs) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.RenderFogged(w, glyphs)
}

func (g *Game) SunkShips() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.SunkShips()
}

// Number of ships in the fleet; fixed after construction.
func (g *Game) ShipCount() int {
	return len(g.board.ships)
}

// Fire resolves a shot and records it. Shots after the fleet is
// destroyed are still resolved (and all miss or re-report Sunk!).
func (g *Game) Fire(location Coordinates) Shot {
	g.mu.Lock()
	defer g.mu.Unlock()

	shot := Shot{Location: location, Result: g.board.Fire(location)}
	g.shots = append(g.shots, shot)

	if shot.Result == FireResultSunk && g.board.IsDefeated() {
		g.isFinished = true
	}
	return shot
}

func (g *Game) Shots() []Shot {
	g.mu.Lock()
	defer g.mu.Unlock()

	shots := make([]Shot, len(g.shots))
	copy(shots, g.shots)
	return shots
}

func (g *Game) ShotCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.shots)
}

func (g *Game) IsFinished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isFinished
}
