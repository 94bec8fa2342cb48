package console

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	mb "github.com/saeidalz13/seabattle-engine/models/battleship"
)

const prompt = "> "

type Processor struct {
	game   *mb.Game
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
	glyphs mb.Glyphs
	reveal bool
}

type Option func(*Processor)

func WithGlyphs(glyphs mb.Glyphs) Option {
	return func(p *Processor) {
		p.glyphs = glyphs
	}
}

// Show alive decks when printing the board.
func WithReveal(reveal bool) Option {
	return func(p *Processor) {
		p.reveal = reveal
	}
}

func NewProcessor(game *mb.Game, r io.Reader, w io.Writer, logger zerolog.Logger, opts ...Option) *Processor {
	p := &Processor{
		game:   game,
		in:     bufio.NewScanner(r),
		out:    w,
		logger: logger.With().Str("game", game.Uuid()).Logger(),
		glyphs: mb.DefaultGlyphs,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads commands until the fleet is destroyed, the player quits or
// the input ends. Only read and write failures are returned.
func (p *Processor) Run() error {
	p.logger.Info().Int("ships", p.game.ShipCount()).Msg("game started")

	if err := p.writeBoard(); err != nil {
		return err
	}

gameLoop:
	for {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return err
		}
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return err
			}
			p.logger.Info().Int("shots", p.game.ShotCount()).Msg("input closed")
			break gameLoop
		}

		signal := parseSignal(p.in.Text())

		switch signal.Code {
		case CodeSignalAbsent:
			continue gameLoop

		case CodeFire:
			shot := p.game.Fire(mb.NewCoordinates(signal.Row, signal.Column))
			p.logger.Debug().
				Int("row", signal.Row).
				Int("column", signal.Column).
				Str("result", shot.Result.String()).
				Msg("shot resolved")

			if _, err := fmt.Fprintln(p.out, shot.Result); err != nil {
				return err
			}

			if p.game.IsFinished() {
				p.logger.Info().Int("shots", p.game.ShotCount()).Msg("fleet destroyed")
				if err := p.writeBoard(); err != nil {
					return err
				}
				_, err := fmt.Fprintf(p.out, "All ships sunk in %d shots.\n", p.game.ShotCount())
				return err
			}

		case CodeShow:
			if err := p.writeBoard(); err != nil {
				return err
			}

		case CodeStatus:
			if _, err := fmt.Fprintf(p.out, "shots: %d\tsunk: %d/%d\n", p.game.ShotCount(), p.game.SunkShips(), p.game.ShipCount()); err != nil {
				return err
			}

		case CodeHistory:
			if err := json.NewEncoder(p.out).Encode(p.game.Shots()); err != nil {
				return err
			}

		case CodeHelp:
			if _, err := io.WriteString(p.out, helpText); err != nil {
				return err
			}

		case CodeQuit:
			p.logger.Info().Int("shots", p.game.ShotCount()).Msg("player quit")
			break gameLoop

		default:
			p.logger.Debug().Err(signal.Err).Msg("invalid input")
			if _, err := fmt.Fprintf(p.out, "invalid input: %s\n", signal.Err); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *Processor) writeBoard() error {
	if p.reveal {
		return p.game.Render(p.out, p.glyphs)
	}
	return p.game.RenderFogged(p.out, p.glyphs)
}
