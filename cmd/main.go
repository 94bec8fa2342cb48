package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"

	"github.com/saeidalz13/seabattle-engine/internal/checker"
	"github.com/saeidalz13/seabattle-engine/internal/config"
	"github.com/saeidalz13/seabattle-engine/internal/console"
	"github.com/saeidalz13/seabattle-engine/internal/logging"
	mb "github.com/saeidalz13/seabattle-engine/models/battleship"
	"github.com/saeidalz13/seabattle-engine/models/layout"
)

func main() {
	cfg := config.MustLoad(".env")
	logger := logging.New(os.Stderr, cfg.Stage, cfg.LogLevel)

	app := cli.NewApp()
	app.Name = "seabattle"
	app.Usage = "place a battleship fleet on a 10x10 grid and fire at it"
	app.Commands = []cli.Command{
		playCommand(cfg, logger),
		checkCommand(cfg, logger),
		generateCommand(),
		renderCommand(cfg),
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("seabattle failed")
	}
}

func playCommand(cfg config.Config, logger zerolog.Logger) cli.Command {
	return cli.Command{
		Name:  "play",
		Usage: "play against a fleet read from a layout file, or a random one",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "layout, l", Value: cfg.LayoutPath, Usage: "layout file; random fleet when empty"},
			cli.Int64Flag{Name: "seed", Usage: "seed for the random fleet"},
			cli.BoolFlag{Name: "reveal", Usage: "show alive decks on the board"},
		},
		Action: func(c *cli.Context) error {
			specs, err := fleetSpecs(c.String("layout"), seedFrom(c))
			if err != nil {
				return err
			}

			game, err := mb.NewGame(specs)
			if err != nil {
				return fmt.Errorf("invalid fleet: %w", err)
			}

			return console.NewProcessor(game, os.Stdin, os.Stdout, logger, console.WithReveal(c.Bool("reveal"))).Run()
		},
	}
}

func checkCommand(cfg config.Config, logger zerolog.Logger) cli.Command {
	return cli.Command{
		Name:      "check",
		Usage:     "validate layout files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "workers, w", Value: cfg.CheckWorkers, Usage: "files validated at the same time"},
			cli.BoolFlag{Name: "json", Usage: "print one JSON report per line"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.NewExitError("check needs at least one layout file", 2)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			reports, err := checker.New(c.Int("workers"), logger).CheckFiles(ctx, c.Args())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			for _, r := range reports {
				switch {
				case c.Bool("json"):
					if err := enc.Encode(r); err != nil {
						return err
					}
				case r.Valid:
					fmt.Printf("OK\t%s\n", r.Path)
				default:
					fmt.Printf("FAIL\t%s\t%s\n", r.Path, r.Error)
				}
			}

			if invalid := checker.Invalid(reports); invalid > 0 {
				return cli.NewExitError(fmt.Sprintf("%d of %d layouts invalid", invalid, len(reports)), 1)
			}
			return nil
		},
	}
}

func generateCommand() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "write a random valid layout",
		Flags: []cli.Flag{
			cli.Int64Flag{Name: "seed", Usage: "seed for the random fleet"},
			cli.StringFlag{Name: "out, o", Usage: "output file; stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			specs, err := mb.RandomFleet(rand.New(rand.NewSource(seedFrom(c))))
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "" {
				return layout.Encode(os.Stdout, specs)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			return layout.Encode(f, specs)
		},
	}
}

func renderCommand(cfg config.Config) cli.Command {
	return cli.Command{
		Name:  "render",
		Usage: "print the board of a layout file",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "layout, l", Value: cfg.LayoutPath, Usage: "layout file"},
		},
		Action: func(c *cli.Context) error {
			path := c.String("layout")
			if path == "" {
				return cli.NewExitError("render needs --layout", 2)
			}

			board, err := layout.LoadBoard(path)
			if err != nil {
				return err
			}
			return board.Render(os.Stdout, mb.DefaultGlyphs)
		},
	}
}

func fleetSpecs(layoutPath string, seed int64) ([]mb.ShipSpec, error) {
	if layoutPath != "" {
		return layout.Load(layoutPath)
	}
	return mb.RandomFleet(rand.New(rand.NewSource(seed)))
}

func seedFrom(c *cli.Context) int64 {
	if c.IsSet("seed") {
		return c.Int64("seed")
	}
	return time.Now().UnixNano()
}
