package checker

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/seabattle-engine/models/layout"
	"golang.org/x/sync/errgroup"
)

type Checker struct {
	workers int
	logger  zerolog.Logger
}

func New(workers int, logger zerolog.Logger) *Checker {
	if workers < 1 {
		workers = 1
	}
	return &Checker{workers: workers, logger: logger}
}

// CheckFiles validates every layout at most c.workers at a time. An
// invalid layout is reported, not returned as an error; only context
// cancellation fails the whole run. Reports keep the order of paths.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) ([]layout.Report, error) {
	reports := make([]layout.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, err := layout.LoadBoard(path)
			reports[i] = layout.NewReport(path, err)

			if err != nil {
				c.logger.Debug().Str("path", path).Str("kind", reports[i].Kind).Err(err).Msg("layout rejected")
			} else {
				c.logger.Debug().Str("path", path).Msg("layout accepted")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Counts the reports that did not pass.
func Invalid(reports []layout.Report) int {
	var n int
	for _, r := range reports {
		if !r.Valid {
			n++
		}
	}
	return n
}
