package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	appmarket "marketboard/internal/application/service/market"
	"marketboard/internal/config"
	market "marketboard/internal/domain/entity/market"
	"marketboard/internal/infrastructure/mockdata"
	"marketboard/internal/interfaces/terminal"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	logger.SetOutput(os.Stderr)

	app := newApp(cfg, logger)
	if err := app.RunContext(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("marketctl failed")
		os.Exit(1)
	}
}

func newApp(cfg *config.Config, logger *logrus.Logger) *cli.App {
	criteriaFlags := []cli.Flag{
		&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "free text matched against name, symbol and sector"},
		&cli.StringFlag{Name: "sector", Usage: "only companies of this sector"},
		&cli.Float64Flag{Name: "min-price", Usage: "minimum price"},
		&cli.Float64Flag{Name: "max-price", Usage: "maximum price"},
	}

	return &cli.App{
		Name:  "marketctl",
		Usage: "browse a mock B3 market snapshot in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: cfg.Market.TargetCount, Usage: "number of companies to generate"},
			&cli.Uint64Flag{Name: "seed", Value: cfg.Market.Seed, Usage: "random seed, 0 for a time based one"},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print the companies table",
				Flags: criteriaFlags,
				Action: func(c *cli.Context) error {
					svc := newService(c)
					result, err := svc.Search(c.Context, criteriaFrom(c))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return terminal.RenderTable(c.App.Writer, result)
				},
			},
			{
				Name:      "show",
				Usage:     "print the detail view of one company",
				ArgsUsage: "SYMBOL",
				Action: func(c *cli.Context) error {
					symbol := c.Args().First()
					if symbol == "" {
						return cli.Exit("symbol is required", 2)
					}
					company, err := newService(c).Company(c.Context, symbol)
					if errors.Is(err, appmarket.ErrCompanyNotFound) {
						return cli.Exit(fmt.Sprintf("Empresa não encontrada: %s", symbol), 1)
					}
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return terminal.RenderDetail(c.App.Writer, company)
				},
			},
			{
				Name:  "watch",
				Usage: "search interactively, one query per line",
				Flags: append(criteriaFlags,
					&cli.DurationFlag{Name: "delay", Value: terminal.DefaultDelay, Usage: "pause after typing before searching"},
				),
				Action: func(c *cli.Context) error {
					session := terminal.NewSession(terminal.SessionParams{
						Service: newService(c),
						Out:     c.App.Writer,
						Logger:  logger,
						Delay:   c.Duration("delay"),
						Base:    criteriaFrom(c),
					})
					return session.Run(c.Context, os.Stdin)
				},
			},
		},
	}
}

func newService(c *cli.Context) *appmarket.Service {
	seed := config.MarketConfig{Seed: c.Uint64("seed")}.SeedOrClock(time.Now())
	return appmarket.NewService(mockdata.NewSeededGenerator(seed), c.Int("count"))
}

func criteriaFrom(c *cli.Context) market.Criteria {
	criteria := market.Criteria{
		Query:  c.String("query"),
		Sector: c.String("sector"),
	}
	if c.IsSet("min-price") {
		v := c.Float64("min-price")
		criteria.MinPrice = &v
	}
	if c.IsSet("max-price") {
		v := c.Float64("max-price")
		criteria.MaxPrice = &v
	}
	return criteria
}
