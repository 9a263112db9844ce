package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"hl-data/internal/app"
	"hl-data/internal/slogx"
)

// genFlags are the per-run overrides shared by the generate subcommands.
// Only flags the user actually set are applied on top of the loaded config.
type genFlags struct {
	coin   string
	count  int
	base   float64
	date   string
	hour   int
	out    string
	seed   int64
	format string
}

func (g *genFlags) register(f *flag.FlagSet) {
	f.StringVar(&g.coin, "coin", "", "instrument symbol")
	f.IntVar(&g.count, "count", 0, "number of records to generate")
	f.Float64Var(&g.base, "base-price", 0, "starting reference price")
	f.StringVar(&g.date, "date", "", "start date (YYYY-MM-DD)")
	f.IntVar(&g.hour, "hour", 0, "start hour (0-23)")
	f.StringVar(&g.out, "out", "", "output root directory")
	f.Int64Var(&g.seed, "seed", 0, "random seed (0 = from clock)")
	f.StringVar(&g.format, "format", "", "output format")
}

func (g *genFlags) apply(f *flag.FlagSet, cfg *app.Config, sc *app.StreamConfig, format *string) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "coin":
			sc.Coin = g.coin
		case "count":
			sc.Count = g.count
		case "base-price":
			sc.BasePrice = g.base
		case "date":
			sc.StartDate = g.date
		case "hour":
			sc.StartHour = g.hour
		case "out":
			cfg.DataDir = g.out
		case "seed":
			cfg.Seed = g.seed
		case "format":
			*format = g.format
		}
	})
}

// initRunner builds the app graph and resets the default logger to the
// configured level.
func initRunner() (*app.Runner, error) {
	r, err := InitializeRunner()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slogx.NewDefault(r.Cfg.LogLevel))
	return r, nil
}

// reloadSavers rebuilds both savers after flag overrides changed a format.
func reloadSavers(r *app.Runner) error {
	es, err := app.ProvideEventSaver(r.Cfg)
	if err != nil {
		return err
	}
	cs, err := app.ProvideCandleSaver(r.Cfg)
	if err != nil {
		return err
	}
	r.Events, r.Candles = es, cs
	return nil
}

type eventsCmd struct{ flags genFlags }

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "generate an L2 order-book snapshot stream (JSONL)" }
func (*eventsCmd) Usage() string {
	return `events [-coin BTC] [-count 3600] [-base-price 25000] [-date 2023-09-16] [-hour 9] [-out data] [-format jsonl]:
  Generate one (date, hour) partition of L2 snapshot events.
`
}
func (c *eventsCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := initRunner()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	c.flags.apply(f, r.Cfg, &r.Cfg.Events, &r.Cfg.EventFormat)
	if err := reloadSavers(r); err != nil {
		slog.Error("failed to select saver", "error", err)
		return subcommands.ExitFailure
	}
	if err := r.RunEvents(); err != nil {
		slog.Error("event generation failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type candlesCmd struct{ flags genFlags }

func (*candlesCmd) Name() string     { return "candles" }
func (*candlesCmd) Synopsis() string { return "generate an OHLCV candle series (CSV)" }
func (*candlesCmd) Usage() string {
	return `candles [-coin ETH] [-count 100] [-base-price 2500] [-date 2024-01-01] [-out data] [-seed 1] [-format csv]:
  Generate one candle series for (coin, interval).
`
}
func (c *candlesCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *candlesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := initRunner()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	c.flags.apply(f, r.Cfg, &r.Cfg.Candles, &r.Cfg.CandleFormat)
	if err := reloadSavers(r); err != nil {
		slog.Error("failed to select saver", "error", err)
		return subcommands.ExitFailure
	}
	if err := r.RunCandles(); err != nil {
		slog.Error("candle generation failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type allCmd struct {
	out  string
	seed int64
}

func (*allCmd) Name() string     { return "all" }
func (*allCmd) Synopsis() string { return "generate both fixture streams" }
func (*allCmd) Usage() string {
	return `all [-out data] [-seed 1]:
  Generate the L2 event stream and the candle series in one batch.
`
}
func (c *allCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "out", "", "output root directory")
	f.Int64Var(&c.seed, "seed", 0, "random seed (0 = from clock)")
}

func (c *allCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := initRunner()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "out":
			r.Cfg.DataDir = c.out
		case "seed":
			r.Cfg.Seed = c.seed
		}
	})
	if err := r.RunAll(); err != nil {
		slog.Error("generation failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
