package app

import (
	"log/slog"
	"time"

	"hl-data/internal/gen"
	"hl-data/internal/saver"
)

// Runner executes the generation batches. Both streams are one-shot:
// generate the full in-memory sequence, write it in one pass, done.
// A failed run leaves no partial output contract — it must be re-run.
type Runner struct {
	Cfg     *Config
	Events  saver.EventSaver
	Candles saver.CandleSaver
}

// RunEvents generates the L2 snapshot stream and writes one file for the
// (date, hour) partition. Any existing file at that path is overwritten.
func (r *Runner) RunEvents() error {
	if err := r.Cfg.Validate(); err != nil {
		return err
	}
	sc := r.Cfg.Events
	startMS, err := sc.StartMS()
	if err != nil {
		return err
	}

	src := gen.NewOscillator(r.Cfg.Osc, sc.BasePrice, startMS, sc.StepMS)
	ticks, err := src.Generate(sc.Count)
	if err != nil {
		return err
	}
	book, err := gen.NewBookBuilder(r.Cfg.Book)
	if err != nil {
		return err
	}
	events := book.BuildSeries(ticks)

	day := time.UnixMilli(startMS).UTC()
	path := saver.EventPath(r.Cfg.EventRoot(), sc.Coin, day, sc.StartHour, r.Events.Extension())
	if err := saver.WriteEvents(r.Events, events, path); err != nil {
		return err
	}

	slog.Info("generated L2 events",
		"source", src.GetName(),
		"coin", sc.Coin,
		"count", len(events),
		"depth", r.Cfg.Book.Depth,
		"from_ms", ticks[0].TimestampMS,
		"to_ms", ticks[len(ticks)-1].TimestampMS,
		"path", path)
	return nil
}

// RunCandles generates the OHLCV series and writes one file per
// (coin, interval). Count+1 walk ticks yield count candles, so each close
// is exactly the next candle's open.
func (r *Runner) RunCandles() error {
	if err := r.Cfg.Validate(); err != nil {
		return err
	}
	sc := r.Cfg.Candles
	startMS, err := sc.StartMS()
	if err != nil {
		return err
	}

	src := gen.NewRandomWalk(r.Cfg.Walk, sc.BasePrice, startMS, r.Cfg.Candle.DurationMS, r.Cfg.Seed)
	ticks, err := src.Generate(sc.Count + 1)
	if err != nil {
		return err
	}
	// The builder draws wicks and volumes from its own stream; offsetting
	// a non-zero seed keeps the two streams from replaying each other.
	builder, err := gen.NewCandleBuilder(r.Cfg.Candle, sc.Coin, offsetSeed(r.Cfg.Seed))
	if err != nil {
		return err
	}
	candles, err := builder.BuildSeries(ticks)
	if err != nil {
		return err
	}

	path := saver.CandlePath(r.Cfg.CandleRoot(), sc.Coin, r.Cfg.Candle.Interval, r.Candles.Extension())
	if err := saver.WriteCandles(r.Candles, candles, path); err != nil {
		return err
	}

	slog.Info("generated candles",
		"source", src.GetName(),
		"coin", sc.Coin,
		"interval", r.Cfg.Candle.Interval,
		"count", len(candles),
		"open", candles[0].Open,
		"close", candles[len(candles)-1].Close,
		"path", path)
	return nil
}

// RunAll generates both streams. The first failure aborts the batch.
func (r *Runner) RunAll() error {
	if err := r.RunEvents(); err != nil {
		return err
	}
	return r.RunCandles()
}

func offsetSeed(seed int64) int64 {
	if seed == 0 {
		return 0
	}
	return seed + 1
}
