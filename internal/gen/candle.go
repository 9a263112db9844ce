package gen

import (
	"fmt"
	"math"
	"math/rand"

	"hl-data/internal/model"
)

// CandleConfig tunes the OHLCV synthesis.
type CandleConfig struct {
	// Interval is the label written into each record, e.g. "1h".
	Interval string `toml:"interval" validate:"required"`
	// DurationMS is the period length; time_close = time_open + DurationMS - 1.
	DurationMS int64 `toml:"duration_ms" validate:"gt=0"`
	// WickMax bounds the high/low excursion above/below the open (0.01 = 1%).
	WickMax float64 `toml:"wick_max" validate:"gt=0"`
	// Volume and trade-count draw ranges.
	VolumeMin float64 `toml:"volume_min" validate:"gte=0"`
	VolumeMax float64 `toml:"volume_max" validate:"gtefield=VolumeMin"`
	TradesMin int     `toml:"trades_min" validate:"gte=0"`
	TradesMax int     `toml:"trades_max" validate:"gtefield=TradesMin"`
}

// DefaultCandleConfig returns the reference 1h candle parameters.
func DefaultCandleConfig() CandleConfig {
	return CandleConfig{
		Interval:   "1h",
		DurationMS: 3_600_000,
		WickMax:    0.01,
		VolumeMin:  1000,
		VolumeMax:  10000,
		TradesMin:  50,
		TradesMax:  500,
	}
}

// CandleBuilder turns a reference price sequence into OHLCV records.
// Candle i opens at tick i and closes at tick i+1's price, so the close
// delta is the same step that advances the walk to the next open.
type CandleBuilder struct {
	cfg  CandleConfig
	coin string
	rng  *rand.Rand
}

// NewCandleBuilder creates a builder for one instrument. Seed 0 seeds from
// the clock.
func NewCandleBuilder(cfg CandleConfig, coin string, seed int64) (*CandleBuilder, error) {
	if cfg.DurationMS <= 0 {
		return nil, fmt.Errorf("%w: interval duration must be positive, got %dms", model.ErrInvalidArgument, cfg.DurationMS)
	}
	if coin == "" {
		return nil, fmt.Errorf("%w: coin must not be empty", model.ErrInvalidArgument)
	}
	return &CandleBuilder{cfg: cfg, coin: coin, rng: newRand(seed)}, nil
}

// Build constructs one candle from an open tick and the next open price.
// High and low are sampled around the open, then widened to cover both
// open and close so low <= min(open, close) <= max(open, close) <= high
// holds unconditionally. The legacy generator drew high/low independently
// of the close and could emit close > high on adverse draws.
func (cb *CandleBuilder) Build(open model.PriceTick, closePrice float64) model.Candle {
	high := open.Price * (1 + math.Abs(cb.rng.Float64()*cb.cfg.WickMax))
	low := open.Price * (1 - math.Abs(cb.rng.Float64()*cb.cfg.WickMax))
	high = math.Max(high, math.Max(open.Price, closePrice))
	low = math.Min(low, math.Min(open.Price, closePrice))

	return model.Candle{
		TimeOpen:  open.TimestampMS,
		TimeClose: open.TimestampMS + cb.cfg.DurationMS - 1,
		Coin:      cb.coin,
		Interval:  cb.cfg.Interval,
		Open:      open.Price,
		Close:     closePrice,
		High:      high,
		Low:       low,
		Volume:    cb.cfg.VolumeMin + cb.rng.Float64()*(cb.cfg.VolumeMax-cb.cfg.VolumeMin),
		NumTrades: cb.cfg.TradesMin + cb.rng.Intn(cb.cfg.TradesMax-cb.cfg.TradesMin+1),
	}
}

// BuildSeries produces len(ticks)-1 candles: each tick opens a candle and
// the following tick closes it. At least two ticks are required.
func (cb *CandleBuilder) BuildSeries(ticks []model.PriceTick) ([]model.Candle, error) {
	if len(ticks) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 ticks for a candle series, got %d", model.ErrInvalidArgument, len(ticks))
	}
	candles := make([]model.Candle, 0, len(ticks)-1)
	for i := 0; i+1 < len(ticks); i++ {
		candles = append(candles, cb.Build(ticks[i], ticks[i+1].Price))
	}
	return candles, nil
}
