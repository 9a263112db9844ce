package gen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"hl-data/internal/model"
)

// BookConfig tunes the ladder construction.
type BookConfig struct {
	Depth    int     `toml:"depth" validate:"gt=0"`
	HalfStep float64 `toml:"half_step" validate:"gt=0"`
	BaseSize float64 `toml:"base_size" validate:"gt=0"`
	SizeIncr float64 `toml:"size_incr" validate:"gte=0"`
	// Places is the number of decimal places in the emitted px/sz strings.
	Places int32 `toml:"places" validate:"gte=0"`
}

// DefaultBookConfig returns the reference ladder: 5 levels per side,
// 0.5 price step, sizes 1.0 + 0.5 per level, 2 decimal places.
func DefaultBookConfig() BookConfig {
	return BookConfig{Depth: 5, HalfStep: 0.5, BaseSize: 1.0, SizeIncr: 0.5, Places: 2}
}

// BookBuilder constructs a full two-sided ladder around a reference price.
// Level j (1-based) sits j*HalfStep away from the reference on each side
// with size BaseSize + (j-1)*SizeIncr and order count j. Offsets are
// strictly positive multiples of j, so bids < reference < asks always
// holds and the book can never cross.
type BookBuilder struct {
	cfg BookConfig
}

// NewBookBuilder validates the config and returns a builder.
func NewBookBuilder(cfg BookConfig) (*BookBuilder, error) {
	if cfg.Depth <= 0 {
		return nil, fmt.Errorf("%w: depth must be positive, got %d", model.ErrInvalidArgument, cfg.Depth)
	}
	if cfg.HalfStep <= 0 {
		return nil, fmt.Errorf("%w: half step must be positive, got %g", model.ErrInvalidArgument, cfg.HalfStep)
	}
	if cfg.BaseSize <= 0 {
		return nil, fmt.Errorf("%w: base size must be positive, got %g", model.ErrInvalidArgument, cfg.BaseSize)
	}
	return &BookBuilder{cfg: cfg}, nil
}

// Build constructs the snapshot for one tick. Level arithmetic is done in
// decimal so the emitted strings are exact at the configured precision.
func (b *BookBuilder) Build(tick model.PriceTick) model.L2Snapshot {
	ref := decimal.NewFromFloat(tick.Price)
	step := decimal.NewFromFloat(b.cfg.HalfStep)
	base := decimal.NewFromFloat(b.cfg.BaseSize)
	incr := decimal.NewFromFloat(b.cfg.SizeIncr)

	bids := make([]model.BookLevel, 0, b.cfg.Depth)
	asks := make([]model.BookLevel, 0, b.cfg.Depth)
	for j := 1; j <= b.cfg.Depth; j++ {
		off := step.Mul(decimal.NewFromInt(int64(j)))
		sz := base.Add(incr.Mul(decimal.NewFromInt(int64(j - 1)))).StringFixed(b.cfg.Places)
		bids = append(bids, model.BookLevel{
			Px: ref.Sub(off).StringFixed(b.cfg.Places),
			Sz: sz,
			N:  j,
		})
		asks = append(asks, model.BookLevel{
			Px: ref.Add(off).StringFixed(b.cfg.Places),
			Sz: sz,
			N:  j,
		})
	}
	return model.L2Snapshot{TimestampMS: tick.TimestampMS, Bids: bids, Asks: asks}
}

// BuildSeries wraps every tick into an event line, preserving order.
func (b *BookBuilder) BuildSeries(ticks []model.PriceTick) []model.L2Event {
	events := make([]model.L2Event, 0, len(ticks))
	for _, t := range ticks {
		events = append(events, model.NewL2Event(b.Build(t)))
	}
	return events
}
