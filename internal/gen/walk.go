package gen

import (
	"math/rand"

	"hl-data/internal/model"
)

// WalkConfig tunes the bounded random walk.
type WalkConfig struct {
	// MaxStep is the symmetric per-step bound as a fraction (0.02 = ±2%).
	MaxStep float64 `toml:"max_step" validate:"gt=0,lte=1"`
	// Floor is the lowest price the walk may reach. Repeated negative
	// steps clamp here instead of failing mid-sequence, so generation
	// always terminates with a valid sequence.
	Floor float64 `toml:"floor" validate:"gt=0"`
}

// DefaultWalkConfig returns the reference walk: ±2% per step, floor 0.01.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{MaxStep: 0.02, Floor: 0.01}
}

// RandomWalk is a PriceSource advancing multiplicatively:
// p(i) = p(i-1) * (1 + δ), δ ∈ U(-MaxStep, +MaxStep). Used for the candle
// stream. Repeatable only when constructed with a non-zero seed.
type RandomWalk struct {
	cfg       WalkConfig
	basePrice float64
	startMS   int64
	stepMS    int64
	rng       *rand.Rand
}

// NewRandomWalk creates a random-walk price source. Seed 0 seeds from the
// clock (legacy behavior); any other seed makes the sequence repeatable.
func NewRandomWalk(cfg WalkConfig, basePrice float64, startMS, stepMS int64, seed int64) *RandomWalk {
	return &RandomWalk{
		cfg:       cfg,
		basePrice: basePrice,
		startMS:   startMS,
		stepMS:    stepMS,
		rng:       newRand(seed),
	}
}

// GetName returns source name
func (w *RandomWalk) GetName() string { return "random-walk" }

// Generate produces count ticks. Tick 0 is exactly the base price.
func (w *RandomWalk) Generate(count int) ([]model.PriceTick, error) {
	if err := checkSequenceArgs(count, w.basePrice, w.stepMS); err != nil {
		return nil, err
	}
	ticks := make([]model.PriceTick, 0, count)
	price := w.basePrice
	for i := 0; i < count; i++ {
		ticks = append(ticks, model.PriceTick{
			Index:       i,
			TimestampMS: w.startMS + int64(i)*w.stepMS,
			Price:       price,
		})
		delta := (w.rng.Float64()*2 - 1) * w.cfg.MaxStep
		price *= 1 + delta
		if price < w.cfg.Floor {
			price = w.cfg.Floor
		}
	}
	return ticks, nil
}
