package gen

import (
	"fmt"
	"math/rand"
	"time"

	"hl-data/internal/model"
)

// PriceSource is the abstraction used by the application when producing a
// reference price sequence. Implementations own their internal step logic;
// a sequence is generated in one pass and never mutated afterwards.
type PriceSource interface {
	GetName() string
	Generate(count int) ([]model.PriceTick, error)
}

// newRand returns a seeded generator. Seed 0 falls back to time-based
// seeding, which matches the legacy unseeded behavior.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func checkSequenceArgs(count int, basePrice float64, stepMS int64) error {
	if count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", model.ErrInvalidArgument, count)
	}
	if basePrice <= 0 {
		return fmt.Errorf("%w: base price must be positive, got %g", model.ErrInvalidArgument, basePrice)
	}
	if stepMS <= 0 {
		return fmt.Errorf("%w: step duration must be positive, got %dms", model.ErrInvalidArgument, stepMS)
	}
	return nil
}
