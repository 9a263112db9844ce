package gen

import "hl-data/internal/model"

// OscillatorConfig tunes the deterministic sawtooth.
type OscillatorConfig struct {
	Period int     `toml:"period" validate:"gt=0"`
	Step   float64 `toml:"step" validate:"gt=0"`
}

// DefaultOscillatorConfig returns the reference sawtooth: period 20,
// half-step 0.5 (amplitude ±5 around the base price).
func DefaultOscillatorConfig() OscillatorConfig {
	return OscillatorConfig{Period: 20, Step: 0.5}
}

// Oscillator is a PriceSource emitting a repeatable sawtooth around a base
// price. No randomness: the same inputs always yield the same sequence.
// Used for the L2 event stream.
type Oscillator struct {
	cfg       OscillatorConfig
	basePrice float64
	startMS   int64
	stepMS    int64
}

// NewOscillator creates an oscillating price source starting at startMS and
// advancing stepMS per tick.
func NewOscillator(cfg OscillatorConfig, basePrice float64, startMS, stepMS int64) *Oscillator {
	return &Oscillator{cfg: cfg, basePrice: basePrice, startMS: startMS, stepMS: stepMS}
}

// GetName returns source name
func (o *Oscillator) GetName() string { return "oscillator" }

// Generate produces count ticks. The offset at index i is
// ((i + period/2) % period - period/2) * step, so the sequence starts at
// the base price, ramps up for half a period, drops to the low and ramps
// back — the phase keeps tick 0 exactly on the base price.
func (o *Oscillator) Generate(count int) ([]model.PriceTick, error) {
	if err := checkSequenceArgs(count, o.basePrice, o.stepMS); err != nil {
		return nil, err
	}
	ticks := make([]model.PriceTick, 0, count)
	half := o.cfg.Period / 2
	for i := 0; i < count; i++ {
		j := (i + half) % o.cfg.Period
		ticks = append(ticks, model.PriceTick{
			Index:       i,
			TimestampMS: o.startMS + int64(i)*o.stepMS,
			Price:       o.basePrice + float64(j-half)*o.cfg.Step,
		})
	}
	return ticks, nil
}
