package app

import (
	"fmt"

	"hl-data/internal/saver"
)

// ProvideConfig loads config from environment and profile (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideEventSaver creates the EventSaver from config (for Wire).
// Returns error if EventFormat is not supported.
func ProvideEventSaver(cfg *Config) (saver.EventSaver, error) {
	s := saver.NewEventSaver(cfg.EventFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported EVENT_FORMAT %q (use: jsonl, jsonl.lz4)", cfg.EventFormat)
	}
	return s, nil
}

// ProvideCandleSaver creates the CandleSaver from config (for Wire).
// Returns error if CandleFormat is not supported.
func ProvideCandleSaver(cfg *Config) (saver.CandleSaver, error) {
	s := saver.NewCandleSaver(cfg.CandleFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported CANDLE_FORMAT %q (use: csv, json, parquet)", cfg.CandleFormat)
	}
	return s, nil
}
