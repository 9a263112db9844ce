package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"hl-data/internal/gen"
	"hl-data/internal/model"
)

// StreamConfig holds the per-stream generation parameters.
type StreamConfig struct {
	Coin      string  `toml:"coin" validate:"required"`
	Count     int     `toml:"count" validate:"gt=0"`
	BasePrice float64 `toml:"base_price" validate:"gt=0"`
	StartDate string  `toml:"start_date" validate:"required"` // YYYY-MM-DD
	StartHour int     `toml:"start_hour" validate:"min=0,max=23"`
	StepMS    int64   `toml:"step_ms" validate:"gt=0"`
}

// Config holds application configuration. Defaults are merged with an
// optional TOML profile (CONFIG_FILE) and then overridden from env.
type Config struct {
	DataDir      string `toml:"data_dir" validate:"required"`
	Venue        string `toml:"venue" validate:"required"`
	LogLevel     string `toml:"log_level"` // debug | info | warn | error
	Seed         int64  `toml:"seed"`      // 0 = seed from clock
	EventFormat  string `toml:"event_format" validate:"oneof=jsonl jsonl.lz4"`
	CandleFormat string `toml:"candle_format" validate:"oneof=csv json parquet"`

	Events  StreamConfig `toml:"events"`
	Candles StreamConfig `toml:"candles"`

	Osc    gen.OscillatorConfig `toml:"oscillator"`
	Walk   gen.WalkConfig       `toml:"walk"`
	Book   gen.BookConfig       `toml:"book"`
	Candle gen.CandleConfig     `toml:"candle"`
}

// Defaults returns the reference generation parameters: one hour of
// per-second BTC events and 100 hourly ETH candles.
func Defaults() *Config {
	return &Config{
		DataDir:      "data",
		Venue:        "hyperliquid",
		LogLevel:     "info",
		EventFormat:  "jsonl",
		CandleFormat: "csv",
		Events: StreamConfig{
			Coin:      "BTC",
			Count:     3600,
			BasePrice: 25000,
			StartDate: "2023-09-16",
			StartHour: 9,
			StepMS:    1000,
		},
		Candles: StreamConfig{
			Coin:      "ETH",
			Count:     100,
			BasePrice: 2500,
			StartDate: "2024-01-01",
			StartHour: 0,
			StepMS:    3_600_000,
		},
		Osc:    gen.DefaultOscillatorConfig(),
		Walk:   gen.DefaultWalkConfig(),
		Book:   gen.DefaultBookConfig(),
		Candle: gen.DefaultCandleConfig(),
	}
}

// LoadConfig reads configuration: defaults, then the TOML profile named by
// CONFIG_FILE (if set), then environment overrides. A .env file is loaded
// first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.DataDir, "DATA_DIR")
	setStr(&cfg.Venue, "VENUE")
	setStr(&cfg.LogLevel, "LOG_LEVEL")
	setInt64(&cfg.Seed, "SEED")
	setStr(&cfg.EventFormat, "EVENT_FORMAT")
	setStr(&cfg.CandleFormat, "CANDLE_FORMAT")

	setStr(&cfg.Events.Coin, "EVENT_COIN")
	setInt(&cfg.Events.Count, "EVENT_COUNT")
	setFloat(&cfg.Events.BasePrice, "EVENT_BASE_PRICE")
	setStr(&cfg.Events.StartDate, "EVENT_START_DATE")
	setInt(&cfg.Events.StartHour, "EVENT_START_HOUR")

	setStr(&cfg.Candles.Coin, "CANDLE_COIN")
	setInt(&cfg.Candles.Count, "CANDLE_COUNT")
	setFloat(&cfg.Candles.BasePrice, "CANDLE_BASE_PRICE")
	setStr(&cfg.Candles.StartDate, "CANDLE_START_DATE")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

var validate = validator.New()

// Validate checks the assembled configuration. Violations are reported as
// ErrInvalidArgument so callers can distinguish them from write failures.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}
	for name, s := range map[string]StreamConfig{"events": c.Events, "candles": c.Candles} {
		if _, err := time.ParseInLocation("2006-01-02", s.StartDate, time.UTC); err != nil {
			return fmt.Errorf("%w: %s start_date %q is not YYYY-MM-DD", model.ErrInvalidArgument, name, s.StartDate)
		}
	}
	return nil
}

// EventRoot returns <data_dir>/events
func (c *Config) EventRoot() string {
	return filepath.Join(c.DataDir, "events")
}

// CandleRoot returns <data_dir>/<venue>
func (c *Config) CandleRoot() string {
	return filepath.Join(c.DataDir, c.Venue)
}

// StartMS returns the stream's first timestamp: start date at start hour, UTC.
func (s StreamConfig) StartMS() (int64, error) {
	day, err := time.ParseInLocation("2006-01-02", s.StartDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: start_date %q is not YYYY-MM-DD", model.ErrInvalidArgument, s.StartDate)
	}
	return day.Add(time.Duration(s.StartHour) * time.Hour).UnixMilli(), nil
}
