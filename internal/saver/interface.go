package saver

import (
	"fmt"
	"strings"

	"hl-data/internal/model"
)

// EventSaver là abstraction cho lưu một stream L2 event (one object per
// line). High-level (app) inject implementation; builders chỉ phụ thuộc
// interface — DIP.
type EventSaver interface {
	Save(events []model.L2Event, path string) error
	Extension() string
}

// CandleSaver persists one candle series to a single file.
type CandleSaver interface {
	Save(candles []model.Candle, path string) error
	Extension() string
}

// NewEventSaver creates implementation by format (jsonl, jsonl.lz4).
// Returns nil if format not supported.
func NewEventSaver(format string) EventSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jsonl":
		return JSONLSaver{}
	case "jsonl.lz4":
		return LZ4JSONLSaver{}
	default:
		return nil
	}
}

// NewCandleSaver creates implementation by format (csv, json, parquet).
// Returns nil if format not supported.
func NewCandleSaver(format string) CandleSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}

// ioErr tags an output failure so callers can test errors.Is(err, ErrIO)
// while keeping the underlying cause in the chain.
func ioErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrIO, err)
}
