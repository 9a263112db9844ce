package saver

import (
	"github.com/parquet-go/parquet-go"

	"hl-data/internal/model"
)

// ParquetSaver lưu candle series dưới dạng Parquet. The engine round-trips
// candles through parquet in its cache layer with the same column names.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(candles []model.Candle, path string) error {
	if err := parquet.WriteFile(path, candles); err != nil {
		return ioErr("write "+path, err)
	}
	return nil
}
