package saver

import (
	"encoding/json"
	"os"

	"hl-data/internal/model"
)

// JSONSaver lưu candle series dưới dạng JSON (array, indent).
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(candles []model.Candle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("create "+path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(candles); err != nil {
		return ioErr("write "+path, err)
	}
	return nil
}
