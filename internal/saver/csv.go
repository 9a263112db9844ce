package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"hl-data/internal/model"
)

// candleHeader is the column order the engine's candle loader expects.
var candleHeader = []string{
	"time_open", "time_close", "coin", "interval",
	"open", "close", "high", "low", "volume", "num_trades",
}

// CSVSaver lưu candle series dưới dạng CSV (header + one row per candle).
// Price and volume fields are fixed-2-decimal strings, timestamps integer
// epoch milliseconds.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(candles []model.Candle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("create "+path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write(candleHeader); err != nil {
		return ioErr("write "+path, err)
	}
	for _, c := range candles {
		row := []string{
			strconv.FormatInt(c.TimeOpen, 10),
			strconv.FormatInt(c.TimeClose, 10),
			c.Coin,
			c.Interval,
			fixed2(c.Open),
			fixed2(c.Close),
			fixed2(c.High),
			fixed2(c.Low),
			fixed2(c.Volume),
			strconv.Itoa(c.NumTrades),
		}
		if err := w.Write(row); err != nil {
			return ioErr("write "+path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ioErr("flush "+path, err)
	}
	return nil
}

func fixed2(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
