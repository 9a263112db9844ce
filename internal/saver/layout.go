package saver

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hl-data/internal/model"
)

// EventPath returns <root>/<coin>/<YYYYMMDD>-<hour>.<ext>, one file per
// (date, hour) partition.
func EventPath(root, coin string, day time.Time, hour int, ext string) string {
	name := fmt.Sprintf("%s-%d.%s", day.Format("20060102"), hour, ext)
	return filepath.Join(root, coin, name)
}

// CandlePath returns <root>/<coin>/<interval>.<ext>.
func CandlePath(root, coin, interval, ext string) string {
	return filepath.Join(root, coin, interval+"."+ext)
}

// WriteEvents creates intermediate directories and saves the stream.
// An existing file at path is overwritten without warning.
func WriteEvents(s EventSaver, events []model.L2Event, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ioErr("mkdir "+filepath.Dir(path), err)
	}
	return s.Save(events, path)
}

// WriteCandles creates intermediate directories and saves the series.
// Same overwrite behavior as WriteEvents.
func WriteCandles(s CandleSaver, candles []model.Candle, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ioErr("mkdir "+filepath.Dir(path), err)
	}
	return s.Save(candles, path)
}
