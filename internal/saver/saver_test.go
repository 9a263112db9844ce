package saver

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hl-data/internal/model"
)

func sampleEvents(n int) []model.L2Event {
	events := make([]model.L2Event, 0, n)
	for i := 0; i < n; i++ {
		snap := model.L2Snapshot{
			TimestampMS: 1_694_854_800_000 + int64(i)*1000,
			Bids: []model.BookLevel{
				{Px: "24994.50", Sz: "1.00", N: 1},
				{Px: "24994.00", Sz: "1.50", N: 2},
			},
			Asks: []model.BookLevel{
				{Px: "24995.50", Sz: "1.00", N: 1},
				{Px: "24996.00", Sz: "1.50", N: 2},
			},
		}
		events = append(events, model.NewL2Event(snap))
	}
	return events
}

func sampleCandles(n int) []model.Candle {
	candles := make([]model.Candle, 0, n)
	for i := 0; i < n; i++ {
		open := int64(1_704_067_200_000) + int64(i)*3_600_000
		candles = append(candles, model.Candle{
			TimeOpen:  open,
			TimeClose: open + 3_599_999,
			Coin:      "ETH",
			Interval:  "1h",
			Open:      2500.5,
			Close:     2510.25,
			High:      2515,
			Low:       2490.75,
			Volume:    4321.5,
			NumTrades: 123,
		})
	}
	return candles
}

func TestJSONLSaverLineShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "20230916-9.jsonl")
	require.NoError(t, JSONLSaver{}.Save(sampleEvents(5), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var obj map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(sc.Bytes(), &obj), "line %d is not valid JSON", lines)
		assert.Len(t, obj, 2)
		assert.Contains(t, obj, "time")
		assert.Contains(t, obj, "raw")

		var e model.L2Event
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		assert.Len(t, e.Raw.Data.Levels, 2)
		assert.Equal(t, "24994.50", e.Raw.Data.Levels[0][0].Px)
		assert.Equal(t, 1, e.Raw.Data.Levels[0][0].N)
		assert.True(t, strings.HasSuffix(e.Time, "Z"))
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 5, lines)
}

func TestLZ4SaverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "20230916-9.jsonl.lz4")
	events := sampleEvents(3)
	require.NoError(t, LZ4JSONLSaver{}.Save(events, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(lz4.NewReader(f))
	for sc.Scan() {
		var e model.L2Event
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		assert.Equal(t, events[lines].Raw.Data.Time, e.Raw.Data.Time)
		lines++
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, 3, lines)
}

func TestCSVSaverHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1h.csv")
	require.NoError(t, CSVSaver{}.Save(sampleCandles(4), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, candleHeader, rows[0])
	for _, row := range rows[1:] {
		require.Len(t, row, 10)
	}
	assert.Equal(t, "1704067200000", rows[1][0])
	assert.Equal(t, "1704070799999", rows[1][1])
	assert.Equal(t, "ETH", rows[1][2])
	assert.Equal(t, "1h", rows[1][3])
	assert.Equal(t, "2500.50", rows[1][4])
	assert.Equal(t, "2510.25", rows[1][5])
	assert.Equal(t, "2515.00", rows[1][6])
	assert.Equal(t, "2490.75", rows[1][7])
	assert.Equal(t, "4321.50", rows[1][8])
	assert.Equal(t, "123", rows[1][9])
}

func TestJSONSaverArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1h.json")
	require.NoError(t, JSONSaver{}.Save(sampleCandles(2), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []model.Candle
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleCandles(2), got)
}

func TestSaverFactories(t *testing.T) {
	assert.Equal(t, "jsonl", NewEventSaver("jsonl").Extension())
	assert.Equal(t, "jsonl.lz4", NewEventSaver(" JSONL.LZ4 ").Extension())
	assert.Nil(t, NewEventSaver("csv"))

	assert.Equal(t, "csv", NewCandleSaver("csv").Extension())
	assert.Equal(t, "json", NewCandleSaver("json").Extension())
	assert.Equal(t, "parquet", NewCandleSaver("Parquet").Extension())
	assert.Nil(t, NewCandleSaver("xml"))
}

func TestPathLayout(t *testing.T) {
	day := time.Date(2023, 9, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		filepath.Join("data", "events", "BTC", "20230916-9.jsonl"),
		EventPath(filepath.Join("data", "events"), "BTC", day, 9, "jsonl"))
	assert.Equal(t,
		filepath.Join("data", "hyperliquid", "ETH", "1h.csv"),
		CandlePath(filepath.Join("data", "hyperliquid"), "ETH", "1h", "csv"))
}

func TestWriteCreatesDirsAndOverwrites(t *testing.T) {
	root := t.TempDir()
	path := EventPath(root, "BTC", time.Date(2023, 9, 16, 0, 0, 0, 0, time.UTC), 9, "jsonl")

	require.NoError(t, WriteEvents(JSONLSaver{}, sampleEvents(10), path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// Second run silently overwrites the partition file.
	require.NoError(t, WriteEvents(JSONLSaver{}, sampleEvents(2), path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, len(second), len(first))
}

func TestWriteFailsWhenRootIsRegularFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "notadir")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	err := WriteCandles(CSVSaver{}, sampleCandles(1), CandlePath(root, "ETH", "1h", "csv"))
	assert.True(t, errors.Is(err, model.ErrIO), "got %v", err)

	err = WriteEvents(JSONLSaver{}, sampleEvents(1), EventPath(root, "BTC", time.Now().UTC(), 9, "jsonl"))
	assert.True(t, errors.Is(err, model.ErrIO), "got %v", err)
}
