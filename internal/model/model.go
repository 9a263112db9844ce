package model

// PriceTick is one step of the synthetic price process.
// Dùng chung cho generator, builder và serialization.
type PriceTick struct {
	Index       int
	TimestampMS int64 // Unix timestamp in milliseconds
	Price       float64
}

// BookLevel is one aggregated level of an order book side.
// Px and Sz are decimal strings so the downstream parser never sees
// binary-float round-trip artifacts.
type BookLevel struct {
	Px string `json:"px"`
	Sz string `json:"sz"`
	N  int    `json:"n"`
}

// L2Snapshot is a full two-sided book at one timestamp. Both sides are
// ordered nearest to the reference price first: bids by strictly
// decreasing price, asks by strictly increasing price.
type L2Snapshot struct {
	TimestampMS int64
	Bids        []BookLevel
	Asks        []BookLevel
}

// Candle represents one OHLCV bar.
// Dùng chung cho builder, saver và serialization (csv, json, parquet).
type Candle struct {
	TimeOpen  int64   `json:"time_open" parquet:"time_open"` // Unix timestamp in milliseconds
	TimeClose int64   `json:"time_close" parquet:"time_close"`
	Coin      string  `json:"coin" parquet:"coin"`
	Interval  string  `json:"interval" parquet:"interval"`
	Open      float64 `json:"open" parquet:"open"`
	Close     float64 `json:"close" parquet:"close"`
	High      float64 `json:"high" parquet:"high"`
	Low       float64 `json:"low" parquet:"low"`
	Volume    float64 `json:"volume" parquet:"volume"`
	NumTrades int     `json:"num_trades" parquet:"num_trades"`
}
