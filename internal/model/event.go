package model

import "time"

// L2Event is the on-disk wrapper for one snapshot line. The backtest
// engine unmarshals exactly this nesting: {"time": ..., "raw": {"data":
// {"time": ms, "levels": [[bids], [asks]]}}}.
type L2Event struct {
	Time string  `json:"time"`
	Raw  RawWrap `json:"raw"`
}

// RawWrap is the "raw" envelope of an L2Event.
type RawWrap struct {
	Data L2Data `json:"data"`
}

// L2Data carries the snapshot payload. Levels[0] is the bid ladder,
// Levels[1] the ask ladder.
type L2Data struct {
	Time   int64         `json:"time"`
	Levels [][]BookLevel `json:"levels"`
}

// NewL2Event wraps a snapshot into the engine's line format. The outer
// timestamp is ISO-8601 in UTC with a Z suffix.
func NewL2Event(s L2Snapshot) L2Event {
	iso := time.UnixMilli(s.TimestampMS).UTC().Format("2006-01-02T15:04:05") + "Z"
	return L2Event{
		Time: iso,
		Raw: RawWrap{
			Data: L2Data{
				Time:   s.TimestampMS,
				Levels: [][]BookLevel{s.Bids, s.Asks},
			},
		},
	}
}
