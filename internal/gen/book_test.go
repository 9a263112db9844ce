package gen

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hl-data/internal/model"
)

func TestBookBuilderReferenceLadder(t *testing.T) {
	cfg := DefaultBookConfig()
	cfg.Depth = 2
	b, err := NewBookBuilder(cfg)
	require.NoError(t, err)

	snap := b.Build(model.PriceTick{Index: 0, TimestampMS: 1000, Price: 100})

	require.Len(t, snap.Bids, 2)
	require.Len(t, snap.Asks, 2)
	assert.Equal(t, model.BookLevel{Px: "99.50", Sz: "1.00", N: 1}, snap.Bids[0])
	assert.Equal(t, model.BookLevel{Px: "99.00", Sz: "1.50", N: 2}, snap.Bids[1])
	assert.Equal(t, model.BookLevel{Px: "100.50", Sz: "1.00", N: 1}, snap.Asks[0])
	assert.Equal(t, model.BookLevel{Px: "101.00", Sz: "1.50", N: 2}, snap.Asks[1])
	assert.Equal(t, int64(1000), snap.TimestampMS)
}

func TestBookNeverCrossed(t *testing.T) {
	b, err := NewBookBuilder(DefaultBookConfig())
	require.NoError(t, err)
	src := NewOscillator(DefaultOscillatorConfig(), 25000, 0, 1000)
	ticks, err := src.Generate(200)
	require.NoError(t, err)

	for _, tk := range ticks {
		snap := b.Build(tk)
		for _, lvl := range snap.Bids {
			px := mustFloat(t, lvl.Px)
			assert.Less(t, px, tk.Price, "bid %s at ref %.2f", lvl.Px, tk.Price)
		}
		for _, lvl := range snap.Asks {
			px := mustFloat(t, lvl.Px)
			assert.Greater(t, px, tk.Price, "ask %s at ref %.2f", lvl.Px, tk.Price)
		}
	}
}

func TestBookLadderOrderingAndSizes(t *testing.T) {
	cfg := DefaultBookConfig()
	cfg.Depth = 8
	b, err := NewBookBuilder(cfg)
	require.NoError(t, err)

	snap := b.Build(model.PriceTick{Price: 25000})

	for i := 1; i < len(snap.Bids); i++ {
		assert.Less(t, mustFloat(t, snap.Bids[i].Px), mustFloat(t, snap.Bids[i-1].Px))
	}
	for i := 1; i < len(snap.Asks); i++ {
		assert.Greater(t, mustFloat(t, snap.Asks[i].Px), mustFloat(t, snap.Asks[i-1].Px))
	}
	for j, lvl := range snap.Bids {
		assert.Greater(t, mustFloat(t, lvl.Sz), 0.0)
		assert.Equal(t, j+1, lvl.N)
		assert.Equal(t, lvl.Sz, snap.Asks[j].Sz)
	}
}

func TestBookBuilderRejectsBadConfig(t *testing.T) {
	for _, cfg := range []BookConfig{
		{Depth: 0, HalfStep: 0.5, BaseSize: 1},
		{Depth: 5, HalfStep: 0, BaseSize: 1},
		{Depth: 5, HalfStep: 0.5, BaseSize: 0},
	} {
		_, err := NewBookBuilder(cfg)
		assert.True(t, errors.Is(err, model.ErrInvalidArgument), "config %+v", cfg)
	}
}

func TestBuildSeriesWrapsEveryTick(t *testing.T) {
	b, err := NewBookBuilder(DefaultBookConfig())
	require.NoError(t, err)
	ticks, err := NewOscillator(DefaultOscillatorConfig(), 25000, 1_694_854_800_000, 1000).Generate(10)
	require.NoError(t, err)

	events := b.BuildSeries(ticks)
	require.Len(t, events, 10)
	for i, e := range events {
		assert.Equal(t, ticks[i].TimestampMS, e.Raw.Data.Time)
		require.Len(t, e.Raw.Data.Levels, 2)
		assert.Len(t, e.Raw.Data.Levels[0], DefaultBookConfig().Depth)
		assert.Len(t, e.Raw.Data.Levels[1], DefaultBookConfig().Depth)
	}
	assert.Equal(t, "2023-09-16T09:00:00Z", events[0].Time)
}

func mustFloat(t *testing.T, s string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return f
}
