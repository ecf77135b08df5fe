package polygon

import (
	"fmt"
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bars(field func(v float64) Bar, values ...float64) []Bar {
	res := make([]Bar, 0, len(values))
	for _, v := range values {
		res = append(res, field(v))
	}
	return res
}

func volumeBar(v float64) Bar { return Bar{Volume: null.FloatFrom(v)} }

func TestADTV(t *testing.T) {
	ind := NewIndicators(IndicatorsOpts{Client: testClient()}).(*indicators)
	ind.getAggregates = func(p Params) (*AggregatesResponse, error) {
		assert.Equal(t, "AAPL", p.Ticker)
		assert.Equal(t, "2021-10-10", p.From)
		assert.Equal(t, "2021-10-24", p.To)
		assert.Equal(t, Day, p.Timespan)
		assert.Equal(t, null.IntFrom(1), p.Multiplier)
		return &AggregatesResponse{
			NextURL: null.StringFrom("https://host/next"),
			Results: bars(volumeBar, 1, 5),
		}, nil
	}
	pages := 0
	ind.nextPage = func(page Page) error {
		pages++
		if pages > 1 {
			return ErrNoNextPage
		}
		resp := page.(*AggregatesResponse)
		*resp = AggregatesResponse{Results: append(bars(volumeBar, 4, 9), Bar{})}
		return nil
	}
	got, err := ind.ADTV("AAPL", ADTVParams{From: "2021-10-10", To: "2021-10-24"})
	assert.NoError(t, err)
	assert.EqualValues(t, 4, got.Days)
	assert.EqualValues(t, 4.75, got.AverageVolume)

	t.Run("no bars", func(t *testing.T) {
		ind.getAggregates = func(p Params) (*AggregatesResponse, error) {
			return &AggregatesResponse{}, nil
		}
		ind.nextPage = func(page Page) error { return ErrNoNextPage }
		got, err := ind.ADTV("MSFT", ADTVParams{From: "2021-10-10", To: "2021-10-24"})
		assert.NoError(t, err)
		assert.EqualValues(t, 0, got.Days)
		assert.EqualValues(t, 0, got.AverageVolume)
	})

	t.Run("error", func(t *testing.T) {
		ind.getAggregates = func(p Params) (*AggregatesResponse, error) {
			assert.Equal(t, "IBM", p.Ticker)
			return nil, fmt.Errorf("something went wrong")
		}
		got, err := ind.ADTV("IBM", ADTVParams{From: "2021-10-10", To: "2021-10-24"})
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("next page error", func(t *testing.T) {
		ind.getAggregates = func(p Params) (*AggregatesResponse, error) {
			return &AggregatesResponse{Results: bars(volumeBar, 1)}, nil
		}
		ind.nextPage = func(page Page) error { return ErrTransport }
		got, err := ind.ADTV("IBM", ADTVParams{})
		assert.ErrorIs(t, err, ErrTransport)
		assert.Nil(t, got)
	})
}

func TestSMA(t *testing.T) {
	ind := NewIndicators(IndicatorsOpts{Client: testClient()}).(*indicators)
	closes := []float64{1, 2, 3, 4, 5, 6}
	ind.getAggregates = func(p Params) (*AggregatesResponse, error) {
		assert.Equal(t, "SPY", p.Ticker)
		assert.Equal(t, Hour, p.Timespan)
		assert.Equal(t, null.IntFrom(4), p.Multiplier)
		assert.Equal(t, SortAsc, p.Sort)
		res := make([]Bar, 0, len(closes))
		for i, c := range closes {
			res = append(res, Bar{Close: null.FloatFrom(c), Timestamp: null.IntFrom(int64(i))})
		}
		// bars without a close are skipped
		res = append(res[:3], append([]Bar{{Timestamp: null.IntFrom(100)}}, res[3:]...)...)
		return &AggregatesResponse{Results: res}, nil
	}
	ind.nextPage = func(page Page) error { return ErrNoNextPage }

	got, err := ind.SMA("SPY", SMAParams{Window: 3, Multiplier: 4, Timespan: Hour})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Window)
	require.Len(t, got.Values, 4)
	for i, want := range []float64{2, 3, 4, 5} {
		assert.InDelta(t, want, got.Values[i].Value.Float64, 1e-9)
	}
	assert.Equal(t, null.IntFrom(2), got.Values[0].Timestamp)
	assert.Equal(t, null.IntFrom(5), got.Values[3].Timestamp)

	t.Run("defaults to daily bars", func(t *testing.T) {
		ind.getAggregates = func(p Params) (*AggregatesResponse, error) {
			assert.Equal(t, Day, p.Timespan)
			assert.Equal(t, null.IntFrom(1), p.Multiplier)
			return &AggregatesResponse{}, nil
		}
		got, err := ind.SMA("SPY", SMAParams{Window: 20})
		require.NoError(t, err)
		assert.Empty(t, got.Values)
	})

	t.Run("window not set", func(t *testing.T) {
		_, err := ind.SMA("SPY", SMAParams{})
		assert.ErrorIs(t, err, ErrWindowNotSet)
	})
}
