package polygon

import (
	"errors"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"github.com/guregu/null/v6"
)

// TechnicalIndicators can be used to calculate technical indicators locally
// from aggregates.
type TechnicalIndicators interface {
	// SMA calculates a simple moving average of the closing prices.
	SMA(ticker string, params SMAParams) (*SMA, error)
	// ADTV calculates the average daily trading volume.
	ADTV(ticker string, params ADTVParams) (*ADTV, error)
}

// SMAParams contains the parameters of a locally calculated SMA.
type SMAParams struct {
	// Window is the number of bars averaged.
	Window int
	// Multiplier and Timespan size the bars. Defaults to 1 day.
	Multiplier int64
	Timespan   Timespan
	// From and To bound the bars, as dates or epoch milliseconds.
	From string
	To   string
}

// ADTVParams contains parameters for getting Average Daily Trading Volume
type ADTVParams struct {
	// From is the inclusive beginning of the interval
	From string
	// To is the inclusive end of the interval
	To string
}

type indicators struct {
	c *Client

	// mockable functions
	getAggregates func(p Params) (*AggregatesResponse, error)
	nextPage      func(page Page) error
}

type IndicatorsOpts struct {
	Client *Client
}

func NewIndicators(opts IndicatorsOpts) TechnicalIndicators {
	c := opts.Client
	if c == nil {
		c = DefaultClient
	}
	return &indicators{
		c:             c,
		getAggregates: c.GetAggregates,
		nextPage:      c.NextPage,
	}
}

// Indicators can be used to calculate technical indicators using the default client.
var Indicators = NewIndicators(IndicatorsOpts{})

// ErrWindowNotSet is returned by SMA when the window is not positive.
var ErrWindowNotSet = errors.New("window must be positive")

// SMA calculates a simple moving average over the closes of the ticker's bars.
// A value is emitted for every bar once Window bars have been seen.
func (i *indicators) SMA(ticker string, params SMAParams) (*SMA, error) {
	if params.Window <= 0 {
		return nil, ErrWindowNotSet
	}
	if params.Multiplier == 0 {
		params.Multiplier = 1
	}
	if params.Timespan == "" {
		params.Timespan = Day
	}
	ma := movingaverage.New(params.Window)
	sma := &SMA{Window: params.Window}
	err := i.forEachBar(Params{
		Ticker:     ticker,
		Multiplier: null.IntFrom(params.Multiplier),
		Timespan:   params.Timespan,
		From:       params.From,
		To:         params.To,
		Sort:       SortAsc,
	}, func(bar Bar) {
		if !bar.Close.Valid {
			return
		}
		ma.Add(bar.Close.Float64)
		if ma.Count() < params.Window {
			return
		}
		sma.Values = append(sma.Values, MovingAverage{
			Timestamp: bar.Timestamp,
			Value:     null.FloatFrom(ma.Avg()),
		})
	})
	if err != nil {
		return nil, err
	}
	return sma, nil
}

// ADTV calculates the average daily trading volume.
func (i *indicators) ADTV(ticker string, params ADTVParams) (*ADTV, error) {
	var (
		totalVolume float64
		count       int
	)
	err := i.forEachBar(Params{
		Ticker:     ticker,
		Multiplier: null.IntFrom(1),
		Timespan:   Day,
		From:       params.From,
		To:         params.To,
	}, func(bar Bar) {
		if !bar.Volume.Valid {
			return
		}
		totalVolume += bar.Volume.Float64
		count++
	})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &ADTV{}, nil
	}
	return &ADTV{
		AverageVolume: totalVolume / float64(count),
		Days:          count,
	}, nil
}

// forEachBar calls fn for every bar of every page of the aggregates.
func (i *indicators) forEachBar(p Params, fn func(Bar)) error {
	resp, err := i.getAggregates(p)
	if err != nil {
		return err
	}
	for {
		for _, bar := range resp.Results {
			fn(bar)
		}
		err := i.nextPage(resp)
		if errors.Is(err, ErrNoNextPage) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// SMA is a locally calculated simple moving average.
type SMA struct {
	Window int
	Values []MovingAverage
}

// ADTV is the average daily trading volume. It also contains the number of trading days
// the average contains.
type ADTV struct {
	AverageVolume float64
	Days          int
}
