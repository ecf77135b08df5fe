package polygon

import (
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// Parameter identifies a single query parameter.
type Parameter string

// List of parameters
const (
	ParamTicker           Parameter = "ticker"
	ParamTickers          Parameter = "tickers"
	ParamTickerFrom       Parameter = "ticker_from"
	ParamTickerTo         Parameter = "ticker_to"
	ParamTickerType       Parameter = "ticker_type"
	ParamMultiplier       Parameter = "multiplier"
	ParamTimespan         Parameter = "timespan"
	ParamDate             Parameter = "date"
	ParamFrom             Parameter = "from"
	ParamTo               Parameter = "to"
	ParamTimestamp        Parameter = "timestamp"
	ParamAdjusted         Parameter = "adjusted"
	ParamSort             Parameter = "sort"
	ParamOrder            Parameter = "order"
	ParamSortV3           Parameter = "sortv3"
	ParamLimit            Parameter = "limit"
	ParamContractType     Parameter = "contract_type"
	ParamIncludeOTC       Parameter = "include_otc"
	ParamStrikePrice      Parameter = "strike_price"
	ParamStrikePriceFrom  Parameter = "strike_price_from"
	ParamStrikePriceTo    Parameter = "strike_price_to"
	ParamExpirationDate   Parameter = "expiration_date"
	ParamAmount           Parameter = "amount"
	ParamPrecision        Parameter = "precision"
	ParamDirection        Parameter = "direction"
	ParamUnderlyingAsset  Parameter = "underlying_asset"
	ParamWindow           Parameter = "window"
	ParamShortWindow      Parameter = "short_window"
	ParamLongWindow       Parameter = "long_window"
	ParamSignalWindow     Parameter = "signal_window"
	ParamSeriesType       Parameter = "series_type"
	ParamExpandUnderlying Parameter = "expand_underlying"
)

// Timespan is the size of the aggregate time window.
type Timespan string

// List of timespans
const (
	Second  Timespan = "second"
	Minute  Timespan = "minute"
	Hour    Timespan = "hour"
	Day     Timespan = "day"
	Week    Timespan = "week"
	Month   Timespan = "month"
	Quarter Timespan = "quarter"
	Year    Timespan = "year"
)

// Sort is the sort direction of the aggregates endpoints.
type Sort string

// Order is the sort direction of the v3 endpoints.
type Order string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"

	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SortV3 is the field the v3 endpoints sort by.
type SortV3 string

const (
	SortByTimestamp      SortV3 = "timestamp"
	SortByTicker         SortV3 = "ticker"
	SortByExpirationDate SortV3 = "expiration_date"
	SortByStrikePrice    SortV3 = "strike_price"
)

// ContractType is the type of an option contract.
type ContractType string

const (
	Call ContractType = "call"
	Put  ContractType = "put"
)

// Direction selects the gainers or the losers snapshot.
type Direction string

const (
	Gainers Direction = "gainers"
	Losers  Direction = "losers"
)

// SeriesType is the price an indicator is calculated on.
type SeriesType string

const (
	SeriesOpen  SeriesType = "open"
	SeriesHigh  SeriesType = "high"
	SeriesLow   SeriesType = "low"
	SeriesClose SeriesType = "close"
)

// TickerType is the market a market-wide endpoint is called for.
type TickerType string

const (
	Stocks  TickerType = "stocks"
	Options TickerType = "options"
	Indices TickerType = "indices"
	Forex   TickerType = "forex"
	Crypto  TickerType = "crypto"
)

// Class returns the ticker class that corresponds to the ticker type.
func (t TickerType) Class() TickerClass {
	switch t {
	case Stocks:
		return ClassEquity
	case Options:
		return ClassOption
	case Indices:
		return ClassIndex
	case Forex:
		return ClassForex
	case Crypto:
		return ClassCrypto
	}
	return ClassUnrecognized
}

// Params holds every query parameter any endpoint accepts. Only APIKey is
// mandatory; zero values (empty strings, invalid null values, nil slices)
// mean the parameter is absent.
type Params struct {
	APIKey string

	Ticker     string
	Tickers    []string
	TickerFrom string
	TickerTo   string
	TickerType TickerType

	Multiplier null.Int
	Timespan   Timespan
	Date       string
	From       string
	To         string
	Timestamp  string
	Adjusted   null.Bool

	Sort   Sort
	Order  Order
	SortV3 SortV3
	Limit  null.Int

	ContractType    ContractType
	IncludeOTC      null.Bool
	StrikePrice     decimal.NullDecimal
	StrikePriceFrom decimal.NullDecimal
	StrikePriceTo   decimal.NullDecimal
	ExpirationDate  string
	UnderlyingAsset string

	Amount    decimal.NullDecimal
	Precision null.Int
	Direction Direction

	Window           null.Int
	ShortWindow      null.Int
	LongWindow       null.Int
	SignalWindow     null.Int
	SeriesType       SeriesType
	ExpandUnderlying null.Bool
}

// Has reports whether the parameter is present.
func (p *Params) Has(param Parameter) bool {
	switch param {
	case ParamTicker:
		return p.Ticker != ""
	case ParamTickers:
		return len(p.Tickers) > 0
	case ParamTickerFrom:
		return p.TickerFrom != ""
	case ParamTickerTo:
		return p.TickerTo != ""
	case ParamTickerType:
		return p.TickerType != ""
	case ParamMultiplier:
		return p.Multiplier.Valid
	case ParamTimespan:
		return p.Timespan != ""
	case ParamDate:
		return p.Date != ""
	case ParamFrom:
		return p.From != ""
	case ParamTo:
		return p.To != ""
	case ParamTimestamp:
		return p.Timestamp != ""
	case ParamAdjusted:
		return p.Adjusted.Valid
	case ParamSort:
		return p.Sort != ""
	case ParamOrder:
		return p.Order != ""
	case ParamSortV3:
		return p.SortV3 != ""
	case ParamLimit:
		return p.Limit.Valid
	case ParamContractType:
		return p.ContractType != ""
	case ParamIncludeOTC:
		return p.IncludeOTC.Valid
	case ParamStrikePrice:
		return p.StrikePrice.Valid
	case ParamStrikePriceFrom:
		return p.StrikePriceFrom.Valid
	case ParamStrikePriceTo:
		return p.StrikePriceTo.Valid
	case ParamExpirationDate:
		return p.ExpirationDate != ""
	case ParamUnderlyingAsset:
		return p.UnderlyingAsset != ""
	case ParamAmount:
		return p.Amount.Valid
	case ParamPrecision:
		return p.Precision.Valid
	case ParamDirection:
		return p.Direction != ""
	case ParamWindow:
		return p.Window.Valid
	case ParamShortWindow:
		return p.ShortWindow.Valid
	case ParamLongWindow:
		return p.LongWindow.Valid
	case ParamSignalWindow:
		return p.SignalWindow.Valid
	case ParamSeriesType:
		return p.SeriesType != ""
	case ParamExpandUnderlying:
		return p.ExpandUnderlying.Valid
	}
	return false
}
