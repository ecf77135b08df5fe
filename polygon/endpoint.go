package polygon

import "fmt"

// endpoint describes one REST call: which tickers it accepts, which
// parameters it reads, how its URL is built and how its response is decoded.
type endpoint[T any] struct {
	name         string
	classes      TickerClasses
	requirements []Requirement
	url          func(base string, p *Params) (string, error)
	decode       func(Object) T
}

// get verifies p, builds the URL, performs the request and decodes the
// response. Validation failures are returned before any I/O.
func get[T any](c *Client, e endpoint[T], p Params) (*T, error) {
	if p.APIKey == "" {
		p.APIKey = c.opts.APIKey
	}
	if err := Verify(e.classes, e.requirements, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", e.name, err)
	}
	u, err := e.url(c.opts.BaseURL, &p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.name, err)
	}
	o, err := c.get(u)
	if err != nil {
		return nil, err
	}
	res := e.decode(o)
	return &res, nil
}

var (
	tickRequirements = []Requirement{
		required(ParamTicker),
		optional(ParamTimestamp),
		optional(ParamFrom),
		optional(ParamTo),
		optional(ParamOrder),
		optional(ParamLimit),
		optional(ParamSortV3),
	}
	indicatorRequirements = []Requirement{
		required(ParamTicker),
		optional(ParamTimestamp),
		optional(ParamFrom),
		optional(ParamTo),
		optional(ParamTimespan),
		optional(ParamAdjusted),
		optional(ParamWindow),
		optional(ParamSeriesType),
		optional(ParamExpandUnderlying),
		optional(ParamOrder),
		optional(ParamLimit),
	}
	snapshotClasses = Only(ClassEquity, ClassForex, ClassCrypto)
)

var (
	aggregatesEndpoint = endpoint[AggregatesResponse]{
		name:    "aggregates",
		classes: AllClasses(),
		requirements: []Requirement{
			required(ParamTicker),
			required(ParamMultiplier),
			required(ParamTimespan),
			required(ParamFrom),
			required(ParamTo),
			optional(ParamAdjusted),
			optional(ParamSort),
			optional(ParamLimit),
		},
		url:    aggregatesURL,
		decode: decodeAggregates,
	}
	groupedDailyEndpoint = endpoint[GroupedDailyResponse]{
		name:    "grouped daily",
		classes: snapshotClasses,
		requirements: []Requirement{
			required(ParamDate),
			optional(ParamTickerType),
			optional(ParamAdjusted),
			optional(ParamIncludeOTC),
		},
		url:    groupedDailyURL,
		decode: decodeGroupedDaily,
	}
	dailyOpenCloseEndpoint = endpoint[DailyOpenCloseResponse]{
		name:    "daily open close",
		classes: Only(ClassEquity, ClassOption, ClassIndex),
		requirements: []Requirement{
			required(ParamTicker),
			required(ParamDate),
			optional(ParamAdjusted),
		},
		url:    dailyOpenCloseURL,
		decode: decodeDailyOpenClose,
	}
	previousCloseEndpoint = endpoint[AggregatesResponse]{
		name:    "previous close",
		classes: AllClasses(),
		requirements: []Requirement{
			required(ParamTicker),
			optional(ParamAdjusted),
		},
		url:    previousCloseURL,
		decode: decodeAggregates,
	}
	tradesEndpoint = endpoint[TradesResponse]{
		name:         "trades",
		classes:      Only(ClassEquity, ClassOption, ClassCrypto),
		requirements: tickRequirements,
		url:          tradesURL,
		decode:       decodeTrades,
	}
	lastTradeEndpoint = endpoint[LastTradeResponse]{
		name:         "last trade",
		classes:      Only(ClassEquity, ClassOption),
		requirements: []Requirement{required(ParamTicker)},
		url:          lastTradeURL,
		decode:       decodeLastTrade,
	}
	quotesEndpoint = endpoint[QuotesResponse]{
		name:         "quotes",
		classes:      Only(ClassEquity, ClassOption),
		requirements: tickRequirements,
		url:          quotesURL,
		decode:       decodeQuotes,
	}
	lastQuoteEndpoint = endpoint[LastQuoteResponse]{
		name:         "last quote",
		classes:      Only(ClassEquity),
		requirements: []Requirement{required(ParamTicker)},
		url:          lastQuoteURL,
		decode:       decodeLastQuote,
	}
	currencyConversionEndpoint = endpoint[CurrencyConversionResponse]{
		name:    "currency conversion",
		classes: Only(ClassForex),
		requirements: []Requirement{
			required(ParamTicker),
			optional(ParamAmount),
			optional(ParamPrecision),
		},
		url:    currencyConversionURL,
		decode: decodeCurrencyConversion,
	}
	gainersLosersEndpoint = endpoint[SnapshotsResponse]{
		name:    "gainers losers",
		classes: snapshotClasses,
		requirements: []Requirement{
			required(ParamDirection),
			required(ParamTickerType),
			optional(ParamIncludeOTC),
		},
		url:    gainersLosersURL,
		decode: decodeSnapshots,
	}
	tickerSnapshotEndpoint = endpoint[TickerSnapshotResponse]{
		name:         "ticker snapshot",
		classes:      snapshotClasses,
		requirements: []Requirement{required(ParamTicker)},
		url:          tickerSnapshotURL,
		decode:       decodeTickerSnapshotResponse,
	}
	tickersSnapshotEndpoint = endpoint[SnapshotsResponse]{
		name:    "tickers snapshot",
		classes: snapshotClasses,
		requirements: []Requirement{
			required(ParamTickerType),
			optional(ParamTickers),
			optional(ParamIncludeOTC),
		},
		url:    tickersSnapshotURL,
		decode: decodeSnapshots,
	}
	orderBookEndpoint = endpoint[OrderBookResponse]{
		name:         "order book",
		classes:      Only(ClassCrypto),
		requirements: []Requirement{required(ParamTicker)},
		url:          orderBookURL,
		decode:       decodeOrderBookResponse,
	}
	smaEndpoint = endpoint[IndicatorResponse]{
		name:         "sma",
		classes:      AllClasses(),
		requirements: indicatorRequirements,
		url:          indicatorURL("sma"),
		decode:       decodeIndicator,
	}
	emaEndpoint = endpoint[IndicatorResponse]{
		name:         "ema",
		classes:      AllClasses(),
		requirements: indicatorRequirements,
		url:          indicatorURL("ema"),
		decode:       decodeIndicator,
	}
	rsiEndpoint = endpoint[IndicatorResponse]{
		name:         "rsi",
		classes:      AllClasses(),
		requirements: indicatorRequirements,
		url:          indicatorURL("rsi"),
		decode:       decodeIndicator,
	}
	macdEndpoint = endpoint[MACDResponse]{
		name:    "macd",
		classes: AllClasses(),
		requirements: []Requirement{
			required(ParamTicker),
			optional(ParamTimestamp),
			optional(ParamFrom),
			optional(ParamTo),
			optional(ParamTimespan),
			optional(ParamAdjusted),
			optional(ParamShortWindow),
			optional(ParamLongWindow),
			optional(ParamSignalWindow),
			optional(ParamSeriesType),
			optional(ParamExpandUnderlying),
			optional(ParamOrder),
			optional(ParamLimit),
		},
		url:    indicatorURL("macd"),
		decode: decodeMACD,
	}
	optionChainEndpoint = endpoint[OptionChainResponse]{
		name:    "option chain",
		classes: Only(),
		requirements: []Requirement{
			required(ParamUnderlyingAsset),
			optional(ParamStrikePrice),
			optional(ParamStrikePriceFrom),
			optional(ParamStrikePriceTo),
			optional(ParamExpirationDate),
			optional(ParamContractType),
			optional(ParamOrder),
			optional(ParamLimit),
			optional(ParamSortV3),
		},
		url:    optionChainURL,
		decode: decodeOptionChain,
	}
	optionContractEndpoint = endpoint[OptionContractResponse]{
		name:    "option contract",
		classes: Only(ClassOption),
		requirements: []Requirement{
			required(ParamUnderlyingAsset),
			required(ParamTicker),
		},
		url:    optionContractURL,
		decode: decodeOptionContract,
	}
	indicesSnapshotEndpoint = endpoint[IndicesSnapshotResponse]{
		name:    "indices snapshot",
		classes: Only(ClassIndex),
		requirements: []Requirement{
			optional(ParamTickers),
			optional(ParamTickerFrom),
			optional(ParamTickerTo),
			optional(ParamOrder),
			optional(ParamLimit),
			optional(ParamSortV3),
		},
		url:    indicesSnapshotURL,
		decode: decodeIndicesSnapshot,
	}
)
