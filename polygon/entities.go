package polygon

import (
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// Every field of a record is optional: polygon omits fields depending on the
// security class, the subscription and the data available. The json tag of a
// field is the first key its decoder looks for, so a marshaled record decodes
// back to itself.

// ------------------------ aggregates -----------------------

// Bar is an aggregate over a time window.
type Bar struct {
	Ticker            null.String `json:"T"`
	Open              null.Float  `json:"o"`
	High              null.Float  `json:"h"`
	Low               null.Float  `json:"l"`
	Close             null.Float  `json:"c"`
	Volume            null.Float  `json:"v"`
	VWAP              null.Float  `json:"vw"`
	AccumulatedVolume null.Float  `json:"av"`
	Timestamp         null.Int    `json:"t"`
	Transactions      null.Int    `json:"n"`
	OTC               null.Bool   `json:"otc"`
}

func decodeBar(o Object) Bar {
	return Bar{
		Ticker:            o.String("T", "ticker"),
		Open:              o.Float("o", "open"),
		High:              o.Float("h", "high"),
		Low:               o.Float("l", "low"),
		Close:             o.Float("c", "close"),
		Volume:            o.Float("v", "volume"),
		VWAP:              o.Float("vw", "vwap"),
		AccumulatedVolume: o.Float("av"),
		Timestamp:         o.Int("t", "timestamp"),
		Transactions:      o.Int("n"),
		OTC:               o.Bool("otc"),
	}
}

// AggregatesResponse is returned by GetAggregates and GetPreviousClose.
type AggregatesResponse struct {
	Status       null.String `json:"status"`
	RequestID    null.String `json:"request_id"`
	NextURL      null.String `json:"next_url"`
	Ticker       null.String `json:"ticker"`
	Adjusted     null.Bool   `json:"adjusted"`
	QueryCount   null.Int    `json:"queryCount"`
	ResultsCount null.Int    `json:"resultsCount"`
	Results      []Bar       `json:"results"`
}

func decodeAggregates(o Object) AggregatesResponse {
	return AggregatesResponse{
		Status:       o.String("status"),
		RequestID:    o.String("request_id"),
		NextURL:      o.String("next_url"),
		Ticker:       o.String("ticker"),
		Adjusted:     o.Bool("adjusted"),
		QueryCount:   o.Int("queryCount"),
		ResultsCount: o.Int("resultsCount"),
		Results:      Records(o, decodeBar, "results"),
	}
}

// GroupedDailyResponse is returned by GetGroupedDaily.
type GroupedDailyResponse struct {
	Status       null.String `json:"status"`
	RequestID    null.String `json:"request_id"`
	Adjusted     null.Bool   `json:"adjusted"`
	QueryCount   null.Int    `json:"queryCount"`
	ResultsCount null.Int    `json:"resultsCount"`
	Bars         []Bar       `json:"results"`
}

func decodeGroupedDaily(o Object) GroupedDailyResponse {
	return GroupedDailyResponse{
		Status:       o.String("status"),
		RequestID:    o.String("request_id"),
		Adjusted:     o.Bool("adjusted"),
		QueryCount:   o.Int("queryCount"),
		ResultsCount: o.Int("resultsCount"),
		Bars:         Records(o, decodeBar, "results", "bars"),
	}
}

// DailyOpenCloseResponse is returned by GetDailyOpenClose.
type DailyOpenCloseResponse struct {
	Status     null.String `json:"status"`
	RequestID  null.String `json:"request_id"`
	Symbol     null.String `json:"symbol"`
	From       null.String `json:"from"`
	Open       null.Float  `json:"open"`
	High       null.Float  `json:"high"`
	Low        null.Float  `json:"low"`
	Close      null.Float  `json:"close"`
	Volume     null.Float  `json:"volume"`
	AfterHours null.Float  `json:"afterHours"`
	PreMarket  null.Float  `json:"preMarket"`
	OTC        null.Bool   `json:"otc"`
}

func decodeDailyOpenClose(o Object) DailyOpenCloseResponse {
	return DailyOpenCloseResponse{
		Status:     o.String("status"),
		RequestID:  o.String("request_id"),
		Symbol:     o.String("symbol"),
		From:       o.String("from"),
		Open:       o.Float("open"),
		High:       o.Float("high"),
		Low:        o.Float("low"),
		Close:      o.Float("close"),
		Volume:     o.Float("volume"),
		AfterHours: o.Float("afterHours"),
		PreMarket:  o.Float("preMarket"),
		OTC:        o.Bool("otc"),
	}
}

// ------------------------ trades -----------------------

// Trade covers the v3 trades, the v2 last trade and the trade embedded in snapshots.
type Trade struct {
	Ticker               null.String `json:"T"`
	ID                   null.String `json:"id"`
	Conditions           []int64     `json:"conditions"`
	Correction           null.Int    `json:"correction"`
	Exchange             null.Int    `json:"exchange"`
	Price                null.Float  `json:"price"`
	Size                 null.Float  `json:"size"`
	SequenceNumber       null.Int    `json:"sequence_number"`
	SIPTimestamp         null.Int    `json:"sip_timestamp"`
	ParticipantTimestamp null.Int    `json:"participant_timestamp"`
	TRFID                null.Int    `json:"trf_id"`
	TRFTimestamp         null.Int    `json:"trf_timestamp"`
	Tape                 null.Int    `json:"tape"`
	Timeframe            null.String `json:"timeframe"`
}

func decodeTrade(o Object) Trade {
	return Trade{
		Ticker:               o.String("T"),
		ID:                   o.String("id", "i"),
		Conditions:           o.Ints("conditions", "c"),
		Correction:           o.Int("correction", "e"),
		Exchange:             o.Int("exchange", "x"),
		Price:                o.Float("price", "p"),
		Size:                 o.Float("size", "s"),
		SequenceNumber:       o.Int("sequence_number", "q"),
		SIPTimestamp:         o.Int("sip_timestamp", "t"),
		ParticipantTimestamp: o.Int("participant_timestamp", "y"),
		TRFID:                o.Int("trf_id", "r"),
		TRFTimestamp:         o.Int("trf_timestamp", "f"),
		Tape:                 o.Int("tape", "z"),
		Timeframe:            o.String("timeframe"),
	}
}

// TradesResponse is returned by GetTrades.
type TradesResponse struct {
	Status    null.String `json:"status"`
	RequestID null.String `json:"request_id"`
	NextURL   null.String `json:"next_url"`
	Results   []Trade     `json:"results"`
}

func decodeTrades(o Object) TradesResponse {
	return TradesResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		NextURL:   o.String("next_url"),
		Results:   Records(o, decodeTrade, "results"),
	}
}

// LastTradeResponse is returned by GetLastTrade.
type LastTradeResponse struct {
	Status    null.String `json:"status"`
	RequestID null.String `json:"request_id"`
	Results   *Trade      `json:"results"`
}

func decodeLastTrade(o Object) LastTradeResponse {
	return LastTradeResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		Results:   Record(o, decodeTrade, "results"),
	}
}

// ------------------------ quotes -----------------------

// Quote covers the v3 quotes, the v2 last NBBO, the last quote of a currency
// conversion and the quotes embedded in snapshots.
type Quote struct {
	Ticker               null.String `json:"T"`
	AskExchange          null.Int    `json:"ask_exchange"`
	AskPrice             null.Float  `json:"ask_price"`
	AskSize              null.Float  `json:"ask_size"`
	BidExchange          null.Int    `json:"bid_exchange"`
	BidPrice             null.Float  `json:"bid_price"`
	BidSize              null.Float  `json:"bid_size"`
	Exchange             null.Int    `json:"exchange"`
	Midpoint             null.Float  `json:"midpoint"`
	Conditions           []int64     `json:"conditions"`
	Indicators           []int64     `json:"indicators"`
	SequenceNumber       null.Int    `json:"sequence_number"`
	SIPTimestamp         null.Int    `json:"sip_timestamp"`
	ParticipantTimestamp null.Int    `json:"participant_timestamp"`
	TRFTimestamp         null.Int    `json:"trf_timestamp"`
	LastUpdated          null.Int    `json:"last_updated"`
	Tape                 null.Int    `json:"tape"`
	Timeframe            null.String `json:"timeframe"`
}

func decodeQuote(o Object) Quote {
	return Quote{
		Ticker:               o.String("T"),
		AskExchange:          o.Int("ask_exchange", "X"),
		AskPrice:             o.Float("ask_price", "P", "ask"),
		AskSize:              o.Float("ask_size", "S"),
		BidExchange:          o.Int("bid_exchange", "x"),
		BidPrice:             o.Float("bid_price", "p", "bid"),
		BidSize:              o.Float("bid_size", "s"),
		Exchange:             o.Int("exchange"),
		Midpoint:             o.Float("midpoint"),
		Conditions:           o.Ints("conditions", "c"),
		Indicators:           o.Ints("indicators", "i"),
		SequenceNumber:       o.Int("sequence_number", "q"),
		SIPTimestamp:         o.Int("sip_timestamp", "t", "timestamp"),
		ParticipantTimestamp: o.Int("participant_timestamp", "y"),
		TRFTimestamp:         o.Int("trf_timestamp", "f"),
		LastUpdated:          o.Int("last_updated"),
		Tape:                 o.Int("tape", "z"),
		Timeframe:            o.String("timeframe"),
	}
}

// QuotesResponse is returned by GetQuotes.
type QuotesResponse struct {
	Status    null.String `json:"status"`
	RequestID null.String `json:"request_id"`
	NextURL   null.String `json:"next_url"`
	Results   []Quote     `json:"results"`
}

func decodeQuotes(o Object) QuotesResponse {
	return QuotesResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		NextURL:   o.String("next_url"),
		Results:   Records(o, decodeQuote, "results"),
	}
}

// LastQuoteResponse is returned by GetLastQuote.
type LastQuoteResponse struct {
	Status    null.String `json:"status"`
	RequestID null.String `json:"request_id"`
	Results   *Quote      `json:"results"`
}

func decodeLastQuote(o Object) LastQuoteResponse {
	return LastQuoteResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		Results:   Record(o, decodeQuote, "results"),
	}
}

// CurrencyConversionResponse is returned by GetCurrencyConversion.
type CurrencyConversionResponse struct {
	Status        null.String         `json:"status"`
	RequestID     null.String         `json:"request_id"`
	Symbol        null.String         `json:"symbol"`
	From          null.String         `json:"from"`
	To            null.String         `json:"to"`
	InitialAmount decimal.NullDecimal `json:"initialAmount"`
	Converted     decimal.NullDecimal `json:"converted"`
	Last          *Quote              `json:"last"`
}

func decodeCurrencyConversion(o Object) CurrencyConversionResponse {
	return CurrencyConversionResponse{
		Status:        o.String("status"),
		RequestID:     o.String("request_id"),
		Symbol:        o.String("symbol"),
		From:          o.String("from"),
		To:            o.String("to"),
		InitialAmount: o.Decimal("initialAmount"),
		Converted:     o.Decimal("converted"),
		Last:          Record(o, decodeQuote, "last"),
	}
}

// ------------------------ snapshots -----------------------

// TickerSnapshot is the snapshot of a single ticker.
type TickerSnapshot struct {
	Ticker           null.String `json:"ticker"`
	TodaysChange     null.Float  `json:"todaysChange"`
	TodaysChangePerc null.Float  `json:"todaysChangePerc"`
	Updated          null.Int    `json:"updated"`
	FMV              null.Float  `json:"fmv"`
	Day              *Bar        `json:"day"`
	Minute           *Bar        `json:"min"`
	PrevDay          *Bar        `json:"prevDay"`
	LastQuote        *Quote      `json:"lastQuote"`
	LastTrade        *Trade      `json:"lastTrade"`
}

func decodeTickerSnapshot(o Object) TickerSnapshot {
	return TickerSnapshot{
		Ticker:           o.String("ticker"),
		TodaysChange:     o.Float("todaysChange"),
		TodaysChangePerc: o.Float("todaysChangePerc"),
		Updated:          o.Int("updated"),
		FMV:              o.Float("fmv"),
		Day:              Record(o, decodeBar, "day"),
		Minute:           Record(o, decodeBar, "min"),
		PrevDay:          Record(o, decodeBar, "prevDay"),
		LastQuote:        Record(o, decodeQuote, "lastQuote"),
		LastTrade:        Record(o, decodeTrade, "lastTrade"),
	}
}

// TickerSnapshotResponse is returned by GetTickerSnapshot.
type TickerSnapshotResponse struct {
	Status    null.String     `json:"status"`
	RequestID null.String     `json:"request_id"`
	Ticker    *TickerSnapshot `json:"ticker"`
}

func decodeTickerSnapshotResponse(o Object) TickerSnapshotResponse {
	return TickerSnapshotResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		Ticker:    Record(o, decodeTickerSnapshot, "ticker"),
	}
}

// SnapshotsResponse is returned by GetTickersSnapshot and GetGainersLosers.
type SnapshotsResponse struct {
	Status    null.String      `json:"status"`
	RequestID null.String      `json:"request_id"`
	Tickers   []TickerSnapshot `json:"tickers"`
}

func decodeSnapshots(o Object) SnapshotsResponse {
	return SnapshotsResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		Tickers:   Records(o, decodeTickerSnapshot, "tickers"),
	}
}

// OrderBookLevel is one price level of a crypto book. Sizes maps exchange
// IDs to the size quoted at that price.
type OrderBookLevel struct {
	Price null.Float         `json:"p"`
	Sizes map[string]float64 `json:"x"`
}

func decodeOrderBookLevel(o Object) OrderBookLevel {
	return OrderBookLevel{
		Price: o.Float("p"),
		Sizes: o.FloatMap("x"),
	}
}

// OrderBook is the full level 2 book of a crypto pair.
type OrderBook struct {
	Ticker   null.String      `json:"ticker"`
	Bids     []OrderBookLevel `json:"bids"`
	Asks     []OrderBookLevel `json:"asks"`
	BidCount null.Float       `json:"bidCount"`
	AskCount null.Float       `json:"askCount"`
	Spread   null.Float       `json:"spread"`
	Updated  null.Int         `json:"updated"`
}

func decodeOrderBook(o Object) OrderBook {
	return OrderBook{
		Ticker:   o.String("ticker"),
		Bids:     Records(o, decodeOrderBookLevel, "bids"),
		Asks:     Records(o, decodeOrderBookLevel, "asks"),
		BidCount: o.Float("bidCount"),
		AskCount: o.Float("askCount"),
		Spread:   o.Float("spread"),
		Updated:  o.Int("updated"),
	}
}

// OrderBookResponse is returned by GetOrderBook.
type OrderBookResponse struct {
	Status    null.String `json:"status"`
	RequestID null.String `json:"request_id"`
	Data      *OrderBook  `json:"data"`
}

func decodeOrderBookResponse(o Object) OrderBookResponse {
	return OrderBookResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		Data:      Record(o, decodeOrderBook, "data"),
	}
}

// ------------------------ indicators -----------------------

// MovingAverage is one value of an SMA, EMA or RSI series.
type MovingAverage struct {
	Timestamp null.Int   `json:"timestamp"`
	Value     null.Float `json:"value"`
}

func decodeMovingAverage(o Object) MovingAverage {
	return MovingAverage{
		Timestamp: o.Int("timestamp"),
		Value:     o.Float("value"),
	}
}

// MACDValue is one value of a MACD series.
type MACDValue struct {
	Timestamp null.Int   `json:"timestamp"`
	Value     null.Float `json:"value"`
	Signal    null.Float `json:"signal"`
	Histogram null.Float `json:"histogram"`
}

func decodeMACDValue(o Object) MACDValue {
	return MACDValue{
		Timestamp: o.Int("timestamp"),
		Value:     o.Float("value"),
		Signal:    o.Float("signal"),
		Histogram: o.Float("histogram"),
	}
}

// IndicatorResponse is returned by GetSMA, GetEMA and GetRSI.
type IndicatorResponse struct {
	Status        null.String     `json:"status"`
	RequestID     null.String     `json:"request_id"`
	NextURL       null.String     `json:"next_url"`
	Values        []MovingAverage `json:"values"`
	UnderlyingURL null.String     `json:"underlying_url"`
	Underlying    []Bar           `json:"underlying"`
}

func decodeIndicator(o Object) IndicatorResponse {
	results := o.Nested("results")
	if results == nil {
		results = o
	}
	underlyingURL, underlying := decodeUnderlying(results)
	return IndicatorResponse{
		Status:        o.String("status"),
		RequestID:     o.String("request_id"),
		NextURL:       o.String("next_url"),
		Values:        Records(results, decodeMovingAverage, "values"),
		UnderlyingURL: underlyingURL,
		Underlying:    underlying,
	}
}

// decodeUnderlying reads the aggregates an indicator was computed from. The
// API nests them as underlying.{url,aggregates}; a marshaled response holds
// them flat as underlying_url and an underlying array.
func decodeUnderlying(results Object) (null.String, []Bar) {
	if u := results.Nested("underlying"); u != nil {
		return u.String("url"), Records(u, decodeBar, "aggregates")
	}
	return results.String("underlying_url"), Records(results, decodeBar, "underlying")
}

// MACDResponse is returned by GetMACD.
type MACDResponse struct {
	Status        null.String `json:"status"`
	RequestID     null.String `json:"request_id"`
	NextURL       null.String `json:"next_url"`
	Values        []MACDValue `json:"values"`
	UnderlyingURL null.String `json:"underlying_url"`
	Underlying    []Bar       `json:"underlying"`
}

func decodeMACD(o Object) MACDResponse {
	results := o.Nested("results")
	if results == nil {
		results = o
	}
	underlyingURL, underlying := decodeUnderlying(results)
	return MACDResponse{
		Status:        o.String("status"),
		RequestID:     o.String("request_id"),
		NextURL:       o.String("next_url"),
		Values:        Records(results, decodeMACDValue, "values"),
		UnderlyingURL: underlyingURL,
		Underlying:    underlying,
	}
}

// ------------------------ options -----------------------

// ContractDetails describes an option contract.
type ContractDetails struct {
	Ticker            null.String         `json:"ticker"`
	ContractType      null.String         `json:"contract_type"`
	ExerciseStyle     null.String         `json:"exercise_style"`
	ExpirationDate    null.String         `json:"expiration_date"`
	SharesPerContract null.Int            `json:"shares_per_contract"`
	StrikePrice       decimal.NullDecimal `json:"strike_price"`
}

func decodeContractDetails(o Object) ContractDetails {
	return ContractDetails{
		Ticker:            o.String("ticker"),
		ContractType:      o.String("contract_type"),
		ExerciseStyle:     o.String("exercise_style"),
		ExpirationDate:    o.String("expiration_date"),
		SharesPerContract: o.Int("shares_per_contract"),
		StrikePrice:       o.Decimal("strike_price"),
	}
}

// Greeks of an option contract.
type Greeks struct {
	Delta null.Float `json:"delta"`
	Gamma null.Float `json:"gamma"`
	Theta null.Float `json:"theta"`
	Vega  null.Float `json:"vega"`
}

func decodeGreeks(o Object) Greeks {
	return Greeks{
		Delta: o.Float("delta"),
		Gamma: o.Float("gamma"),
		Theta: o.Float("theta"),
		Vega:  o.Float("vega"),
	}
}

// UnderlyingAsset is the asset an option contract is written on.
type UnderlyingAsset struct {
	Ticker            null.String `json:"ticker"`
	Price             null.Float  `json:"price"`
	Value             null.Float  `json:"value"`
	ChangeToBreakEven null.Float  `json:"change_to_break_even"`
	LastUpdated       null.Int    `json:"last_updated"`
	Timeframe         null.String `json:"timeframe"`
}

func decodeUnderlyingAsset(o Object) UnderlyingAsset {
	return UnderlyingAsset{
		Ticker:            o.String("ticker"),
		Price:             o.Float("price"),
		Value:             o.Float("value"),
		ChangeToBreakEven: o.Float("change_to_break_even"),
		LastUpdated:       o.Int("last_updated"),
		Timeframe:         o.String("timeframe"),
	}
}

// Session is the trading session of an option contract or an index.
type Session struct {
	Change                    null.Float `json:"change"`
	ChangePercent             null.Float `json:"change_percent"`
	EarlyTradingChange        null.Float `json:"early_trading_change"`
	EarlyTradingChangePercent null.Float `json:"early_trading_change_percent"`
	LateTradingChange         null.Float `json:"late_trading_change"`
	LateTradingChangePercent  null.Float `json:"late_trading_change_percent"`
	Open                      null.Float `json:"open"`
	High                      null.Float `json:"high"`
	Low                       null.Float `json:"low"`
	Close                     null.Float `json:"close"`
	PreviousClose             null.Float `json:"previous_close"`
	Volume                    null.Float `json:"volume"`
	VWAP                      null.Float `json:"vwap"`
	LastUpdated               null.Int   `json:"last_updated"`
}

func decodeSession(o Object) Session {
	return Session{
		Change:                    o.Float("change"),
		ChangePercent:             o.Float("change_percent"),
		EarlyTradingChange:        o.Float("early_trading_change"),
		EarlyTradingChangePercent: o.Float("early_trading_change_percent"),
		LateTradingChange:         o.Float("late_trading_change"),
		LateTradingChangePercent:  o.Float("late_trading_change_percent"),
		Open:                      o.Float("open"),
		High:                      o.Float("high"),
		Low:                       o.Float("low"),
		Close:                     o.Float("close"),
		PreviousClose:             o.Float("previous_close"),
		Volume:                    o.Float("volume"),
		VWAP:                      o.Float("vwap"),
		LastUpdated:               o.Int("last_updated"),
	}
}

// OptionContractSnapshot is the snapshot of a single option contract.
type OptionContractSnapshot struct {
	BreakEvenPrice    null.Float       `json:"break_even_price"`
	ImpliedVolatility null.Float       `json:"implied_volatility"`
	OpenInterest      null.Float       `json:"open_interest"`
	Day               *Session         `json:"day"`
	Details           *ContractDetails `json:"details"`
	Greeks            *Greeks          `json:"greeks"`
	LastQuote         *Quote           `json:"last_quote"`
	LastTrade         *Trade           `json:"last_trade"`
	UnderlyingAsset   *UnderlyingAsset `json:"underlying_asset"`
}

func decodeOptionContractSnapshot(o Object) OptionContractSnapshot {
	return OptionContractSnapshot{
		BreakEvenPrice:    o.Float("break_even_price"),
		ImpliedVolatility: o.Float("implied_volatility"),
		OpenInterest:      o.Float("open_interest"),
		Day:               Record(o, decodeSession, "day"),
		Details:           Record(o, decodeContractDetails, "details"),
		Greeks:            Record(o, decodeGreeks, "greeks"),
		LastQuote:         Record(o, decodeQuote, "last_quote"),
		LastTrade:         Record(o, decodeTrade, "last_trade"),
		UnderlyingAsset:   Record(o, decodeUnderlyingAsset, "underlying_asset"),
	}
}

// OptionChainResponse is returned by GetOptionChain.
type OptionChainResponse struct {
	Status    null.String              `json:"status"`
	RequestID null.String              `json:"request_id"`
	NextURL   null.String              `json:"next_url"`
	Results   []OptionContractSnapshot `json:"results"`
}

func decodeOptionChain(o Object) OptionChainResponse {
	return OptionChainResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		NextURL:   o.String("next_url"),
		Results:   Records(o, decodeOptionContractSnapshot, "results"),
	}
}

// OptionContractResponse is returned by GetOptionContract.
type OptionContractResponse struct {
	Status    null.String             `json:"status"`
	RequestID null.String             `json:"request_id"`
	Results   *OptionContractSnapshot `json:"results"`
}

func decodeOptionContract(o Object) OptionContractResponse {
	return OptionContractResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		Results:   Record(o, decodeOptionContractSnapshot, "results"),
	}
}

// ------------------------ indices -----------------------

// IndexSnapshot is the snapshot of a single index. Error and Message are set
// instead of the values when polygon could not resolve the ticker.
type IndexSnapshot struct {
	Ticker       null.String `json:"ticker"`
	Name         null.String `json:"name"`
	Type         null.String `json:"type"`
	MarketStatus null.String `json:"market_status"`
	Value        null.Float  `json:"value"`
	Session      *Session    `json:"session"`
	Error        null.String `json:"error"`
	Message      null.String `json:"message"`
}

func decodeIndexSnapshot(o Object) IndexSnapshot {
	return IndexSnapshot{
		Ticker:       o.String("ticker"),
		Name:         o.String("name"),
		Type:         o.String("type"),
		MarketStatus: o.String("market_status"),
		Value:        o.Float("value"),
		Session:      Record(o, decodeSession, "session"),
		Error:        o.String("error"),
		Message:      o.String("message"),
	}
}

// IndicesSnapshotResponse is returned by GetIndicesSnapshot.
type IndicesSnapshotResponse struct {
	Status    null.String     `json:"status"`
	RequestID null.String     `json:"request_id"`
	NextURL   null.String     `json:"next_url"`
	Results   []IndexSnapshot `json:"results"`
}

func decodeIndicesSnapshot(o Object) IndicesSnapshotResponse {
	return IndicesSnapshotResponse{
		Status:    o.String("status"),
		RequestID: o.String("request_id"),
		NextURL:   o.String("next_url"),
		Results:   Records(o, decodeIndexSnapshot, "results"),
	}
}
