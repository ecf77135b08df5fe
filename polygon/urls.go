package polygon

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// queryField binds a parameter to its query string key.
type queryField struct {
	param Parameter
	key   string
}

func field(param Parameter, key string) queryField {
	return queryField{param: param, key: key}
}

var (
	aggregatesQuery = []queryField{
		field(ParamAdjusted, "adjusted"),
		field(ParamSort, "sort"),
		field(ParamLimit, "limit"),
	}
	groupedDailyQuery = []queryField{
		field(ParamAdjusted, "adjusted"),
		field(ParamIncludeOTC, "include_otc"),
	}
	adjustedQuery = []queryField{
		field(ParamAdjusted, "adjusted"),
	}
	tickQuery = []queryField{
		field(ParamTimestamp, "timestamp"),
		field(ParamFrom, "timestamp.gte"),
		field(ParamTo, "timestamp.lte"),
		field(ParamOrder, "order"),
		field(ParamLimit, "limit"),
		field(ParamSortV3, "sort"),
	}
	conversionQuery = []queryField{
		field(ParamAmount, "amount"),
		field(ParamPrecision, "precision"),
	}
	includeOTCQuery = []queryField{
		field(ParamIncludeOTC, "include_otc"),
	}
	tickersSnapshotQuery = []queryField{
		field(ParamTickers, "tickers"),
		field(ParamIncludeOTC, "include_otc"),
	}
	indicatorQuery = []queryField{
		field(ParamTimestamp, "timestamp"),
		field(ParamFrom, "timestamp.gte"),
		field(ParamTo, "timestamp.lte"),
		field(ParamTimespan, "timespan"),
		field(ParamAdjusted, "adjusted"),
		field(ParamWindow, "window"),
		field(ParamSeriesType, "series_type"),
		field(ParamExpandUnderlying, "expand_underlying"),
		field(ParamOrder, "order"),
		field(ParamLimit, "limit"),
	}
	macdQuery = []queryField{
		field(ParamTimestamp, "timestamp"),
		field(ParamFrom, "timestamp.gte"),
		field(ParamTo, "timestamp.lte"),
		field(ParamTimespan, "timespan"),
		field(ParamAdjusted, "adjusted"),
		field(ParamShortWindow, "short_window"),
		field(ParamLongWindow, "long_window"),
		field(ParamSignalWindow, "signal_window"),
		field(ParamSeriesType, "series_type"),
		field(ParamExpandUnderlying, "expand_underlying"),
		field(ParamOrder, "order"),
		field(ParamLimit, "limit"),
	}
	optionChainQuery = []queryField{
		field(ParamStrikePrice, "strike_price"),
		field(ParamStrikePriceFrom, "strike_price.gte"),
		field(ParamStrikePriceTo, "strike_price.lte"),
		field(ParamExpirationDate, "expiration_date"),
		field(ParamContractType, "contract_type"),
		field(ParamOrder, "order"),
		field(ParamLimit, "limit"),
		field(ParamSortV3, "sort"),
	}
	indicesSnapshotQuery = []queryField{
		field(ParamTickers, "ticker.any_of"),
		field(ParamTickerFrom, "ticker.gte"),
		field(ParamTickerTo, "ticker.lte"),
		field(ParamOrder, "order"),
		field(ParamLimit, "limit"),
		field(ParamSortV3, "sort"),
	}
)

// buildURL joins base and path, then appends one key=value& segment per
// present field in order and the API key last. A timestamp is dropped when
// either range bound is present.
func buildURL(base, path string, p *Params, fields []queryField) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(base, "/"))
	b.WriteString(path)
	b.WriteByte('?')
	for _, f := range fields {
		if !p.Has(f.param) {
			continue
		}
		if f.param == ParamTimestamp && (p.Has(ParamFrom) || p.Has(ParamTo)) {
			continue
		}
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(queryValue(p, f.param)))
		b.WriteByte('&')
	}
	b.WriteString("apiKey=")
	b.WriteString(url.QueryEscape(p.APIKey))
	return b.String()
}

func queryValue(p *Params, param Parameter) string {
	switch param {
	case ParamTicker:
		return p.Ticker
	case ParamTickers:
		return strings.Join(p.Tickers, ",")
	case ParamTickerFrom:
		return p.TickerFrom
	case ParamTickerTo:
		return p.TickerTo
	case ParamTickerType:
		return string(p.TickerType)
	case ParamMultiplier:
		return formatInt(p.Multiplier.Int64)
	case ParamTimespan:
		return string(p.Timespan)
	case ParamDate:
		return p.Date
	case ParamFrom:
		return p.From
	case ParamTo:
		return p.To
	case ParamTimestamp:
		return p.Timestamp
	case ParamAdjusted:
		return strconv.FormatBool(p.Adjusted.Bool)
	case ParamSort:
		return string(p.Sort)
	case ParamOrder:
		return string(p.Order)
	case ParamSortV3:
		return string(p.SortV3)
	case ParamLimit:
		return formatInt(p.Limit.Int64)
	case ParamContractType:
		return string(p.ContractType)
	case ParamIncludeOTC:
		return strconv.FormatBool(p.IncludeOTC.Bool)
	case ParamStrikePrice:
		return p.StrikePrice.Decimal.String()
	case ParamStrikePriceFrom:
		return p.StrikePriceFrom.Decimal.String()
	case ParamStrikePriceTo:
		return p.StrikePriceTo.Decimal.String()
	case ParamExpirationDate:
		return p.ExpirationDate
	case ParamUnderlyingAsset:
		return p.UnderlyingAsset
	case ParamAmount:
		return p.Amount.Decimal.String()
	case ParamPrecision:
		return formatInt(p.Precision.Int64)
	case ParamDirection:
		return string(p.Direction)
	case ParamWindow:
		return formatInt(p.Window.Int64)
	case ParamShortWindow:
		return formatInt(p.ShortWindow.Int64)
	case ParamLongWindow:
		return formatInt(p.LongWindow.Int64)
	case ParamSignalWindow:
		return formatInt(p.SignalWindow.Int64)
	case ParamSeriesType:
		return string(p.SeriesType)
	case ParamExpandUnderlying:
		return strconv.FormatBool(p.ExpandUnderlying.Bool)
	}
	return ""
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func seg(s string) string {
	return url.PathEscape(s)
}

// market returns the locale and market path segments for a ticker class.
// Forex is "fx" in the grouped aggregates path and "forex" in snapshots.
func market(class TickerClass, grouped bool) (string, string) {
	switch class {
	case ClassForex:
		if grouped {
			return "global", "fx"
		}
		return "global", "forex"
	case ClassCrypto:
		return "global", "crypto"
	}
	return "us", "stocks"
}

func marketClass(p *Params) TickerClass {
	if p.TickerType == "" {
		return ClassEquity
	}
	return p.TickerType.Class()
}

func aggregatesURL(base string, p *Params) (string, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/%s/%s/%s/%s",
		seg(p.Ticker), formatInt(p.Multiplier.Int64), seg(string(p.Timespan)), seg(p.From), seg(p.To))
	return buildURL(base, path, p, aggregatesQuery), nil
}

func groupedDailyURL(base string, p *Params) (string, error) {
	class := marketClass(p)
	locale, mkt := market(class, true)
	path := fmt.Sprintf("/v2/aggs/grouped/locale/%s/market/%s/%s", locale, mkt, seg(p.Date))
	fields := groupedDailyQuery
	if class != ClassEquity {
		fields = adjustedQuery
	}
	return buildURL(base, path, p, fields), nil
}

func dailyOpenCloseURL(base string, p *Params) (string, error) {
	path := fmt.Sprintf("/v1/open-close/%s/%s", seg(p.Ticker), seg(p.Date))
	return buildURL(base, path, p, adjustedQuery), nil
}

func previousCloseURL(base string, p *Params) (string, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/prev", seg(p.Ticker))
	return buildURL(base, path, p, adjustedQuery), nil
}

func tradesURL(base string, p *Params) (string, error) {
	return buildURL(base, "/v3/trades/"+seg(p.Ticker), p, tickQuery), nil
}

func lastTradeURL(base string, p *Params) (string, error) {
	return buildURL(base, "/v2/last/trade/"+seg(p.Ticker), p, nil), nil
}

func quotesURL(base string, p *Params) (string, error) {
	return buildURL(base, "/v3/quotes/"+seg(p.Ticker), p, tickQuery), nil
}

func lastQuoteURL(base string, p *Params) (string, error) {
	return buildURL(base, "/v2/last/nbbo/"+seg(p.Ticker), p, nil), nil
}

// currencyConversionURL splits a C:XXXYYY pair into its two currency codes.
func currencyConversionURL(base string, p *Params) (string, error) {
	if len(p.Ticker) < 8 {
		return "", fmt.Errorf("%w: %q is too short for a currency pair", ErrInvalidTicker, p.Ticker)
	}
	from, to := p.Ticker[2:5], p.Ticker[5:8]
	path := fmt.Sprintf("/v1/conversion/%s/%s", seg(from), seg(to))
	return buildURL(base, path, p, conversionQuery), nil
}

func gainersLosersURL(base string, p *Params) (string, error) {
	class := marketClass(p)
	locale, mkt := market(class, false)
	path := fmt.Sprintf("/v2/snapshot/locale/%s/markets/%s/%s", locale, mkt, seg(string(p.Direction)))
	var fields []queryField
	if class == ClassEquity {
		fields = includeOTCQuery
	}
	return buildURL(base, path, p, fields), nil
}

func tickerSnapshotURL(base string, p *Params) (string, error) {
	locale, mkt := market(Classify(p.Ticker), false)
	path := fmt.Sprintf("/v2/snapshot/locale/%s/markets/%s/tickers/%s", locale, mkt, seg(p.Ticker))
	return buildURL(base, path, p, nil), nil
}

func tickersSnapshotURL(base string, p *Params) (string, error) {
	class := marketClass(p)
	locale, mkt := market(class, false)
	path := fmt.Sprintf("/v2/snapshot/locale/%s/markets/%s/tickers", locale, mkt)
	fields := tickersSnapshotQuery
	if class != ClassEquity {
		fields = tickersSnapshotQuery[:1]
	}
	return buildURL(base, path, p, fields), nil
}

func orderBookURL(base string, p *Params) (string, error) {
	path := fmt.Sprintf("/v2/snapshot/locale/global/markets/crypto/tickers/%s/book", seg(p.Ticker))
	return buildURL(base, path, p, nil), nil
}

func indicatorURL(kind string) func(string, *Params) (string, error) {
	return func(base string, p *Params) (string, error) {
		path := fmt.Sprintf("/v1/indicators/%s/%s", kind, seg(p.Ticker))
		fields := indicatorQuery
		if kind == "macd" {
			fields = macdQuery
		}
		return buildURL(base, path, p, fields), nil
	}
}

func optionChainURL(base string, p *Params) (string, error) {
	return buildURL(base, "/v3/snapshot/options/"+seg(p.UnderlyingAsset), p, optionChainQuery), nil
}

func optionContractURL(base string, p *Params) (string, error) {
	path := fmt.Sprintf("/v3/snapshot/options/%s/%s", seg(p.UnderlyingAsset), seg(p.Ticker))
	return buildURL(base, path, p, nil), nil
}

func indicesSnapshotURL(base string, p *Params) (string, error) {
	for _, t := range p.Tickers {
		if Classify(t) != ClassIndex {
			return "", fmt.Errorf("%w: %q is not an index", ErrTickerTypeNotValid, t)
		}
	}
	return buildURL(base, "/v3/snapshot/indices", p, indicesSnapshotQuery), nil
}
