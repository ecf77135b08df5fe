package polygon

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alpacahq/polygon-api-go/common"
)

// DefaultBaseURL is the Polygon REST API host.
const DefaultBaseURL = "https://api.polygon.io"

// ClientOpts contains options for the polygon client.
type ClientOpts struct {
	// APIKey is appended to every request. Defaults to $POLYGON_API_KEY.
	APIKey string
	// BaseURL defaults to $POLYGON_BASE_URL, then DefaultBaseURL.
	BaseURL string
	// Timeout of a single request. Ignored when HTTPClient is set.
	Timeout    time.Duration
	HTTPClient *http.Client
	// Verbose turns on debug logging of the default logger.
	Verbose bool
	Logger  Logger
}

// Client is the polygon REST client. It is safe for concurrent use.
type Client struct {
	opts ClientOpts

	do func(c *Client, req *http.Request) (*http.Response, error)
}

// NewClient creates a new polygon client using the given opts.
func NewClient(opts ClientOpts) *Client {
	if opts.APIKey == "" {
		opts.APIKey = common.Credentials().ID
	}
	if opts.BaseURL == "" {
		if s := common.BaseURL(); s != "" {
			opts.BaseURL = s
		} else {
			opts.BaseURL = DefaultBaseURL
		}
	}
	if opts.Logger == nil {
		opts.Logger = DefaultLogger(opts.Verbose)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: opts.Timeout,
		}
	}
	if opts.APIKey != "" && !IsValidAPIKey(opts.APIKey) {
		opts.Logger.Warnf("api key does not look like a polygon key (expected 32 characters)")
	}
	return &Client{
		opts: opts,

		do: defaultDo,
	}
}

// DefaultClient uses options from environment variables, or the defaults.
var DefaultClient = NewClient(ClientOpts{})

func defaultDo(c *Client, req *http.Request) (*http.Response, error) {
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	if err = verify(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) get(u string) (Object, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, transportError(u, err)
	}
	req.Header.Set("Accept-Encoding", "gzip")

	c.opts.Logger.Debugf("GET %s", redact(u))
	resp, err := c.do(c, req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.opts.Logger.Debugf("GET %s: %v", redact(u), err)
			return nil, err
		}
		return nil, transportError(u, err)
	}

	return unmarshal(resp)
}

// transportError strips the *url.Error wrapper, whose message repeats the
// URL with the API key in it.
func transportError(u string, err error) *TransportError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return &TransportError{URL: redact(u), Err: err}
}

func verify(resp *http.Response) error {
	if resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		body, err := readBody(resp)
		if err != nil {
			return err
		}
		return newAPIError(resp.StatusCode, body)
	}
	return nil
}

func readBody(resp *http.Response) ([]byte, error) {
	reader, err := bodyReader(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func bodyReader(resp *http.Response) (io.ReadCloser, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		return gzip.NewReader(resp.Body)
	}
	return io.NopCloser(resp.Body), nil
}

func unmarshal(resp *http.Response) (Object, error) {
	defer resp.Body.Close()
	reader, err := bodyReader(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return decodeObject(reader)
}

// GetAggregates returns the bars of a ticker over a date range, in
// windows of Multiplier x Timespan.
func (c *Client) GetAggregates(p Params) (*AggregatesResponse, error) {
	return get(c, aggregatesEndpoint, p)
}

// GetGroupedDaily returns the daily bar of every ticker of the market
// selected by TickerType (stocks when unset) on Date.
func (c *Client) GetGroupedDaily(p Params) (*GroupedDailyResponse, error) {
	return get(c, groupedDailyEndpoint, p)
}

// GetDailyOpenClose returns the open, close, pre-market and after-hours
// prices of a ticker on Date.
func (c *Client) GetDailyOpenClose(p Params) (*DailyOpenCloseResponse, error) {
	return get(c, dailyOpenCloseEndpoint, p)
}

// GetPreviousClose returns the previous day's bar of a ticker.
func (c *Client) GetPreviousClose(p Params) (*AggregatesResponse, error) {
	return get(c, previousCloseEndpoint, p)
}

// GetTrades returns the trades of a ticker.
func (c *Client) GetTrades(p Params) (*TradesResponse, error) {
	return get(c, tradesEndpoint, p)
}

// GetLastTrade returns the most recent trade of a ticker.
func (c *Client) GetLastTrade(p Params) (*LastTradeResponse, error) {
	return get(c, lastTradeEndpoint, p)
}

// GetQuotes returns the NBBO quotes of a ticker.
func (c *Client) GetQuotes(p Params) (*QuotesResponse, error) {
	return get(c, quotesEndpoint, p)
}

// GetLastQuote returns the most recent NBBO quote of a stock.
func (c *Client) GetLastQuote(p Params) (*LastQuoteResponse, error) {
	return get(c, lastQuoteEndpoint, p)
}

// GetCurrencyConversion converts Amount between the two currencies of a
// forex ticker, e.g. C:EURUSD.
func (c *Client) GetCurrencyConversion(p Params) (*CurrencyConversionResponse, error) {
	return get(c, currencyConversionEndpoint, p)
}

// GetGainersLosers returns the top movers of the market selected by TickerType.
func (c *Client) GetGainersLosers(p Params) (*SnapshotsResponse, error) {
	return get(c, gainersLosersEndpoint, p)
}

// GetTickerSnapshot returns the snapshot of a single ticker.
func (c *Client) GetTickerSnapshot(p Params) (*TickerSnapshotResponse, error) {
	return get(c, tickerSnapshotEndpoint, p)
}

// GetTickersSnapshot returns the snapshots of Tickers, or of every ticker of
// the market when Tickers is empty.
func (c *Client) GetTickersSnapshot(p Params) (*SnapshotsResponse, error) {
	return get(c, tickersSnapshotEndpoint, p)
}

// GetOrderBook returns the level 2 book of a crypto ticker.
func (c *Client) GetOrderBook(p Params) (*OrderBookResponse, error) {
	return get(c, orderBookEndpoint, p)
}

// GetSMA returns the simple moving average of a ticker.
func (c *Client) GetSMA(p Params) (*IndicatorResponse, error) {
	return get(c, smaEndpoint, p)
}

// GetEMA returns the exponential moving average of a ticker.
func (c *Client) GetEMA(p Params) (*IndicatorResponse, error) {
	return get(c, emaEndpoint, p)
}

// GetRSI returns the relative strength index of a ticker.
func (c *Client) GetRSI(p Params) (*IndicatorResponse, error) {
	return get(c, rsiEndpoint, p)
}

// GetMACD returns the moving average convergence/divergence of a ticker.
func (c *Client) GetMACD(p Params) (*MACDResponse, error) {
	return get(c, macdEndpoint, p)
}

// GetOptionChain returns the snapshots of every option contract written on
// UnderlyingAsset.
func (c *Client) GetOptionChain(p Params) (*OptionChainResponse, error) {
	return get(c, optionChainEndpoint, p)
}

// GetOptionContract returns the snapshot of one option contract.
func (c *Client) GetOptionContract(p Params) (*OptionContractResponse, error) {
	return get(c, optionContractEndpoint, p)
}

// GetIndicesSnapshot returns the snapshots of indices.
func (c *Client) GetIndicesSnapshot(p Params) (*IndicesSnapshotResponse, error) {
	return get(c, indicesSnapshotEndpoint, p)
}

// GetAggregates returns the bars of a ticker over a date range.
func GetAggregates(p Params) (*AggregatesResponse, error) {
	return DefaultClient.GetAggregates(p)
}

// GetGroupedDaily returns the daily bar of every ticker of a market.
func GetGroupedDaily(p Params) (*GroupedDailyResponse, error) {
	return DefaultClient.GetGroupedDaily(p)
}

// GetDailyOpenClose returns the open and close prices of a ticker on a date.
func GetDailyOpenClose(p Params) (*DailyOpenCloseResponse, error) {
	return DefaultClient.GetDailyOpenClose(p)
}

// GetPreviousClose returns the previous day's bar of a ticker.
func GetPreviousClose(p Params) (*AggregatesResponse, error) {
	return DefaultClient.GetPreviousClose(p)
}

// GetTrades returns the trades of a ticker.
func GetTrades(p Params) (*TradesResponse, error) {
	return DefaultClient.GetTrades(p)
}

// GetLastTrade returns the most recent trade of a ticker.
func GetLastTrade(p Params) (*LastTradeResponse, error) {
	return DefaultClient.GetLastTrade(p)
}

// GetQuotes returns the quotes of a ticker.
func GetQuotes(p Params) (*QuotesResponse, error) {
	return DefaultClient.GetQuotes(p)
}

// GetLastQuote returns the most recent quote of a stock.
func GetLastQuote(p Params) (*LastQuoteResponse, error) {
	return DefaultClient.GetLastQuote(p)
}

// GetCurrencyConversion converts an amount between two currencies.
func GetCurrencyConversion(p Params) (*CurrencyConversionResponse, error) {
	return DefaultClient.GetCurrencyConversion(p)
}

// GetGainersLosers returns the top movers of a market.
func GetGainersLosers(p Params) (*SnapshotsResponse, error) {
	return DefaultClient.GetGainersLosers(p)
}

// GetTickerSnapshot returns the snapshot of a single ticker.
func GetTickerSnapshot(p Params) (*TickerSnapshotResponse, error) {
	return DefaultClient.GetTickerSnapshot(p)
}

// GetTickersSnapshot returns the snapshots of many tickers.
func GetTickersSnapshot(p Params) (*SnapshotsResponse, error) {
	return DefaultClient.GetTickersSnapshot(p)
}

// GetOrderBook returns the level 2 book of a crypto ticker.
func GetOrderBook(p Params) (*OrderBookResponse, error) {
	return DefaultClient.GetOrderBook(p)
}

// GetSMA returns the simple moving average of a ticker.
func GetSMA(p Params) (*IndicatorResponse, error) {
	return DefaultClient.GetSMA(p)
}

// GetEMA returns the exponential moving average of a ticker.
func GetEMA(p Params) (*IndicatorResponse, error) {
	return DefaultClient.GetEMA(p)
}

// GetRSI returns the relative strength index of a ticker.
func GetRSI(p Params) (*IndicatorResponse, error) {
	return DefaultClient.GetRSI(p)
}

// GetMACD returns the moving average convergence/divergence of a ticker.
func GetMACD(p Params) (*MACDResponse, error) {
	return DefaultClient.GetMACD(p)
}

// GetOptionChain returns the option contracts written on an underlying asset.
func GetOptionChain(p Params) (*OptionChainResponse, error) {
	return DefaultClient.GetOptionChain(p)
}

// GetOptionContract returns the snapshot of one option contract.
func GetOptionContract(p Params) (*OptionContractResponse, error) {
	return DefaultClient.GetOptionContract(p)
}

// GetIndicesSnapshot returns the snapshots of indices.
func GetIndicesSnapshot(p Params) (*IndicesSnapshotResponse, error) {
	return DefaultClient.GetIndicesSnapshot(p)
}

// NextPage fetches the page after page and decodes it into page.
func NextPage(page Page) error {
	return DefaultClient.NextPage(page)
}

// NextPageWithKey fetches the page after page with the given API key.
func NextPageWithKey(page Page, apiKey string) error {
	return DefaultClient.NextPageWithKey(page, apiKey)
}
