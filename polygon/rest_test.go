package polygon

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aggregatesBody = `{
	"adjusted": true,
	"next_url": "https://api.polygon.io/v2/aggs/ticker/AAPL/range/1/day/1578114000000/2020-01-10?cursor=bGltaXQ9MiZzb3J0PWFzYw",
	"queryCount": 2,
	"request_id": "6a7e466379af0a71039d60cc78e72282",
	"results": [
		{"c": 75.0875, "h": 75.15, "l": 73.7975, "n": 1, "o": 74.06, "t": 1577941200000, "v": 135647456, "vw": 74.6099},
		{"c": 74.3575, "h": 75.145, "l": 74.125, "n": 1, "o": 74.2875, "t": 1578027600000, "v": 146535512, "vw": 74.7026}
	],
	"resultsCount": 2,
	"status": "OK",
	"ticker": "AAPL"
}`

func testClient() *Client {
	logger, _ := logtest.NewNullLogger()
	return NewClient(ClientOpts{
		APIKey:  testKey,
		BaseURL: "https://api.polygon.io",
		Logger:  logger,
	})
}

func mockResp(resp string) func(c *Client, req *http.Request) (*http.Response, error) {
	return func(c *Client, req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(resp)),
		}, nil
	}
}

func mockErrResp() func(c *Client, req *http.Request) (*http.Response, error) {
	return func(c *Client, req *http.Request) (*http.Response, error) {
		return &http.Response{}, fmt.Errorf("fail")
	}
}

func TestDefaultDo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/aggs/ticker/AAPL/range/1/day/2023-01-02/2023-01-31", r.URL.Path)
		assert.Equal(t, testKey, r.URL.Query().Get("apiKey"))
		assert.Equal(t, "120", r.URL.Query().Get("limit"))
		fmt.Fprint(w, aggregatesBody)
	}))
	defer server.Close()
	client := NewClient(ClientOpts{
		APIKey:  testKey,
		BaseURL: server.URL,
	})
	p := aggregatesParams()
	p.Limit = null.IntFrom(120)
	got, err := client.GetAggregates(p)
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("AAPL"), got.Ticker)
	require.Len(t, got.Results, 2)
	assert.Equal(t, 73.7975, got.Results[0].Low.Float64)
	assert.Equal(t, int64(1578027600000), got.Results[1].Timestamp.Int64)
}

func TestDefaultDo_EnvConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/last/trade/AAPL", r.URL.Path)
		assert.Equal(t, "envkeyenvkeyenvkeyenvkeyenvkey12", r.URL.Query().Get("apiKey"))
		fmt.Fprint(w, `{"request_id":"f05562305bd26ced64b98ed68b3c5d96","results":{"T":"AAPL","c":[37],"i":"52983525029461","p":129.8473,"q":3135876,"r":202,"s":25,"t":1617901342969834000,"x":4,"y":1617901342968000000,"z":3},"status":"OK"}`)
	}))
	defer server.Close()
	t.Setenv("POLYGON_BASE_URL", server.URL)
	t.Setenv("POLYGON_API_KEY", "envkeyenvkeyenvkeyenvkeyenvkey12")
	client := NewClient(ClientOpts{})
	got, err := client.GetLastTrade(Params{Ticker: "AAPL"})
	require.NoError(t, err)
	require.NotNil(t, got.Results)
	assert.Equal(t, null.FloatFrom(129.8473), got.Results.Price)
	assert.Equal(t, null.IntFrom(202), got.Results.TRFID)
	assert.Equal(t, null.IntFrom(1617901342969834000), got.Results.SIPTimestamp)
}

func TestDefaultDo_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"status":"NOT_AUTHORIZED","request_id":"a1b2","message":"You are not entitled to this data."}`)
	}))
	defer server.Close()
	client := NewClient(ClientOpts{APIKey: testKey, BaseURL: server.URL})
	_, err := client.GetTrades(Params{Ticker: "AAPL"})
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "NOT_AUTHORIZED", apiErr.Status)
	assert.Equal(t, "a1b2", apiErr.RequestID)
	assert.Equal(t, "HTTP 403: You are not entitled to this data.", err.Error())
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestDefaultDo_InternalServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()
	client := NewClient(ClientOpts{APIKey: testKey, BaseURL: server.URL})
	_, err := client.GetLastQuote(Params{Ticker: "AAPL"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestDefaultDo_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		fmt.Fprint(w, aggregatesBody)
	}))
	defer server.Close()
	client := NewClient(ClientOpts{
		APIKey:  testKey,
		BaseURL: server.URL,
		Timeout: time.Millisecond,
	})
	_, err := client.GetAggregates(aggregatesParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "Timeout")
	assert.NotContains(t, err.Error(), testKey)
}

func TestGetAggregates_Gzip(t *testing.T) {
	c := testClient()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(aggregatesBody))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	c.do = func(c *Client, req *http.Request) (*http.Response, error) {
		assert.Equal(t, "gzip", req.Header.Get("Accept-Encoding"))
		return &http.Response{
			Body: io.NopCloser(&buf),
			Header: http.Header{
				"Content-Encoding": []string{"gzip"},
			},
		}, nil
	}
	got, err := c.GetAggregates(aggregatesParams())
	require.NoError(t, err)
	require.Len(t, got.Results, 2)
	assert.Equal(t, 75.0875, got.Results[0].Close.Float64)
}

func TestGetAggregates_NoGzip(t *testing.T) {
	c := testClient()
	c.do = func(c *Client, req *http.Request) (*http.Response, error) {
		assert.Equal(t, "gzip", req.Header.Get("Accept-Encoding"))
		// Even though we request gzip encoding, the server may decide to not use it
		return &http.Response{
			Body: io.NopCloser(strings.NewReader(aggregatesBody)),
		}, nil
	}
	got, err := c.GetAggregates(aggregatesParams())
	require.NoError(t, err)
	assert.Len(t, got.Results, 2)
}

func TestValidationBeforeIO(t *testing.T) {
	c := testClient()
	c.do = func(c *Client, req *http.Request) (*http.Response, error) {
		require.Fail(t, "the server should not have been called")
		return nil, nil
	}

	_, err := c.GetAggregates(Params{Ticker: "AAPL"})
	assert.ErrorIs(t, err, ErrParameterNotSet)

	_, err = c.GetLastQuote(Params{Ticker: "X:BTCUSD"})
	assert.ErrorIs(t, err, ErrTickerTypeNotValid)

	_, err = c.GetOrderBook(Params{})
	assert.ErrorIs(t, err, ErrTickerNotSet)

	_, err = c.GetCurrencyConversion(Params{Ticker: "AAPL"})
	assert.ErrorIs(t, err, ErrTickerTypeNotValid)

	_, err = c.GetIndicesSnapshot(Params{Tickers: []string{"AAPL"}})
	assert.ErrorIs(t, err, ErrTickerTypeNotValid)
}

func TestAPIKeyNotSet(t *testing.T) {
	t.Setenv("POLYGON_API_KEY", "")
	logger, _ := logtest.NewNullLogger()
	c := NewClient(ClientOpts{Logger: logger})
	c.do = func(c *Client, req *http.Request) (*http.Response, error) {
		require.Fail(t, "the server should not have been called")
		return nil, nil
	}
	_, err := c.GetPreviousClose(Params{Ticker: "AAPL"})
	assert.ErrorIs(t, err, ErrAPIKeyNotSet)
}

func TestParamsAPIKeyOverridesClient(t *testing.T) {
	c := testClient()
	other := strings.Repeat("z", 32)
	c.do = func(c *Client, req *http.Request) (*http.Response, error) {
		assert.Equal(t, other, req.URL.Query().Get("apiKey"))
		return mockResp(`{"status":"OK"}`)(c, req)
	}
	_, err := c.GetPreviousClose(Params{APIKey: other, Ticker: "AAPL"})
	require.NoError(t, err)
}

func TestTransportError(t *testing.T) {
	c := testClient()
	c.do = mockErrResp()
	_, err := c.GetTrades(Params{Ticker: "AAPL"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "fail", te.Err.Error())
	assert.Contains(t, te.URL, "apiKey=REDACTED")
	assert.NotContains(t, te.URL, testKey)
}

func TestInvalidResponse(t *testing.T) {
	c := testClient()
	c.do = mockResp("not a valid json")
	_, err := c.GetTrades(Params{Ticker: "AAPL"})
	assert.ErrorIs(t, err, ErrFormat)

	c.do = mockResp(`[{"p": 1}]`)
	_, err = c.GetTrades(Params{Ticker: "AAPL"})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := NewClient(ClientOpts{APIKey: testKey, Logger: logger})
	c.do = mockResp(`{"status":"OK"}`)
	_, err := c.GetLastTrade(Params{Ticker: "AAPL"})
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Contains(t, entry.Message, "/v2/last/trade/AAPL?apiKey=REDACTED")
	assert.NotContains(t, entry.Message, testKey)
}

func TestMalformedAPIKeyWarns(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	NewClient(ClientOpts{APIKey: "short", Logger: logger})
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	NewClient(ClientOpts{APIKey: testKey, Logger: logger})
	assert.Empty(t, hook.Entries)
}

func TestDefaultLogger(t *testing.T) {
	quiet, ok := DefaultLogger(false).(*logrus.Entry)
	require.True(t, ok)
	assert.Equal(t, logrus.WarnLevel, quiet.Logger.GetLevel())

	verbose, ok := DefaultLogger(true).(*logrus.Entry)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, verbose.Logger.GetLevel())
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "https://h/p?a=1&apiKey=REDACTED", redact("https://h/p?a=1&apiKey=secret"))
	assert.Equal(t, "https://h/p?apiKey=REDACTED&b=2", redact("https://h/p?apiKey=secret&b=2"))
	assert.Equal(t, "https://h/p?a=1", redact("https://h/p?a=1"))
}

func TestNewAPIError(t *testing.T) {
	apiErr := newAPIError(http.StatusBadRequest, []byte(`{"status":"ERROR","request_id":"r1","error":"bad ticker","message":"ignored"}`))
	assert.Equal(t, "bad ticker", apiErr.Message)
	assert.Equal(t, "ERROR", apiErr.Status)

	apiErr = newAPIError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
	assert.Equal(t, "<html>bad gateway</html>", apiErr.Message)
	assert.Equal(t, "HTTP 502: <html>bad gateway</html>", apiErr.Error())

	apiErr = newAPIError(http.StatusNotFound, nil)
	assert.Equal(t, "HTTP 404", apiErr.Error())
}
