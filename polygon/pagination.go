package polygon

import (
	"net/url"
	"strings"
)

// Page is a response that may be followed by further pages through next_url.
type Page interface {
	nextURL() string
	decode(o Object)
}

// NextPage fetches the page after page and decodes it into page, replacing
// its whole content. next_url never carries the API key, so the client's key
// is appended to it. NextPage returns ErrNoNextPage when page is the last one.
func (c *Client) NextPage(page Page) error {
	return c.NextPageWithKey(page, c.opts.APIKey)
}

// NextPageWithKey is NextPage for a page fetched with a per-call
// Params.APIKey: apiKey is appended to next_url instead of the client's key.
func (c *Client) NextPageWithKey(page Page, apiKey string) error {
	next := page.nextURL()
	if next == "" {
		return ErrNoNextPage
	}
	if apiKey == "" {
		return ErrAPIKeyNotSet
	}
	sep := "?"
	if strings.Contains(next, "?") {
		sep = "&"
	}
	o, err := c.get(next + sep + "apiKey=" + url.QueryEscape(apiKey))
	if err != nil {
		return err
	}
	page.decode(o)
	return nil
}

var (
	_ Page = (*AggregatesResponse)(nil)
	_ Page = (*TradesResponse)(nil)
	_ Page = (*QuotesResponse)(nil)
	_ Page = (*IndicatorResponse)(nil)
	_ Page = (*MACDResponse)(nil)
	_ Page = (*OptionChainResponse)(nil)
	_ Page = (*IndicesSnapshotResponse)(nil)
)

func (r *AggregatesResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *AggregatesResponse) decode(o Object) { *r = decodeAggregates(o) }

func (r *TradesResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *TradesResponse) decode(o Object) { *r = decodeTrades(o) }

func (r *QuotesResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *QuotesResponse) decode(o Object) { *r = decodeQuotes(o) }

func (r *IndicatorResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *IndicatorResponse) decode(o Object) { *r = decodeIndicator(o) }

func (r *MACDResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *MACDResponse) decode(o Object) { *r = decodeMACD(o) }

func (r *OptionChainResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *OptionChainResponse) decode(o Object) { *r = decodeOptionChain(o) }

func (r *IndicesSnapshotResponse) nextURL() string { return r.NextURL.ValueOrZero() }
func (r *IndicesSnapshotResponse) decode(o Object) { *r = decodeIndicesSnapshot(o) }
