// Package ingestion fetches and parses the MOLIT real-transaction feeds
// (apartment trade and rent). Failures are isolated per period: a period
// that cannot be fetched or parsed contributes zero records and the batch
// carries on.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"aptrank/server/internal/models"
)

const (
	defaultTradeURL = "http://apis.data.go.kr/1613000/RTMSDataSvcAptTrade/getRTMSDataSvcAptTrade"
	defaultRentURL  = "http://apis.data.go.kr/1613000/RTMSDataSvcAptRent/getRTMSDataSvcAptRent"

	// One region-month is well under this; the API caps pages at 1000 rows.
	numOfRows = "1000"
)

// Period is one year-month of the lookback window.
type Period struct {
	Year  int
	Month int
}

// YearMonth formats the period as the DEAL_YMD parameter (YYYYMM).
func (p Period) YearMonth() string {
	return fmt.Sprintf("%04d%02d", p.Year, p.Month)
}

// FetchKind selects which feed to hit. A single rent response mixes jeonse
// and monthly-rent items; parsing splits them.
type FetchKind string

const (
	FetchTrade FetchKind = "TRADE"
	FetchRent  FetchKind = "RENT"
)

// RecordCache is an optional read-through cache keyed by
// (regionCode, yearMonth, kind). The sqlite implementation lives in
// internal/cache.
type RecordCache interface {
	Get(regionCode, yearMonth string, kind FetchKind) ([]models.RawTransactionRecord, bool)
	Put(regionCode, yearMonth string, kind FetchKind, records []models.RawTransactionRecord)
}

// Client fetches transaction records from the open-data endpoints.
type Client struct {
	httpClient *http.Client
	serviceKey string
	logger     *logrus.Logger
	cache      RecordCache

	tradeURL string
	rentURL  string
}

// NewClient returns a client using the given data.go.kr service key. A nil
// cache disables caching.
func NewClient(serviceKey string, timeout time.Duration, logger *logrus.Logger, cache RecordCache) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		serviceKey: serviceKey,
		logger:     logger,
		cache:      cache,
		tradeURL:   defaultTradeURL,
		rentURL:    defaultRentURL,
	}
}

// SetEndpoints overrides the feed URLs. Used by tests.
func (c *Client) SetEndpoints(tradeURL, rentURL string) {
	c.tradeURL = tradeURL
	c.rentURL = rentURL
}

// FetchPeriods fetches one feed for every period and returns the combined
// parsed records. Every period is attempted regardless of earlier failures;
// a failed period is logged and contributes nothing.
func (c *Client) FetchPeriods(ctx context.Context, regionCode string, periods []Period, kind FetchKind) []models.RawTransactionRecord {
	var records []models.RawTransactionRecord
	for _, period := range periods {
		ym := period.YearMonth()

		if c.cache != nil {
			if cached, ok := c.cache.Get(regionCode, ym, kind); ok {
				records = append(records, cached...)
				continue
			}
		}

		parsed, err := c.fetchPeriod(ctx, regionCode, ym, kind)
		if err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"region_code": regionCode,
				"year_month":  ym,
				"kind":        kind,
			}).Warn("Skipping period after fetch failure")
			continue
		}

		if c.cache != nil {
			c.cache.Put(regionCode, ym, kind, parsed)
		}
		records = append(records, parsed...)
	}
	return records
}

func (c *Client) fetchPeriod(ctx context.Context, regionCode, yearMonth string, kind FetchKind) ([]models.RawTransactionRecord, error) {
	endpoint := c.tradeURL
	if kind == FetchRent {
		endpoint = c.rentURL
	}

	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("LAWD_CD", regionCode)
	params.Set("DEAL_YMD", yearMonth)
	params.Set("numOfRows", numOfRows)
	params.Set("pageNo", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return ParseRecords(body, kind)
}
