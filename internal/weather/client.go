package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/Bloopswy/ShoreSquad/internal/observability"
)

// DefaultBaseURL is the data.gov.sg v2 real-time API root.
const DefaultBaseURL = "https://api-open.data.gov.sg/v2/real-time/api"

const (
	pathCurrent = "/twenty-four-hr-forecast"
	pathOutlook = "/four-day-outlook"
)

// Client runs the forecast pipeline: fetch both endpoints concurrently,
// combine, and fall back to the mock bulletin on any failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

// NewClient creates a forecast client. An empty baseURL selects the
// public data.gov.sg endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, clock clockwork.Clock, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		clock:   clock,
		metrics: metrics,
	}
}

// Bulletin fetches and normalizes the forecast. It never returns an
// error: if either endpoint fails the whole result is the deterministic
// mock bulletin — no partial degradation. The location, when present,
// only selects the beach name.
func (c *Client) Bulletin(ctx context.Context, loc *Location) Bulletin {
	var (
		cur     currentRecord
		outlook []outlookEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec, err := c.fetchCurrent(gctx)
		if err != nil {
			return fmt.Errorf("24-hour forecast: %w", err)
		}
		cur = rec
		return nil
	})
	g.Go(func() error {
		entries, err := c.fetchOutlook(gctx)
		if err != nil {
			return fmt.Errorf("4-day outlook: %w", err)
		}
		outlook = entries
		return nil
	})

	beachName := NearestBeach(loc)

	if err := g.Wait(); err != nil {
		c.logger.Warn("forecast fetch failed, serving mock bulletin", "error", err)
		c.metrics.ForecastRequests.WithLabelValues(SourceMock).Inc()
		b := MockBulletin(c.clock.Now())
		b.Beach = beachName
		return b
	}

	b := combine(cur, outlook, c.clock.Now())
	b.Beach = beachName
	c.logger.Info("forecast fetched", "days", len(b.Days), "beach", beachName)
	c.metrics.ForecastRequests.WithLabelValues(SourceLive).Inc()
	return b
}

func (c *Client) fetchCurrent(ctx context.Context) (currentRecord, error) {
	var resp currentResponse
	if err := c.doGet(ctx, pathCurrent, &resp); err != nil {
		return currentRecord{}, err
	}
	if resp.Code != 0 {
		return currentRecord{}, fmt.Errorf("api error: %s", resp.ErrorMsg)
	}
	if len(resp.Data.Records) == 0 {
		return currentRecord{}, fmt.Errorf("no records in response")
	}
	return resp.Data.Records[0], nil
}

func (c *Client) fetchOutlook(ctx context.Context) ([]outlookEntry, error) {
	var resp outlookResponse
	if err := c.doGet(ctx, pathOutlook, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 0 {
		return nil, fmt.Errorf("api error: %s", resp.ErrorMsg)
	}
	if len(resp.Data.Records) == 0 || len(resp.Data.Records[0].Forecasts) == 0 {
		return nil, fmt.Errorf("no records in response")
	}
	return resp.Data.Records[0].Forecasts, nil
}

// doGet issues the request and decodes the envelope. A non-2xx status
// is an error, same as a network failure.
func (c *Client) doGet(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// data.gov.sg v2 response types. Pointer fields distinguish "absent"
// from "zero" so per-field defaulting can kick in.

type currentResponse struct {
	Code     int    `json:"code"`
	ErrorMsg string `json:"errorMsg"`
	Data     struct {
		Records []currentRecord `json:"records"`
	} `json:"data"`
}

type currentRecord struct {
	Date             string `json:"date"`
	UpdatedTimestamp string `json:"updatedTimestamp"`
	General          struct {
		Forecast         *rawForecast `json:"forecast"`
		RelativeHumidity *rawBand     `json:"relativeHumidity"`
		Temperature      *rawBand     `json:"temperature"`
		Wind             *rawWind     `json:"wind"`
	} `json:"general"`
}

type outlookResponse struct {
	Code     int    `json:"code"`
	ErrorMsg string `json:"errorMsg"`
	Data     struct {
		Records []outlookRecord `json:"records"`
	} `json:"data"`
}

type outlookRecord struct {
	Date             string         `json:"date"`
	UpdatedTimestamp string         `json:"updatedTimestamp"`
	Forecasts        []outlookEntry `json:"forecasts"`
}

type outlookEntry struct {
	Timestamp        string       `json:"timestamp"`
	Date             string       `json:"date"`
	Day              string       `json:"day"`
	Forecast         *rawForecast `json:"forecast"`
	RelativeHumidity *rawBand     `json:"relativeHumidity"`
	Temperature      *rawBand     `json:"temperature"`
	Wind             *rawWind     `json:"wind"`
}

type rawForecast struct {
	Code    string `json:"code"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

type rawBand struct {
	Low  int    `json:"low"`
	High int    `json:"high"`
	Unit string `json:"unit"`
}

type rawWind struct {
	Speed     *rawBand `json:"speed"`
	Direction string   `json:"direction"`
}
