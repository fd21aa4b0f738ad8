package ireno

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://irenoakscluster.westus.cloudapp.azure.com/devicemgmt/v1/collector"
	defaultKPIBaseURL = "https://irenoakscluster.westus.cloudapp.azure.com/kpimgmt/v1/kpi"

	defaultTimeout = 15 * time.Second

	// The upstream timestamp format, month first.
	kpiTimeLayout = "01-02-2006 15:04:05"

	// How many collectors or data points a formatted summary lists before
	// eliding the rest.
	maxListed = 5
)

// Interval selects the aggregation window for zone KPI queries.
type Interval string

const (
	Daily   Interval = "Daily"
	Weekly  Interval = "Weekly"
	Monthly Interval = "Monthly"
)

// Client calls the IRENO device-management and KPI-management APIs.
type Client struct {
	baseURL    string
	kpiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the device-management endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithKPIBaseURL overrides the KPI-management endpoint.
func WithKPIBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.kpiBaseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClient creates a client for the IRENO APIs with the default endpoints.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		kpiBaseURL: defaultKPIBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON performs a GET request and decodes the response body.
// The decoded value is left loosely typed because the upstream services do
// not agree on a single response shape.
func (c *Client) getJSON(ctx context.Context, rawURL string, params url.Values) (any, error) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "opsassist/1.0")

	c.logger.Debug("calling IRENO API", "url", rawURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: HTTP %d", ErrAPIStatus, resp.StatusCode)
	}

	var data any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return data, nil
}

// OfflineCollectors fetches offline collectors and formats them as a summary.
func (c *Client) OfflineCollectors(ctx context.Context) (string, error) {
	data, err := c.getJSON(ctx, c.baseURL, url.Values{"status": {"offline"}})
	if err != nil {
		return "", err
	}
	return formatCollectors(data, "offline",
		"Good news! All collectors are currently online. No offline devices detected."), nil
}

// OnlineCollectors fetches online collectors and formats them as a summary.
func (c *Client) OnlineCollectors(ctx context.Context) (string, error) {
	data, err := c.getJSON(ctx, c.baseURL, url.Values{"status": {"online"}})
	if err != nil {
		return "", err
	}
	return formatCollectors(data, "online",
		"No online collectors found. This might indicate a system issue."), nil
}

// CollectorsCount fetches the fleet count summary, including the per-zone
// breakdown when the API provides one.
func (c *Client) CollectorsCount(ctx context.Context) (string, error) {
	data, err := c.getJSON(ctx, c.baseURL+"/count", nil)
	if err != nil {
		return "", err
	}
	return formatCount(data), nil
}

// kpi fetches a named KPI and formats the result under the given title.
func (c *Client) kpi(ctx context.Context, title string, params url.Values) (string, error) {
	data, err := c.getJSON(ctx, c.kpiBaseURL, params)
	if err != nil {
		return "", err
	}
	return formatKPI(title, data), nil
}

// DailyIntervalReadSuccess returns today's interval read success percentage
// across all meters.
func (c *Client) DailyIntervalReadSuccess(ctx context.Context) (string, error) {
	return c.kpi(ctx, "Daily Interval Read Success Percentage", url.Values{
		"kpiName":  {"DailyIntervalReadSuccessPercentage"},
		"interval": {"Daily"},
	})
}

// DailyRegisterReadSuccess returns today's register read success percentage
// across all meters.
func (c *Client) DailyRegisterReadSuccess(ctx context.Context) (string, error) {
	return c.kpi(ctx, "Daily Register Read Success Percentage", url.Values{
		"kpiName":  {"DailyRegisterReadSuccessPercentage"},
		"interval": {"Daily"},
	})
}

// last7Days returns the startTime/endTime parameters for a trailing week.
func (c *Client) last7Days() (start, end string) {
	endTime := c.now()
	startTime := endTime.AddDate(0, 0, -7)
	return startTime.Format(kpiTimeLayout), endTime.Format(kpiTimeLayout)
}

// Last7DaysIntervalReadSuccess returns the trailing week of interval read
// success for electric meters.
func (c *Client) Last7DaysIntervalReadSuccess(ctx context.Context) (string, error) {
	start, end := c.last7Days()
	return c.kpi(ctx, "Last 7 Days Interval Read Success (Electric)", url.Values{
		"kpiName":            {"DailyIntervalReadSuccessPercentageByCommodityType"},
		"dataFilterCriteria": {"(MeterCommodityType=E)"},
		"startTime":          {start},
		"endTime":            {end},
		"interval":           {"Daily"},
	})
}

// Last7DaysRegisterReadSuccess returns the trailing week of register read
// success for electric meters.
func (c *Client) Last7DaysRegisterReadSuccess(ctx context.Context) (string, error) {
	start, end := c.last7Days()
	return c.kpi(ctx, "Last 7 Days Register Read Success (Electric)", url.Values{
		"kpiName":            {"DailyRegisterReadSuccessPercentageByCommodityType"},
		"dataFilterCriteria": {"(MeterCommodityType=E)"},
		"startTime":          {start},
		"endTime":            {end},
		"interval":           {"Daily"},
	})
}

// IntervalReadSuccessByZone returns interval read success for electric meters
// broken down by zone at the given aggregation interval.
func (c *Client) IntervalReadSuccessByZone(ctx context.Context, interval Interval) (string, error) {
	return c.kpi(ctx,
		fmt.Sprintf("%s Interval Read Success by Zone (Electric)", interval),
		url.Values{
			"kpiName":  {fmt.Sprintf("%sIntervalReadSuccessPercentageByZoneAndCommodityType", interval)},
			"interval": {string(interval)},
		})
}

// RegisterReadSuccessByZone returns register read success for electric meters
// broken down by zone at the given aggregation interval.
func (c *Client) RegisterReadSuccessByZone(ctx context.Context, interval Interval) (string, error) {
	return c.kpi(ctx,
		fmt.Sprintf("%s Register Read Success by Zone (Electric)", interval),
		url.Values{
			"kpiName":  {fmt.Sprintf("%sRegisterReadSuccessPercentageByZoneAndCommodityType", interval)},
			"interval": {string(interval)},
		})
}

// KPISummary composes the key daily and weekly metrics into one report.
func (c *Client) KPISummary(ctx context.Context) (string, error) {
	dailyInterval, err := c.DailyIntervalReadSuccess(ctx)
	if err != nil {
		return "", err
	}
	dailyRegister, err := c.DailyRegisterReadSuccess(ctx)
	if err != nil {
		return "", err
	}
	weeklyInterval, err := c.Last7DaysIntervalReadSuccess(ctx)
	if err != nil {
		return "", err
	}
	weeklyRegister, err := c.Last7DaysRegisterReadSuccess(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`**IRENO KPI Dashboard Summary**

**Today's Performance:**
%s

%s

**7-Day Performance Trends:**
%s

%s

**Additional Analytics Available:**
- Zone-based performance analysis (Daily/Weekly/Monthly)
- Commodity-specific metrics
- Historical trend analysis
- Performance comparison reports

Use specific queries to drill down into zone performance or historical data.`,
		dailyInterval, dailyRegister, weeklyInterval, weeklyRegister), nil
}
