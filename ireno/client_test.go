package ireno

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a stub server for both API families.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		WithBaseURL(srv.URL+"/devicemgmt/v1/collector"),
		WithKPIBaseURL(srv.URL+"/kpimgmt/v1/kpi"),
	)
}

func jsonHandler(t *testing.T, wantPath string, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func TestOfflineCollectors(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the collector envelope", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "offline", r.URL.Query().Get("status"))
			w.Write([]byte(`{"totalCount": 7, "collectors": [
				{"collectorId": "C-101", "collectorName": "Substation A", "location": "Brooklyn"},
				{"id": "C-102", "deviceName": "Substation B", "zone": "Queens"}
			]}`))
		}))

		got, err := c.OfflineCollectors(ctx)
		require.NoError(t, err)
		assert.Equal(t,
			"Found 7 offline collectors:\n"+
				"- Substation A (ID: C-101) at Brooklyn\n"+
				"- Substation B (ID: C-102) at Queens\n"+
				"... and 2 more offline collectors.",
			got)
	})

	t.Run("reports all online when the list is empty", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(t, "/devicemgmt/v1/collector", `{"totalCount": 0, "collectors": []}`))
		got, err := c.OfflineCollectors(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Good news! All collectors are currently online. No offline devices detected.", got)
	})

	t.Run("accepts a bare array", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(t, "/devicemgmt/v1/collector",
			`[{"collectorId": "C-1", "name": "Feeder 1", "site": "Manhattan"}]`))
		got, err := c.OfflineCollectors(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Found 1 offline collectors:\n- Feeder 1 (ID: C-1) at Manhattan", got)
	})

	t.Run("surfaces HTTP errors", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		_, err := c.OfflineCollectors(ctx)
		assert.ErrorIs(t, err, ErrAPIStatus)
	})
}

func TestCollectorsCount(t *testing.T) {
	c := newTestClient(t, jsonHandler(t, "/devicemgmt/v1/collector/count", `{
		"onlineCollectorsCount": 391,
		"offlineCollectorsCount": 24,
		"zonewiseCollectorCount": [
			{"zoneName": "Brooklyn", "totalCount": 95, "onlineCount": 87, "offlineCount": 8}
		]
	}`))

	got, err := c.CollectorsCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		"Total collectors: 415\n"+
			"- Online: 391\n"+
			"- Offline: 24\n"+
			"- Online percentage: 94.2%\n\n"+
			"Zone breakdown:\n"+
			"- Brooklyn: 95 total (8 offline, 8.4%)",
		got)
}

func TestKPIQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("formats a time series", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/kpimgmt/v1/kpi", r.URL.Path)
			assert.Equal(t, "DailyIntervalReadSuccessPercentage", r.URL.Query().Get("kpiName"))
			assert.Equal(t, "Daily", r.URL.Query().Get("interval"))
			w.Write([]byte(`{"data": [
				{"date": "08-27-2026", "value": 98.4},
				{"date": "08-26-2026", "percentage": 97.1}
			]}`))
		}))

		got, err := c.DailyIntervalReadSuccess(ctx)
		require.NoError(t, err)
		assert.Equal(t,
			"**Daily Interval Read Success Percentage**\n\n"+
				"Recent performance data:\n"+
				"**08-27-2026**: 98.4%\n"+
				"**08-26-2026**: 97.1%\n",
			got)
	})

	t.Run("formats zone entries", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "WeeklyIntervalReadSuccessPercentageByZoneAndCommodityType", r.URL.Query().Get("kpiName"))
			assert.Equal(t, "Weekly", r.URL.Query().Get("interval"))
			w.Write([]byte(`{"data": [{"zone": "Queens", "value": 96.5, "period": "W34"}]}`))
		}))

		got, err := c.IntervalReadSuccessByZone(ctx, Weekly)
		require.NoError(t, err)
		assert.Equal(t,
			"**Weekly Interval Read Success by Zone (Electric)**\n\n"+
				"Recent performance data:\n"+
				"**Queens**: 96.5% (W34)\n",
			got)
	})

	t.Run("sends a trailing week range", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "DailyIntervalReadSuccessPercentageByCommodityType", q.Get("kpiName"))
			assert.Equal(t, "(MeterCommodityType=E)", q.Get("dataFilterCriteria"))
			assert.NotEmpty(t, q.Get("startTime"))
			assert.NotEmpty(t, q.Get("endTime"))
			w.Write([]byte(`{"data": {"value": 97.9, "date": "last 7 days"}}`))
		}))

		got, err := c.Last7DaysIntervalReadSuccess(ctx)
		require.NoError(t, err)
		assert.Equal(t,
			"**Last 7 Days Interval Read Success (Electric)**\n\n**last 7 days**: 97.9%",
			got)
	})

	t.Run("empty payload reports no data", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(t, "/kpimgmt/v1/kpi", `{}`))
		got, err := c.DailyRegisterReadSuccess(ctx)
		require.NoError(t, err)
		assert.Equal(t, "**Daily Register Read Success Percentage**: No data available", got)
	})
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a typed snapshot", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(t, "/devicemgmt/v1/collector/count", `{
			"onlineCollectorsCount": 391,
			"offlineCollectorsCount": 24,
			"zonewiseCollectorCount": [
				{"zoneName": "Brooklyn", "totalCount": 95, "offlineCount": 8}
			]
		}`))

		snap, err := c.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 415, snap.Total)
		assert.Equal(t, 391, snap.Online)
		assert.Equal(t, 24, snap.Offline)
		assert.Equal(t, 94.2, snap.Uptime)
		require.Len(t, snap.Zones, 1)
		assert.Equal(t, ZoneStatus{Name: "Brooklyn", Total: 95, Offline: 8, Percentage: 8.4}, snap.Zones[0])
	})

	t.Run("rejects payloads with no totals", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(t, "/devicemgmt/v1/collector/count", `{"irrelevant": true}`))
		_, err := c.Snapshot(ctx)
		assert.ErrorIs(t, err, ErrBadResponse)
	})
}

func TestMockSnapshot(t *testing.T) {
	snap := MockSnapshot()
	assert.Equal(t, 415, snap.Total)
	assert.Len(t, snap.Zones, 5)

	offline := 0
	for _, z := range snap.Zones {
		offline += z.Offline
	}
	assert.Equal(t, snap.Offline, offline)
}

func TestToolset(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog covers the API surface", func(t *testing.T) {
		ts := NewToolset(NewClient())
		tools := ts.Tools()
		assert.Len(t, tools, 13)
		for _, tool := range tools {
			assert.Equal(t, "function", tool.Type)
			assert.NotEmpty(t, tool.Function.Name)
			assert.NotEmpty(t, tool.Function.Description)
		}
	})

	t.Run("dispatches by name", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(t, "/devicemgmt/v1/collector", `{"totalCount": 0, "collectors": []}`))
		ts := NewToolset(c)

		got, err := ts.Call(ctx, "get_offline_collectors")
		require.NoError(t, err)
		assert.Contains(t, got, "All collectors are currently online")
	})

	t.Run("unknown tool", func(t *testing.T) {
		ts := NewToolset(NewClient())
		_, err := ts.Call(ctx, "get_weather")
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("API failure yields friendly guidance", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		ts := NewToolset(c)

		got, err := ts.Call(ctx, "get_collectors_count")
		require.NoError(t, err)
		assert.Contains(t, got, "verify your access permissions")
	})
}
