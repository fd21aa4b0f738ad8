package ireno

import "context"

// ZoneStatus is the collector fleet state for one service zone.
type ZoneStatus struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Offline    int     `json:"offline"`
	Percentage float64 `json:"percentage"`
}

// StatusSnapshot is a typed view of the collector fleet, used by the
// rule-based responder and the charts endpoint.
type StatusSnapshot struct {
	Total   int          `json:"total_collectors"`
	Online  int          `json:"online_collectors"`
	Offline int          `json:"offline_collectors"`
	Uptime  float64      `json:"uptime_percentage"`
	Zones   []ZoneStatus `json:"zones"`
}

// Snapshot fetches the collector count endpoint and decodes it into a typed
// snapshot. Returns an error when the API is unreachable or the response
// carries no usable totals; callers typically fall back to MockSnapshot.
func (c *Client) Snapshot(ctx context.Context) (*StatusSnapshot, error) {
	data, err := c.getJSON(ctx, c.baseURL+"/count", nil)
	if err != nil {
		return nil, err
	}

	m, ok := data.(map[string]any)
	if !ok {
		return nil, ErrBadResponse
	}

	snap := &StatusSnapshot{}
	total, haveTotal := numberField(m, "count", "total")
	online, _ := numberField(m, "online", "onlineCollectorsCount")
	offline, _ := numberField(m, "offline", "offlineCollectorsCount")
	if !haveTotal {
		total = online + offline
	}
	if total <= 0 {
		return nil, ErrBadResponse
	}

	snap.Total = int(total)
	snap.Online = int(online)
	snap.Offline = int(offline)
	snap.Uptime = round1(online / total * 100)

	if zones, ok := m["zonewiseCollectorCount"].([]any); ok {
		for _, zone := range zones {
			zm, ok := zone.(map[string]any)
			if !ok {
				continue
			}
			zoneTotal, _ := numberField(zm, "totalCount")
			zoneOffline, _ := numberField(zm, "offlineCount")
			var percent float64
			if zoneTotal > 0 {
				percent = round1(zoneOffline / zoneTotal * 100)
			}
			snap.Zones = append(snap.Zones, ZoneStatus{
				Name:       stringField(zm, "Unknown", "zoneName"),
				Total:      int(zoneTotal),
				Offline:    int(zoneOffline),
				Percentage: percent,
			})
		}
	}

	return snap, nil
}

// MockSnapshot returns representative fleet data for use when the live API
// is unavailable.
func MockSnapshot() *StatusSnapshot {
	return &StatusSnapshot{
		Total:   415,
		Online:  391,
		Offline: 24,
		Uptime:  94.2,
		Zones: []ZoneStatus{
			{Name: "Brooklyn", Total: 95, Offline: 8, Percentage: 8.4},
			{Name: "Queens", Total: 88, Offline: 7, Percentage: 8.0},
			{Name: "Westchester", Total: 83, Offline: 5, Percentage: 6.0},
			{Name: "StatenIsland", Total: 72, Offline: 3, Percentage: 4.2},
			{Name: "Manhattan", Total: 77, Offline: 1, Percentage: 1.3},
		},
	}
}
