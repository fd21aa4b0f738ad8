package ireno

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Field-probing helpers. The upstream services emit several shapes for the
// same entity, so every lookup tries a list of known field names in order.

func stringField(m map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			switch s := v.(type) {
			case string:
				return s
			case float64:
				return formatNumber(s)
			}
		}
	}
	return fallback
}

func numberField(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := m[key].(float64); ok {
			return v, true
		}
	}
	return 0, false
}

// formatNumber renders a JSON number without a trailing ".0" for integers.
func formatNumber(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

func rawJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// collectorLine renders one collector entry for a listing.
func collectorLine(item any) string {
	m, ok := item.(map[string]any)
	if !ok {
		return fmt.Sprintf("- %v", item)
	}
	id := stringField(m, "Unknown", "collectorId", "id")
	name := stringField(m, "Unnamed", "collectorName", "name", "deviceName")
	location := stringField(m, "Unknown location", "location", "site", "zone")
	return fmt.Sprintf("- %s (ID: %s) at %s", name, id, location)
}

// formatCollectors renders a collector listing response. Accepts both the
// {"collectors": [...], "totalCount": n} envelope and a bare array.
func formatCollectors(data any, status, emptyMessage string) string {
	var (
		list  []any
		count int
	)

	switch d := data.(type) {
	case map[string]any:
		collectors, ok := d["collectors"].([]any)
		if !ok {
			return fmt.Sprintf("%s collectors data: %s", capitalize(status), rawJSON(data))
		}
		list = collectors
		count = len(collectors)
		if total, ok := numberField(d, "totalCount"); ok {
			count = int(total)
		}
	case []any:
		list = d
		count = len(d)
	default:
		return fmt.Sprintf("%s collectors data: %s", capitalize(status), rawJSON(data))
	}

	if count == 0 {
		return emptyMessage
	}

	lines := make([]string, 0, maxListed)
	for _, item := range list {
		if len(lines) == maxListed {
			break
		}
		lines = append(lines, collectorLine(item))
	}

	result := fmt.Sprintf("Found %d %s collectors:\n%s", count, status, strings.Join(lines, "\n"))
	if count > maxListed {
		result += fmt.Sprintf("\n... and %d more %s collectors.", count-maxListed, status)
	}
	return result
}

// formatCount renders the fleet count summary with an optional zone
// breakdown.
func formatCount(data any) string {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Sprintf("Collectors count data: %s", rawJSON(data))
	}

	total, haveTotal := numberField(m, "count", "total")
	online, haveOnline := numberField(m, "online", "onlineCollectorsCount")
	offline, haveOffline := numberField(m, "offline", "offlineCollectorsCount")
	if !haveTotal {
		total = online + offline
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total collectors: %s", formatNumber(total))
	if haveOnline {
		fmt.Fprintf(&sb, "\n- Online: %s", formatNumber(online))
	}
	if haveOffline {
		fmt.Fprintf(&sb, "\n- Offline: %s", formatNumber(offline))
	}
	if haveOnline && total > 0 {
		fmt.Fprintf(&sb, "\n- Online percentage: %s%%", formatNumber(round1(online/total*100)))
	}

	if zones, ok := m["zonewiseCollectorCount"].([]any); ok {
		sb.WriteString("\n\nZone breakdown:")
		for i, zone := range zones {
			if i == maxListed {
				break
			}
			zm, ok := zone.(map[string]any)
			if !ok {
				continue
			}
			name := stringField(zm, "Unknown", "zoneName")
			zoneTotal, _ := numberField(zm, "totalCount")
			zoneOffline, _ := numberField(zm, "offlineCount")
			var percent float64
			if zoneTotal > 0 {
				percent = round1(zoneOffline / zoneTotal * 100)
			}
			fmt.Fprintf(&sb, "\n- %s: %s total (%s offline, %s%%)",
				name, formatNumber(zoneTotal), formatNumber(zoneOffline), formatNumber(percent))
		}
	}

	return sb.String()
}

// formatKPI renders a KPI response under the given title. Handles time
// series, zone breakdowns, single values, and falls back to raw JSON for
// anything unrecognized.
func formatKPI(title string, data any) string {
	m, ok := data.(map[string]any)
	if !ok || len(m) == 0 {
		return fmt.Sprintf("**%s**: No data available", title)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", title)

	switch kpiData := m["data"].(type) {
	case []any:
		if len(kpiData) == 0 {
			return fmt.Sprintf("**%s**: No data available", title)
		}
		sb.WriteString("Recent performance data:\n")
		for i, item := range kpiData {
			if i == maxListed {
				break
			}
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			timestamp := stringField(entry, fmt.Sprintf("Entry %d", i+1), "timestamp", "date", "period")
			value := stringField(entry, "N/A", "value", "percentage", "successRate")
			if zone := stringField(entry, "", "zone", "location", "area"); zone != "" {
				fmt.Fprintf(&sb, "**%s**: %s%% (%s)\n", zone, value, timestamp)
			} else {
				fmt.Fprintf(&sb, "**%s**: %s%%\n", timestamp, value)
			}
		}
		if len(kpiData) > maxListed {
			fmt.Fprintf(&sb, "\n... and %d more data points available", len(kpiData)-maxListed)
		}
	case map[string]any:
		value := stringField(kpiData, "N/A", "value", "percentage", "successRate")
		timestamp := stringField(kpiData, "Current", "timestamp", "date", "period")
		fmt.Fprintf(&sb, "**%s**: %s%%", timestamp, value)
	default:
		if _, ok := m["value"]; ok {
			value := stringField(m, "N/A", "value")
			timestamp := stringField(m, "Current", "timestamp", "date")
			fmt.Fprintf(&sb, "**%s**: %s%%", timestamp, value)
		} else {
			fmt.Fprintf(&sb, "Data received: %s", rawJSON(data))
		}
	}

	return sb.String()
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
