package ireno

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/tmc/langchaingo/llms"
)

// Toolset exposes the IRENO API catalog as function-calling tools. Every
// tool takes no arguments and returns a formatted text summary; API failures
// are converted into friendly guidance rather than surfaced as errors, so
// the model always has something to relay to the user.
type Toolset struct {
	client *Client
	specs  []toolSpec
}

type toolSpec struct {
	tool     llms.Tool
	run      func(ctx context.Context) (string, error)
	fallback func(err error) string
}

// noArgsSchema is the parameter schema shared by every tool.
var noArgsSchema = map[string]any{
	"type":       "object",
	"properties": map[string]any{},
}

// NewToolset builds the tool catalog around an IRENO client.
func NewToolset(client *Client) *Toolset {
	ts := &Toolset{client: client}

	add := func(name, description string, run func(ctx context.Context) (string, error), fallback func(err error) string) {
		ts.specs = append(ts.specs, toolSpec{
			tool: llms.Tool{
				Type: "function",
				Function: &llms.FunctionDefinition{
					Name:        name,
					Description: description,
					Parameters:  noArgsSchema,
				},
			},
			run:      run,
			fallback: fallback,
		})
	}

	add("get_offline_collectors",
		"Fetch information about offline collectors. Use this when users ask about offline collectors, down devices, or disconnected equipment.",
		client.OfflineCollectors,
		func(err error) string {
			return collectorFallback(err,
				"The IRENO API is taking longer than usual to respond. Based on typical patterns, offline collectors are usually in the 10-15% range. Please try again in a moment or check the IRENO dashboard directly.",
				"Unable to connect to IRENO systems at the moment. For offline collectors information, please check the IRENO web dashboard or contact the operations center.")
		})

	add("get_online_collectors",
		"Fetch information about online collectors. Use this when users ask about online collectors, active devices, or connected equipment.",
		client.OnlineCollectors,
		func(err error) string {
			return collectorFallback(err,
				"The IRENO API is taking longer than usual to respond. Please try again in a moment or check the IRENO dashboard directly.",
				"Unable to connect to IRENO systems at the moment. For online collectors information, please check the IRENO web dashboard or contact the operations center.")
		})

	add("get_collectors_count",
		"Fetch the total count of collectors with online/offline and zone breakdowns. Use this when users ask about the total number of collectors, device counts, or overall system size.",
		client.CollectorsCount,
		func(err error) string {
			return collectorFallback(err,
				"The IRENO API is taking longer than usual to respond. Typically, the system manages around 165 collectors total. Please try again in a moment.",
				"Unable to connect to IRENO systems. For collector count information, please check the IRENO web dashboard or contact the operations center.")
		})

	addKPI := func(name, description, subject string, run func(ctx context.Context) (string, error)) {
		add(name, description, run, func(err error) string {
			return fmt.Sprintf("Unable to fetch %s: %v", subject, err)
		})
	}

	addKPI("get_daily_interval_read_success_percentage",
		"Get the daily interval read success percentage for all meters. Use this when users ask about daily performance, interval reads, or success rates.",
		"daily interval read success percentage",
		client.DailyIntervalReadSuccess)

	addKPI("get_daily_register_read_success_percentage",
		"Get the daily register read success percentage for all meters. Use this when users ask about register reads, daily performance, or meter reading success.",
		"daily register read success percentage",
		client.DailyRegisterReadSuccess)

	addKPI("get_last_7_days_interval_read_success",
		"Get the last 7 days of interval read success for electric meters. Use this when users ask about weekly trends, 7-day performance, or recent interval read performance.",
		"last 7 days interval read success",
		client.Last7DaysIntervalReadSuccess)

	addKPI("get_last_7_days_register_read_success",
		"Get the last 7 days of register read success for electric meters. Use this when users ask about weekly register performance, 7-day trends, or recent register read success.",
		"last 7 days register read success",
		client.Last7DaysRegisterReadSuccess)

	zoneKPI := func(name, kind string, interval Interval, run func(context.Context, Interval) (string, error)) {
		addKPI(name,
			fmt.Sprintf("Get the %s %s read success percentage by zone for electric meters. Use this when users ask about zone performance or area-specific %s reads.",
				interval, kind, kind),
			fmt.Sprintf("%s %s read success by zone", interval, kind),
			func(ctx context.Context) (string, error) { return run(ctx, interval) })
	}

	zoneKPI("get_interval_read_success_by_zone_daily", "interval", Daily, client.IntervalReadSuccessByZone)
	zoneKPI("get_interval_read_success_by_zone_weekly", "interval", Weekly, client.IntervalReadSuccessByZone)
	zoneKPI("get_interval_read_success_by_zone_monthly", "interval", Monthly, client.IntervalReadSuccessByZone)
	zoneKPI("get_register_read_success_by_zone_daily", "register", Daily, client.RegisterReadSuccessByZone)
	zoneKPI("get_register_read_success_by_zone_weekly", "register", Weekly, client.RegisterReadSuccessByZone)
	zoneKPI("get_register_read_success_by_zone_monthly", "register", Monthly, client.RegisterReadSuccessByZone)

	return ts
}

// Tools returns the tool definitions for attaching to a model call.
func (ts *Toolset) Tools() []llms.Tool {
	tools := make([]llms.Tool, len(ts.specs))
	for i, spec := range ts.specs {
		tools[i] = spec.tool
	}
	return tools
}

// Call dispatches a tool invocation by name. API failures produce a friendly
// message, not an error; the only error returned is ErrUnknownTool.
func (ts *Toolset) Call(ctx context.Context, name string) (string, error) {
	for _, spec := range ts.specs {
		if spec.tool.Function.Name != name {
			continue
		}
		result, err := spec.run(ctx)
		if err != nil {
			ts.client.logger.Error("tool call failed", "tool", name, "err", err)
			return spec.fallback(err), nil
		}
		return result, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

// collectorFallback picks a friendly message for a failed collector API call.
func collectorFallback(err error, timeoutMsg, connectMsg string) string {
	if errors.Is(err, ErrAPIStatus) {
		return "The IRENO API returned an error. Please verify your access permissions or try again later."
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return timeoutMsg
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutMsg
	}
	return connectMsg
}
