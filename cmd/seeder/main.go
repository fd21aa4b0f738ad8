package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/opsassist"
	"github.com/poiesic/opsassist/core"
)

// Built-in sample SOPs for demos and local testing. Real deployments ingest
// their own document directory with -src.
var sampleDocuments = map[string]string{
	"power_outage_procedures.md": `# Power Outage Response Procedures

## Immediate Actions

When a power outage is detected, notify the operations center immediately.
Verify the outage scope using the collector status dashboard before
dispatching field crews.

Check affected collectors in the outage zone and record their last
communication timestamps. Collectors that stay silent for more than four
hours must be escalated to the network operations team.

## Communication Protocol

Contact the operations center on the primary radio channel. If the primary
channel is unavailable, use the backup satellite phone stored in each
service vehicle.

Log every customer-facing update in the incident tracker with a timestamp
and the name of the operator who issued it.

## Restoration

Restore feeders in priority order: hospitals, water treatment, traffic
control, then residential zones. Confirm collector communication recovers
within fifteen minutes of each feeder restoration.
`,

	"transformer_maintenance.md": `# Transformer Maintenance Guide

## Routine Inspection

Perform a visual transformer inspection every ninety days. Check for oil
leaks, corrosion on the tank and radiator fins, and vegetation growing
within the clearance zone.

Record oil temperature and load readings at the start and end of each
inspection. Readings above the nameplate rating require a follow-up
thermographic scan within one week.

## Oil Sampling

Draw oil samples only after the transformer has been offline for thirty
minutes. Label each sample with the transformer identifier, date, and
sampling technician.

## Emergency Procedures

If a transformer alarm indicates internal pressure buildup, de-energize the
unit remotely and keep all personnel at least fifty meters away until the
pressure normalizes.
`,

	"collector_troubleshooting.md": `# Collector Troubleshooting

## Offline Collector Checklist

First, verify the collector has mains power at the meter cabinet. Second,
check the cellular signal indicator; fewer than two bars usually explains
intermittent communication.

Restart the collector with the service switch and wait five minutes for it
to re-register. If the collector stays offline, open a field service ticket
with the zone, collector identifier, and the steps already attempted.

## Zone-Wide Outages

A whole zone going offline at once points to a head-end or backhaul
problem, not the collectors. Escalate directly to network operations and do
not dispatch field crews until they confirm the backhaul is healthy.
`,
}

var (
	dbPath  = flag.String("db", "./opsassist_db", "path to the document store directory")
	srcPath = flag.String("src", "", "directory of SOP documents to ingest instead of the built-in samples")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	assistant, err := opsassist.NewAssistant(*dbPath)
	if err != nil {
		slog.Error("failed to open document store", "err", err)
		os.Exit(1)
	}
	defer assistant.Close()

	ctx := context.Background()

	if *srcPath != "" {
		docs, err := assistant.Loader().IngestDir(ctx, *srcPath)
		if err != nil {
			slog.Error("ingestion failed", "src", *srcPath, "err", err)
			os.Exit(1)
		}
		slog.Info("seeded document store", "source", *srcPath, "documents", len(docs))
		return
	}

	docs := make([]*core.Document, 0, len(sampleDocuments))
	for name, content := range sampleDocuments {
		docs = append(docs, core.NewDocument(name, content))
	}

	stored, err := assistant.DocumentRepository().PutDocuments(ctx, docs...)
	if err != nil {
		slog.Error("seeding failed", "err", err)
		os.Exit(1)
	}
	slog.Info("seeded document store", "source", "built-in samples", "documents", len(stored))
}
