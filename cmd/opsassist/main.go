// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/poiesic/opsassist"
	"github.com/poiesic/opsassist/ai"
	"github.com/poiesic/opsassist/ireno"
	"github.com/poiesic/opsassist/search"
	"github.com/poiesic/opsassist/server"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	app := &cli.App{
		Name:  "opsassist",
		Usage: "Utility operations assistant with SOP search and IRENO fleet monitoring",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"OPSASSIST_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the assistant HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "Listen address",
						Value:   ":8080",
						EnvVars: []string{"OPSASSIST_ADDR"},
					},
					&cli.StringFlag{
						Name:    "responder",
						Usage:   "Chat responder to use (rules, model)",
						Value:   "rules",
						EnvVars: []string{"OPSASSIST_RESPONDER"},
					},
					modelHostFlag(), modelFlag(), tokenFlag(),
					irenoURLFlag(), irenoKPIURLFlag(),
				},
			},
			{
				Name:      "ingest",
				Usage:     "Load SOP documents into the store",
				ArgsUsage: "<file-or-directory>",
				Action:    ingestCommand,
				Flags:     []cli.Flag{dbFlag()},
			},
			{
				Name:      "search",
				Usage:     "Search the ingested SOP corpus",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of results",
						Value: 15,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum score for a result to be returned",
						Value: 0.1,
					},
					&cli.BoolFlag{
						Name:  "highlights",
						Usage: "Return highlighted results as JSON",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Log every search stage (tokens, sections, hits, ranking)",
					},
				},
			},
			{
				Name:   "chat",
				Usage:  "Interactive chat session on the terminal",
				Action: chatCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:    "responder",
						Usage:   "Chat responder to use (rules, model)",
						Value:   "rules",
						EnvVars: []string{"OPSASSIST_RESPONDER"},
					},
					modelHostFlag(), modelFlag(), tokenFlag(),
					irenoURLFlag(), irenoKPIURLFlag(),
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to the document store directory",
		Value:   "./opsassist_db",
		EnvVars: []string{"OPSASSIST_DB"},
	}
}

func modelHostFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "model-host",
		Usage:   "OpenAI-compatible chat endpoint",
		Value:   "http://localhost:11434/v1",
		EnvVars: []string{"OPSASSIST_MODEL_HOST"},
	}
}

func modelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "model",
		Usage:   "Chat model name",
		Value:   "qwen2.5:3b",
		EnvVars: []string{"OPSASSIST_MODEL"},
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "token",
		Usage:   "API token for the chat endpoint",
		Value:   "none",
		EnvVars: []string{"OPSASSIST_TOKEN"},
	}
}

func irenoURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "ireno-url",
		Usage:   "IRENO device management base URL",
		EnvVars: []string{"OPSASSIST_IRENO_URL"},
	}
}

func irenoKPIURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "ireno-kpi-url",
		Usage:   "IRENO KPI management base URL",
		EnvVars: []string{"OPSASSIST_IRENO_KPI_URL"},
	}
}

func irenoOptions(c *cli.Context) []ireno.Option {
	var opts []ireno.Option
	if url := c.String("ireno-url"); url != "" {
		opts = append(opts, ireno.WithBaseURL(url))
	}
	if url := c.String("ireno-kpi-url"); url != "" {
		opts = append(opts, ireno.WithKPIBaseURL(url))
	}
	return opts
}

func newResponder(c *cli.Context, assistant *opsassist.Assistant) (ai.Responder, error) {
	switch c.String("responder") {
	case "model":
		config := ai.NewConfig(
			ai.WithHost(c.String("model-host")),
			ai.WithModel(c.String("model")),
			ai.WithToken(c.String("token")),
		)
		return assistant.NewModelResponder(config)
	case "rules":
		return assistant.NewRuleResponder(), nil
	default:
		return nil, fmt.Errorf("invalid responder %q: must be rules or model", c.String("responder"))
	}
}

func serveCommand(c *cli.Context) error {
	assistant, err := opsassist.NewAssistant(c.String("db"),
		opsassist.WithIrenoOptions(irenoOptions(c)...))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer assistant.Close()

	responder, err := newResponder(c, assistant)
	if err != nil {
		return err
	}

	srv := server.NewServer(responder, assistant.Loader(), assistant.IrenoClient(),
		server.WithAddr(c.String("addr")))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func ingestCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("a file or directory path is required")
	}

	assistant, err := opsassist.NewAssistant(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer assistant.Close()

	ctx := context.Background()

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		docs, err := assistant.Loader().IngestDir(ctx, path)
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Ingested %d documents from %s\n", len(docs), path)
		return nil
	}

	doc, err := assistant.Loader().IngestFile(ctx, path)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Ingested %s (%d bytes)\n", doc.Name, doc.Size)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a search query is required")
	}

	assistant, err := opsassist.NewAssistant(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer assistant.Close()

	corpusText, err := assistant.Loader().Assemble(context.Background())
	if err != nil {
		return fmt.Errorf("failed to assemble corpus: %w", err)
	}

	engine := assistant.NewEngine(
		search.WithMaxResults(c.Int("max-results")),
		search.WithMinScore(c.Float64("min-score")),
	)

	if c.Bool("explain") {
		results := engine.SearchWithMonitor(query, corpusText, nil, search.NewLogMonitor(slog.Default()))
		for _, hit := range results {
			fmt.Printf("[%s] (%.3f) %s\n\n", hit.FileSource, hit.Score, hit.Snippet)
		}
		return nil
	}

	if c.Bool("highlights") {
		results := engine.SearchWithHighlights(query, corpusText, c.Int("max-results"))
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	for _, snippet := range engine.KeywordSearch(query, corpusText) {
		fmt.Println(snippet)
		fmt.Println()
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	assistant, err := opsassist.NewAssistant(c.String("db"),
		opsassist.WithIrenoOptions(irenoOptions(c)...))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer assistant.Close()

	responder, err := newResponder(c, assistant)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			fmt.Print("> ")
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := responder.Respond(ctx, question)
		if err != nil {
			slog.Error("responder failed", "err", err)
			fmt.Println("Sorry, something went wrong. Try again.")
		} else {
			fmt.Println(answer)
		}
		fmt.Println()
		fmt.Print("> ")
	}
	return scanner.Err()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
