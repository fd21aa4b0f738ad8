package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	newApp := func(level string) *cli.App {
		return &cli.App{
			Name: "opsassist",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: level,
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("accepts valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
			err := newApp(level).Run([]string{"opsassist"})
			assert.NoError(t, err, "level %s", level)
		}
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		err := newApp("verbose").Run([]string{"opsassist"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("sets the default logger level", func(t *testing.T) {
		err := newApp("error").Run([]string{"opsassist"})
		require.NoError(t, err)
		assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	})
}

func TestSearchCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "opsassist",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{Name: "max-results", Value: 15},
					&cli.BoolFlag{Name: "highlights"},
				},
			},
		},
	}

	err := app.Run([]string{"opsassist", "search"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search query is required")
}

func TestIngestCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "opsassist",
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Action: ingestCommand,
				Flags:  []cli.Flag{dbFlag()},
			},
		},
	}

	err := app.Run([]string{"opsassist", "ingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file or directory path is required")
}
