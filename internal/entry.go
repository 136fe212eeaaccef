// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/retrolens/internal/analyzer"
	"github.com/starford/retrolens/internal/cluster"
	"github.com/starford/retrolens/internal/loader"
	"github.com/starford/retrolens/internal/models"
	"github.com/starford/retrolens/internal/report"
	"github.com/starford/retrolens/internal/sentiment"
)

// Run executes the pipeline with the given options: load the export, group
// notes, score each group, write the report. One shot, no state kept.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.input == "" {
		return fmt.Errorf("input path is required")
	}
	if app.output == "" {
		app.output = "assessment.xlsx"
	}

	cfg := app.config
	quotes := cfg.Quotes.PerPolarity
	if app.quotes != nil {
		quotes = *app.quotes
	}

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("input", app.input),
		slog.String("output", app.output),
		slog.Int("quotes_per_polarity", quotes),
		slog.String("log_level", cfg.App.LogLevel.String()))

	res, err := loader.Load(app.input, cfg.Input.Columns.Columns())
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	if res.Skipped > 0 {
		logger.Warn("Skipped malformed rows", slog.Int("count", res.Skipped))
	}
	logger.Info("Export loaded", slog.Int("notes", len(res.Notes)))

	unmapped := 0
	for _, n := range res.Notes {
		if !cfg.Palette.Known(n.Color) && !cfg.Palette.IsLabel(n.Color) {
			unmapped++
		}
	}
	if unmapped > 0 {
		logger.Warn("Notes with colors outside the palette treated as neutral",
			slog.Int("count", unmapped))
	}

	var groups []models.Group
	if res.HasTeamTopic {
		groups = analyzer.GroupByTeamTopic(res.Notes)
	} else {
		logger.Info("No team/topic columns, grouping by sticky position")
		groups = cluster.Assign(res.Notes, cluster.Labels{
			Team:  cfg.Palette.TeamLabel,
			Topic: cfg.Palette.TopicLabel,
		})
		for _, g := range groups {
			if g.Synthetic {
				logger.Warn("Group without team and topic labels",
					slog.String("group", g.Team),
					slog.Int("notes", len(g.Notes)))
			}
		}
	}

	scorer := app.scorer
	if scorer == nil {
		scorer = sentiment.NewVader()
	}

	summaries := analyzer.SummarizeAll(groups, &cfg.Palette, scorer, quotes)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := report.Write(app.output, summaries); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("Report written",
		slog.String("path", app.output),
		slog.Int("groups", len(summaries)),
		slog.Int("notes", len(res.Notes)))

	return nil
}
