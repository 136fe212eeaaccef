package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/retrolens/internal"
	pkgconfig "github.com/starford/retrolens/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if configPath := cmd.String("config"); configPath != "" {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid default config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithInput(cmd.String("input")),
		internal.WithOutput(cmd.String("output")),
	}
	if cmd.IsSet("quotes") {
		opts = append(opts, internal.WithQuoteCount(int(cmd.Int("quotes"))))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "retrolens",
		Usage:  "Analyze a retrospective board export: color-band scoring, sentiment-ranked quotes, spreadsheet report",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (built-in defaults when omitted)",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Path to the exported notes CSV",
				Required: true,
				Sources:  cli.EnvVars("APP_INPUT_FILE"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path of the report to write (.xlsx or .csv)",
				Value:   "assessment.xlsx",
				Sources: cli.EnvVars("APP_OUTPUT_FILE"),
			},
			&cli.IntFlag{
				Name:    "quotes",
				Aliases: []string{"n"},
				Usage:   "Quotes to keep per polarity for each group",
				Sources: cli.EnvVars("APP_QUOTES"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
