package generate

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cartoforge/mapidx/models"
	"github.com/cartoforge/mapidx/pkg/indexer"
)

// GenerateAction runs the index-feature generation tool. Exit codes: 0 on
// success, 1 for blocked-run validation errors, 2 for fatal runtime errors
// (which may leave a partially populated feature class behind).
func GenerateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	params := indexer.Params{
		ProjectPath: c.String("project"),
		Layout:      c.String("layout"),
		Output:      c.String("output"),
		Table:       c.String("table"),
		AddToMap:    c.Bool("add-to-map"),
	}

	result, err := indexer.Generate(params, cfg, os.Stdout)
	if err != nil {
		if indexer.IsValidation(err) {
			return cli.Exit("Error: "+err.Error(), 1)
		}
		logger.Error("generation failed", "error", err,
			"layout", params.Layout, "output", params.Output)
		return cli.Exit(err.Error(), 2)
	}

	logger.Info("generation complete",
		"pages", result.Pages, "table", result.Table, "added_to_map", result.Added)
	return nil
}
