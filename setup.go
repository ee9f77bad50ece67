package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/explorer"
	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/FlagBrew/local-pokedex/internal/utils"
	"github.com/apex/log"
)

func setup() (context.Context, context.CancelFunc) {
	cli.Parse()
	logger = cli.Logger

	ctx, cancel := context.WithCancel(context.Background())
	ctx = log.NewContext(ctx, logger)
	cfg = utils.Setup(ctx, cli.Flags.Mode, cli.Flags.Config)

	var output io.Writer
	if cfg.FancyScreen {
		if cli.Flags.Mode == "docker" {
			logger.Warn("fancy screen is not available in docker mode, falling back to plain logs")
		} else {
			app = gui.NewExplorer()
			output = app.GetLogOutput()
		}
	}
	if output == nil && cfg.LogLevel != "" {
		output = os.Stderr
	}

	if output != nil {
		cli.Logger = utils.NewLogger(cfg.LogLevel, cli.Debug, output)
		logger = cli.Logger
		ctx = log.NewContext(ctx, logger)
	}

	client = pokeapi.NewClient(
		logger,
		pokeapi.WithBaseURL(cfg.Explorer.BaseURL),
		pokeapi.WithTimeout(time.Duration(cfg.Explorer.TimeoutSeconds)*time.Second),
	)

	profile := cfg.Explorer.ResolvedProfile()
	logger.WithFields(log.Fields{
		"profile": profile.Name,
		"limit":   profile.CatalogLimit,
	}).Info("starting explorer")

	session = explorer.NewSession(ctx, client, profile)
	session.LoadCatalog()

	if app != nil {
		app.Bind(session)
	}

	return ctx, cancel
}
