package main

import (
	"github.com/FlagBrew/local-pokedex/internal/explorer"
	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/apex/log"
	"github.com/lrstanley/chix"
	"github.com/lrstanley/clix"
	"golang.org/x/sync/errgroup"
)

var (
	cli     = &clix.CLI[models.Flags]{}
	logger  log.Interface
	cfg     *models.Config
	client  *pokeapi.Client
	session *explorer.Session
	app     *gui.Explorer
)

func main() {
	ctx, cancel := setup()
	defer cancel()
	defer session.Close()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Starting HTTP server on %s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port)
		return chix.RunContext(ctx, httpServer(ctx))
	})

	if app != nil {
		g.Go(func() error {
			// Closing the terminal explorer shuts everything down.
			defer cancel()
			return app.Start()
		})
		go func() {
			<-ctx.Done()
			app.Stop()
		}()
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("shutting down")
	}
}
