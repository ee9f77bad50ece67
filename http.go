package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/handlers/pokedex"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/lrstanley/chix"
)

func httpServer(ctx context.Context) *http.Server {
	chix.DefaultAPIPrefix = "/api/"

	r := chi.NewRouter()

	r.Use(
		chix.UseContextIP,
		middleware.RequestID,
		chix.UseStructuredLogger(logger),
		chix.UseDebug(cli.Debug),
		chix.UseRecoverer,
		middleware.Compress(5),
		middleware.Maybe(middleware.StripSlashes, func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/debug/")
		}),
		chix.UseNextURL,
	)

	if cli.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	handler := pokedex.NewHandler(session, client, session.Profile())

	r.Get("/", handler.Page)
	r.Route("/api/v1", func(r chi.Router) {
		// Every API hit may turn into an upstream request.
		r.Use(httprate.LimitByIP(120, time.Minute))
		handler.Route(r)
	})

	return &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTP.ListeningAddr, fmt.Sprint(cfg.HTTP.Port)),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		// Some sane defaults.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
