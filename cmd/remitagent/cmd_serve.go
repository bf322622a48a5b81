// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"github.com/corridorlabs/remitagent/services/transfer"
	"github.com/corridorlabs/remitagent/services/transfer/catalog"
	"github.com/corridorlabs/remitagent/services/transfer/collect"
	"github.com/corridorlabs/remitagent/services/transfer/state"
	"github.com/corridorlabs/remitagent/services/transfer/tools"
)

var (
	serveAddr   string
	serveTraces bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transfer collection HTTP service",
	RunE:  runServeCommand,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&serveTraces, "traces", false, "export OpenTelemetry spans to stdout")
	rootCmd.AddCommand(serveCmd)
}

// setupTracing installs a stdout span exporter when --traces is set and
// returns its shutdown function.
func setupTracing() (func(context.Context) error, error) {
	if !serveTraces {
		return func(context.Context) error { return nil }, nil
	}
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func runServeCommand(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	slog.SetDefault(logger)

	shutdownTracing, err := setupTracing()
	if err != nil {
		return err
	}

	collector := collect.New(catalog.Default(), logger)
	sessions := state.NewSessionManager()
	registry, err := tools.DefaultRegistry(collector, sessions)
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}

	handlers := transfer.NewHandlers(collector, sessions, registry, logger)
	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           transfer.NewRouter(handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("transfer service listening", "addr", serveAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return shutdownTracing(shutdownCtx)
	})

	return g.Wait()
}
