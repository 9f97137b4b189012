/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package app boots the FleetWatch core service.
package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/carverauto/fleetwatch/pkg/config"
	"github.com/carverauto/fleetwatch/pkg/core"
	"github.com/carverauto/fleetwatch/pkg/core/api"
	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
	"github.com/carverauto/fleetwatch/pkg/version"
)

const shutdownTimeout = 10 * time.Second

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the core service and blocks until shutdown.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg models.CoreServiceConfig

	bootstrapLogger, err := logger.New(logger.DefaultConfig(), "core")
	if err != nil {
		return err
	}

	if err := config.NewConfig(bootstrapLogger).LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return err
	}

	mainLogger := bootstrapLogger
	if cfg.Logging != nil {
		mainLogger, err = logger.New(cfg.Logging, "core")
		if err != nil {
			return err
		}
	}

	mainLogger.Info().
		Str("version", version.GetFullVersion()).
		Str("listen_addr", cfg.ListenAddr).
		Msg("Starting FleetWatch core")

	database, err := db.New(ctx, cfg.Database, mainLogger)
	if err != nil {
		return err
	}
	defer database.Close()

	coreServer := core.NewServer(database, &cfg, core.WithLogger(mainLogger))

	go coreServer.MonitorDevices(ctx)

	apiServer := api.NewAPIServer(coreServer,
		api.WithLogger(mainLogger),
		api.WithCORSConfig(cfg.CORS),
	)

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- apiServer.Start(cfg.ListenAddr)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	mainLogger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return apiServer.Shutdown(shutdownCtx)
}
