/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

// DB is the pgx-backed implementation of Service.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New dials Postgres, runs migrations, and returns the store.
func New(ctx context.Context, config *models.Database, log logger.Logger) (Service, error) {
	pool, err := NewPool(ctx, config, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if err := RunMigrations(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return &DB{pool: pool, logger: log}, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}
