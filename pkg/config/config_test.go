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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetwatch/pkg/logger"
	"github.com/carverauto/fleetwatch/pkg/models"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidateFromFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeTempConfig(t, `{
		"listen_addr": ":9001",
		"database": {"host": "db.internal", "port": 5432, "database": "fleetwatch", "username": "fw", "password": "secret"},
		"stale_threshold": "5m",
		"sweep_interval": "1m",
		"cors": {"allowed_origins": ["*"]}
	}`)

	var cfg models.CoreServiceConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg)
	require.NoError(t, err)

	assert.Equal(t, ":9001", cfg.ListenAddr)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5*time.Minute, time.Duration(cfg.StaleThreshold))
	assert.Equal(t, time.Minute, time.Duration(cfg.SweepInterval))
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadAndValidateRejectsInvalidConfig(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	// No database section: Validate must fail.
	path := writeTempConfig(t, `{"listen_addr": ":9001"}`)

	var cfg models.CoreServiceConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg)
	require.Error(t, err)
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	var cfg models.CoreServiceConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(),
		filepath.Join(t.TempDir(), "missing.json"), &cfg)
	require.Error(t, err)
}

func TestLoadAndValidateUnknownSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "consul")

	var cfg models.CoreServiceConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "ignored", &cfg)
	require.ErrorIs(t, err, errInvalidConfigSource)
}

func TestEnvConfigLoaderScalarsAndNesting(t *testing.T) {
	t.Setenv("FLEETWATCH_LISTEN_ADDR", ":7070")
	t.Setenv("FLEETWATCH_DATABASE_HOST", "pg.internal")
	t.Setenv("FLEETWATCH_DATABASE_PORT", "5433")
	t.Setenv("FLEETWATCH_DATABASE_MAX_CONNECTIONS", "12")
	t.Setenv("FLEETWATCH_STALE_THRESHOLD", "300s")
	t.Setenv("FLEETWATCH_CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	var cfg models.CoreServiceConfig

	loader := NewEnvConfigLoader(logger.NewTestLogger(), "FLEETWATCH_")
	require.NoError(t, loader.Load(context.Background(), "", &cfg))

	assert.Equal(t, ":7070", cfg.ListenAddr)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, int32(12), cfg.Database.MaxConnections)
	assert.Equal(t, 300*time.Second, time.Duration(cfg.StaleThreshold))
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestEnvConfigLoaderConfigJSONWins(t *testing.T) {
	t.Setenv("FLEETWATCH_CONFIG_JSON", `{"listen_addr": ":6000", "database": {"host": "json.internal"}}`)
	t.Setenv("FLEETWATCH_LISTEN_ADDR", ":7070")

	var cfg models.CoreServiceConfig

	loader := NewEnvConfigLoader(logger.NewTestLogger(), "FLEETWATCH_")
	require.NoError(t, loader.Load(context.Background(), "", &cfg))

	assert.Equal(t, ":6000", cfg.ListenAddr)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "json.internal", cfg.Database.Host)
}

func TestEnvConfigLoaderRequiresStructPointer(t *testing.T) {
	loader := NewEnvConfigLoader(logger.NewTestLogger(), "FLEETWATCH_")

	require.ErrorIs(t, loader.Load(context.Background(), "", nil), ErrDstMustBeNonNilPointer)

	var notStruct int
	require.ErrorIs(t, loader.Load(context.Background(), "", &notStruct), ErrDstMustBePointerToStruct)
}
