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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log level and destination.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

type zeroLogger struct {
	zl zerolog.Logger
}

// New builds a Logger from the config, tagged with the given component name.
// A nil config falls back to environment defaults.
func New(config *Config, component string) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer = os.Stdout

	if config.Output == "stderr" {
		output = os.Stderr
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	} else {
		zerolog.TimeFieldFormat = time.RFC3339
	}

	zl := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()

	return &zeroLogger{zl: zl}, nil
}

func (l *zeroLogger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *zeroLogger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *zeroLogger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *zeroLogger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *zeroLogger) Error() *zerolog.Event { return l.zl.Error() }
func (l *zeroLogger) Fatal() *zerolog.Event { return l.zl.Fatal() }
func (l *zeroLogger) Panic() *zerolog.Event { return l.zl.Panic() }
func (l *zeroLogger) With() zerolog.Context { return l.zl.With() }

func (l *zeroLogger) WithComponent(component string) zerolog.Logger {
	return l.zl.With().Str("component", component).Logger()
}

func (l *zeroLogger) SetLevel(level zerolog.Level) {
	l.zl = l.zl.Level(level)
}

func (l *zeroLogger) SetDebug(debug bool) {
	if debug {
		l.SetLevel(zerolog.DebugLevel)
	} else {
		l.SetLevel(zerolog.InfoLevel)
	}
}
