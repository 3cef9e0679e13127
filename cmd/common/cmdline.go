// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/gocatbuffer/ledger"
	"github.com/spf13/pflag"
)

const (
	FormatJson = "json"
	FormatCbor = "cbor"
)

type GlobalFlags struct {
	Flagset    *pflag.FlagSet
	ConfigFile string
	LogLevel   string
	Strict     bool
	MaxSize    uint32
	Format     string
	File       string
}

func NewGlobalFlags(name string) *GlobalFlags {
	f := &GlobalFlags{
		Flagset: pflag.NewFlagSet(name, pflag.ContinueOnError),
	}
	f.Flagset.StringVar(
		&f.ConfigFile,
		"config",
		"",
		"path to a TOML config file. flags given on the command line take precedence",
	)
	f.Flagset.StringVar(
		&f.LogLevel,
		"log-level",
		"info",
		"log level (debug, info, warn, error)",
	)
	f.Flagset.BoolVar(
		&f.Strict,
		"strict",
		false,
		"fail on unrecognized transaction types instead of keeping an opaque body",
	)
	f.Flagset.Uint32Var(
		&f.MaxSize,
		"max-size",
		0,
		"maximum declared transaction size in bytes, 0 for no limit",
	)
	f.Flagset.StringVar(
		&f.Format,
		"format",
		FormatJson,
		"output format (json or cbor)",
	)
	f.Flagset.StringVarP(
		&f.File,
		"file",
		"f",
		"",
		"read hex input from a file instead of an argument or stdin",
	)
	return f
}

// Parse parses args and then fills in anything not set on the command line
// from the config file
func (f *GlobalFlags) Parse(args []string) error {
	if err := f.Flagset.Parse(args); err != nil {
		return err
	}
	if f.ConfigFile != "" {
		if err := f.loadConfig(f.ConfigFile); err != nil {
			return err
		}
	}
	switch f.Format {
	case FormatJson, FormatCbor:
	default:
		return fmt.Errorf("invalid output format: %s", f.Format)
	}
	return nil
}

// Logger returns a text logger writing to w at the configured level
func (f *GlobalFlags) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(f.LogLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", f.LogLevel)
	}
	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	), nil
}

func (f *GlobalFlags) DecoderOptions(logger *slog.Logger) []ledger.DecoderOptionFunc {
	return []ledger.DecoderOptionFunc{
		ledger.WithLogger(logger),
		ledger.WithStrictTypes(f.Strict),
		ledger.WithMaxTransactionSize(f.MaxSize),
	}
}

// IsHelp reports whether err came from a request for usage
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
