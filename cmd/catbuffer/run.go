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

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blinklabs-io/gocatbuffer/cmd/common"
	"github.com/blinklabs-io/gocatbuffer/ledger"
	"github.com/blinklabs-io/gocatbuffer/ledger/aggregate"
	lcommon "github.com/blinklabs-io/gocatbuffer/ledger/common"
)

const usage = "usage: catbuffer [flags] <decode|decode-embedded|hash|encode> [hex|-]"

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	f := common.NewGlobalFlags("catbuffer")
	f.Flagset.SetOutput(stderr)
	f.Flagset.Usage = func() {
		fmt.Fprintln(stderr, usage)
		f.Flagset.PrintDefaults()
	}
	if err := f.Parse(args); err != nil {
		return err
	}
	logger, err := f.Logger(stderr)
	if err != nil {
		return err
	}
	if f.Flagset.NArg() < 1 {
		return errors.New(
			"you must specify a subcommand (decode, decode-embedded, hash or encode)",
		)
	}
	if f.Flagset.NArg() > 2 {
		return errors.New(usage)
	}
	subcommand := f.Flagset.Arg(0)
	switch subcommand {
	case "decode", "decode-embedded", "hash", "encode":
	default:
		return fmt.Errorf("unknown subcommand: %s", subcommand)
	}
	input, err := readInput(f, f.Flagset.Arg(1), stdin)
	if err != nil {
		return err
	}
	d := ledger.NewDecoder(f.DecoderOptions(logger)...)
	logger.Debug(
		"decoding input",
		"command",
		subcommand,
		"size",
		len(input),
	)

	switch subcommand {
	case "decode":
		tx, err := d.DecodeTransaction(input)
		if err != nil {
			return err
		}
		return writeOutput(stdout, f.Format, newTransactionView(tx))
	case "decode-embedded":
		tx, err := d.DecodeEmbeddedTransaction(input)
		if err != nil {
			return err
		}
		return writeOutput(stdout, f.Format, newEmbeddedTransactionView(tx))
	case "encode":
		// The output is always the hex of the wire bytes
		data, err := encodeTransaction(d, input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, hex.EncodeToString(data))
		return err
	default:
		tx, err := d.DecodeTransaction(input)
		if err != nil {
			return err
		}
		body, err := lcommon.TypedBody[*aggregate.AggregateBody](tx.Body)
		if err != nil {
			return fmt.Errorf("%s is not an aggregate: %w", tx.Type.String(), err)
		}
		return writeOutput(stdout, f.Format, newHashView(body))
	}
}

// readInput returns the decoded hex from the --file flag, the positional
// argument, or stdin when neither is given or the argument is "-"
func readInput(f *common.GlobalFlags, arg string, stdin io.Reader) ([]byte, error) {
	var raw []byte
	switch {
	case f.File != "":
		if arg != "" {
			return nil, errors.New("cannot use both --file and a hex argument")
		}
		data, err := os.ReadFile(f.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		raw = data
	case arg != "" && arg != "-":
		raw = []byte(arg)
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = data
	}
	text := strings.TrimSpace(string(raw))
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if text == "" {
		return nil, errors.New("no input given")
	}
	ret, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex input: %w", err)
	}
	return ret, nil
}
