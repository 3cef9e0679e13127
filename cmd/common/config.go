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
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Strict   bool   `toml:"strict"`
	MaxSize  int64  `toml:"max_size"`
	Format   string `toml:"format"`
}

func (f *GlobalFlags) loadConfig(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %s", undecoded[0].String())
	}

	if meta.IsDefined("log_level") && !f.Flagset.Changed("log-level") {
		f.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("strict") && !f.Flagset.Changed("strict") {
		f.Strict = raw.Strict
	}

	if meta.IsDefined("max_size") && !f.Flagset.Changed("max-size") {
		if raw.MaxSize < 0 || raw.MaxSize > math.MaxUint32 {
			return fmt.Errorf("load config: max_size %d out of range", raw.MaxSize)
		}
		f.MaxSize = uint32(raw.MaxSize) // #nosec G115
	}

	if meta.IsDefined("format") && !f.Flagset.Changed("format") {
		f.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}

	return nil
}
