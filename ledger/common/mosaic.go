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
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const UnresolvedMosaicSize = 16

// UnresolvedMosaic is an amount of a mosaic that may be referenced by alias
type UnresolvedMosaic struct {
	MosaicId UnresolvedMosaicId `json:"mosaicId"`
	Amount   Amount             `json:"amount"`
}

func (m *UnresolvedMosaic) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&m.MosaicId),
		wire.U64(&m.Amount),
	}
}

func (m *UnresolvedMosaic) Size() int {
	return UnresolvedMosaicSize
}

func (m *UnresolvedMosaic) Encode(w *wire.Writer) {
	m.layout().Encode(w)
}

func (m *UnresolvedMosaic) Decode(r *wire.Reader) error {
	return m.layout().Decode(r)
}
