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

package mosaic

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	MosaicDefinitionVersion   = 1
	MosaicSupplyChangeVersion = 1
)

var (
	TransactionKeyMosaicDefinition = common.TransactionKey{
		Type:    common.EntityTypeMosaicDefinition,
		Version: MosaicDefinitionVersion,
	}
	TransactionKeyMosaicSupplyChange = common.TransactionKey{
		Type:    common.EntityTypeMosaicSupplyChange,
		Version: MosaicSupplyChangeVersion,
	}
)

type MosaicDefinitionBody struct {
	Id           common.MosaicId      `json:"id"`
	Duration     common.BlockDuration `json:"duration"`
	Nonce        common.MosaicNonce   `json:"nonce"`
	Flags        common.MosaicFlags   `json:"flags"`
	Divisibility uint8                `json:"divisibility"`
}

func (b *MosaicDefinitionBody) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&b.Id),
		wire.U64(&b.Duration),
		wire.U32(&b.Nonce),
		wire.U8(&b.Flags),
		wire.U8(&b.Divisibility),
	}
}

func (b *MosaicDefinitionBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMosaicDefinition
}

func (b *MosaicDefinitionBody) Size() int {
	return b.layout().Size()
}

func (b *MosaicDefinitionBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MosaicDefinitionBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

type MosaicSupplyChangeBody struct {
	MosaicId common.UnresolvedMosaicId       `json:"mosaicId"`
	Delta    common.Amount                   `json:"delta"`
	Action   common.MosaicSupplyChangeAction `json:"action"`
}

func (b *MosaicSupplyChangeBody) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&b.MosaicId),
		wire.U64(&b.Delta),
		wire.U8(&b.Action),
	}
}

func (b *MosaicSupplyChangeBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMosaicSupplyChange
}

func (b *MosaicSupplyChangeBody) Size() int {
	return b.layout().Size()
}

func (b *MosaicSupplyChangeBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MosaicSupplyChangeBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
