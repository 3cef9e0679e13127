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

package restriction

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	MosaicAddressRestrictionVersion = 1
	MosaicGlobalRestrictionVersion  = 1
)

var (
	TransactionKeyMosaicAddressRestriction = common.TransactionKey{
		Type:    common.EntityTypeMosaicAddressRestriction,
		Version: MosaicAddressRestrictionVersion,
	}
	TransactionKeyMosaicGlobalRestriction = common.TransactionKey{
		Type:    common.EntityTypeMosaicGlobalRestriction,
		Version: MosaicGlobalRestrictionVersion,
	}
)

// MosaicAddressRestrictionBody sets the restriction value of one address for a
// mosaic. The previous value must match the value currently stored.
type MosaicAddressRestrictionBody struct {
	MosaicId                 common.UnresolvedMosaicId `json:"mosaicId"`
	RestrictionKey           uint64                    `json:"restrictionKey"`
	PreviousRestrictionValue uint64                    `json:"previousRestrictionValue"`
	NewRestrictionValue      uint64                    `json:"newRestrictionValue"`
	TargetAddress            common.UnresolvedAddress  `json:"targetAddress"`
}

func (b *MosaicAddressRestrictionBody) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&b.MosaicId),
		wire.U64(&b.RestrictionKey),
		wire.U64(&b.PreviousRestrictionValue),
		wire.U64(&b.NewRestrictionValue),
		wire.Struct(&b.TargetAddress),
	}
}

func (b *MosaicAddressRestrictionBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMosaicAddressRestriction
}

func (b *MosaicAddressRestrictionBody) Size() int {
	return b.layout().Size()
}

func (b *MosaicAddressRestrictionBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MosaicAddressRestrictionBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// MosaicGlobalRestrictionBody sets a network-wide restriction rule for a
// mosaic, optionally evaluated against a reference mosaic
type MosaicGlobalRestrictionBody struct {
	MosaicId                 common.UnresolvedMosaicId    `json:"mosaicId"`
	ReferenceMosaicId        common.UnresolvedMosaicId    `json:"referenceMosaicId"`
	RestrictionKey           uint64                       `json:"restrictionKey"`
	PreviousRestrictionValue uint64                       `json:"previousRestrictionValue"`
	NewRestrictionValue      uint64                       `json:"newRestrictionValue"`
	PreviousRestrictionType  common.MosaicRestrictionType `json:"previousRestrictionType"`
	NewRestrictionType       common.MosaicRestrictionType `json:"newRestrictionType"`
}

func (b *MosaicGlobalRestrictionBody) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&b.MosaicId),
		wire.U64(&b.ReferenceMosaicId),
		wire.U64(&b.RestrictionKey),
		wire.U64(&b.PreviousRestrictionValue),
		wire.U64(&b.NewRestrictionValue),
		wire.U8(&b.PreviousRestrictionType),
		wire.U8(&b.NewRestrictionType),
	}
}

func (b *MosaicGlobalRestrictionBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMosaicGlobalRestriction
}

func (b *MosaicGlobalRestrictionBody) Size() int {
	return b.layout().Size()
}

func (b *MosaicGlobalRestrictionBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MosaicGlobalRestrictionBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
