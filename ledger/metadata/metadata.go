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

package metadata

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	AccountMetadataVersion   = 1
	MosaicMetadataVersion    = 1
	NamespaceMetadataVersion = 1
)

var (
	TransactionKeyAccountMetadata = common.TransactionKey{
		Type:    common.EntityTypeAccountMetadata,
		Version: AccountMetadataVersion,
	}
	TransactionKeyMosaicMetadata = common.TransactionKey{
		Type:    common.EntityTypeMosaicMetadata,
		Version: MosaicMetadataVersion,
	}
	TransactionKeyNamespaceMetadata = common.TransactionKey{
		Type:    common.EntityTypeNamespaceMetadata,
		Version: NamespaceMetadataVersion,
	}
)

// Value is the metadata payload shared by all metadata bodies. SizeDelta is
// the change in stored value length, the value itself is an update against
// the stored value.
type Value struct {
	SizeDelta int16  `json:"valueSizeDelta"`
	Data      []byte `json:"value,omitempty"`
}

func (v *Value) rules() []wire.Rule {
	valueSize := wire.LengthPrefix(2, &v.Data)
	return []wire.Rule{
		wire.I16(&v.SizeDelta),
		valueSize,
		wire.Blob(&v.Data, valueSize),
	}
}

func (v *Value) validate() error {
	return common.CheckPrefix("value", len(v.Data), 2)
}

// AccountMetadataBody attaches a value to an account
type AccountMetadataBody struct {
	TargetAddress     common.UnresolvedAddress `json:"targetAddress"`
	ScopedMetadataKey common.ScopedMetadataKey `json:"scopedMetadataKey"`
	Value
}

func NewAccountMetadataBody(
	target common.UnresolvedAddress,
	key common.ScopedMetadataKey,
	sizeDelta int16,
	value []byte,
) (*AccountMetadataBody, error) {
	ret := &AccountMetadataBody{
		TargetAddress:     target,
		ScopedMetadataKey: key,
		Value:             newValue(sizeDelta, value),
	}
	if err := ret.validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func newValue(sizeDelta int16, data []byte) Value {
	ret := Value{SizeDelta: sizeDelta}
	if len(data) > 0 {
		ret.Data = data
	}
	return ret
}

func (b *AccountMetadataBody) layout() wire.Layout {
	return append(
		wire.Layout{
			wire.Struct(&b.TargetAddress),
			wire.U64(&b.ScopedMetadataKey),
		},
		b.Value.rules()...,
	)
}

func (b *AccountMetadataBody) TransactionKey() common.TransactionKey {
	return TransactionKeyAccountMetadata
}

func (b *AccountMetadataBody) Size() int {
	return b.layout().Size()
}

func (b *AccountMetadataBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *AccountMetadataBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// MosaicMetadataBody attaches a value to a mosaic owned by the target account
type MosaicMetadataBody struct {
	TargetAddress     common.UnresolvedAddress  `json:"targetAddress"`
	ScopedMetadataKey common.ScopedMetadataKey  `json:"scopedMetadataKey"`
	TargetMosaicId    common.UnresolvedMosaicId `json:"targetMosaicId"`
	Value
}

func NewMosaicMetadataBody(
	target common.UnresolvedAddress,
	key common.ScopedMetadataKey,
	mosaicId common.UnresolvedMosaicId,
	sizeDelta int16,
	value []byte,
) (*MosaicMetadataBody, error) {
	ret := &MosaicMetadataBody{
		TargetAddress:     target,
		ScopedMetadataKey: key,
		TargetMosaicId:    mosaicId,
		Value:             newValue(sizeDelta, value),
	}
	if err := ret.validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (b *MosaicMetadataBody) layout() wire.Layout {
	return append(
		wire.Layout{
			wire.Struct(&b.TargetAddress),
			wire.U64(&b.ScopedMetadataKey),
			wire.U64(&b.TargetMosaicId),
		},
		b.Value.rules()...,
	)
}

func (b *MosaicMetadataBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMosaicMetadata
}

func (b *MosaicMetadataBody) Size() int {
	return b.layout().Size()
}

func (b *MosaicMetadataBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MosaicMetadataBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// NamespaceMetadataBody attaches a value to a namespace owned by the target
// account
type NamespaceMetadataBody struct {
	TargetAddress     common.UnresolvedAddress `json:"targetAddress"`
	ScopedMetadataKey common.ScopedMetadataKey `json:"scopedMetadataKey"`
	TargetNamespaceId common.NamespaceId       `json:"targetNamespaceId"`
	Value
}

func NewNamespaceMetadataBody(
	target common.UnresolvedAddress,
	key common.ScopedMetadataKey,
	namespaceId common.NamespaceId,
	sizeDelta int16,
	value []byte,
) (*NamespaceMetadataBody, error) {
	ret := &NamespaceMetadataBody{
		TargetAddress:     target,
		ScopedMetadataKey: key,
		TargetNamespaceId: namespaceId,
		Value:             newValue(sizeDelta, value),
	}
	if err := ret.validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (b *NamespaceMetadataBody) layout() wire.Layout {
	return append(
		wire.Layout{
			wire.Struct(&b.TargetAddress),
			wire.U64(&b.ScopedMetadataKey),
			wire.U64(&b.TargetNamespaceId),
		},
		b.Value.rules()...,
	)
}

func (b *NamespaceMetadataBody) TransactionKey() common.TransactionKey {
	return TransactionKeyNamespaceMetadata
}

func (b *NamespaceMetadataBody) Size() int {
	return b.layout().Size()
}

func (b *NamespaceMetadataBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *NamespaceMetadataBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
