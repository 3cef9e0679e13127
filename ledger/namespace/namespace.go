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

package namespace

import (
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	NamespaceRegistrationVersion = 1
	AddressAliasVersion          = 1
	MosaicAliasVersion           = 1
)

var (
	TransactionKeyNamespaceRegistration = common.TransactionKey{
		Type:    common.EntityTypeNamespaceRegistration,
		Version: NamespaceRegistrationVersion,
	}
	TransactionKeyAddressAlias = common.TransactionKey{
		Type:    common.EntityTypeAddressAlias,
		Version: AddressAliasVersion,
	}
	TransactionKeyMosaicAlias = common.TransactionKey{
		Type:    common.EntityTypeMosaicAlias,
		Version: MosaicAliasVersion,
	}
)

// NamespaceRegistrationBody registers a root namespace for a duration or a
// child namespace under a parent. Both variants share one 8-byte slot that
// leads the body; the registration type decoded after it selects the meaning.
type NamespaceRegistrationBody struct {
	slot             uint64
	Id               common.NamespaceId
	RegistrationType common.NamespaceRegistrationType
	Name             []byte
}

// NewRootNamespace registers a top-level namespace
func NewRootNamespace(
	id common.NamespaceId,
	name []byte,
	duration common.BlockDuration,
) (*NamespaceRegistrationBody, error) {
	return NewNamespaceRegistrationBody(
		common.NamespaceRegistrationTypeRoot,
		&duration,
		nil,
		id,
		name,
	)
}

// NewChildNamespace registers a namespace below parentId
func NewChildNamespace(
	id common.NamespaceId,
	name []byte,
	parentId common.NamespaceId,
) (*NamespaceRegistrationBody, error) {
	return NewNamespaceRegistrationBody(
		common.NamespaceRegistrationTypeChild,
		nil,
		&parentId,
		id,
		name,
	)
}

// NewNamespaceRegistrationBody checks that exactly the field required by
// regType is supplied
func NewNamespaceRegistrationBody(
	regType common.NamespaceRegistrationType,
	duration *common.BlockDuration,
	parentId *common.NamespaceId,
	id common.NamespaceId,
	name []byte,
) (*NamespaceRegistrationBody, error) {
	if err := common.CheckPrefix("name", len(name), 1); err != nil {
		return nil, err
	}
	ret := &NamespaceRegistrationBody{
		Id:               id,
		RegistrationType: regType,
	}
	if len(name) > 0 {
		ret.Name = name
	}
	switch regType {
	case common.NamespaceRegistrationTypeRoot:
		if duration == nil || parentId != nil {
			return nil, fmt.Errorf(
				"%w: root namespace requires a duration and no parent",
				common.ErrFieldPresenceMismatch,
			)
		}
		ret.slot = uint64(*duration)
	case common.NamespaceRegistrationTypeChild:
		if parentId == nil || duration != nil {
			return nil, fmt.Errorf(
				"%w: child namespace requires a parent and no duration",
				common.ErrFieldPresenceMismatch,
			)
		}
		ret.slot = uint64(*parentId)
	default:
		return nil, fmt.Errorf(
			"unsupported namespace registration type: %s",
			regType.String(),
		)
	}
	return ret, nil
}

func (b *NamespaceRegistrationBody) layout() wire.Layout {
	nameSize := wire.LengthPrefix(1, &b.Name)
	return wire.Layout{
		wire.U64(&b.slot),
		wire.U64(&b.Id),
		wire.U8(&b.RegistrationType),
		nameSize,
		wire.Blob(&b.Name, nameSize),
	}
}

// Duration returns the lifetime of a root namespace
func (b *NamespaceRegistrationBody) Duration() (common.BlockDuration, error) {
	if b.RegistrationType != common.NamespaceRegistrationTypeRoot {
		return 0, fmt.Errorf(
			"%w: duration is not present for a %s namespace",
			common.ErrInvalidState,
			b.RegistrationType.String(),
		)
	}
	return common.BlockDuration(b.slot), nil
}

// ParentId returns the parent of a child namespace
func (b *NamespaceRegistrationBody) ParentId() (common.NamespaceId, error) {
	if b.RegistrationType != common.NamespaceRegistrationTypeChild {
		return 0, fmt.Errorf(
			"%w: parent id is not present for a %s namespace",
			common.ErrInvalidState,
			b.RegistrationType.String(),
		)
	}
	return common.NamespaceId(b.slot), nil
}

func (b *NamespaceRegistrationBody) TransactionKey() common.TransactionKey {
	return TransactionKeyNamespaceRegistration
}

func (b *NamespaceRegistrationBody) Size() int {
	return b.layout().Size()
}

func (b *NamespaceRegistrationBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *NamespaceRegistrationBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

func (b *NamespaceRegistrationBody) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Id               common.NamespaceId    `json:"id"`
		RegistrationType string                `json:"registrationType"`
		Name             string                `json:"name"`
		Duration         *common.BlockDuration `json:"duration,omitempty"`
		ParentId         *common.NamespaceId   `json:"parentId,omitempty"`
	}{
		Id:               b.Id,
		RegistrationType: b.RegistrationType.String(),
		Name:             string(b.Name),
	}
	if duration, err := b.Duration(); err == nil {
		tmp.Duration = &duration
	}
	if parentId, err := b.ParentId(); err == nil {
		tmp.ParentId = &parentId
	}
	return json.Marshal(tmp)
}

// AddressAliasBody links or unlinks a namespace to an account address
type AddressAliasBody struct {
	NamespaceId common.NamespaceId `json:"namespaceId"`
	Address     common.Address     `json:"address"`
	AliasAction common.AliasAction `json:"aliasAction"`
}

func (b *AddressAliasBody) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&b.NamespaceId),
		wire.Fixed(b.Address[:]),
		wire.U8(&b.AliasAction),
	}
}

func (b *AddressAliasBody) TransactionKey() common.TransactionKey {
	return TransactionKeyAddressAlias
}

func (b *AddressAliasBody) Size() int {
	return b.layout().Size()
}

func (b *AddressAliasBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *AddressAliasBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// MosaicAliasBody links or unlinks a namespace to a mosaic
type MosaicAliasBody struct {
	NamespaceId common.NamespaceId `json:"namespaceId"`
	MosaicId    common.MosaicId    `json:"mosaicId"`
	AliasAction common.AliasAction `json:"aliasAction"`
}

func (b *MosaicAliasBody) layout() wire.Layout {
	return wire.Layout{
		wire.U64(&b.NamespaceId),
		wire.U64(&b.MosaicId),
		wire.U8(&b.AliasAction),
	}
}

func (b *MosaicAliasBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMosaicAlias
}

func (b *MosaicAliasBody) Size() int {
	return b.layout().Size()
}

func (b *MosaicAliasBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MosaicAliasBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
