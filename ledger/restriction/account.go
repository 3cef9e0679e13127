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
	"fmt"

	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	AccountAddressRestrictionVersion   = 1
	AccountMosaicRestrictionVersion    = 1
	AccountOperationRestrictionVersion = 1

	// Bits that select the kind of value being restricted
	accountRestrictionKindMask = common.AccountRestrictionFlagsAddress |
		common.AccountRestrictionFlagsMosaicId |
		common.AccountRestrictionFlagsTransactionType
)

var (
	TransactionKeyAccountAddressRestriction = common.TransactionKey{
		Type:    common.EntityTypeAccountAddressRestriction,
		Version: AccountAddressRestrictionVersion,
	}
	TransactionKeyAccountMosaicRestriction = common.TransactionKey{
		Type:    common.EntityTypeAccountMosaicRestriction,
		Version: AccountMosaicRestrictionVersion,
	}
	TransactionKeyAccountOperationRestriction = common.TransactionKey{
		Type:    common.EntityTypeAccountOperationRestriction,
		Version: AccountOperationRestrictionVersion,
	}
)

func checkAccountRestriction(
	flags common.AccountRestrictionFlags,
	kind common.AccountRestrictionFlags,
	additions int,
	deletions int,
) error {
	if flags&accountRestrictionKindMask != kind {
		return fmt.Errorf(
			"%w: restriction flags %s do not select %s values",
			common.ErrFieldPresenceMismatch,
			flags.String(),
			kind.String(),
		)
	}
	if err := common.CheckPrefix("restriction additions", additions, 1); err != nil {
		return err
	}
	return common.CheckPrefix("restriction deletions", deletions, 1)
}

func nilIfEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	return items
}

// AccountAddressRestrictionBody allows or blocks transactions to or from the
// listed addresses
type AccountAddressRestrictionBody struct {
	RestrictionFlags     common.AccountRestrictionFlags `json:"restrictionFlags"`
	RestrictionAdditions []common.UnresolvedAddress     `json:"restrictionAdditions,omitempty"`
	RestrictionDeletions []common.UnresolvedAddress     `json:"restrictionDeletions,omitempty"`
}

// NewAccountAddressRestrictionBody requires flags to select address values
func NewAccountAddressRestrictionBody(
	flags common.AccountRestrictionFlags,
	additions []common.UnresolvedAddress,
	deletions []common.UnresolvedAddress,
) (*AccountAddressRestrictionBody, error) {
	if err := checkAccountRestriction(
		flags,
		common.AccountRestrictionFlagsAddress,
		len(additions),
		len(deletions),
	); err != nil {
		return nil, err
	}
	return &AccountAddressRestrictionBody{
		RestrictionFlags:     flags,
		RestrictionAdditions: nilIfEmpty(additions),
		RestrictionDeletions: nilIfEmpty(deletions),
	}, nil
}

func (b *AccountAddressRestrictionBody) layout() wire.Layout {
	additionsCount := wire.CountPrefix(1, &b.RestrictionAdditions)
	deletionsCount := wire.CountPrefix(1, &b.RestrictionDeletions)
	return wire.Layout{
		wire.U16(&b.RestrictionFlags),
		additionsCount,
		deletionsCount,
		wire.Reserved(4),
		wire.Array(&b.RestrictionAdditions, additionsCount),
		wire.Array(&b.RestrictionDeletions, deletionsCount),
	}
}

func (b *AccountAddressRestrictionBody) TransactionKey() common.TransactionKey {
	return TransactionKeyAccountAddressRestriction
}

func (b *AccountAddressRestrictionBody) Size() int {
	return b.layout().Size()
}

func (b *AccountAddressRestrictionBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *AccountAddressRestrictionBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// AccountMosaicRestrictionBody allows or blocks incoming mosaics
type AccountMosaicRestrictionBody struct {
	RestrictionFlags     common.AccountRestrictionFlags `json:"restrictionFlags"`
	RestrictionAdditions []common.UnresolvedMosaicId    `json:"restrictionAdditions,omitempty"`
	RestrictionDeletions []common.UnresolvedMosaicId    `json:"restrictionDeletions,omitempty"`
}

// NewAccountMosaicRestrictionBody requires flags to select mosaic id values
func NewAccountMosaicRestrictionBody(
	flags common.AccountRestrictionFlags,
	additions []common.UnresolvedMosaicId,
	deletions []common.UnresolvedMosaicId,
) (*AccountMosaicRestrictionBody, error) {
	if err := checkAccountRestriction(
		flags,
		common.AccountRestrictionFlagsMosaicId,
		len(additions),
		len(deletions),
	); err != nil {
		return nil, err
	}
	return &AccountMosaicRestrictionBody{
		RestrictionFlags:     flags,
		RestrictionAdditions: nilIfEmpty(additions),
		RestrictionDeletions: nilIfEmpty(deletions),
	}, nil
}

func (b *AccountMosaicRestrictionBody) layout() wire.Layout {
	additionsCount := wire.CountPrefix(1, &b.RestrictionAdditions)
	deletionsCount := wire.CountPrefix(1, &b.RestrictionDeletions)
	return wire.Layout{
		wire.U16(&b.RestrictionFlags),
		additionsCount,
		deletionsCount,
		wire.Reserved(4),
		wire.Uint64Array(&b.RestrictionAdditions, additionsCount),
		wire.Uint64Array(&b.RestrictionDeletions, deletionsCount),
	}
}

func (b *AccountMosaicRestrictionBody) TransactionKey() common.TransactionKey {
	return TransactionKeyAccountMosaicRestriction
}

func (b *AccountMosaicRestrictionBody) Size() int {
	return b.layout().Size()
}

func (b *AccountMosaicRestrictionBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *AccountMosaicRestrictionBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

// AccountOperationRestrictionBody allows or blocks outgoing transaction types
type AccountOperationRestrictionBody struct {
	RestrictionFlags     common.AccountRestrictionFlags `json:"restrictionFlags"`
	RestrictionAdditions []common.EntityType            `json:"restrictionAdditions,omitempty"`
	RestrictionDeletions []common.EntityType            `json:"restrictionDeletions,omitempty"`
}

// NewAccountOperationRestrictionBody requires flags to select transaction type
// values
func NewAccountOperationRestrictionBody(
	flags common.AccountRestrictionFlags,
	additions []common.EntityType,
	deletions []common.EntityType,
) (*AccountOperationRestrictionBody, error) {
	if err := checkAccountRestriction(
		flags,
		common.AccountRestrictionFlagsTransactionType,
		len(additions),
		len(deletions),
	); err != nil {
		return nil, err
	}
	return &AccountOperationRestrictionBody{
		RestrictionFlags:     flags,
		RestrictionAdditions: nilIfEmpty(additions),
		RestrictionDeletions: nilIfEmpty(deletions),
	}, nil
}

func (b *AccountOperationRestrictionBody) layout() wire.Layout {
	additionsCount := wire.CountPrefix(1, &b.RestrictionAdditions)
	deletionsCount := wire.CountPrefix(1, &b.RestrictionDeletions)
	return wire.Layout{
		wire.U16(&b.RestrictionFlags),
		additionsCount,
		deletionsCount,
		wire.Reserved(4),
		wire.Uint16Array(&b.RestrictionAdditions, additionsCount),
		wire.Uint16Array(&b.RestrictionDeletions, deletionsCount),
	}
}

func (b *AccountOperationRestrictionBody) TransactionKey() common.TransactionKey {
	return TransactionKeyAccountOperationRestriction
}

func (b *AccountOperationRestrictionBody) Size() int {
	return b.layout().Size()
}

func (b *AccountOperationRestrictionBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *AccountOperationRestrictionBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
