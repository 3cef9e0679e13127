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

package multisig

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const MultisigAccountModificationVersion = 1

var TransactionKeyMultisigAccountModification = common.TransactionKey{
	Type:    common.EntityTypeMultisigAccountModification,
	Version: MultisigAccountModificationVersion,
}

// MultisigAccountModificationBody changes the cosignatories and approval
// thresholds of a multisig account
type MultisigAccountModificationBody struct {
	MinRemovalDelta  int8                       `json:"minRemovalDelta"`
	MinApprovalDelta int8                       `json:"minApprovalDelta"`
	AddressAdditions []common.UnresolvedAddress `json:"addressAdditions,omitempty"`
	AddressDeletions []common.UnresolvedAddress `json:"addressDeletions,omitempty"`
}

func NewMultisigAccountModificationBody(
	minRemovalDelta int8,
	minApprovalDelta int8,
	additions []common.UnresolvedAddress,
	deletions []common.UnresolvedAddress,
) (*MultisigAccountModificationBody, error) {
	if err := common.CheckPrefix("address additions", len(additions), 1); err != nil {
		return nil, err
	}
	if err := common.CheckPrefix("address deletions", len(deletions), 1); err != nil {
		return nil, err
	}
	ret := &MultisigAccountModificationBody{
		MinRemovalDelta:  minRemovalDelta,
		MinApprovalDelta: minApprovalDelta,
	}
	if len(additions) > 0 {
		ret.AddressAdditions = additions
	}
	if len(deletions) > 0 {
		ret.AddressDeletions = deletions
	}
	return ret, nil
}

func (b *MultisigAccountModificationBody) layout() wire.Layout {
	additionsCount := wire.CountPrefix(1, &b.AddressAdditions)
	deletionsCount := wire.CountPrefix(1, &b.AddressDeletions)
	return wire.Layout{
		wire.I8(&b.MinRemovalDelta),
		wire.I8(&b.MinApprovalDelta),
		additionsCount,
		deletionsCount,
		wire.Reserved(4),
		wire.Array(&b.AddressAdditions, additionsCount),
		wire.Array(&b.AddressDeletions, deletionsCount),
	}
}

func (b *MultisigAccountModificationBody) TransactionKey() common.TransactionKey {
	return TransactionKeyMultisigAccountModification
}

func (b *MultisigAccountModificationBody) Size() int {
	return b.layout().Size()
}

func (b *MultisigAccountModificationBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *MultisigAccountModificationBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
