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

package keylink

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	AccountKeyLinkVersion = 1
	NodeKeyLinkVersion    = 1
	VrfKeyLinkVersion     = 1
	VotingKeyLinkVersion  = 1
)

var (
	TransactionKeyAccountKeyLink = common.TransactionKey{
		Type:    common.EntityTypeAccountKeyLink,
		Version: AccountKeyLinkVersion,
	}
	TransactionKeyNodeKeyLink = common.TransactionKey{
		Type:    common.EntityTypeNodeKeyLink,
		Version: NodeKeyLinkVersion,
	}
	TransactionKeyVrfKeyLink = common.TransactionKey{
		Type:    common.EntityTypeVrfKeyLink,
		Version: VrfKeyLinkVersion,
	}
	TransactionKeyVotingKeyLink = common.TransactionKey{
		Type:    common.EntityTypeVotingKeyLink,
		Version: VotingKeyLinkVersion,
	}
)

// KeyLink is the shared shape of the account, node and vrf key link bodies
type KeyLink struct {
	LinkedPublicKey common.PublicKey  `json:"linkedPublicKey"`
	LinkAction      common.LinkAction `json:"linkAction"`
}

func (k *KeyLink) layout() wire.Layout {
	return wire.Layout{
		wire.Struct(&k.LinkedPublicKey),
		wire.U8(&k.LinkAction),
	}
}

func (k *KeyLink) Size() int {
	return k.layout().Size()
}

func (k *KeyLink) Encode(w *wire.Writer) {
	k.layout().Encode(w)
}

func (k *KeyLink) Decode(r *wire.Reader) error {
	return k.layout().Decode(r)
}

// AccountKeyLinkBody delegates account importance to a remote key
type AccountKeyLinkBody struct {
	KeyLink
}

func (b *AccountKeyLinkBody) TransactionKey() common.TransactionKey {
	return TransactionKeyAccountKeyLink
}

// NodeKeyLinkBody links an account to the TLS key of a node
type NodeKeyLinkBody struct {
	KeyLink
}

func (b *NodeKeyLinkBody) TransactionKey() common.TransactionKey {
	return TransactionKeyNodeKeyLink
}

// VrfKeyLinkBody links an account to a VRF key used for harvesting
type VrfKeyLinkBody struct {
	KeyLink
}

func (b *VrfKeyLinkBody) TransactionKey() common.TransactionKey {
	return TransactionKeyVrfKeyLink
}

// VotingKeyLinkBody links an account to a finalization voting key for a range
// of epochs
type VotingKeyLinkBody struct {
	LinkedPublicKey common.VotingPublicKey   `json:"linkedPublicKey"`
	StartEpoch      common.FinalizationEpoch `json:"startEpoch"`
	EndEpoch        common.FinalizationEpoch `json:"endEpoch"`
	LinkAction      common.LinkAction        `json:"linkAction"`
}

func (b *VotingKeyLinkBody) layout() wire.Layout {
	return wire.Layout{
		wire.Fixed(b.LinkedPublicKey[:]),
		wire.U32(&b.StartEpoch),
		wire.U32(&b.EndEpoch),
		wire.U8(&b.LinkAction),
	}
}

func (b *VotingKeyLinkBody) TransactionKey() common.TransactionKey {
	return TransactionKeyVotingKeyLink
}

func (b *VotingKeyLinkBody) Size() int {
	return b.layout().Size()
}

func (b *VotingKeyLinkBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *VotingKeyLinkBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
