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

package ledger

import (
	"cmp"
	"slices"

	"github.com/blinklabs-io/gocatbuffer/ledger/aggregate"
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/ledger/keylink"
	"github.com/blinklabs-io/gocatbuffer/ledger/lock"
	"github.com/blinklabs-io/gocatbuffer/ledger/metadata"
	"github.com/blinklabs-io/gocatbuffer/ledger/mosaic"
	"github.com/blinklabs-io/gocatbuffer/ledger/multisig"
	"github.com/blinklabs-io/gocatbuffer/ledger/namespace"
	"github.com/blinklabs-io/gocatbuffer/ledger/restriction"
	"github.com/blinklabs-io/gocatbuffer/ledger/transfer"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

// bodyDecoderFunc decodes a body on behalf of a Decoder. Only aggregates make
// use of the decoder, to frame their embedded transactions.
type bodyDecoderFunc func(d *Decoder, r *wire.Reader) (common.TransactionBody, error)

func plain(decode common.BodyDecoder) bodyDecoderFunc {
	return func(_ *Decoder, r *wire.Reader) (common.TransactionBody, error) {
		return decode(r)
	}
}

func decodeAggregate(d *Decoder, r *wire.Reader) (common.TransactionBody, error) {
	body, err := aggregate.DecodeAggregateBody(r, d.decodeEmbeddedFrame)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Bodies that may appear both standalone and embedded
var sharedDecoders = map[common.TransactionKey]common.BodyDecoder{
	keylink.TransactionKeyAccountKeyLink:                  common.DecodeBody[keylink.AccountKeyLinkBody](),
	keylink.TransactionKeyNodeKeyLink:                     common.DecodeBody[keylink.NodeKeyLinkBody](),
	keylink.TransactionKeyVotingKeyLink:                   common.DecodeBody[keylink.VotingKeyLinkBody](),
	keylink.TransactionKeyVrfKeyLink:                      common.DecodeBody[keylink.VrfKeyLinkBody](),
	lock.TransactionKeyHashLock:                           common.DecodeBody[lock.HashLockBody](),
	lock.TransactionKeySecretLock:                         common.DecodeBody[lock.SecretLockBody](),
	lock.TransactionKeySecretProof:                        common.DecodeBody[lock.SecretProofBody](),
	metadata.TransactionKeyAccountMetadata:                common.DecodeBody[metadata.AccountMetadataBody](),
	metadata.TransactionKeyMosaicMetadata:                 common.DecodeBody[metadata.MosaicMetadataBody](),
	metadata.TransactionKeyNamespaceMetadata:              common.DecodeBody[metadata.NamespaceMetadataBody](),
	mosaic.TransactionKeyMosaicDefinition:                 common.DecodeBody[mosaic.MosaicDefinitionBody](),
	mosaic.TransactionKeyMosaicSupplyChange:               common.DecodeBody[mosaic.MosaicSupplyChangeBody](),
	multisig.TransactionKeyMultisigAccountModification:    common.DecodeBody[multisig.MultisigAccountModificationBody](),
	namespace.TransactionKeyAddressAlias:                  common.DecodeBody[namespace.AddressAliasBody](),
	namespace.TransactionKeyMosaicAlias:                   common.DecodeBody[namespace.MosaicAliasBody](),
	namespace.TransactionKeyNamespaceRegistration:         common.DecodeBody[namespace.NamespaceRegistrationBody](),
	restriction.TransactionKeyAccountAddressRestriction:   common.DecodeBody[restriction.AccountAddressRestrictionBody](),
	restriction.TransactionKeyAccountMosaicRestriction:    common.DecodeBody[restriction.AccountMosaicRestrictionBody](),
	restriction.TransactionKeyAccountOperationRestriction: common.DecodeBody[restriction.AccountOperationRestrictionBody](),
	restriction.TransactionKeyMosaicAddressRestriction:    common.DecodeBody[restriction.MosaicAddressRestrictionBody](),
	restriction.TransactionKeyMosaicGlobalRestriction:     common.DecodeBody[restriction.MosaicGlobalRestrictionBody](),
	transfer.TransactionKeyTransfer:                       common.DecodeBody[transfer.TransferBody](),
}

// transactionDecoders is consulted for standalone transactions only
var transactionDecoders = buildTable(
	sharedDecoders,
	map[common.TransactionKey]bodyDecoderFunc{
		aggregate.TransactionKeyAggregateComplete: decodeAggregate,
		aggregate.TransactionKeyAggregateBonded:   decodeAggregate,
	},
)

// embeddedDecoders is consulted for transactions inside an aggregate. It has no
// aggregate entries, so nesting stops at one level.
var embeddedDecoders = buildTable(sharedDecoders, nil)

func buildTable(
	shared map[common.TransactionKey]common.BodyDecoder,
	extra map[common.TransactionKey]bodyDecoderFunc,
) map[common.TransactionKey]bodyDecoderFunc {
	ret := make(map[common.TransactionKey]bodyDecoderFunc, len(shared)+len(extra))
	for key, decode := range shared {
		ret[key] = plain(decode)
	}
	for key, decode := range extra {
		ret[key] = decode
	}
	return ret
}

// Lookup reports whether a standalone transaction key has a typed decoder
func Lookup(key common.TransactionKey) bool {
	_, ok := transactionDecoders[key]
	return ok
}

// LookupEmbedded reports whether an embedded transaction key has a typed decoder
func LookupEmbedded(key common.TransactionKey) bool {
	_, ok := embeddedDecoders[key]
	return ok
}

// TransactionKeys returns the recognized standalone keys in type order
func TransactionKeys() []common.TransactionKey {
	return sortedKeys(transactionDecoders)
}

// EmbeddedTransactionKeys returns the recognized embedded keys in type order
func EmbeddedTransactionKeys() []common.TransactionKey {
	return sortedKeys(embeddedDecoders)
}

func sortedKeys(table map[common.TransactionKey]bodyDecoderFunc) []common.TransactionKey {
	ret := make([]common.TransactionKey, 0, len(table))
	for key := range table {
		ret = append(ret, key)
	}
	slices.SortFunc(ret, func(a, b common.TransactionKey) int {
		return cmp.Or(
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.Version, b.Version),
		)
	})
	return ret
}
