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
	"errors"
	"testing"

	"github.com/blinklabs-io/gocatbuffer/internal/test"
	"github.com/blinklabs-io/gocatbuffer/ledger/aggregate"
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/ledger/keylink"
	"github.com/blinklabs-io/gocatbuffer/ledger/lock"
	"github.com/blinklabs-io/gocatbuffer/ledger/metadata"
	"github.com/blinklabs-io/gocatbuffer/ledger/mosaic"
	"github.com/blinklabs-io/gocatbuffer/ledger/multisig"
	"github.com/blinklabs-io/gocatbuffer/ledger/namespace"
	"github.com/blinklabs-io/gocatbuffer/ledger/restriction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

// testBodies returns one body of every type that may appear embedded
func testBodies(t *testing.T) map[string]common.TransactionBody {
	address := common.NewUnresolvedAddress(test.DecodeHexString(testRecipientHex))
	other := common.NewUnresolvedAddress(
		test.DecodeHexString("98E521BD0F024F58E670A023BF3A14F3BECAF0280396BED0"),
	)
	key := common.NewPublicKey(test.DecodeHexString(testSignerHex))
	secret := common.Sha3256Hash([]byte("proof"))
	var resolved common.Address
	copy(resolved[:], address[:])
	var votingKey common.VotingPublicKey
	copy(votingKey[:], key[:])
	return map[string]common.TransactionBody{
		"account key link": &keylink.AccountKeyLinkBody{
			KeyLink: keylink.KeyLink{LinkedPublicKey: key, LinkAction: common.LinkActionLink},
		},
		"node key link": &keylink.NodeKeyLinkBody{
			KeyLink: keylink.KeyLink{LinkedPublicKey: key},
		},
		"vrf key link": &keylink.VrfKeyLinkBody{
			KeyLink: keylink.KeyLink{LinkedPublicKey: key, LinkAction: common.LinkActionLink},
		},
		"voting key link": &keylink.VotingKeyLinkBody{
			LinkedPublicKey: votingKey,
			StartEpoch:      1,
			EndEpoch:        360,
			LinkAction:      common.LinkActionLink,
		},
		"hash lock": &lock.HashLockBody{
			Mosaic:   common.UnresolvedMosaic{MosaicId: 0x6BED913FA20223F8, Amount: 10_000_000},
			Duration: 480,
			Hash:     secret,
		},
		"secret lock": &lock.SecretLockBody{
			RecipientAddress: address,
			Secret:           secret,
			Mosaic:           common.UnresolvedMosaic{MosaicId: 7, Amount: 1},
			Duration:         100,
			HashAlgorithm:    common.LockHashAlgorithmSha3256,
		},
		"secret proof": must[*lock.SecretProofBody](t)(lock.NewSecretProofBody(
			address,
			secret,
			common.LockHashAlgorithmSha3256,
			[]byte("proof"),
		)),
		"account metadata": must[*metadata.AccountMetadataBody](t)(
			metadata.NewAccountMetadataBody(address, 0xA, 3, []byte("abc")),
		),
		"mosaic metadata": must[*metadata.MosaicMetadataBody](t)(
			metadata.NewMosaicMetadataBody(address, 0xB, 9, -2, []byte{1}),
		),
		"namespace metadata": must[*metadata.NamespaceMetadataBody](t)(
			metadata.NewNamespaceMetadataBody(address, 0xC, 0x85BBEA6CC462B244, 0, nil),
		),
		"mosaic definition": &mosaic.MosaicDefinitionBody{
			Id:           0x6BED913FA20223F8,
			Duration:     1000,
			Nonce:        42,
			Flags:        common.MosaicFlagsSupplyMutable | common.MosaicFlagsTransferable,
			Divisibility: 6,
		},
		"mosaic supply change": &mosaic.MosaicSupplyChangeBody{
			MosaicId: 0x6BED913FA20223F8,
			Delta:    1_000_000,
			Action:   common.MosaicSupplyChangeActionIncrease,
		},
		"multisig account modification": must[*multisig.MultisigAccountModificationBody](t)(
			multisig.NewMultisigAccountModificationBody(
				1,
				-1,
				[]common.UnresolvedAddress{address, other},
				[]common.UnresolvedAddress{other},
			),
		),
		"address alias": &namespace.AddressAliasBody{
			NamespaceId: 0x85BBEA6CC462B244,
			Address:     resolved,
			AliasAction: common.AliasActionLink,
		},
		"mosaic alias": &namespace.MosaicAliasBody{
			NamespaceId: 0x85BBEA6CC462B244,
			MosaicId:    0x6BED913FA20223F8,
		},
		"root namespace": must[*namespace.NamespaceRegistrationBody](t)(
			namespace.NewRootNamespace(0x85BBEA6CC462B244, []byte("symbol"), 86400),
		),
		"child namespace": must[*namespace.NamespaceRegistrationBody](t)(
			namespace.NewChildNamespace(0xE74B99BA41F4AFEE, []byte("xym"), 0x85BBEA6CC462B244),
		),
		"account address restriction": must[*restriction.AccountAddressRestrictionBody](t)(
			restriction.NewAccountAddressRestrictionBody(
				common.AccountRestrictionFlagsAddress|common.AccountRestrictionFlagsBlock,
				[]common.UnresolvedAddress{other},
				nil,
			),
		),
		"account mosaic restriction": must[*restriction.AccountMosaicRestrictionBody](t)(
			restriction.NewAccountMosaicRestrictionBody(
				common.AccountRestrictionFlagsMosaicId,
				nil,
				[]common.UnresolvedMosaicId{1, 2},
			),
		),
		"account operation restriction": must[*restriction.AccountOperationRestrictionBody](t)(
			restriction.NewAccountOperationRestrictionBody(
				common.AccountRestrictionFlagsTransactionType|common.AccountRestrictionFlagsOutgoing,
				[]common.EntityType{common.EntityTypeTransfer, common.EntityTypeHashLock},
				nil,
			),
		),
		"mosaic address restriction": &restriction.MosaicAddressRestrictionBody{
			MosaicId:                 0x6BED913FA20223F8,
			RestrictionKey:           1,
			PreviousRestrictionValue: 0xFFFFFFFFFFFFFFFF,
			NewRestrictionValue:      2,
			TargetAddress:            address,
		},
		"mosaic global restriction": &restriction.MosaicGlobalRestrictionBody{
			MosaicId:                 0x6BED913FA20223F8,
			RestrictionKey:           1,
			PreviousRestrictionValue: 0,
			NewRestrictionValue:      1,
			PreviousRestrictionType:  common.MosaicRestrictionTypeNone,
			NewRestrictionType:       common.MosaicRestrictionTypeGe,
		},
		"transfer": testTransferBody(t, []byte("hello")),
	}
}

func TestRoundTripAllBodies(t *testing.T) {
	for name, body := range testBodies(t) {
		t.Run(name, func(t *testing.T) {
			keyed, ok := body.(common.Keyed)
			require.True(t, ok)
			assert.True(t, Lookup(keyed.TransactionKey()))
			assert.True(t, LookupEmbedded(keyed.TransactionKey()))

			tx := NewTransaction(testHeader(), body)
			data := EncodeTransaction(tx)
			require.Len(t, data, tx.Size())
			decoded, err := DecodeTransaction(data)
			require.NoError(t, err)
			assert.True(t, decoded.Recognized())
			assert.Equal(t, tx, decoded)
			assert.Equal(t, data, decoded.Bytes())

			embedded := NewEmbeddedTransaction(testEmbeddedHeader(), body)
			data = EncodeEmbeddedTransaction(embedded)
			require.Len(t, data, embedded.Size())
			decodedEmbedded, err := DecodeEmbeddedTransaction(data)
			require.NoError(t, err)
			assert.Equal(t, embedded, decodedEmbedded)
		})
	}
}

func TestRoundTripAggregate(t *testing.T) {
	bodies := testBodies(t)
	var txs []*common.EmbeddedTransaction
	for _, name := range []string{"transfer", "secret proof", "multisig account modification"} {
		txs = append(txs, NewEmbeddedTransaction(testEmbeddedHeader(), bodies[name]))
	}
	cosignature := aggregate.Cosignature{
		SignerPublicKey: common.NewPublicKey(test.DecodeHexString(testSignerHex)),
		Signature:       common.NewSignature(test.DecodeHexString(testSignatureHex)),
	}
	body, err := aggregate.NewAggregateBody(txs, []aggregate.Cosignature{cosignature})
	require.NoError(t, err)
	for name, newTransaction := range map[string]func(
		common.TransactionHeader,
		*aggregate.AggregateBody,
	) *common.Transaction{
		"complete": aggregate.NewCompleteTransaction,
		"bonded":   aggregate.NewBondedTransaction,
	} {
		t.Run(name, func(t *testing.T) {
			tx := newTransaction(testHeader(), body)
			assert.True(t, tx.Type.IsAggregate())
			decoded, err := DecodeTransaction(tx.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tx, decoded)
			decodedBody, err := common.TypedBody[*aggregate.AggregateBody](decoded.Body)
			require.NoError(t, err)
			assert.True(t, decodedBody.VerifyTransactionsHash())
		})
	}
}

func TestEmbeddedTableHasNoAggregates(t *testing.T) {
	for _, key := range []common.TransactionKey{
		aggregate.TransactionKeyAggregateComplete,
		aggregate.TransactionKeyAggregateBonded,
	} {
		assert.True(t, Lookup(key), key.String())
		assert.False(t, LookupEmbedded(key), key.String())
		_, ok := embeddedDecoders[key]
		assert.False(t, ok)
	}
	for key := range embeddedDecoders {
		assert.False(t, key.Type.IsAggregate(), key.String())
	}
}

// An aggregate inside an aggregate is not decoded as one
func TestEmbeddedAggregateIsOpaque(t *testing.T) {
	inner, err := aggregate.NewAggregateBody(nil, nil)
	require.NoError(t, err)
	header := testEmbeddedHeader()
	header.Type = common.EntityTypeAggregateComplete
	header.Version = 1
	embedded := &common.EmbeddedTransaction{EmbeddedTransactionHeader: header, Body: inner}
	data := embedded.Bytes()

	d := NewDecoder(WithLogger(testDiscardLogger()))
	decoded, err := d.DecodeEmbeddedTransaction(data)
	require.NoError(t, err)
	assert.False(t, decoded.Recognized())
	assert.Equal(t, data, decoded.Bytes())

	strict := NewDecoder(WithLogger(testDiscardLogger()), WithStrictTypes(true))
	_, err = strict.DecodeEmbeddedTransaction(data)
	assert.True(t, errors.Is(err, ErrUnrecognizedTransactionType))
}

func TestTransactionKeys(t *testing.T) {
	keys := TransactionKeys()
	embeddedKeys := EmbeddedTransactionKeys()
	assert.Len(t, keys, 24)
	assert.Len(t, embeddedKeys, 22)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, uint16(keys[i-1].Type), uint16(keys[i].Type))
	}
	for _, key := range keys {
		assert.Equal(t, uint8(1), key.Version)
		assert.NotContains(t, key.Type.String(), "Unknown")
	}
	for _, key := range embeddedKeys {
		assert.Contains(t, keys, key)
	}
	assert.False(t, Lookup(common.TransactionKey{Type: common.EntityTypeTransfer, Version: 2}))
	assert.False(t, Lookup(common.TransactionKey{Type: 0x4fff, Version: 1}))
}
