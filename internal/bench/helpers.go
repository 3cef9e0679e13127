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

// Package bench provides benchmark fixtures for the transaction codec.
package bench

import (
	"fmt"

	"github.com/blinklabs-io/gocatbuffer/ledger"
	"github.com/blinklabs-io/gocatbuffer/ledger/aggregate"
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/ledger/transfer"
)

// TxFixture is a pre-encoded transaction for benchmarking.
type TxFixture struct {
	Name string
	Data []byte
	Tx   *common.Transaction
}

func benchHeader(entityType common.EntityType) common.TransactionHeader {
	return common.TransactionHeader{
		Network: common.NetworkTypeTestnet,
		Type:    entityType,
		Version: 1,
		Fee:     1_000_000,
	}
}

func benchTransfer(message []byte, mosaics int) (*transfer.TransferBody, error) {
	entries := make([]common.UnresolvedMosaic, mosaics)
	for i := range entries {
		entries[i] = common.UnresolvedMosaic{
			MosaicId: common.UnresolvedMosaicId(i + 1), // #nosec G115
			Amount:   common.Amount(i * 10),            // #nosec G115
		}
	}
	return transfer.NewTransferBody(common.UnresolvedAddress{0x98}, entries, message)
}

// TransferFixture returns a transfer with the given number of mosaics and a
// short message
func TransferFixture(mosaics int) (*TxFixture, error) {
	body, err := benchTransfer([]byte("benchmark"), mosaics)
	if err != nil {
		return nil, err
	}
	tx := ledger.NewTransaction(benchHeader(common.EntityTypeTransfer), body)
	return &TxFixture{
		Name: fmt.Sprintf("Transfer_%d", mosaics),
		Data: tx.Bytes(),
		Tx:   tx,
	}, nil
}

// AggregateFixture returns a complete aggregate holding count embedded
// transfers and as many cosignatures
func AggregateFixture(count int) (*TxFixture, error) {
	txs := make([]*common.EmbeddedTransaction, 0, count)
	cosignatures := make([]aggregate.Cosignature, count)
	for i := range count {
		body, err := benchTransfer([]byte{byte(i)}, 1)
		if err != nil {
			return nil, err
		}
		txs = append(
			txs,
			ledger.NewEmbeddedTransaction(
				common.EmbeddedTransactionHeader{Network: common.NetworkTypeTestnet},
				body,
			),
		)
		cosignatures[i].SignerPublicKey[0] = byte(i)
	}
	body, err := aggregate.NewAggregateBody(txs, cosignatures)
	if err != nil {
		return nil, err
	}
	tx := aggregate.NewCompleteTransaction(
		benchHeader(common.EntityTypeAggregateComplete),
		body,
	)
	return &TxFixture{
		Name: fmt.Sprintf("Aggregate_%d", count),
		Data: tx.Bytes(),
		Tx:   tx,
	}, nil
}

// MustLoadFixtures returns the standard set of fixtures, panicking on error.
func MustLoadFixtures() []*TxFixture {
	var ret []*TxFixture
	for _, load := range []func() (*TxFixture, error){
		func() (*TxFixture, error) { return TransferFixture(1) },
		func() (*TxFixture, error) { return TransferFixture(32) },
		func() (*TxFixture, error) { return AggregateFixture(1) },
		func() (*TxFixture, error) { return AggregateFixture(100) },
	} {
		fixture, err := load()
		if err != nil {
			panic(fmt.Sprintf("failed to load fixture: %s", err))
		}
		ret = append(ret, fixture)
	}
	return ret
}
