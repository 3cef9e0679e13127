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

package aggregate

import (
	"fmt"

	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	AggregateCompleteVersion = 1
	AggregateBondedVersion   = 1

	CosignatureSize = common.PublicKeySize + common.SignatureSize

	// Transactions hash, payload size and reserved
	aggregateFixedSize = common.Hash256Size + 4 + 4
)

var (
	TransactionKeyAggregateComplete = common.TransactionKey{
		Type:    common.EntityTypeAggregateComplete,
		Version: AggregateCompleteVersion,
	}
	TransactionKeyAggregateBonded = common.TransactionKey{
		Type:    common.EntityTypeAggregateBonded,
		Version: AggregateBondedVersion,
	}
)

// Cosignature is one additional signer of an aggregate
type Cosignature struct {
	SignerPublicKey common.PublicKey `json:"signerPublicKey"`
	Signature       common.Signature `json:"signature"`
}

func (c *Cosignature) layout() wire.Layout {
	return wire.Layout{
		wire.Fixed(c.SignerPublicKey[:]),
		wire.Fixed(c.Signature[:]),
	}
}

func (c *Cosignature) Size() int {
	return CosignatureSize
}

func (c *Cosignature) Encode(w *wire.Writer) {
	c.layout().Encode(w)
}

func (c *Cosignature) Decode(r *wire.Reader) error {
	return c.layout().Decode(r)
}

// EmbeddedDecoder decodes one embedded transaction and must consume all of r
type EmbeddedDecoder func(r *wire.Reader) (*common.EmbeddedTransaction, error)

// AggregateBody is shared by complete and bonded aggregates. The payload size
// written on the wire is always derived from Transactions.
type AggregateBody struct {
	TransactionsHash common.Hash256                `json:"transactionsHash"`
	Transactions     []*common.EmbeddedTransaction `json:"transactions,omitempty"`
	Cosignatures     []Cosignature                 `json:"cosignatures,omitempty"`
}

// NewAggregateBody builds an aggregate body and computes its transactions hash
func NewAggregateBody(
	txs []*common.EmbeddedTransaction,
	cosignatures []Cosignature,
) (*AggregateBody, error) {
	return NewAggregateBodyWithHash(
		ComputeTransactionsHash(txs),
		txs,
		cosignatures,
	)
}

// NewAggregateBodyWithHash builds an aggregate body with a caller supplied
// transactions hash
func NewAggregateBodyWithHash(
	hash common.Hash256,
	txs []*common.EmbeddedTransaction,
	cosignatures []Cosignature,
) (*AggregateBody, error) {
	payloadSize := 0
	for idx, tx := range txs {
		if tx == nil {
			return nil, fmt.Errorf("embedded transaction %d is nil", idx)
		}
		payloadSize += tx.PaddedSize()
	}
	if err := common.CheckPrefix("aggregate payload", payloadSize, 4); err != nil {
		return nil, err
	}
	ret := &AggregateBody{TransactionsHash: hash}
	if len(txs) > 0 {
		ret.Transactions = txs
	}
	if len(cosignatures) > 0 {
		ret.Cosignatures = cosignatures
	}
	return ret, nil
}

// NewCompleteTransaction frames body as an aggregate complete transaction.
// The body is shared by both aggregate kinds, so the type and version come
// from the constructor rather than from the body.
func NewCompleteTransaction(
	header common.TransactionHeader,
	body *AggregateBody,
) *common.Transaction {
	return newTransaction(header, body, TransactionKeyAggregateComplete)
}

// NewBondedTransaction frames body as an aggregate bonded transaction
func NewBondedTransaction(
	header common.TransactionHeader,
	body *AggregateBody,
) *common.Transaction {
	return newTransaction(header, body, TransactionKeyAggregateBonded)
}

func newTransaction(
	header common.TransactionHeader,
	body *AggregateBody,
	key common.TransactionKey,
) *common.Transaction {
	header.Type = key.Type
	header.Version = key.Version
	return &common.Transaction{TransactionHeader: header, Body: body}
}

// PayloadSize is the space taken by the padded embedded transactions
func (b *AggregateBody) PayloadSize() int {
	ret := 0
	for _, tx := range b.Transactions {
		ret += tx.PaddedSize()
	}
	return ret
}

func (b *AggregateBody) Size() int {
	return aggregateFixedSize + b.PayloadSize() + len(b.Cosignatures)*CosignatureSize
}

func (b *AggregateBody) Encode(w *wire.Writer) {
	w.Write(b.TransactionsHash[:])
	w.PutUint32(uint32(b.PayloadSize())) // #nosec G115
	w.PutUint32(0)
	for _, tx := range b.Transactions {
		tx.EncodePadded(w)
	}
	for i := range b.Cosignatures {
		b.Cosignatures[i].Encode(w)
	}
}

// VerifyTransactionsHash reports whether the stored hash matches the embedded
// transactions
func (b *AggregateBody) VerifyTransactionsHash() bool {
	return b.TransactionsHash == ComputeTransactionsHash(b.Transactions)
}

// DecodeAggregateBody decodes an aggregate body from a reader bounded to the
// body bytes. Each embedded transaction is handed to decodeEmbedded on a
// reader bounded to its declared size.
func DecodeAggregateBody(
	r *wire.Reader,
	decodeEmbedded EmbeddedDecoder,
) (*AggregateBody, error) {
	ret := &AggregateBody{}
	if err := ret.TransactionsHash.Decode(r); err != nil {
		return nil, err
	}
	payloadSize, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(4); err != nil {
		return nil, err
	}
	if uint64(payloadSize) > uint64(r.Len()) {
		return nil, common.MalformedAggregateError{
			Offset: r.Offset(),
			Reason: fmt.Sprintf(
				"payload size %d exceeds remaining %d bytes",
				payloadSize,
				r.Len(),
			),
		}
	}
	payload, err := r.Sub(int(payloadSize))
	if err != nil {
		return nil, err
	}
	txs, err := decodePayload(payload, decodeEmbedded)
	if err != nil {
		return nil, err
	}
	ret.Transactions = txs
	cosignatures, err := decodeCosignatures(r)
	if err != nil {
		return nil, err
	}
	ret.Cosignatures = cosignatures
	return ret, nil
}

func decodePayload(
	payload *wire.Reader,
	decodeEmbedded EmbeddedDecoder,
) ([]*common.EmbeddedTransaction, error) {
	var ret []*common.EmbeddedTransaction
	for payload.Len() > 0 {
		offset := payload.Offset()
		size, err := payload.PeekUint32()
		if err != nil {
			return nil, common.MalformedAggregateError{
				Offset: offset,
				Reason: "partial embedded transaction size",
				Err:    err,
			}
		}
		if size < common.EmbeddedTransactionHeaderSize {
			return nil, common.MalformedAggregateError{
				Offset: offset,
				Reason: fmt.Sprintf("embedded transaction size %d is too small", size),
			}
		}
		paddedSize := wire.SizeWithPadding(
			int(size),
			common.EmbeddedTransactionAlignment,
		)
		if paddedSize > payload.Len() {
			return nil, common.MalformedAggregateError{
				Offset: offset,
				Reason: fmt.Sprintf(
					"embedded transaction of %d bytes overshoots payload, %d bytes remain",
					paddedSize,
					payload.Len(),
				),
			}
		}
		txReader, err := payload.Sub(int(size))
		if err != nil {
			return nil, err
		}
		tx, err := decodeEmbedded(txReader)
		if err != nil {
			return nil, fmt.Errorf(
				"decode embedded transaction at offset %d: %w",
				offset,
				err,
			)
		}
		// Padding bytes are not checked
		if err := payload.Skip(paddedSize - int(size)); err != nil {
			return nil, err
		}
		ret = append(ret, tx)
	}
	return ret, nil
}

func decodeCosignatures(r *wire.Reader) ([]Cosignature, error) {
	if r.Len()%CosignatureSize != 0 {
		return nil, common.MalformedAggregateError{
			Offset: r.Offset() + r.Len() - r.Len()%CosignatureSize,
			Reason: fmt.Sprintf(
				"partial cosignature of %d bytes",
				r.Len()%CosignatureSize,
			),
		}
	}
	if r.Len() == 0 {
		return nil, nil
	}
	ret := make([]Cosignature, r.Len()/CosignatureSize)
	for i := range ret {
		if err := ret[i].Decode(r); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// NewBodyDecoder returns a BodyDecoder for aggregate bodies that decodes its
// embedded transactions with decodeEmbedded
func NewBodyDecoder(decodeEmbedded EmbeddedDecoder) common.BodyDecoder {
	return func(r *wire.Reader) (common.TransactionBody, error) {
		body, err := DecodeAggregateBody(r, decodeEmbedded)
		if err != nil {
			return nil, err
		}
		return body, nil
	}
}
