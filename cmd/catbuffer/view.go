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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blinklabs-io/gocatbuffer/cbor"
	"github.com/blinklabs-io/gocatbuffer/cmd/common"
	"github.com/blinklabs-io/gocatbuffer/ledger/aggregate"
	lcommon "github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
	"github.com/jinzhu/copier"
)

// view is something that can be printed in both output formats
type view interface {
	cborRecord() any
}

type transactionView struct {
	Type            lcommon.EntityType  `json:"type"`
	Version         uint8               `json:"version"`
	Network         lcommon.NetworkType `json:"network"`
	Signature       lcommon.Signature   `json:"signature"`
	SignerPublicKey lcommon.PublicKey   `json:"signerPublicKey"`
	Fee             lcommon.Amount      `json:"fee"`
	Deadline        lcommon.Timestamp   `json:"deadline"`
	Size            int                 `json:"size"`
	Recognized      bool                `json:"recognized"`
	Body            any                 `json:"body"`
	bodyBytes       []byte
}

func newTransactionView(tx *lcommon.Transaction) *transactionView {
	ret := &transactionView{}
	// Header fields share their names with the view
	if err := copier.Copy(ret, &tx.TransactionHeader); err != nil {
		panic(fmt.Sprintf("copy transaction header: %s", err))
	}
	ret.Size = tx.Size()
	ret.Recognized = tx.Recognized()
	ret.Body = tx.Body
	ret.bodyBytes = bodyBytes(tx.Body)
	return ret
}

// cborTransaction is the array form of a transactionView. The body is kept as
// its wire bytes.
type cborTransaction struct {
	cbor.StructAsArray
	Type            uint16
	Version         uint8
	Network         uint8
	Signature       []byte
	SignerPublicKey []byte
	Fee             uint64
	Deadline        uint64
	Size            int
	Recognized      bool
	Body            []byte
}

func (v *transactionView) cborRecord() any {
	return &cborTransaction{
		Type:            uint16(v.Type),
		Version:         v.Version,
		Network:         uint8(v.Network),
		Signature:       v.Signature.Bytes(),
		SignerPublicKey: v.SignerPublicKey.Bytes(),
		Fee:             uint64(v.Fee),
		Deadline:        uint64(v.Deadline),
		Size:            v.Size,
		Recognized:      v.Recognized,
		Body:            v.bodyBytes,
	}
}

type embeddedTransactionView struct {
	Type            lcommon.EntityType  `json:"type"`
	Version         uint8               `json:"version"`
	Network         lcommon.NetworkType `json:"network"`
	SignerPublicKey lcommon.PublicKey   `json:"signerPublicKey"`
	Size            int                 `json:"size"`
	Recognized      bool                `json:"recognized"`
	Body            any                 `json:"body"`
	bodyBytes       []byte
}

func newEmbeddedTransactionView(tx *lcommon.EmbeddedTransaction) *embeddedTransactionView {
	ret := &embeddedTransactionView{}
	if err := copier.Copy(ret, &tx.EmbeddedTransactionHeader); err != nil {
		panic(fmt.Sprintf("copy embedded transaction header: %s", err))
	}
	ret.Size = tx.Size()
	ret.Recognized = tx.Recognized()
	ret.Body = tx.Body
	ret.bodyBytes = bodyBytes(tx.Body)
	return ret
}

type cborEmbeddedTransaction struct {
	cbor.StructAsArray
	Type            uint16
	Version         uint8
	Network         uint8
	SignerPublicKey []byte
	Size            int
	Recognized      bool
	Body            []byte
}

func (v *embeddedTransactionView) cborRecord() any {
	return &cborEmbeddedTransaction{
		Type:            uint16(v.Type),
		Version:         v.Version,
		Network:         uint8(v.Network),
		SignerPublicKey: v.SignerPublicKey.Bytes(),
		Size:            v.Size,
		Recognized:      v.Recognized,
		Body:            v.bodyBytes,
	}
}

type hashView struct {
	cbor.StructAsArray
	TransactionsHash lcommon.Hash256 `json:"transactionsHash"`
	ComputedHash     lcommon.Hash256 `json:"computedHash"`
	Transactions     int             `json:"transactions"`
	Valid            bool            `json:"valid"`
}

func newHashView(body *aggregate.AggregateBody) *hashView {
	computed := aggregate.ComputeTransactionsHash(body.Transactions)
	return &hashView{
		TransactionsHash: body.TransactionsHash,
		ComputedHash:     computed,
		Transactions:     len(body.Transactions),
		Valid:            computed == body.TransactionsHash,
	}
}

func (v *hashView) cborRecord() any {
	return v
}

func bodyBytes(body lcommon.TransactionBody) []byte {
	if body == nil {
		return nil
	}
	w := wire.NewWriter(body.Size())
	body.Encode(w)
	return w.Bytes()
}

func writeOutput(w io.Writer, format string, v view) error {
	switch format {
	case common.FormatCbor:
		data, err := cbor.Encode(v.cborRecord())
		if err != nil {
			return fmt.Errorf("failed to encode CBOR output: %w", err)
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
