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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gocatbuffer/cbor"
	"github.com/blinklabs-io/gocatbuffer/ledger"
	lcommon "github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

// encodeTransaction rebuilds the wire bytes of a transaction from the CBOR
// record printed by "decode --format cbor". The result is decoded again with d
// so only records that describe a valid transaction are accepted.
func encodeTransaction(d *ledger.Decoder, data []byte) ([]byte, error) {
	if cbor.MajorType(data) != cbor.CborTypeArray {
		return nil, errors.New("input is not a CBOR transaction record")
	}
	var record cborTransaction
	n, err := cbor.Decode(data, &record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CBOR record: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf(
			"%d trailing bytes after CBOR record",
			len(data)-n,
		)
	}
	if len(record.Signature) != lcommon.SignatureSize {
		return nil, fmt.Errorf(
			"signature has length %d, expected %d",
			len(record.Signature),
			lcommon.SignatureSize,
		)
	}
	if len(record.SignerPublicKey) != lcommon.PublicKeySize {
		return nil, fmt.Errorf(
			"signer public key has length %d, expected %d",
			len(record.SignerPublicKey),
			lcommon.PublicKeySize,
		)
	}
	size := lcommon.TransactionHeaderSize + len(record.Body)
	if record.Size != size {
		return nil, fmt.Errorf(
			"record size %d does not match header and body size %d",
			record.Size,
			size,
		)
	}
	header := lcommon.TransactionHeader{
		Signature:       lcommon.NewSignature(record.Signature),
		SignerPublicKey: lcommon.NewPublicKey(record.SignerPublicKey),
		Version:         record.Version,
		Network:         lcommon.NetworkType(record.Network),
		Type:            lcommon.EntityType(record.Type),
		Fee:             lcommon.Amount(record.Fee),
		Deadline:        lcommon.Timestamp(record.Deadline),
	}
	w := wire.NewWriter(size)
	header.EncodeWithSize(w, uint32(size)) // #nosec G115
	w.Write(record.Body)
	ret := w.Bytes()
	tx, err := d.DecodeTransaction(ret)
	if err != nil {
		return nil, fmt.Errorf("record does not describe a valid transaction: %w", err)
	}
	if tx.Recognized() != record.Recognized {
		return nil, fmt.Errorf(
			"record recognized flag is %t but %s decodes as %t",
			record.Recognized,
			tx.Key().String(),
			tx.Recognized(),
		)
	}
	return ret, nil
}
