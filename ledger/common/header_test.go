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

package common

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/gocatbuffer/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransactionHeader() TransactionHeader {
	return TransactionHeader{
		Signature:       NewSignature(bytes.Repeat([]byte{0x11}, SignatureSize)),
		SignerPublicKey: NewPublicKey(bytes.Repeat([]byte{0x22}, PublicKeySize)),
		Version:         1,
		Network:         NetworkTypeTestnet,
		Type:            EntityTypeTransfer,
		Fee:             0x0102,
		Deadline:        0x0a0b0c,
	}
}

func TestTransactionHeaderLayout(t *testing.T) {
	h := testTransactionHeader()
	w := wire.NewWriter(TransactionHeaderSize)
	h.EncodeWithSize(w, 0xaabbccdd)
	data := w.Bytes()
	require.Len(t, data, TransactionHeaderSize)
	assert.Equal(t, []byte{0xdd, 0xcc, 0xbb, 0xaa}, data[0:4])
	assert.Equal(t, make([]byte, 4), data[4:8])
	assert.Equal(t, h.Signature[:], data[8:72])
	assert.Equal(t, h.SignerPublicKey[:], data[72:104])
	assert.Equal(t, make([]byte, 4), data[104:108])
	assert.Equal(t, byte(1), data[108])
	assert.Equal(t, byte(152), data[109])
	// 16724 little-endian
	assert.Equal(t, []byte{0x54, 0x41}, data[110:112])
	assert.Equal(t, []byte{0x02, 0x01, 0, 0, 0, 0, 0, 0}, data[112:120])
	assert.Equal(t, []byte{0x0c, 0x0b, 0x0a, 0, 0, 0, 0, 0}, data[120:128])

	decoded, size, err := DecodeTransactionHeader(wire.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xaabbccdd), size)
	assert.Equal(t, h, decoded)
	assert.Equal(t, TransactionKey{Type: EntityTypeTransfer, Version: 1}, decoded.Key())
}

func TestEmbeddedTransactionHeaderLayout(t *testing.T) {
	h := EmbeddedTransactionHeader{
		SignerPublicKey: NewPublicKey(bytes.Repeat([]byte{0x33}, PublicKeySize)),
		Version:         1,
		Network:         NetworkTypeMainnet,
		Type:            EntityTypeHashLock,
	}
	w := wire.NewWriter(EmbeddedTransactionHeaderSize)
	h.EncodeWithSize(w, 48)
	data := w.Bytes()
	require.Len(t, data, EmbeddedTransactionHeaderSize)
	assert.Equal(t, []byte{48, 0, 0, 0, 0, 0, 0, 0}, data[0:8])
	assert.Equal(t, h.SignerPublicKey[:], data[8:40])
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 104, 0x48, 0x41}, data[40:48])

	decoded, size, err := DecodeEmbeddedTransactionHeader(wire.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint32(48), size)
	assert.Equal(t, h, decoded)
}

func TestHeaderReservedLenient(t *testing.T) {
	h := testTransactionHeader()
	w := wire.NewWriter(TransactionHeaderSize)
	h.EncodeWithSize(w, TransactionHeaderSize)
	data := w.Bytes()
	data[5] = 0xff
	data[106] = 0xff
	decoded, _, err := DecodeTransactionHeader(wire.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func TestHeaderTruncated(t *testing.T) {
	h := testTransactionHeader()
	w := wire.NewWriter(TransactionHeaderSize)
	h.EncodeWithSize(w, TransactionHeaderSize)
	for _, n := range []int{0, 3, 4, 100, TransactionHeaderSize - 1} {
		_, _, err := DecodeTransactionHeader(wire.NewReader(w.Bytes()[:n]))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnexpectedEndOfInput))
	}
	_, _, err := DecodeEmbeddedTransactionHeader(wire.NewReader(w.Bytes()[:47]))
	assert.True(t, errors.Is(err, ErrUnexpectedEndOfInput))
}
