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
	"errors"
	"testing"

	"github.com/blinklabs-io/gocatbuffer/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKeyedBody struct {
	Value uint16
}

func (b *testKeyedBody) layout() wire.Layout {
	return wire.Layout{wire.U16(&b.Value)}
}

func (b *testKeyedBody) Size() int {
	return b.layout().Size()
}

func (b *testKeyedBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *testKeyedBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}

func (b *testKeyedBody) TransactionKey() TransactionKey {
	return TransactionKey{Type: EntityTypeTransfer, Version: 1}
}

func TestNewTransactionTakesBodyKey(t *testing.T) {
	tx := NewTransaction(
		TransactionHeader{Network: NetworkTypeTestnet, Type: EntityTypeHashLock, Version: 9},
		&testKeyedBody{Value: 7},
	)
	assert.Equal(t, EntityTypeTransfer, tx.Type)
	assert.Equal(t, uint8(1), tx.Version)
	assert.Equal(t, TransactionHeaderSize+2, tx.Size())
	data := tx.Bytes()
	require.Len(t, data, tx.Size())
	assert.Equal(t, []byte{130, 0, 0, 0}, data[0:4])
	assert.Equal(t, []byte{7, 0}, data[128:])
	assert.True(t, tx.Recognized())
}

func TestNewTransactionUnkeyedBody(t *testing.T) {
	tx := NewTransaction(
		TransactionHeader{Type: EntityType(0x4242), Version: 3},
		&OpaqueBody{Data: []byte{1, 2, 3}},
	)
	assert.Equal(t, EntityType(0x4242), tx.Type)
	assert.Equal(t, uint8(3), tx.Version)
	assert.False(t, tx.Recognized())
	assert.Equal(t, []byte{1, 2, 3}, tx.Bytes()[TransactionHeaderSize:])
}

func TestEmbeddedTransactionPadding(t *testing.T) {
	tx := NewEmbeddedTransaction(
		EmbeddedTransactionHeader{Network: NetworkTypeMainnet},
		&testKeyedBody{Value: 0xffff},
	)
	assert.Equal(t, 50, tx.Size())
	assert.Equal(t, 56, tx.PaddedSize())
	w := wire.NewWriter(tx.PaddedSize())
	tx.EncodePadded(w)
	data := w.Bytes()
	require.Len(t, data, 56)
	assert.Equal(t, []byte{50, 0, 0, 0}, data[0:4])
	assert.Equal(t, []byte{0xff, 0xff, 0, 0, 0, 0, 0, 0}, data[48:])
	assert.Equal(t, data[:50], tx.Bytes())
}

func TestDecodeBody(t *testing.T) {
	decode := DecodeBody[testKeyedBody]()
	body, err := decode(wire.NewReader([]byte{0x34, 0x12}))
	require.NoError(t, err)
	typed, err := TypedBody[*testKeyedBody](body)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), typed.Value)

	_, err = decode(wire.NewReader([]byte{0x34}))
	assert.True(t, errors.Is(err, ErrUnexpectedEndOfInput))
}

func TestTypedBodyWrongVariant(t *testing.T) {
	_, err := TypedBody[*testKeyedBody](&OpaqueBody{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestOpaqueBodyDecode(t *testing.T) {
	var body OpaqueBody
	r := wire.NewReader([]byte{9, 8, 7})
	require.NoError(t, body.Decode(r))
	assert.Equal(t, []byte{9, 8, 7}, body.Data)
	assert.Equal(t, 0, r.Len())

	require.NoError(t, body.Decode(wire.NewReader(nil)))
	assert.Nil(t, body.Data)
	assert.Equal(t, 0, body.Size())
}

func TestTransactionNilBody(t *testing.T) {
	tx := &Transaction{}
	assert.Equal(t, TransactionHeaderSize, tx.Size())
	assert.Len(t, tx.Bytes(), TransactionHeaderSize)
}

func TestErrors(t *testing.T) {
	err := UnrecognizedTransactionTypeError{Type: EntityType(1), Version: 2}
	assert.True(t, errors.Is(err, ErrUnrecognizedTransactionType))
	assert.Equal(t, "unrecognized transaction type: Unknown(1) (1) version 2", err.Error())

	sizeErr := DeclaredSizeError{Declared: 10, Actual: 12, Reason: "trailing bytes"}
	assert.True(t, errors.Is(sizeErr, ErrDeclaredSizeMismatch))
	assert.Equal(t, "declared size 10 does not match actual size 12: trailing bytes", sizeErr.Error())

	aggErr := MalformedAggregateError{
		Offset: 170,
		Reason: "partial cosignature",
		Err:    wire.EndOfInputError{Offset: 170, Need: 96, Have: 20},
	}
	assert.True(t, errors.Is(aggErr, ErrMalformedAggregatePayload))
	assert.True(t, errors.Is(aggErr, ErrUnexpectedEndOfInput))
}

func TestCheckPrefix(t *testing.T) {
	testDefs := []struct {
		length  int
		width   int
		tooLong bool
	}{
		{length: 0, width: 1},
		{length: 255, width: 1},
		{length: 256, width: 1, tooLong: true},
		{length: 0xffff, width: 2},
		{length: 0x10000, width: 2, tooLong: true},
		{length: 0x10000, width: 4},
		{length: 1 << 40, width: 8},
	}
	for _, testDef := range testDefs {
		err := CheckPrefix("items", testDef.length, testDef.width)
		if !testDef.tooLong {
			assert.NoError(t, err, "length %d width %d", testDef.length, testDef.width)
			continue
		}
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFieldTooLarge))
		var tooLarge FieldTooLargeError
		require.True(t, errors.As(err, &tooLarge))
		assert.Equal(t, "items", tooLarge.Field)
		assert.Equal(t, uint64(1)<<(8*testDef.width)-1, tooLarge.Max)
	}
}
