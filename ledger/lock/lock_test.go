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

package lock

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(body common.TransactionBody) []byte {
	w := wire.NewWriter(body.Size())
	body.Encode(w)
	return w.Bytes()
}

func TestHashLockBody(t *testing.T) {
	body := &HashLockBody{
		Mosaic:   common.UnresolvedMosaic{MosaicId: 0x6BED913FA20223F8, Amount: 10000000},
		Duration: 480,
		Hash:     common.Sha3256Hash([]byte("aggregate")),
	}
	data := encode(body)
	require.Len(t, data, 16+8+32)
	assert.Equal(t, []byte{0xe0, 0x01, 0, 0, 0, 0, 0, 0}, data[16:24])
	assert.Equal(t, body.Hash[:], data[24:])
	var decoded HashLockBody
	require.NoError(t, decoded.Decode(wire.NewReader(data)))
	assert.Equal(t, *body, decoded)
}

func TestSecretLockBody(t *testing.T) {
	body := &SecretLockBody{
		RecipientAddress: common.UnresolvedAddress{0x98},
		Secret:           common.NewHash256(bytes.Repeat([]byte{0xab}, 32)),
		Mosaic:           common.UnresolvedMosaic{MosaicId: 1, Amount: 2},
		Duration:         100,
		HashAlgorithm:    common.LockHashAlgorithmHash256,
	}
	data := encode(body)
	require.Len(t, data, 24+32+16+8+1)
	assert.Equal(t, byte(2), data[len(data)-1])
	var decoded SecretLockBody
	require.NoError(t, decoded.Decode(wire.NewReader(data)))
	assert.Equal(t, *body, decoded)
}

func TestSecretProofBody(t *testing.T) {
	proof := []byte{0xde, 0xad, 0xbe, 0xef}
	body, err := NewSecretProofBody(
		common.UnresolvedAddress{0x98},
		common.Sha3256Hash(proof),
		common.LockHashAlgorithmSha3256,
		proof,
	)
	require.NoError(t, err)
	data := encode(body)
	require.Len(t, data, 24+32+2+1+4)
	// Proof size precedes the algorithm
	assert.Equal(t, []byte{0x04, 0x00, 0x00}, data[56:59])
	assert.Equal(t, proof, data[59:])
	var decoded SecretProofBody
	require.NoError(t, decoded.Decode(wire.NewReader(data)))
	assert.Equal(t, *body, decoded)

	_, err = NewSecretProofBody(common.UnresolvedAddress{}, common.Hash256{}, 0, make([]byte, 70000))
	assert.True(t, errors.Is(err, common.ErrFieldTooLarge))
}
