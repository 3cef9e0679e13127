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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gocatbuffer/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

type testArrayStruct struct {
	cbor.StructAsArray
	A uint64
	B []byte
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted
	{
		CborHex: "a2616101616202",
		Object:  map[string]int{"b": 2, "a": 1},
	},
	// Struct as array
	{
		CborHex: "82182a42abcd",
		Object:  testArrayStruct{A: 42, B: []byte{0xab, 0xcd}},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		require.NoError(t, err)
		assert.Equal(t, test.CborHex, hex.EncodeToString(cborData))
	}
}

func TestDecodeStructAsArray(t *testing.T) {
	data, err := hex.DecodeString("82182a42abcdff")
	require.NoError(t, err)
	var dest testArrayStruct
	n, err := cbor.Decode(data, &dest)
	require.NoError(t, err)
	// Trailing data is not consumed
	assert.Equal(t, 6, n)
	assert.Equal(t, uint64(42), dest.A)
	assert.Equal(t, []byte{0xab, 0xcd}, dest.B)
}

func TestDecodeArrayLength(t *testing.T) {
	for _, cborHex := range []string{"81182a", "83182a42abcd01"} {
		data, err := hex.DecodeString(cborHex)
		require.NoError(t, err)
		var dest testArrayStruct
		_, err = cbor.Decode(data, &dest)
		assert.Error(t, err, cborHex)
	}
}

func TestMajorType(t *testing.T) {
	assert.Equal(t, cbor.CborTypeArray, cbor.MajorType([]byte{0x83}))
	assert.Equal(t, uint8(0x40), cbor.MajorType([]byte{0x58, 0x20}))
	assert.NotEqual(t, cbor.CborTypeArray, cbor.MajorType([]byte{0xa1}))
	assert.Equal(t, uint8(0), cbor.MajorType(nil))
}
