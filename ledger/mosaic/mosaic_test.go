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

package mosaic

import (
	"testing"

	"github.com/blinklabs-io/gocatbuffer/internal/test"
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMosaicDefinitionBody(t *testing.T) {
	body := &MosaicDefinitionBody{
		Id:           0x6BED913FA20223F8,
		Duration:     0,
		Nonce:        0xE6DE84B8,
		Flags:        common.MosaicFlagsSupplyMutable | common.MosaicFlagsTransferable,
		Divisibility: 6,
	}
	w := wire.NewWriter(body.Size())
	body.Encode(w)
	assert.Equal(
		t,
		test.DecodeHexString(
			"F82302A23F91ED6B"+"0000000000000000"+"B884DEE6"+"03"+"06",
		),
		w.Bytes(),
	)
	assert.Equal(t, 22, body.Size())
	var decoded MosaicDefinitionBody
	require.NoError(t, decoded.Decode(wire.NewReader(w.Bytes())))
	assert.Equal(t, *body, decoded)
	assert.True(t, decoded.Flags.Has(common.MosaicFlagsTransferable))
	assert.False(t, decoded.Flags.Has(common.MosaicFlagsRestrictable))
}

func TestMosaicSupplyChangeBody(t *testing.T) {
	body := &MosaicSupplyChangeBody{
		MosaicId: 0x6BED913FA20223F8,
		Delta:    1000,
		Action:   common.MosaicSupplyChangeActionIncrease,
	}
	w := wire.NewWriter(body.Size())
	body.Encode(w)
	assert.Equal(
		t,
		test.DecodeHexString("F82302A23F91ED6B"+"E803000000000000"+"01"),
		w.Bytes(),
	)
	var decoded MosaicSupplyChangeBody
	require.NoError(t, decoded.Decode(wire.NewReader(w.Bytes())))
	assert.Equal(t, *body, decoded)
	assert.Equal(t, TransactionKeyMosaicSupplyChange, decoded.TransactionKey())
}
