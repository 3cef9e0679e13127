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

package multisig

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultisigAccountModificationBody(t *testing.T) {
	testDefs := []struct {
		name         string
		removal      int8
		approval     int8
		additions    []common.UnresolvedAddress
		deletions    []common.UnresolvedAddress
		expectedSize int
	}{
		{
			name:         "empty",
			expectedSize: 8,
		},
		{
			name:     "two additions",
			removal:  1,
			approval: 2,
			additions: []common.UnresolvedAddress{
				{0x98, 0x01},
				{0x98, 0x02},
			},
			expectedSize: 8 + 48,
		},
		{
			name:         "negative deltas with deletion",
			removal:      -1,
			approval:     -1,
			deletions:    []common.UnresolvedAddress{{0x98, 0x03}},
			expectedSize: 8 + 24,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			body, err := NewMultisigAccountModificationBody(
				testDef.removal,
				testDef.approval,
				testDef.additions,
				testDef.deletions,
			)
			require.NoError(t, err)
			w := wire.NewWriter(body.Size())
			body.Encode(w)
			data := w.Bytes()
			require.Len(t, data, testDef.expectedSize)
			// #nosec G115
			assert.Equal(t, byte(testDef.removal), data[0])
			assert.Equal(t, byte(len(testDef.additions)), data[2])
			assert.Equal(t, byte(len(testDef.deletions)), data[3])
			var decoded MultisigAccountModificationBody
			require.NoError(t, decoded.Decode(wire.NewReader(data)))
			assert.Equal(t, *body, decoded)
		})
	}
}

func TestMultisigAccountModificationTooMany(t *testing.T) {
	_, err := NewMultisigAccountModificationBody(
		0,
		0,
		make([]common.UnresolvedAddress, 300),
		nil,
	)
	assert.True(t, errors.Is(err, common.ErrFieldTooLarge))
}

func TestMultisigAccountModificationHugeCount(t *testing.T) {
	// 255 additions declared, none supplied
	data := []byte{0, 0, 0xff, 0, 0, 0, 0, 0}
	var decoded MultisigAccountModificationBody
	err := decoded.Decode(wire.NewReader(data))
	assert.True(t, errors.Is(err, common.ErrUnexpectedEndOfInput))
}
