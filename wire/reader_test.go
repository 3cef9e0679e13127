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

package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	r := NewReader([]byte{
		0x01,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01,
		0xff,
		0xfe, 0xff,
	})
	u8, err := r.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)
	u16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)
	u32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)
	u64, err := r.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789abcdef), u64)
	i8, err := r.Int8()
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8)
	i16, err := r.Int16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 18, r.Offset())
}

func TestReaderEndOfInput(t *testing.T) {
	testDefs := []struct {
		name string
		read func(*Reader) error
	}{
		{
			name: "uint16",
			read: func(r *Reader) error { _, err := r.Uint16(); return err },
		},
		{
			name: "uint32",
			read: func(r *Reader) error { _, err := r.Uint32(); return err },
		},
		{
			name: "uint64",
			read: func(r *Reader) error { _, err := r.Uint64(); return err },
		},
		{
			name: "peek",
			read: func(r *Reader) error { _, err := r.PeekUint32(); return err },
		},
		{
			name: "bytes",
			read: func(r *Reader) error { _, err := r.Bytes(2); return err },
		},
		{
			name: "skip",
			read: func(r *Reader) error { return r.Skip(2) },
		},
		{
			name: "sub",
			read: func(r *Reader) error { _, err := r.Sub(2); return err },
		},
		{
			name: "negative",
			read: func(r *Reader) error { return r.Skip(-1) },
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			r := NewReader([]byte{0xaa})
			err := testDef.read(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnexpectedEndOfInput))
			var eoi EndOfInputError
			require.True(t, errors.As(err, &eoi))
			assert.Equal(t, 0, eoi.Offset)
			assert.Equal(t, 1, eoi.Have)
			// A failed read does not consume anything
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestReaderPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0x10, 0, 0, 0, 0xaa})
	v, err := r.PeekUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(16), v)
	assert.Equal(t, 5, r.Len())
}

func TestReaderBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	r := NewReader(src)
	b, err := r.Bytes(3)
	require.NoError(t, err)
	src[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestReaderSub(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, r.Skip(1))
	sub, err := r.Sub(3)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 1, sub.Offset())
	assert.Equal(t, 2, r.Len())
	// The child cannot read past its own bound
	_, err = sub.Uint32()
	require.Error(t, err)
	var eoi EndOfInputError
	require.True(t, errors.As(err, &eoi))
	assert.Equal(t, 1, eoi.Offset)
	assert.Equal(t, 3, eoi.Have)
	v, err := sub.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), v)
	assert.Equal(t, 3, sub.Offset())
}
