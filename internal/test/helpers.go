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

package test

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline. Whitespace anywhere in the string is ignored,
// so fixtures may be split across lines.
func DecodeHexString(hexData string) []byte {
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// PutUint32 overwrites 4 bytes of data at offset with v in little-endian order
// and returns data
func PutUint32(data []byte, offset int, v uint32) []byte {
	binary.LittleEndian.PutUint32(data[offset:], v)
	return data
}

// WithoutByte returns a copy of data with the byte at idx removed
func WithoutByte(data []byte, idx int) []byte {
	ret := make([]byte, 0, len(data)-1)
	ret = append(ret, data[:idx]...)
	return append(ret, data[idx+1:]...)
}
