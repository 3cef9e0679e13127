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
	"encoding/binary"
)

// Writer is an append-only byte sink passed explicitly through nested encoders
type Writer struct {
	buf []byte
}

// NewWriter returns a writer with capacity for sizeHint bytes
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, max(sizeHint, 0))}
}

func (w *Writer) PutUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) PutUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) PutUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) PutUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) PutInt8(v int8) {
	w.PutUint8(uint8(v)) // #nosec G115
}

func (w *Writer) PutInt16(v int16) {
	w.PutUint16(uint16(v)) // #nosec G115
}

func (w *Writer) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

// Pad appends n zero bytes
func (w *Writer) Pad(n int) {
	for range n {
		w.buf = append(w.buf, 0)
	}
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// PaddingSize returns the number of zero bytes needed after size bytes to reach
// the next multiple of alignment. An alignment of 0 never pads.
func PaddingSize(size int, alignment int) int {
	if alignment == 0 || size%alignment == 0 {
		return 0
	}
	return alignment - (size % alignment)
}

func SizeWithPadding(size int, alignment int) int {
	return size + PaddingSize(size, alignment)
}
