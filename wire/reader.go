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

// Reader is a bounded read cursor. It only moves forward.
type Reader struct {
	data []byte
	base int
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Offset returns the absolute position of the cursor, counted from the start of
// the outermost reader
func (r *Reader) Offset() int {
	return r.base + r.pos
}

func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, EndOfInputError{Offset: r.Offset(), Need: n, Have: r.Len()}
	}
	ret := r.data[r.pos : r.pos+n]
	r.pos += n
	return ret, nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err // #nosec G115
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err // #nosec G115
}

// PeekUint32 decodes a uint32 at the cursor without advancing it
func (r *Reader) PeekUint32() (uint32, error) {
	if r.Len() < 4 {
		return 0, EndOfInputError{Offset: r.Offset(), Need: 4, Have: r.Len()}
	}
	return binary.LittleEndian.Uint32(r.data[r.pos:]), nil
}

// ReadFull fills dst from the cursor
func (r *Reader) ReadFull(dst []byte) error {
	b, err := r.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Bytes returns a copy of the next n bytes
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b)
	return ret, nil
}

func (r *Reader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// Sub returns a reader over the next n bytes and advances past them. Reads
// through the returned reader can never reach beyond those n bytes.
func (r *Reader) Sub(n int) (*Reader, error) {
	start := r.Offset()
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	return &Reader{data: b, base: start}, nil
}
