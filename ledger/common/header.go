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
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const (
	TransactionHeaderSize         = 128
	EmbeddedTransactionHeaderSize = 48

	// Embedded transactions are aligned to this many bytes inside an aggregate
	EmbeddedTransactionAlignment = 8
)

// TransactionHeader is the common prefix of every standalone transaction. The
// leading size field is not kept here: it is derived from the body on encode
// and checked against the input on decode.
type TransactionHeader struct {
	Signature       Signature   `json:"signature"`
	SignerPublicKey PublicKey   `json:"signerPublicKey"`
	Version         uint8       `json:"version"`
	Network         NetworkType `json:"network"`
	Type            EntityType  `json:"type"`
	Fee             Amount      `json:"fee"`
	Deadline        Timestamp   `json:"deadline"`
}

func (h *TransactionHeader) layout() wire.Layout {
	return wire.Layout{
		wire.Reserved(4),
		wire.Fixed(h.Signature[:]),
		wire.Fixed(h.SignerPublicKey[:]),
		wire.Reserved(4),
		wire.U8(&h.Version),
		wire.U8(&h.Network),
		wire.U16(&h.Type),
		wire.U64(&h.Fee),
		wire.U64(&h.Deadline),
	}
}

// Key returns the dispatch key for the header
func (h TransactionHeader) Key() TransactionKey {
	return TransactionKey{Type: h.Type, Version: h.Version}
}

// EncodeWithSize writes the header, led by the declared size of the whole
// transaction
func (h *TransactionHeader) EncodeWithSize(w *wire.Writer, size uint32) {
	w.PutUint32(size)
	h.layout().Encode(w)
}

// DecodeTransactionHeader reads a header and returns it with its declared size
func DecodeTransactionHeader(r *wire.Reader) (TransactionHeader, uint32, error) {
	var h TransactionHeader
	size, err := r.Uint32()
	if err != nil {
		return h, 0, err
	}
	if err := h.layout().Decode(r); err != nil {
		return TransactionHeader{}, 0, err
	}
	return h, size, nil
}

// EmbeddedTransactionHeader is the common prefix of a transaction carried
// inside an aggregate. It has no signature, fee or deadline.
type EmbeddedTransactionHeader struct {
	SignerPublicKey PublicKey   `json:"signerPublicKey"`
	Version         uint8       `json:"version"`
	Network         NetworkType `json:"network"`
	Type            EntityType  `json:"type"`
}

func (h *EmbeddedTransactionHeader) layout() wire.Layout {
	return wire.Layout{
		wire.Reserved(4),
		wire.Fixed(h.SignerPublicKey[:]),
		wire.Reserved(4),
		wire.U8(&h.Version),
		wire.U8(&h.Network),
		wire.U16(&h.Type),
	}
}

func (h EmbeddedTransactionHeader) Key() TransactionKey {
	return TransactionKey{Type: h.Type, Version: h.Version}
}

func (h *EmbeddedTransactionHeader) EncodeWithSize(w *wire.Writer, size uint32) {
	w.PutUint32(size)
	h.layout().Encode(w)
}

func DecodeEmbeddedTransactionHeader(
	r *wire.Reader,
) (EmbeddedTransactionHeader, uint32, error) {
	var h EmbeddedTransactionHeader
	size, err := r.Uint32()
	if err != nil {
		return h, 0, err
	}
	if err := h.layout().Decode(r); err != nil {
		return EmbeddedTransactionHeader{}, 0, err
	}
	return h, size, nil
}
