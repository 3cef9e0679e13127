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
	"fmt"

	"github.com/blinklabs-io/gocatbuffer/wire"
)

// TransactionKey selects a body decoder
type TransactionKey struct {
	Type    EntityType
	Version uint8
}

func (k TransactionKey) String() string {
	return fmt.Sprintf("%s/v%d", k.Type.String(), k.Version)
}

// TransactionBody is the contract every typed body satisfies. Decoding is
// provided separately through a BodyDecoder.
type TransactionBody interface {
	Size() int
	Encode(w *wire.Writer)
}

// Keyed is implemented by bodies that belong to exactly one dispatch key
type Keyed interface {
	TransactionKey() TransactionKey
}

// BodyDecoder decodes a body from a reader bounded to the body bytes
type BodyDecoder func(r *wire.Reader) (TransactionBody, error)

type bodyPtr[T any] interface {
	*T
	TransactionBody
	Decode(r *wire.Reader) error
}

// DecodeBody adapts a body type with its own Decode method to a BodyDecoder
func DecodeBody[T any, PT bodyPtr[T]]() BodyDecoder {
	return func(r *wire.Reader) (TransactionBody, error) {
		var body T
		if err := PT(&body).Decode(r); err != nil {
			return nil, err
		}
		return PT(&body), nil
	}
}

// TypedBody returns body as T, or ErrInvalidState if it is some other variant
func TypedBody[T TransactionBody](body TransactionBody) (T, error) {
	ret, ok := body.(T)
	if !ok {
		return ret, fmt.Errorf(
			"%w: body is %T, not %T",
			ErrInvalidState,
			body,
			ret,
		)
	}
	return ret, nil
}

// OpaqueBody holds the body bytes of a transaction with no registered decoder
type OpaqueBody struct {
	Data []byte `json:"data"`
}

func (b *OpaqueBody) Size() int {
	return len(b.Data)
}

func (b *OpaqueBody) Encode(w *wire.Writer) {
	w.Write(b.Data)
}

// Decode consumes everything left in r
func (b *OpaqueBody) Decode(r *wire.Reader) error {
	b.Data = nil
	if r.Len() == 0 {
		return nil
	}
	data, err := r.Bytes(r.Len())
	if err != nil {
		return err
	}
	b.Data = data
	return nil
}

func bodySize(body TransactionBody) int {
	if body == nil {
		return 0
	}
	return body.Size()
}

func encodeBody(w *wire.Writer, body TransactionBody) {
	if body != nil {
		body.Encode(w)
	}
}

func isOpaque(body TransactionBody) bool {
	_, ok := body.(*OpaqueBody)
	return ok
}

// Transaction is a standalone transaction
type Transaction struct {
	TransactionHeader
	Body TransactionBody `json:"body"`
}

// NewTransaction pairs a header and a body. The header type and version are
// taken from the body when it knows its own key.
func NewTransaction(header TransactionHeader, body TransactionBody) *Transaction {
	if keyed, ok := body.(Keyed); ok {
		key := keyed.TransactionKey()
		header.Type = key.Type
		header.Version = key.Version
	}
	return &Transaction{TransactionHeader: header, Body: body}
}

// Size is the framed size, which is also the declared size
func (t *Transaction) Size() int {
	return TransactionHeaderSize + bodySize(t.Body)
}

func (t *Transaction) Encode(w *wire.Writer) {
	t.EncodeWithSize(w, uint32(t.Size())) // #nosec G115
	encodeBody(w, t.Body)
}

func (t *Transaction) Bytes() []byte {
	w := wire.NewWriter(t.Size())
	t.Encode(w)
	return w.Bytes()
}

// Recognized reports whether the body was decoded by a typed decoder
func (t *Transaction) Recognized() bool {
	return !isOpaque(t.Body)
}

// EmbeddedTransaction is a transaction carried inside an aggregate
type EmbeddedTransaction struct {
	EmbeddedTransactionHeader
	Body TransactionBody `json:"body"`
}

func NewEmbeddedTransaction(
	header EmbeddedTransactionHeader,
	body TransactionBody,
) *EmbeddedTransaction {
	if keyed, ok := body.(Keyed); ok {
		key := keyed.TransactionKey()
		header.Type = key.Type
		header.Version = key.Version
	}
	return &EmbeddedTransaction{EmbeddedTransactionHeader: header, Body: body}
}

// Size is the unpadded framed size, which is also the declared size
func (t *EmbeddedTransaction) Size() int {
	return EmbeddedTransactionHeaderSize + bodySize(t.Body)
}

// PaddedSize is the space the transaction occupies inside an aggregate
func (t *EmbeddedTransaction) PaddedSize() int {
	return wire.SizeWithPadding(t.Size(), EmbeddedTransactionAlignment)
}

func (t *EmbeddedTransaction) Encode(w *wire.Writer) {
	t.EncodeWithSize(w, uint32(t.Size())) // #nosec G115
	encodeBody(w, t.Body)
}

// EncodePadded writes the transaction followed by its alignment padding
func (t *EmbeddedTransaction) EncodePadded(w *wire.Writer) {
	t.Encode(w)
	w.Pad(wire.PaddingSize(t.Size(), EmbeddedTransactionAlignment))
}

func (t *EmbeddedTransaction) Bytes() []byte {
	w := wire.NewWriter(t.Size())
	t.Encode(w)
	return w.Bytes()
}

func (t *EmbeddedTransaction) Recognized() bool {
	return !isOpaque(t.Body)
}
