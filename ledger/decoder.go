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

package ledger

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

// Decoder frames transactions and dispatches their bodies. A Decoder holds no
// per-call state and may be shared between goroutines.
type Decoder struct {
	logger             *slog.Logger
	maxTransactionSize uint32
	strictTypes        bool
}

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithMaxTransactionSize rejects any transaction declaring more than size
// bytes. Zero means no limit
func WithMaxTransactionSize(size uint32) DecoderOptionFunc {
	return func(d *Decoder) {
		d.maxTransactionSize = size
	}
}

// WithStrictTypes makes unrecognized transaction types an error instead of an
// opaque body
func WithStrictTypes(strict bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.strictTypes = strict
	}
}

func NewDecoder(opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// DecodeTransaction decodes a single standalone transaction that makes up all
// of data
func (d *Decoder) DecodeTransaction(data []byte) (*common.Transaction, error) {
	r := wire.NewReader(data)
	tx, err := d.DecodeTransactionFrom(r)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, common.DeclaredSizeError{
			Declared: uint32(tx.Size()), // #nosec G115
			Actual:   len(data),
			Reason:   "trailing bytes after transaction",
		}
	}
	return tx, nil
}

// DecodeTransactionFrom decodes the next standalone transaction from r,
// consuming exactly its declared size
func (d *Decoder) DecodeTransactionFrom(r *wire.Reader) (*common.Transaction, error) {
	frame, declared, err := d.frame(r, common.TransactionHeaderSize)
	if err != nil {
		return nil, err
	}
	header, _, err := common.DecodeTransactionHeader(frame)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeBody(transactionDecoders, header.Key(), frame, declared)
	if err != nil {
		return nil, err
	}
	return &common.Transaction{TransactionHeader: header, Body: body}, nil
}

// DecodeEmbeddedTransaction decodes a single unpadded embedded transaction that
// makes up all of data
func (d *Decoder) DecodeEmbeddedTransaction(
	data []byte,
) (*common.EmbeddedTransaction, error) {
	r := wire.NewReader(data)
	tx, err := d.DecodeEmbeddedTransactionFrom(r, false)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, common.DeclaredSizeError{
			Declared: uint32(tx.Size()), // #nosec G115
			Actual:   len(data),
			Reason:   "trailing bytes after embedded transaction",
		}
	}
	return tx, nil
}

// DecodeEmbeddedTransactionFrom decodes the next embedded transaction from r.
// When padded is set, the alignment padding that follows it is consumed too and
// missing padding is an ErrUnexpectedEndOfInput. The padding bytes themselves
// are not checked.
func (d *Decoder) DecodeEmbeddedTransactionFrom(
	r *wire.Reader,
	padded bool,
) (*common.EmbeddedTransaction, error) {
	frame, declared, err := d.frame(r, common.EmbeddedTransactionHeaderSize)
	if err != nil {
		return nil, err
	}
	header, _, err := common.DecodeEmbeddedTransactionHeader(frame)
	if err != nil {
		return nil, err
	}
	body, err := d.decodeBody(embeddedDecoders, header.Key(), frame, declared)
	if err != nil {
		return nil, err
	}
	if padded {
		padding := wire.PaddingSize(
			int(declared),
			common.EmbeddedTransactionAlignment,
		)
		if err := r.Skip(padding); err != nil {
			return nil, fmt.Errorf("missing alignment padding: %w", err)
		}
	}
	return &common.EmbeddedTransaction{
		EmbeddedTransactionHeader: header,
		Body:                      body,
	}, nil
}

func (d *Decoder) decodeEmbeddedFrame(
	r *wire.Reader,
) (*common.EmbeddedTransaction, error) {
	return d.DecodeEmbeddedTransactionFrom(r, false)
}

// frame checks the declared size at the front of r and splits off a reader
// over exactly that many bytes
func (d *Decoder) frame(r *wire.Reader, headerSize int) (*wire.Reader, uint32, error) {
	declared, err := r.PeekUint32()
	if err != nil {
		return nil, 0, err
	}
	if int64(declared) < int64(headerSize) {
		return nil, 0, common.DeclaredSizeError{
			Declared: declared,
			Actual:   headerSize,
			Reason:   "smaller than the header",
		}
	}
	if d.maxTransactionSize > 0 && declared > d.maxTransactionSize {
		return nil, 0, common.DeclaredSizeError{
			Declared: declared,
			Actual:   r.Len(),
			Reason: fmt.Sprintf(
				"exceeds maximum transaction size %d",
				d.maxTransactionSize,
			),
		}
	}
	// A frame cut short by the end of input is a truncation
	if int64(declared) > int64(r.Len()) {
		return nil, 0, wire.EndOfInputError{
			Offset: r.Offset(),
			Need:   int(declared),
			Have:   r.Len(),
		}
	}
	frame, err := r.Sub(int(declared))
	if err != nil {
		return nil, 0, err
	}
	return frame, declared, nil
}

// decodeBody is handed the header already parsed and a reader positioned just
// after it. The body must consume the rest of the frame.
func (d *Decoder) decodeBody(
	table map[common.TransactionKey]bodyDecoderFunc,
	key common.TransactionKey,
	r *wire.Reader,
	declared uint32,
) (common.TransactionBody, error) {
	decode, ok := table[key]
	if !ok {
		if d.strictTypes {
			return nil, common.UnrecognizedTransactionTypeError{
				Type:    key.Type,
				Version: key.Version,
			}
		}
		d.logger.Warn(
			"unrecognized transaction type, keeping opaque body",
			"type",
			key.Type.String(),
			"version",
			key.Version,
			"size",
			declared,
		)
		body := &common.OpaqueBody{}
		if err := body.Decode(r); err != nil {
			return nil, err
		}
		return body, nil
	}
	d.logger.Debug(
		"decoding transaction body",
		"type",
		key.Type.String(),
		"version",
		key.Version,
		"size",
		declared,
	)
	body, err := decode(d, r)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", key.String(), err)
	}
	if r.Len() > 0 {
		return nil, common.DeclaredSizeError{
			Declared: declared,
			Actual:   int(declared) - r.Len(),
			Reason: fmt.Sprintf(
				"%d bytes left after %s body",
				r.Len(),
				key.String(),
			),
		}
	}
	return body, nil
}

var defaultDecoder = NewDecoder()

// DecodeTransaction decodes a standalone transaction with the default decoder
func DecodeTransaction(data []byte) (*common.Transaction, error) {
	return defaultDecoder.DecodeTransaction(data)
}

// DecodeEmbeddedTransaction decodes an embedded transaction with the default
// decoder
func DecodeEmbeddedTransaction(data []byte) (*common.EmbeddedTransaction, error) {
	return defaultDecoder.DecodeEmbeddedTransaction(data)
}

func DecodeTransactionFrom(r *wire.Reader) (*common.Transaction, error) {
	return defaultDecoder.DecodeTransactionFrom(r)
}

func DecodeEmbeddedTransactionFrom(
	r *wire.Reader,
	padded bool,
) (*common.EmbeddedTransaction, error) {
	return defaultDecoder.DecodeEmbeddedTransactionFrom(r, padded)
}

// EncodeTransaction serializes tx, deriving its declared size
func EncodeTransaction(tx *common.Transaction) []byte {
	return tx.Bytes()
}

// EncodeEmbeddedTransaction serializes tx without trailing padding
func EncodeEmbeddedTransaction(tx *common.EmbeddedTransaction) []byte {
	return tx.Bytes()
}
