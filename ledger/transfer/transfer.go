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

package transfer

import (
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
	"github.com/blinklabs-io/gocatbuffer/wire"
)

const TransferVersion = 1

var TransactionKeyTransfer = common.TransactionKey{
	Type:    common.EntityTypeTransfer,
	Version: TransferVersion,
}

// TransferBody moves mosaics and an optional message to a recipient
type TransferBody struct {
	RecipientAddress common.UnresolvedAddress  `json:"recipientAddress"`
	Mosaics          []common.UnresolvedMosaic `json:"mosaics,omitempty"`
	Message          []byte                    `json:"message,omitempty"`
}

// NewTransferBody builds a transfer body. Mosaics keep the order given.
func NewTransferBody(
	recipient common.UnresolvedAddress,
	mosaics []common.UnresolvedMosaic,
	message []byte,
) (*TransferBody, error) {
	if err := common.CheckPrefix("mosaics", len(mosaics), 1); err != nil {
		return nil, err
	}
	if err := common.CheckPrefix("message", len(message), 2); err != nil {
		return nil, err
	}
	ret := &TransferBody{RecipientAddress: recipient}
	if len(mosaics) > 0 {
		ret.Mosaics = mosaics
	}
	if len(message) > 0 {
		ret.Message = message
	}
	return ret, nil
}

func (b *TransferBody) layout() wire.Layout {
	mosaicsCount := wire.CountPrefix(1, &b.Mosaics)
	messageSize := wire.LengthPrefix(2, &b.Message)
	return wire.Layout{
		wire.Struct(&b.RecipientAddress),
		messageSize,
		mosaicsCount,
		wire.Reserved(4),
		wire.Reserved(1),
		wire.Array(&b.Mosaics, mosaicsCount),
		wire.Blob(&b.Message, messageSize),
	}
}

func (b *TransferBody) TransactionKey() common.TransactionKey {
	return TransactionKeyTransfer
}

func (b *TransferBody) Size() int {
	return b.layout().Size()
}

func (b *TransferBody) Encode(w *wire.Writer) {
	b.layout().Encode(w)
}

func (b *TransferBody) Decode(r *wire.Reader) error {
	return b.layout().Decode(r)
}
