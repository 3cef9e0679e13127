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
	"github.com/blinklabs-io/gocatbuffer/ledger/common"
)

// The below are compatability types and functions so callers can work with
// the ledger package alone

// Envelope types
type Transaction = common.Transaction
type EmbeddedTransaction = common.EmbeddedTransaction
type TransactionHeader = common.TransactionHeader
type EmbeddedTransactionHeader = common.EmbeddedTransactionHeader
type TransactionKey = common.TransactionKey
type TransactionBody = common.TransactionBody
type OpaqueBody = common.OpaqueBody

func NewTransaction(header TransactionHeader, body TransactionBody) *Transaction {
	return common.NewTransaction(header, body)
}

func NewEmbeddedTransaction(
	header EmbeddedTransactionHeader,
	body TransactionBody,
) *EmbeddedTransaction {
	return common.NewEmbeddedTransaction(header, body)
}

// Errors
var (
	ErrUnexpectedEndOfInput        = common.ErrUnexpectedEndOfInput
	ErrUnrecognizedTransactionType = common.ErrUnrecognizedTransactionType
	ErrMalformedAggregatePayload   = common.ErrMalformedAggregatePayload
	ErrInvalidState                = common.ErrInvalidState
	ErrDeclaredSizeMismatch        = common.ErrDeclaredSizeMismatch
	ErrFieldPresenceMismatch       = common.ErrFieldPresenceMismatch
)

type UnrecognizedTransactionTypeError = common.UnrecognizedTransactionTypeError
type DeclaredSizeError = common.DeclaredSizeError
type MalformedAggregateError = common.MalformedAggregateError
