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

// Package common provides shared types, interfaces, and utilities for all
// transaction families.
//
// # Navigation Guide
//
// This is the foundational package. All family packages (transfer, namespace,
// aggregate, etc.) depend on types defined here.
//
// # Key Files by Purpose
//
// Interfaces (start here to understand the API):
//   - tx.go: TransactionBody, BodyDecoder, Transaction, EmbeddedTransaction
//
// Core Types:
//   - header.go: TransactionHeader and EmbeddedTransactionHeader framing
//   - common.go: keys, hashes, signatures, addresses and scalar ids
//   - enums.go: EntityType, NetworkType and the small field enums
//   - mosaic.go: UnresolvedMosaic
//
// Errors:
//   - errors.go: sentinel and typed errors shared by every decoder
//
// # Wire Conventions
//
// Every body declares its byte layout once as a wire.Layout bound to its own
// fields. Size, Encode and Decode all delegate to that layout, so the three can
// never disagree.
package common
