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

// Package cbor provides CBOR encoding/decoding utilities for decoded
// transaction views.
//
// This package wraps github.com/fxamacker/cbor/v2 with the options used across
// the module: core deterministic map ordering on encode and a bounded nesting
// depth on decode.
//
// # Key Types
//
// Embeddable types for struct encoding:
//   - StructAsArray: Embed to encode struct fields as CBOR array instead of map
//
// MajorType and CborTypeArray let callers check that a record is an array
// before decoding it.
//
// Fixed-size byte types in ledger/common implement MarshalCBOR through Encode,
// so a zero-valued key or hash still encodes as a full-length bytestring.
package cbor
