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

// Package wire implements the little-endian primitive codec and the field
// rules shared by every transaction layout.
//
// A Reader is a forward-only cursor that never reads past its bounds, and a
// Writer is an append-only sink. Layouts are ordered lists of Rules bound to the
// fields of a value, so the same declaration drives Size, Encode and Decode.
//
// When and HasFlag cover conditional fields. No transaction layout has one
// yet; the rules are exercised by rules_test.go.
package wire
