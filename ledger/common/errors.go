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
	"errors"
	"fmt"
	"math"

	"github.com/blinklabs-io/gocatbuffer/wire"
)

// ErrUnexpectedEndOfInput is returned when a read runs past the available bytes
var ErrUnexpectedEndOfInput = wire.ErrUnexpectedEndOfInput

var ErrUnrecognizedTransactionType = errors.New(
	"unrecognized transaction type",
)

var ErrMalformedAggregatePayload = errors.New(
	"malformed aggregate payload",
)

// ErrInvalidState is returned when an accessor is called for a field that is
// not present in the current variant
var ErrInvalidState = errors.New("invalid state")

var ErrDeclaredSizeMismatch = errors.New("declared size mismatch")

// ErrFieldPresenceMismatch is returned by constructors when a gated field is
// supplied or omitted against what its discriminator requires
var ErrFieldPresenceMismatch = errors.New(
	"field presence does not match discriminator",
)

// UnrecognizedTransactionTypeError indicates a (type, version) pair with no
// registered decoder
type UnrecognizedTransactionTypeError struct {
	Type    EntityType
	Version uint8
}

func (e UnrecognizedTransactionTypeError) Error() string {
	return fmt.Sprintf(
		"unrecognized transaction type: %s (%d) version %d",
		e.Type.String(),
		uint16(e.Type),
		e.Version,
	)
}

func (UnrecognizedTransactionTypeError) Is(target error) bool {
	return target == ErrUnrecognizedTransactionType
}

// DeclaredSizeError indicates that the header size field does not match the
// bytes that make up the transaction
type DeclaredSizeError struct {
	Declared uint32
	Actual   int
	Reason   string
}

func (e DeclaredSizeError) Error() string {
	msg := fmt.Sprintf(
		"declared size %d does not match actual size %d",
		e.Declared,
		e.Actual,
	)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (DeclaredSizeError) Is(target error) bool {
	return target == ErrDeclaredSizeMismatch
}

// MalformedAggregateError carries the offset of an aggregate framing failure
type MalformedAggregateError struct {
	Offset int
	Reason string
	Err    error
}

func (e MalformedAggregateError) Error() string {
	msg := fmt.Sprintf(
		"malformed aggregate payload at offset %d: %s",
		e.Offset,
		e.Reason,
	)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e MalformedAggregateError) Unwrap() error { return e.Err }

func (MalformedAggregateError) Is(target error) bool {
	return target == ErrMalformedAggregatePayload
}

var ErrFieldTooLarge = errors.New("field too large for its prefix")

// FieldTooLargeError indicates a collection that cannot be described by its
// count or length prefix
type FieldTooLargeError struct {
	Field  string
	Length int
	Max    uint64
}

func (e FieldTooLargeError) Error() string {
	return fmt.Sprintf(
		"%s has length %d, maximum is %d",
		e.Field,
		e.Length,
		e.Max,
	)
}

func (FieldTooLargeError) Is(target error) bool {
	return target == ErrFieldTooLarge
}

// CheckPrefix verifies that length can be written in a prefix of width bytes
func CheckPrefix(field string, length int, width int) error {
	limit := uint64(1)<<(8*width) - 1
	if width >= 8 {
		limit = math.MaxUint64
	}
	if uint64(length) > limit { // #nosec G115
		return FieldTooLargeError{Field: field, Length: length, Max: limit}
	}
	return nil
}
