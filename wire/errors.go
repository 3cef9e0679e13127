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
	"errors"
	"fmt"
)

// ErrUnexpectedEndOfInput is matched by every short read
var ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

// EndOfInputError describes a read that needed more bytes than were available
type EndOfInputError struct {
	Offset int
	Need   int
	Have   int
}

func (e EndOfInputError) Error() string {
	return fmt.Sprintf(
		"unexpected end of input: need %d bytes at offset %d, have %d",
		e.Need,
		e.Offset,
		e.Have,
	)
}

func (EndOfInputError) Is(target error) bool {
	return target == ErrUnexpectedEndOfInput
}
