// Copyright 2026 Blink Labs Software
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

package bson

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is without caring about the
// contextual fields carried by the typed errors below
var (
	ErrTruncatedInput               = errors.New("unexpected end of BSON input")
	ErrMalformedLength              = errors.New("malformed length in BSON input")
	ErrLengthMismatch               = errors.New("BSON document length mismatch")
	ErrInvalidUtf8String            = errors.New("Invalid UTF-8 string in BSON document")
	ErrInconsistentValidationOption = errors.New("keys must be all true or all false")
	ErrEmptyValidationOption        = errors.New("validation option is empty")
	ErrMaxDepthExceeded             = errors.New("maximum BSON nesting depth exceeded")
	ErrUnknownType                  = errors.New("unknown BSON type tag")
	ErrUnsupportedType              = errors.New("unsupported value type for BSON encoding")
)

// TruncatedInputError indicates a read past the end of the input buffer
type TruncatedInputError struct {
	Offset    int
	Needed    int
	Remaining int
}

func (e TruncatedInputError) Error() string {
	return fmt.Sprintf(
		"unexpected end of BSON input: need %d bytes at offset %d, %d remaining",
		e.Needed,
		e.Offset,
		e.Remaining,
	)
}

func (TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// MalformedLengthError indicates a declared length that is negative or
// exceeds the remaining input
type MalformedLengthError struct {
	Offset int
	Length int
}

func (e MalformedLengthError) Error() string {
	return fmt.Sprintf(
		"malformed length in BSON input: %d at offset %d",
		e.Length,
		e.Offset,
	)
}

func (MalformedLengthError) Is(target error) bool {
	return target == ErrMalformedLength
}

// LengthMismatchError indicates a document whose declared length does not
// match the bytes actually consumed before its terminator
type LengthMismatchError struct {
	Declared int
	Consumed int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf(
		"BSON document length mismatch: declared %d, consumed %d",
		e.Declared,
		e.Consumed,
	)
}

func (LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// InvalidUtf8StringError indicates a key or string value that failed strict
// UTF-8 validation under the active policy
type InvalidUtf8StringError struct{}

func (InvalidUtf8StringError) Error() string {
	return "Invalid UTF-8 string in BSON document"
}

func (InvalidUtf8StringError) Is(target error) bool {
	return target == ErrInvalidUtf8String
}

// InconsistentValidationOptionError indicates a per-key validation mapping
// with mixed boolean values
type InconsistentValidationOptionError struct{}

func (InconsistentValidationOptionError) Error() string {
	return "keys must be all true or all false"
}

func (InconsistentValidationOptionError) Is(target error) bool {
	return target == ErrInconsistentValidationOption
}

// EmptyValidationOptionError indicates an explicitly supplied but empty
// per-key validation mapping
type EmptyValidationOptionError struct{}

func (EmptyValidationOptionError) Error() string {
	return "validation option is empty"
}

func (EmptyValidationOptionError) Is(target error) bool {
	return target == ErrEmptyValidationOption
}

// MaxDepthExceededError indicates document nesting beyond the configured limit
type MaxDepthExceededError struct {
	Limit int
}

func (e MaxDepthExceededError) Error() string {
	return fmt.Sprintf(
		"maximum BSON nesting depth exceeded: limit %d",
		e.Limit,
	)
}

func (MaxDepthExceededError) Is(target error) bool {
	return target == ErrMaxDepthExceeded
}

// UnknownTypeError indicates an element type tag not defined by the BSON spec
type UnknownTypeError struct {
	Tag byte
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown BSON type tag: 0x%02x", e.Tag)
}

func (UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// UnsupportedTypeError indicates a Go value that has no BSON encoding
type UnsupportedTypeError struct {
	Value any
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported value type for BSON encoding: %T", e.Value)
}

func (UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
