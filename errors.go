// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind int

const (
	// NullInput is reported when no text was supplied at all. The parser
	// never sees this case, it is detected by callers that distinguish a
	// missing value from an empty one, such as the convert package.
	NullInput Kind = iota + 1
	// EmptyInput is reported for an empty string.
	EmptyInput
	// TextMismatch is reported when a literal or numeric directive does
	// not match the text at its expected position.
	TextMismatch
	// FieldOutOfRange is reported when the captured fields violate the
	// invariants of the value type.
	FieldOutOfRange
	// TrailingCharacters is reported when text remains after the last
	// directive has been consumed.
	TrailingCharacters
)

var (
	ErrNullInput          = errors.New("null input")
	ErrEmptyInput         = errors.New("empty input")
	ErrTextMismatch       = errors.New("text mismatch")
	ErrFieldOutOfRange    = errors.New("field out of range")
	ErrTrailingCharacters = errors.New("trailing characters")
)

func (k Kind) String() string {
	switch k {
	case NullInput:
		return "NullInput"
	case EmptyInput:
		return "EmptyInput"
	case TextMismatch:
		return "TextMismatch"
	case FieldOutOfRange:
		return "FieldOutOfRange"
	case TrailingCharacters:
		return "TrailingCharacters"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Err returns the sentinel error for the kind, use errors.Is to test
// for it.
func (k Kind) Err() error {
	switch k {
	case NullInput:
		return ErrNullInput
	case EmptyInput:
		return ErrEmptyInput
	case TextMismatch:
		return ErrTextMismatch
	case FieldOutOfRange:
		return ErrFieldOutOfRange
	case TrailingCharacters:
		return ErrTrailingCharacters
	}
	return nil
}

// FieldError is returned by the factory functions when a field, or a
// combination of fields, is invalid. It matches ErrFieldOutOfRange.
type FieldError struct {
	Field string
	Value int64
}

// Error implements error.
func (fe *FieldError) Error() string {
	return fmt.Sprintf("%v out of range: %v", fe.Field, fe.Value)
}

// Is implements errors.Is.
func (fe *FieldError) Is(target error) bool {
	return target == ErrFieldOutOfRange
}

func outOfRange(field string, value int64) error {
	return &FieldError{Field: field, Value: value}
}

// ParseError is returned by all parse operations. Pos is the byte offset
// into Text at which the failure was detected, Directive the canonical
// pattern text of the directive that failed (TextMismatch) and Field and
// Value identify the offending field (FieldOutOfRange).
type ParseError struct {
	Kind      Kind
	Type      string
	Text      string
	Pos       int
	Directive string
	Reason    string
	Field     string
	Value     int64
	Err       error
}

// NewNullInputError returns the error used to reject absent input for
// the named type.
func NewNullInputError(typeName string) *ParseError {
	return &ParseError{Kind: NullInput, Type: typeName}
}

// Error implements error.
func (pe *ParseError) Error() string {
	prefix := "temporal: " + pe.Type
	switch pe.Kind {
	case NullInput, EmptyInput:
		return fmt.Sprintf("%v: %v", prefix, pe.Kind.Err())
	case TextMismatch:
		msg := fmt.Sprintf("%v: %v at position %d: expected %v", prefix, ErrTextMismatch, pe.Pos, pe.Directive)
		if len(pe.Reason) > 0 {
			msg += " (" + pe.Reason + ")"
		}
		return fmt.Sprintf("%v: %q", msg, pe.Text)
	case FieldOutOfRange:
		return fmt.Sprintf("%v: %v at position %d: %v: %v: %q", prefix, ErrFieldOutOfRange, pe.Pos, pe.Field, pe.Value, pe.Text)
	case TrailingCharacters:
		return fmt.Sprintf("%v: %v at position %d: %q", prefix, ErrTrailingCharacters, pe.Pos, pe.Text)
	}
	return fmt.Sprintf("%v: %v: %q", prefix, pe.Kind, pe.Text)
}

// Unwrap returns the underlying FieldError, if any.
func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Is implements errors.Is, a ParseError matches the sentinel for its kind.
func (pe *ParseError) Is(target error) bool {
	return target != nil && target == pe.Kind.Err()
}
