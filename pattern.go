// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"errors"
	"fmt"
	"strings"
)

// Codec is implemented by the Pattern for each of the value types and
// is intended for code that needs to handle any of them uniformly.
type Codec[T any] interface {
	// Name returns the name of the value type, eg. "CalendarDate".
	Name() string
	// Format returns the canonical text for value.
	Format(value T) string
	// AppendFormat appends the canonical text for value to dst.
	AppendFormat(dst []byte, value T) []byte
	// Parse parses canonical text.
	Parse(text string) (T, error)
}

// Pattern is an immutable table of directives for a single value type
// that is used both to format and to parse that type. A Pattern is safe
// for concurrent use.
type Pattern[T any] struct {
	name       string
	text       string
	directives []directive
	decompose  func(T, *fields)
	compose    func(*fields) (T, error)
}

// newPattern creates a Pattern and panics if the directive table is
// malformed, that is, empty or containing a variable width numeric
// directive that is immediately followed by another numeric directive.
func newPattern[T any](name string, decompose func(T, *fields), compose func(*fields) (T, error), directives ...directive) *Pattern[T] {
	if len(directives) == 0 {
		panic(fmt.Sprintf("temporal: empty directive table for %v", name))
	}
	var out strings.Builder
	for i, d := range directives {
		if i > 0 && directives[i-1].kind() == variableDirective {
			if k := d.kind(); k == fixedDirective || k == variableDirective {
				panic(fmt.Sprintf("temporal: ambiguous directive table for %v: %v follows %v", name, d.pattern(), directives[i-1].pattern()))
			}
		}
		out.WriteString(d.pattern())
	}
	return &Pattern[T]{
		name:       name,
		text:       out.String(),
		directives: directives,
		decompose:  decompose,
		compose:    compose,
	}
}

// Name implements Codec.
func (p *Pattern[T]) Name() string {
	return p.name
}

// String returns the pattern text, eg. "yyyy-MM-dd".
func (p *Pattern[T]) String() string {
	return p.text
}

// Format implements Codec.
func (p *Pattern[T]) Format(value T) string {
	var buf [64]byte
	return string(p.AppendFormat(buf[:0], value))
}

// AppendFormat implements Codec.
func (p *Pattern[T]) AppendFormat(dst []byte, value T) []byte {
	var f fields
	p.decompose(value, &f)
	for _, d := range p.directives {
		dst = d.format(dst, &f)
	}
	return dst
}

// Parse implements Codec. All errors returned are of type *ParseError.
func (p *Pattern[T]) Parse(text string) (T, error) {
	var zero T
	if len(text) == 0 {
		return zero, &ParseError{Kind: EmptyInput, Type: p.name}
	}
	s := scanner{text: text}
	var f fields
	for _, d := range p.directives {
		if pe := d.parse(&s, &f); pe != nil {
			return zero, p.annotate(pe, text)
		}
	}
	if s.pos < len(text) {
		return zero, &ParseError{Kind: TrailingCharacters, Type: p.name, Text: text, Pos: s.pos}
	}
	v, err := p.compose(&f)
	if err != nil {
		return zero, p.composeError(err, &f, text)
	}
	return v, nil
}

// MustParse is like Parse but panics on error.
func (p *Pattern[T]) MustParse(text string) T {
	v, err := p.Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func (p *Pattern[T]) annotate(pe *ParseError, text string) *ParseError {
	pe.Type, pe.Text = p.name, text
	return pe
}

func (p *Pattern[T]) composeError(err error, f *fields, text string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return p.annotate(pe, text)
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return &ParseError{
			Kind:  FieldOutOfRange,
			Type:  p.name,
			Text:  text,
			Pos:   f.position(fe.Field),
			Field: fe.Field,
			Value: fe.Value,
			Err:   fe,
		}
	}
	return err
}
