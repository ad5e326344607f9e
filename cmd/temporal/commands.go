// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/temporal"
	"cloudeng.io/temporal/convert"
)

type typesFlags struct {
	CommonFlags
	JSON bool `subcmd:"json,false,'print the types as a stream of json objects'"`
}

type parseFlags struct {
	CommonFlags
}

type checkFlags struct {
	CommonFlags
	Comments bool `subcmd:"comments,true,'ignore lines that start with #'"`
}

type nowFlags struct {
	CommonFlags
	At     convert.Flag[temporal.Instant]  `subcmd:"at,,'use this instant rather than the current time'"`
	Offset convert.Flag[temporal.Duration] `subcmd:"offset,,'shift the instant by this duration'"`
}

type commands struct {
	out io.Writer
	now func() time.Time
}

func lookup(name string) (convert.Entry, error) {
	e, ok := convert.Lookup(name)
	if !ok {
		return e, fmt.Errorf("unsupported type %q: must be one of: %v", name, strings.Join(convert.Names(), ", "))
	}
	return e, nil
}

type typeInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
	Example string `json:"example"`
}

func (c *commands) types(ctx context.Context, values any, _ []string) error {
	fv := values.(*typesFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	ctxlog.Logger(ctx).Debug("listing types", "count", len(convert.Table))
	if fv.JSON {
		enc := logging.NewJSONFormatter(c.out, "", "  ")
		for _, e := range convert.Table {
			if err := enc.Format(typeInfo{Name: e.Name, Type: e.Type, Pattern: e.Pattern, Example: e.Example}); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range convert.Table {
		fmt.Fprintf(c.out, "%-10v %-14v %-34v %v\n", e.Name, e.Type, e.Pattern, e.Example)
	}
	return nil
}

// describe returns a one line summary of a parse failure.
func describe(err error) string {
	var pe *temporal.ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	switch pe.Kind {
	case temporal.TextMismatch:
		return fmt.Sprintf("%v at %v: expected %v", pe.Kind, pe.Pos, pe.Directive)
	case temporal.FieldOutOfRange:
		return fmt.Sprintf("%v at %v: %v=%v", pe.Kind, pe.Pos, pe.Field, pe.Value)
	case temporal.TrailingCharacters:
		return fmt.Sprintf("%v at %v", pe.Kind, pe.Pos)
	}
	return pe.Kind.String()
}

func (c *commands) parse(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	e, err := lookup(args[0])
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx).With("type", e.Type)
	errs := &errors.M{}
	for _, text := range args[1:] {
		v, err := e.Parse(&text)
		if err != nil {
			logger.Warn("parse failed", "text", text, "error", err)
			fmt.Fprintf(c.out, "%q: %v\n", text, describe(err))
			errs.Append(err)
			continue
		}
		canonical, err := e.Format(v)
		if err != nil {
			errs.Append(err)
			continue
		}
		logger.Info("parsed", "text", text)
		fmt.Fprintf(c.out, "%q: %v\n", text, canonical)
	}
	return errs.Err()
}

func (c *commands) check(ctx context.Context, values any, args []string) error {
	fv := values.(*checkFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	e, err := lookup(args[0])
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, file := range args[1:] {
		errs.Append(c.checkFile(ctx, e, file, fv.Comments))
	}
	return errs.Err()
}

func (c *commands) checkFile(ctx context.Context, e convert.Entry, file string, comments bool) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	errs := &errors.M{}
	lines, failures := 0, 0
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if len(text) == 0 || (comments && strings.HasPrefix(text, "#")) {
			continue
		}
		lines++
		v, err := e.Parse(&text)
		if err == nil {
			var canonical string
			if canonical, err = e.Format(v); err == nil && canonical != text {
				err = fmt.Errorf("%q formats as %q", text, canonical)
			}
		}
		if err != nil {
			failures++
			fmt.Fprintf(c.out, "%v:%v: %q: %v\n", file, n, text, describe(err))
			errs.Append(fmt.Errorf("%v:%v: %w", file, n, err))
		}
	}
	errs.Append(sc.Err())
	ctxlog.Logger(ctx).Info("checked", "file", file, "type", e.Type, "lines", lines, "failures", failures)
	return errs.Err()
}

func (c *commands) nowCmd(ctx context.Context, values any, _ []string) error {
	fv := values.(*nowFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	at := fv.At.Value()
	if fv.At.IsDefault() {
		if at, err = temporal.InstantFromTime(c.now()); err != nil {
			return err
		}
	}
	if !fv.Offset.IsDefault() {
		if at, err = at.Plus(fv.Offset.Value()); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Debug("now", "instant", at, "offset", fv.Offset.String())
	dt := at.UTC()
	for _, line := range []struct {
		name  string
		value fmt.Stringer
	}{
		{"instant", at},
		{"datetime", dt},
		{"date", dt.Date()},
		{"time", dt.TimeOfDay()},
		{"monthday", dt.Date().MonthDay()},
		{"since epoch", at.Minus(temporal.UnixEpoch)},
	} {
		fmt.Fprintf(c.out, "%-12v %v\n", line.name, line.value)
	}
	return nil
}
