// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/gendate"
	"cloudeng.io/gendate/calendars"
	"cloudeng.io/gendate/config"
	"cloudeng.io/gendate/display"
	"cloudeng.io/gendate/timeline"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type runner struct {
	out io.Writer
}

type parseResult struct {
	Input     string        `yaml:"input"`
	Parsed    bool          `yaml:"parsed"`
	Display   string        `yaml:"display"`
	SortValue int64         `yaml:"sort_value"`
	Tuple     gendate.Tuple `yaml:"tuple"`
}

func (r *runner) encode(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *runner) parse(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*ParseFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	f, err := fv.formatter(cfg)
	if err != nil {
		return err
	}
	p := cfg.Parser(ctxlog.Logger(ctx))
	results := make([]parseResult, 0, len(args))
	for _, arg := range args {
		d := p.Parse(arg)
		results = append(results, parseResult{
			Input:     arg,
			Parsed:    d.Modifier() != gendate.ModTextOnly,
			Display:   f.Display(d),
			SortValue: d.SortValue(),
			Tuple:     d.Serialize(fv.NoText),
		})
	}
	return r.encode(results)
}

func (r *runner) display(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*DisplayFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	f, err := fv.formatter(cfg)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, arg := range args {
		var t gendate.Tuple
		if err := yaml.Unmarshal([]byte(arg), &t); err != nil {
			errs.Append(fmt.Errorf("%q: %w", arg, err))
			continue
		}
		d, err := gendate.Unserialize(t)
		if err != nil {
			errs.Append(fmt.Errorf("%q: %w", arg, err))
			continue
		}
		if t.SortValue != d.SortValue() {
			ctxlog.Logger(ctx).Warn("stale sort value", "date", arg, "sort_value", d.SortValue())
		}
		fmt.Fprintln(r.out, f.Display(d))
	}
	return errs.Err()
}

func (r *runner) convert(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*DisplayFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	f, err := fv.formatter(cfg)
	if err != nil {
		return err
	}
	cal, ok := cfg.Names().ParseCalendar(args[0])
	if !ok {
		return fmt.Errorf("unknown calendar: %q", args[0])
	}
	d := cfg.Parser(ctxlog.Logger(ctx)).Parse(args[1])
	if err := d.ConvertCalendar(cal); err != nil {
		return fmt.Errorf("%q: %w", args[1], err)
	}
	fmt.Fprintln(r.out, f.Display(d))
	return nil
}

func (r *runner) ranges(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	p, m := cfg.Parser(ctxlog.Logger(ctx)), cfg.Matcher()
	for _, arg := range args {
		lo, hi := m.StartStopRange(p.Parse(arg))
		fmt.Fprintf(r.out, "%v\t%v\t%v\n", arg, lo, hi)
	}
	return nil
}

func (r *runner) match(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	op, err := gendate.ParseComparison(args[1])
	if err != nil {
		return err
	}
	p := cfg.Parser(ctxlog.Logger(ctx))
	fmt.Fprintln(r.out, cfg.Matcher().Match(p.Parse(args[0]), p.Parse(args[2]), op))
	return nil
}

func (r *runner) sort(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*DisplayFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	f, err := fv.formatter(cfg)
	if err != nil {
		return err
	}
	p := cfg.Parser(ctxlog.Logger(ctx))
	var tl timeline.Timeline
	for _, arg := range args {
		tl.Add(arg, p.Parse(arg))
	}
	for e := range tl.All() {
		fmt.Fprintf(r.out, "%v\t%v\n", e.Date.SortValue(), f.Display(e.Date))
	}
	return nil
}

func (r *runner) sdn(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*DisplayFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	f, err := fv.formatter(cfg)
	if err != nil {
		return err
	}
	d := cfg.Parser(ctxlog.Logger(ctx)).Parse(args[0])
	sdn := d.SortValue()
	if sdn == 0 {
		return fmt.Errorf("%q: %w: no serial day number", args[0], gendate.ErrInvalidDate)
	}
	names := cfg.Names()
	fmt.Fprintf(r.out, "sdn: %v\n", sdn)
	for _, cal := range calendars.All() {
		y, m, dd := calendars.FromSDN(cal, sdn)
		v := "-"
		if y != 0 {
			v = f.Value(cal, gendate.Value{Year: y, Month: m, Day: dd})
		}
		fmt.Fprintf(r.out, "%v: %v\n", names.CalendarName(cal), v)
	}
	return nil
}

func (r *runner) diff(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	p := cfg.Parser(ctxlog.Logger(ctx))
	fmt.Fprintln(r.out, p.Parse(args[0]).Sub(p.Parse(args[1])))
	return nil
}

func (r *runner) offset(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*DisplayFlags)
	ctx, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	f, err := fv.formatter(cfg)
	if err != nil {
		return err
	}
	var ymd [3]int
	for i, arg := range args[1:] {
		if ymd[i], err = strconv.Atoi(arg); err != nil {
			return fmt.Errorf("invalid offset: %q: %w", arg, err)
		}
	}
	d := cfg.Parser(ctxlog.Logger(ctx)).Parse(args[0])
	fmt.Fprintln(r.out, f.Display(d.CopyOffsetYMD(ymd[0], ymd[1], ymd[2])))
	return nil
}

func (r *runner) styles(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*CommonFlags)
	_, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	example := gendate.Value{Year: 1900, Month: 6, Day: 11}
	for _, s := range display.Styles() {
		f := display.New(s, cfg.Names())
		fmt.Fprintf(r.out, "%2d\t%-14v\t%v\n", int(s), s, f.Value(calendars.Gregorian, example))
	}
	return nil
}

func (r *runner) config(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*CommonFlags)
	_, cfg, closer, err := fv.configure(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	desc, err := config.Describe()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, desc)
	return r.encode(cfg)
}
