/*
Package report hands diagnostics to output sinks.

A sink receives diagnostics one at a time, together with the identifier of the
font source they belong to. Sinks render "<source>: <Level>: <message>" lines
(TextSink, ColorSink) or structured records (MsgpackSink). Filtering by
severity is done by wrapping a sink with Filter.
*/
package report

import (
	"fmt"
	"io"

	"github.com/npillmayer/otcheck"
	"github.com/npillmayer/otcheck/check"
	"github.com/pterm/pterm"
)

// Sink receives diagnostics for output.
type Sink interface {
	Report(source string, d check.Diagnostic) error
}

// Emit reports the diagnostics of all results to sink, in order.
// Results carrying an error are passed to onError, if not nil.
func Emit(sink Sink, results []otcheck.Result, onError func(otcheck.Result)) error {
	for _, r := range results {
		if r.Err != nil {
			if onError != nil {
				onError(r)
			}
			continue
		}
		for _, d := range r.Diagnostics {
			if err := sink.Report(r.Source, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Line renders a diagnostic as one line of text, without line break.
func Line(source string, d check.Diagnostic) string {
	return fmt.Sprintf("%s: %s", source, d)
}

// --- Text ------------------------------------------------------------------

// TextSink writes one plain line per diagnostic.
type TextSink struct {
	W io.Writer
}

// Report implements Sink.
func (s TextSink) Report(source string, d check.Diagnostic) error {
	_, err := fmt.Fprintln(s.W, Line(source, d))
	return err
}

// --- Filter ----------------------------------------------------------------

type filter struct {
	sink Sink
	min  check.Level
}

// Filter returns a sink passing on diagnostics with a level of at least min.
func Filter(sink Sink, min check.Level) Sink {
	if min <= check.Skip {
		return sink
	}
	return filter{sink: sink, min: min}
}

func (f filter) Report(source string, d check.Diagnostic) error {
	if d.Level < f.min {
		return nil
	}
	return f.sink.Report(source, d)
}

// --- Color -----------------------------------------------------------------

// ColorSink prints diagnostics to the terminal, prefixed by level.
type ColorSink struct{}

// Report implements Sink.
func (ColorSink) Report(source string, d check.Diagnostic) error {
	Printer(d.Level).Println(Line(source, d))
	return nil
}

// Printer selects the pterm printer used for a level.
func Printer(l check.Level) *pterm.PrefixPrinter {
	switch l {
	case check.Fail:
		return &pterm.Error
	case check.Warning:
		return &pterm.Warning
	}
	return &pterm.Info
}
