package check

import (
	"fmt"
	"strings"
)

// Level is the severity of a diagnostic. Levels are ordered by increasing
// severity, i.e. Skip < Info < Warning < Fail.
type Level int

const (
	Skip Level = iota
	Info
	Warning
	Fail
)

var levelNames = [...]string{"Skip", "Info", "Warning", "Fail"}

func (l Level) String() string {
	if l < Skip || l > Fail {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level for a level name. Case is ignored.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return Skip, fmt.Errorf("unknown diagnostic level %q", s)
}

// Diagnostic is a leveled finding of a check rule.
// Diagnostics are values; two diagnostics with equal content are equal.
type Diagnostic struct {
	Level   Level
	Message CheckError
}

// String renders a diagnostic as "<Level>: <message>".
func (d Diagnostic) String() string {
	if d.Message == nil {
		return d.Level.String() + ": "
	}
	return fmt.Sprintf("%s: %s", d.Level, d.Message.Error())
}

// Fails creates a Fail-level diagnostic.
func Fails(msg CheckError) Diagnostic {
	return Diagnostic{Level: Fail, Message: msg}
}

// --- Check errors ----------------------------------------------------------

// CheckError is the payload of a diagnostic. The set of implementations is
// closed: MissingTable and MetricOutOfRange. Clients may switch over them:
//
//	switch msg := d.Message.(type) {
//	case check.MissingTable:
//	case check.MetricOutOfRange:
//	}
//
// Error renders a message which is readable without further context.
type CheckError interface {
	error
	checkError()
}

// MissingTable reports that tables a rule needs could not be read.
// Name may denote more than one table, e.g. "OS/2 or head".
type MissingTable struct {
	Name string
}

func (MissingTable) checkError() {}

func (e MissingTable) Error() string {
	return fmt.Sprintf("Cannot read %s table", e.Name)
}

// MetricOutOfRange reports a metric value outside of its plausible range.
type MetricOutOfRange struct {
	Table    string // table holding the field, e.g. "OS/2"
	Field    string // field name, e.g. "usWinAscent"
	Expected Range  // inclusive range of plausible values
	Actual   int32  // value found in the font
}

func (MetricOutOfRange) checkError() {}

func (e MetricOutOfRange) Error() string {
	return fmt.Sprintf("%s.%s value should be in the range %s, but got %d",
		e.Table, e.Field, e.Expected, e.Actual)
}

// Range is an inclusive range of signed 32-bit integers with Lower ≤ Upper.
type Range struct {
	Lower, Upper int32
}

// NewRange creates a range spanning a and b, in whatever order they are given.
func NewRange(a, b int32) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Lower: a, Upper: b}
}

// Contains reports whether v is in r.
func (r Range) Contains(v int32) bool {
	return v >= r.Lower && v <= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lower, r.Upper)
}
