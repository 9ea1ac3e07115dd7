/*
Package check runs metric checks on OpenType fonts and reports leveled diagnostics.

A check rule is a pure function from a font to a sequence of diagnostics.
Rules read tables through the Font interface, which is implemented by *ot.Font:

	otf, _ := ot.Parse(data)
	runner := check.NewRunner(check.WinMetricsRule)
	diagnostics, err := runner.Run(otf)

Rules never return errors for problems found in a font; those are diagnostics.
The only error a Runner reports is an arithmetic overflow inside a rule, which
aborts checking the font, as any range computed after it would be wrong.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package check

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.check'
func tracer() tracing.Trace {
	return tracing.Select("font.check")
}
