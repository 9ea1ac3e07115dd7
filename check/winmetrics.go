package check

// WinMetricsRule checks OS/2.usWinAscent and OS/2.usWinDescent against the
// font's global extents in table 'head'.
var WinMetricsRule = Rule{
	Name:  "win-ascent-descent",
	Check: CheckWinAscentAndDescent,
}

// CheckWinAscentAndDescent verifies that
//
//	head.yMax  ≤ OS/2.usWinAscent  ≤ 2·head.yMax
//	|head.yMin| ≤ OS/2.usWinDescent ≤ 2·|head.yMin|
//
// If one of the tables cannot be read, a single Fail diagnostic is returned and
// no metric is checked. Otherwise ascent and descent are checked independently,
// the ascent diagnostic coming first.
//
// Computing the upper bounds panics with *OverflowError if they do not fit into
// 32 bits, which cannot happen for 16-bit table fields.
func CheckWinAscentAndDescent(font Font) []Diagnostic {
	os2, errOS2 := font.OS2()
	head, errHead := font.Head()
	if errOS2 != nil || errHead != nil {
		tracer().Debugf("win metrics: OS/2: %v, head: %v", errOS2, errHead)
		return []Diagnostic{Fails(MissingTable{Name: "OS/2 or head"})}
	}
	var diagnostics []Diagnostic

	yMax := int32(head.YMax)
	ascent := NewRange(yMax, MulChecked(yMax, 2))
	winAscent := int32(os2.WinAscent)
	if !ascent.Contains(winAscent) {
		diagnostics = append(diagnostics, Fails(MetricOutOfRange{
			Table:    "OS/2",
			Field:    "usWinAscent",
			Expected: ascent,
			Actual:   winAscent,
		}))
	}

	yMin := abs32(int32(head.YMin))
	descent := NewRange(yMin, MulChecked(yMin, 2))
	winDescent := int32(os2.WinDescent)
	if !descent.Contains(winDescent) {
		diagnostics = append(diagnostics, Fails(MetricOutOfRange{
			Table:    "OS/2",
			Field:    "usWinDescent",
			Expected: descent,
			Actual:   winDescent,
		}))
	}
	return diagnostics
}
