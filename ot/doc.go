/*
Package ot provides read access to the tables of an OpenType font.

Package `ot` reads the table directory of a font and exposes the tables it
finds, without interpreting more of a table than clients need. For the metric
checks of this module, two tables receive typed views:

▪︎ 'head', the font header, holding the global extents of all glyphs (yMin, yMax)

▪︎ 'OS/2', the OS/2 and Windows metrics table, holding usWinAscent and usWinDescent

Any other table is kept as a generic table, i.e. a view onto its bytes.

A font missing any of the tables is not rejected by `Parse`. Deciding whether a
missing table is a problem is left to the client:

	otf, err := ot.Parse(data)
	...
	head, err := otf.Head()
	if errors.Is(err, ot.ErrTableNotFound) {
		...
	}

Bugs in fonts: many fonts in the wild contain entries that—strictly speaking—infringe
upon the OpenType specification. Problems which do not prevent reading the table
directory are collected and may be inspected with `Errors` and `Warnings`.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
