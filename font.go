/*
Package otcheck checks metric plausibility of OpenType fonts.

Fonts are loaded from files or memory and handed to a check.Runner. Checking a
font never modifies it, so fonts are checked concurrently by CheckFiles:

	results, err := otcheck.CheckFiles(ctx, paths, check.DefaultRunner(), 0)
	for _, r := range results {
		...
	}

Every diagnostic renders as "<Level>: <message>"; reporting sinks in package
report add the source identifier, usually the font's file path.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otcheck

import (
	"os"

	"github.com/npillmayer/otcheck/ot"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'font.check'
func tracer() tracing.Trace {
	return tracing.Select("font.check")
}

// Font is a font loaded for checking.
type Font struct {
	Fontname string   // full font name, if the font's name table is readable
	Filepath string   // file path, empty for fonts parsed from memory
	Binary   []byte   // raw data
	OT       *ot.Font // the font's tables
}

// LoadFont loads an OpenType font (TTF or OTF) from a file.
func LoadFont(fontfile string) (*Font, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseFont loads an OpenType font (TTF or OTF) from memory.
//
// Only the table directory has to be intact. The font's name is looked up
// with golang.org/x/image/font/sfnt, which is much stricter; if it rejects
// the font, the name stays empty.
func ParseFont(fbytes []byte) (*Font, error) {
	f := &Font{Binary: fbytes}
	var err error
	if f.OT, err = ot.Parse(fbytes); err != nil {
		return nil, err
	}
	if sf, err := sfnt.Parse(fbytes); err != nil {
		tracer().Infof("cannot read font name: %v", err)
	} else if f.Fontname, err = sf.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}
