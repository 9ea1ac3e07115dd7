package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/otcheck/check"
)

func help(w io.Writer, topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "check", "win-ascent-descent", "winmetrics":
		fmt.Fprint(w, `
	check runs all rules on the loaded font. Rule 'win-ascent-descent'
	compares table OS/2 against the bounding box in table head:

	  usWinAscent  must be in [yMax, 2*yMax]
	  usWinDescent must be in [|yMin|, 2*|yMin|]

	A font without a readable head or OS/2 table fails with
	"Cannot read OS/2 or head table".
`)
	case "levels", "level":
		fmt.Fprintf(w, "Diagnostic levels, from lowest to highest: %s, %s, %s, %s\n",
			check.Skip, check.Info, check.Warning, check.Fail)
	default:
		fmt.Fprint(w, `
	load <path>   load a font file
	check         check the loaded font
	info          print the tables and vertical extents of the loaded font
	rules         list the check rules
	help [topic]  topics: check, levels
	quit          leave (or <ctrl>D)
`)
	}
}
