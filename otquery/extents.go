package otquery

import (
	"github.com/npillmayer/otcheck/check"
	"github.com/npillmayer/otcheck/ot"
)

// WinExtents collects the values compared by the win-ascent-descent check,
// together with the ranges derived from table 'head'.
type WinExtents struct {
	YMin, YMax            int16
	WinAscent, WinDescent uint16
	AscentRange           check.Range // [yMax, 2·yMax]
	DescentRange          check.Range // [|yMin|, 2·|yMin|]
}

// Extents reads the vertical extents of a font. It returns false if table
// 'head' or table 'OS/2' cannot be read.
func Extents(otf *ot.Font) (WinExtents, bool) {
	var ext WinExtents
	head, ok := HeadInfo(otf)
	if !ok {
		return ext, false
	}
	os2, ok := OS2Info(otf)
	if !ok {
		return ext, false
	}
	ext.YMin, ext.YMax = head.YMin, head.YMax
	ext.WinAscent, ext.WinDescent = os2.WinAscent, os2.WinDescent
	yMax := int32(head.YMax)
	ext.AscentRange = check.NewRange(yMax, 2*yMax)
	yMin := int32(head.YMin)
	if yMin < 0 {
		yMin = -yMin
	}
	ext.DescentRange = check.NewRange(yMin, 2*yMin)
	return ext, true
}

// AscentOK reports whether usWinAscent is inside its range.
func (ext WinExtents) AscentOK() bool {
	return ext.AscentRange.Contains(int32(ext.WinAscent))
}

// DescentOK reports whether usWinDescent is inside its range.
func (ext WinExtents) DescentOK() bool {
	return ext.DescentRange.Contains(int32(ext.WinDescent))
}
