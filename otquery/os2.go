package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/otcheck/ot"
)

// OS2TableInfo is a typed query view over OpenType table 'OS/2'.
// Fields of versions later than 0 are decoded if the table is long enough;
// HasCodePageRanges and HasHeights tell which.
type OS2TableInfo struct {
	Version            uint16
	XAvgCharWidth      int16
	WeightClass        uint16
	WidthClass         uint16
	FsType             uint16
	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
	StrikeoutSize      int16
	StrikeoutPosition  int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [4]uint32
	VendorID           ot.Tag
	FsSelection        uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
	TypoAscender       int16
	TypoDescender      int16
	TypoLineGap        int16
	WinAscent          uint16
	WinDescent         uint16

	// version 1 and later
	HasCodePageRanges bool
	CodePageRange     [2]uint32

	// version 2 and later
	HasHeights  bool
	XHeight     int16
	CapHeight   int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

const (
	os2V0Size = 78
	os2V1Size = 86
	os2V2Size = 96
)

// OS2Info decodes table 'OS/2' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func OS2Info(otf *ot.Font) (OS2TableInfo, bool) {
	var info OS2TableInfo
	table := otf.Table(ot.T("OS/2"))
	if table == nil {
		return info, false
	}
	b := table.Binary()
	if len(b) < os2V0Size {
		return info, false
	}
	u16 := func(i int) uint16 { return binary.BigEndian.Uint16(b[i : i+2]) }
	i16 := func(i int) int16 { return int16(u16(i)) }
	info.Version = u16(0)
	info.XAvgCharWidth = i16(2)
	info.WeightClass = u16(4)
	info.WidthClass = u16(6)
	info.FsType = u16(8)
	info.SubscriptXSize = i16(10)
	info.SubscriptYSize = i16(12)
	info.SubscriptXOffset = i16(14)
	info.SubscriptYOffset = i16(16)
	info.SuperscriptXSize = i16(18)
	info.SuperscriptYSize = i16(20)
	info.SuperscriptXOffset = i16(22)
	info.SuperscriptYOffset = i16(24)
	info.StrikeoutSize = i16(26)
	info.StrikeoutPosition = i16(28)
	info.FamilyClass = i16(30)
	copy(info.Panose[:], b[32:42])
	for i := range info.UnicodeRange {
		info.UnicodeRange[i] = binary.BigEndian.Uint32(b[42+4*i:])
	}
	info.VendorID = ot.MakeTag(b[58:62])
	info.FsSelection = u16(62)
	info.FirstCharIndex = u16(64)
	info.LastCharIndex = u16(66)
	info.TypoAscender = i16(68)
	info.TypoDescender = i16(70)
	info.TypoLineGap = i16(72)
	info.WinAscent = u16(74)
	info.WinDescent = u16(76)
	if info.Version >= 1 && len(b) >= os2V1Size {
		info.HasCodePageRanges = true
		info.CodePageRange[0] = binary.BigEndian.Uint32(b[78:82])
		info.CodePageRange[1] = binary.BigEndian.Uint32(b[82:86])
	}
	if info.Version >= 2 && len(b) >= os2V2Size {
		info.HasHeights = true
		info.XHeight = i16(86)
		info.CapHeight = i16(88)
		info.DefaultChar = u16(90)
		info.BreakChar = u16(92)
		info.MaxContext = u16(94)
	}
	return info, true
}
