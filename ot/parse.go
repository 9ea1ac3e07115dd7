package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Minimum sizes of tables we interpret.
const (
	headTableSize = 54 // 'head' has a fixed size
	os2TableSize  = 78 // 'OS/2' version 0, up to and including usWinDescent
)

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two integers
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	if (a < 0 && b > 0 && a < math.MinInt/b) || (a > 0 && b < 0 && b < math.MinInt/a) {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// Parse parses an OpenType font from a byte slice.
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
//
// Parse fails only if the table directory cannot be read. Missing tables or
// tables too short to be interpreted are recorded as errors of the font
// (see Font.Errors) and surface when a client asks for the table.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat(fmt.Sprintf("font header: %v", err))
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	ec := &errorCollector{}

	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	src := binarySegm(font)
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	tableRecordsSize, err := checkedMulInt(16, int(h.TableCount))
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table count too large: %v", err))
	}
	if tableRecordsSize == 0 {
		tracer().Infof("font contains no tables")
		otf.parseWarnings = append(otf.parseWarnings, FontWarning{Issue: "empty table directory"})
		return otf, nil
	}
	buf, err := src.view(12, tableRecordsSize)
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			return nil, errFontFormat("invalid table offset")
		}
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, errFontFormat(fmt.Sprintf("table %s: size calculation overflow: %v", tag, err))
		}
		if off > uint32(len(src)) || tableEnd > uint32(len(src)) {
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, tableEnd, len(src)))
		}
		otf.tables[tag] = parseTable(tag, src[off:tableEnd], off, size, ec)
	}
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

func parseTable(t Tag, b binarySegm, offset, size uint32, ec *errorCollector) Table {
	switch t {
	case T("head"):
		return parseHead(t, b, offset, size, ec)
	case T("OS/2"):
		return parseOS2(t, b, offset, size, ec)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size)
}

// --- Head table ------------------------------------------------------------

// parseHead decodes the fields of table 'head' we care about. A table too short
// to hold them stays a generic table.
func parseHead(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) Table {
	if size < headTableSize {
		ec.addError(tag, "Size", fmt.Sprintf("head table too small: %d bytes (need %d)", size, headTableSize),
			SeverityMajor, offset)
		return newTable(tag, b, offset, size)
	}
	t := newHeadTable(tag, b, offset, size)
	t.MagicNumber, _ = b.u32(12)
	t.Flags, _ = b.u16(16)
	t.UnitsPerEm, _ = b.u16(18)
	t.XMin, _ = b.i16(36)
	t.YMin, _ = b.i16(38)
	t.XMax, _ = b.i16(40)
	t.YMax, _ = b.i16(42)
	// IndexToLocFormat is needed to interpret the loca table:
	// 0 for short offsets, 1 for long
	t.IndexToLocFormat, _ = b.u16(50)
	if t.MagicNumber != 0x5F0F3CF5 {
		ec.addWarning(tag, fmt.Sprintf("unexpected magic number %#x", t.MagicNumber), offset+12)
	}
	return t
}

// --- OS/2 table ------------------------------------------------------------

// parseOS2 decodes the version-0 portion of table 'OS/2'. All later versions
// only append fields, so usWinAscent and usWinDescent stay at offsets 74 and 76.
func parseOS2(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) Table {
	if size < os2TableSize {
		ec.addError(tag, "Size", fmt.Sprintf("OS/2 table too small: %d bytes (need %d)", size, os2TableSize),
			SeverityMajor, offset)
		return newTable(tag, b, offset, size)
	}
	t := newOS2Table(tag, b, offset, size)
	t.Version, _ = b.u16(0)
	t.XAvgCharWidth, _ = b.i16(2)
	t.TypoAscender, _ = b.i16(68)
	t.TypoDescender, _ = b.i16(70)
	t.TypoLineGap, _ = b.i16(72)
	t.WinAscent, _ = b.u16(74)
	t.WinDescent, _ = b.u16(76)
	return t
}
