/*
Package fonttest assembles minimal SFNT binaries for tests.

Fonts built here carry a table directory and whatever tables a test hands in;
they are not usable for rendering, but are sufficient for table access.
*/
package fonttest

import (
	"encoding/binary"
	"sort"
)

// Tables maps 4-letter table tags to table data.
type Tables map[string][]byte

// Build returns the binary of a TrueType-flavoured font containing the given
// tables. Table records are sorted by tag and tables are 4-byte aligned.
func Build(tables Tables) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	n := len(tags)
	header := make([]byte, 12+16*n)
	binary.BigEndian.PutUint32(header[0:], 0x00010000)
	binary.BigEndian.PutUint16(header[4:], uint16(n))
	offset := len(header)
	var body []byte
	for i, tag := range tags {
		data := tables[tag]
		rec := header[12+16*i:]
		copy(rec[0:4], []byte((tag + "    ")[:4]))
		binary.BigEndian.PutUint32(rec[8:], uint32(offset+len(body)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(data)))
		body = append(body, data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}
	return append(header, body...)
}

// Head returns a 54-byte 'head' table with the given vertical extents.
func Head(yMin, yMax int16) []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint16(b[0:], 1)           // majorVersion
	binary.BigEndian.PutUint32(b[12:], 0x5F0F3CF5) // magicNumber
	binary.BigEndian.PutUint16(b[18:], 1000)       // unitsPerEm
	binary.BigEndian.PutUint16(b[38:], uint16(yMin))
	binary.BigEndian.PutUint16(b[42:], uint16(yMax))
	return b
}

// OS2 returns a version 0 'OS/2' table with the given Windows metrics.
func OS2(winAscent, winDescent uint16) []byte {
	b := make([]byte, 78)
	binary.BigEndian.PutUint16(b[74:], winAscent)
	binary.BigEndian.PutUint16(b[76:], winDescent)
	return b
}

// MetricsFont builds a font with tables 'head' and 'OS/2' set up from the
// given values.
func MetricsFont(yMin, yMax int16, winAscent, winDescent uint16) []byte {
	return Build(Tables{
		"head": Head(yMin, yMax),
		"OS/2": OS2(winAscent, winDescent),
	})
}
