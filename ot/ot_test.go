package ot

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tag := Tag(0x636d6170)
	if tag.String() != "cmap" {
		t.Errorf("expected tag 0x636d6170 to be 'cmap', is %s", tag.String())
	}
	tag = MakeTag([]byte("cmap"))
	if tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	tag = T("cmap")
	if tag.String() != "cmap" {
		t.Errorf("expected tag T(cmap) to be 'cmap', is %s", tag.String())
	}
	if T("OS/2").String() != "OS/2" {
		t.Errorf("expected tag T(OS/2) to round-trip, is %q", T("OS/2").String())
	}
	if T("cvt").String() != "cvt " {
		t.Errorf("expected short tag to be padded with a space, is %q", T("cvt").String())
	}
}

func TestTableName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tb := tableBase{}
	tb.name = 0x636d6170
	s := tb.Self().NameTag().String()
	if s != "cmap" {
		t.Errorf("expected table name to be cmap, is %v", s)
	}
	if (TableSelf{}).AsHead() != nil || (TableSelf{}).AsOS2() != nil {
		t.Errorf("expected empty table reference not to convert to a concrete table")
	}
}

func TestTableError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	var err error = &TableError{Table: T("head"), Err: ErrTableNotFound}
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("expected table error to match ErrTableNotFound")
	}
	if errors.Is(err, ErrTableUnreadable) {
		t.Errorf("expected table error not to match ErrTableUnreadable")
	}
	if err.Error() != "OpenType table head: table not found" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityMajor.String() != "MAJOR" {
		t.Errorf("expected severity MAJOR, is %s", SeverityMajor)
	}
	e := FontError{Table: T("OS/2"), Section: "Size", Issue: "too small", Severity: SeverityMajor, Offset: 28}
	if e.Error() != "[MAJOR] OS/2/Size at offset 28: too small" {
		t.Errorf("unexpected font error message %q", e.Error())
	}
}
