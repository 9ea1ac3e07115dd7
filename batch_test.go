package otcheck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otcheck/check"
	"github.com/npillmayer/otcheck/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParseFontGoRegular(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.check")
	defer teardown()
	//
	f, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	assert.NotEmpty(t, f.Fontname, "expected Go Regular to have a full name")

	head, err := f.OT.Head()
	require.NoError(t, err)
	os2, err := f.OT.OS2()
	require.NoError(t, err)

	res := CheckFont("goregular", f, check.DefaultRunner())
	require.NoError(t, res.Err)
	ascentOK := int32(os2.WinAscent) >= int32(head.YMax) && int32(os2.WinAscent) <= 2*int32(head.YMax)
	yMin := -int32(head.YMin)
	descentOK := int32(os2.WinDescent) >= yMin && int32(os2.WinDescent) <= 2*yMin
	expected := 0
	if !ascentOK {
		expected++
	}
	if !descentOK {
		expected++
	}
	assert.Len(t, res.Diagnostics, expected, "diagnostics should agree with head/OS/2 of Go Regular")
}

func TestParseFontWithoutNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.check")
	defer teardown()
	//
	f, err := ParseFont(fonttest.MetricsFont(-200, 1000, 1500, 300))
	require.NoError(t, err, "synthetic font lacks a name table, but must still load")
	assert.Empty(t, f.Fontname)
	_, err = ParseFont([]byte("not a font"))
	assert.Error(t, err)
}

func TestCheckFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.check")
	defer teardown()
	//
	dir := t.TempDir()
	paths := []string{
		writeFont(t, dir, "ok.ttf", fonttest.MetricsFont(-200, 1000, 1500, 300)),
		writeFont(t, dir, "ascent.ttf", fonttest.MetricsFont(-200, 1000, 500, 300)),
		filepath.Join(dir, "missing.ttf"),
		writeFont(t, dir, "nohead.ttf", fonttest.Build(fonttest.Tables{"OS/2": fonttest.OS2(1, 1)})),
		writeFont(t, dir, "descent.ttf", fonttest.MetricsFont(-200, 1000, 1500, 50)),
	}
	results, err := CheckFiles(context.Background(), paths, check.DefaultRunner(), 2)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Source, "results must keep input order")
	}
	assert.Empty(t, results[0].Diagnostics)
	assert.False(t, results[0].Failed())
	require.Len(t, results[1].Diagnostics, 1)
	assert.Equal(t, "Fail: OS/2.usWinAscent value should be in the range [1000, 2000], but got 500",
		results[1].Diagnostics[0].String())
	assert.Error(t, results[2].Err, "expected unreadable file to be reported")
	assert.True(t, results[2].Failed())
	require.Len(t, results[3].Diagnostics, 1)
	assert.Equal(t, "Fail: Cannot read OS/2 or head table", results[3].Diagnostics[0].String())
	require.Len(t, results[4].Diagnostics, 1)
	assert.Equal(t, "Fail: OS/2.usWinDescent value should be in the range [200, 400], but got 50",
		results[4].Diagnostics[0].String())
}

func TestCheckFilesCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.check")
	defer teardown()
	//
	dir := t.TempDir()
	path := writeFont(t, dir, "ok.ttf", fonttest.MetricsFont(-200, 1000, 1500, 300))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CheckFiles(ctx, []string{path, path, path}, check.DefaultRunner(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckFilesEmpty(t *testing.T) {
	results, err := CheckFiles(context.Background(), nil, check.DefaultRunner(), 0)
	assert.NoError(t, err)
	assert.Empty(t, results)
}
