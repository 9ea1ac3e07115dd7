package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/otcheck/check"
	"github.com/npillmayer/otcheck/config"
	"github.com/npillmayer/otcheck/internal/fonttest"
	"github.com/npillmayer/otcheck/report"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFont(t *testing.T, name string, b []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cli")
	defer teardown()

	op, err := parseCommand("load  /tmp/My Font.ttf ")
	require.NoError(t, err)
	assert.Equal(t, LOAD, op.code)
	assert.Equal(t, "/tmp/My Font.ttf", op.arg)

	op, err = parseCommand("CHECK")
	require.NoError(t, err)
	assert.Equal(t, CHECK, op.code)

	_, err = parseCommand("load")
	assert.Error(t, err)
	_, err = parseCommand("shape hello")
	assert.Error(t, err)
}

func TestExecuteWithoutFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cli")
	defer teardown()

	var out bytes.Buffer
	intp := &Intp{runner: check.DefaultRunner(), out: &out}
	_, err := intp.execute(Op{code: CHECK})
	assert.ErrorIs(t, err, errNoFont)
	_, err = intp.execute(Op{code: INFO})
	assert.ErrorIs(t, err, errNoFont)
	quit, err := intp.execute(Op{code: RULES})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "win-ascent-descent\n", out.String())
	quit, _ = intp.execute(Op{code: QUIT})
	assert.True(t, quit)
}

func TestExecuteCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.cli")
	defer teardown()

	path := writeFont(t, "bad.ttf", fonttest.MetricsFont(-200, 1000, 500, 300))
	var out bytes.Buffer
	intp := &Intp{runner: check.DefaultRunner(), out: &out}
	_, err := intp.execute(Op{code: LOAD, arg: path})
	require.NoError(t, err)
	_, err = intp.execute(Op{code: CHECK})
	require.NoError(t, err)
	assert.Equal(t,
		path+": Fail: OS/2.usWinAscent value should be in the range [1000, 2000], but got 500\n",
		out.String())

	out.Reset()
	_, err = intp.execute(Op{code: INFO})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Tables (2): OS/2 head")
	assert.Contains(t, out.String(), "out of range")
}

func TestLoadOptions(t *testing.T) {
	opts, err := loadOptions("", "", "", -1)
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, opts.format)
	assert.Equal(t, 0, opts.jobs)

	cfg := writeFont(t, "profile.toml", []byte("[report]\nformat = \"msgpack\"\nmin-level = \"Fail\"\n[run]\njobs = 2\n"))
	opts, err = loadOptions(cfg, "text", "", -1)
	require.NoError(t, err)
	assert.Equal(t, "text", opts.format, "flag should override profile")
	assert.Equal(t, "Fail", opts.level)
	assert.Equal(t, 2, opts.jobs)

	_, err = loadOptions(filepath.Join(t.TempDir(), "none.toml"), "", "", -1)
	assert.Error(t, err)
}

func TestRunCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.check")
	defer teardown()

	good := writeFont(t, "good.ttf", fonttest.MetricsFont(-200, 1000, 1000, 200))
	bad := writeFont(t, "bad.ttf", fonttest.MetricsFont(-200, 1000, 1000, 500))
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	opts, err := loadOptions("", "", "", 1)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	failed, err := runCheck(context.Background(), []string{good}, opts, &stdout, &stderr)
	require.NoError(t, err)
	assert.False(t, failed)
	assert.Empty(t, stdout.String())

	failed, err = runCheck(context.Background(), []string{good, bad, missing}, opts, &stdout, &stderr)
	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t,
		bad+": Fail: OS/2.usWinDescent value should be in the range [200, 400], but got 500\n",
		stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), missing+": "))

	stdout.Reset()
	opts.format = config.FormatMsgpack
	_, err = runCheck(context.Background(), []string{bad}, opts, &stdout, &stderr)
	require.NoError(t, err)
	records, err := report.ReadRecords(&stdout)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "usWinDescent", records[0].Field)

	opts.format = "xml"
	_, err = runCheck(context.Background(), []string{bad}, opts, &stdout, &stderr)
	assert.Error(t, err)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.ttf", "b.otf"}, splitPaths("a.ttf, b.otf,"))
	assert.Nil(t, splitPaths(""))
	assert.Equal(t, "", flagOrEmpty("-"))
	assert.Equal(t, "x", flagOrEmpty("x"))
}
