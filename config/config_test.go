package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otcheck/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	runner, err := p.Runner()
	require.NoError(t, err)
	assert.Equal(t, check.RuleNames(), runner.Rules())
	l, err := p.Level()
	require.NoError(t, err)
	assert.Equal(t, check.Skip, l)
	assert.Equal(t, FormatText, p.Report.Format)
}

func TestParse(t *testing.T) {
	p, err := Parse(`
[checks]
enabled = ["win-ascent-descent"]

[report]
format = "msgpack"
min-level = "warning"

[run]
jobs = 3
`)
	require.NoError(t, err)
	assert.Equal(t, FormatMsgpack, p.Report.Format)
	assert.Equal(t, 3, p.Run.Jobs)
	l, err := p.Level()
	require.NoError(t, err)
	assert.Equal(t, check.Warning, l)
	rules, err := p.Rules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "win-ascent-descent", rules[0].Name)
}

func TestParseKeepsDefaults(t *testing.T) {
	p, err := Parse("[run]\njobs = 2\n")
	require.NoError(t, err)
	assert.Equal(t, FormatText, p.Report.Format)
	assert.Equal(t, "Skip", p.Report.MinLevel)
}

func TestParseInvalid(t *testing.T) {
	for name, text := range map[string]string{
		"unknown rule":   "[checks]\nenabled = [\"kerning\"]\n",
		"unknown level":  "[report]\nmin-level = \"fatal\"\n",
		"unknown format": "[report]\nformat = \"xml\"\n",
		"unknown key":    "[report]\ncolour = true\n",
		"negative jobs":  "[run]\njobs = -1\n",
		"syntax":         "[report\n",
	} {
		_, err := Parse(text)
		assert.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte("[report]\nformat = \"color\"\n"), 0o644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatColor, p.Report.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
