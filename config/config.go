/*
Package config reads check profiles.

A profile selects the check rules to run and how to report their diagnostics.
Profiles are written in TOML:

	[checks]
	enabled = ["win-ascent-descent"]

	[report]
	format = "text"       # text | color | msgpack
	min-level = "Info"    # Skip | Info | Warning | Fail

	[run]
	jobs = 4              # 0 = one worker per CPU

Omitted settings keep their defaults, see Default.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/otcheck/check"
)

// Output formats.
const (
	FormatText    = "text"
	FormatColor   = "color"
	FormatMsgpack = "msgpack"
)

// Profile configures a run of checks.
type Profile struct {
	Checks ChecksConfig `toml:"checks"`
	Report ReportConfig `toml:"report"`
	Run    RunConfig    `toml:"run"`
}

// ChecksConfig selects rules. Empty means all registered rules.
type ChecksConfig struct {
	Enabled []string `toml:"enabled"`
}

// ReportConfig selects output format and minimum level.
type ReportConfig struct {
	Format   string `toml:"format"`
	MinLevel string `toml:"min-level"`
}

// RunConfig controls concurrency.
type RunConfig struct {
	Jobs int `toml:"jobs"`
}

// Default returns the profile used without a profile file: all rules,
// plain text output, all levels, one worker per CPU.
func Default() Profile {
	return Profile{
		Report: ReportConfig{Format: FormatText, MinLevel: check.Skip.String()},
	}
}

// Load reads a profile from a TOML file.
func Load(path string) (Profile, error) {
	p := Default()
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return p, fmt.Errorf("check profile %s: %w", path, err)
	}
	return p, validate(p, meta)
}

// Parse reads a profile from TOML text.
func Parse(text string) (Profile, error) {
	p := Default()
	meta, err := toml.Decode(text, &p)
	if err != nil {
		return p, fmt.Errorf("check profile: %w", err)
	}
	return p, validate(p, meta)
}

func validate(p Profile, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("check profile: unknown keys %s", strings.Join(keys, ", "))
	}
	if _, err := p.Rules(); err != nil {
		return err
	}
	if _, err := p.Level(); err != nil {
		return err
	}
	switch p.Report.Format {
	case FormatText, FormatColor, FormatMsgpack:
	default:
		return fmt.Errorf("check profile: unknown report format %q", p.Report.Format)
	}
	if p.Run.Jobs < 0 {
		return fmt.Errorf("check profile: negative number of jobs %d", p.Run.Jobs)
	}
	return nil
}

// Rules returns the rules enabled by the profile.
func (p Profile) Rules() ([]check.Rule, error) {
	return check.Rules(p.Checks.Enabled...)
}

// Runner creates a runner for the enabled rules.
func (p Profile) Runner() (*check.Runner, error) {
	rules, err := p.Rules()
	if err != nil {
		return nil, err
	}
	return check.NewRunner(rules...), nil
}

// Level returns the minimum level of diagnostics to report.
func (p Profile) Level() (check.Level, error) {
	if p.Report.MinLevel == "" {
		return check.Skip, nil
	}
	return check.ParseLevel(p.Report.MinLevel)
}
