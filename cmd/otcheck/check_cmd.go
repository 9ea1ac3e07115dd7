package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/otcheck"
	"github.com/npillmayer/otcheck/check"
	"github.com/npillmayer/otcheck/config"
	"github.com/npillmayer/otcheck/report"
	"github.com/thatisuday/commando"
)

// checkOptions are the settings of the check sub-command after merging the
// profile with command-line flags. Flags win.
type checkOptions struct {
	profile config.Profile
	format  string
	level   string
	jobs    int
}

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	if err := setTraceLevel(mustFlagString(flags["trace"], "trace")); err != nil {
		fatalf("%v", err)
	}
	paths := splitPaths(args["fonts"].Value)
	if len(paths) == 0 {
		fatalf("at least one font path is required")
	}
	opts, err := loadOptions(
		flagOrEmpty(mustFlagString(flags["config"], "config")),
		flagOrEmpty(mustFlagString(flags["format"], "format")),
		flagOrEmpty(mustFlagString(flags["level"], "level")),
		mustFlagInt(flags["jobs"], "jobs"),
	)
	if err != nil {
		fatalf("%v", err)
	}
	failed, err := runCheck(context.Background(), paths, opts, os.Stdout, os.Stderr)
	if err != nil {
		fatalf("%v", err)
	}
	if failed {
		os.Exit(1)
	}
}

// loadOptions reads the profile at cfgPath (if any) and overrides it with
// non-empty flag values. A negative jobs value keeps the profile's setting.
func loadOptions(cfgPath, format, level string, jobs int) (checkOptions, error) {
	opts := checkOptions{profile: config.Default()}
	if cfgPath != "" {
		p, err := config.Load(cfgPath)
		if err != nil {
			return opts, err
		}
		opts.profile = p
	}
	opts.format = opts.profile.Report.Format
	if format != "" {
		opts.format = format
	}
	opts.level = opts.profile.Report.MinLevel
	if level != "" {
		opts.level = level
	}
	opts.jobs = opts.profile.Run.Jobs
	if jobs >= 0 {
		opts.jobs = jobs
	}
	return opts, nil
}

// runCheck checks all fonts and writes their diagnostics to stdout. Fonts
// which cannot be loaded are reported to stderr. It returns true if any font
// failed.
func runCheck(ctx context.Context, paths []string, opts checkOptions, stdout, stderr io.Writer) (bool, error) {
	runner, err := opts.profile.Runner()
	if err != nil {
		return false, err
	}
	level := check.Skip
	if opts.level != "" {
		if level, err = check.ParseLevel(opts.level); err != nil {
			return false, err
		}
	}
	sink, err := newSink(opts.format, stdout)
	if err != nil {
		return false, err
	}
	tracer().Infof("checking %d font(s) with rules %v", len(paths), runner.Rules())
	results, err := otcheck.CheckFiles(ctx, paths, runner, opts.jobs)
	if err != nil {
		return false, err
	}
	err = report.Emit(report.Filter(sink, level), results, func(r otcheck.Result) {
		fmt.Fprintf(stderr, "%s: %v\n", r.Source, r.Err)
	})
	if err != nil {
		return false, err
	}
	failed := false
	for _, r := range results {
		failed = failed || r.Failed()
	}
	return failed, nil
}

func newSink(format string, w io.Writer) (report.Sink, error) {
	switch format {
	case "", config.FormatText:
		return report.TextSink{W: w}, nil
	case config.FormatColor:
		return report.ColorSink{}, nil
	case config.FormatMsgpack:
		return report.NewMsgpackSink(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// commando joins the parts of a variadic argument by comma.
func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// commando needs a non-empty default for string flags.
func flagOrEmpty(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
