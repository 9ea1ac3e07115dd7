/*
Command otcheck checks vertical metrics of OpenType fonts.

	otcheck check [--format text|color|msgpack] [--level Info] [--jobs 4] [--config profile.toml] font...
	otcheck repl [font]

The check sub-command prints one line per diagnostic, prefixed by the font's
path, and exits with status 1 if any font failed. The repl sub-command starts
an interactive session.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'font.cli'
func tracer() tracing.Trace {
	return tracing.Select("font.cli")
}

func main() {
	initDisplay()
	if err := initTracing(); err != nil {
		fatalf("error configuring tracing: %v", err)
	}

	commando.
		SetExecutableName("otcheck").
		SetVersion("v0.1.0").
		SetDescription("Check OS/2 win metrics of OpenType fonts against their bounding box.")

	commando.
		Register("check").
		SetDescription("Run checks on fonts and print diagnostics. Exits with status 1 if any font fails.").
		SetShortDescription("check fonts").
		AddArgument("fonts...", "OpenType font file paths", "").
		AddFlag("format,f", "output format: text|color|msgpack", commando.String, "-").
		AddFlag("level,l", "minimum level to print: Skip|Info|Warning|Fail", commando.String, "-").
		AddFlag("jobs,j", "number of fonts checked in parallel (0 = one per CPU)", commando.Int, -1).
		AddFlag("config,c", "TOML check profile", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runCheckCommand)

	commando.
		Register("repl").
		SetDescription("Interactively load and check fonts.").
		SetShortDescription("interactive mode").
		AddArgument("font", "font to load at start", "").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Info").
		SetAction(runReplCommand)

	commando.Parse(nil)
}

func initTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.font.cli":      "Error",
		"trace.font.check":    "Error",
		"trace.font.opentype": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// setTraceLevel sets the level for all tracers of this module.
func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	for _, key := range []string{"font.cli", "font.check", "font.opentype"} {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " WARN ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " FAIL ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "otcheck: "+format+"\n", args...)
	os.Exit(2)
}
