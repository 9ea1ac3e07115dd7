package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otcheck"
	"github.com/npillmayer/otcheck/check"
	"github.com/npillmayer/otcheck/otquery"
	"github.com/npillmayer/otcheck/report"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	tlevel := mustFlagString(flags["trace"], "trace")
	if err := setTraceLevel("Error"); err != nil { // will set the correct level later
		fatalf("%v", err)
	}
	pterm.Info.Println("Welcome to the OpenType font checker")
	repl, err := readline.New("otcheck > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, runner: check.DefaultRunner(), out: repl.Stdout()}
	if path := strings.TrimSpace(args["font"].Value); path != "" {
		if err := intp.loadFont(path); err != nil {
			fatalf("%v", err)
		}
	}
	pterm.Info.Println("Quit with <ctrl>D or 'quit'")
	if err := setTraceLevel(tlevel); err != nil {
		fatalf("%v", err)
	}
	tracer().Infof("Trace level is %s", tlevel)
	intp.REPL()
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	runner *check.Runner
	out    io.Writer
	font   *otcheck.Font
	source string
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "( no font )"
	}
	if intp.font.Fontname != "" {
		return fmt.Sprintf("( font=%s )", intp.font.Fontname)
	}
	return fmt.Sprintf("( font=%s )", intp.source)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a parsed REPL command.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	LOAD
	CHECK
	INFO
	RULES
)

var opMap = map[string]int{
	"quit":  QUIT,
	"exit":  QUIT,
	"help":  HELP,
	"load":  LOAD,
	"check": CHECK,
	"info":  INFO,
	"rules": RULES,
}

var errNoFont = errors.New("no font loaded, use 'load <path>'")

// parseCommand splits a line into op-code and argument. The argument is the
// rest of the line, so paths may contain blanks.
func parseCommand(line string) (Op, error) {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return Op{code: HELP}, fmt.Errorf("unknown command %q, try 'help'", word)
	}
	op := Op{code: code, arg: strings.TrimSpace(arg)}
	if op.code == LOAD && op.arg == "" {
		return op, errors.New("load needs a font path")
	}
	tracer().Debugf("parsed command %q with arg %q", word, op.arg)
	return op, nil
}

func (intp *Intp) execute(op Op) (quit bool, err error) {
	switch op.code {
	case QUIT:
		return true, nil
	case HELP:
		help(intp.out, op.arg)
	case LOAD:
		err = intp.loadFont(op.arg)
	case CHECK:
		err = intp.checkFont()
	case INFO:
		err = intp.info()
	case RULES:
		for _, name := range intp.runner.Rules() {
			fmt.Fprintln(intp.out, name)
		}
	}
	return false, err
}

func (intp *Intp) loadFont(path string) error {
	f, err := otcheck.LoadFont(path)
	if err != nil {
		return err
	}
	intp.font, intp.source = f, path
	if n := len(f.OT.Errors()); n > 0 {
		pterm.Warning.Printf("font has %d parse error(s)\n", n)
	}
	tracer().Infof("loaded font %s", path)
	return nil
}

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return errNoFont
	}
	res := otcheck.CheckFont(intp.source, intp.font, intp.runner)
	if res.Err != nil {
		return res.Err
	}
	if len(res.Diagnostics) == 0 {
		pterm.Success.Println("all checks passed")
		return nil
	}
	return report.Emit(report.TextSink{W: intp.out}, []otcheck.Result{res}, nil)
}

func (intp *Intp) info() error {
	if intp.font == nil {
		return errNoFont
	}
	tags := intp.font.OT.TableTags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	fmt.Fprintf(intp.out, "Tables (%d): %s\n", len(tags), strings.Join(names, " "))
	ext, ok := otquery.Extents(intp.font.OT)
	if !ok {
		return errors.New("cannot read tables 'head' and 'OS/2'")
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(extentsTable(ext)).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(intp.out, table)
	return nil
}

func extentsTable(ext otquery.WinExtents) pterm.TableData {
	verdict := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "out of range"
	}
	return pterm.TableData{
		{"Field", "Value", "Expected", ""},
		{"head.yMax", fmt.Sprint(ext.YMax), "", ""},
		{"head.yMin", fmt.Sprint(ext.YMin), "", ""},
		{"OS/2.usWinAscent", fmt.Sprint(ext.WinAscent), ext.AscentRange.String(), verdict(ext.AscentOK())},
		{"OS/2.usWinDescent", fmt.Sprint(ext.WinDescent), ext.DescentRange.String(), verdict(ext.DescentOK())},
	}
}
