package otcheck

import (
	"context"
	"fmt"
	"runtime"

	"github.com/npillmayer/otcheck/check"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of checking one font.
type Result struct {
	Source      string             // source identifier, e.g. a file path
	Fontname    string             // full name of the font, if known
	Diagnostics []check.Diagnostic // diagnostics in rule order
	Err         error              // font could not be loaded or checking was aborted
}

// Failed reports whether the font could not be checked or produced a
// Fail-level diagnostic.
func (r Result) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.Level == check.Fail {
			return true
		}
	}
	return false
}

// CheckFont runs the runner's rules against a loaded font.
func CheckFont(source string, f *Font, runner *check.Runner) Result {
	res := Result{Source: source, Fontname: f.Fontname}
	res.Diagnostics, res.Err = runner.Run(f.OT)
	return res
}

// CheckFiles loads and checks fonts concurrently, using at most jobs goroutines
// (jobs ≤ 0 means GOMAXPROCS). Results are returned in the order of paths.
//
// Fonts which cannot be loaded get a Result with Err set; they do not stop
// the other fonts. The returned error is non-nil only if ctx is cancelled
// before all fonts have been checked.
func CheckFiles(ctx context.Context, paths []string, runner *check.Runner, jobs int) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := LoadFont(path)
			if err != nil {
				tracer().Errorf("cannot load font %s: %v", path, err)
				results[i] = Result{Source: path, Err: fmt.Errorf("load font: %w", err)}
				return nil
			}
			results[i] = CheckFont(path, f, runner)
			tracer().Infof("%s: %d diagnostic(s)", path, len(results[i].Diagnostics))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
