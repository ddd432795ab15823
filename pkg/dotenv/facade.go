package dotenv

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Loader is the public façade of spec.md §4.5: it wires file contents
// through Tokenizer -> Parser -> Evaluator and, on Load, writes the result
// back to the Provider subject to the override rule.
//
// Reading the requested files happens concurrently via errgroup (mirroring
// how ccuetoh-maqui-lang's Compiler.build pipes IR to clang and captures its
// output on separate goroutines) but evaluation itself is always folded
// over the fetched contents strictly in caller order, so spec.md §5's
// single-threaded evaluation guarantee holds regardless of how the files
// were fetched.
type Loader struct {
	provider    Provider
	overrideEnv bool
}

// New creates a Loader over provider. overrideEnv controls whether file
// values win over values the provider already has (see Evaluator.assign).
func New(provider Provider, overrideEnv bool) *Loader {
	return &Loader{provider: provider, overrideEnv: overrideEnv}
}

// SetOverrideEnv changes the override behavior for subsequent calls.
func (l *Loader) SetOverrideEnv(overrideEnv bool) {
	l.overrideEnv = overrideEnv
}

// Evaluate reads and evaluates files in order, returning the resulting
// Scope without writing anything back to the Provider.
func (l *Loader) Evaluate(files ...string) (*Scope, error) {
	contents, err := readFiles(files)
	if err != nil {
		return nil, err
	}

	eval := NewEvaluator(l.provider, l.overrideEnv)

	for i, file := range files {
		assignments, err := parseSource(contents[i], file)
		if err != nil {
			return nil, err
		}

		eval.SetFilename(file)

		if err := eval.EvaluateFile(assignments); err != nil {
			return nil, err
		}
	}

	return eval.Scope(), nil
}

// Load evaluates files, then writes each resolved (name, value) to the
// Provider: always when overrideEnv is true, and only for names the
// Provider does not already have when overrideEnv is false.
func (l *Loader) Load(files ...string) (*Scope, error) {
	scope, err := l.Evaluate(files...)
	if err != nil {
		return nil, err
	}

	for _, name := range scope.Keys() {
		value, _ := scope.Get(name)

		if !l.overrideEnv {
			if _, ok := l.provider.Get(name); ok {
				continue
			}
		}

		l.provider.Set(name, value)
	}

	return scope, nil
}

// readFiles reads every path concurrently and returns their contents in the
// same order as paths, or the first error encountered.
func readFiles(paths []string) ([]string, error) {
	contents := make([]string, len(paths))

	var g errgroup.Group

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "open %s", path)
			}

			contents[i] = string(data)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return contents, nil
}

// parseSource runs the tokenizer and parser over source, tagging any error
// with filename.
func parseSource(source, filename string) ([]Assignment, error) {
	tok := NewTokenizer(source)
	tok.SetFilename(filename)

	p := NewParser(tok, filename)

	return p.ParseFile()
}
