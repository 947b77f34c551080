// Package assembler compiles ordered actions into suites and persists them
// as spec files in a target runner's dialect.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hairizuan-noorazman/e2egen/action"
	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/storage"
	"github.com/hairizuan-noorazman/e2egen/target"
)

var (
	// ErrFileSystemFailure is returned when writing a suite file fails.
	ErrFileSystemFailure = errors.New("file system failure")

	// ErrEmptySuiteTitle is returned when a suite has no title to derive a
	// file name from.
	ErrEmptySuiteTitle = errors.New("suite title is required")
)

// Suite is a named, ordered sequence of compiled statements. It maps 1:1 to
// one generated spec file.
type Suite struct {
	Title      string
	Statements []string
}

// CompileError records one action that failed to compile.
type CompileError struct {
	Index  int
	Action action.Action
	Err    error
}

func (e CompileError) Error() string {
	return fmt.Sprintf("action %d: %v", e.Index, e.Err)
}

func (e CompileError) Unwrap() error {
	return e.Err
}

// Options controls suite compilation.
type Options struct {
	// StopOnError aborts compilation at the first failing action. When false,
	// compilation continues past failing actions and all failures are
	// reported together.
	StopOnError bool
}

// CompileSuite compiles the actions in authored order for the given script
// target. The compiler never merges or reorders actions; every emitted
// statement comes from exactly one action. Actions that fail to compile
// produce CompileErrors joined into the returned error; the statements of the
// actions that did compile are still returned.
func CompileSuite(t target.ScriptTarget, title string, actions []action.Action, opts Options) (Suite, error) {
	suite := Suite{Title: title}

	var errs []error
	for i, a := range actions {
		stmts, err := t.Compile(a)
		if err != nil {
			compileErr := CompileError{Index: i, Action: a, Err: err}
			if opts.StopOnError {
				return suite, compileErr
			}
			errs = append(errs, compileErr)
			continue
		}
		suite.Statements = append(suite.Statements, stmts...)
	}

	if len(errs) > 0 {
		return suite, errors.Join(errs...)
	}
	return suite, nil
}

// FileName derives the deterministic spec file name for a suite: whitespace
// collapsed to single underscores, lower-cased, plus the target's suffix.
// Callers choosing colliding titles overwrite each other's files silently.
func FileName(title string, t target.ScriptTarget) (string, error) {
	name := strings.ToLower(strings.Join(strings.Fields(title), "_"))
	if name == "" {
		return "", ErrEmptySuiteTitle
	}
	return name + t.FileSuffix(), nil
}

// Writer persists assembled suites through an artifact store.
type Writer struct {
	store  storage.ArtifactStore
	dir    string
	logger logger.Logger
}

// NewWriter creates a writer that stores spec files under dir.
func NewWriter(store storage.ArtifactStore, dir string, log logger.Logger) *Writer {
	return &Writer{store: store, dir: dir, logger: log}
}

// Write wraps the suite in the target's template and persists it, creating
// any missing parent directory and overwriting an existing file of the same
// name without warning. It returns the key the suite was written under.
func (w *Writer) Write(ctx context.Context, t target.ScriptTarget, suite Suite) (string, error) {
	name, err := FileName(suite.Title, t)
	if err != nil {
		return "", err
	}

	key := name
	if w.dir != "" {
		key = w.dir + "/" + name
	}

	content := t.WrapSuite(suite.Title, suite.Statements)
	if err := w.store.Upload(ctx, key, strings.NewReader(content)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileSystemFailure, err)
	}

	w.logger.Info(ctx, "suite written", logger.Fields{
		"target":     t.Name(),
		"key":        key,
		"statements": len(suite.Statements),
	})
	return key, nil
}
