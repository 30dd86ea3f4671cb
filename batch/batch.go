// Package batch is a convenience wrapper for parsing many independent
// documents at once. Source files have no cross-file dependencies in this
// front end -- there's no import graph to resolve, unlike a Protobuf
// compile -- so all it needs from the teacher's executor/semaphore pattern
// is the bounded-parallelism part.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/internal/lexer"
	"github.com/nutlang/sqfront/parser"
	"github.com/nutlang/sqfront/report"
)

// Source is one document to parse: a file name (used for diagnostics and
// copied into the matching Result) plus its text.
type Source struct {
	File string
	Text string
}

// Result is one document's parse outcome. Program is always non-nil, even
// when Report holds errors, mirroring Parse's own "always return a usable
// partial tree" contract.
type Result struct {
	File    string
	Program *ast.Program
	Report  *report.Report
}

// ParseFiles lexes and parses every Source concurrently, bounded to at
// most parallelism goroutines in flight at once. parallelism <= 0 means
// GOMAXPROCS. It returns one Result per Source, in the same order they
// were given, or an error if ctx is cancelled before every document
// finishes.
func ParseFiles(ctx context.Context, d dialect.Dialect, srcs []Source, parallelism int) ([]Result, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(srcs))
	sem := semaphore.NewWeighted(int64(parallelism))

	for i, src := range srcs {
		if err := sem.Acquire(ctx, 1); err != nil {
			return results, err
		}
		go func(i int, src Source) {
			defer sem.Release(1)
			results[i] = parseOne(d, src)
		}(i, src)
	}

	// Acquiring the full weight blocks until every in-flight goroutine has
	// released, which only happens after it has written its result.
	if err := sem.Acquire(ctx, int64(parallelism)); err != nil {
		return results, err
	}
	return results, nil
}

func parseOne(d dialect.Dialect, src Source) Result {
	stream, lexRep := lexer.Lex(src.Text, d, lexer.Options{File: src.File})
	prog, parseRep := parser.Parse(stream, src.File)

	rep := &report.Report{}
	for _, diag := range lexRep.Diagnostics() {
		rep.Add(diag)
	}
	for _, diag := range parseRep.Diagnostics() {
		rep.Add(diag)
	}
	return Result{File: src.File, Program: prog, Report: rep}
}
