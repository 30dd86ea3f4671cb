// Package golden provides a framework for writing file-based golden tests.
//
// The primary entry-point is [Corpus]. Define a corpus in an ordinary Go
// test body and call [Corpus.Run] to execute it.
//
// Corpora can be "refreshed" to update the golden outputs with whatever the
// test produces, instead of comparing against them. To do this, run the
// test with the environment variable [Corpus.Refresh] names set to a glob
// matching the test files to regenerate expectations for.
package golden

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Corpus describes a test data corpus: a table-driven test where the
// "table" is a directory of files on disk.
type Corpus struct {
	// Root is the test data directory, relative to the directory of the
	// file calling Run.
	Root string

	// Refresh is an environment variable name; when set to a glob that
	// matches a test's relative path, that test's outputs are
	// regenerated rather than compared.
	Refresh string

	// Extensions are the file extensions (without a dot) that define a
	// test case, e.g. "sqf".
	Extensions []string

	// Outputs are the possible outputs of a test case, keyed by the
	// suffix golden.Run appends to the input file's name. A missing
	// golden file is treated as an expected empty output.
	Outputs []Output
}

// Output is one named output of a test case.
type Output struct {
	// Extension names the golden file: for input "foo.sqf" and
	// Extension "diag", the golden file is "foo.sqf.diag".
	Extension string

	// Compare reports a mismatch message, or "" if got and want match.
	// Defaults to CompareAndDiff.
	Compare CompareFunc
}

// CompareFunc compares a test's actual output against its golden file.
// It returns "" when they match, or a human-readable mismatch otherwise.
type CompareFunc func(got, want string) string

// CompareAndDiff is the default CompareFunc: an exact string comparison
// that renders a unified-ish diff on mismatch.
func CompareAndDiff(got, want string) string {
	if got == want {
		return ""
	}
	return cmp.Diff(want, got)
}

// Run walks Root for files matching Extensions and, for each, calls test
// with the file's path (relative to the caller), its text, and a slice to
// fill in with one string per entry in Outputs.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	_, callerFile, _, ok := callerInfo()
	if !ok {
		t.Fatal("golden: could not determine caller location")
	}
	testDir := filepath.Dir(callerFile)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		for _, ext := range c.Extensions {
			if strings.HasSuffix(p, "."+ext) {
				tests = append(tests, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: walking %q: %v", root, err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		testName, _ := filepath.Rel(root, path)
		testName = filepath.ToSlash(testName)

		t.Run(testName, func(t *testing.T) {
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: reading %q: %v", path, err)
			}

			results := make([]string, len(c.Outputs))
			panicked, stack := catch(func() { test(t, name, string(raw), results) })
			if panicked != nil {
				t.Logf("test panicked: %v\n%s", panicked, stack)
				t.Fail()
			}

			var refreshThis bool
			if refresh != "" {
				refreshThis, _ = filepath.Match(refresh, name)
			}

			for i, out := range c.Outputs {
				goldenPath := path + "." + out.Extension
				if panicked != nil && results[i] == "" {
					continue
				}

				if refreshThis {
					if results[i] == "" {
						if err := os.Remove(goldenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
							t.Logf("golden: removing %q: %v", goldenPath, err)
							t.Fail()
						}
					} else if err := os.WriteFile(goldenPath, []byte(results[i]), 0o600); err != nil {
						t.Logf("golden: writing %q: %v", goldenPath, err)
						t.Fail()
					}
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Logf("golden: reading %q: %v", goldenPath, err)
					t.Fail()
					continue
				}

				cmpFn := out.Compare
				if cmpFn == nil {
					cmpFn = CompareAndDiff
				}
				if diff := cmpFn(results[i], string(want)); diff != "" {
					t.Logf("output mismatch for %q:\n%s", goldenPath, diff)
					t.Fail()
				}
			}
		})
	}
}

// callerInfo walks up the stack past this package's own frames to find the
// test file that called Run.
func callerInfo() (pc uintptr, file string, line int, ok bool) {
	for skip := 2; skip < 10; skip++ {
		pc, file, line, ok = runtime.Caller(skip)
		if !ok {
			return
		}
		if !strings.Contains(file, "internal/golden") {
			return
		}
	}
	return
}

func catch(cb func()) (recovered any, stack []byte) {
	defer func() {
		recovered = recover()
		if recovered != nil {
			stack = debug.Stack()
		}
	}()
	cb()
	return
}
