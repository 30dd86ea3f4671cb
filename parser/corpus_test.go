package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/internal/golden"
	"github.com/nutlang/sqfront/internal/lexer"
	"github.com/nutlang/sqfront/parser"
	"github.com/nutlang/sqfront/report"
)

// fixture is the YAML configuration embedded in a testdata/*.sqf file's
// leading "//% " comment lines, the same way protocompile's ir_test.go
// embeds per-file test configuration ahead of the source under test.
type fixture struct {
	// Respawn selects the SquirrelRespawn dialect; omitted means classic
	// Squirrel3.
	Respawn bool `yaml:"respawn"`

	// WantErrors is the number of Error-level diagnostics the parse is
	// expected to produce.
	WantErrors int `yaml:"want_errors"`
}

func parseFixture(path, text string) (fixture, string) {
	var cfg fixture
	var cfgLines, srcLines []string
	rest := text
	for {
		line, ok := cutLine(&rest)
		if !ok {
			break
		}
		if body, ok := cutPrefix(line, "//% "); ok {
			cfgLines = append(cfgLines, body)
			continue
		}
		srcLines = append(srcLines, line)
	}
	if len(cfgLines) > 0 {
		if err := yaml.Unmarshal([]byte(joinLines(cfgLines)), &cfg); err != nil {
			panic(fmt.Sprintf("%s: bad fixture config: %v", path, err))
		}
	}
	return cfg, joinLines(srcLines)
}

func cutLine(rest *string) (string, bool) {
	s := *rest
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			*rest = s[i+1:]
			return s[:i], true
		}
	}
	*rest = ""
	return s, true
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return "", false
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// TestCorpus drives every testdata/*.sqf fixture through the parser and
// checks its diagnostic count against the fixture's configuration, then
// compares a rendered statement-count summary against a golden file.
func TestCorpus(t *testing.T) {
	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "SQFRONT_REFRESH",
		Extensions: []string{"sqf"},
		Outputs: []golden.Output{
			{Extension: "summary"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		cfg, src := parseFixture(path, text)

		d := dialect.Squirrel3
		if cfg.Respawn {
			d = dialect.SquirrelRespawn
		}

		stream, lexRep := lexer.Lex(src, d, lexer.Options{File: path})
		require.Equal(t, 0, lexRep.Len(), "unexpected lexer diagnostics: %v", lexRep.Diagnostics())

		prog, parseRep := parser.Parse(stream, path)
		errCount := 0
		for _, diag := range parseRep.Diagnostics() {
			if diag.Level == report.Error {
				errCount++
			}
		}
		require.Equal(t, cfg.WantErrors, errCount, "diagnostics: %v", parseRep.Diagnostics())

		outputs[0] = fmt.Sprintf("stmts=%d\n", len(prog.Stmts))
	})
}
