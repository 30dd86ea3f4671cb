// Command sqfront-tokens is a minimal smoke-test example: it lexes a file
// and prints its token stream, one token per line. It is not a product
// surface -- just enough to exercise the lexer end to end from a shell.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/internal/lexer"
)

func main() {
	respawn := flag.Bool("respawn", false, "lex under the SquirrelRespawn dialect instead of classic Squirrel3")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sqfront-tokens [-respawn] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	d := dialect.Squirrel3
	if *respawn {
		d = dialect.SquirrelRespawn
	}

	stream, rep := lexer.Lex(string(src), d, lexer.Options{File: path})
	for _, item := range stream.Items {
		tok := item.Token
		fmt.Printf("%-12s %-10s %q\n", tok.Range, tok.Kind, tok.Text)
	}

	for _, diag := range rep.Diagnostics() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", diag.Level, diag.Message)
	}
	if rep.HasErrors() {
		os.Exit(1)
	}
}
