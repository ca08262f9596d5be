// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command jlex streams a file or stdin through a laxjson.Reader and
// prints one line per token, indented by container depth. Colors are
// used automatically when stdout is a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/laxjson/laxjson"
)

func main() {
	var filename string
	var forceColor, noColor bool
	flag.StringVar(&filename, "file", "", "input filename (stdin if omitted)")
	flag.BoolVar(&forceColor, "color", false, "force colored output")
	flag.BoolVar(&noColor, "nocolor", false, "disable colored output")
	flag.Parse()

	var input io.Reader = os.Stdin
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fatalf("opening %q: %v", filename, err)
		}
		defer f.Close()
		input = f
	}

	var stdout io.Writer = os.Stdout
	var colorizer *laxjson.Colorizer
	if forceColor || (!noColor && isatty.IsTerminal(os.Stdout.Fd())) {
		colorizer = laxjson.DefaultColorizer
		stdout = colorable.NewColorableStdout()
	}
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if err := dump(out, input, colorizer); err != nil {
		fatalf("%v", err)
	}
}

// dump reads every token from src and writes one indented, optionally
// colorized line per token to w.
func dump(w io.Writer, src io.Reader, c *laxjson.Colorizer) error {
	r := laxjson.NewReader(src)
	depth := 0
	for {
		ok, err := r.Read()
		if err != nil {
			return fmt.Errorf("line %d, position %d: %w", r.LineNumber(), r.LinePosition(), err)
		}
		if !ok {
			return nil
		}
		tok := r.Token()
		switch tok.Kind() {
		case laxjson.EndObject, laxjson.EndArray, laxjson.EndConstructor:
			depth--
		}
		fmt.Fprint(w, strings.Repeat("  ", max(depth, 0)))
		if err := c.WriteToken(w, tok); err != nil {
			return err
		}
		fmt.Fprintln(w)
		switch tok.Kind() {
		case laxjson.StartObject, laxjson.StartArray, laxjson.StartConstructor:
			depth++
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jlex: "+format+"\n", args...)
	os.Exit(1)
}
