// Package repl implements the Read-Eval-Print Loop for the interpreter.
// It gives users an interactive session: enter a line, see it executed
// immediately against an environment that persists for the life of the
// session, with colored feedback and command history.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/slox/interp"
	"github.com/loxlang/slox/lexer"
	"github.com/loxlang/slox/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session: the
// banner shown at startup, version/author/license strings, and the
// prompt. None of it affects evaluation semantics.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given cosmetic configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// printBanner writes the welcome banner and usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type an expression or statement and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate history.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or EOF is reached
// (Ctrl+D). Every line is scanned, parsed, and executed against a
// single Interpreter, so variables and functions defined on one line
// are visible to every line after it.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Goodbye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Goodbye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(w, line, it)
	}
}

// evalLine scans, parses, and executes one line of input, recovering
// from any panic so a single bad line never takes down the session.
func (r *Repl) evalLine(w io.Writer, line string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[internal error] %v\n", recovered)
		}
	}()

	tokens, scanErrs := lexer.New(line).ScanTokens()
	for _, e := range scanErrs {
		redColor.Fprintf(w, "%s\n", e)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	for _, e := range p.Errors() {
		redColor.Fprintf(w, "%s\n", e)
	}
	if len(scanErrs) > 0 || len(p.Errors()) > 0 {
		return
	}

	for _, diag := range it.Run(stmts) {
		redColor.Fprintf(w, "%s\n", diag)
	}
}
