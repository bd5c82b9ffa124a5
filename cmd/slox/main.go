// Command slox is the interpreter's command-line entry point. With no
// arguments it starts an interactive REPL; with one argument it runs
// that file as a script.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"

	"github.com/loxlang/slox/interp"
	"github.com/loxlang/slox/lexer"
	"github.com/loxlang/slox/parser"
	"github.com/loxlang/slox/repl"
)

// ExitCode is the sysexits-style process exit status spec §6 requires,
// kept as a named type rather than bare literals so a reader can tell
// a deliberate exit status apart from an arbitrary int at a glance.
type ExitCode int

const (
	exitSuccess    ExitCode = 0
	exitUsageError ExitCode = 64
	exitDataError  ExitCode = 65
	exitNoInput    ExitCode = 66
	exitSoftware   ExitCode = 70
)

const version = "v0.1.0"
const author = "the slox authors"
const license = "MIT"
const prompt = "slox >>> "
const line = "----------------------------------------------------------------"

const banner = `
   _____ _
  / ____| |
 | (___ | | _____  __
  \___ \| |/ _ \ \/ /
  ____) | | (_) >  <
 |_____/|_|\___/_/\_\
`

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) <= 1 {
		repl.New(banner, version, author, line, license, prompt).Start(os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
		os.Exit(int(exitSuccess))
	case "--version", "-v":
		showVersion()
		os.Exit(int(exitSuccess))
	case "--watch":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "Usage: slox --watch <path-to-file>\n")
			os.Exit(int(exitUsageError))
		}
		os.Exit(int(watchFile(os.Args[2])))
	case "--tokens":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "Usage: slox --tokens <path-to-file>\n")
			os.Exit(int(exitUsageError))
		}
		os.Exit(int(printTokens(os.Args[2])))
	default:
		os.Exit(int(runFile(arg)))
	}
}

// printTokens is a debug aid: it scans path and prints every token,
// one per line, instead of parsing and running it. Useful for
// inspecting how a script lexes without reaching for a debugger.
func printTokens(path string) ExitCode {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitNoInput
	}

	tokens, scanErrs := lexer.New(string(source)).ScanTokens()
	for _, tok := range tokens {
		cyanColor.Printf("%-4d %-12s %q\n", tok.Line, tok.Kind, tok.Lexeme)
	}
	for _, e := range scanErrs {
		redColor.Fprintf(os.Stderr, "%s\n", e)
	}
	if len(scanErrs) > 0 {
		return exitDataError
	}
	return exitSuccess
}

// watchFile runs path once, then re-runs it on every save, until the
// user interrupts the process. It never returns a file's runtime
// diagnostics as the process exit code since the loop is meant to keep
// running through script errors the user is actively iterating on.
func watchFile(path string) ExitCode {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not start file watcher: %v\n", err)
		return exitSoftware
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		redColor.Fprintf(os.Stderr, "Could not watch '%s': %v\n", path, err)
		return exitNoInput
	}

	cyanColor.Printf("Watching %s, press Ctrl+C to stop.\n", path)
	runFile(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return exitSuccess
			}
			if event.Has(fsnotify.Write) {
				cyanColor.Printf("--- %s changed, re-running ---\n", path)
				runFile(path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return exitSuccess
			}
			redColor.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func showHelp() {
	cyanColor.Println("slox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  slox                  Start the interactive REPL")
	cyanColor.Println("  slox <path-to-file>   Run a script")
	cyanColor.Println("  slox --watch <file>   Run a script, re-running it on every save")
	cyanColor.Println("  slox --tokens <file>  Print the scanned token stream instead of running it")
	cyanColor.Println("  slox --help           Show this message")
	cyanColor.Println("  slox --version        Show version information")
}

func showVersion() {
	cyanColor.Printf("slox %s (%s license)\n", version, license)
}

// runFile reads and executes a script, returning the process exit code
// that should be reported for its outcome. A panic escaping evaluation
// is treated the same as any other internal failure: reported and
// exited non-zero, never left to crash the process.
func runFile(path string) (code ExitCode) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[internal error] %v\n", recovered)
			code = exitSoftware
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitNoInput
	}

	tokens, scanErrs := lexer.New(string(source)).ScanTokens()
	p := parser.New(tokens)
	stmts := p.Parse()

	if len(scanErrs) > 0 || len(p.Errors()) > 0 {
		for _, e := range scanErrs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		for _, e := range p.Errors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return exitDataError
	}

	diagnostics := interp.New(os.Stdout).Run(stmts)
	for _, d := range diagnostics {
		redColor.Fprintf(os.Stderr, "%s\n", d)
	}
	if len(diagnostics) > 0 {
		return exitSoftware
	}
	return exitSuccess
}
