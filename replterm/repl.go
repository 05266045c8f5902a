/*
File    : golisp/replterm/repl.go
Package : replterm

Package replterm implements the interactive front-end for `--repl`: a
Banner/Version/Prompt-bearing struct, chzyer/readline for line editing and
history, fatih/color for banner/result/error coloring, and a per-line
evaluation step that reports errors without exiting the session. A bad
line is reported through the structured ilerr types rather than a bare
string; the evaluator reports failure through ordinary error returns, so
there is no panic/recover involved.
*/
package replterm

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ridgebeck/golisp/builtins"
	"github.com/ridgebeck/golisp/eval"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/parser"
	"github.com/ridgebeck/golisp/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a line-at-a-time interactive session over one persistent global
// frame: defines made on one line are visible on the next.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with golisp's banner and the given version string.
func New(version string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    strings.Repeat("-", 66),
		Prompt:  greenColor.Sprint("golisp >>> "),
	}
}

const banner = `
   __ _  ___  _ _  _  ___ _ __
  / _\ |/ _ \| | || |/ __| '_ \
 | (_| | (_) | | || |\__ \ |_) |
  \__, |\___/|_|\_,_||___/ .__/
  |___/                  |_|
`

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "A small Lisp. Type an expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-eval-print loop, writing the banner, prompts and
// results to w, until EOF (Ctrl+D) or '.exit'.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	e := eval.New(builtins.Register)
	e.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("goodbye\n"))
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("goodbye\n"))
			return nil
		}
		rl.SaveHistory(line)
		r.evalLine(w, e, line)
	}
}

func (r *Repl) evalLine(w io.Writer, e *eval.Evaluator, line string) {
	forms, err := parser.ParseSource(line)
	if err != nil {
		printError(os.Stderr, err)
		return
	}
	for _, form := range forms {
		result, err := e.EvalTopLevel(form)
		if err != nil {
			printError(os.Stderr, err)
			return
		}
		if _, ok := result.(value.Void); ok {
			continue
		}
		yellowColor.Fprintf(w, "%s\n", result.String())
	}
}

func printError(w io.Writer, err error) {
	if coded, ok := err.(ilerr.Coder); ok {
		redColor.Fprintf(w, "%s\n", coded.Error())
		return
	}
	redColor.Fprintf(w, "error: %v\n", err)
}
