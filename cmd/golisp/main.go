/*
File    : golisp/cmd/golisp/main.go
Package : main

The CLI entry point: pipe mode (default, reads all of stdin) or `--repl`
for the interactive front-end. Built on github.com/spf13/cobra: a root
cobra.Command with a bool flag and a RunE whose returned error main
prints and turns into an exit code (cobra's own error printing is
silenced). This is the one place in the module that inspects the dynamic
type of a returned error to choose a process exit code; every package
below it stays a plain Go library.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridgebeck/golisp/builtins"
	"github.com/ridgebeck/golisp/eval"
	"github.com/ridgebeck/golisp/ilerr"
	"github.com/ridgebeck/golisp/parser"
	"github.com/ridgebeck/golisp/replterm"
	"github.com/ridgebeck/golisp/value"
)

var version = "0.1.0"

func main() {
	var replMode bool

	root := &cobra.Command{
		Use:           "golisp",
		Short:         "A small Lisp-family interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if replMode {
				return replterm.New(version).Start(os.Stdout)
			}
			return runPipe(os.Stdin, os.Stdout)
		},
	}
	root.Flags().BoolVar(&replMode, "repl", false, "start an interactive session instead of reading from stdin")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the interpreter version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		if coded, ok := err.(ilerr.Coder); ok {
			fmt.Fprintln(os.Stderr, coded.Error())
			os.Exit(coded.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runPipe reads all of stdin, evaluates each top-level form against one
// global frame, and prints every non-Void result followed by a newline.
func runPipe(in io.Reader, out io.Writer) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	forms, err := parser.ParseSource(string(src))
	if err != nil {
		return err
	}

	e := eval.New(builtins.Register)
	e.SetWriter(out)

	for _, form := range forms {
		result, err := e.EvalTopLevel(form)
		if err != nil {
			return err
		}
		if _, ok := result.(value.Void); ok {
			continue
		}
		fmt.Fprintln(out, result.String())
	}
	return nil
}
