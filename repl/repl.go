/*
File   : cloudy/repl/repl.go
Package: repl
*/

// Package repl implements Cloudy's interactive Read-Eval-Print Loop,
// adapted from the teacher's brace-delimited single-line evaluator to
// Cloudy's indentation-sensitive grammar: each line the user enters is
// lexed, parsed, and interpreted as a one-statement program against a
// persistent global Context, so variables and function definitions
// survive from one line to the next.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/nandu-not-bot/cloudy"
	"github.com/nandu-not-bot/cloudy/config"
	"github.com/nandu-not-bot/cloudy/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured REPL instance ready to Start against a stream
// pair. UseColor lets the CLI's --no-color flag disable fatih/color
// output without changing the config file.
type Repl struct {
	Cfg      *config.Config
	UseColor bool
}

// New builds a Repl from cfg, with color enabled exactly when cfg says
// so; useColor, if false, forces color off regardless of cfg.
func New(cfg *config.Config, useColor bool) *Repl {
	return &Repl{Cfg: cfg, UseColor: useColor && cfg.Color}
}

func (r *Repl) printBannerInfo(writer io.Writer) {
	if !r.UseColor {
		io.WriteString(writer, r.Cfg.Line+"\n"+r.Cfg.Banner+"\n"+r.Cfg.Line+"\n")
		io.WriteString(writer, "Version: "+r.Cfg.Version+" | Author: "+r.Cfg.Author+" | License: "+r.Cfg.License+"\n")
		io.WriteString(writer, r.Cfg.Line+"\n")
		io.WriteString(writer, "Welcome to Cloudy!\nType your code and press enter\nType '.exit' to quit\n")
		return
	}

	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
	greenColor.Fprintf(writer, "%s\n", r.Cfg.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Cfg.Version+" | Author: "+r.Cfg.Author+" | License: "+r.Cfg.License)
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Cloudy!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
}

// Start runs the main loop: read a line, echo it back through the
// interpreter, print the result or error, repeat until EOF or '.exit'.
// writer receives the banner, each line's result or error, and the
// closing "Good Bye!"; readline owns the prompt and line editing.
func (r *Repl) Start(writer io.Writer) {
	r.printBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Cfg.Prompt,
		HistoryFile:     r.Cfg.History,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ctx := cloudy.NewGlobalContext()

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		r.executeWithRecovery(writer, line, ctx)
	}
}

// executeWithRecovery evaluates a single REPL line against ctx. Unlike
// script-file execution, a runtime error (or a Go panic from a bug
// deeper in the interpreter) never exits the process — it is printed
// and the loop continues so the user can correct their mistake.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, ctx *value.Context) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.printError(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	result, cerrErr := cloudy.Run("<stdin>", line, ctx)
	if cerrErr != nil {
		r.printError(writer, "%s\n", cerrErr.String())
		return
	}
	if result == nil {
		return
	}
	if _, isNull := result.(*value.Null); isNull {
		return
	}
	r.printResult(writer, "%s\n", result.String())
}

func (r *Repl) printError(writer io.Writer, format string, a ...interface{}) {
	if r.UseColor {
		redColor.Fprintf(writer, format, a...)
		return
	}
	fmt.Fprintf(writer, format, a...)
}

func (r *Repl) printResult(writer io.Writer, format string, a ...interface{}) {
	if r.UseColor {
		yellowColor.Fprintf(writer, format, a...)
		return
	}
	fmt.Fprintf(writer, format, a...)
}
