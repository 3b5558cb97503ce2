/*
File    : exprscript/cmd/exprscript/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the exprscript REPL. It is deliberately
thin per the CLI surface's Non-goals: a handful of flags, an interactive
read-eval-print loop, and optional positional commands run non-interactively
before the loop starts. Generalizes the teacher's repl/repl.go (banner,
color scheme, readline wiring) and main/main.go (flag/mode dispatch),
trimmed to this surface — no file-execution or server mode, since neither
is named in the CLI surface this repo commits to.
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/exprscript/engine"
	"github.com/akashmaji946/exprscript/engine/config"
	"github.com/akashmaji946/exprscript/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

const (
	banner = `
  ___                 ____            _       _
 / _ \__  ___ __  _ __/ ___|  ___ _ __(_)_ __ | |_
| | | \ \/ / '_ \| '__\___ \ / __| '__| | '_ \| __|
| |_| |>  <| |_) | |   ___) | (__| |  | | |_) | |_
 \___//_/\_\ .__/|_|  |____/ \___|_|  |_| .__/ \__|
           |_|                          |_|
`
	line   = "----------------------------------------------------------------"
	prompt = "exprscript >>> "
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	blueColor   = color.New(color.FgBlue)
)

func main() {
	timeout := pflag.Duration("timeout", 0, "per-evaluation deadline (0 disables)")
	noStdlib := pflag.Bool("no-stdlib", false, "skip loading the standard function registry")
	configPath := pflag.String("config", "", "path to a TOML config file overriding the above")
	pflag.Parse()

	opts := engine.Options{
		Timeout:    *timeout,
		LoadStdlib: !*noStdlib,
	}
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(1)
		}
		opts.Timeout = f.Timeout()
		opts.ParseCallLimit = f.ParseCallLimit
		opts.StackLimit = f.StackLimit
		opts.LoadStdlib = f.LoadStdlib
	}

	eng := engine.New(opts)

	for _, cmd := range pflag.Args() {
		runOne(eng, cmd, os.Stdout)
	}

	printBanner(os.Stdout)
	runLoop(eng, os.Stdout)
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "exprscript — type an expression and press enter, 'exit' or 'quit' to leave")
	blueColor.Fprintf(w, "%s\n", line)
}

// runLoop reads lines from the terminal, joining any ending in a trailing
// backslash onto the next line before evaluating (§6's `\`-continuation).
func runLoop(eng *engine.Engine, w io.Writer) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending strings.Builder
	for {
		p := prompt
		if pending.Len() > 0 {
			p = "...         "
		}
		rl.SetPrompt(p)

		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good bye!\n")
			return
		}

		if strings.HasSuffix(line, `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			pending.WriteString("\n")
			continue
		}
		pending.WriteString(line)
		full := strings.TrimSpace(pending.String())
		pending.Reset()

		if full == "" {
			continue
		}
		if full == "exit" || full == "quit" {
			io.WriteString(w, "Good bye!\n")
			return
		}

		rl.SaveHistory(full)
		runOne(eng, full, w)
	}
}

func runOne(eng *engine.Engine, source string, w io.Writer) {
	results, err := eng.Parse(source)
	if err != nil {
		redColor.Fprintf(w, "%v\n", err)
		return
	}
	for _, v := range results {
		if v.Type == "" {
			continue
		}
		s, err := value.ToDisplayString(v)
		if err != nil {
			redColor.Fprintf(w, "%v\n", err)
			continue
		}
		yellowColor.Fprintln(w, s)
	}
}
