package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/sujilang/suji"
)

const (
	appName     = "suji"
	historyFile = ".suji_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("suji %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", suji.Version)

func red(s string) string {
	if !suji.EnableColor {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func blue(s string) string {
	if !suji.EnableColor {
		return s
	}
	return "\x1b[94m" + s + "\x1b[0m"
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(suji.Version)
	case "-h", "--help", "help":
		usage()
	default:
		// `suji path/to/file.si` is shorthand for `suji run path/to/file.si`.
		if strings.HasSuffix(cmd, ".si") {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`suji %s (built %s)

Usage:
  %s run <file.si>     Run a script.
  %s <file.si>         Shorthand for "run".
  %s repl              Start the REPL.
  %s version           Print the compiled version.

`, suji.Version, suji.BuildDate, appName, appName, appName, appName)
}

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.si>\n", appName)
		return 2
	}

	ip := suji.NewRuntime()
	_, err := ip.EvalFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

func cmdRepl() int {
	suji.EnableColor = isatty.IsTerminal(os.Stdout.Fd())
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := suji.NewRuntime()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.ToLower(trimmed) == ":quit" {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		v, err := ip.EvalPersistentSource(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(ip.FormatValue(v)))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe reads one REPL entry, prompting with cont on every line
// after the first until the accumulated source parses as complete (or a
// genuine, non-incompleteness parse error surfaces, at which point the
// broken source is handed back as-is so the caller can report it).
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		toks, lerr := suji.Lex(src)
		if lerr != nil {
			if suji.IsIncomplete(lerr) {
				continue
			}
			return src, true
		}
		if _, perr := suji.Parse(toks); perr != nil {
			if suji.IsIncomplete(perr) {
				continue
			}
			return src, true
		}
		return src, true
	}
}
