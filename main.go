package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/peterh/liner"
	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/parser"
	"github.com/sergev/uvl/runtime"
)

const (
	exitDataErr  = 65
	exitSoftware = 70
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "Usage: uvl [file]")
		return exitDataErr
	}
	if len(args) == 1 {
		return runScript(args[0], stdin, stdout, stderr)
	}

	path, required := configPath()
	cfg, err := loadConfig(path, required)
	if err != nil {
		fmt.Fprintf(stderr, "uvl: %v\n", err)
		return exitDataErr
	}
	s := newSession(cfg, stdout, stderr)
	if f, ok := stdin.(*os.File); ok && isInteractive(f) {
		runInteractiveREPL(s)
		return 0
	}
	runBufferedREPL(s, bufio.NewReader(stdin))
	return 0
}

func runScript(script string, stdin io.Reader, stdout, stderr io.Writer) int {
	it := runtime.New(runtime.WithOutput(stdout))
	var err error
	if script == "-" {
		_, err = runtime.EvaluateReader(it, "stdin", stdin)
	} else {
		_, err = runtime.EvaluateFile(it, script)
	}
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, err)
	if lang.IsKind(err, lang.RuntimeError) {
		return exitSoftware
	}
	return exitDataErr
}

// session is one interactive conversation with a prompt-mode interpreter.
type session struct {
	it     *runtime.Interpreter
	cfg    Config
	out    io.Writer
	errOut io.Writer
	buffer strings.Builder
}

func newSession(cfg Config, out, errOut io.Writer) *session {
	return &session{
		it:     runtime.New(runtime.WithPrompt(true), runtime.WithOutput(out)),
		cfg:    cfg,
		out:    out,
		errOut: errOut,
	}
}

func (s *session) prompt() string {
	if s.buffer.Len() > 0 {
		return s.cfg.ContinuationPrompt
	}
	return s.cfg.Prompt
}

// feed handles one input line. It reports true when the line left an
// unfinished construct and more input is needed.
func (s *session) feed(line string) bool {
	if s.buffer.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
		s.command(strings.TrimSpace(line))
		return false
	}
	s.buffer.WriteString(line)
	s.buffer.WriteString("\n")

	val, err := s.it.Run(s.cfg.SourceName, s.buffer.String())
	if err != nil && parser.IsIncomplete(err) {
		return true
	}
	s.buffer.Reset()
	defer s.it.Reset()
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return false
	}
	if !val.IsNil() {
		fmt.Fprintln(s.out, s.echo(val))
	}
	return false
}

// abort drops a partially entered construct.
func (s *session) abort() {
	s.buffer.Reset()
	s.it.Reset()
}

func (s *session) echo(val lang.Value) string {
	text := val.String()
	if s.cfg.MaxEchoWidth > 0 && runewidth.StringWidth(text) > s.cfg.MaxEchoWidth {
		return runewidth.Truncate(text, s.cfg.MaxEchoWidth, "...")
	}
	return text
}

func (s *session) command(line string) {
	name, arg := line, ""
	if idx := strings.IndexAny(line, " \t"); idx >= 0 {
		name, arg = line[:idx], strings.TrimSpace(line[idx+1:])
	}
	switch name {
	case ":ast":
		stmts, err := parser.ParseString(arg, parser.Options{SourceName: s.cfg.SourceName, Prompt: true})
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return
		}
		if len(stmts) > 0 {
			fmt.Fprintln(s.out, parser.SexprProgram(stmts))
		}
	case ":env":
		env := s.it.Global()
		for _, n := range env.Names() {
			b, _ := env.Get(n)
			kind := "let"
			if b.Mutable {
				kind = "let mut"
			}
			fmt.Fprintf(s.out, "%s %s = %s\n", kind, n, s.echo(b.Value))
		}
	case ":help":
		fmt.Fprintln(s.out, ":ast <source>  show the syntax tree of source")
		fmt.Fprintln(s.out, ":env           list global bindings")
	default:
		fmt.Fprintf(s.errOut, "unknown command %s (try :help)\n", name)
	}
}

func runBufferedREPL(s *session, reader *bufio.Reader) {
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(s.errOut, "read error: %v\n", err)
			return
		}
		if line != "" || s.buffer.Len() > 0 {
			more := s.feed(strings.TrimSuffix(line, "\n"))
			if more && errors.Is(err, io.EOF) {
				// Input ended inside a construct: report it instead of waiting.
				_, runErr := s.it.Run(s.cfg.SourceName, s.buffer.String())
				fmt.Fprintln(s.errOut, runErr)
				s.abort()
			}
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func runInteractiveREPL(s *session) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := s.cfg.historyPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		input, err := state.Prompt(s.prompt())
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Fprintln(s.out)
				s.abort()
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(s.out)
				return
			default:
				fmt.Fprintf(s.errOut, "read error: %v\n", err)
				return
			}
		}
		if !s.feed(input) {
			if trimmed := strings.TrimSpace(input); trimmed != "" {
				state.AppendHistory(trimmed)
			}
		}
	}
}

func isInteractive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
