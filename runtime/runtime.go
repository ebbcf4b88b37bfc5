package runtime

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/parser"
)

// Interpreter is a uvl session. In prompt mode the root scope persists
// across Run calls so earlier declarations stay visible. An Interpreter is
// not safe for concurrent use.
type Interpreter struct {
	ev       *Evaluator
	prompt   bool
	hadError bool
}

// Option configures an Interpreter.
type Option func(*interpreterConfig)

type interpreterConfig struct {
	prompt bool
	out    io.Writer
}

// WithPrompt selects interactive mode: only the first statement of each
// Run is executed and its value returned, terminators are optional.
func WithPrompt(prompt bool) Option {
	return func(c *interpreterConfig) { c.prompt = prompt }
}

// WithOutput redirects println output.
func WithOutput(w io.Writer) Option {
	return func(c *interpreterConfig) { c.out = w }
}

// New constructs an interpreter with an empty root scope.
func New(opts ...Option) *Interpreter {
	cfg := interpreterConfig{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Interpreter{
		ev:     NewEvaluator(cfg.out),
		prompt: cfg.prompt,
	}
}

// Run lexes, parses and executes src. In prompt mode the value of the
// executed statement is returned; otherwise the result is Nil.
func (it *Interpreter) Run(sourceName, src string) (lang.Value, error) {
	stmts, err := parser.ParseString(src, parser.Options{
		SourceName: sourceName,
		Prompt:     it.prompt,
	})
	if err != nil {
		it.hadError = true
		return lang.Nil, err
	}
	val, err := it.ev.Execute(stmts)
	if err != nil {
		it.hadError = true
		return lang.Nil, err
	}
	if !it.prompt {
		return lang.Nil, nil
	}
	return val, nil
}

// Reset clears the error flag. Declared bindings are kept.
func (it *Interpreter) Reset() {
	it.hadError = false
}

// HadError reports whether a Run failed since the last Reset.
func (it *Interpreter) HadError() bool {
	return it.hadError
}

// Prompt reports whether the interpreter runs in interactive mode.
func (it *Interpreter) Prompt() bool {
	return it.prompt
}

// Global returns the root scope.
func (it *Interpreter) Global() *lang.Env {
	return it.ev.Global
}

func readFileSkippingShebang(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte("#!")) {
		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			// Keep the newline so line numbers still match the file.
			return data[idx:], nil
		}
		return []byte{}, nil
	}
	return data, nil
}

// EvaluateReader consumes all source from the reader and runs it.
func EvaluateReader(it *Interpreter, sourceName string, r io.Reader) (lang.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return lang.Nil, fmt.Errorf("read %s: %w", sourceName, err)
	}
	return it.Run(sourceName, string(data))
}

// EvaluateFile loads and runs a uvl file, allowing a #! first line. The
// path is used as the source name in diagnostics.
func EvaluateFile(it *Interpreter, path string) (lang.Value, error) {
	data, err := readFileSkippingShebang(path)
	if err != nil {
		return lang.Nil, err
	}
	return it.Run(path, string(data))
}
