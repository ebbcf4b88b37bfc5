package parser

import (
	"fmt"
	"io"
)

// ParseString scans and parses uvl source text.
func ParseString(src string, opts Options) ([]Stmt, error) {
	if opts.SourceName == "" {
		opts.SourceName = DefaultSourceName
	}
	tokens, err := ScanNamed(opts.SourceName, src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts)
}

// ParseReader consumes uvl source from an io.Reader and parses it.
func ParseReader(r io.Reader, opts Options) ([]Stmt, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.SourceName, err)
	}
	return ParseString(string(data), opts)
}
