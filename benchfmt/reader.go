// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/datagyver/optibench/benchunit"
)

// A Reader reads the Go benchmark format. Lines that are neither
// results nor configuration are skipped, so a Reader can pick results
// out of ordinary program output.
//
// Its API is modeled on bufio.Scanner.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	config   []Config
	rec      Record
	err      error
}

// A SyntaxError is a malformed result line.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader returns a Reader for r. fileName is only used in errors.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), fileName: fileName}
}

// Scan advances to the next record and reports whether there is one.
// At EOF or on an I/O error it returns false; see Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := r.s.Text()
		if rest, ok := strings.CutPrefix(line, "Benchmark"); ok {
			res, err := r.parseResult(rest)
			switch {
			case err != nil:
				r.rec = err
				return true
			case res != nil:
				r.rec = res
				return true
			}
			continue
		}
		if key, val, ok := parseConfigLine(line); ok {
			r.setConfig(key, val)
		}
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Result returns the record read by the last Scan.
func (r *Reader) Result() Record {
	return r.rec
}

// Err returns the first I/O error, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) setConfig(key, val string) {
	res := Result{Config: r.config}
	res.SetConfig(key, val)
	r.config = res.Config
}

func (r *Reader) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// parseConfigLine parses "key: value". Keys start with a lower-case
// letter and contain no spaces or upper-case letters.
func parseConfigLine(line string) (key, val string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	key = line[:i]
	if first, _ := utf8.DecodeRuneInString(key); !unicode.IsLower(first) {
		return "", "", false
	}
	if strings.IndexFunc(key, func(c rune) bool { return unicode.IsSpace(c) || unicode.IsUpper(c) }) >= 0 {
		return "", "", false
	}
	val = line[i+1:]
	if val != "" && val[0] != ' ' && val[0] != '\t' {
		return "", "", false
	}
	return key, strings.TrimSpace(val), true
}

// parseResult parses a line after its "Benchmark" prefix. It returns
// nil, nil for lines to skip, such as the bare names "go test -v"
// prints.
func (r *Reader) parseResult(line string) (*Result, *SyntaxError) {
	f := strings.Fields(line)
	if len(f) == 0 || line[0] == ' ' || line[0] == '\t' {
		return nil, nil
	}
	if first, _ := utf8.DecodeRuneInString(f[0]); unicode.IsLower(first) {
		// "Benchmarking ..." is prose.
		return nil, nil
	}
	if len(f) == 1 {
		return nil, nil
	}
	res := &Result{Name: f[0], Line: r.line, Config: append([]Config(nil), r.config...)}
	iters, err := strconv.Atoi(f[1])
	if err != nil {
		return nil, r.syntaxError("parsing iteration count: " + err.(*strconv.NumError).Err.Error())
	}
	res.Iters = iters
	rest := f[2:]
	if len(rest) == 0 {
		return nil, r.syntaxError("missing measurements")
	}
	for ; len(rest) > 0; rest = rest[2:] {
		val, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return nil, r.syntaxError("parsing measurement: " + err.(*strconv.NumError).Err.Error())
		}
		if len(rest) < 2 {
			return nil, r.syntaxError("missing units")
		}
		unit := rest[1]
		v := Value{Value: val, Unit: unit}
		if tv, tu := benchunit.Tidy(val, unit); tu != unit {
			v = Value{Value: tv, Unit: tu, OrigValue: val, OrigUnit: unit}
		}
		res.Values = append(res.Values, v)
	}
	return res, nil
}
