package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// paramSeparator splits a parameter list. The header never nests commas or
// parentheses inside a single parameter, so this is not a C parser and
// must not become one.
const paramSeparator = ", "

const maxLineSize = 1 << 20

// Parse scans header line by line and builds the binding model. Lines that
// match none of the declaration shapes are ignored.
func Parse(r io.Reader, d Dialect) (*Header, error) {
	pats, err := d.compile()
	if err != nil {
		return nil, err
	}

	s := scanner{
		dialect: d,
		mapper:  d.TypeMapper(),
		pats:    pats,
		header:  &Header{},
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		if err := s.scanLine(line, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	Logger().Debug("header scanned",
		zap.Int("lines", line),
		zap.Int("opaque_types", len(s.header.OpaqueTypes)),
		zap.Int("functions", len(s.header.Functions)),
		zap.Int("constants", len(s.header.Constants)),
		zap.Int("skipped", len(s.header.Skipped)),
	)

	return s.header, nil
}

// ParseString is Parse over an in-memory header.
func ParseString(content string, d Dialect) (*Header, error) {
	return Parse(strings.NewReader(content), d)
}

type scanner struct {
	dialect Dialect
	mapper  TypeMapper
	pats    patterns
	header  *Header
}

func (s *scanner) scanLine(line int, text string) error {
	if m := s.pats.class.FindStringSubmatch(text); m != nil {
		name := s.strip(m[1])
		if !strings.Contains(name, s.dialect.FuncMarker) {
			s.header.OpaqueTypes = append(s.header.OpaqueTypes, OpaqueType{Name: name, Line: line})
		}
		return nil
	}

	if m := s.pats.fn.FindStringSubmatch(text); m != nil {
		return s.scanFunction(line, text, m[1], m[2], m[3])
	}

	if m := s.pats.enum.FindStringSubmatch(text); m != nil {
		s.header.Constants = append(s.header.Constants, Constant{Name: s.strip(m[1]), Line: line})
	}

	return nil
}

func (s *scanner) scanFunction(line int, text, returns, args, rawName string) error {
	name := s.strip(rawName)

	if s.dialect.ValidateHelper != "" && strings.Contains(name, s.dialect.ValidateHelper) {
		s.skip(name, line, "pointer validation helper")
		return nil
	}

	fn, err := s.function(name, line, returns, args)
	if err == nil {
		s.header.Functions = append(s.header.Functions, fn)
		return nil
	}

	if errors.Is(err, ErrArrayType) {
		s.skip(name, line, err.Error())
		return nil
	}
	if slices.Contains(s.dialect.AllowFailures, name) {
		s.skip(name, line, "allow-listed: "+err.Error())
		return nil
	}

	perr := &ParseError{Line: line, Text: text, Name: name, Err: err}
	var terr *TypeError
	if errors.As(err, &terr) {
		perr.Token = terr.Token
		perr.Err = terr.Err
	}

	return perr
}

func (s *scanner) function(name string, line int, returns, args string) (Function, error) {
	ret, _, _, err := s.mapper.Map(s.strip(strings.TrimSpace(returns)))
	if err != nil {
		return Function{}, err
	}

	var tokens []string
	if args = strings.TrimSpace(args); args != "" {
		for _, tok := range strings.Split(args, paramSeparator) {
			tokens = append(tokens, s.strip(tok))
		}
	}

	params, err := s.mapper.MapParams(tokens)
	if err != nil {
		return Function{}, err
	}

	return Function{
		Name:       name,
		ReturnType: ret,
		Params:     params,
		Line:       line,
	}, nil
}

func (s *scanner) skip(name string, line int, reason string) {
	Logger().Info("skipping declaration",
		zap.String("name", name),
		zap.Int("line", line),
		zap.String("reason", reason),
	)
	s.header.Skipped = append(s.header.Skipped, Skipped{Name: name, Line: line, Reason: reason})
}

// strip removes every leading occurrence of the library prefix.
func (s *scanner) strip(name string) string {
	if s.dialect.Prefix == "" {
		return name
	}
	for strings.HasPrefix(name, s.dialect.Prefix) {
		name = name[len(s.dialect.Prefix):]
	}
	return name
}
