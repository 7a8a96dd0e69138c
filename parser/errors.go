package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyType = errors.New("can not take type from token")
	ErrNoName    = errors.New("no argument name in token")
	ErrArrayType = errors.New("unsupported array type")
)

// TypeError reports a token the type mapper could not translate.
type TypeError struct {
	Token string
	Err   error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// ParseError ties a translation failure to the header line it came from.
type ParseError struct {
	Line  int
	Text  string
	Name  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "line %d", e.Line)
	if e.Name != "" {
		fmt.Fprintf(&b, " (%s)", e.Name)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Token != "" {
		fmt.Fprintf(&b, ": token %q", e.Token)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, "\n\t%s", strings.TrimSpace(e.Text))
	}

	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
