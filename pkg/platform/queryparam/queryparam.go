// Package queryparam parses optional filter parameters from a query string.
//
// Every parameter is optional. A parameter that is absent or blank adds no
// predicate. What happens to a value that fails to parse depends on the Mode.
package queryparam

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	dErrors "ara/pkg/domain-errors"
)

// Mode selects how malformed filter values are treated.
type Mode int

const (
	// Strict rejects the whole request with a bad_request error.
	Strict Mode = iota
	// Lenient keeps the request but marks the filter set unsatisfiable, so
	// the query matches nothing.
	Lenient
)

// ModeFor maps a strict flag to a Mode.
func ModeFor(strict bool) Mode {
	if strict {
		return Strict
	}
	return Lenient
}

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// Parser accumulates the outcome of parsing several parameters.
type Parser struct {
	values        url.Values
	mode          Mode
	err           error
	unsatisfiable bool
	malformed     []string
}

// New returns a Parser over values.
func New(values url.Values, mode Mode) *Parser {
	return &Parser{values: values, mode: mode}
}

// Err returns the first parse error in strict mode, nil otherwise.
func (p *Parser) Err() error {
	return p.err
}

// Unsatisfiable reports whether a malformed value was dropped in lenient mode.
func (p *Parser) Unsatisfiable() bool {
	return p.unsatisfiable
}

// Malformed lists the parameters whose values failed to parse.
func (p *Parser) Malformed() []string {
	return p.malformed
}

// Raw returns the trimmed value of name, or "" when absent.
func (p *Parser) Raw(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

// Optional parses the parameter name with parse. It returns nil when the
// parameter is absent or when parsing failed.
func Optional[T any](p *Parser, name string, parse func(string) (T, error)) *T {
	raw := p.Raw(name)
	if raw == "" {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		p.malformed = append(p.malformed, name)
		switch p.mode {
		case Lenient:
			p.unsatisfiable = true
		default:
			if p.err != nil {
				break
			}
			if _, ok := dErrors.As(err); ok {
				p.err = err
			} else {
				p.err = dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
			}
		}
		return nil
	}
	return &v
}

// String returns the trimmed value of name, or nil when absent.
func String(p *Parser, name string) *string {
	return Optional(p, name, func(s string) (string, error) { return s, nil })
}

// Int returns a parse function for integer parameters that names param in
// its error.
func Int(param string) func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid %s %q: expected an integer", param, s))
		}
		return n, nil
	}
}
