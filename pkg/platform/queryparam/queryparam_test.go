package queryparam

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "ara/pkg/domain-errors"
)

type ParserSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

func parseColour(s string) (string, error) {
	if s == "red" || s == "blue" {
		return s, nil
	}
	return "", dErrors.New(dErrors.CodeBadRequest, `invalid colour "`+s+`"`)
}

func (s *ParserSuite) TestAbsentAndBlankValues() {
	for _, mode := range []Mode{Strict, Lenient} {
		s.Run(mode.String(), func() {
			p := New(url.Values{"colour": {"   "}}, mode)
			s.Nil(Optional(p, "colour", parseColour))
			s.Nil(Optional(p, "size", Int("size")))
			s.NoError(p.Err())
			s.False(p.Unsatisfiable())
		})
	}
}

func (s *ParserSuite) TestValidValuesAreTrimmed() {
	p := New(url.Values{"colour": {" red "}, "size": {"3"}}, Strict)
	colour := Optional(p, "colour", parseColour)
	size := Optional(p, "size", Int("size"))
	s.Require().NotNil(colour)
	s.Require().NotNil(size)
	s.Equal("red", *colour)
	s.Equal(3, *size)
	s.NoError(p.Err())
}

func (s *ParserSuite) TestStrictModeKeepsFirstError() {
	p := New(url.Values{"colour": {"green"}, "size": {"big"}}, Strict)
	s.Nil(Optional(p, "colour", parseColour))
	s.Nil(Optional(p, "size", Int("size")))

	s.Require().Error(p.Err())
	s.True(dErrors.HasCode(p.Err(), dErrors.CodeBadRequest))
	s.Contains(p.Err().Error(), "colour")
	s.False(p.Unsatisfiable())
	s.Equal([]string{"colour", "size"}, p.Malformed())
}

func (s *ParserSuite) TestStrictModeWrapsPlainErrors() {
	p := New(url.Values{"x": {"1"}}, Strict)
	Optional(p, "x", func(string) (int, error) { return 0, errors.New("boom") })
	s.True(dErrors.HasCode(p.Err(), dErrors.CodeBadRequest))
	s.Contains(p.Err().Error(), `invalid x "1"`)
}

func (s *ParserSuite) TestLenientModeMarksUnsatisfiable() {
	p := New(url.Values{"size": {"abc"}}, Lenient)
	s.Nil(Optional(p, "size", Int("size")))
	s.NoError(p.Err())
	s.True(p.Unsatisfiable())
}

func (s *ParserSuite) TestString() {
	p := New(url.Values{"q": {"  Acme "}}, Strict)
	q := String(p, "q")
	s.Require().NotNil(q)
	s.Equal("Acme", *q)
	s.Nil(String(p, "missing"))
}

func (s *ParserSuite) TestModeFor() {
	s.Equal(Strict, ModeFor(true))
	s.Equal(Lenient, ModeFor(false))
}
