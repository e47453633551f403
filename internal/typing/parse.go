package typing

import (
	"github.com/dball/constructive/internal/types"
)

// Parse parses the canonical text form of a type, e.g. Int, ?[Text],
// {"x":Int,"y":?Float}. The input must be exactly one type
// expression; trailing input is rejected.
func Parse(input string) (Typing, error) {
	p := &parser{input: input}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.parseError("end of input")
	}
	return t, nil
}

// parser is a cursor over a type expression.
type parser struct {
	input string
	pos   int
}

func (p *parser) parseError(expected string) error {
	return types.NewError("typing.parse", "pos", p.pos, "expected", expected, "input", p.input)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return p.parseError("'" + string(c) + "'")
	}
	p.pos++
	return nil
}

func (p *parser) parseType() (t Typing, err error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		err = p.parseError("a type expression")
		return
	}
	switch p.input[p.pos] {
	case '?':
		p.pos++
		var elem Typing
		elem, err = p.parseType()
		if err != nil {
			return
		}
		t = Nullable{Elem: elem}
	case '[':
		p.pos++
		var elem Typing
		elem, err = p.parseType()
		if err != nil {
			return
		}
		if err = p.expect(']'); err != nil {
			return
		}
		t = Homogeneous{Elem: elem}
	case '(':
		t, err = p.parseUnnamedTuple()
	case '{':
		t, err = p.parseNamedTuple()
	default:
		t, err = p.parseSimple()
	}
	return
}

func (p *parser) parseSimple() (t Typing, err error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	word := p.input[start:p.pos]
	if word == "" {
		err = p.parseError("a type expression")
		return
	}
	switch word {
	case "Any":
		t = Any
	case "Bool":
		t = Bool
	case "Int":
		t = Int
	case "Float":
		t = Float
	case "Text":
		t = Text
	case "Uuid":
		t = Uuid
	default:
		err = types.NewError("typing.undefinedType", "name", word)
	}
	return
}

func (p *parser) parseUnnamedTuple() (t Typing, err error) {
	p.pos++
	fields := []Typing{}
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ')' {
		p.pos++
		t = UnnamedTuple{Fields: fields}
		return
	}
	for {
		var elem Typing
		elem, err = p.parseType()
		if err != nil {
			return
		}
		fields = append(fields, elem)
		p.skipSpace()
		if p.pos >= len(p.input) {
			err = p.parseError("',' or ')'")
			return
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			t = UnnamedTuple{Fields: fields}
			return
		default:
			err = p.parseError("',' or ')'")
			return
		}
	}
}

func (p *parser) parseNamedTuple() (t Typing, err error) {
	p.pos++
	fields := []NamedField{}
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '}' {
		p.pos++
		t = NamedTuple{Fields: fields}
		return
	}
	for {
		var name string
		name, err = p.parseName()
		if err != nil {
			return
		}
		if err = p.expect(':'); err != nil {
			return
		}
		var elem Typing
		elem, err = p.parseType()
		if err != nil {
			return
		}
		fields = append(fields, NamedField{Name: name, Type: elem})
		p.skipSpace()
		if p.pos >= len(p.input) {
			err = p.parseError("',' or '}'")
			return
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			t = NamedTuple{Fields: fields}
			return
		default:
			err = p.parseError("',' or '}'")
			return
		}
	}
}

// parseName reads a tuple field name, quoted or bare. The quotes are
// delimiters only; the name itself must satisfy the name grammar.
func (p *parser) parseName() (name string, err error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		err = p.parseError("a field name")
		return
	}
	if p.input[p.pos] == '"' {
		p.pos++
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.input) {
			err = p.parseError(`'"'`)
			return
		}
		name = p.input[start:p.pos]
		p.pos++
	} else {
		start := p.pos
		for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
			p.pos++
		}
		name = p.input[start:p.pos]
	}
	if !validName(name) {
		err = types.NewError("typing.invalidName", "name", name)
	}
	return
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// validName requires a letter or underscore followed by letters,
// digits, or underscores.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isNameByte(c) {
			return false
		}
		if i == 0 && c >= '0' && c <= '9' {
			return false
		}
	}
	return true
}
