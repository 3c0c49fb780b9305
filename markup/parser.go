// Package markup parses the XML-like layout description into an element
// tree. The grammar is deliberately small: named elements, string
// attributes, nesting, comments. Anything the layout engine cares about
// lives in attribute values and is interpreted later.
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `<!--(?s:.*?)-->`},
		{Name: "CloseOpen", Pattern: `</`},
		{Name: "SelfClose", Pattern: `/>`},
		{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.:-]*`},
		{Name: "Symbol", Pattern: `[<>=]`},
	})

	identTokenType  = mustTokenType("Ident")
	stringTokenType = mustTokenType("String")

	documentParser = participle.MustBuild[document](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// document anchors the grammar at a single root element; participle
// rejects trailing input past it.
type document struct {
	Root *Element `parser:"@@"`
}

// Element is one markup node: a tag name, its attributes, and child
// elements in document order.
type Element struct {
	Pos       lexer.Position
	Name      string
	Attrs     []*Attr
	Children  []*Element
	SelfClose bool
}

// Attr is a single key="value" attribute. Value is already unquoted and
// entity-decoded.
type Attr struct {
	Key   string
	Value string
}

// Parse implements participle.Parseable. Elements nest arbitrarily and a
// closing tag must repeat the opening name, which a struct-tag grammar
// cannot check, so the element body is parsed by hand.
func (e *Element) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok.Value != "<" {
		return participle.NextMatch
	}
	e.Pos = tok.Pos
	lex.Next()

	name, err := expectType(lex, identTokenType, "element name")
	if err != nil {
		return err
	}
	e.Name = name.Value

	for lex.Peek().Type == identTokenType {
		attr, err := parseAttr(lex)
		if err != nil {
			return err
		}
		e.Attrs = append(e.Attrs, attr)
	}

	switch tok := lex.Peek(); tok.Value {
	case "/>":
		lex.Next()
		e.SelfClose = true
		return nil
	case ">":
		lex.Next()
	default:
		return unexpected(tok, `">" or "/>"`)
	}

	for lex.Peek().Value == "<" {
		child := &Element{}
		if err := child.Parse(lex); err != nil {
			return err
		}
		e.Children = append(e.Children, child)
	}

	if _, err := expectValue(lex, "</"); err != nil {
		return err
	}
	closeName, err := expectType(lex, identTokenType, "closing tag name")
	if err != nil {
		return err
	}
	if closeName.Value != e.Name {
		return fmt.Errorf("element <%s> at %s closed by </%s> at %s",
			e.Name, e.Pos, closeName.Value, closeName.Pos)
	}
	_, err = expectValue(lex, ">")
	return err
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(key string) string {
	for _, attr := range e.Attrs {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// AttrMap copies the attributes into a map. Later duplicates overwrite
// earlier ones, mirroring how most XML tooling behaves.
func (e *Element) AttrMap() map[string]string {
	m := make(map[string]string, len(e.Attrs))
	for _, attr := range e.Attrs {
		m[attr.Key] = attr.Value
	}
	return m
}

// Parse reads markup from r and returns the root element.
func Parse(r io.Reader) (*Element, error) {
	doc, err := documentParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// ParseString parses markup from a string.
func ParseString(input string) (*Element, error) {
	doc, err := documentParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

func parseAttr(lex *lexer.PeekingLexer) (*Attr, error) {
	key := lex.Next() // the caller peeked an Ident
	if _, err := expectValue(lex, "="); err != nil {
		return nil, err
	}
	val, err := expectType(lex, stringTokenType, "attribute value")
	if err != nil {
		return nil, err
	}
	return &Attr{Key: key.Value, Value: unquote(val.Value)}, nil
}

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// unquote strips the surrounding quotes and decodes the five XML
// entities. The lexer guarantees the quotes are present and paired.
func unquote(raw string) string {
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	return entityReplacer.Replace(raw)
}

func expectType(lex *lexer.PeekingLexer, typ lexer.TokenType, want string) (*lexer.Token, error) {
	tok := lex.Peek()
	if tok.Type != typ {
		return nil, unexpected(tok, want)
	}
	return lex.Next(), nil
}

func expectValue(lex *lexer.PeekingLexer, value string) (*lexer.Token, error) {
	tok := lex.Peek()
	if tok.Value != value {
		return nil, unexpected(tok, fmt.Sprintf("%q", value))
	}
	return lex.Next(), nil
}

func unexpected(tok *lexer.Token, want string) error {
	if tok.EOF() {
		return fmt.Errorf("unexpected end of markup, expected %s", want)
	}
	return fmt.Errorf("unexpected %q at %s, expected %s", tok.Value, tok.Pos, want)
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := markupLexer.Symbols()[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
