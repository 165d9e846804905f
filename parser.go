package mathtex

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidInput is returned when parser is given no input at all.
var ErrInvalidInput = errors.New("invalid input")

type marker int

const (
	noMarker marker = iota
	beginBlock
	beginCell
	beginLine
	beginEnvironment
)

// item is an element of the parser stack: either an open group marker or a node.
type item struct {
	marker marker
	name   string // environment name for beginEnvironment
	node   *Node
}

func (i item) is(markers ...marker) bool {
	for _, m := range markers {
		if i.marker == m {
			return true
		}
	}

	return false
}

// Parser builds AST from tokens using a stack of open groups. Groups (blocks,
// cells, lines and environments) are reduced into nodes once they are closed.
type Parser struct {
	tokens *Tokenizer
	stack  []item
}

func Parse(r io.RuneScanner) (*Node, error) {
	if r == nil {
		return nil, ErrInvalidInput
	}

	return NewParser(r).Parse()
}

func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

func NewParser(r io.RuneScanner) *Parser {
	return &Parser{tokens: NewTokenizer(r)}
}

// Parse reads all tokens and returns root environment node.
func (p *Parser) Parse() (*Node, error) {
	if p.tokens == nil || p.tokens.r == nil {
		return nil, ErrInvalidInput
	}

	p.begin()

	for {
		t, err := p.tokens.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("unable to read token: %w", err)
		}

		p.consume(t)
	}

	return p.end(), nil
}

func (p *Parser) begin() {
	p.stack = []item{{marker: beginEnvironment, name: RootEnvironment}}
}

// end closes whatever is left open and returns the root node
func (p *Parser) end() *Node {
	p.endEnvironment(RootEnvironment)

	if len(p.stack) == 0 || p.stack[len(p.stack)-1].node == nil {
		return environmentNode(RootEnvironment, nil)
	}

	return p.stack[len(p.stack)-1].node
}

func (p *Parser) consume(t any) {
	switch token := t.(type) {
	case Char:
		p.char(rune(token))
	case Command:
		p.command(string(token))
	case EnvironmentStart:
		p.stack = append(p.stack, item{marker: beginEnvironment, name: token.Name})
	case EnvironmentEnd:
		p.endEnvironment(token.Name)
	default:
		tracer().Debugf("unexpected token %T", t)
	}
}

func (p *Parser) char(c rune) {
	switch c {
	case '{':
		p.stack = append(p.stack, item{marker: beginBlock})
	case '}':
		p.endBlock()
	case '&':
		p.endCell(true)
	case '_', '^':
		p.push(commandNode(string(c), 1))
	default:
		p.push(textNode(string(c)))
	}
}

func (p *Parser) command(name string) {
	if isNewline(name) {
		p.endLine(true)
		return
	}

	if s, ok := symbol(name); ok {
		p.push(textNode(s))
		return
	}

	if n, ok := arity(name); ok {
		p.push(commandNode(name, n))
		return
	}

	// unknown commands (eg. function names like \sin) have no arguments
	p.push(commandNode(name, 0))
}

func (p *Parser) push(node *Node) {
	p.stack = append(p.stack, item{node: node})
}

// replace drops stack items starting with index and pushes node instead
func (p *Parser) replace(index int, node *Node) {
	p.stack = append(p.stack[:index], item{node: node})
}

func (p *Parser) endBlock() {
	index := lastIndex(p.stack, func(i item) bool { return i.is(beginBlock) })
	if index < 0 {
		tracer().Debugf("closing brace without opening one")
		return
	}

	p.replace(index, blockNode(reduce(p.stack[index+1:])))
}

// endCell reduces everything after current cell, line or environment start into a cell
func (p *Parser) endCell(next bool) {
	index := lastIndex(p.stack, func(i item) bool { return i.is(beginCell, beginLine, beginEnvironment) })
	cell := cellNode(reduce(p.stack[index+1:]))

	// the cell marker is consumed, line and environment markers stay open
	if index >= 0 && p.stack[index].is(beginCell) {
		p.replace(index, cell)
	} else {
		p.replace(index+1, cell)
	}

	if next {
		p.stack = append(p.stack, item{marker: beginCell})
	}
}

// endLine closes current cell and reduces all cells of the current line into a line
func (p *Parser) endLine(next bool) {
	p.endCell(false)

	index := lastIndex(p.stack, func(i item) bool { return i.is(beginLine, beginEnvironment) })
	line := lineNode(only(CellKind, reduce(p.stack[index+1:])))

	if index >= 0 && p.stack[index].is(beginLine) {
		p.replace(index, line)
	} else {
		p.replace(index+1, line)
	}

	if next {
		p.stack = append(p.stack, item{marker: beginLine})
	}
}

// endEnvironment closes the nearest open environment with the given name. It
// does nothing if there is no such environment.
func (p *Parser) endEnvironment(name string) {
	found := lastIndex(p.stack, func(i item) bool { return i.is(beginEnvironment) && i.name == name })
	if found < 0 {
		tracer().Debugf("\\end{%s} without \\begin{%s}", name, name)
		return
	}

	// environments opened after the one being closed are closed first
	for {
		inner := lastIndex(p.stack, func(i item) bool { return i.is(beginEnvironment) })
		if inner <= found {
			break
		}

		tracer().Debugf("environment %q is not closed", p.stack[inner].name)
		p.endEnvironment(p.stack[inner].name)
	}

	p.endLine(false)

	// line reduction never removes environment markers, so found is still valid
	lines := only(LineKind, reduce(p.stack[found+1:]))
	p.replace(found, environmentNode(name, lines))
}

// reduce turns stack items into a sequence of nodes: markers are dropped,
// consequent text nodes are merged and commands take following nodes as arguments.
func reduce(items []item) []*Node {
	var nodes []*Node
	for _, i := range items {
		if i.node != nil {
			nodes = append(nodes, i.node)
		}
	}

	var result []*Node
	for pos := 0; pos < len(nodes); pos++ {
		node := nodes[pos]

		// merge consequent text nodes together
		if node.Kind == TextKind && len(result) > 0 && result[len(result)-1].Kind == TextKind {
			last := result[len(result)-1]
			result[len(result)-1] = textNode(last.Data + node.Data)
			continue
		}

		if node.Kind == CommandKind && node.Arity > 0 && len(node.Children) == 0 {
			end := min(pos+1+node.Arity, len(nodes))
			args := append([]*Node(nil), nodes[pos+1:end]...)
			node = &Node{Kind: CommandKind, Data: node.Data, Arity: node.Arity, Children: args}
			pos = end - 1
		}

		result = append(result, node)
	}

	return result
}

// only filters nodes of the given kind, used where the tree shape requires one
func only(kind Kind, nodes []*Node) []*Node {
	var result []*Node
	for _, node := range nodes {
		if node.Kind == kind {
			result = append(result, node)
		}
	}

	return result
}
