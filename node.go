package mathtex

type Kind int

const (
	TextKind Kind = iota
	BlockKind
	CellKind
	LineKind
	EnvironmentKind
	CommandKind
	ScriptKind
	DelimiterKind
)

// RootEnvironment names the implicit environment wrapping every parse result.
const RootEnvironment = "ROOT_ENV"

// Slots of the ternary ScriptKind and DelimiterKind nodes.
const (
	ScriptBase = 0
	ScriptSub  = 1
	ScriptSup  = 2

	DelimiterLeft    = 0
	DelimiterRight   = 1
	DelimiterContent = 2
)

// Node is an element of the math AST.
//
// Data holds the text of a TextKind node, the name of an EnvironmentKind node
// and the command name of a CommandKind node. Arity is the number of arguments
// a command takes; Children may hold fewer when the input ran out of them.
// ScriptKind and DelimiterKind always have three children, some may be nil.
type Node struct {
	Kind     Kind
	Data     string
	Arity    int
	Children []*Node
}

// Child returns i-th child or nil if there is no such child.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

func textNode(text string) *Node {
	return &Node{Kind: TextKind, Data: text}
}

func blockNode(children []*Node) *Node {
	return &Node{Kind: BlockKind, Children: children}
}

func cellNode(children []*Node) *Node {
	return &Node{Kind: CellKind, Children: children}
}

func lineNode(children []*Node) *Node {
	return &Node{Kind: LineKind, Children: children}
}

func environmentNode(name string, children []*Node) *Node {
	return &Node{Kind: EnvironmentKind, Data: name, Children: children}
}

func commandNode(name string, arity int) *Node {
	return &Node{Kind: CommandKind, Data: name, Arity: arity}
}

func scriptNode(base, sub, sup *Node) *Node {
	return &Node{Kind: ScriptKind, Children: []*Node{base, sub, sup}}
}

func delimiterNode(left, right, content *Node) *Node {
	return &Node{Kind: DelimiterKind, Children: []*Node{left, right, content}}
}
