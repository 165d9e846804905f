package mathtex

import "strings"

// String returns a compact textual form of the tree, eg. <Block: <Text: a>,<Cmd frac: ...>>
func String(node *Node) string {
	if node == nil {
		return "<nil>"
	}

	var children []string
	for _, child := range node.Children {
		children = append(children, String(child))
	}

	sub := strings.Join(children, ",")

	switch node.Kind {
	case TextKind:
		return "<Text: " + node.Data + ">"
	case BlockKind:
		return "<Block: " + sub + ">"
	case CellKind:
		return "<Cell: " + sub + ">"
	case LineKind:
		return "<Line: " + sub + ">"
	case EnvironmentKind:
		return "<Env " + node.Data + ": " + sub + ">"
	case CommandKind:
		return "<Cmd " + node.Data + ": " + sub + ">"
	case ScriptKind:
		return "<Script: " + sub + ">"
	case DelimiterKind:
		return "<Delim: " + sub + ">"
	default:
		return "<Unknown>"
	}
}

// Text collects all text of the tree, command names included
func Text(node *Node) (out string) {
	if node == nil {
		return ""
	}

	if node.Kind == TextKind || node.Kind == CommandKind && node.Arity == 0 {
		return node.Data
	}

	for _, child := range node.Children {
		out += Text(child)
	}

	return
}
