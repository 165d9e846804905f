package mathtex

// Prepare returns a restructured copy of the tree which is ready for rendering.
//
// In every block and cell subscripts and superscripts are merged with their
// base into a ScriptKind node, and \left ... \right pairs are merged with the
// nodes between them into a DelimiterKind node. Unpaired \left and \right
// commands are kept as they are. Prepare is idempotent.
func Prepare(node *Node) *Node {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case TextKind:
		return textNode(node.Data)
	case BlockKind:
		return blockNode(sequence(node.Children))
	case CellKind:
		return cellNode(sequence(node.Children))
	default:
		prepared := &Node{Kind: node.Kind, Data: node.Data, Arity: node.Arity}
		if node.Children != nil {
			prepared.Children = make([]*Node, len(node.Children))
			for i, child := range node.Children {
				prepared.Children[i] = Prepare(child)
			}
		}

		return prepared
	}
}

// sequence applies script merging and delimiter pairing to a list of siblings
func sequence(nodes []*Node) []*Node {
	var out []*Node
	var lefts []int // positions of \left commands waiting for \right

	for _, node := range nodes {
		switch {
		case node.Kind == CommandKind && isScript(node.Data):
			var base *Node
			if len(out) > 0 {
				base = out[len(out)-1]
				out = out[:len(out)-1]

				if len(lefts) > 0 && lefts[len(lefts)-1] == len(out) {
					lefts = lefts[:len(lefts)-1]
				}
			}

			script := scriptNode(base, nil, nil)
			if base != nil && base.Kind == ScriptKind {
				script = scriptNode(base.Child(ScriptBase), base.Child(ScriptSub), base.Child(ScriptSup))
			} else if base != nil {
				script.Children[ScriptBase] = base
			}

			if node.Data == "_" {
				script.Children[ScriptSub] = Prepare(node.Child(0))
			} else {
				script.Children[ScriptSup] = Prepare(node.Child(0))
			}

			out = append(out, script)
		case node.Kind == CommandKind && node.Data == "left":
			lefts = append(lefts, len(out))
			out = append(out, Prepare(node))
		case node.Kind == CommandKind && node.Data == "right" && len(lefts) > 0:
			index := lefts[len(lefts)-1]
			lefts = lefts[:len(lefts)-1]

			left := out[index]
			content := blockNode(append([]*Node(nil), out[index+1:]...))
			out = append(out[:index], delimiterNode(left.Child(0), Prepare(node.Child(0)), content))
		default:
			out = append(out, Prepare(node))
		}
	}

	return out
}
