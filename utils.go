package mathtex

// lastIndex returns index of the last stack item matching the predicate, or -1
func lastIndex(stack []item, match func(item) bool) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if match(stack[i]) {
			return i
		}
	}

	return -1
}

func isScript(name string) bool {
	return name == "_" || name == "^"
}

func isNewline(name string) bool {
	return name == "\\"
}
