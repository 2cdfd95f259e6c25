package layout

// FillRule names a derivation: when Target has no tree and Source does, the
// Source tree is cloned and retagged.
type FillRule struct {
	Source Tag
	Target Tag
}

// FillMissing derives the target kind's tree from the source kind's when the
// target is absent or empty. Explicit non-empty declarations always win, which
// also makes the operation idempotent. The input map is not mutated.
func FillMissing(trees map[Tag]*Node, source, target Tag) map[Tag]*Node {
	out := make(map[Tag]*Node, len(trees))
	for k, v := range trees {
		out[k] = v
	}

	src := out[source]
	if isEmptyTree(src) {
		return out
	}
	if !isEmptyTree(out[target]) {
		return out
	}

	clone := src.Clone()
	retag(clone, source, target)
	if declared := out[target]; declared != nil {
		// A declared-but-empty target keeps its own options on the
		// derived tree, same as when synthesis replaces it.
		clone.Options = clone.Options.Merge(declared.Options)
	}
	out[target] = clone
	return out
}

func isEmptyTree(n *Node) bool {
	return n == nil || len(n.Children) == 0
}

// retag rewrites nodes carrying the source container tag. Nested sub-layout
// tags never match, so only the top-level container changes.
func retag(n *Node, from, to Tag) {
	if n.Tag == from {
		n.Tag = to
	}
	for _, c := range n.Children {
		retag(c, from, to)
	}
}
