package jsonquery

import "strings"

// node is a rendered field: everything that goes before its selection set, and the
// fields inside of that selection set
type node struct {
	head     string
	children []*node
}

// formatter renders nodes either on a single line or indented over several lines
type formatter struct {
	pretty bool
}

const indentUnit = "    "

func formatIndentPrefix(level int) string {
	return strings.Repeat(indentUnit, level)
}

// formatNodes renders a list of sibling nodes found at the given level
func (f formatter) formatNodes(b *strings.Builder, level int, nodes []*node) {
	for i, n := range nodes {
		if i > 0 {
			if f.pretty {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		f.formatNode(b, level, n)
	}
}

func (f formatter) formatNode(b *strings.Builder, level int, n *node) {
	if f.pretty {
		b.WriteString(formatIndentPrefix(level))
	}
	b.WriteString(n.head)

	// fields without a selection set stop here
	if len(n.children) == 0 {
		return
	}

	f.formatSelectionSet(b, level, n.children)
}

func (f formatter) formatSelectionSet(b *strings.Builder, level int, children []*node) {
	if !f.pretty {
		b.WriteString(" { ")
		f.formatNodes(b, level+1, children)
		b.WriteString(" }")
		return
	}

	b.WriteString(" {\n")
	f.formatNodes(b, level+1, children)
	b.WriteString("\n" + formatIndentPrefix(level) + "}")
}

// format returns the full text for the top level nodes
func (f formatter) format(nodes []*node) string {
	var b strings.Builder
	f.formatNodes(&b, 0, nodes)
	return b.String()
}
