package jsonquery

import "strings"

// reserved keys configure the field they are found in instead of being selected
const (
	keyArgs       = "__args"
	keyDirectives = "__directives"
	keyAlias      = "__alias"
	keyAliasFor   = "__aliasFor"
	keyOn         = "__on"
	keyTypeName   = "__typeName"
)

var reservedKeys = map[string]bool{
	keyArgs:       true,
	keyDirectives: true,
	keyAlias:      true,
	keyAliasFor:   true,
	keyOn:         true,
	keyTypeName:   true,
}

// selectionKind is the variant a field value was classified as
type selectionKind int

const (
	selectionSuppressed selectionKind = iota
	selectionLeaf
	selectionGroup
)

// fieldGroup is a field value that configures a field and can hold a nested selection
type fieldGroup struct {
	fields     Object
	args       Object
	directives Object
	alias      string
	aliasFor   string
	typeName   interface{}
	fragments  []*fieldGroup
}

// selectionCompiler turns selection trees into rendered nodes
type selectionCompiler struct {
	includeFalsyKeys bool
	ignore           map[string]bool
}

// classify decides how the value of a field should be rendered
func (c *selectionCompiler) classify(value interface{}) (selectionKind, *fieldGroup) {
	// false always removes the field
	if b, ok := value.(bool); ok && !b {
		return selectionSuppressed, nil
	}

	if obj, ok := asObject(value); ok {
		return selectionGroup, c.newFieldGroup(obj)
	}

	// lists contribute the first mapping they contain, if they have one
	if list, ok := asList(value); ok {
		for _, item := range list {
			if obj, ok := asObject(item); ok {
				return selectionGroup, c.newFieldGroup(obj)
			}
		}
		return selectionLeaf, nil
	}

	if isFalsy(value) && !c.includeFalsyKeys {
		return selectionSuppressed, nil
	}

	return selectionLeaf, nil
}

// newFieldGroup splits a mapping into its ordinary fields and its reserved settings
func (c *selectionCompiler) newFieldGroup(obj Object) *fieldGroup {
	group := &fieldGroup{}

	for _, field := range obj {
		if c.ignore[field.Key] {
			continue
		}

		switch field.Key {
		case keyArgs:
			if args, ok := asObject(field.Value); ok {
				group.args = args
			}
		case keyDirectives:
			if directives, ok := asObject(field.Value); ok {
				group.directives = directives
			}
		case keyAlias:
			if alias, ok := field.Value.(string); ok {
				group.alias = alias
			}
		case keyAliasFor:
			if aliasFor, ok := field.Value.(string); ok {
				group.aliasFor = aliasFor
			}
		case keyTypeName:
			group.typeName = field.Value
		case keyOn:
			group.fragments = c.newFragments(field.Value)
		default:
			group.fields = append(group.fields, field)
		}
	}

	return group
}

// newFragments collects the inline fragments of __on, which holds one mapping or a list of them
func (c *selectionCompiler) newFragments(value interface{}) []*fieldGroup {
	if obj, ok := asObject(value); ok {
		return []*fieldGroup{c.newFieldGroup(obj)}
	}

	fragments := []*fieldGroup{}
	if list, ok := asList(value); ok {
		for _, item := range list {
			if obj, ok := asObject(item); ok {
				fragments = append(fragments, c.newFieldGroup(obj))
			}
		}
	}
	return fragments
}

// compileSelection renders each selectable field of a tree, in order
func (c *selectionCompiler) compileSelection(fields Object) []*node {
	nodes := []*node{}

	for _, field := range fields {
		if c.ignore[field.Key] || reservedKeys[field.Key] {
			continue
		}

		kind, group := c.classify(field.Value)
		switch kind {
		case selectionSuppressed:
			continue
		case selectionLeaf:
			nodes = append(nodes, &node{head: field.Key})
		case selectionGroup:
			nodes = append(nodes, c.compileGroup(field.Key, group))
		}
	}

	return nodes
}

// compileGroup renders a field that has a mapping for its value
func (c *selectionCompiler) compileGroup(key string, group *fieldGroup) *node {
	var head strings.Builder

	switch {
	case group.alias != "":
		head.WriteString(group.alias + ": " + key)
	case group.aliasFor != "":
		head.WriteString(key + ": " + group.aliasFor)
	default:
		head.WriteString(key)
	}

	writeDirectives(&head, group.directives)

	if len(group.args) > 0 {
		head.WriteString(" (")
		encodeArguments(&head, group.args)
		head.WriteString(")")
	}

	return &node{
		head:     head.String(),
		children: c.compileChildren(group),
	}
}

// compileChildren renders the ordinary fields of a group followed by its inline fragments
func (c *selectionCompiler) compileChildren(group *fieldGroup) []*node {
	children := c.compileSelection(group.fields)

	for _, fragment := range group.fragments {
		var head strings.Builder
		head.WriteString("...")
		if fragment.typeName != nil {
			head.WriteString(" on " + stringify(fragment.typeName))
		}
		writeDirectives(&head, fragment.directives)

		children = append(children, &node{
			head:     head.String(),
			children: c.compileChildren(fragment),
		})
	}

	return children
}

// writeDirectives adds @name or @name(args) for each directive
func writeDirectives(b *strings.Builder, directives Object) {
	for _, directive := range directives {
		// directives switched off with false are left out
		if enabled, ok := directive.Value.(bool); ok && !enabled {
			continue
		}

		b.WriteString(" @" + directive.Key)

		// an empty argument mapping stays a bare @name, since @name() does not parse
		if args, ok := asObject(directive.Value); ok && len(args) > 0 {
			b.WriteString("(")
			encodeArguments(b, args)
			b.WriteString(")")
		}
	}
}
