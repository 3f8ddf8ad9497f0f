// Package jsonquery builds GraphQL operation text out of plain nested data so that
// clients can assemble field sets, arguments, directives, aliases and inline fragments
// programmatically instead of templating strings.
//
// A document maps an operation keyword to its selection tree:
//
//	jsonquery.Object{
//		{Key: "query", Value: jsonquery.Object{
//			{Key: "Posts", Value: jsonquery.Object{
//				{Key: "__args", Value: jsonquery.Object{{Key: "userId", Value: 12}}},
//				{Key: "id", Value: true},
//			}},
//		}},
//	}
//
// compiles to `query { Posts (userId: 12) { id } }`.
package jsonquery

// Options controls how an operation is compiled. The zero value gives compact output
// that leaves out empty values.
type Options struct {
	// Pretty puts every field on its own line, indented four spaces per level
	Pretty bool `mapstructure:"pretty"`
	// IncludeFalsyKeys selects fields whose value is nil, empty or zero. false is never selected.
	IncludeFalsyKeys bool `mapstructure:"includeFalsyKeys"`
	// IgnoreFields are dropped wherever they appear in the tree
	IgnoreFields []string `mapstructure:"ignoreFields"`
}

// Compile renders an operation document as GraphQL text. The document must be a
// non-empty mapping (an Object or a go map) from operation keyword to selection tree.
// A nil options value uses the defaults.
func Compile(operation interface{}, options *Options) (string, error) {
	if options == nil {
		options = &Options{}
	}

	document, ok := asObject(operation)
	if !ok {
		return "", ErrInvalidInput
	}
	if len(document) == 0 {
		return "", ErrEmptyQuery
	}

	compiler := &selectionCompiler{
		includeFalsyKeys: options.IncludeFalsyKeys,
		ignore:           make(map[string]bool, len(options.IgnoreFields)),
	}
	for _, field := range options.IgnoreFields {
		compiler.ignore[field] = true
	}

	// operations are compiled as top level fields, so IgnoreFields and the reserved
	// keys apply to the operation keywords too
	nodes := compiler.compileSelection(document)

	return formatter{pretty: options.Pretty}.format(nodes), nil
}

// MustCompile is like Compile but panics if the document cannot be compiled
func MustCompile(operation interface{}, options *Options) string {
	query, err := Compile(operation, options)
	if err != nil {
		panic(err)
	}
	return query
}
