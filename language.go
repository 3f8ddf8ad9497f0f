package jsonquery

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Check parses compiled text as a GraphQL document. It only looks at the syntax: nothing
// is validated against a schema.
func Check(query string) (*ast.QueryDocument, error) {
	document, err := parser.ParseQuery(&ast.Source{
		Input: query,
	})
	if err != nil {
		return nil, err
	}
	return document, nil
}
