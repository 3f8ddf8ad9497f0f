package jsonquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestCheck(t *testing.T) {
	query, err := Compile(decode(t, `{"query": {"Posts": {"__alias": "lorem", "__args": {"where": {"id": 10}}, "id": true, "__on": {"__typeName": "Post", "title": true}}}}`), nil)
	require.NoError(t, err)

	document, err := Check(query)
	require.NoError(t, err)
	require.Len(t, document.Operations, 1)

	operation := document.Operations[0]
	assert.Equal(t, ast.Query, operation.Operation)
	require.Len(t, operation.SelectionSet, 1)

	field, ok := operation.SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	assert.Equal(t, "lorem", field.Alias)
	assert.Equal(t, "Posts", field.Name)
	require.Len(t, field.Arguments, 1)
	assert.Equal(t, "where", field.Arguments[0].Name)
	require.Len(t, field.SelectionSet, 2)

	fragment, ok := field.SelectionSet[1].(*ast.InlineFragment)
	require.True(t, ok)
	assert.Equal(t, "Post", fragment.TypeCondition)
}

func TestCheck_directivesBeforeArguments(t *testing.T) {
	query, err := Compile(decode(t, `{"query": {"Posts": {"__args": {"where": {"id": 10}}, "__directives": {"client": true}, "id": true}}}`), nil)
	require.NoError(t, err)
	assert.Equal(t, `query { Posts @client (where: {id: 10}) { id } }`, query)

	document, err := Check(query)
	require.NoError(t, err)

	field, ok := document.Operations[0].SelectionSet[0].(*ast.Field)
	require.True(t, ok)

	// graphql reads arguments that follow a directive as the directive's own arguments
	assert.Empty(t, field.Arguments)
	require.Len(t, field.Directives, 1)
	assert.Equal(t, "client", field.Directives[0].Name)
	require.Len(t, field.Directives[0].Arguments, 1)
	assert.Equal(t, "where", field.Directives[0].Arguments[0].Name)
}

func TestCheck_syntaxError(t *testing.T) {
	_, err := Check("query { Posts (id: ) }")
	assert.Error(t, err)
}
