package varcheck

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func parseDefs(t *testing.T, doc string) ast.VariableDefinitionList {
	t.Helper()
	parsed, err := parser.ParseQuery(&ast.Source{Name: "test.graphql", Input: doc})
	require.Nil(t, err)
	require.Len(t, parsed.Operations, 1)
	return parsed.Operations[0].VariableDefinitions
}

func TestValidate_missingRequired(t *testing.T) {
	defs := parseDefs(t, `query Q($id: UUID!) { org { uuid } }`)

	err := Validate(defs, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required variable $id")
	assert.Contains(t, err.Error(), "UUID!")
}

func TestValidate_nullRequired(t *testing.T) {
	defs := parseDefs(t, `query Q($id: UUID!) { org { uuid } }`)

	err := Validate(defs, map[string]any{"id": nil})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be null")
}

func TestValidate_undeclaredVariable(t *testing.T) {
	defs := parseDefs(t, `query Q($id: UUID!) { org { uuid } }`)

	err := Validate(defs, map[string]any{
		"id":    uuid.New(),
		"bogus": "value",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "$bogus")
}

func TestValidate_missingOptionalIsFine(t *testing.T) {
	defs := parseDefs(t, `query Q($from: DateTime, $to: DateTime) { org { uuid } }`)

	assert.NoError(t, Validate(defs, nil))
	assert.NoError(t, Validate(defs, map[string]any{"from": time.Now()}))
	assert.NoError(t, Validate(defs, map[string]any{"to": (*time.Time)(nil)}))
}

func TestValidate_scalarKinds(t *testing.T) {
	defs := parseDefs(t, `
		query Q($id: UUID!, $key: String!, $at: DateTime!, $n: Int!, $ok: Boolean!) {
			org { uuid }
		}
	`)

	good := map[string]any{
		"id":  uuid.New(),
		"key": "user_key",
		"at":  time.Now(),
		"n":   7,
		"ok":  true,
	}
	assert.NoError(t, Validate(defs, good))

	bad := map[string]any{
		"id":  uuid.New(),
		"key": "user_key",
		"at":  "2020-01-01", // string where a time.Time is required
		"n":   7,
		"ok":  true,
	}
	err := Validate(defs, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$at")
	assert.Contains(t, err.Error(), "DateTime!")
}

func TestValidate_uuidFromString(t *testing.T) {
	defs := parseDefs(t, `query Q($id: UUID!) { org { uuid } }`)

	assert.NoError(t, Validate(defs, map[string]any{
		"id": "6667f607-ef6f-4436-9d60-bd4a4fcfee75",
	}))

	err := Validate(defs, map[string]any{"id": "not-a-uuid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$id")
}

func TestValidate_listType(t *testing.T) {
	defs := parseDefs(t, `query Q($keys: [String!]!) { org { uuid } }`)

	assert.NoError(t, Validate(defs, map[string]any{
		"keys": []string{"a", "b"},
	}))

	err := Validate(defs, map[string]any{"keys": "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[String!]!")

	err = Validate(defs, map[string]any{"keys": []int{1}})
	require.Error(t, err)
}

func TestValidate_inputObject(t *testing.T) {
	defs := parseDefs(t, `mutation M($input: AddressCreateInput!) { x { uuid } }`)

	type input struct {
		Value string `json:"value"`
	}
	assert.NoError(t, Validate(defs, map[string]any{"input": input{Value: "v"}}))
	assert.NoError(t, Validate(defs, map[string]any{"input": map[string]any{"value": "v"}}))

	err := Validate(defs, map[string]any{"input": 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AddressCreateInput!")
}

func TestTypeString(t *testing.T) {
	defs := parseDefs(t, `query Q($a: UUID!, $b: [String!], $c: DateTime) { org { uuid } }`)

	assert.Equal(t, "UUID!", TypeString(defs[0].Type))
	assert.Equal(t, "[String!]", TypeString(defs[1].Type))
	assert.Equal(t, "DateTime", TypeString(defs[2].Type))
}
