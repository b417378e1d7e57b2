package orggraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Operation is one named GraphQL document known to the client, together
// with the variable declarations parsed out of its text. Instances live in
// the package-level registry, are never mutated after startup and are safe
// for concurrent readers.
type Operation struct {
	Name      string
	Kind      ast.Operation
	Document  string
	Variables ast.VariableDefinitionList
}

// registry maps operation name to its parsed document. Populated once at
// init from the constants in documents.go; read-only afterwards.
var registry = mustBuildRegistry(
	getOrganizationDocument,
	addressTypesDocument,
	createAddressDocument,
	updateAddressDocument,
	getAddressesDocument,
	getFacetClassDocument,
	getFacetUuidDocument,
	getOrgUnitTimelineDocument,
	createOrgUnitDocument,
	updateOrgUnitDocument,
	terminateOrgUnitDocument,
	createEngagementDocument,
	updateEngagementDocument,
	createClassDocument,
	updateClassDocument,
	getRelatedUnitsDocument,
	testingCreateEmployeeDocument,
	testingCreateOrgUnitDocument,
	testingCreateEngagementDocument,
	testingGetOrgUnitDocument,
	testingGetOrgUnitAddressDocument,
)

// LookupOperation returns the registered operation with the given name.
func LookupOperation(name string) (*Operation, bool) {
	op, ok := registry[name]
	return op, ok
}

// OperationNames returns the names of all registered operations, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mustBuildRegistry parses every embedded document. The documents are
// compiled into the binary, so a parse failure is a build defect and the
// only sane reaction is to refuse to start.
func mustBuildRegistry(docs ...string) map[string]*Operation {
	ops := make(map[string]*Operation, len(docs))
	for _, doc := range docs {
		op, err := parseDocument(doc)
		if err != nil {
			panic(fmt.Sprintf("orggraph: invalid embedded document: %v", err))
		}
		if _, dup := ops[op.Name]; dup {
			panic(fmt.Sprintf("orggraph: duplicate operation name %q", op.Name))
		}
		ops[op.Name] = op
	}
	return ops
}

func parseDocument(doc string) (*Operation, error) {
	parsed, parseErr := parser.ParseQuery(&ast.Source{
		Name:  "queries.graphql",
		Input: doc,
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(parsed.Operations) != 1 {
		return nil, fmt.Errorf(
			"expected exactly one operation per document, got %d",
			len(parsed.Operations),
		)
	}

	def := parsed.Operations[0]
	if def.Name == "" {
		return nil, errors.New("anonymous operations are not supported")
	}
	if def.Operation != ast.Query && def.Operation != ast.Mutation {
		return nil, fmt.Errorf(
			"operation %q: unsupported kind %q",
			def.Name,
			def.Operation,
		)
	}

	return &Operation{
		Name:      def.Name,
		Kind:      def.Operation,
		Document:  doc,
		Variables: def.VariableDefinitions,
	}, nil
}

// IsMutation reports whether executing the operation changes remote state.
// The executor never retries mutations; callers must not either unless they
// can supply their own idempotency guarantee.
func (op *Operation) IsMutation() bool {
	return op.Kind == ast.Mutation
}
