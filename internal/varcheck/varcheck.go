// Package varcheck validates a call-time variable set against the variable
// declarations of a parsed GraphQL operation. Validation happens entirely
// locally, before any request is built, so a mismatch never reaches the
// network.
package varcheck

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

var (
	uuidType = reflect.TypeOf(uuid.UUID{})
	timeType = reflect.TypeOf(time.Time{})
)

// Validate checks vars against the declared variables defs. It reports the
// first of: an undeclared variable, a missing or nil required variable, or
// a value whose Go type cannot serialize to the declared GraphQL type.
func Validate(defs ast.VariableDefinitionList, vars map[string]any) error {
	declared := make(map[string]bool, len(defs))
	for _, def := range defs {
		declared[def.Variable] = true
	}
	for name := range vars {
		if !declared[name] {
			return fmt.Errorf("variable $%s is not declared by the operation", name)
		}
	}

	for _, def := range defs {
		val, present := vars[def.Variable]
		if !present {
			if def.Type.NonNull && def.DefaultValue == nil {
				return fmt.Errorf(
					"missing required variable $%s of type %s",
					def.Variable,
					TypeString(def.Type),
				)
			}
			continue
		}
		if err := checkValue(def.Variable, def.Type, val); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(name string, t *ast.Type, val any) error {
	v := reflect.ValueOf(val)

	// Unwrap pointers and interfaces; a nil at any level counts as null.
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			if t.NonNull {
				return fmt.Errorf(
					"variable $%s of type %s must not be null",
					name,
					TypeString(t),
				)
			}
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		if t.NonNull {
			return fmt.Errorf(
				"variable $%s of type %s must not be null",
				name,
				TypeString(t),
			)
		}
		return nil
	}

	if t.Elem != nil {
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return fmt.Errorf(
				"variable $%s of type %s requires a slice, got %s",
				name,
				TypeString(t),
				v.Type(),
			)
		}
		for i := 0; i < v.Len(); i++ {
			if err := checkValue(name, t.Elem, v.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	return checkScalar(name, t, v)
}

func checkScalar(name string, t *ast.Type, v reflect.Value) error {
	mismatch := func() error {
		return fmt.Errorf(
			"variable $%s of type %s cannot be represented by %s",
			name,
			TypeString(t),
			v.Type(),
		)
	}

	switch t.NamedType {
	case "UUID":
		if v.Type() == uuidType {
			return nil
		}
		if v.Kind() == reflect.String {
			if _, err := uuid.Parse(v.String()); err != nil {
				return fmt.Errorf("variable $%s: %w", name, err)
			}
			return nil
		}
		return mismatch()
	case "String", "ID", "CPR":
		if v.Kind() != reflect.String {
			return mismatch()
		}
	case "DateTime":
		if v.Type() != timeType {
			return mismatch()
		}
	case "Boolean":
		if v.Kind() != reflect.Bool {
			return mismatch()
		}
	case "Int":
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return mismatch()
		}
	case "Float":
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
		default:
			return mismatch()
		}
	default:
		// Input object: the remote validates its fields, but locally it
		// must at least be a struct or a string-keyed map.
		if v.Kind() != reflect.Struct &&
			!(v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String) {
			return mismatch()
		}
	}
	return nil
}

// TypeString renders a declared type the way it appears in a document,
// e.g. "UUID!" or "[String!]".
func TypeString(t *ast.Type) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeType(b *strings.Builder, t *ast.Type) {
	if t.Elem != nil {
		b.WriteByte('[')
		writeType(b, t.Elem)
		b.WriteByte(']')
	} else {
		b.WriteString(t.NamedType)
	}
	if t.NonNull {
		b.WriteByte('!')
	}
}
