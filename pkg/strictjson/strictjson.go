// Package strictjson decodes GraphQL response data into typed structs.
//
// The decoding contract matches what a fixed selection set guarantees:
// object keys the target struct does not know are ignored, but a key that
// the struct expects and the payload does not carry (or carries as null
// for a non-pointer field) is an error. A response failing this contract
// means the remote schema no longer matches the document the client sent.
package strictjson

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Unmarshal parses the JSON-encoded data and stores the result in the
// value pointed to by v, which must be a non-nil pointer.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("strictjson: target must be a non-nil pointer")
	}
	return unmarshalValue(data, rv.Elem(), "")
}

func unmarshalValue(raw json.RawMessage, rv reflect.Value, path string) error {
	raw = bytes.TrimSpace(raw)
	isNull := bytes.Equal(raw, []byte("null"))

	if rv.Kind() == reflect.Ptr {
		if isNull {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(raw, rv.Elem(), path)
	}

	if isNull {
		return fmt.Errorf("strictjson: null value for required field %s", fieldLabel(path))
	}

	// Types with their own unmarshaling (time.Time, uuid.UUID) take over.
	pt := rv.Addr().Type()
	if pt.Implements(jsonUnmarshalerType) || pt.Implements(textUnmarshalerType) {
		if err := json.Unmarshal(raw, rv.Addr().Interface()); err != nil {
			return fmt.Errorf("strictjson: field %s: %w", fieldLabel(path), err)
		}
		return nil
	}

	switch rv.Kind() {
	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("strictjson: field %s: %w", fieldLabel(path), err)
		}
		out := reflect.MakeSlice(rv.Type(), len(items), len(items))
		for i, item := range items {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if err := unmarshalValue(item, out.Index(i), elemPath); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Struct:
		return unmarshalStruct(raw, rv, path)

	default:
		if err := json.Unmarshal(raw, rv.Addr().Interface()); err != nil {
			return fmt.Errorf("strictjson: field %s: %w", fieldLabel(path), err)
		}
		return nil
	}
}

func unmarshalStruct(raw json.RawMessage, rv reflect.Value, path string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("strictjson: field %s: %w", fieldLabel(path), err)
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := jsonFieldName(field)
		if name == "" {
			continue
		}

		fieldPath := joinPath(path, name)
		fraw, ok := obj[name]
		if !ok {
			// Only pointer fields are optional. List fields come back as
			// [] when empty, so their absence breaks the selection-set
			// contract like any other missing key.
			if field.Type.Kind() == reflect.Ptr {
				continue
			}
			return fmt.Errorf("strictjson: missing expected field %s", fieldPath)
		}
		if err := unmarshalValue(fraw, rv.Field(i), fieldPath); err != nil {
			return err
		}
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func fieldLabel(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
