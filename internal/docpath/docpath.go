// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docpath reads and writes fields of a document through
// dot-delimited paths such as "hero.title" or "services.cards.2.enabled".
// Struct segments are matched against JSON tags, numeric segments index
// slices. It is the bridge between the editor's generic field updates and
// the statically typed proposal document.
//
// Set mutates the value it is given. Callers that need snapshot isolation
// clone the document first and Set into the clone.
package docpath

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrBadPath is wrapped by every traversal failure: unknown field names,
// indexes on non-slices, out-of-range indexes, nil ancestors.
var ErrBadPath = fmt.Errorf("docpath: bad path")

// Get resolves path inside root and returns the addressed value.
// root must be a pointer to a struct.
func Get(root any, path string) (any, error) {
	v, err := walk(root, path)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Set resolves path inside root and replaces the addressed field with
// value, coercing JSON-decoded values (string, bool, float64, []any) into
// the field's static type. root must be a pointer to a struct.
func Set(root any, path string, value any) error {
	v, err := walk(root, path)
	if err != nil {
		return err
	}
	if !v.CanSet() {
		return fmt.Errorf("%w: %q is not settable", ErrBadPath, path)
	}

	coerced, err := coerce(v.Type(), value)
	if err != nil {
		return fmt.Errorf("docpath: set %q: %w", path, err)
	}
	v.Set(coerced)
	return nil
}

// walk follows path from root and returns the addressed reflect.Value.
func walk(root any, path string) (reflect.Value, error) {
	if path == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty path", ErrBadPath)
	}

	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("docpath: root must be a non-nil pointer")
	}
	v = v.Elem()

	for _, seg := range strings.Split(path, ".") {
		// Dereference pointers between segments (e.g. the theme field).
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: nil ancestor before %q in %q", ErrBadPath, seg, path)
			}
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Struct:
			field, ok := fieldByJSONTag(v, seg)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%w: unknown field %q in %q", ErrBadPath, seg, path)
			}
			v = field

		case reflect.Slice:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %q is not an index in %q", ErrBadPath, seg, path)
			}
			if idx < 0 || idx >= v.Len() {
				return reflect.Value{}, fmt.Errorf("%w: index %d out of range in %q", ErrBadPath, idx, path)
			}
			v = v.Index(idx)

		default:
			return reflect.Value{}, fmt.Errorf("%w: cannot descend into %s at %q in %q", ErrBadPath, v.Kind(), seg, path)
		}
	}

	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil value at %q", ErrBadPath, path)
		}
		v = v.Elem()
	}
	return v, nil
}

// fieldByJSONTag finds the struct field whose json tag (or name, case
// insensitively) matches seg.
func fieldByJSONTag(v reflect.Value, seg string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if comma := strings.IndexByte(tag, ','); comma >= 0 {
			tag = tag[:comma]
		}
		if tag == seg || (tag == "" && strings.EqualFold(f.Name, seg)) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// coerce converts a JSON-decoded value into target type t. Handles the
// shapes encoding/json produces: string, bool, float64, []any, plus
// already-typed values from in-process callers.
func coerce(t reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if v.Type().ConvertibleTo(t) && compatibleKinds(v.Kind(), t.Kind()) {
		return v.Convert(t), nil
	}

	// JSON array → typed slice, element by element.
	if t.Kind() == reflect.Slice && v.Kind() == reflect.Slice {
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i).Interface()
			ev, err := coerce(t.Elem(), elem)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	}

	return reflect.Value{}, fmt.Errorf("cannot assign %T to %s", value, t)
}

// compatibleKinds limits Convert to sensible pairs: strings to named
// string types, JSON numbers to numeric fields. Prevents surprises like
// int → string conversions.
func compatibleKinds(from, to reflect.Kind) bool {
	if from == reflect.String {
		return to == reflect.String
	}
	if isNumeric(from) {
		return isNumeric(to)
	}
	return from == to
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
