package colmap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const tagKey = "colmap"

// MappingFor derives a mapping from the `colmap` struct tags of T, in field
// declaration order:
//
//	type Doc struct {
//	    ID        int64     `colmap:"id"`
//	    Title     string    `colmap:"title,VARCHAR"`
//	    Embedding []float32 `colmap:"embedding,dim=128"`
//	    Internal  string    `colmap:"-"`
//	}
//
// The type is taken from the tag or inferred from the Go kind. A dim option
// makes the field a vector field. Untagged fields are skipped.
func MappingFor[T any](collectionName string) (*CollectionMapping, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("colmap: cannot derive mapping from nil interface type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("colmap: type %s is not a struct", t)
	}

	m := Create(collectionName)
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		if err := applyTag(m, f, tag); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// applyTag parses `name[,TYPE][,dim=N]` and appends the field.
func applyTag(m *CollectionMapping, f reflect.StructField, tag string) error {
	parts := strings.Split(tag, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		name = f.Name
	}

	var (
		dt      DataType
		typeSet bool
		dim     int
		dimSet  bool
	)
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		if v, ok := strings.CutPrefix(opt, "dim="); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("colmap: invalid dim %q on field %s", v, f.Name)
			}
			dim, dimSet = n, true
			continue
		}
		if typeSet {
			return fmt.Errorf("colmap: duplicate type option %q on field %s", opt, f.Name)
		}
		parsed, err := ParseDataType(opt)
		if err != nil {
			return fmt.Errorf("colmap: field %s: %w", f.Name, err)
		}
		dt, typeSet = parsed, true
	}

	if !typeSet {
		inferred, ok := inferDataType(f.Type)
		if !ok {
			return fmt.Errorf("colmap: cannot infer data type of field %s (%s)", f.Name, f.Type)
		}
		dt = inferred
	}

	if dimSet {
		m.AddVectorField(name, dt, dim)
	} else {
		m.AddField(name, dt)
	}
	return nil
}

func inferDataType(t reflect.Type) (DataType, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return DataTypeBool, true
	case reflect.Int8:
		return DataTypeInt8, true
	case reflect.Int16:
		return DataTypeInt16, true
	case reflect.Int32:
		return DataTypeInt32, true
	case reflect.Int, reflect.Int64:
		return DataTypeInt64, true
	case reflect.Float32:
		return DataTypeFloat, true
	case reflect.Float64:
		return DataTypeDouble, true
	case reflect.String:
		return DataTypeVarChar, true
	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.Float32:
			return DataTypeFloatVector, true
		case reflect.Uint8:
			return DataTypeBinaryVector, true
		}
	}
	return DataTypeNone, false
}
