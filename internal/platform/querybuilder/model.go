package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an insert from the struct's `db` tags. Columns tagged
// `db:"name,auto"` are filled by the database and skipped.
func InsertModel(table string, model any) (*InsertBuilder, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	b := InsertInto(table)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" || strings.TrimSpace(opts) == "auto" {
			continue
		}
		b.Set(name, v.Field(i).Interface())
	}

	if len(b.columns) == 0 {
		return nil, fmt.Errorf("model %s has no insertable db columns", t.Name())
	}
	return b, nil
}
