package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chriso345/clifford/v2/errors"
	"github.com/chriso345/clifford/v2/model"
)

var validate = validator.New()

// assign converts raw tokens and stores them in the field addressed by arg.
func assign(root reflect.Value, arg *model.ArgSpec, values []string) error {
	field := root.FieldByIndex(arg.Index)
	if !field.CanSet() || len(values) == 0 {
		return nil
	}

	info := arg.Type
	t := info.Type()
	if arg.Split != "" && info.IsMultiValue() {
		values = splitAll(values, arg.Split)
	}

	switch info.Kind() {
	case model.KindCollection:
		slice := reflect.MakeSlice(t, 0, len(values))
		for _, raw := range values {
			v, err := convertScalar(t.Elem(), raw)
			if err != nil {
				return invalid(arg, raw, err)
			}
			slice = reflect.Append(slice, v)
		}
		field.Set(slice)

	case model.KindArray:
		if len(values) > t.Len() {
			return invalid(arg, strings.Join(values, " "), fmt.Errorf("expects at most %d values", t.Len()))
		}
		arr := reflect.New(t).Elem()
		for i, raw := range values {
			v, err := convertScalar(t.Elem(), raw)
			if err != nil {
				return invalid(arg, raw, err)
			}
			arr.Index(i).Set(v)
		}
		field.Set(arr)

	case model.KindMap:
		m := reflect.MakeMapWithSize(t, len(values))
		for _, raw := range values {
			key, val, ok := strings.Cut(raw, "=")
			if !ok {
				return invalid(arg, raw, fmt.Errorf("expected key=value"))
			}
			k, err := convertScalar(t.Key(), key)
			if err != nil {
				return invalid(arg, raw, err)
			}
			v, err := convertScalar(t.Elem(), val)
			if err != nil {
				return invalid(arg, raw, err)
			}
			m.SetMapIndex(k, v)
		}
		field.Set(m)

	default:
		raw := values[len(values)-1]
		v, err := convertScalar(t, raw)
		if err != nil {
			return invalid(arg, raw, err)
		}
		field.Set(v)
	}
	return nil
}

// check runs the `validate` tag of arg against the bound field.
func check(root reflect.Value, arg *model.ArgSpec) error {
	if arg.Validate == "" {
		return nil
	}
	field := root.FieldByIndex(arg.Index)
	if !field.CanInterface() {
		return nil
	}
	if err := validate.Var(field.Interface(), arg.Validate); err != nil {
		return errors.NewValidation(arg.Name, err)
	}
	return nil
}

func invalid(arg *model.ArgSpec, raw string, err error) error {
	return errors.NewInvalidValue(arg.Name, raw, arg.Type.Type().String(), err)
}

func splitAll(values []string, sep string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, sep)...)
	}
	return out
}
