package model

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Kind is the closed set of value shapes an option or positional can take.
type Kind int

const (
	KindScalar Kind = iota
	KindArray
	KindCollection
	KindMap
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindCollection:
		return "collection"
	case KindMap:
		return "map"
	case KindEnum:
		return "enum"
	default:
		return "scalar"
	}
}

// Enumerated is implemented by named string or integer types that accept a fixed set
// of constant names. Integer enums bind the position of the name within EnumNames.
//
//	type Level int
//
//	func (Level) EnumNames() []string { return []string{"debug", "info", "warn"} }
type Enumerated interface {
	EnumNames() []string
}

var enumeratedType = reflect.TypeFor[Enumerated]()

// RuntimeTypeInfo describes the declared type of an option or positional value.
//
// It tracks the raw auxiliary types supplied by the caller separately from the type
// arguments resolved from a signature; the two are never derived from each other.
// A RuntimeTypeInfo is immutable once constructed.
type RuntimeTypeInfo struct {
	typ       reflect.Type
	aux       []reflect.Type
	generic   []reflect.Type
	kind      Kind
	enumNames []string
}

// NewRuntimeTypeInfo builds a descriptor for typ. aux holds the raw auxiliary types
// (element or parameter types) and is rendered by String. signature, when non-nil, is the
// fully declared type from which ActualGenericTypeArguments are resolved.
func NewRuntimeTypeInfo(typ reflect.Type, aux []reflect.Type, signature reflect.Type) *RuntimeTypeInfo {
	info := &RuntimeTypeInfo{
		typ:     typ,
		aux:     slices.Clone(aux),
		generic: typeArguments(signature),
		kind:    classify(typ),
	}
	if info.kind == KindEnum {
		info.enumNames = enumNames(typ)
	}
	return info
}

// TypeInfoOf builds the descriptor the model layer uses for a declared field type: the
// auxiliary types and the resolved type arguments both come from t itself.
func TypeInfoOf(t reflect.Type) *RuntimeTypeInfo {
	return NewRuntimeTypeInfo(t, typeArguments(t), t)
}

// Type returns the declared type.
func (r *RuntimeTypeInfo) Type() reflect.Type { return r.typ }

// Kind returns the shape of the declared type.
func (r *RuntimeTypeInfo) Kind() Kind { return r.kind }

// AuxiliaryTypes returns the raw auxiliary types supplied at construction.
func (r *RuntimeTypeInfo) AuxiliaryTypes() []reflect.Type {
	return cloneOrEmpty(r.aux)
}

// ActualGenericTypeArguments returns the type arguments resolved from the signature
// input. It is empty when no signature was supplied.
func (r *RuntimeTypeInfo) ActualGenericTypeArguments() []reflect.Type {
	return cloneOrEmpty(r.generic)
}

func (r *RuntimeTypeInfo) IsArray() bool      { return r.kind == KindArray }
func (r *RuntimeTypeInfo) IsCollection() bool { return r.kind == KindCollection }
func (r *RuntimeTypeInfo) IsMap() bool        { return r.kind == KindMap }
func (r *RuntimeTypeInfo) IsEnum() bool       { return r.kind == KindEnum }

// IsMultiValue reports whether the value accepts more than one token.
func (r *RuntimeTypeInfo) IsMultiValue() bool {
	return r.kind == KindArray || r.kind == KindCollection || r.kind == KindMap
}

// EnumConstantNames returns the enum's constant names in declaration order, or an
// empty slice when the type is not an enum.
func (r *RuntimeTypeInfo) EnumConstantNames() []string {
	if r.enumNames == nil {
		return []string{}
	}
	return slices.Clone(r.enumNames)
}

// Equal reports whether other is a descriptor with the same declared type and the same
// auxiliary types in the same order.
func (r *RuntimeTypeInfo) Equal(other any) bool {
	var o *RuntimeTypeInfo
	switch v := other.(type) {
	case *RuntimeTypeInfo:
		o = v
	case RuntimeTypeInfo:
		o = &v
	default:
		return false
	}
	if r == nil || o == nil {
		return r == o
	}
	return r.typ == o.typ && slices.Equal(r.aux, o.aux)
}

func (r *RuntimeTypeInfo) String() string {
	aux := make([]string, len(r.aux))
	for i, t := range r.aux {
		aux[i] = QualifiedName(t)
	}
	return fmt.Sprintf("RuntimeTypeInfo(%s, aux=[%s], collection=%t, map=%t)",
		QualifiedName(r.typ), strings.Join(aux, " "), r.IsCollection(), r.IsMap())
}

// QualifiedName returns pkgpath.Name for named types and the type literal otherwise.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

func classify(t reflect.Type) Kind {
	if t == nil {
		return KindScalar
	}
	if isEnum(t) {
		return KindEnum
	}
	// Types that decode themselves from text (net.IP, time.Time) are single values.
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return KindScalar
	}
	switch t.Kind() {
	case reflect.Array:
		return KindArray
	case reflect.Slice:
		return KindCollection
	case reflect.Map:
		return KindMap
	}
	return KindScalar
}

func isEnum(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return false
	}
	return t.Implements(enumeratedType) || reflect.PointerTo(t).Implements(enumeratedType)
}

func enumNames(t reflect.Type) []string {
	var e Enumerated
	if t.Implements(enumeratedType) {
		e = reflect.Zero(t).Interface().(Enumerated)
	} else {
		e = reflect.New(t).Interface().(Enumerated)
	}
	return slices.Clone(e.EnumNames())
}

// typeArguments resolves the component types carried by a declared type.
func typeArguments(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Pointer:
		return []reflect.Type{t.Elem()}
	case reflect.Map:
		return []reflect.Type{t.Key(), t.Elem()}
	}
	return nil
}

func cloneOrEmpty(ts []reflect.Type) []reflect.Type {
	if len(ts) == 0 {
		return []reflect.Type{}
	}
	return slices.Clone(ts)
}
