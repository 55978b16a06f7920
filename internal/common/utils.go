package common

import (
	"reflect"
	"strings"
)

// valueTagKeys are the tags read from a group's `Value` field and from inline fields.
var valueTagKeys = []string{"default", "desc", "required", "short", "long", "subcmd", "env", "validate", "split"}

// markerTagKeys are the tags read from an anonymous marker embedded in a group.
var markerTagKeys = []string{"short", "long", "desc", "required", "subcmd", "name"}

// GetTagsFromEmbedded retrieves tags from embedded structs in the target struct.
//
// Anonymous marker fields contribute their derived tags (ShortTag, LongTag, Required,
// Desc, Subcommand) or their literal tags. Of the named fields only `Value` contributes,
// so inline options declared alongside it do not leak their tags into the group.
func GetTagsFromEmbedded(t reflect.Type, fieldName string) map[string]string {
	tags := make(map[string]string)

	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous {
			switch field.Type.Name() {
			case "ShortTag":
				tags["short"] = strings.ToLower(string(fieldName[0]))
			case "LongTag":
				tags["long"] = KebabCase(fieldName)
			case "Required":
				tags["required"] = "true"
			case "Desc":
				if val := field.Tag.Get("desc"); val != "" {
					tags["desc"] = val
				}
			case "Subcommand":
				tags["subcmd"] = "true"
				copyTags(field.Tag, tags, "name", "desc")
			default:
				copyTags(field.Tag, tags, markerTagKeys...)
			}
			continue
		}

		if field.Name != "Value" {
			continue
		}
		copyTags(field.Tag, tags, valueTagKeys...)
	}

	return tags
}

// GetInlineTags returns the tags a non-anonymous field declares on itself.
func GetInlineTags(field reflect.StructField) map[string]string {
	tags := make(map[string]string)
	copyTags(field.Tag, tags, valueTagKeys...)
	return tags
}

// HelpMode returns the help exposure mode declared on a Help marker tag.
func HelpMode(tag reflect.StructTag) string {
	if val := tag.Get("help"); val != "" {
		return val
	}
	return tag.Get("type")
}

func copyTags(tag reflect.StructTag, into map[string]string, keys ...string) {
	for _, key := range keys {
		if val := tag.Get(key); val != "" {
			into[key] = val
		}
	}
}

// KebabCase converts a Go field name such as MaxItems into max-items.
func KebabCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !isUpper(name[i-1]) {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// ArgsIndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func ArgsIndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// GetStructType returns the reflect.Type of the underlying struct pointer.
func GetStructType(v any) reflect.Type {
	return reflect.TypeOf(v).Elem()
}
