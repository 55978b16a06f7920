package model

import (
	"encoding"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/chriso345/clifford/v2/errors"
	"github.com/chriso345/clifford/v2/internal/common"
)

// Help exposure modes accepted on the Help marker.
const (
	HelpFlag   = "flag"
	HelpSubcmd = "subcmd"
	HelpBoth   = "both"
)

// ArgSpec describes a single option or positional argument.
type ArgSpec struct {
	Name       string // Go field name of the group or inline field
	Short      string
	Long       string
	Desc       string
	Default    string
	Env        string
	Validate   string
	Split      string
	Required   bool
	Positional bool
	Type       *RuntimeTypeInfo
	Index      []int // field path from the command struct to the bound value
}

// Placeholder is the upper-cased name used in usage lines.
func (a *ArgSpec) Placeholder() string {
	return strings.ToUpper(a.Name)
}

// IsBool reports whether the option is a plain boolean switch.
func (a *ArgSpec) IsBool() bool {
	t := a.Type.Type()
	return a.Type.Kind() == KindScalar && (t.Kind() == reflect.Bool ||
		t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Bool)
}

// SubcommandSpec describes a nested command reachable from its parent.
type SubcommandSpec struct {
	Name  string
	Desc  string
	Index int
}

// CommandSpec is the model of one command struct.
type CommandSpec struct {
	Name         string
	Desc         string
	LongAbout    string
	Version      string // from the Clifford marker
	FieldVersion string // from the Version marker
	HasVersion   bool
	HelpMode     string // empty when the command does not expose help
	HelpShort    bool
	VersionShort bool

	Options     []*ArgSpec
	Positionals []*ArgSpec
	Subcommands []*SubcommandSpec
}

// Option returns the option answering to the given flag token (e.g. "--port" or "-p").
func (c *CommandSpec) Option(flag string) *ArgSpec {
	for _, o := range c.Options {
		if o.Long != "" && flag == "--"+o.Long {
			return o
		}
		if o.Short != "" && flag == "-"+o.Short {
			return o
		}
	}
	return nil
}

// Subcommand returns the subcommand registered under name.
func (c *CommandSpec) Subcommand(name string) *SubcommandSpec {
	for _, s := range c.Subcommands {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// SubcommandNames lists subcommand names in declaration order.
func (c *CommandSpec) SubcommandNames() []string {
	names := make([]string, 0, len(c.Subcommands))
	for _, s := range c.Subcommands {
		names = append(names, s.Name)
	}
	return names
}

// HelpAsFlag reports whether -h/--help are handled for this command.
func (c *CommandSpec) HelpAsFlag() bool {
	return c.HelpMode == HelpFlag || c.HelpMode == HelpBoth
}

// HelpAsSubcommand reports whether `help [sub]` is handled for this command.
func (c *CommandSpec) HelpAsSubcommand() bool {
	return c.HelpMode == HelpSubcmd || c.HelpMode == HelpBoth
}

// HasOptions reports whether the Options section of the help has anything to show.
func (c *CommandSpec) HasOptions() bool {
	return len(c.Options) > 0 || c.HasVersion || c.HelpAsFlag()
}

// Args returns options and positionals in field declaration order.
func (c *CommandSpec) Args() []*ArgSpec {
	all := slices.Concat(c.Options, c.Positionals)
	slices.SortFunc(all, func(a, b *ArgSpec) int { return slices.Compare(a.Index, b.Index) })
	return all
}

// Required lists the required options and positionals in declaration order.
func (c *CommandSpec) Required() []*ArgSpec {
	var out []*ArgSpec
	for _, a := range c.Args() {
		if a.Required {
			out = append(out, a)
		}
	}
	return out
}

// Inherit returns c with helpMode applied when c declares no Help marker of its own.
// The cached spec is never modified.
func (c *CommandSpec) Inherit(helpMode string) *CommandSpec {
	if c.HelpMode != "" || helpMode == "" {
		return c
	}
	out := *c
	out.HelpMode = helpMode
	return &out
}

var specCache sync.Map // map[reflect.Type]*CommandSpec

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Build returns the command model for the struct type t. Models are cached per type.
func Build(t reflect.Type) (*CommandSpec, error) {
	if cached, ok := specCache.Load(t); ok {
		return cached.(*CommandSpec), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.NewParseError("invalid type: must pass pointer to struct")
	}

	spec, err := build(t)
	if err != nil {
		return nil, err
	}
	actual, _ := specCache.LoadOrStore(t, spec)
	return actual.(*CommandSpec), nil
}

func build(t reflect.Type) (*CommandSpec, error) {
	spec := &CommandSpec{HelpShort: true, VersionShort: true}

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous {
			readMeta(spec, field)
			continue
		}

		if !field.IsExported() {
			continue
		}

		if isGroup(field.Type) {
			tags := common.GetTagsFromEmbedded(field.Type, field.Name)
			if tags["subcmd"] == "true" {
				name := tags["name"]
				if name == "" {
					name = strings.ToLower(field.Name)
				}
				spec.Subcommands = append(spec.Subcommands, &SubcommandSpec{Name: name, Desc: tags["desc"], Index: i})
				continue
			}
			if err := addGroup(spec, field, i, tags); err != nil {
				return nil, err
			}
			continue
		}

		tags := common.GetInlineTags(field)
		if tags["short"] == "" && tags["long"] == "" {
			continue
		}
		arg, err := newArgSpec(field.Name, field.Type, []int{i}, tags)
		if err != nil {
			return nil, err
		}
		spec.Options = append(spec.Options, arg)
	}

	for _, o := range spec.Options {
		if o.Short == "v" {
			spec.VersionShort = false
		}
		if o.Short == "h" {
			spec.HelpShort = false
		}
	}
	return spec, nil
}

func readMeta(spec *CommandSpec, field reflect.StructField) {
	tag := field.Tag
	switch field.Type.Name() {
	case "Clifford":
		if v := tag.Get("name"); v != "" {
			spec.Name = v
		}
		if v := tag.Get("desc"); v != "" {
			spec.Desc = v
		}
		if v := tag.Get("long_about"); v != "" {
			spec.LongAbout = v
		}
		if v := tag.Get("version"); v != "" {
			spec.Version = v
			spec.HasVersion = true
		}
		if v := tag.Get("help"); v != "" && spec.HelpMode == "" {
			spec.HelpMode = v
		}
		if tag.Get("help_short") == "false" {
			spec.HelpShort = false
		}
		if tag.Get("version_short") == "false" {
			spec.VersionShort = false
		}
	case "Version":
		spec.HasVersion = true
		spec.FieldVersion = tag.Get("version")
	case "Help":
		spec.HelpMode = common.HelpMode(tag)
		if spec.HelpMode == "" {
			spec.HelpMode = HelpFlag
		}
	case "Desc":
		if v := tag.Get("desc"); v != "" {
			spec.Desc = v
		}
	case "Subcommand":
		if v := tag.Get("name"); v != "" && spec.Name == "" {
			spec.Name = v
		}
		if v := tag.Get("desc"); v != "" && spec.Desc == "" {
			spec.Desc = v
		}
	}
}

// addGroup registers the `Value` of a group struct and any inline options declared in it.
func addGroup(spec *CommandSpec, field reflect.StructField, index int, tags map[string]string) error {
	if vf, ok := field.Type.FieldByName("Value"); ok && len(vf.Index) == 1 {
		arg, err := newArgSpec(field.Name, vf.Type, []int{index, vf.Index[0]}, tags)
		if err != nil {
			return err
		}
		if arg.Positional {
			spec.Positionals = append(spec.Positionals, arg)
		} else {
			spec.Options = append(spec.Options, arg)
		}
	}

	for j := range field.Type.NumField() {
		inner := field.Type.Field(j)
		if inner.Anonymous || inner.Name == "Value" || !inner.IsExported() {
			continue
		}
		innerTags := common.GetInlineTags(inner)
		if innerTags["short"] == "" && innerTags["long"] == "" && innerTags["default"] == "" {
			continue
		}
		arg, err := newArgSpec(inner.Name, inner.Type, []int{index, j}, innerTags)
		if err != nil {
			return err
		}
		// Inline fields without flags only carry a default.
		arg.Positional = false
		spec.Options = append(spec.Options, arg)
	}
	return nil
}

func newArgSpec(name string, t reflect.Type, index []int, tags map[string]string) (*ArgSpec, error) {
	if !Supported(t) {
		return nil, errors.NewUnsupportedField(name, t.Kind().String())
	}
	return &ArgSpec{
		Name:       name,
		Short:      tags["short"],
		Long:       tags["long"],
		Desc:       tags["desc"],
		Default:    tags["default"],
		Env:        tags["env"],
		Validate:   tags["validate"],
		Split:      tags["split"],
		Required:   tags["required"] == "true",
		Positional: tags["short"] == "" && tags["long"] == "",
		Type:       TypeInfoOf(t),
		Index:      index,
	}, nil
}

// isGroup reports whether a struct-typed field is a group or subcommand rather than a
// value type that knows how to decode itself.
func isGroup(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && !reflect.PointerTo(t).Implements(textUnmarshalerType)
}

var durationType = reflect.TypeFor[time.Duration]()

// Supported reports whether values of type t can be bound from command-line tokens.
func Supported(t reflect.Type) bool {
	switch classify(t) {
	case KindEnum:
		return true
	case KindArray, KindCollection:
		return SupportedScalar(t.Elem())
	case KindMap:
		return SupportedScalar(t.Key()) && SupportedScalar(t.Elem())
	}
	return SupportedScalar(t)
}

// SupportedScalar reports whether a single token can be converted to t.
func SupportedScalar(t reflect.Type) bool {
	if t == durationType || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	if isEnum(t) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Pointer:
		return t.Elem().Kind() != reflect.Pointer && SupportedScalar(t.Elem())
	}
	return false
}
