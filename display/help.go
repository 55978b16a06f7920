package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chriso345/clifford/v2/errors"
	"github.com/chriso345/clifford/v2/internal/common"
	"github.com/chriso345/clifford/v2/model"
)

// BuildHelp renders the help text for the command described by target. The long form
// prefers the `long_about` description and annotates defaults and environment variables.
func BuildHelp(target any, long bool) (string, error) {
	spec, err := specOf(target)
	if err != nil {
		return "", err
	}
	name := spec.Name
	if name == "" {
		name = "<app>"
	}
	return render(spec, name, long), nil
}

// RenderSpec renders help for an already resolved command, such as a subcommand
// carrying the help mode it inherited from its parent.
func RenderSpec(spec *model.CommandSpec, usage string, long bool) string {
	return render(spec, usage, long)
}

func specOf(target any) (*model.CommandSpec, error) {
	if !common.IsStructPtr(target) {
		return nil, errors.NewParseError("invalid type: must pass pointer to struct")
	}
	return model.Build(common.GetStructType(target))
}

func render(spec *model.CommandSpec, usage string, long bool) string {
	var builder strings.Builder
	builder.WriteString(header("Usage:") + " ")
	builder.WriteString(commandName(usage))

	for _, arg := range spec.Positionals {
		builder.WriteString(" " + positionalHint(arg))
	}
	if spec.HasOptions() {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	desc := spec.Desc
	if long && spec.LongAbout != "" {
		desc = spec.LongAbout
	}
	if desc != "" {
		builder.WriteString("\n" + desc + "\n")
	}

	if sub := subcommandsHelp(spec); sub != "" {
		builder.WriteString("\n" + header("Subcommands:") + "\n")
		builder.WriteString(sub)
	}

	required := spec.Required()
	if len(spec.Positionals) > 0 {
		builder.WriteString("\n" + header("Arguments:") + "\n")
		builder.WriteString(argsHelp(spec, required, long))
	}

	if spec.HasOptions() {
		builder.WriteString("\n" + header("Options:") + "\n")
		builder.WriteString(optionsHelp(spec, required, long))
	}

	return builder.String()
}

// === HELPERS ===

type helpLine struct{ left, desc string }

// align pads every left column to the widest entry so descriptions line up.
func align(lines []helpLine) string {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l.left))
	}
	var builder strings.Builder
	for _, l := range lines {
		padding := strings.Repeat(" ", maxLen-len(l.left))
		builder.WriteString(strings.TrimRight(fmt.Sprintf("%s%s  %s", l.left, padding, l.desc), " ") + "\n")
	}
	return builder.String()
}

func subcommandsHelp(spec *model.CommandSpec) string {
	var lines []helpLine
	for _, s := range spec.Subcommands {
		lines = append(lines, helpLine{"  " + s.Name, s.Desc})
	}
	if len(lines) > 0 && spec.HelpAsSubcommand() {
		lines = append(lines, helpLine{"  help", "Show help for a specific command"})
	}
	if len(lines) == 0 {
		return ""
	}
	return align(lines)
}

func argsHelp(spec *model.CommandSpec, required []*model.ArgSpec, long bool) string {
	var lines []helpLine
	for _, arg := range spec.Positionals {
		lines = append(lines, helpLine{"  " + positionalHint(arg), describe(arg, slices.Contains(required, arg), long)})
	}
	return align(lines)
}

func optionsHelp(spec *model.CommandSpec, required []*model.ArgSpec, long bool) string {
	var lines []helpLine

	if spec.HasVersion {
		flag := "  --version"
		if spec.VersionShort {
			flag = "  -v, --version"
		}
		lines = append(lines, helpLine{flag, "Show version information"})
	}
	if spec.HelpAsFlag() {
		flag := "  --help"
		if spec.HelpShort {
			flag = "  -h, --help"
		}
		lines = append(lines, helpLine{flag, "Show this help message"})
	}

	for _, arg := range spec.Options {
		if arg.Short == "" && arg.Long == "" {
			continue
		}
		hint := typeHint(arg)
		var flag string
		switch {
		case arg.Short != "" && arg.Long != "":
			flag = fmt.Sprintf("  -%s, --%s %s", arg.Short, arg.Long, hint)
		case arg.Short != "":
			flag = fmt.Sprintf("  -%s %s", arg.Short, hint)
		default:
			flag = fmt.Sprintf("  --%s %s", arg.Long, hint)
		}
		lines = append(lines, helpLine{flag, describe(arg, slices.Contains(required, arg), long)})
	}

	return align(lines)
}

func typeHint(arg *model.ArgSpec) string {
	switch {
	case arg.Type.IsMap():
		return "[KEY=VALUE...]"
	case arg.Type.IsMultiValue():
		return fmt.Sprintf("[%s...]", arg.Placeholder())
	}
	return fmt.Sprintf("[%s]", arg.Placeholder())
}

func positionalHint(arg *model.ArgSpec) string {
	if arg.Type.IsMultiValue() {
		return fmt.Sprintf("[%s...]", arg.Placeholder())
	}
	return fmt.Sprintf("[%s]", arg.Placeholder())
}

// describe returns the description column for arg, including the required marker, enum
// choices and, in the long form, defaults and environment variables.
func describe(arg *model.ArgSpec, required, long bool) string {
	parts := []string{arg.Desc}
	if required {
		parts = append(parts, "(required)")
	}
	if names := enumChoices(arg.Type); len(names) > 0 {
		parts = append(parts, fmt.Sprintf("(one of: %s)", strings.Join(names, ", ")))
	}
	if long {
		if arg.Default != "" {
			parts = append(parts, fmt.Sprintf("[default: %s]", arg.Default))
		}
		if arg.Env != "" {
			parts = append(parts, fmt.Sprintf("[env: %s]", arg.Env))
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func enumChoices(info *model.RuntimeTypeInfo) []string {
	if info.IsEnum() {
		return info.EnumConstantNames()
	}
	if info.IsCollection() || info.IsArray() {
		return model.TypeInfoOf(info.Type().Elem()).EnumConstantNames()
	}
	return nil
}
