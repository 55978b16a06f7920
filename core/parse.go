package core

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/chriso345/clifford/v2/display"
	"github.com/chriso345/clifford/v2/errors"
	"github.com/chriso345/clifford/v2/internal/common"
	"github.com/chriso345/clifford/v2/model"
)

var osExit = os.Exit // Mockable for testing

// scanned is the result of walking one command's share of argv.
type scanned struct {
	values      map[*model.ArgSpec][]string
	positionals []string
	help        string // "short" or "long" when -h or --help was given
	version     bool
	command     string   // subcommand (or "help") that ended the scan
	rest        []string // tokens after command
}

// scan splits args into option values and positionals for cmd. Scanning stops at the
// first positional that names a subcommand so the remainder can be handed to it.
func scan(cmd *model.CommandSpec, args []string) (*scanned, error) {
	s := &scanned{values: map[*model.ArgSpec][]string{}}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if !isFlag(arg) {
			if len(s.positionals) == 0 && (cmd.Subcommand(arg) != nil || arg == "help" && cmd.HelpAsSubcommand()) {
				s.command = arg
				s.rest = args[i+1:]
				return s, nil
			}
			s.positionals = append(s.positionals, arg)
			continue
		}

		name, attached, hasAttached := strings.Cut(arg, "=")
		opt := cmd.Option(name)
		if opt == nil {
			switch {
			case name == "--help" && cmd.HelpAsFlag():
				s.help = "long"
			case name == "-h" && cmd.HelpAsFlag() && cmd.HelpShort:
				s.help = "short"
			case name == "--version" && cmd.HasVersion,
				name == "-v" && cmd.HasVersion && cmd.VersionShort:
				s.version = true
			default:
				return nil, errors.NewUnknownFlag(name)
			}
			continue
		}

		switch {
		case hasAttached:
			s.values[opt] = append(s.values[opt], attached)
		case opt.IsBool():
			value := "true"
			if i+1 < len(args) {
				if isBoolLiteral(args[i+1]) {
					value = args[i+1]
					i++
				}
			}
			s.values[opt] = append(s.values[opt], value)
		case i+1 < len(args) && !isFlag(args[i+1]):
			s.values[opt] = append(s.values[opt], args[i+1])
			i++ // skip the value
		default:
			return nil, errors.NewParseError(fmt.Sprintf("flag %s requires a value", name))
		}
	}
	return s, nil
}

// isBoolLiteral reports whether a token following a bool flag is its value. Only
// true/false count, so positionals such as 1 or t are left alone.
func isBoolLiteral(arg string) bool {
	switch arg {
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return true
	}
	return false
}

// isFlag reports whether a token looks like a flag. Negative numbers are values.
func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(arg, 64); err == nil {
		return false
	}
	return true
}

// frame carries what a subcommand inherits from the commands above it.
type frame struct {
	usage    string // full command path used in help, e.g. "app remote"
	helpMode string
}

// parseWithArgs is the recursive parser that supports subcommand dispatch.
func parseWithArgs(target any, args []string, parent *frame) error {
	if !common.IsStructPtr(target) {
		return errors.NewParseError("invalid type: must pass pointer to struct")
	}
	built, err := model.Build(common.GetStructType(target))
	if err != nil {
		return err
	}

	// Subcommands without their own Help marker inherit the parent's help mode.
	cmd := built
	usage := cmd.Name
	if parent != nil {
		usage = parent.usage
		cmd = cmd.Inherit(parent.helpMode)
	}
	if usage == "" {
		usage = "<app>"
	}

	s, err := scan(cmd, args)
	if err != nil {
		return err
	}

	if s.help != "" {
		return printHelp(cmd, usage, s.help == "long")
	}
	if s.version {
		version, err := display.BuildVersion(target)
		if err != nil {
			return err
		}
		fmt.Println(version)
		osExit(0)
		return nil
	}

	if s.command == "help" {
		return helpCommand(target, cmd, usage, s.rest)
	}

	if err := bindAll(target, cmd, s); err != nil {
		return err
	}

	if s.command != "" {
		sub := cmd.Subcommand(s.command)
		subVal := reflect.ValueOf(target).Elem().Field(sub.Index)
		markDispatched(subVal)
		logger.Debug("dispatching subcommand", "command", usage, "subcommand", sub.Name)
		return parseWithArgs(subVal.Addr().Interface(), s.rest, &frame{
			usage:    usage + " " + sub.Name,
			helpMode: cmd.HelpMode,
		})
	}
	return nil
}

// helpCommand handles the `help [subcommand]` form.
func helpCommand(target any, cmd *model.CommandSpec, usage string, rest []string) error {
	var name string
	for _, a := range rest {
		if !isFlag(a) {
			name = a
			break
		}
	}
	if name == "" {
		return printHelp(cmd, usage, false)
	}

	sub := cmd.Subcommand(name)
	if sub == nil {
		return errors.NewUnknownSubcommand(name, closestMatch(name, cmd.SubcommandNames()))
	}
	subSpec, err := model.Build(reflect.TypeOf(target).Elem().Field(sub.Index).Type)
	if err != nil {
		return err
	}
	return printHelp(subSpec.Inherit(cmd.HelpMode), usage+" "+sub.Name, false)
}

func printHelp(cmd *model.CommandSpec, usage string, long bool) error {
	fmt.Println(display.RenderSpec(cmd, usage, long))
	osExit(0)
	return nil
}

// markDispatched sets the embedded Subcommand marker of a subcommand struct to true.
func markDispatched(subVal reflect.Value) {
	subType := subVal.Type()
	for j := range subType.NumField() {
		nf := subType.Field(j)
		if nf.Anonymous && nf.Type.Name() == "Subcommand" {
			f := subVal.Field(j)
			if f.CanSet() && f.Kind() == reflect.Bool {
				f.SetBool(true)
			}
			return
		}
	}
}

// bindAll assigns positionals, then resolves every argument from the command line,
// its environment variable or its default, in that order.
func bindAll(target any, cmd *model.CommandSpec, s *scanned) error {
	root := reflect.ValueOf(target).Elem()

	positionals := s.positionals
	for _, p := range cmd.Positionals {
		if len(positionals) == 0 {
			break
		}
		if p.Type.IsMultiValue() {
			s.values[p] = positionals
			positionals = nil
			break
		}
		s.values[p] = positionals[:1]
		positionals = positionals[1:]
	}
	if len(positionals) > 0 {
		if len(cmd.Subcommands) > 0 && len(cmd.Positionals) == 0 {
			first := positionals[0]
			return errors.NewUnknownSubcommand(first, closestMatch(first, cmd.SubcommandNames()))
		}
		return errors.NewParseError(fmt.Sprintf("unexpected argument: %s", positionals[0]))
	}

	args := cmd.Args()
	for _, arg := range args {
		values, source := s.values[arg], "command line"
		if len(values) == 0 && arg.Env != "" {
			if v, ok := os.LookupEnv(arg.Env); ok && v != "" {
				values, source = []string{v}, "env"
			}
		}
		if len(values) == 0 && arg.Default != "" {
			values, source = []string{arg.Default}, "default"
		}
		if len(values) == 0 {
			if arg.Required {
				return errors.NewMissingArg(arg.Name)
			}
			continue
		}

		if err := assign(root, arg, values); err != nil {
			return err
		}
		logger.Debug("bound argument", "field", arg.Name, "kind", arg.Type.Kind(), "source", source)
	}

	for _, arg := range args {
		if err := check(root, arg); err != nil {
			return err
		}
	}
	return nil
}

// closestMatch returns the candidate with the smallest edit distance to target, or
// empty string if none are within a reasonable threshold.
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	low := strings.ToLower(target)
	// Prefer prefix matches (case-insensitive)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), low) {
			return c
		}
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if abs(len(lc)-len(low)) > 3 {
			continue
		}
		if isTransposition(low, lc) {
			return c
		}
		d := levenshtein(low, lc)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist >= 0 && bestDist <= max(2, len(low)/3) {
		return best
	}
	return ""
}

// isTransposition checks for one-character transposition (Damerau case)
func isTransposition(a, b string) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var diff []int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff = append(diff, i)
			if len(diff) > 2 {
				return false
			}
		}
	}
	if len(diff) != 2 {
		return false
	}
	return a[diff[0]] == b[diff[1]] && a[diff[1]] == b[diff[0]]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// levenshtein computes the Levenshtein edit distance between a and b.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}
	return prev[lb]
}

// Parse parses os.Args into target.
func Parse(target any) error {
	return ParseArgs(target, os.Args[1:])
}

// ParseArgs parses args into target. Everything up to and including the first "--" is
// dropped, which lets `go run . -- args` style invocations pass through.
func ParseArgs(target any, args []string) error {
	if i := common.ArgsIndexOf(args, "--"); i >= 0 {
		args = args[i+1:]
	}
	return parseWithArgs(target, args, nil)
}
