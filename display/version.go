package display

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/chriso345/clifford/v2/errors"
)

var readBuildInfo = debug.ReadBuildInfo

func BuildVersion(target any) (string, error) {
	spec, err := specOf(target)
	if err != nil {
		return "", err
	}

	if spec.Version != "" && spec.FieldVersion != "" {
		return "", errors.NewParseError("conflicting version tags: both Clifford and Version field specify a version")
	}

	version := spec.FieldVersion
	if version == "" {
		version = spec.Version
	}

	name := spec.Name
	if name != "" {
		name = name + " "
	}

	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified", nil
		}
		version = inferred
	}

	return fmt.Sprintf("%sv%s", name, normalizeVersion(version)), nil
}

// normalizeVersion drops the leading "v" of a semantic version so it is not doubled
// when rendered. Anything that is not semver is returned unchanged.
func normalizeVersion(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return strings.TrimPrefix(v.Original(), "v")
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := readBuildInfo()
	if !ok {
		return "", errors.NewParseError("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", errors.NewParseError("no version info found in build metadata")
}
