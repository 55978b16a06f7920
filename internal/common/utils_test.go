package common

import (
	"reflect"
	"testing"

	"github.com/chriso345/gore/assert"
)

type (
	ShortTag   struct{}
	LongTag    struct{}
	Required   struct{}
	Desc       struct{}
	Clifford   struct{}
	Subcommand bool
)

func TestGetTagsFromEmbedded_Markers(t *testing.T) {
	type group struct {
		Value string `default:"x" env:"APP_X"`
		ShortTag
		LongTag
		Required
		Desc     `desc:"Some value"`
		MaxItems int `short:"n" long:"max-items"`
	}

	tags := GetTagsFromEmbedded(reflect.TypeFor[group](), "OutputDir")
	assert.Equal(t, tags["short"], "o")
	assert.Equal(t, tags["long"], "output-dir")
	assert.Equal(t, tags["required"], "true")
	assert.Equal(t, tags["desc"], "Some value")
	assert.Equal(t, tags["default"], "x")
	assert.Equal(t, tags["env"], "APP_X")
}

func TestGetTagsFromEmbedded_Subcommand(t *testing.T) {
	type sub struct {
		Subcommand `name:"serve" desc:"Start the server"`
	}

	tags := GetTagsFromEmbedded(reflect.TypeFor[sub](), "Serve")
	assert.Equal(t, tags["subcmd"], "true")
	assert.Equal(t, tags["name"], "serve")
	assert.Equal(t, tags["desc"], "Start the server")
}

func TestGetTagsFromEmbedded_CliffordLiteral(t *testing.T) {
	type group struct {
		Value    bool
		Clifford `short:"v" long:"verbose" desc:"Verbose output"`
	}

	tags := GetTagsFromEmbedded(reflect.TypeFor[group](), "Verbose")
	assert.Equal(t, tags["short"], "v")
	assert.Equal(t, tags["long"], "verbose")
	assert.Equal(t, tags["desc"], "Verbose output")
}

func TestKebabCase(t *testing.T) {
	assert.Equal(t, KebabCase("Name"), "name")
	assert.Equal(t, KebabCase("MaxItems"), "max-items")
	assert.Equal(t, KebabCase("DryRun"), "dry-run")
	assert.Equal(t, KebabCase("URL"), "url")
}

func TestIsStructPtr(t *testing.T) {
	s := struct{}{}
	assert.True(t, IsStructPtr(&s))
	assert.Equal(t, IsStructPtr(s), false)
	assert.Equal(t, IsStructPtr(nil), false)
	n := 3
	assert.Equal(t, IsStructPtr(&n), false)
}

func TestArgsIndexOf(t *testing.T) {
	args := []string{"a", "--", "b"}
	assert.Equal(t, ArgsIndexOf(args, "--"), 1)
	assert.Equal(t, ArgsIndexOf(args, "c"), -1)
}
