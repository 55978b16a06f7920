package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chriso345/clifford/v2"
)

type Level string

func (Level) EnumNames() []string { return []string{"debug", "info", "warn", "error"} }

type CLIArgs struct {
	clifford.Clifford `name:"app"`
	clifford.Help
	clifford.Version `version:"0.1.0"`
	clifford.Desc    `desc:"An example application demonstrating clifford features"`

	Level struct {
		Value             Level `default:"info" env:"APP_LEVEL"`
		clifford.Clifford `long:"level" desc:"Log level"`
	}

	Serve struct {
		clifford.Subcommand `name:"server"`
		clifford.Help
		clifford.Desc `desc:"Start the server"`

		Port struct {
			Value             int `default:"8080" validate:"min=1,max=65535"`
			clifford.Clifford `long:"port"`
			clifford.Desc     `desc:"Port to run the server on"`
		}

		Timeout struct {
			Value             time.Duration `default:"30s"`
			clifford.Clifford `long:"timeout" desc:"Request timeout"`
		}

		Tags struct {
			Value             []string `split:","`
			clifford.Clifford `short:"t" long:"tag" desc:"Tags to attach"`
		}

		Labels struct {
			Value             map[string]string
			clifford.Clifford `short:"l" long:"label" desc:"Labels as key=value"`
		}

		Verbose struct {
			Value             bool
			clifford.Clifford `short:"V" long:"verbose" desc:"Enable verbose output"`
		}
	}
}

func main() {
	args := &CLIArgs{}

	if os.Getenv("APP_TRACE") != "" {
		clifford.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := clifford.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed Arguments: %+v\n", args)
}
