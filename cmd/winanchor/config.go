package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winanchor/internal/config"
)

func runConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(stderr, "Usage: winanchor config <print|validate|path>")
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	switch args[0] {
	case "path":
		path, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, path)
		return 0

	case "validate":
		res, err := config.LoadWithSources()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if res.File == "" {
			fmt.Fprintln(stdout, "OK (no config file, using defaults)")
			return 0
		}
		fmt.Fprintf(stdout, "OK (%s)\n", res.File)
		return 0

	case "print":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(stderr, "failed to marshal config:", err)
			return 1
		}
		if _, err := stdout.Write(data); err != nil {
			fmt.Fprintln(stderr, "failed to write config:", err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}
