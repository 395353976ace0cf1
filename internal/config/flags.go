// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the command-line flags in args (without the program name).
//
// Flags:
//
//	-e/-env environment name
//	-d/-dir profiles directory
//	-o/-output output format (json or yaml)
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("rendr-config", flag.ContinueOnError)
	fs.StringVar(&cfg.Environment, "e", "", "Environment name (e.g. production)")
	fs.StringVar(&cfg.Environment, "env", "", "Environment name (alias)")
	fs.StringVar(&cfg.ProfilesDir, "d", "", "Profiles directory")
	fs.StringVar(&cfg.ProfilesDir, "dir", "", "Profiles directory (alias)")
	fs.StringVar(&cfg.Output, "o", "", "Output format of the printed settings: json or yaml")
	fs.StringVar(&cfg.Output, "output", "", "Output format (alias)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	return &cfg, nil
}
