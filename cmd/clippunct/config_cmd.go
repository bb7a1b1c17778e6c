package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-clippunct/internal/config"
	"github.com/alnah/go-clippunct/internal/fileutil"
	"github.com/alnah/go-clippunct/internal/yamlutil"
)

// Sentinel errors for the config command.
var (
	ErrConfigExists      = errors.New("config file already exists")
	ErrUnknownSubcommand = errors.New("unknown subcommand")
)

// defaultConfigFile is written by 'config init' when no path is given.
const defaultConfigFile = "clippunct.yaml"

// runConfigCmd dispatches the config subcommands.
func runConfigCmd(args []string, env *Environment) error {
	if len(args) == 0 {
		printConfigUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "init":
		return runConfigInit(args[1:], env)
	case "show":
		return runConfigShow(args[1:], env)
	default:
		return fmt.Errorf("%w: config %s", ErrUnknownSubcommand, args[0])
	}
}

// runConfigInit writes the commented default config file.
func runConfigInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	force := fs.BoolP("force", "f", false, "overwrite an existing file")
	fs.Usage = func() { printConfigUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := defaultConfigFile
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if fileutil.FileExists(path) && !*force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(path, config.DefaultYAML(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}

// runConfigShow prints the effective configuration as YAML.
func runConfigShow(args []string, env *Environment) error {
	fs := flag.NewFlagSet("config show", flag.ContinueOnError)
	var common commonFlags
	addCommonFlags(fs, &common)
	fs.Usage = func() { printConfigUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(common, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yamlutil.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
