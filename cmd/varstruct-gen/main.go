package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/alexhholmes/varstruct/internal/analyzer"
	"github.com/alexhholmes/varstruct/internal/codegen"
	"github.com/alexhholmes/varstruct/internal/parser"
)

func main() {
	app := &cli.App{
		Name:      "varstruct-gen",
		Usage:     "generate typed varstruct accessors from @varstruct declarations",
		ArgsUsage: "<file.go> [file.go ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pkg",
				Usage:    "package name for the generated file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file (default: stdout)",
			},
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "register a fixed-size internal type as name=size (repeatable)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no input files")
	}

	log := zap.NewNop()
	if c.Bool("verbose") {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer log.Sync()
	codegen.SetLogger(log)

	registry, err := buildRegistry(c.StringSlice("type"))
	if err != nil {
		return err
	}

	var specs []*analyzer.StructSpec
	for _, filename := range c.Args().Slice() {
		decls, err := parser.ParseFile(filename)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		log.Debug("parsed file",
			zap.String("file", filename),
			zap.Int("declarations", len(decls)))

		for _, decl := range decls {
			spec, err := analyzer.Analyze(decl, registry)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			specs = append(specs, spec)
		}
	}

	code, err := codegen.GenerateFile(c.String("pkg"), specs, registry)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		fmt.Print(code)
		return nil
	}
	if err := os.WriteFile(out, []byte(code), 0o644); err != nil {
		return err
	}
	log.Info("wrote generated file",
		zap.String("out", out),
		zap.Int("structs", len(specs)))
	return nil
}

// buildRegistry parses repeated --type name=size flags.
func buildRegistry(entries []string) (*analyzer.TypeRegistry, error) {
	registry := analyzer.NewTypeRegistry()
	for _, entry := range entries {
		name, sizeStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --type %q (want name=size)", entry)
		}
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid --type size in %q", entry)
		}
		registry.Register(name, size)
	}
	return registry, nil
}
