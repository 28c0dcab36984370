package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"variants-generator/internal/analyze"
	"variants-generator/internal/diagnostic"
	"variants-generator/internal/gen"
	"variants-generator/internal/plan"
	"variants-generator/internal/schema"
)

// options are the flags shared by gen and check.
type options struct {
	schemaFile string
	outputDir  string
	dumpSchema bool
}

func (o *options) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.schemaFile, "schema", "", "YAML schema description to generate from")
	cmd.Flags().StringVar(&o.outputDir, "output", "", "directory for generated files (default: each union's package)")
	cmd.Flags().BoolVar(&o.dumpSchema, "dump-schema", false, "dump the parsed schemas to stderr")
}

func newGenCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate record types and write them to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := generateFiles(&opts, args)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files); err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f.Path())
			}

			return nil
		},
	}

	opts.bind(cmd)

	return cmd
}

func newCheckCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Verify generated files are up to date (exit 1 on drift)",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := generateFiles(&opts, args)
			if err != nil {
				return err
			}

			drifts, err := gen.Check(files)
			if err != nil {
				return err
			}

			for _, d := range drifts {
				fmt.Fprintln(cmd.ErrOrStderr(), d)
			}

			if len(drifts) > 0 {
				return fmt.Errorf("%d generated file(s) out of date", len(drifts))
			}

			return nil
		},
	}

	opts.bind(cmd)

	return cmd
}

// generateFiles runs the full pipeline short of writing: schema acquisition,
// directive resolution, classification, planning, and emission.
func generateFiles(opts *options, patterns []string) ([]gen.GeneratedFile, error) {
	schemas, diags, err := collectSchemas(opts, patterns)
	if err != nil {
		return nil, err
	}

	if opts.dumpSchema {
		spew.Fdump(os.Stderr, schemas)
	}

	if len(schemas) == 0 {
		return nil, errors.New("no unions found: annotate an interface with //variants:generate or pass --schema")
	}

	var plans []*plan.RecordPlan

	for i := range schemas {
		p, pdiags := plan.Build(&schemas[i])
		diags.Merge(pdiags)

		if p != nil {
			plans = append(plans, p)
		}
	}

	diagnostic.NewPrinter(os.Stderr).Print(&diags)

	// Generation-time errors block output entirely: no partial files.
	if diags.HasErrors() {
		return nil, fmt.Errorf("%d schema error(s)", len(diags.Errors))
	}

	return gen.NewGenerator(gen.Config{OutputDir: opts.outputDir}).Generate(plans)
}

// collectSchemas gathers unions from the annotated-source and YAML front ends.
func collectSchemas(opts *options, patterns []string) ([]schema.UnionSchema, diagnostic.Diagnostics, error) {
	var (
		schemas []schema.UnionSchema
		diags   diagnostic.Diagnostics
	)

	if len(patterns) > 0 {
		found, scanDiags, err := analyze.NewScanner().LoadPackages(patterns...)
		if err != nil {
			return nil, diags, err
		}

		schemas = append(schemas, found...)
		diags.Merge(scanDiags)
	}

	if opts.schemaFile != "" {
		found, err := schema.LoadFile(opts.schemaFile)
		if err != nil {
			return nil, diags, err
		}

		schemas = append(schemas, found...)
	}

	return schemas, diags, nil
}
