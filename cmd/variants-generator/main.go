// Package main provides the CLI entrypoint for variants-generator.
//
// variants-generator is a codegen tool that:
//   - Scans Go packages for //variants:generate tagged-union interfaces
//     (or reads a YAML schema description)
//   - Derives a record type with one value slot per variant
//   - Generates the constructor, accessors, and derived methods
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "variants-generator",
		Short: "Generate per-variant record types for tagged unions",
		Long: `variants-generator derives a record type with one value slot per
variant of a tagged union: plain fields for payload-free variants, keyed
containers for variants carrying a value.

Unions are declared as sealed interfaces annotated with //variants:generate,
or described in a YAML schema file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenCmd(), newCheckCmd())

	return root
}
