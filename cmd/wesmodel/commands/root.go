// Package commands implements the wesmodel command tree.
package commands

import (
	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/system"
	_ "github.com/speakeasy-api/wes/wes"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the wesmodel command tree. Documents are read from
// and written to fsys; without --config a wesmodel.yaml in configDir is used.
func NewRootCommand(fsys system.WritableVirtualFS, configDir string) *cobra.Command {
	a := &app{fsys: fsys}

	rootCmd := &cobra.Command{
		Use:   "wesmodel",
		Short: "Inspect, normalize and validate Workflow Execution Service documents",
		Long: `A toolkit for the request and response bodies of the GA4GH Workflow Execution Service API.

This CLI provides tools for:
- Listing the registered models and their fields
- Normalizing documents through a model (unknown keys dropped, field order fixed)
- Validating documents against the JSON Schema derived from a model
- Printing the JSON Schema of a model
- Looking up values with JSON pointers and JSONPath queries
- Fingerprinting normalized documents

Documents may be JSON or YAML. Use - or omit the file to read standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd, configDir)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default is wesmodel.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().String(config.LanguageKey, "en", "language of validation messages")

	apply(rootCmd, a)

	return rootCmd
}

// apply adds the model commands to rootCmd.
func apply(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(newTypesCommand(a))
	rootCmd.AddCommand(newDecodeCommand(a))
	rootCmd.AddCommand(newValidateCommand(a))
	rootCmd.AddCommand(newSchemaCommand(a))
	rootCmd.AddCommand(newGetCommand(a))
	rootCmd.AddCommand(newQueryCommand(a))
	rootCmd.AddCommand(newFingerprintCommand(a))
}
