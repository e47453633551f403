// Command constructive exposes the schema and typing operations on
// the command line, chiefly for poking at schema text during
// development.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dball/constructive/pkg/schema"
)

var rootCmd = &cobra.Command{
	Use:           "constructive",
	Short:         "Schema and typing tools for the constructive data layer",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var checkTypeCmd = &cobra.Command{
	Use:   "check-type <expr>",
	Short: "Parse a type expression and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		canonical, err := schema.CanonicalType(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), canonical)
		return nil
	},
}

var coerceCmd = &cobra.Command{
	Use:   "coerce <type> <json>",
	Short: "Coerce a JSON value against a declared type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		coerced, err := schema.CoerceJSON(args[0], []byte(args[1]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(coerced))
		return nil
	},
}

var validateAttrCmd = &cobra.Command{
	Use:   "validate-attr <json>",
	Short: "Validate a JSON attribute definition and print the normalized form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalized, err := schema.ValidateAttribute([]byte(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(normalized))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkTypeCmd)
	rootCmd.AddCommand(coerceCmd)
	rootCmd.AddCommand(validateAttrCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
