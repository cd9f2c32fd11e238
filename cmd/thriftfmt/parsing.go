package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thriftfmt/internal/diagfmt"
	"thriftfmt/internal/driver"
)

func newParseCmd() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse [flags] file.thrift",
		Short: "Parse a Thrift IDL file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	parseCmd.Flags().String("format", "tree", "output format (tree|json|sexpr)")
	parseCmd.Flags().Bool("patched", false, "apply the formatter's tree rewrites before printing")
	addFormatFlags(parseCmd)
	return parseCmd
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	patched, err := cmd.Flags().GetBool("patched")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		if err := printDiagnostics(cmd, result.Bag, result.FileSet, ""); err != nil {
			return err
		}
	}
	if !result.OK() {
		// дерево с ошибками не печатаем: оно неполное
		return errReported
	}

	if patched {
		opts, _, _, err := resolveFormatOptions(cmd, args)
		if err != nil {
			return err
		}
		if err := result.Patch(opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tree":
		return diagfmt.FormatTreePretty(out, result.Tree, result.Tree.Root)
	case "json":
		return diagfmt.FormatTreeJSON(out, result.Tree, result.Tree.Root)
	case "sexpr":
		_, err := fmt.Fprintln(out, result.Tree.Sexpr(result.Tree.Root))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
