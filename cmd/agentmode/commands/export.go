// ABOUTME: CLI command to export a recorded run to a file
// ABOUTME: Renders markdown, YAML, or JSON via the storage export layer
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaneshEEE/agentmode/internal/storage"
)

var (
	exportOut    string
	exportFormat string
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "Export a recorded run to a file",
		Long: `Export a recorded run to a file.

The output format defaults to markdown and can be inferred from the
--out extension or forced with --format.

Examples:
  agentmode export run_20260831_abc12345 --out run.md
  agentmode export run_20260831_abc12345 --out run.yaml --format yaml
  agentmode export run_20260831_abc12345 --out run.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportOut, "out", "", "Output file path (required)")
	cmd.Flags().StringVar(&exportFormat, "format", "", "Export format: markdown, yaml, or json (default: from extension)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.GetEntry(args[0])
	if err != nil {
		return err
	}

	format, err := resolveExportFormat(exportFormat, exportOut)
	if err != nil {
		return err
	}

	if err := storage.WriteFile(storage.Export(entry), exportOut, format); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s to %s (%s)\n", entry.ID, exportOut, format)
	}
	return nil
}

// resolveExportFormat picks the explicit format, falls back to the file
// extension, and defaults to markdown
func resolveExportFormat(explicit, path string) (storage.ExportFormat, error) {
	if explicit != "" {
		return storage.ParseExportFormat(explicit)
	}
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return storage.FormatYAML, nil
	case strings.HasSuffix(path, ".json"):
		return storage.FormatJSON, nil
	}
	return storage.FormatMarkdown, nil
}
