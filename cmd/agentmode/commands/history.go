// ABOUTME: CLI commands to list and show recorded runs
// ABOUTME: Tabwriter table listing plus full per-run display
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/GaneshEEE/agentmode/internal/config"
	"github.com/GaneshEEE/agentmode/internal/storage"
)

var (
	historyLimit int
)

// NewHistoryCmd creates the history command with its show subcommand
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded Agent Mode runs",
		Long: `List recorded Agent Mode runs, newest first.

Examples:
  agentmode history
  agentmode history --limit 5
  agentmode history show run_20260831_abc12345`,
		RunE: runHistoryList,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to list")

	cmd.AddCommand(&cobra.Command{
		Use:   "show [run-id]",
		Short: "Show one recorded run in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	})

	return cmd
}

func openStorage() (*storage.Storage, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(historyLimit, "limit"); err != nil {
		return err
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.ListEntries(historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No runs recorded\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RUN ID\tGOAL\tSPACE\tPAGES\tRESULT\tCREATED\n")
	fmt.Fprintf(w, "------\t----\t-----\t-----\t------\t-------\n")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d ok / %d failed\t%s\n",
			entry.ID,
			truncate(entry.Goal, 40),
			entry.Space,
			len(entry.Pages),
			entry.Succeeded,
			entry.Failed,
			formatTime(entry.CreatedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d run(s)\n", len(entries))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.GetEntry(args[0])
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:     %s\n", entry.ID)
	fmt.Fprintf(out, "Goal:    %s\n", entry.Goal)
	fmt.Fprintf(out, "Space:   %s\n", entry.Space)
	fmt.Fprintf(out, "Created: %s\n", formatTime(entry.CreatedAt))
	fmt.Fprintf(out, "Result:  %d succeeded, %d failed\n\n", entry.Succeeded, entry.Failed)

	fmt.Fprintf(out, "Pages:\n")
	for _, page := range entry.Pages {
		fmt.Fprintf(out, "  - %s (%s)\n", page.Title, page.ContentType)
	}

	for _, tab := range entry.Tabs {
		fmt.Fprintf(out, "\n=== %s - %s ===\n%s\n", tab.PageTitle, tab.Tool.Display(), tab.Content)
	}

	if entry.Reasoning != "" && !quiet {
		fmt.Fprintf(out, "\n%s\n", entry.Reasoning)
	}
	return nil
}
