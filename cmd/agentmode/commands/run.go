// ABOUTME: CLI command to route and execute a goal across pages
// ABOUTME: Supports dry-run planning, JSON output, and history recording
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/GaneshEEE/agentmode/internal/config"
	"github.com/GaneshEEE/agentmode/internal/core"
	"github.com/GaneshEEE/agentmode/internal/models"
	"github.com/GaneshEEE/agentmode/internal/storage"
	"github.com/GaneshEEE/agentmode/internal/tools"
)

var (
	runSpace     string
	runPages     []string
	runTypes     []string
	runDryRun    bool
	runNoHistory bool
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [goal]",
		Short: "Route a goal across pages and execute the matching tools",
		Long: `Route a natural-language goal across the selected pages.

The goal is split into instructions, each instruction's tool needs are
inferred, and every page receives one (instruction, tool) assignment.
Tools run sequentially in page order; a failing tool never discards
sibling results.

Content types are detected from page titles unless --type pins them.
--type values pair with --page flags positionally.

Examples:
  agentmode run "Summarize the API docs" --space ENG --page "API Docs"
  agentmode run "Optimize auth.py and summarize Demo Video" \
    --space ENG --page auth.py --page "Demo Video"
  agentmode run "Review Spec v1 and Review Spec v2 then tell me what changed" \
    --space ENG --page "Spec v1" --page "Spec v2"
  agentmode run "fix bugs" --space ENG --page auth.py --type code --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}

	cmd.Flags().StringVar(&runSpace, "space", "", "Space key the pages belong to (required)")
	cmd.Flags().StringArrayVar(&runPages, "page", []string{}, "Page title to route (repeatable, required)")
	cmd.Flags().StringArrayVar(&runTypes, "type", []string{}, "Content type per page: text, code, image, or video")
	cmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the routing plan without dispatching any tool")
	cmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not record this run in history")
	_ = cmd.MarkFlagRequired("space")
	_ = cmd.MarkFlagRequired("page")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pages, err := buildPages(runPages, runTypes)
	if err != nil {
		return err
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return err
	}

	goal := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if runDryRun {
		// Planning needs only the title heuristic, not the API
		router := core.NewRouter(planExecutor{}, rules)
		plan, err := router.Plan(ctx, goal, runSpace, pages)
		if err != nil {
			return err
		}
		return printPlan(cmd, plan)
	}

	exec, err := tools.NewOpenAIExecutor(&tools.ClientConfig{
		APIKey:      cfg.OpenAIKey,
		ChatModel:   cfg.ChatModel,
		VisionModel: cfg.VisionModel,
		Timeout:     cfg.Timeout,
		MaxRetries:  cfg.MaxRetries,
		RetryDelay:  cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("initializing OpenAI executor: %w", err)
	}

	router := core.NewRouter(exec, rules)
	result, err := router.Route(ctx, goal, runSpace, pages)
	if err != nil {
		return err
	}

	if !runNoHistory {
		if err := saveRun(cfg, result); err != nil && !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not record history: %v\n", err)
		}
	}

	return printResult(cmd, result)
}

// buildPages pairs page titles with their pinned content types. Pages
// without a pinned type stay unresolved so the oracle classifies them.
func buildPages(titles, types []string) ([]models.Page, error) {
	if len(types) > len(titles) {
		return nil, fmt.Errorf("more --type values (%d) than --page values (%d)", len(types), len(titles))
	}

	pages := make([]models.Page, 0, len(titles))
	for i, title := range titles {
		page := models.Page{Title: title}
		if i < len(types) {
			ct := models.ContentType(strings.ToLower(types[i]))
			if !ct.IsValid() {
				return nil, fmt.Errorf("invalid content type %q (text, code, image, video)", types[i])
			}
			page.ContentType = ct
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// loadRules returns the configured rule override, or nil for the built-ins
func loadRules(cfg *config.Config) (*core.RuleSet, error) {
	if cfg.RulesFile == "" {
		return nil, nil
	}
	rules, err := core.LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("loading rules file: %w", err)
	}
	return rules, nil
}

func printPlan(cmd *cobra.Command, plan *core.Plan) error {
	out := cmd.OutOrStdout()

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(out, "%s\n", jsonData)
		return nil
	}

	if !quiet {
		fmt.Fprintf(out, "Goal: %s\n", plan.Goal)
		fmt.Fprintf(out, "Instructions:\n")
		for _, instr := range plan.Instructions {
			fmt.Fprintf(out, "  - %s\n", instr)
		}
		fmt.Fprintln(out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PAGE\tTYPE\tTOOL\tTIER\tINSTRUCTION\n")
	fmt.Fprintf(w, "----\t----\t----\t----\t-----------\n")
	for _, a := range plan.Assignments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(a.Page.Title, 30),
			a.Page.ContentType,
			a.Tool,
			a.Tier,
			truncate(a.Instruction, 40))
	}
	w.Flush()

	if len(plan.Unused) > 0 && !quiet {
		fmt.Fprintf(out, "\nUnused instructions:\n")
		for _, instr := range plan.Unused {
			fmt.Fprintf(out, "  - %s\n", instr)
		}
	}
	return nil
}

func printResult(cmd *cobra.Command, result *models.RouteResult) error {
	out := cmd.OutOrStdout()

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(out, "%s\n", jsonData)
		return nil
	}

	for _, ar := range result.Assignments {
		fmt.Fprintf(out, "=== %s - %s ===\n", ar.Assignment.Page.Title, ar.Assignment.Tool.Display())
		if ar.Failed() {
			fmt.Fprintf(out, "Error: %s\n\n", ar.Err)
			continue
		}
		fmt.Fprintf(out, "%s\n\n", ar.Output)
	}

	if result.Impact != "" {
		fmt.Fprintf(out, "=== Both pages - Impact Analyzer ===\n%s\n\n", result.Impact)
	}
	if result.TestStrategy != "" {
		fmt.Fprintf(out, "=== Both pages - Test Support Tool ===\n%s\n\n", result.TestStrategy)
	}

	if !quiet {
		fmt.Fprintf(out, "%s\n", result.Reasoning)
	}
	return nil
}

// saveRun records a completed route in the history store
func saveRun(cfg *config.Config, result *models.RouteResult) error {
	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := models.NewHistoryEntry(result.Goal, result.Space, routedPages(result), routedTabs(result))
	if err != nil {
		return err
	}
	entry.Reasoning = result.Reasoning
	entry.Succeeded = result.Succeeded
	entry.Failed = result.Failed
	return store.SaveEntry(entry)
}

func routedPages(result *models.RouteResult) []models.Page {
	pages := make([]models.Page, 0, len(result.Assignments))
	for _, ar := range result.Assignments {
		pages = append(pages, ar.Assignment.Page)
	}
	return pages
}

func routedTabs(result *models.RouteResult) []models.ResultTab {
	tabs := make([]models.ResultTab, 0, len(result.Assignments)+2)
	for _, ar := range result.Assignments {
		content := ar.Output
		if ar.Failed() {
			content = "Error: " + ar.Err
		}
		tabs = append(tabs, models.ResultTab{
			PageTitle: ar.Assignment.Page.Title,
			Tool:      ar.Assignment.Tool,
			Content:   content,
		})
	}
	if result.Impact != "" {
		tabs = append(tabs, models.ResultTab{
			PageTitle: "Both pages",
			Tool:      models.ToolImpactAnalyzer,
			Content:   result.Impact,
		})
	}
	if result.TestStrategy != "" {
		tabs = append(tabs, models.ResultTab{
			PageTitle: "Both pages",
			Tool:      models.ToolTestSupport,
			Content:   result.TestStrategy,
		})
	}
	return tabs
}
