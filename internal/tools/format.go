// ABOUTME: Display formatters shaping tool results into history tabs
// ABOUTME: One formatter per tool; plain text with fenced code blocks
package tools

import (
	"fmt"
	"strings"
)

// FormatSearch shapes a search response for display
func FormatSearch(res *SearchResult) string {
	return strings.TrimSpace(res.Response)
}

// FormatCode shapes a code assistant response under an action heading
func FormatCode(heading string, res *CodeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", heading)
	if res.OriginalCode != "" {
		b.WriteString("\n### Original\n```\n")
		b.WriteString(strings.TrimRight(res.OriginalCode, "\n"))
		b.WriteString("\n```\n")
	}
	if res.ModifiedCode != "" {
		b.WriteString("\n### Modified\n```\n")
		b.WriteString(strings.TrimRight(res.ModifiedCode, "\n"))
		b.WriteString("\n```\n")
	}
	if res.ConvertedCode != "" {
		b.WriteString("\n### Converted\n```\n")
		b.WriteString(strings.TrimRight(res.ConvertedCode, "\n"))
		b.WriteString("\n```\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatImages shapes per-image summaries as a bulleted list
func FormatImages(summaries map[string]string, order []string) string {
	if len(order) == 0 {
		return "No images found on this page."
	}
	var b strings.Builder
	for _, url := range order {
		fmt.Fprintf(&b, "- %s\n  %s\n", url, summaries[url])
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatVideo shapes a video summary with quotes and timestamps
func FormatVideo(res *VideoSummary) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(res.Summary))
	if len(res.Quotes) > 0 {
		b.WriteString("\n\nKey quotes:\n")
		for _, q := range res.Quotes {
			fmt.Fprintf(&b, "- %q\n", q)
		}
	}
	if len(res.Timestamps) > 0 {
		b.WriteString("\nTimestamps:\n")
		for _, ts := range res.Timestamps {
			fmt.Fprintf(&b, "- %s\n", ts)
		}
	}
	if res.QA != "" {
		b.WriteString("\nQ&A:\n")
		b.WriteString(strings.TrimSpace(res.QA))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatImpact shapes an impact report: metric lines, analysis, diff fence
func FormatImpact(res *ImpactReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lines added: %d\n", res.LinesAdded)
	fmt.Fprintf(&b, "Lines removed: %d\n", res.LinesRemoved)
	fmt.Fprintf(&b, "Files changed: %d\n", res.FilesChanged)
	fmt.Fprintf(&b, "Change: %.1f%%\n", res.PercentageChange)
	fmt.Fprintf(&b, "Risk: %s (%.1f)\n", res.RiskLevel, res.RiskScore)
	if res.Analysis != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(res.Analysis))
		b.WriteString("\n")
	}
	if res.Diff != "" {
		b.WriteString("\n```diff\n")
		b.WriteString(strings.TrimRight(res.Diff, "\n"))
		b.WriteString("\n```")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatTest shapes a test strategy report
func FormatTest(res *TestReport) string {
	return strings.TrimSpace(res.Strategy)
}
