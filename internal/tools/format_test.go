// ABOUTME: Tests for tool result formatters
// ABOUTME: Verifies display shaping for each tool's output

package tools

import (
	"strings"
	"testing"
)

func TestFormatSearch(t *testing.T) {
	got := FormatSearch(&SearchResult{Response: "  the answer \n"})
	if got != "the answer" {
		t.Errorf("FormatSearch() = %q, want trimmed response", got)
	}
}

func TestFormatCode(t *testing.T) {
	res := &CodeResult{
		OriginalCode: "def f(): pass\n",
		ModifiedCode: "def f(): return 1\n",
	}
	got := FormatCode("Optimize Performance", res)

	for _, want := range []string{"## Optimize Performance", "### Original", "### Modified", "def f(): pass", "def f(): return 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCode() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "### Converted") {
		t.Error("FormatCode() should omit empty sections")
	}
}

func TestFormatCode_Converted(t *testing.T) {
	got := FormatCode("Convert Language", &CodeResult{ConvertedCode: "fn f() {}"})
	if !strings.Contains(got, "### Converted") || !strings.Contains(got, "fn f() {}") {
		t.Errorf("FormatCode() missing converted section:\n%s", got)
	}
}

func TestFormatImages(t *testing.T) {
	order := []string{"https://example.com/a.png", "https://example.com/b.png"}
	summaries := map[string]string{
		order[0]: "a latency chart",
		order[1]: "a deployment diagram",
	}
	got := FormatImages(summaries, order)

	if !strings.Contains(got, "a latency chart") || !strings.Contains(got, "a deployment diagram") {
		t.Errorf("FormatImages() missing summaries:\n%s", got)
	}
	// Order preserved
	if strings.Index(got, "a.png") > strings.Index(got, "b.png") {
		t.Errorf("FormatImages() lost input order:\n%s", got)
	}
}

func TestFormatImages_Empty(t *testing.T) {
	got := FormatImages(nil, nil)
	if got != "No images found on this page." {
		t.Errorf("FormatImages() = %q", got)
	}
}

func TestFormatVideo(t *testing.T) {
	res := &VideoSummary{
		Summary:    "quarterly recap",
		Quotes:     []string{"we shipped it"},
		Timestamps: []string{"01:23 - launch demo"},
		QA:         "Q: when? A: now",
	}
	got := FormatVideo(res)

	for _, want := range []string{"quarterly recap", "Key quotes:", `"we shipped it"`, "Timestamps:", "01:23 - launch demo", "Q&A:"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatVideo() missing %q:\n%s", want, got)
		}
	}
}

func TestFormatVideo_SummaryOnly(t *testing.T) {
	got := FormatVideo(&VideoSummary{Summary: "short recap"})
	if got != "short recap" {
		t.Errorf("FormatVideo() = %q, want bare summary", got)
	}
}

func TestFormatImpact(t *testing.T) {
	res := &ImpactReport{
		LinesAdded:       12,
		LinesRemoved:     4,
		FilesChanged:     2,
		PercentageChange: 8.5,
		RiskLevel:        "medium",
		RiskScore:        4.2,
		Diff:             "+new line\n-old line",
		Analysis:         "touches the auth path",
	}
	got := FormatImpact(res)

	for _, want := range []string{"Lines added: 12", "Lines removed: 4", "Files changed: 2", "Change: 8.5%", "Risk: medium (4.2)", "touches the auth path", "```diff"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatImpact() missing %q:\n%s", want, got)
		}
	}
}

func TestFormatTest(t *testing.T) {
	got := FormatTest(&TestReport{Strategy: " cover the edges \n"})
	if got != "cover the edges" {
		t.Errorf("FormatTest() = %q", got)
	}
}
