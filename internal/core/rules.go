// ABOUTME: Declarative tool-inference rule table
// ABOUTME: Ordered (pattern, tool) pairs classify instructions; YAML-overridable
package core

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/GaneshEEE/agentmode/internal/models"
)

// Rule maps an instruction pattern to the tool it requires
type Rule struct {
	Pattern *regexp.Regexp
	Tool    models.Tool
}

// RuleSet is an ordered rule table plus the content-type keyword classes
// used by the assignment override pass
type RuleSet struct {
	rules   []Rule
	classes map[models.ContentType]*regexp.Regexp
}

// Built-in content-type keyword classes. Text has no class: the override
// pass only forces media- and code-specific tools.
var defaultClasses = map[models.ContentType]*regexp.Regexp{
	models.ContentImage: regexp.MustCompile(`(?i)image|chart|diagram|visual`),
	models.ContentCode:  regexp.MustCompile(`(?i)convert language|debug|refactor|fix|bug|optimi[sz]e|performance|documentation|dead code|logging`),
	models.ContentVideo: regexp.MustCompile(`(?i)video|summarize.*video|transcribe`),
}

// DefaultRules returns the built-in inference table. Order is the
// evaluation and tie-break order; all matching rules contribute.
func DefaultRules() *RuleSet {
	return &RuleSet{
		rules: []Rule{
			{regexp.MustCompile(`(?i)video|transcribe`), models.ToolVideoSummarizer},
			{regexp.MustCompile(`(?i)image|chart|diagram|visual`), models.ToolImageInsights},
			{regexp.MustCompile(`(?i)convert language|debug|refactor|fix|bug|optimi[sz]e|performance|documentation|dead code|logging`), models.ToolCodeAssistant},
			{regexp.MustCompile(`(?i)\btext\b|summari[sz]e`), models.ToolSearch},
			{regexp.MustCompile(`(?i)impact|change|difference|\bdiff\b`), models.ToolImpactAnalyzer},
			{regexp.MustCompile(`(?i)\btest\b|\bqa\b`), models.ToolTestSupport},
		},
		classes: defaultClasses,
	}
}

// Infer returns the tools an instruction requires, in rule order,
// de-duplicated. Instructions matching nothing default to search.
func (rs *RuleSet) Infer(instruction string) []models.Tool {
	var tools []models.Tool
	seen := make(map[models.Tool]bool)
	for _, rule := range rs.rules {
		if !rule.Pattern.MatchString(instruction) {
			continue
		}
		if seen[rule.Tool] {
			continue
		}
		seen[rule.Tool] = true
		tools = append(tools, rule.Tool)
	}
	if len(tools) == 0 {
		return []models.Tool{models.ToolSearch}
	}
	return tools
}

// MatchesClass reports whether the instruction hits the keyword class
// for the given content type. Types without a class never match.
func (rs *RuleSet) MatchesClass(ct models.ContentType, instruction string) bool {
	class, ok := rs.classes[ct]
	if !ok {
		return false
	}
	return class.MatchString(instruction)
}

// ruleSpec is the YAML shape of one rule
type ruleSpec struct {
	Pattern string `yaml:"pattern"`
	Tool    string `yaml:"tool"`
}

// rulesFile is the YAML shape of a rule table override
type rulesFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

// LoadRules reads a rule table from a YAML file. The loaded table
// replaces the built-in rules; the keyword classes stay built in.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, spec := range file.Rules {
		tool := models.Tool(spec.Tool)
		if !tool.IsValid() {
			return nil, fmt.Errorf("rule %d: unknown tool %q", i, spec.Tool)
		}
		pattern, err := regexp.Compile("(?i)" + spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, Rule{Pattern: pattern, Tool: tool})
	}

	return &RuleSet{rules: rules, classes: defaultClasses}, nil
}
