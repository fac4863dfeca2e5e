// ABOUTME: OpenAI-backed Executor implementing the backend tool surface
// ABOUTME: Chat completions with per-call timeout, retry and JSON parsing
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/GaneshEEE/agentmode/internal/models"
	"github.com/GaneshEEE/agentmode/internal/util"
)

const (
	// DefaultChatModel is the default model for tool calls
	DefaultChatModel = "gpt-4o-mini"
	// DefaultVisionModel is the default model for image summaries
	DefaultVisionModel = "gpt-4o-mini"
)

// ClientConfig holds configuration for the OpenAI executor
type ClientConfig struct {
	APIKey      string
	ChatModel   string
	VisionModel string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
}

// OpenAIExecutor implements Executor against the OpenAI API. It stands in
// for the original backend tool endpoints, so prompts carry the space and
// page identifiers the backend would have resolved itself.
type OpenAIExecutor struct {
	client      *openai.Client
	chatModel   string
	visionModel string
	timeout     time.Duration
	maxRetries  int
	retryDelay  time.Duration
}

// NewOpenAIExecutor creates an executor with the given configuration
func NewOpenAIExecutor(cfg *ClientConfig) (*OpenAIExecutor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	visionModel := cfg.VisionModel
	if visionModel == "" {
		visionModel = DefaultVisionModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIExecutor{
		client:      openai.NewClient(cfg.APIKey),
		chatModel:   chatModel,
		visionModel: visionModel,
		timeout:     timeout,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
	}, nil
}

// ContentType classifies a page from its title. Pure heuristic, so the
// lookup itself never fails.
func (e *OpenAIExecutor) ContentType(ctx context.Context, space, page string) (models.ContentType, error) {
	return DetectContentType(page), nil
}

// chat runs one completion with retry and per-call timeout
func (e *OpenAIExecutor) chat(ctx context.Context, model, systemPrompt, userPrompt string, temperature float32, jsonMode bool) (string, error) {
	var content string
	err := util.Do(ctx, e.maxRetries, e.retryDelay, func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		req := openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: temperature,
		}
		if jsonMode {
			req.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		}

		resp, err := e.client.CreateChatCompletion(callCtx, req)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no completion choices returned")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	return content, err
}

// chatJSON runs a JSON-mode completion and unmarshals into out. Parse
// failures count as attempt failures and are retried.
func (e *OpenAIExecutor) chatJSON(ctx context.Context, systemPrompt, userPrompt string, out interface{}) error {
	return util.Do(ctx, e.maxRetries, e.retryDelay, func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		resp, err := e.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: e.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: 0.2,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no completion choices returned")
		}
		if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		return nil
	})
}

// Search answers a query against one or more pages of a space
func (e *OpenAIExecutor) Search(ctx context.Context, space string, pages []string, query string) (*SearchResult, error) {
	systemPrompt := `You are an AI powered search assistant for a documentation space.
Answer the user's query against the named pages, concisely and factually.`

	userPrompt := fmt.Sprintf("Space: %s\nPages: %s\n\nQuery: %s",
		space, strings.Join(pages, ", "), query)

	content, err := e.chat(ctx, e.chatModel, systemPrompt, userPrompt, 0.3, false)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return &SearchResult{Response: content}, nil
}

// CodeAssistant applies an instruction to a code page. An empty
// instruction primes the call and fetches the original code only.
func (e *OpenAIExecutor) CodeAssistant(ctx context.Context, space, page, instruction string) (*CodeResult, error) {
	if strings.TrimSpace(instruction) == "" {
		systemPrompt := `You are a code assistant. Return the current source code of the named page verbatim, with no commentary.`
		userPrompt := fmt.Sprintf("Space: %s\nPage: %s", space, page)

		content, err := e.chat(ctx, e.chatModel, systemPrompt, userPrompt, 0.0, false)
		if err != nil {
			return nil, fmt.Errorf("code fetch failed: %w", err)
		}
		return &CodeResult{OriginalCode: stripCodeFence(content)}, nil
	}

	systemPrompt := `You are a code assistant. Apply the requested change to the code on the named page.
Return only the resulting code, with no commentary.`
	userPrompt := fmt.Sprintf("Space: %s\nPage: %s\n\n%s", space, page, instruction)

	content, err := e.chat(ctx, e.chatModel, systemPrompt, userPrompt, 0.1, false)
	if err != nil {
		return nil, fmt.Errorf("code assistant failed: %w", err)
	}

	code := stripCodeFence(content)
	if strings.HasPrefix(instruction, "Convert Language") {
		return &CodeResult{ConvertedCode: code}, nil
	}
	return &CodeResult{ModifiedCode: code}, nil
}

// GetImages lists the image URLs attached to a page
func (e *OpenAIExecutor) GetImages(ctx context.Context, space, page string) (*ImageList, error) {
	systemPrompt := `You list the images attached to a documentation page.
Return ONLY a JSON object: {"images": ["url", ...]}. Use an empty array when there are none.`
	userPrompt := fmt.Sprintf("Space: %s\nPage: %s", space, page)

	var result ImageList
	if err := e.chatJSON(ctx, systemPrompt, userPrompt, &result); err != nil {
		return nil, fmt.Errorf("image listing failed: %w", err)
	}
	return &result, nil
}

// ImageSummary summarizes one image with the vision model
func (e *OpenAIExecutor) ImageSummary(ctx context.Context, space, page, imageURL string) (*ImageSummaryResult, error) {
	var content string
	err := util.Do(ctx, e.maxRetries, e.retryDelay, func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		resp, err := e.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: e.visionModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: fmt.Sprintf("Summarize this image from page %q in space %q. Describe charts and diagrams in terms of what they show.", page, space),
						},
						{
							Type:     openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
						},
					},
				},
			},
			Temperature: 0.3,
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no completion choices returned")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("image summary failed: %w", err)
	}
	return &ImageSummaryResult{Summary: content}, nil
}

// VideoSummarizer produces a structured summary of a video page
func (e *OpenAIExecutor) VideoSummarizer(ctx context.Context, space, page string) (*VideoSummary, error) {
	systemPrompt := `You summarize video content from its transcript.
Return ONLY a JSON object:
{"summary": "...", "quotes": ["..."], "timestamps": ["mm:ss - what happens"], "qa": "likely questions and answers"}`
	userPrompt := fmt.Sprintf("Space: %s\nVideo page: %s", space, page)

	var result VideoSummary
	if err := e.chatJSON(ctx, systemPrompt, userPrompt, &result); err != nil {
		return nil, fmt.Errorf("video summarizer failed: %w", err)
	}
	return &result, nil
}

// ImpactAnalyzer compares two page versions and scores the change
func (e *OpenAIExecutor) ImpactAnalyzer(ctx context.Context, space, oldPage, newPage, question string) (*ImpactReport, error) {
	systemPrompt := `You are a change impact analyzer. Compare the old and new pages.
Return ONLY a JSON object:
{"lines_added": 0, "lines_removed": 0, "files_changed": 0, "percentage_change": 0.0,
 "risk_level": "low|medium|high", "risk_score": 0.0, "diff": "unified diff", "impact_analysis": "..."}`
	userPrompt := fmt.Sprintf("Space: %s\nOld page: %s\nNew page: %s\n\nQuestion: %s",
		space, oldPage, newPage, question)

	var result ImpactReport
	if err := e.chatJSON(ctx, systemPrompt, userPrompt, &result); err != nil {
		return nil, fmt.Errorf("impact analyzer failed: %w", err)
	}
	return &result, nil
}

// TestSupport derives a test strategy from a code page and a test input page
func (e *OpenAIExecutor) TestSupport(ctx context.Context, space, codePage, testInputPage, question string) (*TestReport, error) {
	systemPrompt := `You are a QA strategist. Given a code page and a test-input page, propose a concrete test strategy: cases, edge conditions, and priorities.`
	userPrompt := fmt.Sprintf("Space: %s\nCode page: %s\nTest input page: %s\n\nQuestion: %s",
		space, codePage, testInputPage, question)

	content, err := e.chat(ctx, e.chatModel, systemPrompt, userPrompt, 0.3, false)
	if err != nil {
		return nil, fmt.Errorf("test support failed: %w", err)
	}
	return &TestReport{Strategy: content}, nil
}

// stripCodeFence removes a wrapping markdown code fence if present
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	// Drop the opening fence line and a trailing fence line
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
