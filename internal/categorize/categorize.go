// Package categorize produces a category plan for a set of desktop files.
// The plan comes from an OpenAI-compatible chat-completion service; any
// failure along that path degrades to a deterministic extension-based
// fallback that always succeeds.
package categorize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	openai "github.com/sashabaranov/go-openai"

	"tidydesk/internal/config"
	serr "tidydesk/internal/errors"
	"tidydesk/internal/log"
	"tidydesk/pkg/types"
)

const systemPrompt = "You are an expert at organizing files into logical categories. You ONLY respond with valid JSON."

// ChatClient is the slice of the OpenAI client the categorizer needs.
// Tests substitute a fake; production wiring passes *openai.Client.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type compiledRule struct {
	matcher  glob.Glob
	category string
}

// Categorizer groups file names into named categories.
type Categorizer struct {
	client ChatClient
	model  string
	rules  []compiledRule
	log    *log.Logger
}

// New creates a Categorizer. A nil client disables the LLM path entirely and
// every call goes straight to the fallback.
func New(client ChatClient, model string, rules []types.Rule, logger *log.Logger) (*Categorizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		g, err := glob.Compile(rule.Pattern)
		if err != nil {
			return nil, serr.NewConfigError("invalid rule pattern", rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{matcher: g, category: rule.Category})
	}

	return &Categorizer{
		client: client,
		model:  model,
		rules:  compiled,
		log:    logger,
	}, nil
}

// NewFromConfig builds a Categorizer wired to the configured service.
// When the LLM is disabled or no API key is set, the categorizer runs
// fallback-only.
func NewFromConfig(cfg *config.Config, logger *log.Logger) (*Categorizer, error) {
	var client ChatClient
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.LLM.APIKey)
		if cfg.LLM.BaseURL != "" {
			clientCfg.BaseURL = cfg.LLM.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	} else {
		logger.Debugf("LLM categorization disabled, using fallback only")
	}

	return New(client, cfg.LLM.Model, cfg.Rules, logger)
}

// Analyze groups the given file names into categories. An empty input
// returns an empty plan. Failures on the LLM path are logged and answered
// with the deterministic fallback, so Analyze itself never fails.
func (c *Categorizer) Analyze(ctx context.Context, files []string) types.CategoryPlan {
	if len(files) == 0 {
		return types.CategoryPlan{}
	}

	if c.client != nil {
		plan, err := c.analyzeLLM(ctx, files)
		if err == nil {
			c.log.WithField("categories", len(plan)).Infof("LLM categorized %d files", len(files))
			return plan
		}
		c.log.WithError(err).Errorf("error analyzing files, falling back to extension categorization")
	}

	return c.Fallback(files)
}

func (c *Categorizer) analyzeLLM(ctx context.Context, files []string) (types.CategoryPlan, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(files)},
		},
	})
	if err != nil {
		return nil, serr.NewFileError("chat completion failed", "", serr.CategorizeFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, serr.New("no choices in response")
	}

	content := cleanJSONBlock(resp.Choices[0].Message.Content)

	var plan types.CategoryPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, serr.Wrap(err, "invalid JSON in model reply")
	}
	return plan, nil
}

// buildPrompt renders the user message asking the model for a JSON plan.
func buildPrompt(files []string) string {
	names, _ := json.MarshalIndent(files, "", "  ")
	return fmt.Sprintf(`Given these files:
%s

Create appropriate categories and assign each file to one category.
Consider:
- File extensions and types
- Naming patterns and content hints
- Common desktop organization practices
- Group similar files together
- Use intuitive category names

Return ONLY a JSON object where:
- Keys are category names (clear, simple names)
- Values are lists of filenames that belong in that category`, names)
}

// cleanJSONBlock strips the markdown code fences models wrap JSON in.
func cleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
