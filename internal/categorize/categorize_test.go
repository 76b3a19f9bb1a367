package categorize_test

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidydesk/internal/categorize"
	"tidydesk/internal/config"
	"tidydesk/internal/log"
	"tidydesk/pkg/types"
)

// fakeChatClient returns a canned reply or error without any network.
type fakeChatClient struct {
	content string
	err     error
	gotReq  openai.ChatCompletionRequest
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newCategorizer(t *testing.T, client categorize.ChatClient, rules []types.Rule) *categorize.Categorizer {
	t.Helper()
	c, err := categorize.New(client, "gpt-4o-mini", rules, log.NewNop())
	require.NoError(t, err)
	return c
}

func TestAnalyzeEmptyInput(t *testing.T) {
	c := newCategorizer(t, &fakeChatClient{content: `{"Images": ["x.png"]}`}, nil)
	plan := c.Analyze(context.Background(), nil)
	assert.Empty(t, plan)
}

func TestAnalyzeLLMSuccess(t *testing.T) {
	client := &fakeChatClient{content: `{"Screenshots": ["Screenshot.png"], "Invoices": ["inv-01.pdf"]}`}
	c := newCategorizer(t, client, nil)

	plan := c.Analyze(context.Background(), []string{"Screenshot.png", "inv-01.pdf"})

	assert.Equal(t, types.CategoryPlan{
		"Screenshots": {"Screenshot.png"},
		"Invoices":    {"inv-01.pdf"},
	}, plan)

	// Request shape: system instruction plus user prompt naming every file
	require.Len(t, client.gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, client.gotReq.Messages[0].Role)
	assert.Contains(t, client.gotReq.Messages[0].Content, "valid JSON")
	assert.Equal(t, openai.ChatMessageRoleUser, client.gotReq.Messages[1].Role)
	assert.Contains(t, client.gotReq.Messages[1].Content, "Screenshot.png")
	assert.Contains(t, client.gotReq.Messages[1].Content, "inv-01.pdf")
	assert.Equal(t, "gpt-4o-mini", client.gotReq.Model)
}

func TestAnalyzeFencedReply(t *testing.T) {
	client := &fakeChatClient{content: "```json\n{\"Images\": [\"a.jpg\"]}\n```"}
	c := newCategorizer(t, client, nil)

	plan := c.Analyze(context.Background(), []string{"a.jpg"})
	assert.Equal(t, types.CategoryPlan{"Images": {"a.jpg"}}, plan)
}

func TestAnalyzeFallsBackOnAPIError(t *testing.T) {
	client := &fakeChatClient{err: assert.AnError}
	c := newCategorizer(t, client, nil)

	plan := c.Analyze(context.Background(), []string{"a.jpg", "b.txt", "notes"})

	assert.Equal(t, types.CategoryPlan{
		"Images":       {"a.jpg"},
		"Documents":    {"b.txt"},
		"No Extension": {"notes"},
	}, plan)
}

func TestAnalyzeFallsBackOnMalformedJSON(t *testing.T) {
	client := &fakeChatClient{content: "Sure! Here are your categories:"}
	c := newCategorizer(t, client, nil)

	plan := c.Analyze(context.Background(), []string{"song.mp3"})
	assert.Equal(t, types.CategoryPlan{"Audio": {"song.mp3"}}, plan)
}

func TestAnalyzeWithoutClientUsesFallback(t *testing.T) {
	c := newCategorizer(t, nil, nil)
	plan := c.Analyze(context.Background(), []string{"bundle.zip"})
	assert.Equal(t, types.CategoryPlan{"Archives": {"bundle.zip"}}, plan)
}

func TestFallbackTable(t *testing.T) {
	c := newCategorizer(t, nil, nil)

	cases := map[string]string{
		"a.JPG":       "Images",
		"pic.jpeg":    "Images",
		"shot.png":    "Images",
		"anim.gif":    "Images",
		"r.pdf":       "Documents",
		"d.doc":       "Documents",
		"d.docx":      "Documents",
		"n.txt":       "Documents",
		"v.mp4":       "Videos",
		"v.mov":       "Videos",
		"v.avi":       "Videos",
		"s.mp3":       "Audio",
		"s.wav":       "Audio",
		"s.m4a":       "Audio",
		"z.zip":       "Archives",
		"z.rar":       "Archives",
		"z.7z":        "Archives",
		"c.py":        "Code",
		"c.js":        "Code",
		"c.html":      "Code",
		"c.css":       "Code",
		"notes":       "No Extension",
		"mystery.xyz": "Other",
	}

	files := make([]string, 0, len(cases))
	for name := range cases {
		files = append(files, name)
	}

	plan := c.Fallback(files)

	// Every file is assigned to exactly one category
	assert.Equal(t, len(cases), plan.FileCount())
	for name, category := range cases {
		assert.Contains(t, plan[category], name, "%s should land in %s", name, category)
	}
}

func TestFallbackRulesTakePrecedence(t *testing.T) {
	rules := []types.Rule{
		{Pattern: "Screenshot*.png", Category: "Screenshots"},
		{Pattern: "*.iso", Category: "Disk Images"},
	}
	c := newCategorizer(t, nil, rules)

	plan := c.Fallback([]string{"Screenshot 2026-08-28.png", "regular.png", "ubuntu.iso"})

	assert.Equal(t, types.CategoryPlan{
		"Screenshots": {"Screenshot 2026-08-28.png"},
		"Images":      {"regular.png"},
		"Disk Images": {"ubuntu.iso"},
	}, plan)
}

func TestNewRejectsBadRule(t *testing.T) {
	_, err := categorize.New(nil, "m", []types.Rule{{Pattern: "[", Category: "Broken"}}, log.NewNop())
	assert.Error(t, err)
}

func TestNewFromConfigDisabled(t *testing.T) {
	cfg := config.NewTestConfig(t.TempDir())
	c, err := categorize.NewFromConfig(cfg, log.NewNop())
	require.NoError(t, err)

	// No client wired: deterministic fallback only
	plan := c.Analyze(context.Background(), []string{"a.jpg"})
	assert.Equal(t, types.CategoryPlan{"Images": {"a.jpg"}}, plan)
}
