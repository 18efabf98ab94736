package openaiad

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"

	"review_pulse/internal/domain"
)

const (
	systemPrompt = "You are a Middle Product Manager. Analyze the reviews. " +
		"Highlight the top 3 problems. Be concise. Output as JSON only, no other text: " +
		`{"top_issues":[{"problem_description":"...","improvement_option":"..."}]}`

	// at most this many reviews feed one prompt
	promptReviewLimit = 30

	// only reviews rated at or below this prefer-select into the prompt
	problematicRatingMax = 3
)

// Insights asks a chat model for actionable {problem, improvement}
// pairs. A missing API key or any call/parse failure degrades to a
// placeholder report with a nil error, so analysis always assembles.
type Insights struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewInsights(apiKey string) *Insights {
	ins := &Insights{model: openai.ChatModelGPT4oMini}
	if apiKey != "" {
		c := openai.NewClient(option.WithAPIKey(apiKey))
		ins.client = &c
	}
	return ins
}

func (c *Insights) ActionableInsights(ctx context.Context, reviews []domain.Review) (domain.InsightReport, error) {
	if c.client == nil {
		return degraded("API key missing", "set OPENAI_API_KEY to enable AI insights"), nil
	}

	block := formatReviews(reviews, promptReviewLimit)
	if block == "" {
		return domain.InsightReport{Issues: []domain.Insight{}}, nil
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(block),
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("insights call failed")
		return degraded("AI error", err.Error()), nil
	}
	if len(resp.Choices) == 0 {
		return degraded("AI error", "empty completion"), nil
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	var parsed struct {
		TopIssues []struct {
			Problem     string `json:"problem_description"`
			Improvement string `json:"improvement_option"`
		} `json:"top_issues"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		log.Warn().Err(err).Str("content", content).Msg("insights response did not parse")
		return degraded("AI error", fmt.Sprintf("unparseable response: %v", err)), nil
	}

	issues := make([]domain.Insight, 0, len(parsed.TopIssues))
	for _, it := range parsed.TopIssues {
		issues = append(issues, domain.Insight{Problem: it.Problem, Improvement: it.Improvement})
	}
	return domain.InsightReport{Issues: issues}, nil
}

func degraded(problem, detail string) domain.InsightReport {
	return domain.InsightReport{
		Degraded: true,
		Reason:   detail,
		Issues:   []domain.Insight{{Problem: problem, Improvement: detail}},
	}
}

// formatReviews builds the numbered, newline-normalized prompt block,
// preferring low-rated reviews and falling back to any when none
// qualify. Empty string means nothing to analyze.
func formatReviews(reviews []domain.Review, limit int) string {
	problematic := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Rating <= problematicRatingMax {
			problematic = append(problematic, r)
		}
	}
	selection := problematic
	if len(selection) == 0 {
		selection = reviews
	}
	if len(selection) > limit {
		selection = selection[:limit]
	}
	if len(selection) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Reviews:\n")
	for i, r := range selection {
		body := strings.TrimSpace(strings.ReplaceAll(r.Text, "\n", " "))
		fmt.Fprintf(&sb, "%d. %s. %s\n", i+1, r.Title, body)
	}
	return sb.String()
}

// cleanJSONResponse strips markdown code fences and surrounding prose
// some models wrap around the JSON payload.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
