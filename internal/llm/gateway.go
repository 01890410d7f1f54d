// Package llm wraps the text-generation provider behind the three calls the
// review pipeline needs: generating a review comment, scoring it against the
// agent's evaluation dimensions, and answering a thread reply. All three fail
// open: a provider error produces a neutral, well-formed result and a log
// entry, never an error that could abort a batch.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/schema"

	"github.com/sevigo/review-crew/internal/core"
)

const (
	samplingTemperature = 0.2
	generationMaxTokens = 1024
	evaluationMaxTokens = 512
	replyMaxTokens      = 512
)

// FallbackReply is posted when the provider cannot produce a thread answer.
const FallbackReply = "Sorry, I couldn't process your reply just now. Please try again later."

// GenerationVars are the template variables available to an agent's
// generation prompt.
type GenerationVars struct {
	CodeChunk string
	FilePath  string
	FileType  string
}

// GenerationResult is the outcome of a single generate call. A provider
// failure yields the zero value (empty comment, severity 0, no tokens).
type GenerationResult struct {
	Comment    string
	Severity   int
	TokensUsed int
	Raw        string
}

// EvaluationResult scores a generated comment. Scores always contains exactly
// the agent's declared dimensions.
type EvaluationResult struct {
	Scores     core.ScoreMap
	Summary    string
	TokensUsed int
}

// ReplyResult is the outcome of a conversational reply call.
type ReplyResult struct {
	Reply      string
	TokensUsed int
}

// Gateway is the stateless-per-call LLM surface consumed by the review jobs.
//
//go:generate mockgen -destination=../../mocks/mock_llm_gateway.go -package=mocks . Gateway
type Gateway interface {
	Generate(ctx context.Context, agent *core.Agent, vars GenerationVars) GenerationResult
	Evaluate(ctx context.Context, agent *core.Agent, code, comment, filePath string) EvaluationResult
	ConversationalReply(ctx context.Context, agent *core.Agent, originalCode, originalComment, userReply string) ReplyResult
}

type gateway struct {
	model  llms.Model
	logger *slog.Logger
}

// NewGateway wraps a goframe model in the pipeline's Gateway contract.
func NewGateway(model llms.Model, logger *slog.Logger) Gateway {
	return &gateway{model: model, logger: logger}
}

// Generate renders the agent's generation prompt, issues one model call at a
// low fixed temperature, and infers a 1-5 severity from the returned prose.
func (g *gateway) Generate(ctx context.Context, agent *core.Agent, vars GenerationVars) GenerationResult {
	prompt := RenderTemplate(templateOr(agent.GenerationPrompt, defaultGenerationPrompt), map[string]string{
		"code_chunk": vars.CodeChunk,
		"file_path":  vars.FilePath,
		"file_type":  vars.FileType,
	})

	resp, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(samplingTemperature),
		llms.WithMaxTokens(generationMaxTokens),
	)
	if err != nil {
		g.logger.Warn("comment generation failed, continuing with empty result",
			"agent", agent.Name, "file", vars.FilePath, "error", err)
		return GenerationResult{}
	}

	comment := strings.TrimSpace(resp)
	result := GenerationResult{
		Comment:    comment,
		Raw:        resp,
		TokensUsed: g.countTokens(ctx, prompt) + g.countTokens(ctx, resp),
	}
	if comment != "" {
		result.Severity = InferSeverity(comment)
	}
	return result
}

// Evaluate requests a JSON-constrained scoring of a generated comment. The
// returned map contains exactly the agent's declared dimensions: any
// dimension missing from the provider's JSON, and every dimension on a call
// or parse failure, defaults to the neutral midpoint of 5.
func (g *gateway) Evaluate(ctx context.Context, agent *core.Agent, code, comment, filePath string) EvaluationResult {
	dims := []string(agent.Dimensions)
	prompt := RenderTemplate(templateOr(agent.EvaluationPrompt, defaultEvaluationPrompt), map[string]string{
		"code_chunk":     code,
		"review_comment": comment,
		"file_path":      filePath,
		"dimensions":     strings.Join(dims, ", "),
	})

	resp, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(samplingTemperature),
		llms.WithMaxTokens(evaluationMaxTokens),
		llms.WithJSONMode(true),
	)
	if err != nil {
		g.logger.Warn("evaluation failed, falling back to neutral scores",
			"agent", agent.Name, "error", err)
		return EvaluationResult{Scores: neutralScores(dims)}
	}

	scores, summary := parseEvaluation(resp, dims)
	return EvaluationResult{
		Scores:     scores,
		Summary:    summary,
		TokensUsed: g.countTokens(ctx, prompt) + g.countTokens(ctx, resp),
	}
}

// ConversationalReply builds a short multi-turn exchange (agent instructions,
// the code under discussion, the agent's prior comment, the user's reply) and
// returns the model's free-text answer.
func (g *gateway) ConversationalReply(ctx context.Context, agent *core.Agent, originalCode, originalComment, userReply string) ReplyResult {
	messages := []schema.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, fmt.Sprintf(replySystemPrompt, agent.Name)),
		llms.TextParts(schema.ChatMessageTypeHuman, "The code under discussion:\n\n"+originalCode),
		llms.TextParts(schema.ChatMessageTypeAI, originalComment),
		llms.TextParts(schema.ChatMessageTypeHuman, userReply),
	}

	resp, err := g.model.GenerateContent(ctx, messages,
		llms.WithTemperature(samplingTemperature),
		llms.WithMaxTokens(replyMaxTokens),
	)
	if err != nil || len(resp.Choices) == 0 {
		g.logger.Warn("conversational reply failed, using fallback text",
			"agent", agent.Name, "error", err)
		return ReplyResult{Reply: FallbackReply}
	}

	reply := strings.TrimSpace(resp.Choices[0].Content)
	if reply == "" {
		reply = FallbackReply
	}

	var promptTokens int
	for _, m := range messages {
		for _, p := range m.Parts {
			if t, ok := p.(schema.TextContent); ok {
				promptTokens += g.countTokens(ctx, t.Text)
			}
		}
	}
	return ReplyResult{
		Reply:      reply,
		TokensUsed: promptTokens + g.countTokens(ctx, reply),
	}
}

// countTokens asks the model's tokenizer when it has one and falls back to a
// character-based estimate otherwise. The provider response does not expose
// usage counts through this client, so the estimate is the usage signal.
func (g *gateway) countTokens(ctx context.Context, text string) int {
	if t, ok := g.model.(llms.Tokenizer); ok {
		if n, err := t.CountTokens(ctx, text); err == nil {
			return n
		}
	}
	return EstimateTokens(text)
}

// EstimateTokens is a fast character-based token estimate.
func EstimateTokens(text string) int {
	return len(text) / 3
}

func neutralScores(dims []string) core.ScoreMap {
	scores := make(core.ScoreMap, len(dims))
	for _, d := range dims {
		scores[d] = neutralScore
	}
	return scores
}
