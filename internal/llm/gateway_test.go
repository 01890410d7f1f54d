package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-crew/internal/core"
)

// fakeModel returns a canned response (or error) and records every prompt
// text, message role and resolved call option that reaches it.
type fakeModel struct {
	response string
	err      error
	prompts  []string
	roles    []schema.ChatMessageType
	opts     llms.CallOptions
}

func (f *fakeModel) Call(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []schema.MessageContent, opts ...llms.CallOption) (*schema.ContentResponse, error) {
	f.opts = llms.CallOptions{}
	for _, opt := range opts {
		opt(&f.opts)
	}
	for _, m := range messages {
		f.roles = append(f.roles, m.Role)
		for _, p := range m.Parts {
			if t, ok := p.(schema.TextContent); ok {
				f.prompts = append(f.prompts, t.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &schema.ContentResponse{
		Choices: []*schema.ContentChoice{{Content: f.response}},
	}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAgent() *core.Agent {
	return &core.Agent{
		ID:                1,
		Name:              "strict-reviewer",
		Dimensions:        []string{"accuracy", "clarity"},
		SeverityThreshold: 3,
	}
}

func TestGatewayGenerate(t *testing.T) {
	t.Run("comment with inferred severity", func(t *testing.T) {
		model := &fakeModel{response: "This is a security problem: the token leaks into logs."}
		g := NewGateway(model, testLogger())

		res := g.Generate(context.Background(), testAgent(), GenerationVars{
			CodeChunk: "log.Println(token)",
			FilePath:  "auth/session.go",
			FileType:  "go",
		})

		assert.Equal(t, 5, res.Severity)
		assert.Equal(t, model.response, res.Comment)
		assert.Positive(t, res.TokensUsed)

		require.Len(t, model.prompts, 1)
		assert.Contains(t, model.prompts[0], "log.Println(token)")
		assert.Contains(t, model.prompts[0], "auth/session.go")
	})

	t.Run("empty response means nothing to say", func(t *testing.T) {
		g := NewGateway(&fakeModel{response: "   \n"}, testLogger())

		res := g.Generate(context.Background(), testAgent(), GenerationVars{CodeChunk: "x := 1"})

		assert.Empty(t, res.Comment)
		assert.Zero(t, res.Severity)
	})

	t.Run("provider error fails open", func(t *testing.T) {
		g := NewGateway(&fakeModel{err: errors.New("boom")}, testLogger())

		res := g.Generate(context.Background(), testAgent(), GenerationVars{CodeChunk: "x := 1"})

		assert.Equal(t, GenerationResult{}, res)
	})

	t.Run("custom agent prompt is used", func(t *testing.T) {
		model := &fakeModel{response: "fine"}
		g := NewGateway(model, testLogger())

		agent := testAgent()
		agent.GenerationPrompt = "Inspect {code_chunk} closely. {unknown} stays."
		g.Generate(context.Background(), agent, GenerationVars{CodeChunk: "y := 2"})

		require.Len(t, model.prompts, 1)
		assert.Equal(t, "Inspect y := 2 closely. {unknown} stays.", model.prompts[0])
	})
}

func TestGatewayEvaluate(t *testing.T) {
	t.Run("scores parsed from JSON", func(t *testing.T) {
		model := &fakeModel{response: `{"scores": {"accuracy": 8, "clarity": 6}, "summary": "Good catch."}`}
		g := NewGateway(model, testLogger())

		res := g.Evaluate(context.Background(), testAgent(), "code", "comment", "main.go")

		assert.Equal(t, core.ScoreMap{"accuracy": 8, "clarity": 6}, res.Scores)
		assert.Equal(t, "Good catch.", res.Summary)
		assert.Positive(t, res.TokensUsed)
		assert.True(t, model.opts.JSONMode)
	})

	t.Run("malformed JSON falls back to neutral scores", func(t *testing.T) {
		g := NewGateway(&fakeModel{response: "not json"}, testLogger())

		res := g.Evaluate(context.Background(), testAgent(), "code", "comment", "main.go")

		assert.Equal(t, core.ScoreMap{"accuracy": 5, "clarity": 5}, res.Scores)
		assert.Empty(t, res.Summary)
	})

	t.Run("provider error yields neutral scores and no tokens", func(t *testing.T) {
		g := NewGateway(&fakeModel{err: errors.New("timeout")}, testLogger())

		res := g.Evaluate(context.Background(), testAgent(), "code", "comment", "main.go")

		assert.Equal(t, core.ScoreMap{"accuracy": 5, "clarity": 5}, res.Scores)
		assert.Zero(t, res.TokensUsed)
	})
}

func TestGatewayConversationalReply(t *testing.T) {
	t.Run("answer carries the thread context", func(t *testing.T) {
		model := &fakeModel{response: "Yes, wrapping the error would preserve the cause."}
		g := NewGateway(model, testLogger())

		res := g.ConversationalReply(context.Background(), testAgent(),
			"return err", "Consider wrapping this error.", "Why does wrapping matter?")

		assert.Equal(t, model.response, res.Reply)
		assert.Positive(t, res.TokensUsed)

		require.Len(t, model.prompts, 4)
		assert.Equal(t, []schema.ChatMessageType{
			schema.ChatMessageTypeSystem,
			schema.ChatMessageTypeHuman,
			schema.ChatMessageTypeAI,
			schema.ChatMessageTypeHuman,
		}, model.roles)
		assert.Contains(t, model.prompts[0], "strict-reviewer")
		assert.Contains(t, model.prompts[1], "return err")
		assert.Equal(t, "Consider wrapping this error.", model.prompts[2])
		assert.Equal(t, "Why does wrapping matter?", model.prompts[3])
	})

	t.Run("provider error produces the fallback text", func(t *testing.T) {
		g := NewGateway(&fakeModel{err: errors.New("unavailable")}, testLogger())

		res := g.ConversationalReply(context.Background(), testAgent(), "code", "comment", "reply")

		assert.Equal(t, FallbackReply, res.Reply)
		assert.Zero(t, res.TokensUsed)
	})

	t.Run("blank answer produces the fallback text", func(t *testing.T) {
		g := NewGateway(&fakeModel{response: "  "}, testLogger())

		res := g.ConversationalReply(context.Background(), testAgent(), "code", "comment", "reply")

		assert.Equal(t, FallbackReply, res.Reply)
	})
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 4, EstimateTokens("twelve chars"))
	assert.GreaterOrEqual(t, EstimateTokens("a longer stretch of text"),
		EstimateTokens("short text"))
}
