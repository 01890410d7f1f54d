package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/core"
	"github.com/sevigo/review-crew/internal/costs"
	"github.com/sevigo/review-crew/internal/diff"
	"github.com/sevigo/review-crew/internal/llm"
	"github.com/sevigo/review-crew/internal/logger"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
)

var (
	patchPath     string
	repoDir       string
	agentsPath    string
	agentName     string
	llmProvider   string
	modelName     string
	ollamaHost    string
	contextWindow int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run the review pipeline offline over a patch file or a local repository",
	Long: `Run the review pipeline offline: parse the patch, select changed lines,
generate comments with the configured agents, and apply each agent's severity
gate. Nothing is posted or persisted; gated comments are printed to the
terminal together with an estimated token cost.

The patch comes either from --patch (a unified diff file) or from --repo
(the diff of the repository's HEAD commit against its first parent).`,
	RunE: runOfflineReview,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	reviewCmd.Flags().StringVar(&patchPath, "patch", "", "unified diff file to review")
	reviewCmd.Flags().StringVar(&repoDir, "repo", "", "local git repository; reviews the HEAD commit")
	reviewCmd.Flags().StringVar(&agentsPath, "agents", "agents.yml", "agents file")
	reviewCmd.Flags().StringVar(&agentName, "agent", "", "only run the named agent")
	reviewCmd.Flags().StringVar(&llmProvider, "provider", "ollama", "LLM provider (ollama or gemini)")
	reviewCmd.Flags().StringVar(&modelName, "model", "gemma3:latest", "model name")
	reviewCmd.Flags().StringVar(&ollamaHost, "ollama-host", "http://localhost:11434", "Ollama server URL")
	reviewCmd.Flags().IntVar(&contextWindow, "context", diff.DefaultContextWindow, "context lines on each side of a change")
	rootCmd.AddCommand(reviewCmd)
}

func runOfflineReview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	files, err := loadPatches()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		warnColor.Println("nothing to review: the patch contains no files")
		return nil
	}

	agents, err := loadAgents()
	if err != nil {
		return err
	}

	if path := viper.GetString("PRICE_TABLE_FILE"); path != "" {
		if err := costs.LoadPriceOverrides(path); err != nil {
			return err
		}
	}

	gateway, err := buildGateway(ctx)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	var totalTokens, posted, skipped int
	for _, file := range files {
		lines := diff.SelectChangedLines(diff.Parse(file.patch), contextWindow)
		if len(lines) == 0 {
			continue
		}
		fileType := strings.TrimPrefix(filepath.Ext(file.name), ".")

		titleColor.Printf("\n%s (%d changed lines)\n", file.name, len(lines))

		for i := range agents {
			agent := &agents[i]
			if !agent.MatchesFile(file.name) {
				continue
			}
			for _, line := range lines {
				gen := gateway.Generate(ctx, agent, llm.GenerationVars{
					CodeChunk: line.Context,
					FilePath:  file.name,
					FileType:  fileType,
				})
				totalTokens += gen.TokensUsed

				if gen.Comment == "" || gen.Severity < agent.SeverityThreshold {
					skipped++
					if verbose {
						dimColor.Printf("  line %d: %s gated (severity %d < %d)\n",
							line.NewLineNumber, agent.Name, gen.Severity, agent.SeverityThreshold)
					}
					continue
				}
				posted++

				successColor.Printf("  line %d, %s (severity %d)\n", line.NewLineNumber, agent.Name, gen.Severity)
				rendered, err := renderer.Render(gen.Comment)
				if err != nil {
					fmt.Println(gen.Comment)
				} else {
					fmt.Print(rendered)
				}
			}
		}
	}

	fmt.Println()
	titleColor.Println("Summary")
	fmt.Printf("  comments kept:    %d\n", posted)
	fmt.Printf("  comments gated:   %d\n", skipped)
	fmt.Printf("  tokens estimated: %d\n", totalTokens)
	fmt.Printf("  cost estimated:   $%.6f (%s)\n", costs.EstimateCost(modelName, totalTokens), modelName)
	return nil
}

type filePatch struct {
	name  string
	patch string
}

func loadPatches() ([]filePatch, error) {
	switch {
	case patchPath != "" && repoDir != "":
		return nil, fmt.Errorf("--patch and --repo are mutually exclusive")
	case patchPath != "":
		data, err := os.ReadFile(patchPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read patch file: %w", err)
		}
		return splitPatchByFile(string(data)), nil
	case repoDir != "":
		return patchFromHead(repoDir)
	default:
		return nil, fmt.Errorf("either --patch or --repo is required")
	}
}

func loadAgents() ([]core.Agent, error) {
	file, err := config.LoadAgentsFile(agentsPath)
	if err != nil {
		return nil, err
	}

	var agents []core.Agent
	for i := range file.Agents {
		seed := &file.Agents[i]
		if !seed.IsEnabled() {
			continue
		}
		if agentName != "" && seed.Name != agentName {
			continue
		}
		agents = append(agents, core.Agent{
			ID:                int64(i + 1),
			Name:              seed.Name,
			GenerationPrompt:  seed.GenerationPrompt,
			EvaluationPrompt:  seed.EvaluationPrompt,
			Dimensions:        seed.Dimensions,
			FileFilters:       seed.FileFilters,
			SeverityThreshold: seed.SeverityThreshold,
			Enabled:           true,
		})
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("no matching enabled agents in %s", agentsPath)
	}
	return agents, nil
}

func buildGateway(ctx context.Context) (llm.Gateway, error) {
	cfg := &config.Config{
		LLM: config.LLMConfig{
			Provider:     llmProvider,
			Model:        modelName,
			OllamaHost:   ollamaHost,
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		},
	}
	slogger := logger.NewLogger(logger.Config{Level: cliLogLevel(), Format: "text"}, os.Stderr)

	model, err := llm.NewModel(ctx, cfg, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewGateway(model, slogger), nil
}

func cliLogLevel() string {
	if verbose {
		return "debug"
	}
	return "warn"
}
