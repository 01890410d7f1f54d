package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrAgentsFileNotFound = errors.New("agents file not found")

// AgentSeed declares one reviewer agent in the seed file. The dashboard owns
// agents at runtime; the seed file only bootstraps them.
type AgentSeed struct {
	Name              string   `yaml:"name"`
	GenerationPrompt  string   `yaml:"generation_prompt"`
	EvaluationPrompt  string   `yaml:"evaluation_prompt"`
	Dimensions        []string `yaml:"dimensions"`
	FileFilters       []string `yaml:"file_filters"`
	SeverityThreshold int      `yaml:"severity_threshold"`
	Enabled           *bool    `yaml:"enabled"`
	// Repositories lists owner/name full names the agent is bound to.
	Repositories []string `yaml:"repositories"`
}

// IsEnabled treats an omitted enabled flag as true.
func (s *AgentSeed) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// AgentsFile is the parsed agent seed document.
type AgentsFile struct {
	Agents []AgentSeed `yaml:"agents"`
}

// LoadAgentsFile reads and validates an agent seed file.
func LoadAgentsFile(path string) (*AgentsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAgentsFileNotFound
		}
		return nil, fmt.Errorf("failed to read agents file %s: %w", path, err)
	}

	var file AgentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse agents file %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agents file %s: %w", path, err)
	}
	return &file, nil
}

// Validate checks the structural constraints the storage layer relies on.
func (f *AgentsFile) Validate() error {
	seen := make(map[string]bool, len(f.Agents))
	for i := range f.Agents {
		a := &f.Agents[i]
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("agent #%d has no name", i+1)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate agent name %q", a.Name)
		}
		seen[a.Name] = true

		if a.SeverityThreshold == 0 {
			a.SeverityThreshold = 3
		}
		if a.SeverityThreshold < 1 || a.SeverityThreshold > 5 {
			return fmt.Errorf("agent %q: severity_threshold must be between 1 and 5, got %d", a.Name, a.SeverityThreshold)
		}
		if len(a.Dimensions) == 0 {
			return fmt.Errorf("agent %q declares no evaluation dimensions", a.Name)
		}
		for _, repo := range a.Repositories {
			if strings.Count(repo, "/") != 1 {
				return fmt.Errorf("agent %q: repository %q is not an owner/name pair", a.Name, repo)
			}
		}
	}
	return nil
}
