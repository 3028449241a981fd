// Package pool turns a natural-language request into a pool of workers:
// requirement analysis, template selection, dependency wiring, and a
// phased execution plan.
package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
)

// Analyzer is the NL-understanding collaborator. Unknown enum values in
// its output are surfaced as errors, never silently dropped.
type Analyzer interface {
	Analyze(ctx context.Context, userText string, reqContext map[string]any) (models.Requirements, error)
}

// rawRequirements is the analyzer wire format before enum validation.
type rawRequirements struct {
	ProjectType  string       `json:"project_type"`
	Technologies []string     `json:"technologies"`
	Features     []string     `json:"features"`
	Complexity   string       `json:"complexity"`
	Flags        models.Flags `json:"flags"`
}

// ParseRequirements validates an analyzer JSON document into a typed
// record. Missing fields get defaults; unknown enum values are errors.
func ParseRequirements(data []byte) (models.Requirements, error) {
	var raw rawRequirements
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Requirements{}, fmt.Errorf("decode requirements: %w", err)
	}

	req := models.DefaultRequirements()
	req.Flags = raw.Flags
	req.Features = raw.Features

	if raw.ProjectType != "" {
		pt, err := models.ParseProjectType(raw.ProjectType)
		if err != nil {
			return models.Requirements{}, err
		}
		req.ProjectType = pt
	}
	if raw.Complexity != "" {
		c, err := models.ParseComplexity(raw.Complexity)
		if err != nil {
			return models.Requirements{}, err
		}
		req.Complexity = c
	}
	for _, tag := range raw.Technologies {
		tech, err := models.ParseTechnology(tag)
		if err != nil {
			return models.Requirements{}, err
		}
		req.Technologies = append(req.Technologies, tech)
	}
	return req, nil
}

const analyzerSystemPrompt = `You extract structured project requirements from free-form text.
Respond with a single JSON object and nothing else, using exactly this shape:
{
  "project_type": "web_app|api|microservice|cli|library|mobile|data_pipeline|ml|documentation|other",
  "technologies": ["python_fastapi","python_django","python_flask","nodejs_express","nodejs_nestjs","golang","rust","vue","react","angular","database_postgres","database_mongodb","database_redis","docker","kubernetes","aws","gcp","azure"],
  "features": ["..."],
  "complexity": "simple|medium|complex|enterprise",
  "flags": {"has_auth":false,"has_database":false,"has_realtime":false,"has_deployment":false,"has_testing":true,"has_documentation":true}
}
Only include technology tags from the list above.`

// LLMAnalyzer delegates extraction to the LLM client and validates the
// returned JSON strictly.
type LLMAnalyzer struct {
	client llm.Client
}

// NewLLMAnalyzer wires an analyzer over the shared LLM client.
func NewLLMAnalyzer(client llm.Client) *LLMAnalyzer {
	return &LLMAnalyzer{client: client}
}

// Analyze extracts a requirements record from free-form text.
func (a *LLMAnalyzer) Analyze(ctx context.Context, userText string, reqContext map[string]any) (models.Requirements, error) {
	prompt := "Project description:\n" + userText
	if len(reqContext) > 0 {
		if extra, err := json.Marshal(reqContext); err == nil {
			prompt += "\n\nAdditional context:\n" + string(extra)
		}
	}

	completion, err := a.client.Generate(ctx, prompt, llm.Options{System: analyzerSystemPrompt})
	if err != nil {
		return models.Requirements{}, fmt.Errorf("analyze requirements: %w", err)
	}

	text := extractJSON(completion.Text)
	if text == "" {
		return models.Requirements{}, fmt.Errorf("analyzer returned no JSON object")
	}
	return ParseRequirements([]byte(text))
}

// extractJSON pulls the first top-level JSON object out of model output
// that may be wrapped in prose or code fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
