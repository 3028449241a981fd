package agent

import (
	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
)

// Builtin template ids. The pool maker's technology table and phase rules
// reference these directly.
const (
	TemplatePythonBackend    = "python_backend"
	TemplateNodeBackend      = "nodejs_backend"
	TemplateGoBackend        = "go_backend"
	TemplateRustBackend      = "rust_backend"
	TemplateFrontendVue      = "frontend_vue"
	TemplateFrontendReact    = "frontend_react"
	TemplateFrontendAngular  = "frontend_angular"
	TemplateDatabaseEngineer = "database_engineer"
	TemplateDevOpsEngineer   = "devops_engineer"
	TemplateTechnicalWriter  = "technical_writer"
	TemplateQAEngineer       = "qa_engineer"
)

// BuiltinTemplates returns the stock template catalog.
func BuiltinTemplates() []models.AgentTemplate {
	return []models.AgentTemplate{
		{
			TemplateID:           TemplatePythonBackend,
			DisplayName:          "Python Backend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechPythonFastAPI},
			Responsibilities:     []string{"API design", "Database models", "Business logic", "Authentication"},
			ToolIDs:              []string{"code_generator", "database_designer", "api_tester"},
			DefaultConfig:        map[string]any{"language": "python", "framework": "fastapi"},
		},
		{
			TemplateID:           TemplateNodeBackend,
			DisplayName:          "Node.js Backend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechNodeExpress},
			Responsibilities:     []string{"API design", "Middleware", "Business logic", "Authentication"},
			ToolIDs:              []string{"code_generator", "api_tester"},
			DefaultConfig:        map[string]any{"language": "javascript", "framework": "express"},
		},
		{
			TemplateID:           TemplateGoBackend,
			DisplayName:          "Go Backend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechGolang},
			Responsibilities:     []string{"API design", "Concurrency", "Business logic"},
			ToolIDs:              []string{"code_generator", "api_tester"},
			DefaultConfig:        map[string]any{"language": "go"},
		},
		{
			TemplateID:           TemplateRustBackend,
			DisplayName:          "Rust Backend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechRust},
			Responsibilities:     []string{"API design", "Memory safety", "Business logic"},
			ToolIDs:              []string{"code_generator"},
			DefaultConfig:        map[string]any{"language": "rust"},
		},
		{
			TemplateID:           TemplateFrontendVue,
			DisplayName:          "Vue Frontend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechVue},
			Responsibilities:     []string{"Component design", "State management", "API integration", "Responsive UI"},
			ToolIDs:              []string{"code_generator", "ui_designer"},
			DefaultConfig:        map[string]any{"framework": "vue"},
		},
		{
			TemplateID:           TemplateFrontendReact,
			DisplayName:          "React Frontend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechReact},
			Responsibilities:     []string{"Component design", "State management", "API integration", "Responsive UI"},
			ToolIDs:              []string{"code_generator", "ui_designer"},
			DefaultConfig:        map[string]any{"framework": "react"},
		},
		{
			TemplateID:           TemplateFrontendAngular,
			DisplayName:          "Angular Frontend Developer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechAngular},
			Responsibilities:     []string{"Component design", "Services", "API integration"},
			ToolIDs:              []string{"code_generator", "ui_designer"},
			DefaultConfig:        map[string]any{"framework": "angular"},
		},
		{
			TemplateID:           TemplateDatabaseEngineer,
			DisplayName:          "Database Engineer",
			Kind:                 models.KindCode,
			RequiredTechnologies: []models.Technology{models.TechPostgres},
			Responsibilities:     []string{"Schema design", "Query optimization", "Migrations", "Indexing"},
			ToolIDs:              []string{"database_designer", "query_analyzer"},
			DefaultConfig:        map[string]any{"engine": "postgres"},
		},
		{
			TemplateID:           TemplateDevOpsEngineer,
			DisplayName:          "DevOps Engineer",
			Kind:                 models.KindWorkflow,
			RequiredTechnologies: []models.Technology{models.TechDocker},
			Responsibilities:     []string{"Containerization", "CI/CD pipelines", "Deployment", "Monitoring"},
			ToolIDs:              []string{"dockerfile_generator", "pipeline_builder"},
			DefaultConfig:        map[string]any{"platform": "docker"},
		},
		{
			TemplateID:       TemplateTechnicalWriter,
			DisplayName:      "Technical Writer",
			Kind:             models.KindDocumentation,
			Responsibilities: []string{"API documentation", "User guides", "Architecture notes", "Shared vocabulary"},
			ToolIDs:          []string{"doc_generator"},
			DefaultConfig:    map[string]any{"format": "markdown"},
		},
		{
			TemplateID:       TemplateQAEngineer,
			DisplayName:      "QA Engineer",
			Kind:             models.KindAnalysis,
			Responsibilities: []string{"Test planning", "Test implementation", "Coverage analysis", "Regression detection"},
			ToolIDs:          []string{"test_generator", "coverage_analyzer"},
			DefaultConfig:    map[string]any{"style": "table_driven"},
		},
	}
}

// RegisterBuiltins seeds the registry with the stock catalog, each backed
// by the LLM worker.
func RegisterBuiltins(registry *Registry) error {
	for _, template := range BuiltinTemplates() {
		t := template
		err := registry.Register(Registration{
			Template: t,
			Factory: func(cfg map[string]any, client llm.Client) (Worker, error) {
				return NewLLMWorker(t, cfg, client)
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
