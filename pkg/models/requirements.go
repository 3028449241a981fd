// Package models defines the shared domain types: requirement records,
// agent templates and specifications, workflows, and bus messages.
package models

import "fmt"

// ProjectType classifies what kind of project a workflow builds.
type ProjectType string

const (
	ProjectWebApp        ProjectType = "web_app"
	ProjectAPI           ProjectType = "api"
	ProjectMicroservice  ProjectType = "microservice"
	ProjectCLI           ProjectType = "cli"
	ProjectLibrary       ProjectType = "library"
	ProjectMobile        ProjectType = "mobile"
	ProjectDataPipeline  ProjectType = "data_pipeline"
	ProjectML            ProjectType = "ml"
	ProjectDocumentation ProjectType = "documentation"
	ProjectOther         ProjectType = "other"
)

// ParseProjectType validates a project type tag. Unknown values are an
// error so the analyzer contract can surface them instead of silently
// dropping them.
func ParseProjectType(s string) (ProjectType, error) {
	switch pt := ProjectType(s); pt {
	case ProjectWebApp, ProjectAPI, ProjectMicroservice, ProjectCLI,
		ProjectLibrary, ProjectMobile, ProjectDataPipeline, ProjectML,
		ProjectDocumentation, ProjectOther:
		return pt, nil
	}
	return "", fmt.Errorf("unknown project_type %q", s)
}

// Complexity grades the expected effort of a project.
type Complexity string

const (
	ComplexitySimple     Complexity = "simple"
	ComplexityMedium     Complexity = "medium"
	ComplexityComplex    Complexity = "complex"
	ComplexityEnterprise Complexity = "enterprise"
)

func ParseComplexity(s string) (Complexity, error) {
	switch c := Complexity(s); c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex, ComplexityEnterprise:
		return c, nil
	}
	return "", fmt.Errorf("unknown complexity %q", s)
}

// Technology is a closed set of stack tags recognized by the pool maker.
type Technology string

const (
	TechPythonFastAPI Technology = "python_fastapi"
	TechPythonDjango  Technology = "python_django"
	TechPythonFlask   Technology = "python_flask"
	TechNodeExpress   Technology = "nodejs_express"
	TechNodeNestJS    Technology = "nodejs_nestjs"
	TechGolang        Technology = "golang"
	TechRust          Technology = "rust"
	TechVue           Technology = "vue"
	TechReact         Technology = "react"
	TechAngular       Technology = "angular"
	TechPostgres      Technology = "database_postgres"
	TechMongoDB       Technology = "database_mongodb"
	TechRedis         Technology = "database_redis"
	TechDocker        Technology = "docker"
	TechKubernetes    Technology = "kubernetes"
	TechAWS           Technology = "aws"
	TechGCP           Technology = "gcp"
	TechAzure         Technology = "azure"
)

// TechCategory groups technologies by the layer they belong to.
type TechCategory string

const (
	CategoryBackend  TechCategory = "backend"
	CategoryFrontend TechCategory = "frontend"
	CategoryDatabase TechCategory = "database"
	CategoryInfra    TechCategory = "infra"
	CategoryCloud    TechCategory = "cloud"
)

var techCategories = map[Technology]TechCategory{
	TechPythonFastAPI: CategoryBackend,
	TechPythonDjango:  CategoryBackend,
	TechPythonFlask:   CategoryBackend,
	TechNodeExpress:   CategoryBackend,
	TechNodeNestJS:    CategoryBackend,
	TechGolang:        CategoryBackend,
	TechRust:          CategoryBackend,
	TechVue:           CategoryFrontend,
	TechReact:         CategoryFrontend,
	TechAngular:       CategoryFrontend,
	TechPostgres:      CategoryDatabase,
	TechMongoDB:       CategoryDatabase,
	TechRedis:         CategoryDatabase,
	TechDocker:        CategoryInfra,
	TechKubernetes:    CategoryInfra,
	TechAWS:           CategoryCloud,
	TechGCP:           CategoryCloud,
	TechAzure:         CategoryCloud,
}

// ParseTechnology validates a technology tag against the closed set.
func ParseTechnology(s string) (Technology, error) {
	t := Technology(s)
	if _, ok := techCategories[t]; !ok {
		return "", fmt.Errorf("unknown technology %q", s)
	}
	return t, nil
}

// Category reports which layer a technology belongs to.
func (t Technology) Category() TechCategory {
	return techCategories[t]
}

// Flags are the boolean feature switches the analyzer extracts.
type Flags struct {
	HasAuth          bool `json:"has_auth"`
	HasDatabase      bool `json:"has_database"`
	HasRealtime      bool `json:"has_realtime"`
	HasDeployment    bool `json:"has_deployment"`
	HasTesting       bool `json:"has_testing"`
	HasDocumentation bool `json:"has_documentation"`
}

// Requirements is the typed record the pool maker consumes. It is produced
// by the analyzer collaborator and normalized before use.
type Requirements struct {
	ProjectType  ProjectType  `json:"project_type"`
	Technologies []Technology `json:"technologies"`
	Features     []string     `json:"features"`
	Complexity   Complexity   `json:"complexity"`
	Flags        Flags        `json:"flags"`
}

// DefaultRequirements returns the fallback record used when analysis
// yields nothing usable: a medium web app with testing and documentation.
func DefaultRequirements() Requirements {
	return Requirements{
		ProjectType: ProjectWebApp,
		Complexity:  ComplexityMedium,
		Flags: Flags{
			HasTesting:       true,
			HasDocumentation: true,
		},
	}
}

// HasTechnology reports whether the tag is present.
func (r *Requirements) HasTechnology(t Technology) bool {
	for _, have := range r.Technologies {
		if have == t {
			return true
		}
	}
	return false
}

// HasCategory reports whether any technology of the given layer is present.
func (r *Requirements) HasCategory(c TechCategory) bool {
	for _, t := range r.Technologies {
		if t.Category() == c {
			return true
		}
	}
	return false
}

// Normalize enforces the record's structural invariants in place and
// returns human-readable warnings for each adjustment:
//   - deployment implies docker,
//   - a web_app with frontend technologies but no backend is downgraded
//     to simple complexity.
func (r *Requirements) Normalize() []string {
	var warnings []string
	if r.ProjectType == "" {
		r.ProjectType = ProjectWebApp
	}
	if r.Complexity == "" {
		r.Complexity = ComplexityMedium
	}
	if r.Flags.HasDeployment && !r.HasTechnology(TechDocker) {
		r.Technologies = append(r.Technologies, TechDocker)
		warnings = append(warnings, "deployment requested without docker; added docker to technologies")
	}
	if r.ProjectType == ProjectWebApp && r.HasCategory(CategoryFrontend) && !r.HasCategory(CategoryBackend) {
		r.Complexity = ComplexitySimple
		warnings = append(warnings, "frontend technologies without a backend; complexity downgraded to simple")
	}
	return warnings
}
