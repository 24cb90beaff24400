// Package pipeline holds the static step definitions for the campaign
// content-generation pipeline: ordered steps, their context requirements
// and their prompt templates.
package pipeline

import (
	"strings"

	"campaign-srv/internal/model"
)

// StepDefinition describes one stage of the fixed pipeline.
type StepDefinition struct {
	// ID is the stable step identifier used as the step_outputs key.
	ID string
	// Name is the display name recorded on StepOutput.
	Name string
	// Ordinal is the 1-based execution position.
	Ordinal int
	// RequiredCategories lists the document categories the step expects
	// context from. Empty means the step runs with no context.
	RequiredCategories []model.DocumentCategory
	// PromptTemplate is the step prompt with {{variable}} placeholders.
	PromptTemplate string
}

// Vars are the substitutable values for a prompt template.
type Vars struct {
	ECPName     string
	ProblemCore string
	Country     string
	Industry    string
	Context     string
}

// RenderPrompt substitutes the template's {{variable}} placeholders.
// Unknown placeholders are left intact.
func (s StepDefinition) RenderPrompt(v Vars) string {
	r := strings.NewReplacer(
		"{{ecp_name}}", v.ECPName,
		"{{problem_core}}", v.ProblemCore,
		"{{country}}", v.Country,
		"{{industry}}", v.Industry,
		"{{context}}", v.Context,
	)
	return r.Replace(s.PromptTemplate)
}

// RequiresContext reports whether the step needs at least one selected
// document.
func (s StepDefinition) RequiresContext() bool {
	return len(s.RequiredCategories) > 0
}

var steps = []StepDefinition{
	{
		ID:      "step_1",
		Name:    "Find Place",
		Ordinal: 1,
		RequiredCategories: []model.DocumentCategory{
			model.DocumentCategoryResearch,
			model.DocumentCategoryCompetitor,
		},
		PromptTemplate: findPlacePrompt,
	},
	{
		ID:      "step_2",
		Name:    "Select Assets",
		Ordinal: 2,
		RequiredCategories: []model.DocumentCategory{
			model.DocumentCategoryProduct,
		},
		PromptTemplate: selectAssetsPrompt,
	},
	{
		ID:      "step_3",
		Name:    "Proof Points",
		Ordinal: 3,
		RequiredCategories: []model.DocumentCategory{
			model.DocumentCategoryProduct,
			model.DocumentCategoryResearch,
		},
		PromptTemplate: proofPointsPrompt,
	},
	{
		ID:      "step_4",
		Name:    "Final Output",
		Ordinal: 4,
		RequiredCategories: []model.DocumentCategory{
			model.DocumentCategoryOutput,
		},
		PromptTemplate: finalOutputPrompt,
	},
}

// Steps returns the pipeline steps in ascending ordinal order.
// The returned slice must not be mutated.
func Steps() []StepDefinition {
	return steps
}

// ByID returns the step with the given identifier.
func ByID(id string) (StepDefinition, bool) {
	for _, s := range steps {
		if s.ID == id {
			return s, true
		}
	}
	return StepDefinition{}, false
}

// ValidStepID reports whether id names a pipeline step.
func ValidStepID(id string) bool {
	_, ok := ByID(id)
	return ok
}
