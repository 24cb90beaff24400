package pipeline

import (
	"strings"
	"testing"
)

func TestStepsOrder(t *testing.T) {
	all := Steps()
	if len(all) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(all))
	}
	for i, s := range all {
		if s.Ordinal != i+1 {
			t.Errorf("step %s ordinal = %d, want %d", s.ID, s.Ordinal, i+1)
		}
	}
	if all[0].ID != "step_1" || all[3].ID != "step_4" {
		t.Errorf("unexpected step ids: %s ... %s", all[0].ID, all[3].ID)
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID("step_2")
	if !ok {
		t.Fatal("step_2 not found")
	}
	if s.Name != "Select Assets" {
		t.Errorf("step_2 name = %q, want %q", s.Name, "Select Assets")
	}

	if _, ok := ByID("step_9"); ok {
		t.Error("expected step_9 to be unknown")
	}
	if ValidStepID("step_9") {
		t.Error("ValidStepID(step_9) = true")
	}
}

func TestRenderPrompt(t *testing.T) {
	s := StepDefinition{PromptTemplate: "{{ecp_name}} in {{country}} ({{industry}}): {{problem_core}}\n\n{{context}}"}
	got := s.RenderPrompt(Vars{
		ECPName:     "Launch",
		ProblemCore: "low awareness",
		Country:     "Spain",
		Industry:    "fintech",
		Context:     "doc text",
	})
	want := "Launch in Spain (fintech): low awareness\n\ndoc text"
	if got != want {
		t.Errorf("RenderPrompt = %q, want %q", got, want)
	}
}

func TestRenderPromptLeavesUnknownPlaceholders(t *testing.T) {
	s := StepDefinition{PromptTemplate: "{{ecp_name}} {{unknown}}"}
	got := s.RenderPrompt(Vars{ECPName: "x"})
	if got != "x {{unknown}}" {
		t.Errorf("RenderPrompt = %q", got)
	}
}

func TestAllPromptsReferenceContext(t *testing.T) {
	for _, s := range Steps() {
		if !strings.Contains(s.PromptTemplate, "{{context}}") {
			t.Errorf("step %s template does not reference {{context}}", s.ID)
		}
		if !s.RequiresContext() {
			t.Errorf("step %s should require context", s.ID)
		}
	}
}
