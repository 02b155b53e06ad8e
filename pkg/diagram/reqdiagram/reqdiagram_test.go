package reqdiagram

import (
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
)

func TestRequirementString(t *testing.T) {
	tests := []struct {
		name string
		req  *Requirement
		want string
	}{
		{
			"free strings",
			NewRequirement("1", "test_req", "the test text.", "requirement", "high", "Test"),
			"requirement test_req {\n\tid: 1\n\ttext: the test text.\n\trisk: high\n\tverifymethod: Test\n}\n",
		},
		{
			"constants",
			NewRequirement("1", "test_req", "the test text.", TypeInterface, RiskLow, VerifyAnalysis),
			"interfaceRequirement test_req {\n\tid: 1\n\ttext: the test text.\n\trisk: Low\n\tverifymethod: Analysis\n}\n",
		},
	}
	for _, tt := range tests {
		if got := tt.req.String(); got != tt.want {
			t.Errorf("%s: String() =\n%q\nwant\n%q", tt.name, got, tt.want)
		}
	}
}

func TestElementString(t *testing.T) {
	e := NewElement("test_entity", "simulation", "/test/test_....py")
	want := "element test_entity {\n\ttype: \"simulation\"\n\tdocRef: /test/test_....py\n}\n"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	e = NewElement("test_entity", "simulation", "")
	want = "element test_entity {\n\ttype: \"simulation\"\n}\n"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLinkString(t *testing.T) {
	ent := NewElement("test_entity", "simulation", "")
	r1 := NewRequirement("1", "test_req", "", TypeRequirement, RiskLow, VerifyTest)
	r2 := NewRequirement("2", "test_req2", "", TypeRequirement, RiskLow, VerifyTest)

	if got, want := NewLink(ent, r1, LinkTraces).String(), "test_entity - traces -> test_req"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NewLink(r1, r2, LinkContains).String(), "test_req - contains -> test_req2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	if got, err := ParseType("FUNCTIONALREQUIREMENT"); err != nil || got != TypeFunctional {
		t.Errorf("ParseType = %q, %v", got, err)
	}
	if got, err := ParseRisk("high"); err != nil || got != RiskHigh {
		t.Errorf("ParseRisk = %q, %v", got, err)
	}
	if got, err := ParseVerifyMethod(" test "); err != nil || got != VerifyTest {
		t.Errorf("ParseVerifyMethod = %q, %v", got, err)
	}
	for _, err := range []error{
		func() error { _, err := ParseType("wish"); return err }(),
		func() error { _, err := ParseRisk("none"); return err }(),
		func() error { _, err := ParseVerifyMethod("guess"); return err }(),
	} {
		if !errors.IsValidation(err) {
			t.Errorf("error = %v, want validation", err)
		}
	}
}

func TestRequirementDiagram(t *testing.T) {
	elements := []*Element{
		NewElement("test_entity_1", "simulation", ""),
		NewElement("test_entity_2", "simulation", ""),
	}
	requirements := []*Requirement{
		NewRequirement("1.1", "test_req_1", "the test text.", TypeRequirement, "high", VerifyTest),
		NewRequirement("1.2", "test_req_2", "the test text.", TypeRequirement, "high", VerifyTest),
	}
	links := []*Link{
		NewLink(elements[0], requirements[0], LinkTraces),
		NewLink(elements[1], requirements[1], LinkTraces),
		NewLink(requirements[0], requirements[1], LinkContains),
	}
	body := "requirementDiagram\n" +
		"element test_entity_1 {\n\ttype: \"simulation\"\n}\n" +
		"element test_entity_2 {\n\ttype: \"simulation\"\n}\n" +
		"requirement test_req_1 {\n\tid: 1.1\n\ttext: the test text.\n\trisk: high\n\tverifymethod: Test\n}\n" +
		"requirement test_req_2 {\n\tid: 1.2\n\ttext: the test text.\n\trisk: high\n\tverifymethod: Test\n}\n" +
		"test_entity_1 - traces -> test_req_1\n" +
		"test_entity_2 - traces -> test_req_2\n" +
		"test_req_1 - contains -> test_req_2\n"
	header := "---\ntitle: simple requirement\n---\n"

	d := New("simple requirement", elements, requirements, links, nil)
	if d.Script != header+body {
		t.Errorf("Script =\n%q\nwant\n%q", d.Script, header+body)
	}

	cfg := &diagram.Config{PrimaryColor: "red"}
	d = New("simple requirement", elements, requirements, links, cfg)
	if want := header + cfg.String() + "\n" + body; d.Script != want {
		t.Errorf("Script =\n%q\nwant\n%q", d.Script, want)
	}
}
