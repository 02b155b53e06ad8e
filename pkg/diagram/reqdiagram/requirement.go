package reqdiagram

import (
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Type is the kind of a requirement.
type Type string

const (
	TypeRequirement      Type = "requirement"
	TypeFunctional       Type = "functionalRequirement"
	TypeInterface        Type = "interfaceRequirement"
	TypePerformance      Type = "performanceRequirement"
	TypePhysical         Type = "physicalRequirement"
	TypeDesignConstraint Type = "designConstraint"
)

// Risk is the risk level of a requirement.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

// VerifyMethod is how a requirement is verified.
type VerifyMethod string

const (
	VerifyAnalysis      VerifyMethod = "Analysis"
	VerifyInspection    VerifyMethod = "Inspection"
	VerifyTest          VerifyMethod = "Test"
	VerifyDemonstration VerifyMethod = "Demonstration"
)

// ParseType matches a requirement type case-insensitively.
func ParseType(s string) (Type, error) {
	for _, t := range []Type{TypeRequirement, TypeFunctional, TypeInterface, TypePerformance, TypePhysical, TypeDesignConstraint} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown requirement type %q", s)
}

// ParseRisk matches a risk level case-insensitively.
func ParseRisk(s string) (Risk, error) {
	for _, r := range []Risk{RiskLow, RiskMedium, RiskHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown risk %q", s)
}

// ParseVerifyMethod matches a verification method case-insensitively.
func ParseVerifyMethod(s string) (VerifyMethod, error) {
	for _, m := range []VerifyMethod{VerifyAnalysis, VerifyInspection, VerifyTest, VerifyDemonstration} {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown verify method %q", s)
}

// Requirement is a requirement block.
type Requirement struct {
	ID           string
	Name         string
	Text         string
	Type         Type
	Risk         Risk
	VerifyMethod VerifyMethod
}

// NewRequirement creates a requirement. Values are rendered verbatim.
func NewRequirement(id, name, text string, typ Type, risk Risk, method VerifyMethod) *Requirement {
	return &Requirement{ID: id, Name: name, Text: text, Type: typ, Risk: risk, VerifyMethod: method}
}

// NodeName returns the requirement name.
func (r *Requirement) NodeName() string { return r.Name }

// String renders the requirement block, terminated by a newline.
func (r *Requirement) String() string {
	var b strings.Builder
	b.WriteString(string(r.Type) + " " + r.Name + " {\n")
	b.WriteString("\tid: " + r.ID + "\n")
	b.WriteString("\ttext: " + r.Text + "\n")
	b.WriteString("\trisk: " + string(r.Risk) + "\n")
	b.WriteString("\tverifymethod: " + string(r.VerifyMethod) + "\n")
	b.WriteString("}\n")
	return b.String()
}
