package reqdiagram

import "strings"

// Element is something that satisfies, traces or otherwise relates to
// requirements.
type Element struct {
	Name   string
	Type   string
	DocRef string
}

// NewElement creates an element. docRef may be empty.
func NewElement(name, typ, docRef string) *Element {
	return &Element{Name: name, Type: typ, DocRef: docRef}
}

// NodeName returns the element name.
func (e *Element) NodeName() string { return e.Name }

// String renders the element block, terminated by a newline.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("element " + e.Name + " {\n")
	b.WriteString("\ttype: \"" + e.Type + "\"\n")
	if e.DocRef != "" {
		b.WriteString("\tdocRef: " + e.DocRef + "\n")
	}
	b.WriteString("}\n")
	return b.String()
}
