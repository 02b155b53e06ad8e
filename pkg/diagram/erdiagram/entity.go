package erdiagram

import (
	"fmt"
	"strings"
)

// Constraint is an attribute key marker.
type Constraint string

const (
	PrimaryKey Constraint = "PK"
	ForeignKey Constraint = "FK"
	UniqueKey  Constraint = "UK"
)

func isConstraint(s string) bool {
	switch Constraint(s) {
	case PrimaryKey, ForeignKey, UniqueKey:
		return true
	}
	return false
}

// Attribute is one typed column of an entity.
type Attribute struct {
	Name       string
	Type       string
	Constraint Constraint
	Comment    string
	// Listed marks an attribute given in list form. A listed attribute with
	// neither constraint nor comment renders without indentation.
	Listed bool
}

// Bare returns a plain "type name" attribute.
func Bare(name, typ string) Attribute {
	return Attribute{Name: name, Type: typ}
}

// Attr builds an attribute from its list form: the type, then optionally a
// key constraint (PK, FK or UK) and/or a comment. With two elements the
// second is a constraint when it is one of the key markers and a comment
// otherwise.
func Attr(name string, def ...string) Attribute {
	a := Attribute{Name: name, Listed: true}
	switch len(def) {
	case 0:
	case 1:
		a.Type = def[0]
	case 2:
		a.Type = def[0]
		if isConstraint(def[1]) {
			a.Constraint = Constraint(def[1])
		} else {
			a.Comment = def[1]
		}
	default:
		a.Type, a.Constraint, a.Comment = def[0], Constraint(def[1]), def[2]
	}
	return a
}

// String renders the attribute line including its trailing newline.
func (a Attribute) String() string {
	switch {
	case a.Constraint != "" && a.Comment != "":
		return fmt.Sprintf("\t%s %s %s \"%s\"\n", a.Type, a.Name, a.Constraint, a.Comment)
	case a.Constraint != "":
		return fmt.Sprintf("\t%s %s %s\n", a.Type, a.Name, a.Constraint)
	case a.Comment != "":
		return fmt.Sprintf("\t%s %s \"%s\"\n", a.Type, a.Name, a.Comment)
	case a.Listed:
		return fmt.Sprintf("%s %s\n", a.Type, a.Name)
	}
	return fmt.Sprintf("\t%s %s\n", a.Type, a.Name)
}

// Entity is a table-like box with ordered attributes.
type Entity struct {
	Name       string
	Attributes []Attribute
}

// NewEntity creates an entity with the given attributes.
func NewEntity(name string, attrs ...Attribute) *Entity {
	e := &Entity{Name: name}
	e.UpdateAttributes(attrs...)
	return e
}

// Attribute returns the attribute with the given name.
func (e *Entity) Attribute(name string) (Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// AddAttribute appends an attribute in list form. Empty constraint or
// comment are left out.
func (e *Entity) AddAttribute(name, typ string, constraint Constraint, comment string) {
	e.UpdateAttributes(Attribute{
		Name:       name,
		Type:       typ,
		Constraint: constraint,
		Comment:    comment,
		Listed:     true,
	})
}

// UpdateAttributes replaces attributes with the same name in place and
// appends the others.
func (e *Entity) UpdateAttributes(attrs ...Attribute) {
	for _, a := range attrs {
		replaced := false
		for i := range e.Attributes {
			if e.Attributes[i].Name == a.Name {
				e.Attributes[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			e.Attributes = append(e.Attributes, a)
		}
	}
}

// String renders "<name>{\n<attributes>}".
func (e *Entity) String() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString("{\n")
	for _, a := range e.Attributes {
		b.WriteString(a.String())
	}
	b.WriteString("}")
	return b.String()
}
