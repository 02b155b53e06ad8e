package erdiagram

import (
	"reflect"
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
)

func TestEntityString(t *testing.T) {
	tests := []struct {
		name   string
		entity *Entity
		want   string
	}{
		{
			name:   "bare attributes",
			entity: NewEntity("Employee", Bare("id", "int"), Bare("salary", "float"), Bare("name", "string")),
			want:   "Employee{\n\tint id\n\tfloat salary\n\tstring name\n}",
		},
		{
			name: "list forms",
			entity: NewEntity("Employee",
				Attr("id", "int", "PK"),
				Bare("salary", "float"),
				Attr("id_cos", "int", "FK", "comment"),
				Attr("name", "string", "comment"),
			),
			want: "Employee{\n\tint id PK\n\tfloat salary\n\tint id_cos FK \"comment\"\n\tstring name \"comment\"\n}",
		},
		{
			name:   "single element list is not indented",
			entity: NewEntity("Employee", Attr("age", "float")),
			want:   "Employee{\nfloat age\n}",
		},
		{
			name:   "constraint only",
			entity: NewEntity("Employee", Attr("id", "int", "PK")),
			want:   "Employee{\n\tint id PK\n}",
		},
		{
			name:   "empty",
			entity: NewEntity("User"),
			want:   "User{\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.String(); got != tt.want {
				t.Errorf("String() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestUpdateAttributes(t *testing.T) {
	e := NewEntity("Employee", Bare("id", "int"), Bare("name", "string"))
	e.UpdateAttributes(Bare("age", "float"), Attr("id", "int", "PK"))

	want := []Attribute{
		Attr("id", "int", "PK"),
		Bare("name", "string"),
		Bare("age", "float"),
	}
	if !reflect.DeepEqual(e.Attributes, want) {
		t.Errorf("Attributes = %+v, want %+v", e.Attributes, want)
	}
}

func TestAddAttribute(t *testing.T) {
	e := NewEntity("Employee", Bare("id", "int"))
	e.AddAttribute("age", "float", "", "")
	e.AddAttribute("id_cos", "int", ForeignKey, "")
	e.AddAttribute("phone", "string", UniqueKey, "phone number")

	want := []Attribute{
		Bare("id", "int"),
		Attr("age", "float"),
		Attr("id_cos", "int", "FK"),
		Attr("phone", "string", "UK", "phone number"),
	}
	if !reflect.DeepEqual(e.Attributes, want) {
		t.Errorf("Attributes = %+v, want %+v", e.Attributes, want)
	}

	if a, ok := e.Attribute("phone"); !ok || a.Comment != "phone number" {
		t.Errorf("Attribute(phone) = %+v, %v", a, ok)
	}
	if _, ok := e.Attribute("missing"); ok {
		t.Error("Attribute(missing) found")
	}
}

func TestLinkString(t *testing.T) {
	user := NewEntity("User")
	tag := NewEntity("Tag")

	tests := []struct {
		name string
		link *Link
		want string
	}{
		{"no label", NewLink(user, tag, ExactlyOne, ZeroOrMore), `User||--o{Tag : ""`},
		{"label", NewLink(user, tag, ExactlyOne, ZeroOrMore, WithLabel("has")), `User||--o{Tag : "has"`},
		{"dotted", NewLink(user, tag, ExactlyOne, ZeroOrMore, WithDotted()), `User||..o{Tag : ""`},
		{"zero or one to one or more", NewLink(user, tag, ZeroOrOne, OneOrMore), `User|o--|{Tag : ""`},
		{"right symbols", NewLink(user, tag, ZeroOrMore, ZeroOrOne), `User}o--o|Tag : ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.link.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCardinality(t *testing.T) {
	if c, err := ParseCardinality("One-Or-More"); err != nil || c != OneOrMore {
		t.Errorf("ParseCardinality = %q, %v", c, err)
	}
	if _, err := ParseCardinality("many"); err == nil {
		t.Error("ParseCardinality(many) should fail")
	}
}

func TestERDiagramScript(t *testing.T) {
	user := NewEntity("User", Attr("id", "int", "PK"), Attr("name", "string", "the name"))
	tag := NewEntity("Tag", Attr("id", "int", "PK"), Bare("name", "string"))
	links := []*Link{NewLink(user, tag, ExactlyOne, ZeroOrMore, WithDotted())}

	d := New("e-commerce website", []*Entity{user, tag}, links, nil)
	body := "erDiagram\n" +
		"\tUser{\n\t\tint id PK\n\t\tstring name \"the name\"\n\t}\n" +
		"\tTag{\n\t\tint id PK\n\t\tstring name\n\t}\n" +
		"\tUser||..o{Tag : \"\"\n"
	want := "---\ntitle: e-commerce website\n---\n" + body
	if d.Script != want {
		t.Errorf("Script =\n%q\nwant\n%q", d.Script, want)
	}

	cfg := &diagram.Config{Theme: diagram.ThemeDark, PrimaryColor: "red"}
	d = New("e-commerce website", []*Entity{user, tag}, links, cfg)
	want = "---\ntitle: e-commerce website\n---\n" + cfg.String() + "\n" + body
	if d.Script != want {
		t.Errorf("Script =\n%q\nwant\n%q", d.Script, want)
	}
}
