// Package erdiagram builds Mermaid entity relationship diagrams.
//
// Entities are referenced by their name verbatim. Attributes keep insertion
// order; [Entity.UpdateAttributes] replaces an attribute in place and appends
// unknown ones.
//
//	user := erdiagram.NewEntity("User",
//	    erdiagram.Attr("id", "int", "PK"),
//	    erdiagram.Attr("name", "string", "the name"),
//	)
//	tag := erdiagram.NewEntity("Tag", erdiagram.Bare("id", "int"))
//	link := erdiagram.NewLink(user, tag, erdiagram.ExactlyOne, erdiagram.ZeroOrMore, erdiagram.WithLabel("has"))
//	d := erdiagram.New("shop", []*erdiagram.Entity{user, tag}, []*erdiagram.Link{link}, nil)
package erdiagram
