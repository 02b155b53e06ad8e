// Package diagram holds the building blocks shared by every Mermaid diagram
// family: identifier normalization, class styles, the theme directive block,
// directions, icons and the [Graph] base that assembles and persists a script.
//
// # Overview
//
// A diagram is built once from fully constructed elements. Each family
// package (flowchart, erdiagram, sequence, statediagram, mindmap, piechart,
// timeline, userjourney, reqdiagram) embeds [Graph] and renders its body into
// Graph.Script at construction time. The finished script looks like:
//
//	---
//	title: <title>
//	---
//	%%{ ... }%%          (only when a Config is set, followed by a blank line)
//	<keyword> [header]
//	<elements...>
//
// Rendering is a pure function of the element fields. Mutating an element
// after the diagram was built does not change Script until the family's
// Build method is called again.
//
// # Identifiers
//
// [NormalizeID] turns display text into the token used to reference an
// element inside the script: every character outside [A-Za-z0-9_.-] becomes
// an underscore and the result is lowercased. Distinct names that normalize to
// the same token are not disambiguated.
//
// # Styles
//
// [Style] renders a classDef line. Families that aggregate styles from their
// elements use [UniqueStyles], which keeps the first style seen for each name
// and preserves that first-seen order.
//
// # Persistence
//
// [Graph.Save] writes the script to a .mmd or .mermaid file and [Load] reads
// one back as a raw [Graph] titled after the file's base name.
package diagram
