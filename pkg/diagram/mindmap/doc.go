// Package mindmap builds Mermaid mindmaps.
//
// The root of a [Mindmap] is its title, wrapped in the mindmap shape. Every
// [Level] below it is rendered one tab deeper than its parent:
//
//	root := mindmap.NewLevel("Tools", mindmap.WithChildren(
//	    mindmap.NewLevel("Pen", mindmap.WithShape(mindmap.ShapeCircle)),
//	))
//	m := mindmap.New("Mindmap", []*mindmap.Level{root}, mindmap.Options{})
//
// Icons are only rendered on leaf levels.
package mindmap
