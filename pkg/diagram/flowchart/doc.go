// Package flowchart builds Mermaid flowcharts.
//
// # Overview
//
// A [FlowChart] is made of [Node] values connected by [Link] values. Nodes
// are identified by the normalized form of their name while the name itself
// stays the displayed label:
//
//	a := flowchart.NewNode("First Node")
//	b := flowchart.NewNode("Second Node", flowchart.WithShape(flowchart.ShapeHexagon))
//	fc := flowchart.New("simple flowchart",
//	    []*flowchart.Node{a, b},
//	    []*flowchart.Link{flowchart.NewLink(a, b, flowchart.WithMessage("next"))},
//	    flowchart.Options{Orientation: diagram.LeftToRight},
//	)
//	fmt.Print(fc.Script)
//
// # Subgraphs
//
// A node with sub-nodes renders as a subgraph block. Subgraphs never render
// shape brackets or click handlers. Nodes built with [NewNode] default to a
// left-to-right subgraph direction; set Direction to "" to omit the line.
//
// # Styles
//
// Styles attached to top-level nodes are collected once per name and emitted
// as classDef lines before the nodes. Styles of nested sub-nodes are not
// collected.
package flowchart
