// Package pkg provides the mermaidkit libraries.
//
// # Overview
//
// mermaidkit builds Mermaid diagram definitions from Go values. The pkg
// directory is organized into four areas:
//
//  1. [diagram] - The object model and script assembly, one subpackage per
//     diagram family
//  2. [render] - Turning scripts into SVG and PNG (render server client,
//     offline Graphviz preview)
//  3. [store], [io] - Saved diagrams and their JSON bundles
//  4. [server], [config], [cache] - The HTTP front end and its infrastructure
//
// # Architecture
//
//	Go values (nodes, entities, messages, ...)
//	         ↓
//	    [diagram] family constructors (New → Build → Script)
//	         ↓
//	    .mmd file / [store] document
//	         ↓
//	    [render/ink] client (cache + retry) → SVG / PNG
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mermaidkit/pkg/diagram/flowchart"
//	    "github.com/matzehuels/mermaidkit/pkg/render/ink"
//	)
//
//	a := flowchart.NewNode("Start")
//	b := flowchart.NewNode("Stop", flowchart.WithShape(flowchart.ShapeCircle))
//	fc := flowchart.New("Simple", []*flowchart.Node{a, b},
//	    []*flowchart.Link{flowchart.NewLink(a, b)}, flowchart.Options{})
//
//	if err := fc.Save("simple.mmd"); err != nil {
//	    return err
//	}
//
//	client, err := ink.New(ink.Config{})
//	if err != nil {
//	    return err
//	}
//	png, err := client.PNG(ctx, fc.String(), ink.Options{Width: 600, Scale: 2})
//
// # Error Handling
//
// Every package returns errors from [errors] carrying a machine-readable
// code, so callers branch on errors.IsValidation or errors.IsNotFound rather
// than on message text.
//
// [diagram]: github.com/matzehuels/mermaidkit/pkg/diagram
// [render]: github.com/matzehuels/mermaidkit/pkg/render
// [render/ink]: github.com/matzehuels/mermaidkit/pkg/render/ink
// [store]: github.com/matzehuels/mermaidkit/pkg/store
// [io]: github.com/matzehuels/mermaidkit/pkg/io
// [server]: github.com/matzehuels/mermaidkit/pkg/server
// [config]: github.com/matzehuels/mermaidkit/pkg/config
// [cache]: github.com/matzehuels/mermaidkit/pkg/cache
// [errors]: github.com/matzehuels/mermaidkit/pkg/errors
package pkg
