// Package render groups the ways a diagram script becomes an image.
//
//   - [ink]: a client for mermaid.ink compatible servers, producing SVG and
//     PNG with caching and retries
//   - [dot]: an offline flowchart preview through Graphviz
//
// The diagram packages only produce text. Rendering is always an explicit
// step on top of a finished script:
//
//	fc := flowchart.New("Flow", nodes, links, flowchart.Options{})
//	client, err := ink.New(ink.Config{})
//	svg, err := client.SVG(ctx, fc.String(), ink.Options{Width: 800})
//
// [ink]: github.com/matzehuels/mermaidkit/pkg/render/ink
// [dot]: github.com/matzehuels/mermaidkit/pkg/render/dot
package render
