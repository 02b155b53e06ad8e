// Package dot previews flowcharts offline through Graphviz.
//
// [FromFlowChart] converts a flowchart to DOT source: shapes map to the
// closest Graphviz shape, subgraphs become clusters, and link styles map to
// edge styles. [Render] lays the DOT out with the embedded Graphviz build, so
// no render server is needed:
//
//	src := dot.FromFlowChart(fc)
//	svg, err := dot.Render(ctx, src, dot.SVG)
//
// The preview approximates what Mermaid draws. Click handlers and class
// styles other than fill and stroke are not carried over.
package dot
