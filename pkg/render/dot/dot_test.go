package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/diagram/flowchart"
	"github.com/matzehuels/mermaidkit/pkg/errors"
)

func sample() *flowchart.FlowChart {
	a := flowchart.NewNode("Start", flowchart.WithShape(flowchart.ShapeStadium))
	b := flowchart.NewNode("Check", flowchart.WithShape(flowchart.ShapeRhombus),
		flowchart.WithStyles(diagram.Style{Name: "hot", Fill: "red", Stroke: "black"}))
	c := flowchart.NewNode("Inner")
	group := flowchart.NewNode("Group", flowchart.WithSubNodes(c))
	return flowchart.New("Flow", []*flowchart.Node{a, b, group}, []*flowchart.Link{
		flowchart.NewLink(a, b, flowchart.WithMessage("go")),
		flowchart.NewLink(b, c, flowchart.WithLinkShape(flowchart.LinkDotted)),
		flowchart.NewLink(c, a, flowchart.WithHeads(flowchart.HeadBullet, flowchart.HeadCross), flowchart.WithLinkShape(flowchart.LinkThick)),
	}, flowchart.Options{Orientation: diagram.LeftToRight})
}

func TestFromFlowChart(t *testing.T) {
	src := FromFlowChart(sample())

	for _, want := range []string{
		"digraph G {",
		"rankdir=LR;",
		`label="Flow";`,
		`"start" [label="Start", shape=box, style="rounded,filled"];`,
		`"check" [label="Check", shape=diamond, fillcolor="red", color="black"];`,
		`subgraph "cluster_group" {`,
		`label="Group";`,
		`"inner" [label="Inner", shape=box];`,
		`"start" -> "check" [label="go", arrowhead=normal];`,
		`"check" -> "inner" [style=dotted, arrowhead=normal];`,
		`"inner" -> "start" [penwidth=3, arrowhead=tee, dir=both, arrowtail=dot];`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("DOT missing %q:\n%s", want, src)
		}
	}
	if !strings.HasSuffix(src, "}\n") {
		t.Error("DOT not terminated")
	}
}

func TestFromFlowChartDefaults(t *testing.T) {
	fc := flowchart.New("", []*flowchart.Node{flowchart.NewNode("A")}, nil, flowchart.Options{})
	src := FromFlowChart(fc)
	if !strings.Contains(src, "rankdir=TB;") {
		t.Errorf("default rankdir missing:\n%s", src)
	}
	if strings.Contains(src, "labelloc") {
		t.Errorf("untitled chart should have no graph label:\n%s", src)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := Render(context.Background(), FromFlowChart(sample()), SVG)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.200s", svg)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(context.Background(), "digraph G {}", "pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("pdf error = %v", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox = %q, want %q", out, want)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("no viewBox should pass through, got %q", got)
	}
}
