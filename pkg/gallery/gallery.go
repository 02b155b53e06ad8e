// Package gallery provides one ready-made diagram per family.
//
// The samples back the CLI example command and the server's /examples
// routes. Each call to [Build] returns a fresh diagram, so callers may
// mutate and rebuild it.
package gallery

import (
	"sort"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/diagram/erdiagram"
	"github.com/matzehuels/mermaidkit/pkg/diagram/flowchart"
	"github.com/matzehuels/mermaidkit/pkg/diagram/mindmap"
	"github.com/matzehuels/mermaidkit/pkg/diagram/piechart"
	"github.com/matzehuels/mermaidkit/pkg/diagram/reqdiagram"
	"github.com/matzehuels/mermaidkit/pkg/diagram/sequence"
	"github.com/matzehuels/mermaidkit/pkg/diagram/statediagram"
	"github.com/matzehuels/mermaidkit/pkg/diagram/timeline"
	"github.com/matzehuels/mermaidkit/pkg/diagram/userjourney"
	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Family names.
const (
	Flowchart    = "flowchart"
	ER           = "erdiagram"
	Sequence     = "sequence"
	State        = "statediagram"
	Mindmap      = "mindmap"
	Pie          = "piechart"
	Timeline     = "timeline"
	UserJourney  = "userjourney"
	Requirements = "reqdiagram"
)

var builders = map[string]func() diagram.Diagram{
	Flowchart:    flowchartSample,
	ER:           erSample,
	Sequence:     sequenceSample,
	State:        stateSample,
	Mindmap:      mindmapSample,
	Pie:          pieSample,
	Timeline:     timelineSample,
	UserJourney:  journeySample,
	Requirements: requirementSample,
}

// Families returns the family names in alphabetical order.
func Families() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the sample diagram of a family.
func Build(family string) (diagram.Diagram, error) {
	build, ok := builders[family]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown diagram family %q", family)
	}
	return build(), nil
}

func flowchartSample() diagram.Diagram {
	highlight := diagram.Style{Name: "highlight", Fill: "#f9f", Stroke: "#333", StrokeWidth: "4px"}
	start := flowchart.NewNode("Start", flowchart.WithShape(flowchart.ShapeStadium))
	decide := flowchart.NewNode("Is it working?", flowchart.WithShape(flowchart.ShapeRhombus), flowchart.WithStyles(highlight))
	fix := flowchart.NewNode("Fix it")
	done := flowchart.NewNode("Done", flowchart.WithShape(flowchart.ShapeCircle))
	return flowchart.New("Debugging", []*flowchart.Node{start, decide, fix, done}, []*flowchart.Link{
		flowchart.NewLink(start, decide),
		flowchart.NewLink(decide, fix, flowchart.WithMessage("no")),
		flowchart.NewLink(fix, decide, flowchart.WithLinkShape(flowchart.LinkDotted)),
		flowchart.NewLink(decide, done, flowchart.WithMessage("yes")),
	}, flowchart.Options{Orientation: diagram.TopToBottom})
}

func erSample() diagram.Diagram {
	customer := erdiagram.NewEntity("Customer",
		erdiagram.Attr("id", "int", string(erdiagram.PrimaryKey)),
		erdiagram.Bare("name", "string"),
	)
	order := erdiagram.NewEntity("Order",
		erdiagram.Attr("id", "int", string(erdiagram.PrimaryKey)),
		erdiagram.Attr("customer_id", "int", string(erdiagram.ForeignKey), "placed by"),
	)
	return erdiagram.New("Orders", []*erdiagram.Entity{customer, order}, []*erdiagram.Link{
		erdiagram.NewLink(customer, order, erdiagram.ExactlyOne, erdiagram.ZeroOrMore, erdiagram.WithLabel("places")),
	}, nil)
}

func sequenceSample() diagram.Diagram {
	alice := sequence.NewActor("Alice")
	bob := sequence.NewParticipant("Bob")
	note, _ := sequence.NewNote("thinking", sequence.Over, alice, bob)
	return sequence.New("Greeting", []sequence.Element{
		alice,
		bob,
		sequence.NewLink(alice, bob, sequence.SolidArrow, "Hello Bob", sequence.Activate()),
		note,
		sequence.NewAlt(
			sequence.On("is well", sequence.NewLink(bob, alice, sequence.DottedArrow, "Great!")),
			sequence.On("is sick", sequence.NewLink(bob, alice, sequence.DottedArrow, "Not so good")),
		),
		sequence.NewLink(bob, alice, sequence.DottedArrow, "Bye", sequence.Deactivate()),
	}, sequence.Options{AutoNumber: true})
}

func stateSample() diagram.Diagram {
	idle := statediagram.NewState("Idle")
	moving := statediagram.NewState("Moving")
	crash := statediagram.NewState("Crash")
	return statediagram.New("Vehicle",
		[]statediagram.Node{idle, moving, crash},
		[]statediagram.Element{
			statediagram.NewTransition(nil, idle, ""),
			statediagram.NewTransition(idle, moving, "start"),
			statediagram.NewTransition(moving, idle, "stop"),
			statediagram.NewTransition(moving, crash, ""),
			statediagram.NewTransition(crash, nil, ""),
		},
		statediagram.Options{},
	)
}

func mindmapSample() diagram.Diagram {
	origins := mindmap.NewLevel("Origins", mindmap.WithChildren(
		mindmap.NewLevel("Long history", mindmap.WithIcon(diagram.Icon{Name: "fa-book", Type: "fa"})),
		mindmap.NewLevel("Popularisation"),
	))
	tools := mindmap.NewLevel("Tools", mindmap.WithShape(mindmap.ShapeCloud), mindmap.WithChildren(
		mindmap.NewLevel("Pen and paper"),
		mindmap.NewLevel("Mermaid", mindmap.WithShape(mindmap.ShapeBang)),
	))
	return mindmap.New("Mindmap", []*mindmap.Level{origins, tools}, mindmap.Options{Shape: mindmap.ShapeCircle})
}

func pieSample() diagram.Diagram {
	return piechart.New("Pets adopted", []piechart.Slice{
		{Label: "Dogs", Value: 386},
		{Label: "Cats", Value: 85.5},
		{Label: "Rats", Value: 15},
	}, piechart.Options{ShowData: true})
}

func timelineSample() diagram.Diagram {
	return timeline.New("History of Social Media", []timeline.Event{
		{Date: "2002", Description: "LinkedIn"},
		{Date: "2004", Description: "Facebook : Google"},
		{Date: "2005", Description: "Youtube"},
	}, nil)
}

func journeySample() diagram.Diagram {
	me, cat := userjourney.Actor{Name: "Me"}, userjourney.Actor{Name: "Cat"}
	return userjourney.New("My working day", []userjourney.Element{
		userjourney.NewSection("Go to work",
			userjourney.NewTask("Make tea", 5, me),
			userjourney.NewTask("Go upstairs", 3, me),
			userjourney.NewTask("Do work", 1, me, cat),
		),
		userjourney.NewSection("Go home",
			userjourney.NewTask("Go downstairs", 5, me),
			userjourney.NewTask("Sit down", 5, me),
		),
	}, nil)
}

func requirementSample() diagram.Diagram {
	req := reqdiagram.NewRequirement("1", "test_req", "the test text.",
		reqdiagram.TypeRequirement, reqdiagram.RiskHigh, reqdiagram.VerifyTest)
	perf := reqdiagram.NewRequirement("1.1", "perf_req", "the system shall respond quickly.",
		reqdiagram.TypePerformance, reqdiagram.RiskMedium, reqdiagram.VerifyDemonstration)
	sim := reqdiagram.NewElement("test_entity", "simulation", "")
	return reqdiagram.New("Requirements",
		[]*reqdiagram.Element{sim},
		[]*reqdiagram.Requirement{req, perf},
		[]*reqdiagram.Link{
			reqdiagram.NewLink(sim, req, reqdiagram.LinkSatisfies),
			reqdiagram.NewLink(req, perf, reqdiagram.LinkContains),
		},
		nil,
	)
}
