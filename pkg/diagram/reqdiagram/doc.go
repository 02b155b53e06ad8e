// Package reqdiagram builds Mermaid requirement diagrams.
//
// A [RequirementDiagram] lists its elements, then its requirements, then the
// links between them:
//
//	req := reqdiagram.NewRequirement("1", "test_req", "the test text.",
//	    reqdiagram.TypeRequirement, reqdiagram.RiskHigh, reqdiagram.VerifyTest)
//	ent := reqdiagram.NewElement("test_entity", "simulation", "")
//	d := reqdiagram.New("requirements",
//	    []*reqdiagram.Element{ent},
//	    []*reqdiagram.Requirement{req},
//	    []*reqdiagram.Link{reqdiagram.NewLink(ent, req, reqdiagram.LinkTraces)},
//	    nil,
//	)
//
// Types, risks, verification methods and link types are plain strings, so
// values Mermaid adds later can be used without a new constant.
package reqdiagram
