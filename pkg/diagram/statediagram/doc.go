// Package statediagram builds Mermaid state diagrams.
//
// States ([State], [Composite], [Concurrent]) and the pseudo-states returned
// by [Start] and [End] implement [Node], the endpoint type of a
// [Transition]. [Choice], [Fork] and [Join] declare a special state and the
// transitions around it, and are themselves nodes so transitions may point
// at them.
//
// A [Transition] with a nil endpoint uses a fresh pseudo-state, rendered as
// "[*]":
//
//	idle := statediagram.NewState("Idle")
//	busy := statediagram.NewState("Busy", statediagram.WithContent("Working"))
//	d := statediagram.New("worker",
//	    []statediagram.Node{idle, busy},
//	    []statediagram.Element{
//	        statediagram.NewTransition(nil, idle, ""),
//	        statediagram.NewTransition(idle, busy, "job"),
//	    },
//	    statediagram.Options{Direction: diagram.LeftToRight},
//	)
//
// Styles attached to the top-level states are emitted once per name before
// the states.
package statediagram
