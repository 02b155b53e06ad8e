// Package sequence builds Mermaid sequence diagrams.
//
// # Elements
//
// Every [Element] renders one or more complete, newline-terminated lines and
// is appended to the diagram in order:
//
//   - [Actor], [Participant]: lifelines. Actors are referenced by name,
//     participants by their normalized name.
//   - [Box]: groups lifelines.
//   - [Note]: a note beside or over lifelines.
//   - [Link]: a message between two lifelines, optionally activating or
//     deactivating the target.
//   - [Rect]: a colored background around other elements.
//   - [Loop], [Alt], [Opt], [Par], [Critical], [Break]: control-flow blocks.
//     Blocks nest freely; their children are emitted as they render.
//
// # Validation
//
// [NewNote] and [NewRect] validate their input and return an error with code
// INVALID_INPUT: a note over several lifelines must use [Over], and a rect
// color needs exactly three components in [0, 255].
//
//	alice := sequence.NewParticipant("Alice")
//	john := sequence.NewActor("John")
//	note, err := sequence.NewNote("hi", sequence.Over, alice, john)
//	d := sequence.New("greeting", []sequence.Element{
//	    alice, john, note,
//	    sequence.NewLink(alice, john, sequence.SolidArrow, "Hello John"),
//	}, sequence.Options{AutoNumber: true})
package sequence
