// Package board models a three-column kanban board and its persisted snapshot.
//
// A board always has exactly three columns, in display order:
//
//   - "todo": work not started
//   - "in-progress": work being done
//   - "done": finished work
//
// Cards carry a label and an in-memory identity. The identity is never
// persisted; two cards with the same label are indistinguishable once saved.
//
// # Snapshot Format
//
// The persisted form is a JSON object with three ordered arrays of labels:
//
//	{
//	  "todo": ["write docs", "ship"],
//	  "inProgress": [],
//	  "done": ["set up repo"]
//	}
//
// Decode validates raw text against an embedded JSON Schema. Missing arrays
// are read as empty. Anything else that does not match is reported as a
// *ValidationError so the caller can fall back to an empty board.
package board
