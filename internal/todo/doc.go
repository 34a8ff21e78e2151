// Package todo implements the record store behind the todo CLI.
//
// The record file (todo.dat) is line-delimited JSON: one object per
// line, each of the form
//
//	{"label": "buy milk", "complete": false}
//
// with a trailing newline per record and no array wrapper. List order on
// disk is display order; items are addressed by their 1-based position
// in that order and carry no stable identifier.
//
// # Selectors
//
// Mutating operations take selectors, each either a keyword ("all", and
// for Remove also "checked"/"completed") or a 1-based position. A
// selector that fails to parse as a positive integer is an error; a
// position beyond the end of the list is a deliberate silent no-op so
// batch position lists stay forgiving.
//
// # Validation
//
// Each record line is validated against an embedded JSON Schema
// (draft 2020-12) requiring both fields with the right types, so a line
// that is valid JSON but not a valid record is rejected at load time.
//
// # Persistence
//
// Save rewrites the whole file through a same-directory temp file and
// rename. There is no locking: concurrent invocations race and the last
// writer wins.
package todo
