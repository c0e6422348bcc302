// Package documents finds program documents on disk and turns them into
// descriptors.
//
// A program document is a JSON object of the form
//
//	{ "files": [ { "name": "...", "path": "...", "movable": true, "help": "..." } ] }
//
// Discovery and decoding fail the whole run; problems inside a single
// entry never do.
package documents
