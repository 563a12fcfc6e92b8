// Package blueprint loads the declarative description of a project skeleton.
//
// A blueprint is a TOML document with three parts:
//
//	name = "TsStoreX"
//
//	[[directories]]
//	path = "src/core"
//	files = ["index.ts", "store.ts"]
//
//	[[templates]]
//	match = "*.ts"
//	source = "templates/ts.tmpl"
//
// Directories are scaffolded in the order they are declared; "." is the
// project root. Template rules give each file its initial content. A rule's
// source is read relative to the blueprint file, or its content can be
// written inline. Rules without an explicit kind are globs when the match
// contains a glob metacharacter and exact names otherwise.
//
// The built-in blueprint is embedded in the binary and describes the
// TsStoreX layout.
package blueprint
