// Package types defines the core types and interfaces used throughout tsscaffold.
// This includes the FS interface the scaffolder writes through, the blueprint
// data model (DirectoryEntry, TemplateRule) and the per-item results.
package types
