// Package rules resolves the initial content of a scaffolded file.
//
// Template rules are evaluated in sequence and the first match wins:
//
//   - `index.ts` - Exact filename match
//   - `*.ts` - Glob pattern match (filepath.Match on the base name)
//
// Exact rules are always tried before glob rules, whatever order the
// blueprint lists them in, so a named file can never be shadowed by an
// extension pattern. Within each group declaration order is kept. A file
// no rule matches resolves to empty content.
package rules
