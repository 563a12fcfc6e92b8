package types

// RootDir is the DirectoryEntry path that denotes the project root
const RootDir = "."

// DirectoryEntry declares a directory, relative to the project root, and the
// files to create inside it. Files are plain names, created in order.
type DirectoryEntry struct {
	Path  string   `toml:"path"`
	Files []string `toml:"files,omitempty"`
}

// RuleKind selects how a TemplateRule's Match is compared to a filename
type RuleKind string

const (
	// RuleExact matches when the filename equals Match
	RuleExact RuleKind = "exact"
	// RuleGlob matches with filepath.Match semantics, e.g. "*.ts"
	RuleGlob RuleKind = "glob"
)

// TemplateRule maps a filename or filename pattern to default content.
//
// Source names a template file relative to the blueprint that declared the
// rule. Content is filled from Source at load time, or given inline.
type TemplateRule struct {
	Match   string   `toml:"match"`
	Kind    RuleKind `toml:"kind,omitempty"`
	Source  string   `toml:"source,omitempty"`
	Content string   `toml:"content,omitempty"`
}

// Blueprint is the full declarative description of a project skeleton
type Blueprint struct {
	Name        string           `toml:"name"`
	Directories []DirectoryEntry `toml:"directories"`
	Templates   []TemplateRule   `toml:"templates"`
	NextSteps   []string         `toml:"next_steps,omitempty"`
}

// FileCount returns the number of files declared across all directories
func (b *Blueprint) FileCount() int {
	n := 0
	for _, d := range b.Directories {
		n += len(d.Files)
	}
	return n
}
