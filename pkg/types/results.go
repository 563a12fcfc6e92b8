package types

// ItemKind distinguishes directories from files in results
type ItemKind string

const (
	ItemDirectory ItemKind = "directory"
	ItemFile      ItemKind = "file"
)

// ItemStatus is the outcome of ensuring a single path
type ItemStatus string

const (
	// StatusCreated means the path did not exist and was created
	StatusCreated ItemStatus = "created"
	// StatusExists means the path was already present and left untouched
	StatusExists ItemStatus = "exists"
)

// ItemResult records what happened to one directory or file
type ItemResult struct {
	Kind   ItemKind
	Path   string
	Status ItemStatus
	// Rule is the template rule that supplied a created file's content
	Rule string
}

// ScaffoldResult summarizes a full scaffold run
type ScaffoldResult struct {
	Root   string
	DryRun bool
	Items  []ItemResult
}

// Count returns how many items of the given kind ended with the given status
func (r *ScaffoldResult) Count(kind ItemKind, status ItemStatus) int {
	n := 0
	for _, item := range r.Items {
		if item.Kind == kind && item.Status == status {
			n++
		}
	}
	return n
}

// Created returns the paths of every item created during the run
func (r *ScaffoldResult) Created() []string {
	var paths []string
	for _, item := range r.Items {
		if item.Status == StatusCreated {
			paths = append(paths, item.Path)
		}
	}
	return paths
}
