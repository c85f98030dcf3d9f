package builder

// Structure mirrors the config tree with the remote IDs collected
// while building. IDs are write-once: set after a successful create
// call and never mutated afterwards.
type Structure struct {
	Spaces  map[string]*Space
	Order   []string
	Skipped []SkippedField
	Stats   Stats
}

// Space is the built counterpart of a config space.
type Space struct {
	Name string
	Key  string
	ID   string

	// StatusesVerified is the AND over all list checks in the space:
	// false when at least one list is missing at least one required
	// status name remotely. It gates example seeding downstream.
	StatusesVerified bool

	Folders     map[string]*Folder
	FolderOrder []string
}

// Folder is the built counterpart of a config folder.
type Folder struct {
	Name  string
	ID    string
	Lists map[string]*List
}

// List is the built counterpart of a config list.
type List struct {
	Name string
	Type string
	ID   string
}

// SkippedField records a custom field that was never sent to the API,
// keyed by its position in the tree.
type SkippedField struct {
	Space  string
	Folder string
	List   string
	Field  string
	Reason string
}

// Stats counts what the run actually created.
type Stats struct {
	Spaces  int
	Folders int
	Lists   int
	Fields  int
	Views   int
}

// Space looks up a built space by key.
func (s *Structure) Space(key string) *Space {
	return s.Spaces[key]
}

// Folder looks up a built folder by name.
func (sp *Space) Folder(name string) *Folder {
	if sp == nil {
		return nil
	}
	return sp.Folders[name]
}

// ListID returns the remote ID of a list by name, or empty when the
// list was never created.
func (f *Folder) ListID(name string) string {
	if f == nil {
		return ""
	}
	if l, ok := f.Lists[name]; ok {
		return l.ID
	}
	return ""
}
