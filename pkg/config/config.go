// Package config loads and validates the declarative workspace
// document describing spaces, folders, lists, custom fields, status
// workflows, views and automations.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workspace is the root of the declarative document.
type Workspace struct {
	Spaces       []Space                 `yaml:"spaces"`
	CustomFields []Field                 `yaml:"custom_fields"`
	Workflows    []Workflow              `yaml:"workflows"`
	Views        map[string][]View       `yaml:"views"`
	Automations  map[string][]Automation `yaml:"automations"`
}

// Space declares one top-level space and everything under it.
type Space struct {
	Name              string          `yaml:"name"`
	Key               string          `yaml:"key"`
	MultipleAssignees *bool           `yaml:"multiple_assignees"`
	Features          map[string]bool `yaml:"features"`
	Folders           []Folder        `yaml:"folders"`
}

// MultiAssignees reports the multiple_assignees toggle, defaulting to
// true when the document leaves it out.
func (s Space) MultiAssignees() bool {
	return s.MultipleAssignees == nil || *s.MultipleAssignees
}

// Folder declares a folder and its ordered lists.
type Folder struct {
	Name  string `yaml:"name"`
	Lists []List `yaml:"lists"`
}

// List declares a list by name plus a free-form type tag that custom
// fields and workflows match their applies_to sets against.
type List struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// UnmarshalYAML accepts both the mapping form ({name, type}) and the
// bare-string shorthand older configs used for untyped lists.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		l.Name = value.Value
		l.Type = ""
		return nil
	}
	type plain List
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*l = List(p)
	return nil
}

// Field declares a custom field definition. AppliesTo names the list
// types the field is attached to; an empty set applies everywhere.
type Field struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	AppliesTo []string `yaml:"applies_to"`
	Options   []string `yaml:"options"`
	Precision int      `yaml:"precision"`
	Currency  string   `yaml:"currency"`
}

// AppliesToType reports whether the field should be attached to lists
// of the given type tag.
func (f Field) AppliesToType(listType string) bool {
	if len(f.AppliesTo) == 0 {
		return true
	}
	for _, t := range f.AppliesTo {
		if t == listType {
			return true
		}
	}
	return false
}

// Workflow is a named group of statuses applying to some list types.
type Workflow struct {
	Name      string   `yaml:"name"`
	AppliesTo []string `yaml:"applies_to"`
	Statuses  []Status `yaml:"statuses"`
}

// AppliesToType reports whether the workflow governs lists of the
// given type tag. An empty applies_to set governs every list.
func (w Workflow) AppliesToType(listType string) bool {
	if len(w.AppliesTo) == 0 {
		return true
	}
	for _, t := range w.AppliesTo {
		if t == listType {
			return true
		}
	}
	return false
}

// Status is one lifecycle status label inside a workflow.
type Status struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Type  string `yaml:"type"` // open, custom or closed
}

// View declares a saved display configuration for a space.
type View struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Grouping string         `yaml:"grouping"`
	SortBy   string         `yaml:"sort_by"`
	Filters  map[string]any `yaml:"filters"`
	Columns  []string       `yaml:"columns"`
}

// Automation documents a rule that has to be set up by hand in the
// vendor UI; it is never sent to the API.
type Automation struct {
	Name    string            `yaml:"name"`
	Trigger map[string]string `yaml:"trigger"`
	Action  map[string]string `yaml:"action"`
}

// FieldsFor returns the custom fields applicable to a list type, in
// document order.
func (w *Workspace) FieldsFor(listType string) []Field {
	var fields []Field
	for _, f := range w.CustomFields {
		if f.AppliesToType(listType) {
			fields = append(fields, f)
		}
	}
	return fields
}

// StatusesFor returns the union of status definitions from every
// workflow governing the given list type, in document order.
func (w *Workspace) StatusesFor(listType string) []Status {
	var statuses []Status
	seen := make(map[string]bool)
	for _, wf := range w.Workflows {
		if !wf.AppliesToType(listType) {
			continue
		}
		for _, s := range wf.Statuses {
			key := strings.ToLower(strings.TrimSpace(s.Name))
			if seen[key] {
				continue
			}
			seen[key] = true
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// Load reads and validates a workspace document. A missing file or
// unparsable YAML is fatal; everything else the setup flow degrades
// around at run time.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := ws.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &ws, nil
}

func (w *Workspace) validate() error {
	if len(w.Spaces) == 0 {
		return fmt.Errorf("no spaces defined")
	}
	keys := make(map[string]bool)
	for i := range w.Spaces {
		sp := &w.Spaces[i]
		if strings.TrimSpace(sp.Name) == "" {
			return fmt.Errorf("space %d has no name", i)
		}
		if sp.Key == "" {
			sp.Key = DefaultKey(sp.Name)
		}
		if keys[sp.Key] {
			return fmt.Errorf("duplicate space key %q", sp.Key)
		}
		keys[sp.Key] = true
		for _, folder := range sp.Folders {
			if strings.TrimSpace(folder.Name) == "" {
				return fmt.Errorf("space %q has a folder with no name", sp.Name)
			}
			for _, list := range folder.Lists {
				if strings.TrimSpace(list.Name) == "" {
					return fmt.Errorf("folder %q has a list with no name", folder.Name)
				}
			}
		}
	}
	for _, f := range w.CustomFields {
		if f.Name == "" || f.Type == "" {
			return fmt.Errorf("custom field %+v is missing name or type", f)
		}
	}
	for i := range w.Workflows {
		wf := &w.Workflows[i]
		for j := range wf.Statuses {
			st := &wf.Statuses[j]
			if strings.TrimSpace(st.Name) == "" {
				return fmt.Errorf("workflow %q has a status with no name", wf.Name)
			}
			switch st.Type {
			case "":
				st.Type = "custom"
			case "open", "custom", "closed":
			default:
				return fmt.Errorf("workflow %q status %q has invalid type %q", wf.Name, st.Name, st.Type)
			}
		}
	}
	return nil
}

// DefaultKey derives a space key from its display name the same way
// the config loader does when a key is omitted.
func DefaultKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
