package clickup

// Feature is a single on/off space feature toggle.
type Feature struct {
	Enabled bool `json:"enabled"`
}

// DueDatesFeature carries the extra remapping switches the due_dates
// feature accepts.
type DueDatesFeature struct {
	Enabled            bool `json:"enabled"`
	StartDate          bool `json:"start_date"`
	RemapDueDates      bool `json:"remap_due_dates"`
	RemapClosedDueDate bool `json:"remap_closed_due_date"`
}

// SpaceFeatures is the feature block ClickUp accepts on space creation.
type SpaceFeatures struct {
	DueDates          DueDatesFeature `json:"due_dates"`
	CustomFields      Feature         `json:"custom_fields"`
	TimeTracking      Feature         `json:"time_tracking"`
	Tags              Feature         `json:"tags"`
	TimeEstimates     Feature         `json:"time_estimates"`
	Checklists        Feature         `json:"checklists"`
	RemapDependencies Feature         `json:"remap_dependencies"`
	DependencyWarning Feature         `json:"dependency_warning"`
	Portfolios        Feature         `json:"portfolios"`
}

// DefaultSpaceFeatures returns the feature set new spaces are created
// with unless the workspace config overrides individual toggles.
func DefaultSpaceFeatures() SpaceFeatures {
	return SpaceFeatures{
		DueDates: DueDatesFeature{
			Enabled:            true,
			StartDate:          true,
			RemapDueDates:      true,
			RemapClosedDueDate: true,
		},
		CustomFields:      Feature{Enabled: true},
		TimeTracking:      Feature{Enabled: true},
		Tags:              Feature{Enabled: true},
		TimeEstimates:     Feature{Enabled: true},
		Checklists:        Feature{Enabled: true},
		RemapDependencies: Feature{Enabled: true},
		DependencyWarning: Feature{Enabled: true},
		Portfolios:        Feature{Enabled: true},
	}
}

// Set flips a single feature toggle by its config name. Unknown names
// are ignored so configs stay forward compatible.
func (f *SpaceFeatures) Set(name string, enabled bool) {
	switch name {
	case "due_dates":
		f.DueDates.Enabled = enabled
	case "custom_fields":
		f.CustomFields.Enabled = enabled
	case "time_tracking":
		f.TimeTracking.Enabled = enabled
	case "tags":
		f.Tags.Enabled = enabled
	case "time_estimates":
		f.TimeEstimates.Enabled = enabled
	case "checklists":
		f.Checklists.Enabled = enabled
	case "remap_dependencies":
		f.RemapDependencies.Enabled = enabled
	case "dependency_warning":
		f.DependencyWarning.Enabled = enabled
	case "portfolios":
		f.Portfolios.Enabled = enabled
	}
}

// CreateSpaceRequest is the payload for POST team/{id}/space.
type CreateSpaceRequest struct {
	Name              string        `json:"name"`
	MultipleAssignees bool          `json:"multiple_assignees"`
	Features          SpaceFeatures `json:"features"`
}

// FieldOption is one dropdown/label choice inside a field type_config.
type FieldOption struct {
	Name       string `json:"name"`
	OrderIndex int    `json:"orderindex"`
}

// FieldTypeConfig holds the type-specific configuration for a custom
// field. Only the members relevant to the field's type are set.
type FieldTypeConfig struct {
	Options      []FieldOption `json:"options,omitempty"`
	Precision    int           `json:"precision,omitempty"`
	CurrencyType string        `json:"currency_type,omitempty"`
}

// CustomFieldRequest is the payload for POST list/{id}/field.
type CustomFieldRequest struct {
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	TypeConfig *FieldTypeConfig `json:"type_config,omitempty"`
}

// TaskRequest is the payload for task and subtask creation. DueDate is
// a millisecond epoch; zero means no due date.
type TaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	DueDate     int64  `json:"due_date,omitempty"`
}

// ViewRequest is the payload for POST space/{id}/view. View support in
// the public API is partial; creation is best effort.
type ViewRequest struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Grouping string         `json:"grouping,omitempty"`
	Sorting  string         `json:"sorting,omitempty"`
	Filters  map[string]any `json:"filters,omitempty"`
	Columns  []string       `json:"columns,omitempty"`
}

// Space is the subset of the space object the setup flow reads back.
type Space struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Status is one lifecycle status attached to a list.
type Status struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

type idResponse struct {
	ID string `json:"id"`
}

type spacesResponse struct {
	Spaces []Space `json:"spaces"`
}

type listResponse struct {
	ID       string   `json:"id"`
	Statuses []Status `json:"statuses"`
}

// fieldResponse tolerates both response shapes the field endpoint has
// been seen to return: the field object at the top level or nested
// under a "field" key.
type fieldResponse struct {
	ID    string      `json:"id"`
	Field *idResponse `json:"field"`
}

func (r fieldResponse) id() string {
	if r.Field != nil && r.Field.ID != "" {
		return r.Field.ID
	}
	return r.ID
}
