package builder

import (
	"github.com/heliosam/clickup-setup/pkg/clickup"
	"github.com/heliosam/clickup-setup/pkg/config"
)

// fieldTypeNames maps the config field-type vocabulary to the names
// the ClickUp API accepts. Types with no entry here (formula, rollup,
// anything unknown) cannot be created through the API and end up in
// the skip log instead.
var fieldTypeNames = map[string]string{
	"text":       "text",
	"short_text": "short_text",
	"number":     "number",
	"currency":   "currency",
	"dropdown":   "drop_down",
	"labels":     "labels",
	"date":       "date",
	"checkbox":   "checkbox",
	"url":        "url",
	"email":      "email",
	"phone":      "phone",
	"people":     "users",
	"rating":     "emoji",
}

// translateField converts a config field definition into the API
// payload. ok is false when the type is not creatable via the API.
func translateField(f config.Field) (req clickup.CustomFieldRequest, ok bool) {
	apiType, ok := fieldTypeNames[f.Type]
	if !ok {
		return clickup.CustomFieldRequest{}, false
	}
	req = clickup.CustomFieldRequest{Name: f.Name, Type: apiType}

	switch f.Type {
	case "dropdown", "labels":
		if len(f.Options) > 0 {
			cfg := &clickup.FieldTypeConfig{}
			for i, opt := range f.Options {
				cfg.Options = append(cfg.Options, clickup.FieldOption{Name: opt, OrderIndex: i})
			}
			req.TypeConfig = cfg
		}
	case "currency":
		cfg := &clickup.FieldTypeConfig{Precision: f.Precision, CurrencyType: f.Currency}
		if cfg.Precision == 0 {
			cfg.Precision = 2
		}
		if cfg.CurrencyType == "" {
			cfg.CurrencyType = "USD"
		}
		req.TypeConfig = cfg
	case "number":
		if f.Precision > 0 {
			req.TypeConfig = &clickup.FieldTypeConfig{Precision: f.Precision}
		}
	}
	return req, true
}
