package form

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

// Form represents a form with fields defined at runtime
type Form struct {
	Fields  []Field
	Values  map[string]string
	Errors  map[string]string
	options *FormOptions
}

// New creates a form from field definitions
func New(fields []Field, funcs ...FormOptionFunc) *Form {
	options := NewFormOptions(funcs...)

	form := &Form{
		Fields:  fields,
		Values:  make(map[string]string),
		Errors:  make(map[string]string),
		options: options,
	}

	return form
}

// Handle parses the request body and captures the value of every declared
// field. Unknown request fields are ignored.
func (f *Form) Handle(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "failed to parse form")
	}

	for _, field := range f.Fields {
		f.Values[field.Name] = r.FormValue(field.Name)
	}

	return nil
}

// IsValid validates all fields
func (f *Form) IsValid(ctx context.Context) bool {
	f.Errors = make(map[string]string)

	for _, field := range f.Fields {
		for _, rule := range field.Validation {
			if err := rule.Validate(ctx, f, field); err != nil {
				f.Errors[field.Name] = err.Error()
				break // Stop at first error
			}
		}
	}

	return len(f.Errors) == 0
}

// ValidateField validates a specific field
func (f *Form) ValidateField(ctx context.Context, fieldName string) bool {
	delete(f.Errors, fieldName)

	field, found := f.field(fieldName)
	if !found {
		return false
	}

	for _, rule := range field.Validation {
		if err := rule.Validate(ctx, f, field); err != nil {
			f.Errors[fieldName] = err.Error()
			return false
		}
	}

	return true
}

// GetFieldContext returns the rendering context for a specific field
func (f *Form) GetFieldContext(fieldName string) (FieldContext, error) {
	field, found := f.field(fieldName)
	if !found {
		return FieldContext{}, errors.Errorf("field %s not found", fieldName)
	}

	ctx := FieldContext{
		Name:        field.Name,
		Value:       f.Values[field.Name],
		Label:       field.Label,
		Type:        field.Type,
		Error:       f.Errors[field.Name],
		Required:    field.Required,
		Placeholder: field.Placeholder,
		Autofocus:   field.Autofocus,
	}

	return ctx, nil
}

// RenderField renders a specific field using the configured renderer
func (f *Form) RenderField(fieldName string) (templ.Component, error) {
	ctx, err := f.GetFieldContext(fieldName)
	if err != nil {
		return nil, err
	}

	renderer := f.findRenderer(fieldName, ctx.Type)
	return renderer.RenderField(ctx), nil
}

// GetFieldNames returns all field names
func (f *Form) GetFieldNames() []string {
	names := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Name
	}
	return names
}

// SetAutofocus marks a single field as the one receiving keyboard focus.
func (f *Form) SetAutofocus(fieldName string) {
	for i := range f.Fields {
		f.Fields[i].Autofocus = f.Fields[i].Name == fieldName
	}
}

func (f *Form) field(name string) (Field, bool) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return f.Fields[i], true
		}
	}

	return Field{}, false
}

// findRenderer finds the appropriate renderer for a field
func (f *Form) findRenderer(fieldName, fieldType string) FieldRenderer {
	if renderer, exists := f.options.FieldRenderers[fieldName]; exists {
		return renderer
	}

	if renderer, exists := f.options.FieldRenderers[fieldType]; exists {
		return renderer
	}

	return f.options.DefaultRenderer
}
