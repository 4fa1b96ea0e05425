package form

// FormOptions holds configuration for form behavior and rendering
type FormOptions struct {
	// FieldRenderers maps field names or types to custom renderers
	FieldRenderers map[string]FieldRenderer
	// DefaultRenderer is used when no specific renderer is found
	DefaultRenderer FieldRenderer
}

type FormOptionFunc func(opts *FormOptions)

func NewFormOptions(funcs ...FormOptionFunc) *FormOptions {
	opts := &FormOptions{
		FieldRenderers:  make(map[string]FieldRenderer),
		DefaultRenderer: &DefaultFieldRenderer{},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithFieldRenderer(nameOrType string, renderer FieldRenderer) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.FieldRenderers[nameOrType] = renderer
	}
}

func WithDefaultRenderer(renderer FieldRenderer) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.DefaultRenderer = renderer
	}
}
