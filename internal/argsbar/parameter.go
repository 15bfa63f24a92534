package argsbar

// InputParameter represents some piece of information that can be collected
// from the args bar. It is immutable once built and is always passed by
// value, so every InputValue holds its own copy.
type InputParameter struct {
	name     string   // Simple identifier
	desc     string   // Longer explanation of the data being collected
	def      string   // Serialized value to use when nothing is typed
	required bool     // Whether the value is absolutely needed
	encoding Encoding // Type of value collected
}

// ParameterOption configures an InputParameter during construction.
type ParameterOption func(*InputParameter)

// WithDescription sets the parameter description.
func WithDescription(desc string) ParameterOption {
	return func(p *InputParameter) { p.desc = desc }
}

// WithDefault sets the serialized fallback value. It is never validated
// against the encoding.
func WithDefault(def string) ParameterOption {
	return func(p *InputParameter) { p.def = def }
}

// WithRequired marks the parameter as required.
func WithRequired(required bool) ParameterOption {
	return func(p *InputParameter) { p.required = required }
}

// WithEncoding sets the encoding; the default is EncodingString.
func WithEncoding(enc Encoding) ParameterOption {
	return func(p *InputParameter) { p.encoding = enc }
}

// NewInputParameter builds a parameter named name.
func NewInputParameter(name string, opts ...ParameterOption) InputParameter {
	p := InputParameter{name: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Name returns the parameter name.
func (p InputParameter) Name() string { return p.name }

// Desc returns the human-readable description.
func (p InputParameter) Desc() string { return p.desc }

// Default returns the serialized default, or "" when there is none.
func (p InputParameter) Default() string { return p.def }

// Required reports whether a value must be supplied.
func (p InputParameter) Required() bool { return p.required }

// Encoding returns the encoding that filters typed characters.
func (p InputParameter) Encoding() Encoding { return p.encoding }
