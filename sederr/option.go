package sederr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option         { return func(e *Error) { e.Message = msg } }
func WithSeverity(s Severity) Option        { return func(e *Error) { e.Severity = s } }
func WithCategory(c Category) Option        { return func(e *Error) { e.Category = c } }
func WithPosition(line, col int) Option     { return func(e *Error) { e.Line, e.Column = line, col } }
func WithElement(element string) Option     { return func(e *Error) { e.Element = element } }
func WithAttribute(attribute string) Option { return func(e *Error) { e.Attribute = attribute } }
