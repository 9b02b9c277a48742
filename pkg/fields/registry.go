package fields

import (
	"sync"

	"github.com/aretw0/cmdform/pkg/domain"
)

// Widget names used by the default registry.
const (
	WidgetText     = "text"
	WidgetNumber   = "number"
	WidgetCheckbox = "checkbox"
	WidgetSelect   = "select"
	WidgetFile     = "file"
)

// WidgetFunc fills the widget specific parts of a field for a parameter.
type WidgetFunc func(p domain.Param, f *domain.Field)

// Registry maps parameter type names to widget builders.
type Registry struct {
	mu       sync.RWMutex
	widgets  map[string]WidgetFunc
	fallback WidgetFunc
}

// NewRegistry creates an empty registry that renders every type as text.
func NewRegistry() *Registry {
	return &Registry{
		widgets:  make(map[string]WidgetFunc),
		fallback: textWidget,
	}
}

// DefaultRegistry returns a registry with the built-in parameter types.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(domain.TypeString, textWidget)
	r.Register(domain.TypePath, textWidget)
	r.Register(domain.TypeInt, numberWidget("1"))
	r.Register(domain.TypeFloat, numberWidget("any"))
	r.Register(domain.TypeBool, checkboxWidget)
	r.Register(domain.TypeChoice, selectWidget)
	r.Register(domain.TypeFile, fileWidget)
	r.Register(domain.TypeDuration, func(p domain.Param, f *domain.Field) {
		f.Widget = WidgetText
		f.Placeholder = "e.g. 1m30s"
	})
	return r
}

// Register adds a widget builder for a type name.
// If the type is already registered, it is overwritten.
func (r *Registry) Register(typeName string, fn WidgetFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widgets[typeName] = fn
}

// Apply fills f using the builder registered for p.Type.
// Flags always render as checkboxes; unknown types render as text.
func (r *Registry) Apply(p domain.Param, f *domain.Field) {
	if p.IsFlag {
		checkboxWidget(p, f)
		return
	}

	r.mu.RLock()
	fn, ok := r.widgets[p.Type]
	r.mu.RUnlock()

	if !ok {
		fn = r.fallback
	}
	fn(p, f)
}

func textWidget(_ domain.Param, f *domain.Field) {
	f.Widget = WidgetText
}

func numberWidget(step string) WidgetFunc {
	return func(_ domain.Param, f *domain.Field) {
		f.Widget = WidgetNumber
		f.Step = step
	}
}

func checkboxWidget(p domain.Param, f *domain.Field) {
	f.Widget = WidgetCheckbox
	if v, ok := p.Default.(bool); ok {
		f.Checked = v
	}
	f.Default = ""
}

func selectWidget(p domain.Param, f *domain.Field) {
	f.Widget = WidgetSelect
	f.Choices = append([]string(nil), p.Choices...)
}

func fileWidget(_ domain.Param, f *domain.Field) {
	f.Widget = WidgetFile
	f.Default = ""
}
