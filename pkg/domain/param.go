package domain

// ParamKind tells options apart from positional arguments.
type ParamKind string

const (
	ParamOption   ParamKind = "option"
	ParamArgument ParamKind = "argument"
)

// Param type names understood by the default widget registry.
const (
	TypeString   = "string"
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeChoice   = "choice"
	TypeFile     = "file"
	TypePath     = "path"
	TypeDuration = "duration"
)

// Param is a declared command parameter.
type Param struct {
	Name string    `json:"name" yaml:"name"`
	Kind ParamKind `json:"kind" yaml:"kind"`
	Type string    `json:"type" yaml:"type"`

	// Opts lists the command-line spellings, e.g. "--output", "-o".
	Opts []string `json:"opts,omitempty" yaml:"opts,omitempty"`

	Help     string   `json:"help,omitempty" yaml:"help,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Choices  []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	Multiple bool     `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Nargs    int      `json:"nargs,omitempty" yaml:"nargs,omitempty"`
	IsFlag   bool     `json:"is_flag,omitempty" yaml:"is_flag,omitempty"`
	Hidden   bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}
