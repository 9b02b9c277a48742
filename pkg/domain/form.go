package domain

// RenderOptions carries per-request rendering choices.
// They travel next to the command tree and are never written onto it.
type RenderOptions struct {
	// SuppressHelpOption hides the implicit --help parameter.
	SuppressHelpOption bool
}

// WebRenderOptions are the options used for browser forms.
func WebRenderOptions() RenderOptions {
	return RenderOptions{SuppressHelpOption: true}
}

// Field describes one input of a rendered form.
type Field struct {
	// Name is the form field name, "<command>.<param>.<kind>.<type>.<name>".
	Name         string    `json:"name"`
	Param        string    `json:"param"`
	Label        string    `json:"label"`
	Kind         ParamKind `json:"kind"`
	Type         string    `json:"type"`
	Widget       string    `json:"widget"`
	Step         string    `json:"step,omitempty"`
	Placeholder  string    `json:"placeholder,omitempty"`
	Help         string    `json:"help,omitempty"`
	Opts         []string  `json:"opts,omitempty"`
	Required     bool      `json:"required,omitempty"`
	Default      string    `json:"default,omitempty"`
	Checked      bool      `json:"checked,omitempty"`
	Choices      []string  `json:"choices,omitempty"`
	Multiple     bool      `json:"multiple,omitempty"`
	CommandIndex int       `json:"command_index"`
	ParamIndex   int       `json:"param_index"`
}

// Level is one command of a form together with its help and fields.
type Level struct {
	Command  *Command `json:"command"`
	HelpHTML string   `json:"help_html"`
	Fields   []Field  `json:"fields"`
}

// Form is the rendering structure for a resolved path.
type Form struct {
	Path   string  `json:"path"`
	Levels []Level `json:"levels"`
}

// Command returns the leaf command of the form.
func (f *Form) Command() *Command {
	if len(f.Levels) == 0 {
		return nil
	}
	return f.Levels[len(f.Levels)-1].Command
}
