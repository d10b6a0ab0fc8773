package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourcePlugin indicates the action originated from a plugin script.
	SourcePlugin
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePlugin:
		return "plugin"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Text for insert operations.
	Text string

	// Path for file operations.
	Path string
}

// Action represents a named command to execute.
type Action struct {
	// Name is the command identifier (e.g., "editor.copy", "cursor.moveDown").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count (1 if not specified).
	Count int
}

// NewAction creates an action with the given name.
func NewAction(name string) Action {
	return Action{Name: name, Count: 1}
}

// WithText returns a copy of the action with insert text set.
func (a Action) WithText(text string) Action {
	a.Args.Text = text
	return a
}

// WithPath returns a copy of the action with a file path set.
func (a Action) WithPath(path string) Action {
	a.Args.Path = path
	return a
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}
