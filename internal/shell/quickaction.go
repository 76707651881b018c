package shell

// QuickAction is a button shown under the input line. Pressing it submits
// Command, except for the home action which only resets the context.
type QuickAction struct {
	Command string
	Label   string
}

// HomeCommand is the pseudo-command of the home button. It is never
// dispatched.
const HomeCommand = "home"

// HomeAction is prepended to every non-main quick-action set.
var HomeAction = QuickAction{Command: HomeCommand, Label: "⌂ Main"}

// IsHome reports whether the action is the home affordance.
func (a QuickAction) IsHome() bool {
	return a.Command == HomeCommand
}

// QuickActionSets holds the button set of each context.
type QuickActionSets map[ContextState][]QuickAction

// For returns the buttons for a context, falling back to the main set.
func (s QuickActionSets) For(state ContextState) []QuickAction {
	actions, ok := s[state]
	if !ok {
		actions = s[ContextMain]
	}
	out := make([]QuickAction, 0, len(actions)+1)
	if state != ContextMain {
		out = append(out, HomeAction)
	}
	return append(out, actions...)
}
