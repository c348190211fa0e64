package session

import "github.com/pterm/pterm"

// PromptFunc asks the user to pick one of options and returns the choice.
// The default implementation is a pterm interactive select; tests inject a
// canned function.
type PromptFunc func(label string, options []string) (string, error)

// TerminalPrompt is the interactive pterm implementation of PromptFunc.
func TerminalPrompt(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(label).
		Show()
}

// WidgetState retains interactive choices across transcript re-renders,
// keyed by the caller's stable key namespace. The first request for a key
// runs the prompt; every later request replays the stored choice without
// prompting. This mirrors a retained-widget UI: identical keys mean
// identical widget identity.
type WidgetState struct {
	prompt PromptFunc
	values map[string]string
}

// NewWidgetState creates an empty store backed by the given prompt.
func NewWidgetState(prompt PromptFunc) *WidgetState {
	return &WidgetState{prompt: prompt, values: make(map[string]string)}
}

// Select returns the retained choice for key, prompting the user only on
// first use. A stored choice that is no longer among the options is
// discarded and prompted again.
func (w *WidgetState) Select(key, label string, options []string) (string, error) {
	if v, ok := w.values[key]; ok && contains(options, v) {
		return v, nil
	}
	v, err := w.prompt(label, options)
	if err != nil {
		return "", err
	}
	w.values[key] = v
	return v, nil
}

// PickOnce behaves like Select but additionally reports whether the prompt
// fired during this call. Buttons use this: only a fresh interaction
// triggers the side effect, a replayed one never does.
func (w *WidgetState) PickOnce(key, label string, options []string) (choice string, fired bool, err error) {
	if v, ok := w.values[key]; ok {
		return v, false, nil
	}
	v, err := w.prompt(label, options)
	if err != nil {
		return "", false, err
	}
	w.values[key] = v
	return v, true, nil
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
