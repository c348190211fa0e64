package session

import (
	"testing"
)

// scriptedPrompt returns canned answers and counts invocations.
type scriptedPrompt struct {
	answers []string
	calls   int
}

func (p *scriptedPrompt) fn(label string, options []string) (string, error) {
	answer := p.answers[p.calls]
	p.calls++
	return answer, nil
}

func TestSelectPromptsOncePerKey(t *testing.T) {
	p := &scriptedPrompt{answers: []string{"year", "Bar Chart"}}
	w := NewWidgetState(p.fn)

	cols := []string{"year", "revenue"}
	v1, err := w.Select("ns1_chart_x_axis", "X axis", cols)
	if err != nil || v1 != "year" {
		t.Fatalf("Select() = %q, %v", v1, err)
	}

	// Re-render: the stored choice replays without prompting.
	v2, err := w.Select("ns1_chart_x_axis", "X axis", cols)
	if err != nil || v2 != "year" {
		t.Fatalf("Select() on re-render = %q, %v", v2, err)
	}
	if p.calls != 1 {
		t.Errorf("prompt fired %d times, want 1", p.calls)
	}

	// A different key namespace is a different widget.
	v3, err := w.Select("ns2_chart_type_selector", "Chart Type", []string{"Line Chart", "Bar Chart"})
	if err != nil || v3 != "Bar Chart" {
		t.Fatalf("Select() for second namespace = %q, %v", v3, err)
	}
	if p.calls != 2 {
		t.Errorf("prompt fired %d times, want 2", p.calls)
	}
}

func TestSelectRepromptsWhenChoiceDisappears(t *testing.T) {
	p := &scriptedPrompt{answers: []string{"region", "year"}}
	w := NewWidgetState(p.fn)

	if _, err := w.Select("k", "X axis", []string{"region", "year"}); err != nil {
		t.Fatal(err)
	}
	// The options changed and no longer include the stored choice.
	v, err := w.Select("k", "X axis", []string{"year", "revenue"})
	if err != nil || v != "year" {
		t.Fatalf("Select() = %q, %v", v, err)
	}
	if p.calls != 2 {
		t.Errorf("prompt fired %d times, want 2", p.calls)
	}
}

func TestPickOnceFiresOnlyOnFirstUse(t *testing.T) {
	p := &scriptedPrompt{answers: []string{"Show revenue by year"}}
	w := NewWidgetState(p.fn)

	opts := []string{"Show revenue by year", "Top regions"}
	choice, fired, err := w.PickOnce("suggestions_2", "Suggestions", opts)
	if err != nil || !fired || choice != "Show revenue by year" {
		t.Fatalf("PickOnce() = %q, fired=%v, err=%v", choice, fired, err)
	}

	choice, fired, err = w.PickOnce("suggestions_2", "Suggestions", opts)
	if err != nil || fired {
		t.Fatalf("replay fired the button again: %q, fired=%v, err=%v", choice, fired, err)
	}
}
