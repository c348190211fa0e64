package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"snowchat/cli/internal/analyst"
	"snowchat/cli/internal/charts"
	apperrors "snowchat/cli/internal/errors"
	"snowchat/cli/internal/session"
	"snowchat/cli/internal/tabular"
)

type fakeAnalyst struct {
	reply *analyst.Response
	err   error

	gotToken  string
	gotPrompt string
	calls     int
}

func (f *fakeAnalyst) SendMessage(_ context.Context, token, prompt string) (*analyst.Response, error) {
	f.calls++
	f.gotToken = token
	f.gotPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

type fakeEngine struct {
	table *tabular.Table
	err   error
	calls int
}

func (f *fakeEngine) Query(context.Context, string) (*tabular.Table, error) {
	f.calls++
	return f.table, f.err
}
func (f *fakeEngine) Name() string { return "fake" }
func (f *fakeEngine) Close()       {}

func newController(api AnalystAPI, engine *fakeEngine, prompt session.PromptFunc) (*Controller, *session.Session) {
	widgets := session.NewWidgetState(prompt)
	sess := session.New("ACME", &session.Handle{Engine: engine, Token: "tok-99"}, widgets)
	renderer := &Renderer{
		Session: sess,
		Panel:   &SQLPanel{Engine: engine, Charts: charts.NewSelector(widgets)},
	}
	return &Controller{Analyst: api, Session: sess, Renderer: renderer}, sess
}

func noPrompt(t *testing.T) session.PromptFunc {
	return func(label string, options []string) (string, error) {
		t.Fatalf("unexpected prompt %q with options %v", label, options)
		return "", nil
	}
}

func TestProcessMessageAppendsBothSides(t *testing.T) {
	api := &fakeAnalyst{reply: &analyst.Response{
		Message: analyst.Message{
			Role:    analyst.RoleAssistant,
			Content: []analyst.ContentBlock{analyst.TextBlock{Text: "Revenue is up."}},
		},
		RequestID: "req-7",
	}}
	ctrl, sess := newController(api, &fakeEngine{}, noPrompt(t))

	if err := ctrl.ProcessMessage(context.Background(), "how is revenue?"); err != nil {
		t.Fatalf("ProcessMessage() error: %v", err)
	}
	if api.gotToken != "tok-99" || api.gotPrompt != "how is revenue?" {
		t.Errorf("analyst got token=%q prompt=%q", api.gotToken, api.gotPrompt)
	}

	msgs := sess.Messages()
	if len(msgs) != 2 {
		t.Fatalf("log has %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != analyst.RoleUser {
		t.Errorf("first message role = %q", msgs[0].Role)
	}
	if msgs[1].Role != analyst.RoleAssistant || msgs[1].RequestID != "req-7" {
		t.Errorf("assistant message = %+v", msgs[1])
	}
}

func TestProcessMessageRemoteFailureLeavesLogClean(t *testing.T) {
	api := &fakeAnalyst{err: errors.New("boom")}
	ctrl, sess := newController(api, &fakeEngine{}, noPrompt(t))

	err := ctrl.ProcessMessage(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected an error")
	}
	var e *apperrors.E
	if !errors.As(err, &e) || e.Kind != apperrors.RemoteCallFailed {
		t.Errorf("error = %v, want kind %s", err, apperrors.RemoteCallFailed)
	}
	if got := sess.Len(); got != 1 {
		t.Errorf("log has %d messages after failure, want only the user prompt", got)
	}
}

func TestProcessMessageContainsQueryError(t *testing.T) {
	api := &fakeAnalyst{reply: &analyst.Response{
		Message: analyst.Message{
			Role:    analyst.RoleAssistant,
			Content: []analyst.ContentBlock{analyst.SQLBlock{Statement: "SELECT 1"}},
		},
		RequestID: "req-8",
	}}
	engine := &fakeEngine{err: errors.New("compilation error")}
	ctrl, sess := newController(api, engine, noPrompt(t))

	if err := ctrl.ProcessMessage(context.Background(), "run it"); err != nil {
		t.Fatalf("query failure escaped the panel: %v", err)
	}
	if engine.calls != 1 {
		t.Errorf("engine ran %d times, want 1", engine.calls)
	}
	if sess.Len() != 2 {
		t.Errorf("log has %d messages, want 2", sess.Len())
	}
}

func TestSuggestionPickQueuesPromptOnce(t *testing.T) {
	api := &fakeAnalyst{reply: &analyst.Response{
		Message: analyst.Message{
			Role: analyst.RoleAssistant,
			Content: []analyst.ContentBlock{
				analyst.SuggestionsBlock{Suggestions: []string{"By region?", "By year?"}},
			},
		},
	}}
	picks := 0
	prompt := func(label string, options []string) (string, error) {
		picks++
		return "By year?", nil
	}
	ctrl, sess := newController(api, &fakeEngine{}, prompt)

	if err := ctrl.ProcessMessage(context.Background(), "revenue?"); err != nil {
		t.Fatal(err)
	}
	pending, ok := sess.ConsumePendingSuggestion()
	if !ok || pending != "By year?" {
		t.Fatalf("pending = %q, %v", pending, ok)
	}

	// Replaying the transcript must not re-fire the chooser.
	if err := ctrl.Renderer.RenderTranscript(context.Background()); err != nil {
		t.Fatal(err)
	}
	if picks != 1 {
		t.Errorf("chooser fired %d times, want 1", picks)
	}
	if _, ok := sess.ConsumePendingSuggestion(); ok {
		t.Error("replay queued a second pending suggestion")
	}
}

func TestSuggestionSkipQueuesNothing(t *testing.T) {
	api := &fakeAnalyst{reply: &analyst.Response{
		Message: analyst.Message{
			Role: analyst.RoleAssistant,
			Content: []analyst.ContentBlock{
				analyst.SuggestionsBlock{Suggestions: []string{"By region?"}},
			},
		},
	}}
	prompt := func(label string, options []string) (string, error) {
		if len(options) == 0 {
			return "", fmt.Errorf("no options")
		}
		return options[0], nil // the skip entry leads the list
	}
	ctrl, sess := newController(api, &fakeEngine{}, prompt)

	if err := ctrl.ProcessMessage(context.Background(), "revenue?"); err != nil {
		t.Fatal(err)
	}
	if _, ok := sess.ConsumePendingSuggestion(); ok {
		t.Error("skip entry queued a suggestion")
	}
}

func TestUnknownBlockIsNotFatal(t *testing.T) {
	api := &fakeAnalyst{reply: &analyst.Response{
		Message: analyst.Message{
			Role: analyst.RoleAssistant,
			Content: []analyst.ContentBlock{
				analyst.UnknownBlock{Kind: "chart_spec"},
				analyst.TextBlock{Text: "still fine"},
			},
		},
	}}
	ctrl, _ := newController(api, &fakeEngine{}, noPrompt(t))
	if err := ctrl.ProcessMessage(context.Background(), "hi"); err != nil {
		t.Fatalf("unknown content aborted the turn: %v", err)
	}
}
