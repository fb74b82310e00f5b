package assistant

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/fixerhub/internal/domain/assistant/rule"
)

func TestRespond_Kitchen(t *testing.T) {
	resp := DefaultEngine().Respond("My refrigerator is broken")

	want := []string{"Refrigerator Repair", "Stove/Oven Repair", "Dishwasher Repair", "Microwave Repair"}
	if !reflect.DeepEqual(resp.Suggestions, want) {
		t.Errorf("suggestions: got %v, want %v", resp.Suggestions, want)
	}
	if resp.Topic != rule.TopicKitchen {
		t.Errorf("topic: got %q", resp.Topic)
	}
	if resp.Reply != "I can help you with kitchen appliance repairs! Based on what you've described, here are some specific services that might help:" {
		t.Errorf("reply: got %q", resp.Reply)
	}
}

func TestRespond_FirstMatchWins(t *testing.T) {
	resp := DefaultEngine().Respond("my sink has a leak, please clean up")
	if resp.Topic != rule.TopicPlumbing {
		t.Fatalf("got %q, want plumbing", resp.Topic)
	}
}

func TestRespond_CaseInsensitive(t *testing.T) {
	resp := DefaultEngine().Respond("WIRING problem")
	if resp.Topic != rule.TopicElectrical {
		t.Fatalf("got %q, want electrical", resp.Topic)
	}
}

func TestRespond_Fallback(t *testing.T) {
	e := DefaultEngine()
	for _, in := range []string{"", "my car makes noise", "   "} {
		resp := e.Respond(in)
		if resp.Topic != rule.TopicFallback {
			t.Errorf("Respond(%q): got %q, want fallback", in, resp.Topic)
		}
		if len(resp.Suggestions) != 4 || resp.Suggestions[0] != "Tell me more about the problem" {
			t.Errorf("Respond(%q): unexpected suggestions %v", in, resp.Suggestions)
		}
	}
}

func TestRespond_EveryRuleReachable(t *testing.T) {
	e := DefaultEngine()
	for _, r := range e.Rules() {
		for _, kw := range r.Keywords() {
			if got := e.Respond(kw).Topic; got != r.Topic() {
				t.Errorf("keyword %q of %q resolved to %q", kw, r.Topic(), got)
			}
		}
	}
}

func TestNewEngine_CustomTable(t *testing.T) {
	garden, err := rule.New("garden", []string{"lawn"}, "Let's get your garden sorted.", []string{"Lawn Mowing"})
	if err != nil {
		t.Fatal(err)
	}
	fallback, _ := rule.New("fallback", nil, "Tell me more.", nil)
	e := NewEngine(rule.NewTable(fallback, garden))

	if got := e.Respond("my Lawn is overgrown").Topic; got != "garden" {
		t.Errorf("got %q, want garden", got)
	}
	if got := e.Respond("kitchen").Topic; got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
	if len(e.Rules()) != 1 {
		t.Errorf("rules: got %d", len(e.Rules()))
	}
}

func TestRespond_SuggestionsAreCopies(t *testing.T) {
	e := DefaultEngine()
	first := e.Respond("stove")
	first.Suggestions[0] = "mutated"
	if e.Respond("stove").Suggestions[0] != "Refrigerator Repair" {
		t.Fatal("engine leaked rule suggestions")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in         string
		actionable bool
	}{
		{"Refrigerator Repair", true},
		{"Install Ceiling Fan", true},
		{"Fix Light Switch", true},
		{"Deep Cleaning", true},
		{"Toilet Installation", true},
		{"Is this urgent?", false},
		{"What's your budget range?", false},
		{"repair my sink", false}, // case-sensitive
		{"My kitchen appliance is broken", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := Classify(tc.in)
			if got.Actionable != tc.actionable {
				t.Fatalf("actionable: got %v, want %v", got.Actionable, tc.actionable)
			}
			if tc.actionable && got.Query != tc.in {
				t.Errorf("query: got %q, want %q", got.Query, tc.in)
			}
			if !tc.actionable && got.Query != "" {
				t.Errorf("non-actionable selection carried query %q", got.Query)
			}
		})
	}
}
