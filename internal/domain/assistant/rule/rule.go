package rule

import (
	"fmt"
	"strings"
)

// Topics of the built-in rules.
const (
	TopicKitchen    = "kitchen"
	TopicElectrical = "electrical"
	TopicPlumbing   = "plumbing"
	TopicCleaning   = "cleaning"
	TopicFallback   = "fallback"
)

// Greeting opens every conversation.
const Greeting = "Hi! I'm here to help you find the perfect service. What do you need help with today?"

// GreetingSuggestions are the chips shown with the greeting.
func GreetingSuggestions() []string {
	return []string{
		"My kitchen appliance is broken",
		"I need electrical work done",
		"Looking for plumbing help",
		"Need home cleaning service",
	}
}

// Rule maps keywords to a canned reply with suggestions.
type Rule struct {
	topic       string
	keywords    []string
	reply       string
	suggestions []string
}

// New validates and creates a Rule. Keywords are lower-cased.
func New(topic string, keywords []string, reply string, suggestions []string) (Rule, error) {
	if topic == "" {
		return Rule{}, fmt.Errorf("topic is required")
	}
	if reply == "" {
		return Rule{}, fmt.Errorf("rule %q: reply is required", topic)
	}
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			return Rule{}, fmt.Errorf("rule %q: empty keyword", topic)
		}
		kw = append(kw, k)
	}
	return Rule{
		topic:       topic,
		keywords:    kw,
		reply:       reply,
		suggestions: append([]string(nil), suggestions...),
	}, nil
}

func mustNew(topic string, keywords []string, reply string, suggestions []string) Rule {
	r, err := New(topic, keywords, reply, suggestions)
	if err != nil {
		panic(err)
	}
	return r
}

// Topic returns the rule's label.
func (r Rule) Topic() string { return r.topic }

// Keywords returns a copy of the trigger keywords.
func (r Rule) Keywords() []string { return append([]string(nil), r.keywords...) }

// Reply returns the canned reply.
func (r Rule) Reply() string { return r.reply }

// Suggestions returns a copy of the suggestion chips.
func (r Rule) Suggestions() []string { return append([]string(nil), r.suggestions...) }

// Matches reports whether any keyword is a substring of lowered.
func (r Rule) Matches(lowered string) bool {
	for _, k := range r.keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

// Table is an ordered rule list with a fallback. The first matching rule wins.
type Table struct {
	rules    []Rule
	fallback Rule
}

// NewTable creates a Table.
func NewTable(fallback Rule, rules ...Rule) Table {
	return Table{rules: append([]Rule(nil), rules...), fallback: fallback}
}

// Rules returns a copy of the ordered rules, fallback excluded.
func (t Table) Rules() []Rule { return append([]Rule(nil), t.rules...) }

// Fallback returns the rule used when nothing matches.
func (t Table) Fallback() Rule { return t.fallback }

// Lookup returns the first rule matching lowered, or the fallback.
func (t Table) Lookup(lowered string) Rule {
	for _, r := range t.rules {
		if r.Matches(lowered) {
			return r
		}
	}
	return t.fallback
}

// DefaultTable returns the built-in keyword rules.
func DefaultTable() Table {
	return NewTable(
		mustNew(TopicFallback, nil,
			"I understand you need help with that. Could you provide a bit more detail about the specific issue or service you're looking for? This will help me suggest the most relevant professionals.",
			[]string{"Tell me more about the problem", "What room is this for?", "Is this urgent?", "What's your budget range?"},
		),
		mustNew(TopicKitchen, []string{"kitchen", "appliance", "refrigerator", "stove"},
			"I can help you with kitchen appliance repairs! Based on what you've described, here are some specific services that might help:",
			[]string{"Refrigerator Repair", "Stove/Oven Repair", "Dishwasher Repair", "Microwave Repair"},
		),
		mustNew(TopicElectrical, []string{"electrical", "light", "outlet", "wiring"},
			"Electrical issues can be tricky! Let me suggest some specific electrical services:",
			[]string{"Fix Light Switch", "Electrical Outlet Repair", "Install Ceiling Fan", "Circuit Breaker Repair"},
		),
		mustNew(TopicPlumbing, []string{"plumbing", "leak", "toilet", "drain"},
			"Plumbing problems need quick attention! Here are some plumbing services I can help you find:",
			[]string{"Leak Repair", "Drain Cleaning", "Toilet Installation", "Water Heater Repair"},
		),
		mustNew(TopicCleaning, []string{"clean", "house", "home"},
			"Great! I can help you find cleaning services. What type of cleaning do you need?",
			[]string{"House Cleaning", "Deep Cleaning", "Move-in/Move-out Cleaning", "Office Cleaning"},
		),
	)
}
