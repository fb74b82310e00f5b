package assistant

import (
	"strings"

	"github.com/kailas-cloud/fixerhub/internal/domain/assistant/rule"
)

// Response is the engine's reply to one user turn.
type Response struct {
	Reply       string
	Suggestions []string
	Topic       string
}

// Engine maps free text to canned replies through an ordered rule table.
// It is pure and safe for concurrent use.
type Engine struct {
	table rule.Table
}

// NewEngine creates an engine over table.
func NewEngine(table rule.Table) *Engine {
	return &Engine{table: table}
}

// DefaultEngine creates an engine over the built-in rule table.
func DefaultEngine() *Engine {
	return NewEngine(rule.DefaultTable())
}

// Respond picks the first rule with a keyword contained in text, or the fallback.
// Matching is case-insensitive; text is not otherwise normalized.
func (e *Engine) Respond(text string) Response {
	r := e.table.Lookup(strings.ToLower(text))
	return Response{
		Reply:       r.Reply(),
		Suggestions: r.Suggestions(),
		Topic:       r.Topic(),
	}
}

// Rules returns a copy of the ordered rules, fallback excluded.
func (e *Engine) Rules() []rule.Rule {
	return e.table.Rules()
}

// actionVerbs mark a suggestion as a concrete service request. Matched case-sensitively.
var actionVerbs = []string{"Repair", "Install", "Fix", "Clean"}

// Selection is the outcome of picking a suggestion.
type Selection struct {
	Suggestion string
	Actionable bool
	// Query is the hand-off search text; empty when not actionable.
	Query string
}

// Classify decides whether a suggestion ends the conversation with a search hand-off.
func Classify(suggestion string) Selection {
	for _, v := range actionVerbs {
		if strings.Contains(suggestion, v) {
			return Selection{Suggestion: suggestion, Actionable: true, Query: suggestion}
		}
	}
	return Selection{Suggestion: suggestion}
}
