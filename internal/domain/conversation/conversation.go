package conversation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/domain"
)

// Sender identifies who authored a turn.
type Sender string

// Turn senders.
const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Valid reports whether s is a known sender.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAssistant
}

// Turn is one message in a conversation.
type Turn struct {
	id          string
	text        string
	sender      Sender
	createdAt   time.Time
	suggestions []string
}

// NewTurn creates a turn.
func NewTurn(id, text string, sender Sender, createdAt time.Time, suggestions []string) Turn {
	return Turn{
		id:          id,
		text:        text,
		sender:      sender,
		createdAt:   createdAt,
		suggestions: append([]string(nil), suggestions...),
	}
}

// ID returns the per-conversation sequence id.
func (t Turn) ID() string { return t.id }

// Text returns the message text.
func (t Turn) Text() string { return t.text }

// Sender returns the author.
func (t Turn) Sender() Sender { return t.sender }

// CreatedAt returns when the turn was produced.
func (t Turn) CreatedAt() time.Time { return t.createdAt }

// Suggestions returns a copy of the quick-reply chips attached to the turn.
func (t Turn) Suggestions() []string {
	return append([]string(nil), t.suggestions...)
}

// Conversation is an append-only assistant session.
type Conversation struct {
	id        string
	createdAt time.Time
	turns     []Turn
	closed    bool
	handoff   string
}

// New creates an empty open conversation.
func New(id string, createdAt time.Time) *Conversation {
	return &Conversation{id: id, createdAt: createdAt}
}

// Reconstruct hydrates a conversation from storage.
func Reconstruct(id string, createdAt time.Time, turns []Turn, closed bool, handoff string) *Conversation {
	return &Conversation{
		id:        id,
		createdAt: createdAt,
		turns:     append([]Turn(nil), turns...),
		closed:    closed,
		handoff:   handoff,
	}
}

// ID returns the conversation id.
func (c *Conversation) ID() string { return c.id }

// CreatedAt returns when the conversation started.
func (c *Conversation) CreatedAt() time.Time { return c.createdAt }

// Closed reports whether the conversation is terminal.
func (c *Conversation) Closed() bool { return c.closed }

// Handoff returns the query handed to search on close; empty when dismissed.
func (c *Conversation) Handoff() string { return c.handoff }

// Turns returns a copy of the history in append order.
func (c *Conversation) Turns() []Turn {
	return append([]Turn(nil), c.turns...)
}

// Len returns the number of turns.
func (c *Conversation) Len() int { return len(c.turns) }

// NextTurnID returns the id the next appended turn must carry.
func (c *Conversation) NextTurnID() string {
	return strconv.Itoa(len(c.turns) + 1)
}

// Append extends the history with t.
func (c *Conversation) Append(t Turn) error {
	if c.closed {
		return domain.ErrConversationClosed
	}
	if !t.sender.Valid() {
		return fmt.Errorf("unknown sender %q", t.sender)
	}
	if want := c.NextTurnID(); t.id != want {
		return fmt.Errorf("turn id %q out of sequence, want %q", t.id, want)
	}
	c.turns = append(c.turns, t)
	return nil
}

// Add builds the next turn and appends it.
func (c *Conversation) Add(sender Sender, text string, suggestions []string, at time.Time) (Turn, error) {
	t := NewTurn(c.NextTurnID(), text, sender, at, suggestions)
	if err := c.Append(t); err != nil {
		return Turn{}, err
	}
	return t, nil
}

// Last returns the most recent turn.
func (c *Conversation) Last() (Turn, bool) {
	if len(c.turns) == 0 {
		return Turn{}, false
	}
	return c.turns[len(c.turns)-1], true
}

// Close marks the conversation terminal. Closing twice keeps the first hand-off.
func (c *Conversation) Close(handoff string) {
	if c.closed {
		return
	}
	c.closed = true
	c.handoff = handoff
}
