package fixerhub

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
)

// AssistantService runs rule-based assistant conversations.
type AssistantService struct {
	svc    assistantUseCase
	search searchUseCase
	obs    *observer
}

// Start opens a conversation with the greeting turn.
func (s *AssistantService) Start(ctx context.Context) (conv Conversation, err error) {
	start := time.Now()
	defer func() { s.obs.observe("assistant_start", start, err) }()

	c, err := s.svc.Start(ctx)
	if err != nil {
		return Conversation{}, fmt.Errorf("start conversation: %w", err)
	}
	return fromInternalConversation(c), nil
}

// Get returns a conversation by ID.
func (s *AssistantService) Get(ctx context.Context, id string) (Conversation, error) {
	c, err := s.svc.Get(ctx, id)
	if err != nil {
		return Conversation{}, fmt.Errorf("get conversation: %w", err)
	}
	return fromInternalConversation(c), nil
}

// Send appends a user message and the assistant's reply.
// Blocks for the configured reply delay; canceling ctx drops the reply.
func (s *AssistantService) Send(ctx context.Context, id, text string) (conv Conversation, err error) {
	start := time.Now()
	defer func() { s.obs.observe("assistant_send", start, err) }()

	c, err := s.svc.Send(ctx, id, text)
	if err != nil {
		return Conversation{}, fmt.Errorf("send message: %w", err)
	}
	return fromInternalConversation(c), nil
}

// Select handles a tapped suggestion. Actionable suggestions close the conversation
// and run the search for the hand-off query with no category and default constraints.
func (s *AssistantService) Select(ctx context.Context, id, suggestion string) (sel Selection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("assistant_select", start, err) }()

	res, err := s.svc.Select(ctx, id, suggestion)
	if err != nil {
		return Selection{}, fmt.Errorf("select suggestion: %w", err)
	}

	sel = Selection{
		Actionable:   res.Selection.Actionable,
		Query:        res.Selection.Query,
		Conversation: fromInternalConversation(res.Conversation),
	}
	if !sel.Actionable {
		return sel, nil
	}

	found, err := s.search.Search(ctx, query.New(sel.Query))
	if err != nil {
		return Selection{}, fmt.Errorf("hand-off search: %w", err)
	}
	sel.Results = &SearchResult{
		Title:         found.Title,
		Professionals: fromInternalProfessionals(found.Professionals),
	}
	return sel, nil
}

// Dismiss cancels any pending reply and closes the conversation without a hand-off.
func (s *AssistantService) Dismiss(ctx context.Context, id string) (conv Conversation, err error) {
	start := time.Now()
	defer func() { s.obs.observe("assistant_dismiss", start, err) }()

	c, err := s.svc.Dismiss(ctx, id)
	if err != nil {
		return Conversation{}, fmt.Errorf("dismiss conversation: %w", err)
	}
	return fromInternalConversation(c), nil
}
