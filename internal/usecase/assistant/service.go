package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/fixerhub/internal/domain"
	"github.com/kailas-cloud/fixerhub/internal/domain/assistant/rule"
	"github.com/kailas-cloud/fixerhub/internal/domain/conversation"
	"github.com/kailas-cloud/fixerhub/internal/logger"
	"github.com/kailas-cloud/fixerhub/internal/metrics"
)

// MaxMessageLength is the longest accepted user message, in characters.
const MaxMessageLength = 500

// SelectResult is the outcome of Select.
type SelectResult struct {
	Selection    Selection
	Conversation *conversation.Conversation
}

// Service runs assistant conversations: greeting, replies after a cancelable delay,
// suggestion selection and dismissal.
type Service struct {
	repo    Repository
	engine  *Engine
	delayer Delayer
	delay   time.Duration
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string

	locks keyedMutex

	mu      sync.Mutex
	seq     uint64
	pending map[string]map[uint64]context.CancelFunc
}

// New creates an assistant service. A nil delayer replies immediately.
func New(repo Repository, engine *Engine, delayer Delayer, delay time.Duration, log *zap.Logger) *Service {
	if delayer == nil {
		delayer = NoDelay{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		engine:  engine,
		delayer: delayer,
		delay:   delay,
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
		pending: make(map[string]map[uint64]context.CancelFunc),
	}
}

// WithClock overrides the time source and id generator.
func (s *Service) WithClock(now func() time.Time, newID func() string) *Service {
	if now != nil {
		s.now = now
	}
	if newID != nil {
		s.newID = newID
	}
	return s
}

// Start opens a conversation with the greeting turn.
func (s *Service) Start(ctx context.Context) (*conversation.Conversation, error) {
	c := conversation.New(s.newID(), s.now())
	if _, err := c.Add(conversation.SenderAssistant, rule.Greeting, rule.GreetingSuggestions(), s.now()); err != nil {
		return nil, fmt.Errorf("greeting: %w", err)
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	s.log(ctx).Debug("conversation started", zap.String("conversation_id", c.ID()))
	return c, nil
}

// Get loads a conversation.
func (s *Service) Get(ctx context.Context, id string) (*conversation.Conversation, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return c, nil
}

// Send appends the user's message, waits the reply delay and appends the assistant reply.
// If the wait is canceled the reply is dropped and the error returned.
func (s *Service) Send(ctx context.Context, id, text string) (*conversation.Conversation, error) {
	text, err := validateMessage(text)
	if err != nil {
		return nil, err
	}

	if err := s.appendTurn(ctx, id, conversation.SenderUser, text, nil); err != nil {
		return nil, err
	}

	resp := s.engine.Respond(text)

	if err := s.wait(ctx, id); err != nil {
		metrics.AssistantRepliesCanceledTotal.Inc()
		s.log(ctx).Debug("assistant reply canceled",
			zap.String("conversation_id", id), zap.Error(err))
		return nil, err
	}

	if err := s.appendTurn(ctx, id, conversation.SenderAssistant, resp.Reply, resp.Suggestions); err != nil {
		return nil, err
	}
	metrics.AssistantRuleHitsTotal.WithLabelValues(resp.Topic).Inc()

	return s.Get(ctx, id)
}

// Select handles a suggestion tap. Actionable suggestions close the conversation and
// carry the hand-off query; any other suggestion is sent as a user message.
func (s *Service) Select(ctx context.Context, id, suggestion string) (SelectResult, error) {
	if strings.TrimSpace(suggestion) == "" {
		return SelectResult{}, domain.NewValidationError("suggestion", "must not be empty")
	}

	sel := Classify(suggestion)
	if !sel.Actionable {
		metrics.AssistantSelectionsTotal.WithLabelValues(metrics.SelectionFollowUp).Inc()
		c, err := s.Send(ctx, id, suggestion)
		if err != nil {
			return SelectResult{}, err
		}
		return SelectResult{Selection: sel, Conversation: c}, nil
	}

	unlock := s.locks.Lock(id)
	c, err := s.repo.Get(ctx, id)
	if err == nil && c.Closed() {
		err = domain.ErrConversationClosed
	}
	if err == nil {
		err = s.repo.Close(ctx, id, sel.Query)
	}
	unlock()
	if err != nil {
		return SelectResult{}, fmt.Errorf("select: %w", err)
	}

	s.cancelPending(id)
	c.Close(sel.Query)
	metrics.AssistantSelectionsTotal.WithLabelValues(metrics.SelectionActionable).Inc()
	s.log(ctx).Debug("conversation handed off",
		zap.String("conversation_id", id), zap.String("query", sel.Query))

	return SelectResult{Selection: sel, Conversation: c}, nil
}

// Dismiss cancels any pending reply and closes the conversation without a hand-off.
func (s *Service) Dismiss(ctx context.Context, id string) (*conversation.Conversation, error) {
	s.cancelPending(id)

	unlock := s.locks.Lock(id)
	err := s.repo.Close(ctx, id, "")
	unlock()
	if err != nil {
		return nil, fmt.Errorf("dismiss: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) appendTurn(
	ctx context.Context, id string, sender conversation.Sender, text string, suggestions []string,
) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load conversation: %w", err)
	}
	turn, err := c.Add(sender, text, suggestions, s.now())
	if err != nil {
		return fmt.Errorf("append %s turn: %w", sender, err)
	}
	if err := s.repo.AppendTurn(ctx, id, turn); err != nil {
		return fmt.Errorf("store %s turn: %w", sender, err)
	}
	return nil
}

// wait applies the reply delay. Dismissal surfaces as ErrConversationClosed.
func (s *Service) wait(ctx context.Context, id string) error {
	wctx, cancel := context.WithCancel(ctx)
	key := s.addPending(id, cancel)
	defer func() {
		s.removePending(id, key)
		cancel()
	}()

	err := s.delayer.Wait(wctx, s.delay)
	if err == nil {
		return nil
	}
	if ctx.Err() == nil && errors.Is(err, context.Canceled) {
		return domain.ErrConversationClosed
	}
	return fmt.Errorf("reply delay: %w", err)
}

func (s *Service) addPending(id string, cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.pending[id] == nil {
		s.pending[id] = make(map[uint64]context.CancelFunc)
	}
	s.pending[id][s.seq] = cancel
	return s.seq
}

func (s *Service) removePending(id string, key uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending[id], key)
	if len(s.pending[id]) == 0 {
		delete(s.pending, id)
	}
}

func (s *Service) cancelPending(id string) {
	s.mu.Lock()
	cancels := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// Pending returns the number of replies waiting on the delay for id.
func (s *Service) Pending(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending[id])
}

func (s *Service) log(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

func validateMessage(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewValidationError("text", "must not be empty")
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", domain.NewValidationError("text", fmt.Sprintf("must be at most %d characters", MaxMessageLength))
	}
	return text, nil
}

// keyedMutex serializes read-modify-write sections per conversation.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

// Lock acquires the lock for key and returns its release func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m := k.locks[key]
	if m == nil {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
