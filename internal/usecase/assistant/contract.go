package assistant

import (
	"context"

	"github.com/kailas-cloud/fixerhub/internal/domain/conversation"
)

// Repository persists conversations.
type Repository interface {
	Create(ctx context.Context, c *conversation.Conversation) error
	AppendTurn(ctx context.Context, id string, t conversation.Turn) error
	Close(ctx context.Context, id, handoff string) error
	Get(ctx context.Context, id string) (*conversation.Conversation, error)
}
