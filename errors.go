package fixerhub

import "github.com/kailas-cloud/fixerhub/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound             = domain.ErrNotFound
	ErrProfessionalNotFound = domain.ErrProfessionalNotFound
	ErrCategoryNotFound     = domain.ErrCategoryNotFound
	ErrConversationNotFound = domain.ErrConversationNotFound
	ErrConversationClosed   = domain.ErrConversationClosed
	ErrValidation           = domain.ErrValidation
)
