package fixerhub

import (
	"context"

	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/conversation"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
	assistantuc "github.com/kailas-cloud/fixerhub/internal/usecase/assistant"
	searchuc "github.com/kailas-cloud/fixerhub/internal/usecase/search"
)

// --- directoryUseCase mock ---

type mockDirectoryUC struct {
	putFn      func(ctx context.Context, id string, a professional.Attrs) (professional.Professional, bool, error)
	getFn      func(ctx context.Context, id string) (professional.Professional, error)
	deleteFn   func(ctx context.Context, id string) error
	listFn     func(ctx context.Context) ([]professional.Professional, error)
	putCatFn   func(ctx context.Context, id int, name, icon, color string) (category.Category, bool, error)
	listCatsFn func(ctx context.Context) ([]category.Category, error)
}

func (m *mockDirectoryUC) PutProfessional(
	ctx context.Context, id string, a professional.Attrs,
) (professional.Professional, bool, error) {
	return m.putFn(ctx, id, a)
}

func (m *mockDirectoryUC) GetProfessional(ctx context.Context, id string) (professional.Professional, error) {
	return m.getFn(ctx, id)
}

func (m *mockDirectoryUC) DeleteProfessional(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDirectoryUC) ListProfessionals(ctx context.Context) ([]professional.Professional, error) {
	return m.listFn(ctx)
}

func (m *mockDirectoryUC) PutCategory(
	ctx context.Context, id int, name, icon, color string,
) (category.Category, bool, error) {
	return m.putCatFn(ctx, id, name, icon, color)
}

func (m *mockDirectoryUC) ListCategories(ctx context.Context) ([]category.Category, error) {
	return m.listCatsFn(ctx)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	fn func(ctx context.Context, q query.Query) (searchuc.Result, error)
}

func (m *mockSearchUC) Search(ctx context.Context, q query.Query) (searchuc.Result, error) {
	return m.fn(ctx, q)
}

// --- assistantUseCase mock ---

type mockAssistantUC struct {
	startFn   func(ctx context.Context) (*conversation.Conversation, error)
	getFn     func(ctx context.Context, id string) (*conversation.Conversation, error)
	sendFn    func(ctx context.Context, id, text string) (*conversation.Conversation, error)
	selectFn  func(ctx context.Context, id, suggestion string) (assistantuc.SelectResult, error)
	dismissFn func(ctx context.Context, id string) (*conversation.Conversation, error)
}

func (m *mockAssistantUC) Start(ctx context.Context) (*conversation.Conversation, error) {
	return m.startFn(ctx)
}

func (m *mockAssistantUC) Get(ctx context.Context, id string) (*conversation.Conversation, error) {
	return m.getFn(ctx, id)
}

func (m *mockAssistantUC) Send(ctx context.Context, id, text string) (*conversation.Conversation, error) {
	return m.sendFn(ctx, id, text)
}

func (m *mockAssistantUC) Select(ctx context.Context, id, suggestion string) (assistantuc.SelectResult, error) {
	return m.selectFn(ctx, id, suggestion)
}

func (m *mockAssistantUC) Dismiss(ctx context.Context, id string) (*conversation.Conversation, error) {
	return m.dismissFn(ctx, id)
}
