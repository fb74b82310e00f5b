package fixerhub

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/fixerhub/internal/db"
	"github.com/kailas-cloud/fixerhub/internal/db/memory"
	dbRedis "github.com/kailas-cloud/fixerhub/internal/db/redis"
	"github.com/kailas-cloud/fixerhub/internal/domain"
	"github.com/kailas-cloud/fixerhub/internal/domain/category"
	"github.com/kailas-cloud/fixerhub/internal/domain/conversation"
	"github.com/kailas-cloud/fixerhub/internal/domain/professional"
	"github.com/kailas-cloud/fixerhub/internal/domain/search/query"
	conversationrepo "github.com/kailas-cloud/fixerhub/internal/repository/conversation"
	directoryrepo "github.com/kailas-cloud/fixerhub/internal/repository/directory"
	"github.com/kailas-cloud/fixerhub/internal/repository/seed"
	assistantuc "github.com/kailas-cloud/fixerhub/internal/usecase/assistant"
	directoryuc "github.com/kailas-cloud/fixerhub/internal/usecase/directory"
	searchuc "github.com/kailas-cloud/fixerhub/internal/usecase/search"
)

const (
	driverMemory = "memory"
	driverValkey = "valkey"
	driverRedis  = "redis"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for mocks in tests.
type directoryUseCase interface {
	PutProfessional(ctx context.Context, id string, attrs professional.Attrs) (professional.Professional, bool, error)
	GetProfessional(ctx context.Context, id string) (professional.Professional, error)
	DeleteProfessional(ctx context.Context, id string) error
	ListProfessionals(ctx context.Context) ([]professional.Professional, error)
	PutCategory(ctx context.Context, id int, name, icon, color string) (category.Category, bool, error)
	ListCategories(ctx context.Context) ([]category.Category, error)
}

type searchUseCase interface {
	Search(ctx context.Context, q query.Query) (searchuc.Result, error)
}

type assistantUseCase interface {
	Start(ctx context.Context) (*conversation.Conversation, error)
	Get(ctx context.Context, id string) (*conversation.Conversation, error)
	Send(ctx context.Context, id, text string) (*conversation.Conversation, error)
	Select(ctx context.Context, id, suggestion string) (assistantuc.SelectResult, error)
	Dismiss(ctx context.Context, id string) (*conversation.Conversation, error)
}

// Client is the fixerhub library entry point.
type Client struct {
	store        db.Store
	directorySvc directoryUseCase
	searchSvc    searchUseCase
	assistantSvc assistantUseCase
	obs          *observer
}

// New creates a Client. Without a storage option data is kept in memory.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: driverMemory}
	for _, o := range opts {
		o.apply(cfg)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("fixerhub: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	c, err := wireClient(ctx, store, cfg, obs)
	if err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case driverMemory:
		return memory.NewStore(), nil
	case driverValkey, driverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
			CacheTTL: cfg.cacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("fixerhub: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("fixerhub: unknown driver %q", cfg.driver)
	}
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	prefix := cfg.keyPrefix
	if prefix == "" {
		prefix = domain.KeyPrefix
	}

	dirRepo := directoryrepo.New(store, prefix)
	if cfg.seedFile != "" {
		data, err := seed.LoadFile(cfg.seedFile)
		if err != nil {
			return nil, fmt.Errorf("fixerhub: %w", err)
		}
		if _, err := seed.Apply(ctx, dirRepo, data); err != nil {
			return nil, fmt.Errorf("fixerhub: seed directory: %w", err)
		}
	}

	var delayer assistantuc.Delayer = assistantuc.NoDelay{}
	if cfg.replyDelay > 0 {
		delayer = assistantuc.TimerDelayer{}
	}

	directorySvc := directoryuc.New(dirRepo)
	assistantSvc := assistantuc.New(
		conversationrepo.New(store, prefix, cfg.conversationTTL),
		assistantuc.DefaultEngine(), delayer, cfg.replyDelay, cfg.logger,
	)

	return &Client{
		store:        store,
		directorySvc: directorySvc,
		searchSvc:    searchuc.New(directorySvc),
		assistantSvc: assistantSvc,
		obs:          obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Directory returns the listing management service.
func (c *Client) Directory() *DirectoryService {
	return &DirectoryService{svc: c.directorySvc, obs: c.obs}
}

// Search starts a search. Without modifiers it returns the whole directory.
func (c *Client) Search() *SearchBuilder {
	return newSearchBuilder(c.searchSvc, c.obs)
}

// Assistant returns the conversational assistant.
func (c *Client) Assistant() *AssistantService {
	return &AssistantService{svc: c.assistantSvc, search: c.searchSvc, obs: c.obs}
}
