package fixerhub

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "memory", "valkey" or "redis"
	addrs    []string
	password string
	cacheTTL time.Duration

	keyPrefix       string
	seedFile        string
	replyDelay      time.Duration
	conversationTTL time.Duration

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithMemory keeps all data in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMemory
		c.addrs = nil
		c.password = ""
	})
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithClientCache enables client-side caching of directory reads for Valkey and Redis.
func WithClientCache(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithKeyPrefix namespaces every stored key. Default: "fixerhub:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithReplyDelay sets the pause before the assistant answers. Default: none.
func WithReplyDelay(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.replyDelay = d
	})
}

// WithConversationTTL sets how long conversations are kept. Zero keeps them forever (default).
func WithConversationTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.conversationTTL = ttl
	})
}

// WithSeedFile loads a YAML directory seed when the directory is empty.
func WithSeedFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.seedFile = path
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
