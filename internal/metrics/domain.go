package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search kinds.
const (
	SearchKindText     = "text"
	SearchKindCategory = "category"
	SearchKindBrowse   = "browse"
)

// Selection kinds.
const (
	SelectionActionable = "actionable"
	SelectionFollowUp   = "follow_up"
)

// Search and assistant Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_requests_total",
			Help:      "Total number of directory searches",
		},
		[]string{"kind"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_results",
			Help:      "Number of professionals returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	AssistantRuleHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "assistant_rule_hits_total",
			Help:      "Assistant replies by matched rule topic",
		},
		[]string{"topic"},
	)

	AssistantSelectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "assistant_selections_total",
			Help:      "Suggestion selections by outcome",
		},
		[]string{"kind"},
	)

	AssistantRepliesCanceledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "assistant_replies_canceled_total",
			Help:      "Delayed assistant replies that were canceled before delivery",
		},
	)
)

var registerDomainOnce sync.Once

// RegisterDomainMetrics registers search and assistant metrics with the default registry.
// Safe to call more than once.
func RegisterDomainMetrics() {
	registerDomainOnce.Do(func() {
		prometheus.MustRegister(
			SearchRequestsTotal,
			SearchResults,
			AssistantRuleHitsTotal,
			AssistantSelectionsTotal,
			AssistantRepliesCanceledTotal,
		)
	})
}
