// Package metrics holds the Prometheus collectors of the shopping list service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for list and item operations.
type Metrics struct {
	ListsCreated prometheus.Counter
	ItemsCreated prometheus.Counter
	ItemsChecked *prometheus.CounterVec
	ItemsDeleted prometheus.Counter
	RPCDuration  *prometheus.HistogramVec
}

// New creates all collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer for the global registry; tests should
// use a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ListsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "shoppinglist_lists_created_total",
			Help: "Total number of shopping lists created",
		}),
		ItemsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "shoppinglist_items_created_total",
			Help: "Total number of list items created",
		}),
		ItemsChecked: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shoppinglist_items_checked_total",
			Help: "Total number of items marked done or todo",
		}, []string{"state"}),
		ItemsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "shoppinglist_items_deleted_total",
			Help: "Total number of items deleted or cleared",
		}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shoppinglist_rpc_duration_seconds",
			Help:    "Duration of RPCs by procedure and result code",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"procedure", "code"}),
	}
}

// IncrementListsCreated records a successful list creation.
func (m *Metrics) IncrementListsCreated() {
	m.ListsCreated.Inc()
}

// IncrementItemsCreated records a successful item creation.
func (m *Metrics) IncrementItemsCreated() {
	m.ItemsCreated.Inc()
}

// IncrementItemsChecked records an item moved to done (check) or back to todo.
func (m *Metrics) IncrementItemsChecked(check bool) {
	state := "todo"
	if check {
		state = "done"
	}
	m.ItemsChecked.WithLabelValues(state).Inc()
}

// AddItemsDeleted records n removed items.
func (m *Metrics) AddItemsDeleted(n int) {
	m.ItemsDeleted.Add(float64(n))
}

// ObserveRPC records the duration of an RPC.
// Call with time.Now() at the start of the call.
func (m *Metrics) ObserveRPC(procedure, code string, start time.Time) {
	m.RPCDuration.WithLabelValues(procedure, code).Observe(time.Since(start).Seconds())
}
