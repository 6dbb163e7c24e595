// Package metrics tracks outstanding store calls and exposes them to Prometheus.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// ActivityTracker counts in-flight calls per store. Busy is the derived "loading" view:
// concurrent calls against one store each hold their own count instead of sharing a flag.
type ActivityTracker struct {
	mu       sync.Mutex
	inFlight map[string]int

	gauge  *prometheus.GaugeVec
	calls  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewActivityTracker registers the tracker's collectors with reg.
func NewActivityTracker(reg prometheus.Registerer) (*ActivityTracker, error) {
	t := &ActivityTracker{
		inFlight: map[string]int{},
		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "market",
			Name:      "store_calls_in_flight",
			Help:      "Store calls currently in progress.",
		}, []string{"store"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "market",
			Name:      "store_calls_total",
			Help:      "Store calls started.",
		}, []string{"store", "operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "market",
			Name:      "store_call_errors_total",
			Help:      "Store calls that returned an error.",
		}, []string{"store", "operation"}),
	}

	for _, c := range []prometheus.Collector{t.gauge, t.calls, t.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Begin marks the start of a call and returns the function that ends it.
// Pass the call's error (or nil) to the returned function.
func (t *ActivityTracker) Begin(store, operation string) func(err error) {
	t.mu.Lock()
	t.inFlight[store]++
	t.mu.Unlock()

	t.gauge.WithLabelValues(store).Inc()
	t.calls.WithLabelValues(store, operation).Inc()

	var once sync.Once

	return func(err error) {
		once.Do(func() {
			t.mu.Lock()
			t.inFlight[store]--
			t.mu.Unlock()

			t.gauge.WithLabelValues(store).Dec()
			if err != nil {
				t.errors.WithLabelValues(store, operation).Inc()
			}
		})
	}
}

// Busy reports whether any call against store is in progress.
func (t *ActivityTracker) Busy(store string) bool {
	return t.InFlight(store) > 0
}

// InFlight returns the number of calls in progress against store.
func (t *ActivityTracker) InFlight(store string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inFlight[store]
}

// Snapshot returns the in-flight count of every store seen so far.
func (t *ActivityTracker) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]int, len(t.inFlight))
	for k, v := range t.inFlight {
		out[k] = v
	}

	return out
}
