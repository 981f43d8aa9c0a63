// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Occupancy metrics for fixed-capacity containers, exported through a
// private Prometheus registry. Gauges read Len/Cap lazily at gather time, so
// tracking a container costs nothing on its hot path.

package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-collections/api"
)

const collectionLabel = "collection"

// MetricsRegistry holds tracked containers and ad hoc metric values.
type MetricsRegistry struct {
	mu        sync.RWMutex
	namespace string
	reg       *prometheus.Registry
	tracked   map[string]api.Sized
	metrics   map[string]any
	updated   time.Time
}

// NewMetricsRegistry creates an empty registry; namespace prefixes every
// exported metric name.
func NewMetricsRegistry(namespace string) *MetricsRegistry {
	return &MetricsRegistry{
		namespace: namespace,
		reg:       prometheus.NewRegistry(),
		tracked:   make(map[string]api.Sized),
		metrics:   make(map[string]any),
	}
}

// Track exports <namespace>_collection_len and _cap gauges for c, labelled
// with name. Names must be unique.
func (mr *MetricsRegistry) Track(name string, c api.Sized) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if _, dup := mr.tracked[name]; dup {
		return fmt.Errorf("track %q: %w", name, api.ErrInvalidArgument)
	}

	labels := prometheus.Labels{collectionLabel: name}
	length := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   mr.namespace,
		Name:        "collection_len",
		Help:        "Number of elements currently stored.",
		ConstLabels: labels,
	}, func() float64 { return float64(c.Len()) })
	capacity := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   mr.namespace,
		Name:        "collection_cap",
		Help:        "Fixed capacity bound at construction.",
		ConstLabels: labels,
	}, func() float64 { return float64(c.Cap()) })

	if err := mr.reg.Register(length); err != nil {
		return fmt.Errorf("track %q: %w", name, err)
	}
	if err := mr.reg.Register(capacity); err != nil {
		mr.reg.Unregister(length)
		return fmt.Errorf("track %q: %w", name, err)
	}
	mr.tracked[name] = c
	return nil
}

// Registry exposes the underlying Prometheus registry, e.g. for promhttp.
func (mr *MetricsRegistry) Registry() *prometheus.Registry {
	return mr.reg
}

// Set sets or updates an ad hoc metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the ad hoc metrics plus "<name>.len" and "<name>.cap"
// for every tracked container.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics)+2*len(mr.tracked))
	for k, v := range mr.metrics {
		out[k] = v
	}
	for name, c := range mr.tracked {
		out[name+".len"] = c.Len()
		out[name+".cap"] = c.Cap()
	}
	return out
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
