/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

// Package metrics keeps the service's Prometheus registry.
//
// Events are counted under dotted names such as "Sgtin.Encode.Success",
// carried as the "event" label so the names stay readable in dashboards.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sgtin_service"

var (
	registry = prometheus.NewRegistry()

	events = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Count of service events by name.",
	}, []string{"event"})

	latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "latency_seconds",
		Help:      "Latency of timed operations by name.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"event"})
)

func init() {
	registry.MustRegister(
		events,
		latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Counter returns the counter for the named event.
func Counter(name string) prometheus.Counter {
	return events.WithLabelValues(name)
}

// Timer returns the latency observer for the named operation.
func Timer(name string) prometheus.Observer {
	return latency.WithLabelValues(name)
}

// Mark increments the named event counter by one.
func Mark(name string) {
	events.WithLabelValues(name).Inc()
}

// Registry returns the registry all service metrics live in.
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
