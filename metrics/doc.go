// Package metrics tracks config store operation counters and renders them in
// the Prometheus text exposition format. Wiring a Collector into a store is
// optional; a nil Collector disables counting with no other effect.
package metrics
