// Package server runs the optional HTTP endpoint that exposes Prometheus
// metrics and a health probe while kmul is running.
package server
