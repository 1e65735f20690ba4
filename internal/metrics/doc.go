// Package metrics exposes Prometheus collectors for multiplications and
// runtime memory snapshots used by the detailed report.
package metrics
