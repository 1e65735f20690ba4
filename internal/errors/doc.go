// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// arithmetic preconditions, buffer capacity, etc.) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
