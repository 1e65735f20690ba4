// Package logging provides the structured logging interface used by kmul.
// It wraps zerolog so components log through one Logger type and the CLI
// can set the global level from a flag.
package logging
