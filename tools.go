//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are installed separately:
// - github.com/matryer/moq (mock generation)
// - github.com/pressly/goose/v3/cmd/goose (migrations)
