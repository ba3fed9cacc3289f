//go:build tools

package tools

// This file lists CLI tool dependencies; versions are pinned through the
// go.mod tool directives. It is not compiled into the binary.
//
// Tools used during development:
// - github.com/matryer/moq (mock generation for service tests)
// - github.com/pressly/goose/v3/cmd/goose (migration authoring)
