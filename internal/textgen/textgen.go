// Package textgen defines the contract with the external text-generation
// service. The service is pluggable: the anthropic adapter implements it in
// production, services fall back to deterministic logic when it is absent
// or failing.
package textgen

import (
	"context"
	"fmt"
)

// Request is a single text-generation request.
type Request struct {
	System string
	Prompt string
}

// Result is the outcome of a generation attempt. FailureReason is empty on
// success; when set, Text is empty and the caller should use its fallback.
// Generation never surfaces as a Go error: a failed attempt only downgrades
// output quality.
type Result struct {
	Text          string
	FailureReason string
}

// OK reports whether the generation succeeded.
func (r Result) OK() bool { return r.FailureReason == "" }

// Failure builds a failed Result with a formatted reason.
func Failure(format string, args ...any) Result {
	return Result{FailureReason: fmt.Sprintf(format, args...)}
}

// Generator produces text from a prompt. Implementations must respect their
// own bounded timeout and never retry.
type Generator interface {
	Generate(ctx context.Context, req Request) Result
}
