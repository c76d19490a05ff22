package logging

import "context"

type runIDKeyType struct{}
type problemKeyType struct{}

var (
	runIDKey   = runIDKeyType{}
	problemKey = problemKeyType{}
)

// WithRunID tags a context with the identifier of one evolution run.
// Log entries written under this context carry the ID automatically.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID retrieves the run identifier from the context.
func GetRunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok
}

// WithProblem tags a context with the name of the problem being searched.
func WithProblem(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, problemKey, name)
}

// GetProblem retrieves the problem name from the context.
func GetProblem(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(problemKey).(string)
	return name, ok
}
