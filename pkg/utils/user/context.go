package user

import (
	"context"
)

type contextKey string

const inspectorKey contextKey = "inspector"

// WithInspector sets the acting inspector's name in the context. The CLI
// threads the caller identity here; record constructors read it back instead
// of relying on a hardcoded current-user constant.
func WithInspector(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, inspectorKey, name)
}

// InspectorFromContext extracts the acting inspector's name, or "" when no
// identity was supplied.
func InspectorFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(inspectorKey).(string); ok {
		return name
	}
	return ""
}
