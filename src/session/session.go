// Package session carries the authenticated manager through a request context.
package session

import "context"

// Session identifies the authenticated manager of a request.
type Session struct {
	ManagerID int
	Email     string
}

type contextKey struct{}

func With(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func From(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

// Actor names the manager behind ctx for log lines.
func Actor(ctx context.Context) string {
	if s, ok := From(ctx); ok && s.Email != "" {
		return s.Email
	}
	return "system"
}
