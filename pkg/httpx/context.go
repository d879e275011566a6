package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id (int64) once the session
// middleware has resolved it.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user id bound to ctx, or
// (0, false) when the request carries no session identity.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(int64)
	return v, ok
}

// ContextWithUserID binds the authenticated user id to ctx.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
