package utils

import (
	"context"
	"time"
)

// SessionUser is the authenticated identity carried on a request context.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionData is what a session fetcher returns for a session id.
type SessionData struct {
	User      SessionUser
	ExpiresAt time.Time
}

type contextKey string

const ContextSessionUserKey contextKey = "sessionUser"

func GetSessionUserFromContext(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(ContextSessionUserKey).(SessionUser)
	return user, ok
}
