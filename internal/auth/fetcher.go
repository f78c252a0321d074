package auth

import (
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
)

// SessionInfo adapts a SessionStore to the middleware's SessionFetcher.
type SessionInfo struct {
	Sessions SessionStore
}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	session, err := si.Sessions.Find(id)
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		User: utils.SessionUser{
			ID:       session.UserID,
			Username: session.Username,
			Role:     session.Role,
		},
		ExpiresAt: session.ExpiresAt,
	}, nil
}
