package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/api/respond"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

// HeaderSessionToken carries the session token on authenticated requests.
const HeaderSessionToken = "X-Session-Token"

const sessionKey = "session"

// SessionResolver looks up live sessions by token.
type SessionResolver interface {
	Resolve(ctx context.Context, token uuid.UUID) (model.Session, error)
}

// Auth resolves the session token header and stores the session on the
// request context. Requests without a valid session are rejected with 401.
func Auth(sessions SessionResolver) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		token, err := uuid.Parse(c.GetHeader(HeaderSessionToken))
		if err != nil {
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("missing or malformed session token"))
			c.Abort()
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			zlog.Logger.Warn().Str("token", token.String()).Msg("unknown session token")
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("session not found"))
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Session returns the session stored by Auth.
func Session(c *ginext.Context) (model.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return model.Session{}, false
	}

	sess, ok := v.(model.Session)
	return sess, ok
}
