package rest

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/William0209/backend-last/internal/common"
	"github.com/julienschmidt/httprouter"
)

type ctxKey string

const userIDKey ctxKey = "userID"

var bearerTokenRE = regexp.MustCompile(`^` + common.BearerScheme + ` ([^\s]+)$`)

// Authenticate resolves the caller of r from its bearer token. A request
// without an Authorization header, or with an empty one, yields
// common.ErrTokenMissing; a header that is not a well-formed bearer token
// yields common.ErrInvalidToken. Verification errors are returned as is.
func Authenticate(r *http.Request, v TokenVerifier) (string, error) {
	header := strings.TrimSpace(r.Header.Get(common.AuthorizationHeaderName))
	if header == "" {
		return "", common.ErrTokenMissing
	}

	groups := bearerTokenRE.FindStringSubmatch(header)
	if len(groups) == 0 {
		return "", common.ErrInvalidToken
	}

	return v.Verify(groups[1])
}

// UserIDFromContext returns the authenticated user id stored by protect.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func withUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// protect runs Authenticate ahead of next and hands it the caller's id
// through the request context.
func (s *Server) protect(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID, err := Authenticate(r, s.tokens)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		next(w, r.WithContext(withUserID(r.Context(), userID)), ps)
	}
}
