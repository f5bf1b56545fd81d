package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// NewMiddleware returns a huma middleware that verifies the bearer token and
// stores the session in the request context.
func NewMiddleware(api huma.API, secret string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		tokenStr := bearerToken(ctx.Header("Authorization"))
		if tokenStr == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		session := &Session{
			UserID: claims.Subject,
			Name:   claims.Name,
		}
		next(huma.WithValue(ctx, sessionKey, session))
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
