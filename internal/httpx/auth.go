package httpx

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/moviecategories/internal/auth/token"
	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding *token.Claims of an admitted request.
const ClaimsKey = "claims"

// TokenValidator is satisfied by *token.Codec.
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// BearerAuth admits requests carrying a valid "Authorization: Bearer <token>"
// header and rejects everything else with a generic 401. The rejection reason
// is only logged.
func BearerAuth(v TokenValidator, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if !ok {
			Abort(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		claims, err := v.Validate(raw)
		if err != nil {
			logger.Warn(c.Request.Context(), "token rejected", "reason", err.Error())
			Abort(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Request = c.Request.WithContext(token.NewContext(c.Request.Context(), claims))
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by BearerAuth.
func ClaimsFrom(c *gin.Context) (*token.Claims, bool) {
	return token.FromContext(c.Request.Context())
}

func bearerToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
