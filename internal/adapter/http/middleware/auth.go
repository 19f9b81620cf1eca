package middleware

import (
	"net/http"
	"strings"

	"polymesh/internal/domain/entities"
	"polymesh/internal/infrastructure/auth"
	"polymesh/internal/infrastructure/logger"
	"polymesh/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxUserID = "userID"
	ctxRole   = "userRole"
)

var (
	errAuthRequired  = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
	errInvalidToken  = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusForbidden)
	errAdminRequired = pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Admin access required", http.StatusForbidden)
)

// TokenParser validates a bearer token.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

var _ TokenParser = (*auth.TokenManager)(nil)

// Auth rejects requests without a valid bearer token: 401 when it is
// missing, 403 when it does not validate.
func Auth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		claims, err := p.Parse(token)
		if err != nil {
			logger.FromCtx(c.Request.Context()).Info("[http][auth] token rejected", zap.Error(err))
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// lets anonymous requests through.
func OptionalAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := p.Parse(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != entities.RoleAdmin {
			c.AbortWithStatusJSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}

// UserID is the authenticated user, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func Role(c *gin.Context) entities.Role {
	if v, ok := c.Get(ctxRole); ok {
		if r, ok := v.(entities.Role); ok {
			return r
		}
	}
	return ""
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxRole, claims.Role)
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
