package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
	"github.com/nexori/backend/internal/service"
)

const currentUserKey = "currentUser"

type AuthMiddleware struct {
	authService service.AuthService
}

func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth resolves the bearer token to an active user and stores it in
// the request context for handlers downstream.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractBearerToken(ctx)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or invalid authorization header"})
			return
		}
		user, err := m.authService.ParseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Could not validate credentials"})
			return
		}
		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// RequireAdmin is the single capability check gating every mutating
// endpoint. It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok || !user.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin privileges required"})
			return
		}
		ctx.Next()
	}
}

// OptionalAuth attaches the user when a valid bearer token is present and
// lets the request through either way. Used on the public submission
// endpoint so logged-in respondents get linked to their response.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if tokenString := extractBearerToken(ctx); tokenString != "" {
			if user, err := m.authService.ParseToken(tokenString); err == nil {
				ctx.Set(currentUserKey, user)
			}
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(ctx *gin.Context) (*model.User, bool) {
	value, exists := ctx.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

func extractBearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
