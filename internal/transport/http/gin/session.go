package httpgin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/entrydesk/internal/auth"
	"github.com/kirinyoku/entrydesk/internal/service"
	"github.com/kirinyoku/entrydesk/internal/service/session"
)

const ctxKeyClaims = "admin_claims"

// RequireAdmin rejects requests without a valid, unrevoked session cookie.
func RequireAdmin(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.CookieName)

		claims, err := sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to check session",
				Details: rootCause(err).Error(),
			})
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

// @Summary  Log in with the admin password
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} MessageResponse
// @Header   200 {string} Set-Cookie "admin_token"
// @Failure  400 {object} ErrorResponse
// @Failure  401 {object} ErrorResponse
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /login [post]
func handleLogin(svcs *service.Services, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Password is required")
			return
		}

		s, err := svcs.Session.Login(c.Request.Context(), req.Password, c.ClientIP())
		if err != nil {
			respondErr(c, err, "Internal server error")
			return
		}

		setSessionCookie(c, s.Token, int(svcs.Session.TTL().Seconds()), cfg.SecureCookies)
		c.JSON(http.StatusOK, MessageResponse{Message: "Authentication successful"})
	}
}

// @Summary  Log out and revoke the session
// @Success  200 {object} MessageResponse
// @Router   /logout [post]
func handleLogout(svcs *service.Services, cfg Config, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
			if err := svcs.Session.Logout(c.Request.Context(), token); err != nil {
				logger.Warn("failed to revoke session", "error", err)
			}
		}

		setSessionCookie(c, "", -1, cfg.SecureCookies)
		c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}

// @Summary  Check the current session
// @Success  200 {object} SessionResponse
// @Failure  401 {object} ErrorResponse
// @Router   /session [get]
func handleSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := SessionResponse{Authenticated: true}
		if v, ok := c.Get(ctxKeyClaims); ok {
			if claims, ok := v.(*auth.Claims); ok && claims.ExpiresAt != nil {
				resp.ExpiresAt = claims.ExpiresAt.Time.UTC()
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

func setSessionCookie(c *gin.Context, value string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", secure, true)
}
