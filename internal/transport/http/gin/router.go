package httpgin

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kirinyoku/entrydesk/internal/domain"
	"github.com/kirinyoku/entrydesk/internal/service"
	"github.com/kirinyoku/entrydesk/internal/service/admission"
	"github.com/kirinyoku/entrydesk/internal/service/session"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Config struct {
	// SecureCookies marks the session cookie Secure; set in production.
	SecureCookies bool
	AllowOrigins  []string
	// TrustedProxies may set X-Forwarded-For; nil trusts none, so the
	// login limiter keys on the peer address.
	TrustedProxies []string
}

func NewRouter(
	svcs *service.Services,
	cfg Config,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	registerValidators()

	r := gin.New()

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS(cfg.AllowOrigins))
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})
	r.GET("/healthz/db", handleDBHealth(svcs))

	// session
	r.POST("/login", handleLogin(svcs, cfg))
	r.POST("/logout", handleLogout(svcs, cfg, logger))

	admin := r.Group("/", RequireAdmin(svcs.Session))
	{
		admin.GET("/session", handleSession())

		admin.POST("/entry-status", handleEntryStatus(svcs))
		admin.POST("/member-entry", handleMemberEntry(svcs))
		admin.POST("/verify-payment", handleVerifyPayment(svcs))

		admin.GET("/registrations", handleListRegistrations(svcs))
		admin.GET("/registrations/stats", handleRegistrationStats(svcs))
		admin.GET("/registrations/events", handleRegistrationEvents(svcs, logger))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Update whole-ticket entry status
// @Param    req body  EntryStatusRequest true "payload"
// @Success  200 {object} EntryStatusResponse
// @Failure  400 {object} ErrorResponse
// @Failure  401 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Failure  500 {object} ErrorResponse
// @Router   /entry-status [post]
func handleEntryStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EntryStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, bindingMessage(err))
			return
		}

		es, err := svcs.Admission.SetEntryStatus(
			c.Request.Context(),
			req.TicketID,
			domain.EntryState(req.EntryStatus),
			req.SecurityOfficer,
		)
		if err != nil {
			respondErr(c, err, "Failed to update entry status")
			return
		}

		c.JSON(http.StatusOK, EntryStatusResponse{
			Message: "Entry status updated successfully",
			Data:    *es,
		})
	}
}

// @Summary  Update entry status of one group member
// @Param    req body  MemberEntryRequest true "payload"
// @Success  200 {object} MemberEntryResponse
// @Failure  400 {object} ErrorResponse
// @Failure  401 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse "ticket or member not found"
// @Failure  409 {object} ErrorResponse "member name is ambiguous"
// @Failure  500 {object} ErrorResponse
// @Router   /member-entry [post]
func handleMemberEntry(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MemberEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, bindingMessage(err))
			return
		}

		ref := domain.MemberRef{Name: req.MemberName}
		if strings.TrimSpace(ref.Name) == "" {
			ref.Name = req.MemberEmail
		}
		if req.MemberID != "" {
			id, err := uuid.Parse(req.MemberID)
			if err != nil {
				badRequest(c, "member_id must be a UUID")
				return
			}
			ref.ID = id
		}

		entries, err := svcs.Admission.SetMemberEntry(
			c.Request.Context(),
			req.TicketID,
			ref,
			*req.Entered,
			req.SecurityOfficer,
		)
		if err != nil {
			respondErr(c, err, "Failed to update member entry status")
			return
		}

		c.JSON(http.StatusOK, MemberEntryResponse{
			Message: "Member entry status updated successfully",
			Data:    entries,
		})
	}
}

// @Summary  Set payment verification
// @Param    req body  VerifyPaymentRequest true "payload"
// @Success  200 {object} VerifyPaymentResponse
// @Failure  400 {object} ErrorResponse
// @Failure  401 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Failure  500 {object} ErrorResponse
// @Router   /verify-payment [post]
func handleVerifyPayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, bindingMessage(err))
			return
		}

		pv, err := svcs.Admission.SetPaymentVerified(
			c.Request.Context(),
			req.TicketID,
			*req.Verified,
		)
		if err != nil {
			respondErr(c, err, "Failed to update payment verification")
			return
		}

		c.JSON(http.StatusOK, VerifyPaymentResponse{
			Message: "Payment verification updated successfully",
			Data:    *pv,
		})
	}
}

// @Summary  List registrations with derived fields
// @Param    q  query  string  false  "search ticket ID, name, email or phone"
// @Success  200  {array}   domain.RegistrationSummary
// @Success  304  "not modified"
// @Failure  401  {object}  ErrorResponse
// @Failure  500  {object}  ErrorResponse
// @Router   /registrations [get]
func handleListRegistrations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svcs.Registrations.List(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondErr(c, err, "Failed to fetch registrations")
			return
		}
		// revalidated on every poll, 304 while unchanged
		writeJSONWithCache(c, http.StatusOK, list, "private, no-cache", true)
	}
}

// @Summary  Registration counters
// @Param    q  query  string  false  "search ticket ID, name, email or phone"
// @Success  200  {object}  domain.RegistrationStats
// @Failure  401  {object}  ErrorResponse
// @Failure  500  {object}  ErrorResponse
// @Router   /registrations/stats [get]
func handleRegistrationStats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svcs.Registrations.Stats(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondErr(c, err, "Failed to fetch registrations")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// @Summary  Check backend connectivity
// @Success  200 {object} DBHealthResponse
// @Failure  500 {object} ErrorResponse
// @Router   /healthz/db [get]
func handleDBHealth(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Health.Ping(c.Request.Context()); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Database connection failed",
				Details: rootCause(err).Error(),
			})
			return
		}
		c.JSON(http.StatusOK, DBHealthResponse{
			Message:   "Database connection successful",
			Timestamp: time.Now().UTC(),
		})
	}
}

// --- Helpers ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// respondErr maps service errors to responses. Anything unknown is a
// backend failure reported as 500 with failMsg and the root cause.
func respondErr(c *gin.Context, err error, failMsg string) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var limited *session.RateLimitedError

	switch {
	// session service
	case errors.As(err, &limited):
		secs := int(math.Ceil(limited.RetryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many login attempts"})
	case errors.Is(err, session.ErrPasswordRequired):
		badRequest(c, "Password is required")
	case errors.Is(err, session.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
	case errors.Is(err, session.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	// admission service
	case errors.Is(err, admission.ErrInvalidInput):
		badRequest(c, reason(err, admission.ErrInvalidInput))
	case errors.Is(err, admission.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Ticket not found"})
	case errors.Is(err, admission.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Ticket or member not found"})
	case errors.Is(err, admission.ErrMemberAmbiguous):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Member name matches more than one member"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   failMsg,
			Details: rootCause(err).Error(),
		})
	}
}

// reason returns the text wrapped after sentinel, e.g. "ticket ID is
// required" from "op: invalid input: ticket ID is required".
func reason(err, sentinel error) string {
	msg := err.Error()
	if _, tail, ok := strings.Cut(msg, sentinel.Error()+": "); ok && tail != "" {
		return tail
	}
	return sentinel.Error()
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
