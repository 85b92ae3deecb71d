package httpgin

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/entrydesk/internal/domain"
	"github.com/kirinyoku/entrydesk/internal/service"
)

const (
	eventTicketChanged = "ticket_changed"
	sseKeepAlive       = 25 * time.Second
)

// @Summary  Stream ticket changes
// @Description  Server-sent events; each committed mutation emits "ticket_changed" with a domain.TicketChange payload.
// @Produce  text/event-stream
// @Success  200 {object} domain.TicketChange
// @Failure  401 {object} ErrorResponse
// @Router   /registrations/events [get]
func handleRegistrationEvents(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svcs.Changes == nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Change stream unavailable"})
			return
		}

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		changes := make(chan domain.TicketChange, 32)
		done := make(chan error, 1)

		go func() {
			done <- svcs.Changes.Subscribe(ctx, func(_ context.Context, change domain.TicketChange) {
				select {
				case changes <- change:
				default:
					// drop when the client lags
				}
			})
		}()

		ticker := time.NewTicker(sseKeepAlive)
		defer ticker.Stop()

		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.SSEvent("ready", gin.H{"ts_unix": time.Now().Unix()})
		c.Writer.Flush()

		c.Stream(func(io.Writer) bool {
			select {
			case <-ctx.Done():
				return false
			case err := <-done:
				if err != nil && ctx.Err() == nil {
					logger.Warn("change stream subscription ended", "error", err)
				}
				return false
			case change := <-changes:
				c.SSEvent(eventTicketChanged, change)
				return true
			case t := <-ticker.C:
				c.SSEvent("ping", gin.H{"ts_unix": t.Unix()})
				return true
			}
		})
	}
}
