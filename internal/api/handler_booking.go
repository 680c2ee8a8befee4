package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"specialroom-backend/internal/booking"
	"specialroom-backend/internal/mw"
)

// GetBooking handles the GET /api/booking/{id} request.
func (h *Handler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.fetcher.Fetch(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, rec)
	case errors.Is(err, booking.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "ไม่พบข้อมูล"})
	case booking.IsCanceled(err):
		// Client went away.
		c.Abort()
	default:
		mw.Log(c).Warn("booking lookup failed", zap.String("id", id), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "ระบบไม่พร้อมให้บริการ"})
	}
}
