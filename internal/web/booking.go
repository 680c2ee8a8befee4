package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"specialroom-backend/internal/booking"
	"specialroom-backend/internal/flash"
	"specialroom-backend/internal/mw"
	"specialroom-backend/internal/parse"
	"specialroom-backend/internal/progress"
)

// NotFoundText is the one message shown for every failed lookup.
const NotFoundText = "ไม่พบข้อมูลการจอง"

type checkBookingPage struct {
	Page
	BookingID string
	Invalid   bool
}

// CheckBooking handles GET /checkbooking-status.
func (s *Site) CheckBooking(c *gin.Context) {
	s.render(c, http.StatusOK, "checkbooking", checkBookingPage{
		Page: s.page(c, "ตรวจสอบสถานะการจอง", RouteCheckBooking),
	})
}

// SubmitCheckBooking handles POST /checkbooking-status. A booking that
// exists sends the visitor to its progress page.
func (s *Site) SubmitCheckBooking(c *gin.Context) {
	raw := c.PostForm("bookingId")
	p := checkBookingPage{
		Page:      s.page(c, "ตรวจสอบสถานะการจอง", RouteCheckBooking),
		BookingID: raw,
		Invalid:   true,
	}

	id, err := parse.BookingID(raw)
	if err != nil {
		s.errorToast(&p.Page, "กรุณากรอกเลขที่การจอง")
		s.render(c, http.StatusUnprocessableEntity, "checkbooking", p)
		return
	}

	snap, ok := s.lookup(c, id)
	if !ok {
		return
	}
	if snap.Phase != booking.PhaseLoaded {
		s.errorToast(&p.Page, NotFoundText)
		s.render(c, http.StatusNotFound, "checkbooking", p)
		return
	}

	s.redirect(c, RouteProgress+"/"+url.PathEscape(id), flash.Success, "ค้นหาสำเร็จ! กำลังไปยังหน้าสถานะ...")
}

type progressPage struct {
	Page
	Snapshot booking.Snapshot
	State    progress.State
	Items    []progress.Item
	Message  string
}

// Progress handles GET /booking-progress/:id.
func (s *Site) Progress(c *gin.Context) {
	p := progressPage{Page: s.page(c, "สถานะการจอง", RouteCheckBooking)}

	id, err := parse.BookingID(c.Param("id"))
	if err != nil {
		p.Snapshot = booking.Snapshot{Phase: booking.PhaseNotFound, Err: booking.ErrNotFound}
		p.Message = NotFoundText
		s.render(c, http.StatusNotFound, "progress", p)
		return
	}

	snap, ok := s.lookup(c, id)
	if !ok {
		return
	}
	p.Snapshot = snap
	if snap.Phase != booking.PhaseLoaded {
		p.Message = NotFoundText
		s.render(c, http.StatusNotFound, "progress", p)
		return
	}

	p.State = progress.Derive(snap.Record.Status, progress.Steps())
	p.Items = p.State.Items()
	if p.State.Phase == progress.PhaseUnknown {
		mw.Log(c).Info("booking has an unrecognized status",
			zap.String("id", id), zap.String("status", snap.Record.Status))
	}
	s.render(c, http.StatusOK, "progress", p)
}

// lookup loads one booking for the request. It reports false when the
// visitor went away before the answer arrived; nothing is rendered then.
func (s *Site) lookup(c *gin.Context, id string) (booking.Snapshot, bool) {
	view := booking.NewView(s.fetcher)
	defer view.Close()

	snap, applied := view.Load(c.Request.Context(), id)
	if !applied {
		c.Abort()
		return snap, false
	}

	var unavailable *booking.UnavailableError
	if errors.As(snap.Err, &unavailable) {
		mw.Log(c).Warn("booking lookup failed", zap.String("id", id), zap.Error(unavailable))
	}
	return snap, true
}
