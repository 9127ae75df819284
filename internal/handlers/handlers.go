// Package handlers maps the HTTP surface onto the service layer. Handlers do
// binding and status mapping only; every decision lives in the services.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turfnest/internal/models"
	"turfnest/internal/search"
	"turfnest/internal/service"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// writeError translates service sentinels into HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTurfNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "turf not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ListSports handles GET /api/sports.
func (h *Handlers) ListSports(c *gin.Context) {
	sports := h.services.Turfs.Sports(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"sports": sports})
}

// ListTurfs handles GET /api/turfs. The search parameter carries free text;
// sport, city and price narrow the result further. The response reports which
// relaxation stage produced it.
func (h *Handlers) ListTurfs(c *gin.Context) {
	filters := search.Filters{
		Query: c.Query("search"),
		Sport: c.Query("sport"),
		City:  c.Query("city"),
		Price: c.Query("price"),
	}
	resp := h.services.Turfs.Browse(c.Request.Context(), filters)
	c.JSON(http.StatusOK, resp)
}

// GetTurf handles GET /api/turfs/:id.
func (h *Handlers) GetTurf(c *gin.Context) {
	turf, err := h.services.Turfs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, turf)
}

// ListSlots handles GET /api/turfs/:id/slots?sport=&date=.
func (h *Handlers) ListSlots(c *gin.Context) {
	sport := c.Query("sport")
	date := c.Query("date")
	if sport == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sport and date are required"})
		return
	}

	resp, err := h.services.Availability.Slots(c.Request.Context(), c.Param("id"), sport, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTurf handles POST /api/turfs, the owner listing form.
func (h *Handlers) CreateTurf(c *gin.Context) {
	var req models.CreateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Turfs.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateBooking handles POST /api/bookings.
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Bookings.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListBookings handles GET /api/bookings, the profile view.
func (h *Handlers) ListBookings(c *gin.Context) {
	resp, err := h.services.Bookings.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
