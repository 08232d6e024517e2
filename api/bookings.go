package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/shareit/internal/dto"
	"github.com/Domenick1991/shareit/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.listForBooker)
	router.GET("/owner", h.listForOwner)
	router.GET("/:id", h.get)
	router.PATCH("/:id", h.decide)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	bookerID, ok := userID(c)
	if !ok {
		return
	}
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), bookerID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingDto(created))
}

func (h *BookingHandler) decide(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		badRequest(c, "approved must be true or false")
		return
	}

	decided, err := h.service.Decide(c.Request.Context(), ownerID, id, approved)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingDto(decided))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	bookerID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	canceled, err := h.service.Cancel(c.Request.Context(), bookerID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingDto(canceled))
}

func (h *BookingHandler) get(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingDto(found))
}

func (h *BookingHandler) listForBooker(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListForBooker(c.Request.Context(), uid, c.DefaultQuery("state", "ALL"), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingDtos(bookings))
}

func (h *BookingHandler) listForOwner(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}

	bookings, err := h.service.ListForOwner(c.Request.Context(), uid, c.DefaultQuery("state", "ALL"), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingDtos(bookings))
}
