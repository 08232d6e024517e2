package api

import (
	"net/http"

	"github.com/Domenick1991/shareit/internal/dto"
	"github.com/Domenick1991/shareit/internal/service/request"
	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	service request.RequestUseCase
}

func NewRequestHandler(service request.RequestUseCase) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.listOwn)
	router.GET("/all", h.listOthers)
	router.GET("/:id", h.get)
}

func (h *RequestHandler) create(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req dto.NewRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	created, err := h.service.Create(c.Request.Context(), uid, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRequestDto(created))
}

func (h *RequestHandler) listOwn(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	requests, err := h.service.ListOwn(c.Request.Context(), uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRequestDtos(requests))
}

func (h *RequestHandler) listOthers(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	requests, err := h.service.ListOthers(c.Request.Context(), uid, p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRequestDtos(requests))
}

func (h *RequestHandler) get(c *gin.Context) {
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
	c.JSON(http.StatusOK, dto.ToRequestDto(found))
}
