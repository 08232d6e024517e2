package api

import (
	"net/http"

	"github.com/Domenick1991/shareit/internal/dto"
	"github.com/Domenick1991/shareit/internal/service/item"
	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	service item.ItemUseCase
}

func NewItemHandler(service item.ItemUseCase) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.listOwn)
	router.POST("", h.create)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.POST("/:id/comment", h.comment)
}

func (h *ItemHandler) listOwn(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		return
	}
	p, ok := page(c)
	if !ok {
		return
	}
	items, err := h.service.ListByOwner(c.Request.Context(), ownerID, p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemDetailsDtos(items))
}

func (h *ItemHandler) get(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	details, err := h.service.Get(c.Request.Context(), uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemDetailsDto(details))
}

func (h *ItemHandler) search(c *gin.Context) {
	p, ok := page(c)
	if !ok {
		return
	}
	items, err := h.service.Search(c.Request.Context(), c.Query("text"), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemDtos(items))
}

func (h *ItemHandler) create(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		return
	}
	var req item.CreateItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	created, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemDto(created))
}

func (h *ItemHandler) update(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ItemPatchDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	updated, err := h.service.Update(c.Request.Context(), ownerID, id, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemDto(updated))
}

func (h *ItemHandler) delete(c *gin.Context) {
	ownerID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), ownerID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToItemDto(deleted))
}

func (h *ItemHandler) comment(c *gin.Context) {
	authorID, ok := userID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.NewCommentDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	comment, err := h.service.AddComment(c.Request.Context(), authorID, id, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentDto(comment))
}
