package gateway

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Forwarder interface {
	Forward(ctx context.Context, req Request) (*Response, error)
}

type newUser struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type userPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type newItem struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *int64  `json:"requestId"`
}

type itemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type newComment struct {
	Text string `json:"text" binding:"required"`
}

type newBooking struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required,gtfield=Start"`
}

type newRequest struct {
	Description string `json:"description" binding:"required"`
}

type pageQuery struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1"`
}

type Handler struct {
	server Forwarder
}

func NewHandler(server Forwarder) *Handler {
	return &Handler{server: server}
}

// Register mounts every server path on router with its shape checks.
func (h *Handler) Register(router gin.IRouter) {
	users := router.Group("/users")
	users.GET("", h.forward())
	users.GET("/:id", h.forward(pathID("id")))
	users.POST("", h.forward(body[newUser]()))
	users.PATCH("/:id", h.forward(pathID("id"), body[userPatch]()))
	users.DELETE("/:id", h.forward(pathID("id")))

	items := router.Group("/items")
	items.GET("", h.forward(requireUser, pagination))
	items.GET("/search", h.forward(pagination))
	items.GET("/:id", h.forward(requireUser, pathID("id")))
	items.POST("", h.forward(requireUser, body[newItem]()))
	items.PATCH("/:id", h.forward(requireUser, pathID("id"), body[itemPatch]()))
	items.DELETE("/:id", h.forward(requireUser, pathID("id")))
	items.POST("/:id/comment", h.forward(requireUser, pathID("id"), body[newComment]()))

	bookings := router.Group("/bookings")
	bookings.POST("", h.forward(requireUser, body[newBooking]()))
	bookings.GET("", h.forward(requireUser, bookingState, pagination))
	bookings.GET("/owner", h.forward(requireUser, bookingState, pagination))
	bookings.GET("/:id", h.forward(requireUser, pathID("id")))
	bookings.PATCH("/:id", h.forward(requireUser, pathID("id"), approvedFlag))
	bookings.DELETE("/:id", h.forward(requireUser, pathID("id")))

	requests := router.Group("/requests")
	requests.POST("", h.forward(requireUser, body[newRequest]()))
	requests.GET("", h.forward(requireUser))
	requests.GET("/all", h.forward(requireUser, pagination))
	requests.GET("/:id", h.forward(requireUser, pathID("id")))
}

// check inspects the request and, when it fails, returns the message for
// a 400 reply. raw is the request body, already read.
type check func(c *gin.Context, raw []byte) string

func (h *Handler) forward(checks ...check) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		for _, ch := range checks {
			if msg := ch(c, raw); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
		}

		resp, err := h.server.Forward(c.Request.Context(), Request{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			RawQuery:  c.Request.URL.RawQuery,
			Body:      raw,
			UserID:    c.GetHeader(UserIDHeader),
			RequestID: c.GetHeader(RequestIDHeader),
		})
		if err != nil {
			status, msg := StatusFor(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.Header(RequestIDHeader, resp.RequestID)
		c.Data(resp.Status, "application/json", resp.Body)
	}
}

func requireUser(c *gin.Context, _ []byte) string {
	if _, err := strconv.ParseInt(c.GetHeader(UserIDHeader), 10, 64); err != nil {
		return "header " + UserIDHeader + " must be an integer"
	}
	return ""
}

func pathID(name string) check {
	return func(c *gin.Context, _ []byte) string {
		if _, err := strconv.ParseInt(c.Param(name), 10, 64); err != nil {
			return name + " must be an integer"
		}
		return ""
	}
}

func body[T any]() check {
	return func(c *gin.Context, raw []byte) string {
		var v T
		if err := binding.JSON.BindBody(raw, &v); err != nil {
			return err.Error()
		}
		return ""
	}
}

func pagination(c *gin.Context, _ []byte) string {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return err.Error()
	}
	return ""
}

func bookingState(c *gin.Context, _ []byte) string {
	if _, err := domain.ParseBookingState(c.Query("state")); err != nil {
		return err.Error()
	}
	return ""
}

func approvedFlag(c *gin.Context, _ []byte) string {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		return "approved must be true or false"
	}
	return ""
}
