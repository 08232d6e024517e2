package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Domenick1991/shareit/internal/domain"
	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the id of the acting user. It is trusted as is.
const UserIDHeader = "X-Sharer-User-Id"

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetHeader(UserIDHeader), 10, 64)
	if err != nil {
		badRequest(c, "header "+UserIDHeader+" must be an integer")
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, name+" must be an integer")
		return 0, false
	}
	return id, true
}

// page reads from and size, defaulting to the first page of ten.
func page(c *gin.Context) (domain.Page, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		badRequest(c, "from must be an integer")
		return domain.Page{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil {
		badRequest(c, "size must be an integer")
		return domain.Page{}, false
	}
	p, err := domain.NewPage(from, size)
	if err != nil {
		writeError(c, err)
		return domain.Page{}, false
	}
	return p, true
}
