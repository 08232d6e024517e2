package api

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

type registrar interface {
	Register(router *gin.RouterGroup)
}

// serve routes one request through a fresh engine with h mounted at prefix.
// An empty uid leaves the user header off.
func serve(h registrar, prefix, method, target, body, uid string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	h.Register(engine.Group(prefix))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if uid != "" {
		req.Header.Set(UserIDHeader, uid)
	}
	engine.ServeHTTP(w, req)
	return w
}
