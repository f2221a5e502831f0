package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(f Func) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", Wrapper(f))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestWrapper(t *testing.T) {
	w := serve(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusNoContent}
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test Wrapper: Should receive a status code of 204 for a nil body: %v", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("Test Wrapper: Should receive an empty body: %q", w.Body.String())
	}

	w = serve(func(ctx *gin.Context) Result {
		return Result{Status: http.StatusOK, Body: HTML("<h1>hi</h1>")}
	})
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("Test Wrapper: Should render HTML bodies as text/html: %s", ct)
	}
	if w.Body.String() != "<h1>hi</h1>" {
		t.Fatalf("Test Wrapper: Should write the HTML verbatim: %q", w.Body.String())
	}

	w = serve(func(ctx *gin.Context) Result {
		return BadRequest("content missing")
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test Wrapper: Should receive a status code of 400: %v", w.Code)
	}
	if w.Body.String() != `{"error":"content missing"}` {
		t.Fatalf("Test Wrapper: Should render the JSON error body: %s", w.Body.String())
	}
}
