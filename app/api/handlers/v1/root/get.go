package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
)

// Get godoc
// @Summary Greeting page
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Get(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Body: handler.HTML("<h1>Hello World!</h1>")}
}
