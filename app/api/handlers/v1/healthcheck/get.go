package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
)

// Status is the healthcheck body
type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Tags Default
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Body: Status{Status: "ok"}}
}
