package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/phonebook-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/phonebook-api/app/api/handlers/v1/persons"
	"github.com/ribgsilva/phonebook-api/app/api/handlers/v1/root"
	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/business/v1/person"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
)

// HealthcheckPath is kept out of request logs
const HealthcheckPath = "/v1/healthcheck"

// Api is what the api routes serve
type Api struct {
	Notes   *note.Store
	Persons *person.Store

	// Now is the clock of the info page, time.Now when nil
	Now func() time.Time
}

// get registers h for GET and HEAD on path
func get(r gin.IRoutes, path string, h handler.Func) {
	r.GET(path, handler.Wrapper(h))
	r.HEAD(path, handler.Wrapper(h))
}

func MapDefaults(r *gin.Engine) {
	get(r, HealthcheckPath, healthcheck.Get)
	get(r, "/", root.Get)
}

func MapApi(r *gin.Engine, api Api) {
	n := notes.Handlers{Store: api.Notes}
	get(r, "/api/notes", n.List)
	get(r, "/api/notes/:id", n.Get)
	r.POST("/api/notes", handler.Wrapper(n.Create))
	r.DELETE("/api/notes/:id", handler.Wrapper(n.Delete))

	p := persons.Handlers{Store: api.Persons, Now: api.Now}
	get(r, "/api/persons", p.List)
	get(r, "/api/info", p.Info)
	get(r, "/api/persons/:id", p.Get)
	r.POST("/api/persons", handler.Wrapper(p.Create))
	r.DELETE("/api/persons/:id", handler.Wrapper(p.Delete))
}

// MapFallback answers every unmatched request with the unknown endpoint error
func MapFallback(r *gin.Engine) {
	r.NoRoute(handler.Wrapper(unknownEndpoint))
}

func unknownEndpoint(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusNotFound, Body: handler.Error{Error: "unknown endpoint"}}
}
