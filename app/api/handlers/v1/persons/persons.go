// Package persons serves the phonebook.
package persons

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/business/v1/errs"
	"github.com/ribgsilva/phonebook-api/business/v1/person"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
	"github.com/ribgsilva/phonebook-api/sys"
)

// Store is what the handlers need from the phonebook
type Store interface {
	List() []person.Person
	Find(id int) (person.Person, error)
	Create(newP person.NewPerson) (person.Person, error)
	Delete(id int)
	Info(now time.Time) string
}

// Handlers serves Store. Now defaults to time.Now
type Handlers struct {
	Store Store
	Now   func() time.Time
}

// List godoc
// @Summary List persons
// @Tags Person
// @Produce json
// @Success 200 {array} person.Person
// @Router /api/persons [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Body: h.Store.List()}
}

// Info godoc
// @Summary Phonebook summary
// @Description How many persons the phonebook has and the time the request was handled
// @Tags Person
// @Produce html
// @Success 200 {string} string
// @Router /api/info [get]
func (h Handlers) Info(ctx *gin.Context) handler.Result {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return handler.Result{Status: http.StatusOK, Body: handler.HTML(h.Store.Info(now()))}
}

// Get godoc
// @Summary Find a person
// @Description Find a person using its id
// @Tags Person
// @Produce json
// @Param id path int true "Person id"
// @Success 200 {object} person.Person
// @Failure 404 "person not found"
// @Router /api/persons/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sys.R.Log.Infof("person with id %s not found", ctx.Param("id"))
		return handler.Result{Status: http.StatusNotFound}
	}

	found, err := h.Store.Find(id)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		sys.R.Log.Infof("person with id %d not found", id)
		return handler.Result{Status: http.StatusNotFound}
	case err != nil:
		return handler.Result{Status: http.StatusInternalServerError, Body: handler.Error{Error: err.Error()}}
	default:
		return handler.Result{Status: http.StatusOK, Body: found}
	}
}

// Create godoc
// @Summary Create a person
// @Description Create a phonebook entry under a random id, names must be unique
// @Tags Person
// @Accept json
// @Produce json
// @Param person body person.NewPerson true "Person"
// @Success 200 {object} person.Person
// @Failure 400 {object} handler.Error
// @Router /api/persons [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var body person.NewPerson
	if err := ctx.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return handler.BadRequest("malformed request body")
	}

	created, err := h.Store.Create(body)
	if v, ok := errs.AsValidation(err); ok {
		sys.R.Log.Infow("person rejected", "name", body.Name, "reason", v.Reason)
		return handler.BadRequest(v.Reason)
	}
	if err != nil {
		return handler.Result{Status: http.StatusInternalServerError, Body: handler.Error{Error: err.Error()}}
	}
	return handler.Result{Status: http.StatusOK, Body: created}
}

// Delete godoc
// @Summary Delete a person
// @Description Delete a person, deleting a missing person also succeeds
// @Tags Person
// @Param id path int true "Person id"
// @Success 204
// @Router /api/persons/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	if id, err := strconv.Atoi(ctx.Param("id")); err == nil {
		h.Store.Delete(id)
	}
	return handler.Result{Status: http.StatusNoContent}
}
