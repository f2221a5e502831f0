// Package notes serves the notes collection.
package notes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/business/v1/errs"
	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
	"github.com/ribgsilva/phonebook-api/sys"
)

// Store is what the handlers need from the notes collection
type Store interface {
	List() []note.Note
	Find(id int) (note.Note, error)
	Create(newN note.NewNote) (note.Note, error)
	Delete(id int)
}

// Handlers serves Store
type Handlers struct {
	Store Store
}

// List godoc
// @Summary List notes
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Router /api/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	return handler.Result{Status: http.StatusOK, Body: h.Store.List()}
}

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 404 "note not found"
// @Router /api/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sys.R.Log.Infof("note with id %s not found", ctx.Param("id"))
		return handler.Result{Status: http.StatusNotFound}
	}

	found, err := h.Store.Find(id)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		sys.R.Log.Infof("note with id %d not found", id)
		return handler.Result{Status: http.StatusNotFound}
	case err != nil:
		return handler.Result{Status: http.StatusInternalServerError, Body: handler.Error{Error: err.Error()}}
	default:
		return handler.Result{Status: http.StatusOK, Body: found}
	}
}

// Create godoc
// @Summary Create a note
// @Description Create a note, the id is the highest id plus one
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /api/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var body note.NewNote
	if err := ctx.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return handler.BadRequest("malformed request body")
	}

	created, err := h.Store.Create(body)
	if v, ok := errs.AsValidation(err); ok {
		return handler.BadRequest(v.Reason)
	}
	if err != nil {
		return handler.Result{Status: http.StatusInternalServerError, Body: handler.Error{Error: err.Error()}}
	}
	return handler.Result{Status: http.StatusOK, Body: created}
}

// Delete godoc
// @Summary Delete a note
// @Description Delete a note, deleting a missing note also succeeds
// @Tags Note
// @Param id path int true "Note id"
// @Success 204
// @Router /api/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	if id, err := strconv.Atoi(ctx.Param("id")); err == nil {
		h.Store.Delete(id)
	}
	return handler.Result{Status: http.StatusNoContent}
}
