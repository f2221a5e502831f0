package notes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
)

// failingStore fails every lookup and create with a non domain error
type failingStore struct{}

func (failingStore) List() []note.Note { return nil }
func (failingStore) Find(int) (note.Note, error) {
	return note.Note{}, errors.New("store unavailable")
}
func (failingStore) Create(note.NewNote) (note.Note, error) {
	return note.Note{}, errors.New("store unavailable")
}
func (failingStore) Delete(int) {}

func TestStoreFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := Handlers{Store: failingStore{}}
	engine := gin.New()
	engine.GET("/api/notes/:id", handler.Wrapper(h.Get))
	engine.POST("/api/notes", handler.Wrapper(h.Create))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/1", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Test getNote500: Should receive a status code of 500 for the response : %v", w.Code)
	}
	if w.Body.String() != `{"error":"store unavailable"}` {
		t.Fatalf("Test getNote500: Should receive the failure as error body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"content":"x"}`)))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Test postNote500: Should receive a status code of 500 for the response : %v", w.Code)
	}
}
