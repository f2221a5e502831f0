package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/ribgsilva/phonebook-api/app/api/handlers"
	"github.com/ribgsilva/phonebook-api/platform/web/handler"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func TestRouter(t *testing.T) {
	app := newApp(t, handlers.Api{})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	if w.Code != http.StatusOK || w.Body.String() != "<h1>Hello World!</h1>" {
		t.Fatalf("Test root: Should receive the greeting page: %v %s", w.Code, w.Body.String())
	}

	r = httptest.NewRequest(http.MethodGet, handlers.HealthcheckPath, nil)
	w = httptest.NewRecorder()
	app.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("Test healthcheck: Should receive a status code of 200 for the response : %v", w.Code)
	}

	unknown := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nonexistent/path"},
		{http.MethodPut, "/api/notes/1"},
		{http.MethodPatch, "/api/persons/1"},
		{http.MethodPost, "/api/info"},
	}
	for _, u := range unknown {
		r := httptest.NewRequest(u.method, u.path, nil)
		w := httptest.NewRecorder()
		app.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Test unknownEndpoint: Should receive a status code of 404 for %s %s : %v", u.method, u.path, w.Code)
		}
		var resp handler.Error
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Test unknownEndpoint: Should be able to unmarshal the response : %v", err)
		}
		if resp.Error != "unknown endpoint" {
			t.Fatalf("Test unknownEndpoint: Should have received \"unknown endpoint\": %v", resp)
		}
	}
}
