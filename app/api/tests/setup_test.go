package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/app/api/handlers"
	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/business/v1/person"
	"github.com/ribgsilva/phonebook-api/platform/logger"
	"github.com/ribgsilva/phonebook-api/platform/metrics"
	"github.com/ribgsilva/phonebook-api/sys"
)

// fixedNow is the clock of the info page in tests
var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

// newApp builds the router the way main does, over the given stores
func newApp(t *testing.T, api handlers.Api) http.Handler {
	log, err := logger.New("Phonebook-API-Tests")
	if err != nil {
		t.Fatal(err)
	}
	return newAppWith(t, api, handlers.RouterConfig{Log: log, Metrics: metrics.New("test")})
}

// newAppWith is newApp with the router collaborators chosen by the test
func newAppWith(t *testing.T, api handlers.Api, conf handlers.RouterConfig) http.Handler {
	if conf.Log != nil {
		sys.R.Log = conf.Log
	}

	if api.Notes == nil {
		api.Notes = note.NewStore()
	}
	if api.Persons == nil {
		api.Persons = person.NewStore()
	}
	if api.Now == nil {
		api.Now = func() time.Time { return fixedNow }
	}

	gin.SetMode(gin.TestMode)
	return handlers.Handler(handlers.NewRouter(api, conf))
}
