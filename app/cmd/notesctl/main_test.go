package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/phonebook-api/app/api/handlers"
	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/business/v1/person"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)
	router := handlers.NewRouter(handlers.Api{
		Notes:   note.NewStore(note.WithSeed(note.Seed()...)),
		Persons: person.NewStore(person.WithSeed(person.Seed()...)),
	}, handlers.RouterConfig{})

	srv := httptest.NewServer(handlers.Handler(router))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--url", srv.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestNotesCommands(t *testing.T) {
	srv := newServer(t)

	out, err := run(t, srv, "notes", "list")
	require.NoError(t, err)
	var notes []note.Note
	require.NoError(t, json.Unmarshal([]byte(out), &notes))
	assert.Len(t, notes, 3)

	out, err = run(t, srv, "notes", "add", "from the cli", "--important")
	require.NoError(t, err)
	var created note.Note
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, note.Note{Id: 4, Content: "from the cli", Important: true}, created)

	out, err = run(t, srv, "notes", "get", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "from the cli")

	out, err = run(t, srv, "notes", "delete", "4")
	require.NoError(t, err)
	assert.Equal(t, "deleted note 4\n", out)

	_, err = run(t, srv, "notes", "get", "4")
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	_, err = run(t, srv, "notes", "add", "")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "content missing", apiErr.Message)

	_, err = run(t, srv, "notes", "get", "abc")
	assert.Error(t, err)
}

func TestPersonsCommands(t *testing.T) {
	srv := newServer(t)

	out, err := run(t, srv, "persons", "add", "Grace Hopper", "555")
	require.NoError(t, err)
	var created person.Person
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "Grace Hopper", created.Name)

	_, err = run(t, srv, "persons", "add", "Arto Hellas", "1")
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "name must be unique", apiErr.Message)

	out, err = run(t, srv, "info")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<p>Phonebook has info for 5 people</p>"), out)

	_, err = run(t, srv, "phonebook", "delete", "1")
	require.NoError(t, err)

	out, err = run(t, srv, "persons", "list")
	require.NoError(t, err)
	var persons []person.Person
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	assert.Len(t, persons, 4)
}
