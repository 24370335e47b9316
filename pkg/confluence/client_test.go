package confluence_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/pkg/confluence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = security.Credentials{Username: "jdoe", Secret: security.NewSecureToken("hunter2hunter2")}

func newTestClient(t *testing.T, h http.HandlerFunc) *confluence.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := confluence.NewClient(srv.URL+"/", testCreds)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	_, err := confluence.NewClient(" ", testCreds)
	require.ErrorIs(t, err, confluence.ErrBaseURLRequired)

	_, err = confluence.NewClient("wiki.local", testCreds)
	require.Error(t, err)
}

func TestNewPagePayload(t *testing.T) {
	t.Run("with parent", func(t *testing.T) {
		p := confluence.NewPagePayload("ENG", "Open PRs", "12345", "<table></table>")
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type":"page","title":"Open PRs",
			"ancestors":[{"id":"12345"}],
			"space":{"key":"ENG"},
			"body":{"storage":{"value":"<table></table>","representation":"storage"}}
		}`, string(data))
	})

	t.Run("without parent", func(t *testing.T) {
		p := confluence.NewPagePayload("ENG", "Open PRs", "", "x")
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "ancestors")
		assert.NotContains(t, string(data), `"id"`)
		assert.NotContains(t, string(data), "version")
	})
}

func TestClient_LookupPageByTitle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/rest/api/content", r.URL.Path)
			assert.Equal(t, "Open PRs & more", r.URL.Query().Get("title"))
			assert.Equal(t, "ENG", r.URL.Query().Get("spaceKey"))
			assert.Equal(t, "version", r.URL.Query().Get("expand"))
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "jdoe", user)
			assert.Equal(t, "hunter2hunter2", pass)
			fmt.Fprint(w, `{"results":[{"id":"42","type":"page","title":"Open PRs & more","version":{"number":5}},
				{"id":"43","type":"page","title":"Open PRs & more","version":{"number":1}}],"size":2}`)
		})

		page, err := client.LookupPageByTitle(context.Background(), "ENG", "Open PRs & more")
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, "42", page.ID)
		require.NotNil(t, page.Version)
		assert.Equal(t, 5, page.Version.Number)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"results":[],"size":0}`)
		})

		page, err := client.LookupPageByTitle(context.Background(), "ENG", "Open PRs")
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("missing version", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"results":[{"id":"42","type":"page","title":"Open PRs"}]}`)
		})

		page, err := client.LookupPageByTitle(context.Background(), "ENG", "Open PRs")
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Nil(t, page.Version)
	})

	t.Run("unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.LookupPageByTitle(context.Background(), "ENG", "Open PRs")
		require.ErrorIs(t, err, confluence.ErrUnauthorized)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "boom")
		})

		_, err := client.LookupPageByTitle(context.Background(), "ENG", "Open PRs")
		require.ErrorIs(t, err, confluence.ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestClient_CreatePage(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/content/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"id":"77","type":"page","title":"Open PRs","version":{"number":1}}`)
	})

	res, err := client.CreatePage(context.Background(), confluence.NewPagePayload("ENG", "Open PRs", "1", "<table></table>"))
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NotNil(t, res.Page)
	assert.Equal(t, "77", res.Page.ID)
	assert.Equal(t, "page", got["type"])
	assert.NotContains(t, got, "version")
}

func TestClient_UpdatePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/rest/api/content/42", r.URL.Path)
		var payload confluence.PagePayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "42", payload.ID)
		if assert.NotNil(t, payload.Version) {
			assert.Equal(t, 6, payload.Version.Number)
			assert.True(t, payload.Version.MinorEdit)
		}
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"statusCode":409,"message":"Version must be incremented"}`)
	})

	payload := confluence.NewPagePayload("ENG", "Open PRs", "", "x")
	payload.ID = "42"
	payload.Version = &confluence.Version{Number: 6, MinorEdit: true}

	res, err := client.UpdatePage(context.Background(), "42", payload)
	require.NoError(t, err)
	assert.False(t, res.Success())
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, res.Body, "Version must be incremented")
	assert.Nil(t, res.Page)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := confluence.NewClient(srv.URL, testCreds)
	require.NoError(t, err)
	srv.Close()

	_, err = client.CreatePage(context.Background(), confluence.NewPagePayload("ENG", "T", "", "x"))
	require.ErrorIs(t, err, confluence.ErrTransport)
}

func TestClient_LookupErrorBodyIsTruncatedOnRuneBoundary(t *testing.T) {
	// Three-byte runes put the truncation limit in the middle of one.
	body := strings.Repeat("€", 400)
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, body)
	})

	_, err := client.LookupPageByTitle(context.Background(), "ENG", "Open PRs")
	require.ErrorIs(t, err, confluence.ErrUnexpectedStatus)
	assert.True(t, utf8.ValidString(err.Error()), "error text must stay valid UTF-8")
	assert.True(t, strings.HasSuffix(err.Error(), "€..."))
	assert.Less(t, len(err.Error()), len(body))
}
