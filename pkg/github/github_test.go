package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/pkg/github"
	"github.com/sgaunet/pr-report/pkg/mergeability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *github.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := github.NewClient(github.Config{
		Token:  security.NewSecureToken("ghp_test_token_0123456789"),
		APIURL: srv.URL,
		WebURL: "https://github.example.com/",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("token required", func(t *testing.T) {
		_, err := github.NewClient(github.Config{})
		require.ErrorIs(t, err, github.ErrTokenRequired)
	})

	t.Run("default web URL", func(t *testing.T) {
		client, err := github.NewClient(github.Config{Token: security.NewSecureToken("ghp_x")})
		require.NoError(t, err)
		assert.Equal(t, github.DefaultWebURL, client.WebURL())
	})

	t.Run("invalid API URL", func(t *testing.T) {
		_, err := github.NewClient(github.Config{Token: security.NewSecureToken("ghp_x"), APIURL: "ghe.local"})
		require.Error(t, err)
	})
}

func TestClient_ListRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ghp_test_token_0123456789", r.Header.Get("Authorization"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"name":"hello-world","owner":{"login":"octocat"}},{"name":"spoon-knife","owner":{"login":"octocat"}}]`)
	})
	client := newTestClient(t, mux)

	repos, err := client.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].GetName())
	assert.Equal(t, "octocat", repos[1].GetOwner().GetLogin())
	assert.Equal(t, "https://github.example.com", client.WebURL())
}

func TestClient_ListOpenPullRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octocat/hello-world/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		fmt.Fprint(w, `[{"number":7,"title":"Add feature","user":{"login":"hubot"},"created_at":"2024-03-01T10:30:45Z"}]`)
	})
	client := newTestClient(t, mux)

	prs, err := client.ListOpenPullRequests(context.Background(), "octocat", "hello-world")
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, 7, prs[0].GetNumber())
	assert.Equal(t, "hubot", prs[0].GetUser().GetLogin())
	// The list endpoint never resolves mergeability.
	assert.Nil(t, prs[0].Mergeable)
}

func TestClient_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Bad credentials"}`)
	})
	client := newTestClient(t, mux)

	_, err := client.ListRepositories(context.Background(), "octocat")
	require.ErrorIs(t, err, github.ErrUnauthorized)
}

func TestClient_Forbidden(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octocat/private/pulls", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"Resource not accessible by integration"}`)
	})
	client := newTestClient(t, mux)

	_, err := client.ListOpenPullRequests(context.Background(), "octocat", "private")
	require.ErrorIs(t, err, github.ErrForbidden)
	assert.NotErrorIs(t, err, github.ErrUnauthorized)
}

func TestClient_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octocat/gone/pulls", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	client := newTestClient(t, mux)

	_, err := client.ListOpenPullRequests(context.Background(), "octocat", "gone")
	require.Error(t, err)
	assert.NotErrorIs(t, err, github.ErrUnauthorized)
}

func TestClient_FetchDetail(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantMergeable *bool
		wantState     *string
	}{
		{
			name:          "resolved",
			body:          `{"number":7,"mergeable":true,"mergeable_state":"clean"}`,
			wantMergeable: ptr(true),
			wantState:     ptr("clean"),
		},
		{
			name:          "not yet computed",
			body:          `{"number":7,"mergeable":null,"mergeable_state":"unknown"}`,
			wantMergeable: nil,
			wantState:     ptr("unknown"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/v3/repos/octocat/hello-world/pulls/7", func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, tt.body)
			})
			client := newTestClient(t, mux)

			detail, err := client.FetchDetail(context.Background(),
				mergeability.Ref{Owner: "octocat", Repo: "hello-world", Number: 7})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMergeable, detail.Mergeable)
			assert.Equal(t, tt.wantState, detail.MergeableState)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
