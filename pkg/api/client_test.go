package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSetsHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, WithToken("secret-token"))
	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/admin/users", gotPath)
	assert.Equal(t, "Bearer secret-token", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	// GET carries no body, so no content type either.
	assert.Empty(t, got.Get("Content-Type"))
}

func TestClientWithoutTokenSendsNoAuthorization(t *testing.T) {
	t.Parallel()

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := New(server.URL).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestUpdateUserSendsPatchWithJSONBody(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"status": "suspended"}`))
	}))
	defer server.Close()

	partial, err := New(server.URL).UpdateUser(context.Background(), "u1", map[string]any{"status": "suspended"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/admin/users/u1", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{"status": "suspended"}, gotBody)
	assert.JSONEq(t, `{"status": "suspended"}`, string(partial))
}

func TestDeleteUserAcceptsNoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := New(server.URL).DeleteUser(context.Background(), "u1")
	require.NoError(t, err)
}

func TestErrorResponseBecomesRequestError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not_found", "message": "user does not exist"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).ListUsers(context.Background())
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "not_found", reqErr.Code)
	assert.Equal(t, "user does not exist", reqErr.Message)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestUnparseableErrorBodyFallsBackToStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	_, err := New(server.URL).ListUsers(context.Background())
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, "unknown_error", reqErr.Code)
}

func TestUnreachableServerBecomesConnectionError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens here anymore

	_, err := New(server.URL).ListUsers(context.Background())
	require.Error(t, err)

	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestCanceledContextSurfacesThroughConnectionError(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(server.URL).ListUsers(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoginAcceptsBothTokenSpellings(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"token": "tok-a"}`,
		`{"accessToken": "tok-a"}`,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/admin/auth/login", r.URL.Path)
			_, _ = w.Write([]byte(body))
		}))

		token, err := New(server.URL).Login(context.Background(), "admin@fliits.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "tok-a", token)
		server.Close()
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Login(context.Background(), "admin@fliits.com", "pw")
	require.Error(t, err)
}

func TestListUsersNormalizesPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"users": [{"_id": "u1", "full_name": "Ada"}]}`))
	}))
	defer server.Close()

	users, err := New(server.URL).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "Ada", users[0].Name)
}
