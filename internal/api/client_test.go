package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens struct{ token string }

func (s staticTokens) Token() (string, error) { return s.token, nil }

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL, Tokens: staticTokens{token: token}})
	require.NoError(t, err)
	return client, srv
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "not a url"})
	require.Error(t, err)

	_, err = New(Config{BaseURL: ""})
	require.Error(t, err)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"email":"a@b.com"}`))
	}), "tok-123")

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_OmitsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}), "")

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_SurfacesDetailFromErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Unsupported file type. Please upload a PDF or .tex file."}`))
	}), "tok")

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)

	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadRequest, serr.Status)
	assert.Contains(t, serr.Detail, "Unsupported file type")
}

func TestClient_GenericErrorWithoutDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}), "tok")

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestIsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), "expired")

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "a@b.com", r.PostFormValue("username"))
		assert.Equal(t, "hunter22", r.PostFormValue("password"))
		_, _ = w.Write([]byte(`{"access_token":"tok-xyz","token_type":"bearer"}`))
	}), "")

	token, err := client.Login(context.Background(), types.LoginRequest{Username: "a@b.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestLogin_ValidatesRequest(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), types.LoginRequest{Username: "", Password: ""})
	require.Error(t, err)
}

func TestRegister_PostsJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"email":"new@user.com","is_active":true}`))
	}), "")

	user, err := client.Register(context.Background(), types.RegisterRequest{Email: "new@user.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "new@user.com", user.Email)
	assert.True(t, user.IsActive)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)

	_, err = client.Register(context.Background(), types.RegisterRequest{Email: "new@user.com", Password: "short"})
	require.Error(t, err)
}
