package roboat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultEconomyURL, client.economyURL)
	assert.Equal(t, DefaultUsersURL, client.usersURL)
	assert.Equal(t, DefaultCatalogURL, client.catalogURL)
	assert.Equal(t, DefaultTimeout, client.options.HTTPClient.Timeout)
	assert.NotNil(t, client.Economy)
	assert.NotNil(t, client.Users)
	assert.NotNil(t, client.Catalog)
	assert.Empty(t, client.session.csrfToken())
}

func TestNewClient_Options(t *testing.T) {
	client, err := NewClient(&ClientOptions{
		Credential: "secret",
		EconomyURL: "http://economy.local/",
		UsersURL:   "http://users.local//",
		Timeout:    5 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://economy.local", client.economyURL)
	assert.Equal(t, "http://users.local", client.usersURL)
	assert.Equal(t, 5*time.Second, client.options.HTTPClient.Timeout)

	cookie, err := client.session.cookie()
	require.NoError(t, err)
	assert.Equal(t, ".ROBLOSECURITY=secret", cookie)
}

func TestNewClientWithCredential(t *testing.T) {
	client, err := NewClientWithCredential("secret")
	require.NoError(t, err)

	cookie, err := client.session.cookie()
	require.NoError(t, err)
	assert.Equal(t, ".ROBLOSECURITY=secret", cookie)
}

func TestNewClient_CustomTransport(t *testing.T) {
	mockTransport := new(MockTransport)
	client, err := NewClient(&ClientOptions{Transport: mockTransport})
	require.NoError(t, err)

	assert.Same(t, mockTransport, client.transport)
}

func TestNewRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1000, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, limiter.Wait(ctx))
	assert.NoError(t, limiter.Wait(ctx))
}

func TestClient_EndToEnd(t *testing.T) {
	var saleCalls, authCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != ".ROBLOSECURITY=secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.URL.Path {
		case "/v1/users/authenticated":
			atomic.AddInt32(&authCalls, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, identityBody)

		case "/v1/users/2207291/currency":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"robux": 250}`)

		case "/v1/assets/1365767/resellable-copies/1001":
			atomic.AddInt32(&saleCalls, 1)
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			if r.Header.Get(CSRFHeader) != "server-token" {
				w.Header().Set(CSRFHeader, "server-token")
				w.WriteHeader(http.StatusForbidden)
				_, _ = io.WriteString(w, `{"errors":[{"code":0,"message":"Token Validation Failed"}]}`)
				return
			}

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(777), body["price"])
			_, _ = io.WriteString(w, `{}`)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient(&ClientOptions{
		Credential: "secret",
		EconomyURL: server.URL,
		UsersURL:   server.URL,
		CatalogURL: server.URL,
	})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	robux, err := client.Economy.Robux(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), robux)

	require.NoError(t, client.Economy.PutLimitedOnSale(ctx, 1365767, 1001, 777))
	assert.Equal(t, int32(2), atomic.LoadInt32(&saleCalls))

	// The stored token is reused
	require.NoError(t, client.Economy.PutLimitedOnSale(ctx, 1365767, 1001, 777))
	assert.Equal(t, int32(3), atomic.LoadInt32(&saleCalls))

	userID, err := client.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2207291), userID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&authCalls))

	_, err = client.Catalog.ItemDetails(ctx, []ItemArgs{{ItemType: ItemTypeAsset, ID: 1}})
	var unrecognized *UnrecognizedStatusError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, http.StatusNotFound, unrecognized.StatusCode)
}

func TestClient_EndToEnd_InvalidCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(&ClientOptions{
		Credential: "expired",
		UsersURL:   server.URL,
	})
	require.NoError(t, err)

	_, err = client.Users.Authenticated(context.Background())

	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.True(t, IsAuthError(err))
	assert.False(t, IsRetryable(err))
}

func TestClient_EndToEnd_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := NewClient(&ClientOptions{
		Credential: "secret",
		UsersURL:   serverURL,
	})
	require.NoError(t, err)

	_, err = client.Users.Authenticated(context.Background())

	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, IsRetryable(err))
}
